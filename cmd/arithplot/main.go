// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Arithplot charts the throughput of finite field region arithmetic
// benchmarks.
//
// Usage:
//
//	arithplot -i results.json
//
// The input is the JSON output of a Google Benchmark run
// (--benchmark_format=json). Results that set error_occurred are
// ignored. Each remaining result must have a "size" counter and may
// have a "vectors" counter.
//
// Arithplot writes ./chart.html, a page with one bar chart per
// benchmark, size, and finite field (and vector count, for vectorized
// operations) comparing the throughput of every testcase, in MB/s.
// The page header describes the machine the benchmarks ran on.
package main

import (
	"errors"
	"io"
	"log"
	"os"

	"benchviz/benchreport"
)

var exit = os.Exit // replaced during testing

func main() {
	exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	log.SetPrefix("arithplot: ")
	log.SetFlags(0)
	log.SetOutput(stderr)

	err := benchreport.Main(benchreport.Arithmetic, stdout, stderr, args)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, benchreport.ErrUsage):
		return 2
	}
	log.Print(err)
	return 1
}
