// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Fulcrumplot charts the throughput of Fulcrum encoder and decoder
// benchmarks.
//
// Usage:
//
//	fulcrumplot -i results.json
//
// The input is the JSON output of a Google Benchmark run with
// repetitions. Aggregate results such as means and standard
// deviations are ignored in favor of the individual runs.
//
// Fulcrumplot writes ./benchmark_results/fulcrum_chart.html. For each
// benchmark, symbol count, expansion, and symbol size, the page shows
// the throughput of every run with a rule at each field's mean, and
// the mean throughput of each testcase and field. It then compares
// encoders and decoders for every configuration, with one column per
// field.
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
	log.SetPrefix("fulcrumplot: ")
	log.SetFlags(0)
	log.SetOutput(stderr)

	err := benchreport.Main(benchreport.Fulcrum, stdout, stderr, args)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, benchreport.ErrUsage):
		return 2
	}
	log.Print(err)
	return 1
}
