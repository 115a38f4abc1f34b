// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchsnap writes static images of the charts of a throughput report.
//
// Usage:
//
//	benchsnap [-kind arithmetic|fulcrum] [-o dir] [-format png|svg] -i results.json
//
// Benchsnap builds the same charts as arithplot or fulcrumplot, as
// selected by -kind, but draws each one to its own image file in dir
// instead of writing a page. Files are named NN-title.ext, where NN
// is the chart's position in the report, so they sort in report
// order.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"benchviz/benchchart/plotimg"
	"benchviz/benchfmt"
	"benchviz/benchreport"
	"benchviz/report"

	"github.com/dustin/go-humanize"
)

var exit = os.Exit // replaced during testing

func main() {
	exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	log.SetPrefix("benchsnap: ")
	log.SetFlags(0)
	log.SetOutput(stderr)

	fs := flag.NewFlagSet("benchsnap", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		flagInput  = fs.String("i", "", "read benchmark results from JSON `file`")
		flagKind   = fs.String("kind", benchreport.Arithmetic.Name, "report `kind`: "+strings.Join(benchreport.Names(), ", "))
		flagOut    = fs.String("o", "snapshots", "write images to `dir`")
		flagFormat = fs.String("format", "png", "image `format`: "+strings.Join(plotimg.Formats, ", "))
	)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: benchsnap [options] -i file\noptions:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	kind, ok := benchreport.Lookup(*flagKind)
	if *flagInput == "" || fs.NArg() != 0 || !ok || !validFormat(*flagFormat) {
		fs.Usage()
		return 2
	}

	n, size, err := snap(kind, *flagInput, *flagOut, *flagFormat)
	if err != nil {
		log.Print(err)
		return 1
	}
	fmt.Fprintf(stdout, "writing %s (%d %s images, %s)\n", *flagOut, n, *flagFormat, humanize.Bytes(uint64(size)))
	return 0
}

func validFormat(format string) bool {
	for _, f := range plotimg.Formats {
		if f == format {
			return true
		}
	}
	return false
}

// snap writes an image of every chart of a kind report of input to
// dir. It returns the number of images and their total size.
func snap(kind *benchreport.Kind, input, dir, format string) (n int, size int64, err error) {
	doc, err := benchfmt.ReadFile(input)
	if err != nil {
		return 0, 0, err
	}
	r, err := benchreport.Build(kind, doc)
	if err != nil {
		return 0, 0, err
	}
	if err := os.MkdirAll(dir, 0777); err != nil {
		return 0, 0, &report.OutputError{Path: dir, Err: err}
	}
	for i, c := range r.Charts {
		path := filepath.Join(dir, fmt.Sprintf("%02d-%s.%s", i+1, slug(c.Title), format))
		if err := plotimg.Save(c, path); err != nil {
			var pe *os.PathError
			if errors.As(err, &pe) {
				return n, size, &report.OutputError{Path: path, Err: err}
			}
			return n, size, fmt.Errorf("chart %d: %w", i+1, err)
		}
		if fi, err := os.Stat(path); err == nil {
			size += fi.Size()
		}
		n++
	}
	return n, size, nil
}

// slug turns a chart title into a file name component, such as
// "region-add" for "Region Add".
func slug(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
		} else {
			dash = true
		}
	}
	if b.Len() == 0 {
		return "chart"
	}
	return b.String()
}
