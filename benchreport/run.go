// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchreport

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"benchviz/benchfmt"
	"benchviz/benchproc"
	"benchviz/report"

	"github.com/dustin/go-humanize"
)

// Build runs the results of doc through k's pipeline and returns the
// report. It does not modify doc.
func Build(k *Kind, doc *benchfmt.Document) (*report.Report, error) {
	recs := k.Filter.Apply(doc.Benchmarks)
	pops, err := benchproc.Normalize(recs, k.Schemas...)
	if err != nil {
		return nil, err
	}

	r := &report.Report{Title: k.Title}
	if k.Header {
		r.Header = report.HeaderFromContext(doc.Context)
	}
	for _, p := range k.Plans {
		pop := population(pops, p.Schema)
		if pop == nil {
			return nil, fmt.Errorf("report %s: plan uses unknown schema %q", k.Name, p.Schema)
		}
		groups, err := benchproc.GroupBy(pop.Table, p.Fields...)
		if err != nil {
			return nil, err
		}
		for _, g := range groups {
			r.Add(p.Charts(g)...)
		}
	}
	return r, nil
}

func population(pops []*benchproc.Population, schema string) *benchproc.Population {
	for _, p := range pops {
		if p.Schema.Name == schema {
			return p
		}
	}
	return nil
}

// Run reads the document at input, builds a k report from it, and
// writes the report to k.Output under dir using rd. If rd is nil, Run
// uses report.NewRenderer(). It returns the path written and the
// number of charts.
//
// Nothing is written unless every stage succeeds.
func Run(k *Kind, input, dir string, rd *report.Renderer) (path string, n int, err error) {
	doc, err := benchfmt.ReadFile(input)
	if err != nil {
		return "", 0, err
	}
	r, err := Build(k, doc)
	if err != nil {
		return "", 0, err
	}
	if rd == nil {
		rd = report.NewRenderer()
	}
	path = filepath.Join(dir, k.Output)
	if err := rd.WriteFile(path, r); err != nil {
		return "", 0, err
	}
	return path, len(r.Charts), nil
}

// ErrUsage is returned by Main when the command line is invalid. The
// usage message has already been printed.
var ErrUsage = errors.New("usage")

// Main implements the command that produces a k report. args excludes
// the program name. Progress is reported to stdout, and usage messages
// to stderr.
func Main(k *Kind, stdout, stderr io.Writer, args []string) error {
	fs := flag.NewFlagSet(k.Command, flag.ContinueOnError)
	fs.SetOutput(stderr)
	input := fs.String("i", "", "read benchmark results from JSON `file`")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), `Usage: %s -i file

Writes a %s throughput report of the benchmark results in file to
./%s.

`, k.Command, k.Name, k.Output)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ErrUsage
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if *input == "" || fs.NArg() != 0 {
		fs.Usage()
		return ErrUsage
	}

	path, n, err := Run(k, *input, ".", nil)
	if err != nil {
		return err
	}
	var size string
	if fi, err := os.Stat(path); err == nil {
		size = humanize.Bytes(uint64(fi.Size()))
	}
	fmt.Fprintf(stdout, "writing %s (%s, %d charts)\n", path, size, n)
	return nil
}
