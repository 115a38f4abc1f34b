// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchreport

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"benchviz/benchchart"
	"benchviz/benchfmt"
	"benchviz/benchproc"
	"benchviz/report"

	"github.com/google/go-cmp/cmp"
)

func readDoc(t *testing.T, s string) *benchfmt.Document {
	t.Helper()
	doc, err := benchfmt.NewReader(strings.NewReader(s), "test").Read()
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func readFile(t *testing.T, path string) *benchfmt.Document {
	t.Helper()
	doc, err := benchfmt.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

// pick projects rows onto fields.
func pick(rows []benchproc.Row, fields ...string) []benchproc.Row {
	var out []benchproc.Row
	for _, r := range rows {
		p := benchproc.Row{}
		for _, f := range fields {
			p[f] = r[f]
		}
		out = append(out, p)
	}
	return out
}

type chartSummary struct {
	Title    string
	Subtitle []string
	Layers   []benchchart.MarkType
}

func summarize(cs []*benchchart.Chart) []chartSummary {
	var out []chartSummary
	for _, c := range cs {
		s := chartSummary{Title: c.Title, Subtitle: c.Subtitle}
		for _, l := range c.Layers {
			s.Layers = append(s.Layers, l.Mark.Type)
		}
		out = append(out, s)
	}
	return out
}

func TestArithmeticExcludesErrors(t *testing.T) {
	doc := readDoc(t, `{"context": {}, "benchmarks": [
		{"name": "BM_region_add/basic", "label": "binary8", "size": 128, "bytes_per_second": 2097152, "error_occurred": true},
		{"name": "BM_region_add/basic", "label": "binary8", "size": 256, "bytes_per_second": 4194304}
	]}`)
	r, err := Build(Arithmetic, doc)
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Charts) != 1 {
		t.Fatalf("want 1 chart, got %d", len(r.Charts))
	}
	c := r.Charts[0]
	if c.Title != "Region Add" {
		t.Errorf("title = %q, want Region Add", c.Title)
	}
	want := []benchproc.Row{{"testcase": "basic", "throughput": 4.0, "size": "256 B"}}
	if d := cmp.Diff(want, pick(c.Data, "testcase", "throughput", "size")); d != "" {
		t.Errorf("chart data (-want +got):\n%s", d)
	}
	if len(c.Layers) != 1 || c.Layers[0].Mark.Type != benchchart.Bar {
		t.Errorf("want a single bar layer, got %v", summarize(r.Charts))
	}
}

func TestFulcrumMeanViewPerTestcase(t *testing.T) {
	doc := readDoc(t, `{"context": {}, "benchmarks": [
		{"name": "BM_fulcrum/encoder", "label": "binary8", "bytes_per_second": 2097152,
		 "repetitions": 1, "repetition_index": 0, "symbols": 10, "symbol_bytes": 100, "expansion": 2, "systematic": 1},
		{"name": "BM_fulcrum/decoder", "label": "binary8", "bytes_per_second": 3145728,
		 "repetitions": 1, "repetition_index": 0, "symbols": 10, "symbol_bytes": 100, "expansion": 2, "systematic": 1}
	]}`)
	r, err := Build(Fulcrum, doc)
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Charts) != 3 {
		t.Fatalf("want 3 charts, got %v", summarize(r.Charts))
	}
	runs, mean := r.Charts[0], r.Charts[1]
	if len(runs.Data) != 2 {
		t.Errorf("subject comparison has %d entries, want 2", len(runs.Data))
	}
	if sh := runs.Layers[0].Encoding.Shape; sh == nil || sh.Field != "testcase" {
		t.Errorf("run points shape channel = %+v, want testcase", sh)
	}
	// Encoder and decoder share a field but keep separate mean rules.
	wantRules := []benchproc.Row{
		{"testcase": "decoder", benchchart.MeanThroughput: 3.0},
		{"testcase": "encoder", benchchart.MeanThroughput: 2.0},
	}
	if d := cmp.Diff(wantRules, pick(runs.Layers[1].Data, "testcase", benchchart.MeanThroughput)); d != "" {
		t.Errorf("run chart rules (-want +got):\n%s", d)
	}
	want := []benchproc.Row{
		{"testcase": "decoder", benchchart.MeanThroughput: 3.0},
		{"testcase": "encoder", benchchart.MeanThroughput: 2.0},
	}
	if d := cmp.Diff(want, pick(mean.Data, "testcase", benchchart.MeanThroughput)); d != "" {
		t.Errorf("mean view data (-want +got):\n%s", d)
	}
	var text *benchchart.Layer
	for _, l := range mean.Layers {
		if l.Mark.Type == benchchart.Text {
			text = l
		}
	}
	if text == nil || text.Encoding.Text.Format != ".1f" {
		t.Errorf("mean view lacks a one-decimal label layer")
	}
}

func TestBuildArithmetic(t *testing.T) {
	r, err := Build(Arithmetic, readFile(t, "testdata/arithmetic.json"))
	if err != nil {
		t.Fatal(err)
	}
	if r.Title != "Fifi Benchmarks" {
		t.Errorf("page title = %q", r.Title)
	}
	want := []chartSummary{
		{"Region Add", []string{"size = 64 B, field = binary8"}, []benchchart.MarkType{benchchart.Bar}},
		{"Region Add", []string{"size = 256 B, field = binary8"}, []benchchart.MarkType{benchchart.Bar}},
		{"Region Multiply Add", []string{"size = 1024 B, field = binary4, vectors = 16"}, []benchchart.MarkType{benchchart.Bar}},
	}
	if d := cmp.Diff(want, summarize(r.Charts)); d != "" {
		t.Errorf("charts (-want +got):\n%s", d)
	}
	wantRows := []benchproc.Row{
		{"testcase": "basic", "throughput": 4.0},
		{"testcase": "ssse3", "throughput": 8.0},
	}
	if d := cmp.Diff(wantRows, pick(r.Charts[1].Data, "testcase", "throughput")); d != "" {
		t.Errorf("256 B rows (-want +got):\n%s", d)
	}
	wantHeader := []string{
		"./fifi_arithmetic_benchmark",
		"Date: 2026-10-19T09:12:44+00:00",
		"Host: bench01",
		"CPU 8 cores @ 3600 MHz",
		"CPU Scaling disabled.",
		"Build type: release",
	}
	if d := cmp.Diff(wantHeader, r.Header.Lines()); d != "" {
		t.Errorf("header (-want +got):\n%s", d)
	}
}

func TestBuildFulcrum(t *testing.T) {
	r, err := Build(Fulcrum, readFile(t, "testdata/fulcrum.json"))
	if err != nil {
		t.Fatal(err)
	}
	if r.Header != nil {
		t.Errorf("fulcrum report has a header")
	}
	sub := []string{"symbols = 16, expansion = 2, symbol_bytes = 1600"}
	want := []chartSummary{
		{"Fulcrum", sub, []benchchart.MarkType{benchchart.Point, benchchart.Rule}},
		{"Fulcrum", sub, []benchchart.MarkType{benchchart.Bar, benchchart.Text}},
		{"Fulcrum Encode vs Decode", []string{"symbols = 16, symbol_bytes = 1600, expansion = 2, systematic = 1"}, []benchchart.MarkType{benchchart.Bar}},
	}
	if d := cmp.Diff(want, summarize(r.Charts)); d != "" {
		t.Fatalf("charts (-want +got):\n%s", d)
	}

	runs := r.Charts[0]
	if d := cmp.Diff([]int{0, 1, 4, 5, 7, 8}, indexes(runs.Data)); d != "" {
		t.Errorf("run chart records (-want +got):\n%s", d)
	}
	rules := []benchproc.Row{
		{"field": "binary", "testcase": "encoder", benchchart.MeanThroughput: 11.0},
		{"field": "binary8", "testcase": "decoder", benchchart.MeanThroughput: 2.0},
		{"field": "binary8", "testcase": "encoder", benchchart.MeanThroughput: 3.0},
	}
	if d := cmp.Diff(rules, pick(runs.Layers[1].Data, "field", "testcase", benchchart.MeanThroughput)); d != "" {
		t.Errorf("rule data (-want +got):\n%s", d)
	}

	means := []benchproc.Row{
		{"testcase": "decoder", "field": "binary8", benchchart.MeanThroughput: 2.0},
		{"testcase": "encoder", "field": "binary", benchchart.MeanThroughput: 11.0},
		{"testcase": "encoder", "field": "binary8", benchchart.MeanThroughput: 3.0},
	}
	if d := cmp.Diff(means, pick(r.Charts[1].Data, "testcase", "field", benchchart.MeanThroughput)); d != "" {
		t.Errorf("mean view data (-want +got):\n%s", d)
	}

	cross := r.Charts[2]
	if cross.Facet == nil || cross.Facet.Field != "field" {
		t.Errorf("cross comparison facet = %+v, want field", cross.Facet)
	}
	crossRows := []benchproc.Row{
		{"field": "binary", "testcase": "encoder", benchchart.MeanThroughput: 11.0},
		{"field": "binary8", "testcase": "decoder", benchchart.MeanThroughput: 2.0},
		{"field": "binary8", "testcase": "encoder", benchchart.MeanThroughput: 3.0},
	}
	if d := cmp.Diff(crossRows, pick(cross.Data, "field", "testcase", benchchart.MeanThroughput)); d != "" {
		t.Errorf("cross data (-want +got):\n%s", d)
	}
}

func indexes(rows []benchproc.Row) []int {
	var out []int
	for _, r := range rows {
		out = append(out, r[benchproc.ColIndex].(int))
	}
	return out
}

// Excluded results never reach a chart, whatever the grouping.
func TestExclusion(t *testing.T) {
	for _, test := range []struct {
		kind     *Kind
		file     string
		excluded []int
	}{
		{Arithmetic, "testdata/arithmetic.json", []int{3}},
		{Fulcrum, "testdata/fulcrum.json", []int{2, 3, 6, 9}},
	} {
		t.Run(test.kind.Name, func(t *testing.T) {
			r, err := Build(test.kind, readFile(t, test.file))
			if err != nil {
				t.Fatal(err)
			}
			seen := make(map[int]bool)
			for _, c := range r.Charts {
				for _, row := range c.Data {
					if i, ok := row[benchproc.ColIndex].(int); ok {
						seen[i] = true
					}
				}
			}
			for _, i := range test.excluded {
				if seen[i] {
					t.Errorf("excluded benchmarks[%d] appears in a chart", i)
				}
			}
			if len(seen) == 0 {
				t.Errorf("no chart carries record indexes")
			}
		})
	}
}

func TestBuildDoesNotModifyDocument(t *testing.T) {
	doc := readFile(t, "testdata/fulcrum.json")
	before := make([]*benchfmt.Record, len(doc.Benchmarks))
	for i, r := range doc.Benchmarks {
		before[i] = r.Clone()
	}
	if _, err := Build(Fulcrum, doc); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(before, doc.Benchmarks); d != "" {
		t.Errorf("Build modified the document (-before +after):\n%s", d)
	}
}

func TestBuildSchemaError(t *testing.T) {
	doc := readDoc(t, `{"context": {}, "benchmarks": [
		{"name": "BM_fulcrum/encoder", "label": "binary8", "bytes_per_second": 1,
		 "repetitions": 1, "repetition_index": 0, "symbols": 10.5, "symbol_bytes": 100, "expansion": 2, "systematic": 1}
	]}`)
	_, err := Build(Fulcrum, doc)
	var se *benchproc.SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("want *SchemaError, got %v", err)
	}
	if se.Index != 0 || se.Field != "symbols" {
		t.Errorf("error names benchmarks[%d] field %q, want benchmarks[0] field symbols", se.Index, se.Field)
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	path, n, err := Run(Fulcrum, "testdata/fulcrum.json", dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "benchmark_results", "fulcrum_chart.html"); path != want {
		t.Errorf("path = %s, want %s", path, want)
	}
	if n != 3 {
		t.Errorf("wrote %d charts, want 3", n)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := bytes.Count(data, []byte("vegaEmbed(")); got != n {
		t.Errorf("page embeds %d charts, want %d", got, n)
	}
}

// A document without "context" fails before any output exists.
func TestRunMissingContextWritesNothing(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.json")
	if err := os.WriteFile(input, []byte(`{"benchmarks": []}`), 0666); err != nil {
		t.Fatal(err)
	}

	_, _, err := Run(Arithmetic, input, dir, nil)
	var ie *benchfmt.InputError
	if !errors.As(err, &ie) {
		t.Fatalf("want *InputError, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, Arithmetic.Output)); !os.IsNotExist(err) {
		t.Errorf("failed run created %s", Arithmetic.Output)
	}

	// An existing report is left alone.
	out := filepath.Join(dir, Arithmetic.Output)
	if err := os.WriteFile(out, []byte("old"), 0666); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Run(Arithmetic, input, dir, nil); err == nil {
		t.Fatal("second run succeeded")
	}
	if data, _ := os.ReadFile(out); string(data) != "old" {
		t.Errorf("failed run truncated %s", out)
	}
}

func TestRunOutputError(t *testing.T) {
	dir := t.TempDir()
	// Put a file where the output directory belongs.
	if err := os.WriteFile(filepath.Join(dir, "benchmark_results"), nil, 0666); err != nil {
		t.Fatal(err)
	}
	_, _, err := Run(Fulcrum, "testdata/fulcrum.json", dir, nil)
	var oe *report.OutputError
	if !errors.As(err, &oe) {
		t.Fatalf("want *OutputError, got %v", err)
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}

func TestMainWritesReport(t *testing.T) {
	input, err := filepath.Abs("testdata/arithmetic.json")
	if err != nil {
		t.Fatal(err)
	}
	chdir(t, t.TempDir())

	var stdout, stderr bytes.Buffer
	if err := Main(Arithmetic, &stdout, &stderr, []string{"-i", input}); err != nil {
		t.Fatal(err)
	}
	out := stdout.String()
	if !strings.HasPrefix(out, "writing chart.html (") || !strings.HasSuffix(out, ", 3 charts)\n") {
		t.Errorf("unexpected progress line %q", out)
	}
	if _, err := os.Stat("chart.html"); err != nil {
		t.Errorf("report not written: %v", err)
	}
	if stderr.Len() != 0 {
		t.Errorf("unexpected stderr: %s", stderr.String())
	}
}

func TestMainUsage(t *testing.T) {
	for _, args := range [][]string{
		nil,
		{"-x"},
		{"-i", "a.json", "extra"},
		{"-h"},
	} {
		var stdout, stderr bytes.Buffer
		err := Main(Fulcrum, &stdout, &stderr, args)
		if !errors.Is(err, ErrUsage) {
			t.Errorf("Main(%q) = %v, want ErrUsage", args, err)
		}
		if !strings.Contains(stderr.String(), "Usage: fulcrumplot -i file") {
			t.Errorf("Main(%q) printed no usage:\n%s", args, stderr.String())
		}
		if stdout.Len() != 0 {
			t.Errorf("Main(%q) wrote to stdout: %s", args, stdout.String())
		}
	}
}

func TestMainMissingInput(t *testing.T) {
	chdir(t, t.TempDir())
	var stdout, stderr bytes.Buffer
	err := Main(Arithmetic, &stdout, &stderr, []string{"-i", "missing.json"})
	var ie *benchfmt.InputError
	if !errors.As(err, &ie) {
		t.Fatalf("want *InputError, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "load missing.json: ") {
		t.Errorf("diagnostic %q does not name the stage and file", err)
	}
}

func TestLookup(t *testing.T) {
	for _, k := range Kinds {
		got, ok := Lookup(k.Name)
		if !ok || got != k {
			t.Errorf("Lookup(%q) = %v, %v", k.Name, got, ok)
		}
	}
	if _, ok := Lookup("nope"); ok {
		t.Errorf("Lookup(nope) succeeded")
	}
	if d := cmp.Diff([]string{"arithmetic", "fulcrum"}, Names()); d != "" {
		t.Errorf("Names (-want +got):\n%s", d)
	}
}
