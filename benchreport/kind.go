// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchreport defines the throughput reports benchviz can
// produce and drives the pipeline that builds them.
//
// Each report Kind fixes how results are filtered, the closed set of
// Schemas they are normalized into, and the Plans that turn groups of
// normalized results into charts.
package benchreport

import (
	"benchviz/benchchart"
	"benchviz/benchfmt"
	"benchviz/benchproc"
)

// A Kind is one kind of report.
type Kind struct {
	// Name identifies the kind on command lines.
	Name string

	// Command is the name of the command that writes this kind.
	Command string

	// Title is the page title. It may be empty.
	Title string

	// Filter drops results before normalization.
	Filter *benchproc.Filter

	// Schemas are the variants results are normalized into.
	Schemas []*benchproc.Schema

	// Plans produce the report's charts, in order.
	Plans []Plan

	// Output is the report's path, relative to the output
	// directory.
	Output string

	// Header indicates the report shows the run's metadata.
	Header bool
}

// A Plan groups the Population of one Schema and builds charts for
// each group.
type Plan struct {
	// Schema is the name of the Schema whose Population is grouped.
	Schema string

	// Fields are the grouping fields. The first is each group's
	// subject.
	Fields []string

	// Charts builds the charts of one group. Nil charts are
	// skipped.
	Charts func(g *benchproc.Group) []*benchchart.Chart
}

// Chart titles and axis titles shared by the kinds.
const (
	testcaseTitle = "Test-case"
	fieldTitle    = "Field"
	finiteField   = "Finite Field"
	runsTitle     = "Runs [-]"
)

// Arithmetic reports finite field region arithmetic benchmarks. Each
// (benchmark, size, field) group, and each (benchmark, size, field,
// vectors) group for vectorized operations, compares the throughput of
// every testcase.
var Arithmetic = &Kind{
	Name:    "arithmetic",
	Command: "arithplot",
	Title:   "Fifi Benchmarks",
	Filter:  benchproc.ExcludeErrors,
	Schemas: []*benchproc.Schema{
		{
			Name:   "region",
			Select: func(r *benchfmt.Record) bool { return !r.Has("vectors") },
			Dims:   []benchproc.Dim{{Field: "size", Bytes: true}},
		},
		{
			Name:   "region-vectors",
			Select: func(r *benchfmt.Record) bool { return r.Has("vectors") },
			Dims:   []benchproc.Dim{{Field: "size", Bytes: true}, {Field: "vectors"}},
		},
	},
	Plans: []Plan{
		{Schema: "region", Fields: []string{"benchmark", "size", "field"}, Charts: arithmeticCharts},
		{Schema: "region-vectors", Fields: []string{"benchmark", "size", "field", "vectors"}, Charts: arithmeticCharts},
	},
	Output: "chart.html",
	Header: true,
}

func arithmeticCharts(g *benchproc.Group) []*benchchart.Chart {
	return []*benchchart.Chart{
		benchchart.CategoryComparison(g, benchchart.CategoryOptions{
			Category:           benchproc.ColTestcase,
			CategoryTitle:      testcaseTitle,
			HideCategoryLabels: true,
			Color:              benchproc.ColTestcase,
			ColorTitle:         testcaseTitle,
			Width:              200,
			Style:              benchchart.TitleWords,
			WrapWidth:          benchchart.DefaultWrapWidth,
		}),
	}
}

// Fulcrum reports Fulcrum encoder and decoder benchmarks. For each
// (benchmark, symbols, expansion, symbol_bytes) group it plots every
// run, with a glyph per testcase and a color per field, and the mean
// throughput of each testcase and field. It then
// compares testcases across benchmarks for each (symbols,
// symbol_bytes, expansion, systematic) configuration, with one facet
// per field.
var Fulcrum = &Kind{
	Name:    "fulcrum",
	Command: "fulcrumplot",
	Filter:  benchproc.ExcludeAggregates,
	Schemas: []*benchproc.Schema{{
		Name: "fulcrum",
		Dims: []benchproc.Dim{
			{Field: "repetitions", Name: "runs"},
			{Field: "repetition_index", Name: "run_index"},
			{Field: "symbols"},
			{Field: "symbol_bytes"},
			{Field: "expansion"},
			{Field: "systematic"},
		},
	}},
	Plans: []Plan{
		{Schema: "fulcrum", Fields: []string{"benchmark", "symbols", "expansion", "symbol_bytes"}, Charts: fulcrumCharts},
		{Schema: "fulcrum", Fields: []string{"symbols", "symbol_bytes", "expansion", "systematic"}, Charts: fulcrumCrossCharts},
	},
	Output: "benchmark_results/fulcrum_chart.html",
}

func fulcrumCharts(g *benchproc.Group) []*benchchart.Chart {
	return []*benchchart.Chart{
		benchchart.CategoryComparison(g, benchchart.CategoryOptions{
			Category:      "run_index",
			CategoryTitle: runsTitle,
			Color:         benchproc.ColField,
			ColorTitle:    fieldTitle,
			Runs:          true,
			Shape:         benchproc.ColTestcase,
			ShapeTitle:    testcaseTitle,
			Style:         benchchart.TitleSentence,
			WrapWidth:     benchchart.DefaultWrapWidth,
		}),
		benchchart.MeanView(g, benchchart.MeanOptions{
			Category:      benchproc.ColTestcase,
			CategoryTitle: testcaseTitle,
			Offset:        benchproc.ColField,
			Color:         benchproc.ColField,
			ColorTitle:    finiteField,
			Height:        200,
			Style:         benchchart.TitleSentence,
			WrapWidth:     benchchart.DefaultWrapWidth,
		}),
	}
}

func fulcrumCrossCharts(g *benchproc.Group) []*benchchart.Chart {
	return []*benchchart.Chart{
		benchchart.CrossComparison(g, benchchart.CrossOptions{
			Title:         "Fulcrum Encode vs Decode",
			Category:      benchproc.ColTestcase,
			CategoryTitle: testcaseTitle,
			Facet:         benchproc.ColField,
			Width:         300,
			Height:        150,
			WrapWidth:     benchchart.DefaultWrapWidth,
		}),
	}
}

// Kinds lists every report kind.
var Kinds = []*Kind{Arithmetic, Fulcrum}

// Lookup returns the Kind named name.
func Lookup(name string) (*Kind, bool) {
	for _, k := range Kinds {
		if k.Name == name {
			return k, true
		}
	}
	return nil, false
}

// Names returns the names of all kinds.
func Names() []string {
	var names []string
	for _, k := range Kinds {
		names = append(names, k.Name)
	}
	return names
}
