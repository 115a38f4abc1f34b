// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchproc

import (
	"fmt"
	"strings"

	"benchviz/benchfmt"
)

// Columns present in every Population, in table order.
const (
	ColIndex      = "index"      // position of the record in the document
	ColBenchmark  = "benchmark"  // first name segment without "BM_"
	ColTestcase   = "testcase"   // second name segment, or ""
	ColField      = "field"      // the result's "label"
	ColThroughput = "throughput" // MB/s
)

var baseColumns = []string{ColIndex, ColBenchmark, ColTestcase, ColField, ColThroughput}

// A Schema is one named variant of benchmark result. Schemas form a
// closed set per report: every record belongs to exactly one of them,
// and populations of different Schemas are never merged.
type Schema struct {
	// Name identifies the variant, such as "region-vectors".
	Name string

	// Select reports whether a record belongs to this Schema. A nil
	// Select accepts every record.
	Select func(r *benchfmt.Record) bool

	// Dims are the integral configuration dimensions every record
	// of this Schema must carry, in column order.
	Dims []Dim
}

// A Dim is an integral dimension of a Schema.
type Dim struct {
	// Field is the name of the result field.
	Field string

	// Name is the name of the column in the normalized table. If
	// empty, it is Field.
	Name string

	// Bytes indicates the dimension counts bytes. Its column holds
	// labels such as "256 B" instead of ints.
	Bytes bool
}

// Column returns the name of d's column.
func (d Dim) Column() string {
	if d.Name != "" {
		return d.Name
	}
	return d.Field
}

// Columns returns the names of the columns of a Population of s, in
// table order.
func (s *Schema) Columns() []string {
	cols := append([]string(nil), baseColumns...)
	for _, d := range s.Dims {
		cols = append(cols, d.Column())
	}
	return cols
}

// HasColumn reports whether Populations of s have column col.
func (s *Schema) HasColumn(col string) bool {
	for _, c := range s.Columns() {
		if c == col {
			return true
		}
	}
	return false
}

func (s *Schema) selects(r *benchfmt.Record) bool {
	return s.Select == nil || s.Select(r)
}

func (s *Schema) String() string {
	return s.Name
}

// A SchemaError reports a record that does not fit the shape a
// pipeline stage expects.
type SchemaError struct {
	// Stage is the pipeline stage, "normalize" or "group".
	Stage string
	// Schema is the name of the Schema, if one was chosen.
	Schema string
	// Index is the record's position in the document, or -1.
	Index int
	// Field is the offending field or column, if any.
	Field string
	Msg   string
	Err   error
}

func (e *SchemaError) Error() string {
	var b strings.Builder
	b.WriteString(e.Stage)
	if e.Schema != "" {
		b.WriteString(" ")
		b.WriteString(e.Schema)
	}
	if e.Index >= 0 {
		fmt.Fprintf(&b, ": benchmarks[%d]", e.Index)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, ": field %q", e.Field)
	}
	b.WriteString(": ")
	b.WriteString(e.Msg)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}
