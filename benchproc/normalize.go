// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchproc

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"benchviz/benchfmt"
	"benchviz/benchunit"

	"github.com/aclements/go-gg/table"
)

// A Population is the normalized form of every record that one Schema
// selected.
type Population struct {
	Schema *Schema

	// Table has the columns given by Schema.Columns. Index is
	// []int, benchmark, testcase and field are []string,
	// throughput is []float64, and each Dim is []int or, for
	// byte dimensions, ByteLabels.
	Table *table.Table
}

// Len returns the number of records in p.
func (p *Population) Len() int {
	return p.Table.Len()
}

// A Row is one normalized record, keyed by column name.
type Row map[string]interface{}

// Records returns the rows of p in order.
func (p *Population) Records() []Row {
	return Rows(p.Table)
}

// Rows returns the rows of t in order. Constant columns are repeated
// in every row.
func Rows(t *table.Table) []Row {
	rows := make([]Row, t.Len())
	for i := range rows {
		rows[i] = make(Row, len(t.Columns()))
	}
	for _, col := range t.Columns() {
		seq := reflect.ValueOf(t.Column(col))
		for i := range rows {
			rows[i][col] = seq.Index(i).Interface()
		}
	}
	return rows
}

// ByteLabels is a column of byte-size labels produced by
// benchunit.ByteLabel. It sorts by the byte count, so "64 B" comes
// before "1024 B".
type ByteLabels []string

func (s ByteLabels) Len() int      { return len(s) }
func (s ByteLabels) Swap(i, j int) { s[i], s[j] = s[j], s[i] }
func (s ByteLabels) Less(i, j int) bool { return order(s[i], s[j]) < 0 }

// popBuilder accumulates the columns of one Population.
type popBuilder struct {
	schema *Schema

	index      []int
	benchmark  []string
	testcase   []string
	field      []string
	throughput []float64
	ints       [][]int
	labels     []ByteLabels
}

func newPopBuilder(s *Schema) *popBuilder {
	return &popBuilder{
		schema:     s,
		index:      []int{},
		benchmark:  []string{},
		testcase:   []string{},
		field:      []string{},
		throughput: []float64{},
		ints:       make([][]int, len(s.Dims)),
		labels:     make([]ByteLabels, len(s.Dims)),
	}
}

func (b *popBuilder) add(r *benchfmt.Record) error {
	s := b.schema
	fail := func(field, msg string, err error) error {
		return &SchemaError{Stage: "normalize", Schema: s.Name, Index: r.Index, Field: field, Msg: msg, Err: err}
	}

	name, ok := r.Text("name")
	if !ok {
		return fail("name", missingOrMistyped(r, "name", "string"), nil)
	}
	label, ok := r.Text("label")
	if !ok {
		return fail("label", missingOrMistyped(r, "label", "string"), nil)
	}
	bps, ok := r.Float("bytes_per_second")
	if !ok {
		return fail("bytes_per_second", missingOrMistyped(r, "bytes_per_second", "number"), nil)
	}

	// Check every dimension before appending anything, so a
	// failed record leaves the columns aligned.
	vals := make([]int, len(s.Dims))
	for i, d := range s.Dims {
		n, ok := r.Number(d.Field)
		if !ok {
			return fail(d.Field, missingOrMistyped(r, d.Field, "number"), nil)
		}
		v, err := integral(n)
		if err != nil {
			return fail(d.Field, "not an integer", err)
		}
		if d.Bytes && v < 0 {
			return fail(d.Field, "negative byte count", nil)
		}
		vals[i] = v
	}

	bench, tc := SplitName(name)
	b.index = append(b.index, r.Index)
	b.benchmark = append(b.benchmark, bench)
	b.testcase = append(b.testcase, tc)
	b.field = append(b.field, label)
	b.throughput = append(b.throughput, benchunit.MBPerSecond(bps))
	for i, d := range s.Dims {
		if d.Bytes {
			b.labels[i] = append(b.labels[i], benchunit.ByteLabel(vals[i]))
		} else {
			b.ints[i] = append(b.ints[i], vals[i])
		}
	}
	return nil
}

func (b *popBuilder) done() *Population {
	var tb table.Builder
	tb.Add(ColIndex, b.index).
		Add(ColBenchmark, b.benchmark).
		Add(ColTestcase, b.testcase).
		Add(ColField, b.field).
		Add(ColThroughput, b.throughput)
	for i, d := range b.schema.Dims {
		if d.Bytes {
			col := b.labels[i]
			if col == nil {
				col = ByteLabels{}
			}
			tb.Add(d.Column(), col)
		} else {
			col := b.ints[i]
			if col == nil {
				col = []int{}
			}
			tb.Add(d.Column(), col)
		}
	}
	return &Population{Schema: b.schema, Table: tb.Done()}
}

func missingOrMistyped(r *benchfmt.Record, field, typ string) string {
	if !r.Has(field) {
		return "missing required field"
	}
	return "not a " + typ
}

var (
	errFractional = errors.New("has a fractional part")
	errInexact    = errors.New("is too large to be exact")
)

// integral converts n to an int if it represents one exactly. Harness
// counters are doubles, so "2e+02" and "200.0" are both 200.
func integral(n json.Number) (int, error) {
	if v, err := strconv.ParseInt(string(n), 10, 0); err == nil {
		return int(v), nil
	}
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("%s %w", n, errFractional)
	}
	if math.Abs(f) > 1<<53 {
		return 0, fmt.Errorf("%s %w", n, errInexact)
	}
	return int(f), nil
}

// SplitName splits a compound result name such as
// "BM_region_add/basic" into its benchmark ("region_add") and testcase
// ("basic"). The testcase is empty if the name has no "/". Segments
// after the second are ignored.
func SplitName(name string) (benchmark, testcase string) {
	benchmark, rest, _ := strings.Cut(name, "/")
	testcase, _, _ = strings.Cut(rest, "/")
	return strings.TrimPrefix(benchmark, "BM_"), testcase
}

// Normalize assigns each record to the first of schemas that selects
// it and converts it to that Schema's normalized form. It returns one
// Population per Schema, in the order of schemas, including empty
// ones.
//
// A record that no Schema selects, or that lacks or mistypes a field
// its Schema requires, causes a *SchemaError. Normalize never
// modifies recs.
func Normalize(recs []*benchfmt.Record, schemas ...*Schema) ([]*Population, error) {
	builders := make([]*popBuilder, len(schemas))
	for i, s := range schemas {
		builders[i] = newPopBuilder(s)
	}

recs:
	for _, r := range recs {
		for i, s := range schemas {
			if !s.selects(r) {
				continue
			}
			if err := builders[i].add(r); err != nil {
				return nil, err
			}
			continue recs
		}
		return nil, &SchemaError{Stage: "normalize", Index: r.Index, Msg: "result matches no schema"}
	}

	pops := make([]*Population, len(builders))
	for i, b := range builders {
		pops[i] = b.done()
	}
	return pops, nil
}
