// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchfmt reads and writes benchmark result documents in the
// JSON format emitted by Google Benchmark
// (--benchmark_format=json or --benchmark_out).
//
// A document is a JSON object with two keys: "context", a free-form
// object describing the machine and run, and "benchmarks", an array of
// result objects. Each result object has a compound "name", a "label",
// a measured "bytes_per_second", and a harness-dependent set of numeric
// counters.
//
// The reader does not interpret result fields beyond checking their
// JSON shape. Numbers are retained as json.Number so that downstream
// consumers can distinguish integral configuration values from
// measurements without loss.
//
// This package is designed to be used with the higher-level packages
// benchunit and benchproc.
package benchfmt

import (
	"encoding/json"
	"sort"
	"strconv"
)

// A Document is a fully decoded benchmark result document.
type Document struct {
	// Context is the run metadata, forwarded verbatim from the
	// input's "context" object.
	Context map[string]interface{}

	// Benchmarks are the results in input order.
	Benchmarks []*Record
}

// A Record is a single raw benchmark result.
//
// Records are never modified after they are read. Consumers that
// need to reshape results should build their own data model from
// the fields.
type Record struct {
	// Index is the position of this record in the document's
	// "benchmarks" array.
	Index int

	// Fields are the decoded JSON members of the result object.
	// Numbers are json.Number, nested objects are
	// map[string]interface{}, and JSON null is a nil interface.
	Fields map[string]interface{}
}

// Name returns the compound benchmark name, such as
// "BM_region_add/basic", or "" if the record has no name.
func (r *Record) Name() string {
	s, _ := r.Text("name")
	return s
}

// Has reports whether the record has field key with a non-null value.
func (r *Record) Has(key string) bool {
	v, ok := r.Fields[key]
	return ok && v != nil
}

// Text returns the value of field key if it is a JSON string.
func (r *Record) Text(key string) (string, bool) {
	s, ok := r.Fields[key].(string)
	return s, ok
}

// Bool returns the value of field key if it is a JSON boolean.
func (r *Record) Bool(key string) (bool, bool) {
	b, ok := r.Fields[key].(bool)
	return b, ok
}

// Number returns the value of field key if it is a JSON number.
func (r *Record) Number(key string) (json.Number, bool) {
	n, ok := r.Fields[key].(json.Number)
	return n, ok
}

// Float returns the value of field key as a float64. It reports false
// if the field is absent, not a number, or out of range.
func (r *Record) Float(key string) (float64, bool) {
	n, ok := r.Number(key)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Keys returns the record's field names in sorted order.
func (r *Record) Keys() []string {
	keys := make([]string, 0, len(r.Fields))
	for k := range r.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone makes a copy of r that shares no top-level state with r.
// Nested objects and arrays are shared.
func (r *Record) Clone() *Record {
	r2 := &Record{Index: r.Index, Fields: make(map[string]interface{}, len(r.Fields))}
	for k, v := range r.Fields {
		r2.Fields[k] = v
	}
	return r2
}
