// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchproc

import "benchviz/benchfmt"

// A Filter removes records from a result set before normalization.
type Filter struct {
	// Name identifies the exclusion marker in diagnostics, such as
	// "error_occurred".
	Name string

	// Exclude reports whether r should be dropped. It must not
	// modify r.
	Exclude func(r *benchfmt.Record) bool
}

// ExcludeErrors drops results whose "error_occurred" field is true.
var ExcludeErrors = &Filter{
	Name: "error_occurred",
	Exclude: func(r *benchfmt.Record) bool {
		failed, _ := r.Bool("error_occurred")
		return failed
	},
}

// ExcludeAggregates drops harness-computed summary results, which
// carry a non-empty "aggregate_name" such as "mean" or "stddev".
// These summarize repetitions that are themselves in the document,
// so keeping them would count each run twice.
var ExcludeAggregates = &Filter{
	Name: "aggregate_name",
	Exclude: func(r *benchfmt.Record) bool {
		agg, _ := r.Text("aggregate_name")
		return agg != ""
	},
}

// Match reports whether r survives f. A nil Filter keeps everything.
func (f *Filter) Match(r *benchfmt.Record) bool {
	return f == nil || f.Exclude == nil || !f.Exclude(r)
}

// Apply returns the records of recs that survive f, in their original
// order. It never modifies recs or the records themselves; the result
// shares record pointers with recs.
func (f *Filter) Apply(recs []*benchfmt.Record) []*benchfmt.Record {
	out := make([]*benchfmt.Record, 0, len(recs))
	for _, r := range recs {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

func (f *Filter) String() string {
	if f == nil {
		return "<none>"
	}
	return "exclude " + f.Name
}
