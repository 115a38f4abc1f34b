// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"encoding/json"
	"io"
)

// A Writer writes benchmark result documents.
type Writer struct {
	w      io.Writer
	indent string
}

// NewWriter returns a writer that writes documents to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, indent: "  "}
}

// SetIndent sets the per-level indentation. An empty string writes
// each document on a single line.
func (w *Writer) SetIndent(indent string) {
	w.indent = indent
}

type document struct {
	Context    map[string]interface{}   `json:"context"`
	Benchmarks []map[string]interface{} `json:"benchmarks"`
}

// Write writes doc to w in a form that Reader accepts. Records are
// written in slice order; their Index fields are not consulted.
// A nil Context is written as an empty object.
func (w *Writer) Write(doc *Document) error {
	out := document{
		Context:    doc.Context,
		Benchmarks: make([]map[string]interface{}, len(doc.Benchmarks)),
	}
	if out.Context == nil {
		out.Context = map[string]interface{}{}
	}
	for i, rec := range doc.Benchmarks {
		out.Benchmarks[i] = rec.Fields
		if out.Benchmarks[i] == nil {
			out.Benchmarks[i] = map[string]interface{}{}
		}
	}

	enc := json.NewEncoder(w.w)
	if w.indent != "" {
		enc.SetIndent("", w.indent)
	}
	return enc.Encode(out)
}
