// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// A Reader reads a benchmark result document.
//
// Unlike a streaming reader, a Reader materializes the whole document:
// a report needs every result before it can be rendered, and a
// malformed document must be rejected before anything is produced.
type Reader struct {
	r        io.Reader
	fileName string
}

// An InputError reports a document that could not be read or does not
// have the expected top-level shape.
type InputError struct {
	FileName string
	// Index is the offending position in "benchmarks", or -1 if the
	// error is not specific to one result.
	Index int
	Msg   string
	Err   error // underlying error, if any
}

func (e *InputError) Error() string {
	where := e.FileName
	if e.Index >= 0 {
		where = fmt.Sprintf("%s: benchmarks[%d]", e.FileName, e.Index)
	}
	if e.Err != nil {
		return fmt.Sprintf("load %s: %s: %v", where, e.Msg, e.Err)
	}
	return fmt.Sprintf("load %s: %s", where, e.Msg)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// NewReader constructs a reader for the document in r. fileName is
// used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	if fileName == "" {
		fileName = "<unknown>"
	}
	return &Reader{r: r, fileName: fileName}
}

func (r *Reader) newInputError(index int, msg string, err error) *InputError {
	return &InputError{r.fileName, index, msg, err}
}

// Read decodes the document. It returns an *InputError if the input is
// not valid JSON, is not an object, lacks the "context" or
// "benchmarks" keys, or if "benchmarks" is not an array of objects.
func (r *Reader) Read() (*Document, error) {
	data, err := io.ReadAll(r.r)
	if err != nil {
		return nil, r.newInputError(-1, "reading input", err)
	}

	var top map[string]json.RawMessage
	if err := decode(data, &top); err != nil {
		return nil, r.newInputError(-1, "invalid document", err)
	}
	if top == nil {
		return nil, r.newInputError(-1, "document is not an object", nil)
	}

	rawCtx, ok := top["context"]
	if !ok {
		return nil, r.newInputError(-1, `missing top-level key "context"`, nil)
	}
	var ctx map[string]interface{}
	if err := decode(rawCtx, &ctx); err != nil || ctx == nil {
		return nil, r.newInputError(-1, `"context" is not an object`, err)
	}

	rawBench, ok := top["benchmarks"]
	if !ok {
		return nil, r.newInputError(-1, `missing top-level key "benchmarks"`, nil)
	}
	var entries []json.RawMessage
	if err := decode(rawBench, &entries); err != nil || entries == nil {
		return nil, r.newInputError(-1, `"benchmarks" is not an array`, err)
	}

	doc := &Document{Context: ctx, Benchmarks: make([]*Record, 0, len(entries))}
	for i, raw := range entries {
		var fields map[string]interface{}
		if err := decode(raw, &fields); err != nil || fields == nil {
			return nil, r.newInputError(i, "result is not an object", err)
		}
		doc.Benchmarks = append(doc.Benchmarks, &Record{Index: i, Fields: fields})
	}
	return doc, nil
}

// decode unmarshals data into v, keeping numbers as json.Number.
// A JSON value of the wrong shape is reported as an error; JSON null
// leaves v at its zero value.
func decode(data []byte, v interface{}) error {
	d := json.NewDecoder(bytes.NewReader(data))
	d.UseNumber()
	if err := d.Decode(v); err != nil {
		return err
	}
	if d.More() {
		return fmt.Errorf("unexpected data after top-level value")
	}
	return nil
}

// ReadFile reads and decodes the document at path.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &InputError{path, -1, "opening input", err}
	}
	defer f.Close()
	return NewReader(f, path).Read()
}
