// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchproc

import (
	"fmt"
	"strings"
)

// A Key is the tuple of values a Group's records share, in grouping
// field order. Values keep the type of their column, so the int 256
// and the string "256" are different keys.
type Key struct {
	Fields []string
	Values []interface{}
}

// IsZero reports whether k has no fields.
func (k Key) IsZero() bool {
	return len(k.Fields) == 0
}

// Get returns the value of field f in this Key.
func (k Key) Get(f string) (interface{}, bool) {
	for i, name := range k.Fields {
		if name == f {
			return k.Values[i], true
		}
	}
	return nil, false
}

// Subject returns the value of the first field, which names the thing
// a Group's charts are about. It panics if k is zero.
func (k Key) Subject() interface{} {
	if k.IsZero() {
		panic("zero Key has no subject")
	}
	return k.Values[0]
}

// Config returns the Key without its subject field.
func (k Key) Config() Key {
	if k.IsZero() {
		return k
	}
	return Key{k.Fields[1:], k.Values[1:]}
}

// String returns Key as a space-separated sequence of field:value
// pairs in field order.
func (k Key) String() string {
	if k.IsZero() {
		return "<zero>"
	}
	buf := new(strings.Builder)
	for i, f := range k.Fields {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(buf, "%s:%v", f, k.Values[i])
	}
	return buf.String()
}
