// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchproc

import (
	"benchviz/benchunit"

	"github.com/aclements/go-gg/generic"
)

// Less reports whether k comes before o in ascending key order. Values
// are compared field by field in their natural order, except that
// byte-size labels compare by byte count. It panics if k and o have
// different fields or a field's values are not orderable.
func (k Key) Less(o Key) bool {
	if len(k.Fields) != len(o.Fields) {
		panic("cannot compare Keys with different fields")
	}
	for i := range k.Values {
		if k.Fields[i] != o.Fields[i] {
			panic("cannot compare Keys with different fields")
		}
		if c := order(k.Values[i], o.Values[i]); c != 0 {
			return c < 0
		}
	}
	return false
}

func order(a, b interface{}) int {
	as, aok := a.(string)
	bs, bok := b.(string)
	if aok && bok {
		an, erra := benchunit.ParseByteLabel(as)
		bn, errb := benchunit.ParseByteLabel(bs)
		if erra == nil && errb == nil {
			return generic.Order(an, bn)
		}
	}
	return generic.Order(a, b)
}
