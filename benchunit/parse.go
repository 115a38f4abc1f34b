// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchunit converts benchmark measurements between units and
// formats them for display.
//
// Benchmark harnesses report throughput in base units (bytes per
// second); reports show it in prefixed units (MB/s). Whether a prefix
// means a power of 1000 or of 1024 depends on the unit: anything
// measuring bytes scales in binary steps.
package benchunit

import (
	"fmt"
	"strings"
	"unicode"
)

// A Class specifies what class of unit prefixes are in use.
type Class int

const (
	// Decimal indicates values of a given unit should be scaled
	// by powers of 1000, as in "k" and "M".
	Decimal Class = iota
	// Binary indicates values of a given unit should be scaled by
	// powers of 1024. Throughput in bytes is Binary, so "MB/s"
	// means 1024*1024 bytes per second.
	Binary
)

func (c Class) String() string {
	switch c {
	case Decimal:
		return "Decimal"
	case Binary:
		return "Binary"
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// ClassOf returns the Class of unit. A unit is a product of terms
// joined by "*" and "/"; a term after "/" is in the denominator until
// the next "*". If some numerator term measures bytes, the class is
// Binary. Otherwise, it is Decimal.
func ClassOf(unit string) Class {
	denom := false
	for {
		i := strings.IndexAny(unit, "*/")
		term := unit
		if i >= 0 {
			term = unit[:i]
		}
		if !denom && countsBytes(term) {
			return Binary
		}
		if i < 0 {
			return Decimal
		}
		denom = unit[i] == '/'
		unit = unit[i+1:]
	}
}

// countsBytes reports whether a unit term such as "B" or "disk-B"
// counts bytes.
func countsBytes(term string) bool {
	words := strings.FieldsFunc(term, func(r rune) bool {
		return r == '-' || unicode.IsSpace(r)
	})
	for _, w := range words {
		switch w {
		case "B", "MB", "bytes":
			return true
		}
	}
	return false
}
