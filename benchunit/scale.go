// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import (
	"fmt"
	"strconv"
	"strings"
)

// prefixes are the supported unit prefixes in increasing order. The
// exponent of prefixes[i] is i+1.
const prefixes = "kMGT"

// Factor returns the multiplier of a unit prefix such as "k" or "M"
// under class cls. The empty prefix has factor 1. Binary factors are
// exact powers of two.
func Factor(prefix string, cls Class) (float64, error) {
	if prefix == "" {
		return 1, nil
	}
	i := strings.Index(prefixes, prefix)
	if len(prefix) != 1 || i < 0 {
		return 0, fmt.Errorf("unknown unit prefix %q", prefix)
	}
	exp := i + 1
	switch cls {
	case Binary:
		return float64(uint64(1) << (10 * exp)), nil
	case Decimal:
		f := 1.0
		for ; exp > 0; exp-- {
			f *= 1000
		}
		return f, nil
	}
	return 0, fmt.Errorf("bad Class %v", cls)
}

// Prefixed expresses val, measured in unit, in multiples of prefix.
// The prefix class is ClassOf(unit); for example,
// Prefixed(2097152, "B/s", "M") is 2.
func Prefixed(val float64, unit, prefix string) (float64, error) {
	f, err := Factor(prefix, ClassOf(unit))
	if err != nil {
		return 0, err
	}
	return val / f, nil
}

// ThroughputUnit is the unit benchmark harnesses report throughput
// in.
const ThroughputUnit = "B/s"

// MBPerSecond converts a throughput in bytes per second to MB/s. The
// prefix is binary because ThroughputUnit measures bytes, so the
// result is exactly bytesPerSecond / 1048576.
func MBPerSecond(bytesPerSecond float64) float64 {
	v, err := Prefixed(bytesPerSecond, ThroughputUnit, "M")
	if err != nil {
		panic(err)
	}
	return v
}

// A Scaler represents a scaling factor for a number and
// its fixed-point representation.
type Scaler struct {
	Prec   int     // Digits after the decimal point
	Factor float64 // Unscaled value of 1 Prefix (e.g., 1 k => 1000)
	Prefix string  // Unit prefix ("k", "M", etc)
}

// LabelScaler formats throughput values shown as text on charts, with
// one digit after the decimal point.
var LabelScaler = Scaler{Prec: 1, Factor: 1}

// Format formats val and appends the unit prefix according to the
// given scale. For example, LabelScaler.Format(4) returns "4.0".
func (s Scaler) Format(val float64) string {
	buf := make([]byte, 0, 20)
	buf = strconv.AppendFloat(buf, val/s.Factor, 'f', s.Prec, 64)
	buf = append(buf, s.Prefix...)
	return string(buf)
}

// D3Format returns the d3-format specifier that client-side renderers
// use to produce the same text as Format. It panics if s has a factor
// or prefix, which d3 fixed-point formats cannot express.
func (s Scaler) D3Format() string {
	if s.Factor != 1 || s.Prefix != "" {
		panic("D3Format of a prefixed Scaler")
	}
	return "." + strconv.Itoa(s.Prec) + "f"
}
