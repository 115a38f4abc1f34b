// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import (
	"fmt"
	"regexp"
	"strconv"
)

var byteLabelRe = regexp.MustCompile(`^([0-9]+) B$`)

// ByteLabel formats a byte count as a categorical label such as
// "256 B". Labels are unscaled so that distinct sizes never collide.
func ByteLabel(n int) string {
	if n < 0 {
		panic(fmt.Sprintf("negative byte count %d", n))
	}
	return strconv.Itoa(n) + " B"
}

// ParseByteLabel parses a label produced by ByteLabel.
func ParseByteLabel(label string) (int, error) {
	m := byteLabelRe.FindStringSubmatch(label)
	if m == nil {
		return 0, fmt.Errorf("malformed byte label %q", label)
	}
	return strconv.Atoi(m[1])
}
