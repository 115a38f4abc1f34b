// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import (
	"regexp"
	"testing"
)

func TestByteLabel(t *testing.T) {
	shape := regexp.MustCompile(`^[0-9]+ B$`)
	for _, n := range []int{0, 1, 128, 256, 1400, 1 << 20, 1<<31 - 1} {
		label := ByteLabel(n)
		if !shape.MatchString(label) {
			t.Errorf("ByteLabel(%d) = %q, not of the form <digits> B", n, label)
		}

		// Formatting is stable: parsing a label and formatting
		// it again yields the same label.
		back, err := ParseByteLabel(label)
		if err != nil {
			t.Fatalf("ParseByteLabel(%q): %v", label, err)
		}
		if back != n {
			t.Errorf("ParseByteLabel(%q) = %d, want %d", label, back, n)
		}
		if again := ByteLabel(back); again != label {
			t.Errorf("re-formatting %q gave %q", label, again)
		}
	}
	if got := ByteLabel(256); got != "256 B" {
		t.Errorf("ByteLabel(256) = %q, want \"256 B\"", got)
	}
}

func TestParseByteLabelErrors(t *testing.T) {
	for _, bad := range []string{"", "256", "256B", "256 B ", "-1 B", "1.5 B", "256 KiB", "256 B B"} {
		if n, err := ParseByteLabel(bad); err == nil {
			t.Errorf("ParseByteLabel(%q) = %d, want error", bad, n)
		}
	}
}

func TestByteLabelNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("ByteLabel(-1) did not panic")
		}
	}()
	ByteLabel(-1)
}
