// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"benchviz/benchproc"

	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// A TitleStyle is the case normalization applied to chart titles.
type TitleStyle int

const (
	// TitleWords capitalizes every word: "Region Multiply Add".
	TitleWords TitleStyle = iota
	// TitleSentence capitalizes only the first letter: "Fulcrum
	// encoder".
	TitleSentence
)

// DefaultWrapWidth is the subtitle line width used when none is given.
const DefaultWrapWidth = 70

// Title turns a subject value such as "region_multiply_add" into a
// chart title. Underscores become spaces and case is normalized
// according to style.
func Title(subject string, style TitleStyle) string {
	s := strings.ReplaceAll(subject, "_", " ")
	switch style {
	case TitleSentence:
		s = cases.Lower(language.English).String(s)
		r, n := utf8.DecodeRuneInString(s)
		if n == 0 {
			return s
		}
		return string(unicode.ToUpper(r)) + s[n:]
	default:
		return cases.Title(language.English).String(s)
	}
}

// Subtitle formats the fields of k as "field = value" pairs separated
// by ", " and wraps the result into lines at most width wide. If
// width <= 0, DefaultWrapWidth is used. A Key with no fields has no
// subtitle.
func Subtitle(k benchproc.Key, width int) []string {
	if k.IsZero() {
		return nil
	}
	if width <= 0 {
		width = DefaultWrapWidth
	}
	parts := make([]string, len(k.Fields))
	for i, f := range k.Fields {
		parts[i] = fmt.Sprintf("%s = %v", f, k.Values[i])
	}
	wrapped := wordwrap.String(strings.Join(parts, ", "), width)

	var lines []string
	for _, line := range strings.Split(wrapped, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
