// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchchart describes throughput charts independently of how
// they are drawn.
//
// A Chart is a declarative description: a title, the rows it plots,
// and an ordered list of Layers that each map row fields to visual
// channels. Multi-mark charts, such as bars with value labels or
// points with a mean rule, are expressed as several Layers over the
// same axes. Backends, such as package vegalite for browser reports
// and package plotimg for static images, composite Layers uniformly.
//
// The builders in this package turn a benchproc.Group into Charts.
// They never modify the Group; aggregates such as means are computed
// while building and stored in the Chart's own rows.
package benchchart

import "benchviz/benchproc"

// A MarkType is the kind of graphical mark a Layer draws.
type MarkType string

const (
	Bar   MarkType = "bar"
	Point MarkType = "point"
	Rule  MarkType = "rule"
	Text  MarkType = "text"
)

// A Mark is a mark type plus its fixed visual options.
type Mark struct {
	Type MarkType

	// DX and DY offset text marks, in pixels.
	DX, DY float64

	// Color, if set, is a fixed color for every mark, such as
	// "white". It overrides any color encoding.
	Color string
}

// A FieldType is the measurement type of an encoded field.
type FieldType string

const (
	Nominal      FieldType = "nominal"
	Quantitative FieldType = "quantitative"
)

// A Channel binds a row field to a visual channel.
type Channel struct {
	Field string
	Type  FieldType

	// Title is the axis or legend title. If empty, backends use
	// Field.
	Title string

	// HideLabels suppresses axis tick labels.
	HideLabels bool

	// Format is a d3-format specifier for text and tick labels,
	// such as ".1f".
	Format string

	// Stack is the stacking mode of a quantitative channel, such
	// as "zero". Empty means the backend default.
	Stack string
}

// An Encoding maps fields to the channels of one Layer. Nil channels
// are unused.
type Encoding struct {
	X, Y  *Channel
	Color *Channel
	Text  *Channel

	// Shape sets the glyph of point marks.
	Shape *Channel

	// Detail groups marks by a field without a visual channel.
	Detail *Channel

	// YOffset places marks of the same Y category side by side.
	YOffset *Channel
}

// A Layer is one mark drawn over a Chart's axes.
type Layer struct {
	Mark     Mark
	Encoding Encoding

	// Data, if non-nil, replaces the Chart's rows for this Layer.
	Data []benchproc.Row
}

// A Chart is a complete chart description.
type Chart struct {
	Title    string
	Subtitle []string

	// TitleAnchor and TitleOrient position the title, such as
	// "middle" and "top". Empty means the backend default.
	TitleAnchor string
	TitleOrient string

	// Width and Height are size hints in pixels. Zero means the
	// backend default. For faceted charts they size each facet.
	Width, Height int

	// Data are the rows plotted by Layers without their own data.
	Data []benchproc.Row

	// Layers are drawn in order, later layers on top.
	Layers []*Layer

	// Facet, if non-nil, splits the chart into one column per
	// value of the facet field.
	Facet *Channel
}

// LayerData returns the rows drawn by l.
func (c *Chart) LayerData(l *Layer) []benchproc.Row {
	if l.Data != nil {
		return l.Data
	}
	return c.Data
}

// Values returns the distinct values of field in rows, in order of
// first appearance.
func Values(rows []benchproc.Row, field string) []interface{} {
	var out []interface{}
	seen := make(map[interface{}]bool)
	for _, r := range rows {
		v, ok := r[field]
		if !ok || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
