// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"fmt"

	"benchviz/benchproc"
	"benchviz/benchunit"

	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
)

// ThroughputTitle is the axis title of every throughput channel.
const ThroughputTitle = "Throughput [MB/s]"

// MeanThroughput is the column that holds mean throughput in
// aggregated rows.
const MeanThroughput = "mean " + benchproc.ColThroughput

// CategoryOptions configures CategoryComparison.
type CategoryOptions struct {
	// Category is the field plotted along X, such as "testcase".
	Category      string
	CategoryTitle string

	// HideCategoryLabels hides the X tick labels. The legend
	// still names each category.
	HideCategoryLabels bool

	// Color is the field that colors marks.
	Color      string
	ColorTitle string

	// Runs indicates Category is an ordered run index. Such charts
	// show one point per run and a rule at the mean of each color
	// instead of bars.
	Runs bool

	// Shape, if set, gives run points a glyph per value and splits
	// the mean rules by it. It only applies to Runs charts.
	Shape      string
	ShapeTitle string

	Width, Height int
	Style         TitleStyle
	WrapWidth     int
}

// CategoryComparison builds a chart comparing the throughput of each
// Category value in g. The title is g's subject and the subtitle is
// its configuration. It returns nil if g is empty.
func CategoryComparison(g *benchproc.Group, o CategoryOptions) *Chart {
	if g.Len() == 0 {
		return nil
	}
	c := &Chart{
		Title:    Title(fmt.Sprint(g.Key.Subject()), o.Style),
		Subtitle: Subtitle(g.Key.Config(), o.WrapWidth),
		Width:    o.Width,
		Height:   o.Height,
		Data:     g.Records(),
	}
	y := &Channel{Field: benchproc.ColThroughput, Type: Quantitative, Title: ThroughputTitle}
	color := &Channel{Field: o.Color, Type: Nominal, Title: o.ColorTitle}

	if !o.Runs {
		c.Layers = []*Layer{{
			Mark: Mark{Type: Bar},
			Encoding: Encoding{
				X:     &Channel{Field: o.Category, Type: Nominal, Title: o.CategoryTitle, HideLabels: o.HideCategoryLabels},
				Y:     y,
				Color: color,
			},
		}}
		return c
	}

	points := &Layer{
		Mark: Mark{Type: Point},
		Encoding: Encoding{
			X:     &Channel{Field: o.Category, Type: Quantitative, Title: o.CategoryTitle, HideLabels: o.HideCategoryLabels},
			Y:     y,
			Color: color,
		},
	}
	rules := &Layer{
		Mark: Mark{Type: Rule},
		Encoding: Encoding{
			Y:     &Channel{Field: MeanThroughput, Type: Quantitative},
			Color: &Channel{Field: o.Color, Type: Nominal},
		},
	}
	by := []string{o.Color}
	if o.Shape != "" && o.Shape != o.Color {
		points.Encoding.Shape = &Channel{Field: o.Shape, Type: Nominal, Title: o.ShapeTitle}
		rules.Encoding.Detail = &Channel{Field: o.Shape, Type: Nominal}
		by = append(by, o.Shape)
	}
	rules.Data = MeanRows(g, by...)
	c.Layers = []*Layer{points, rules}
	return c
}

// MeanOptions configures MeanView.
type MeanOptions struct {
	// Category is the field along the Y axis.
	Category      string
	CategoryTitle string

	// Offset, if set, splits each Category into side-by-side bars,
	// one per value of Offset.
	Offset string

	Color      string
	ColorTitle string

	Width, Height int
	Style         TitleStyle
	WrapWidth     int
}

// MeanView builds a horizontal bar chart of the mean throughput of
// each Category (and Offset) in g, with each bar labeled by its value.
// It returns nil if g is empty.
func MeanView(g *benchproc.Group, o MeanOptions) *Chart {
	if g.Len() == 0 {
		return nil
	}
	by := []string{o.Category}
	if o.Offset != "" && o.Offset != o.Category {
		by = append(by, o.Offset)
	}
	c := &Chart{
		Title:    Title(fmt.Sprint(g.Key.Subject()), o.Style),
		Subtitle: Subtitle(g.Key.Config(), o.WrapWidth),
		Width:    o.Width,
		Height:   o.Height,
		Data:     MeanRows(g, by...),
	}

	x := func() *Channel {
		return &Channel{Field: MeanThroughput, Type: Quantitative, Title: ThroughputTitle, Stack: "zero"}
	}
	y := func() *Channel {
		return &Channel{Field: o.Category, Type: Nominal, Title: o.CategoryTitle}
	}
	var offset *Channel
	if len(by) > 1 {
		offset = &Channel{Field: o.Offset, Type: Nominal}
	}

	bar := &Layer{
		Mark: Mark{Type: Bar},
		Encoding: Encoding{
			X:       x(),
			Y:       y(),
			Color:   &Channel{Field: o.Color, Type: Nominal, Title: o.ColorTitle},
			YOffset: offset,
		},
	}
	label := &Layer{
		Mark: Mark{Type: Text, DX: -15, DY: 3, Color: "white"},
		Encoding: Encoding{
			X:       x(),
			Y:       y(),
			Detail:  &Channel{Field: o.Color, Type: Nominal},
			Text:    &Channel{Field: MeanThroughput, Type: Quantitative, Format: benchunit.LabelScaler.D3Format()},
			YOffset: offset,
		},
	}
	label.Encoding.X.Title = ""
	label.Encoding.Y.Title = ""
	c.Layers = []*Layer{bar, label}
	return c
}

// CrossOptions configures CrossComparison.
type CrossOptions struct {
	// Title is the fixed chart title.
	Title string

	// Category is the field compared within each facet.
	Category      string
	CategoryTitle string

	// Facet is the field that splits the chart into columns.
	Facet string

	Width, Height int
	WrapWidth     int
}

// CrossComparison builds a faceted horizontal bar chart of the mean
// throughput of each Category, with one column per Facet value. Its
// subtitle lists every field of g's key. It returns nil if g is
// empty.
func CrossComparison(g *benchproc.Group, o CrossOptions) *Chart {
	if g.Len() == 0 {
		return nil
	}
	return &Chart{
		Title:       o.Title,
		Subtitle:    Subtitle(g.Key, o.WrapWidth),
		TitleAnchor: "middle",
		TitleOrient: "top",
		Width:       o.Width,
		Height:      o.Height,
		Data:        MeanRows(g, o.Facet, o.Category),
		Layers: []*Layer{{
			Mark: Mark{Type: Bar},
			Encoding: Encoding{
				X:     &Channel{Field: MeanThroughput, Type: Quantitative, Title: ThroughputTitle, Stack: "zero"},
				Y:     &Channel{Field: o.Category, Type: Nominal, Title: o.CategoryTitle},
				Color: &Channel{Field: o.Category, Type: Nominal, Title: o.CategoryTitle},
			},
		}},
		Facet: &Channel{Field: o.Facet, Type: Nominal},
	}
}

// MeanRows returns one row per distinct combination of the by fields
// in g, in ascending order, holding those fields, every field that is
// constant within the combination, and MeanThroughput. g is not
// modified.
func MeanRows(g *benchproc.Group, by ...string) []benchproc.Row {
	if g.Len() == 0 {
		return nil
	}
	var t table.Grouping = g.Table
	for i := len(by) - 1; i >= 0; i-- {
		t = table.SortBy(t, by[i])
	}
	t = ggstat.Agg(by...)(ggstat.AggMean(benchproc.ColThroughput)).F(t)
	return benchproc.Rows(table.Flatten(t))
}
