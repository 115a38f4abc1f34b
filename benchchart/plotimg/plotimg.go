// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plotimg draws benchchart.Charts as static PNG or SVG images
// using gonum.org/v1/plot.
package plotimg

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"benchviz/benchchart"
	"benchviz/benchproc"
	"benchviz/benchunit"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Formats are the supported image formats.
var Formats = []string{"png", "svg"}

// DPI is the resolution of PNG output.
const DPI = 96

// Default plot area size, in points, for charts without size hints.
const (
	defaultWidth  = 300
	defaultHeight = 200
)

const barWidth = vg.Length(14)

// Render draws c in the given format ("png" or "svg") and returns the
// encoded image.
func Render(c *benchchart.Chart, format string) (io.WriterTo, error) {
	ps, err := Plots(c)
	if err != nil {
		return nil, err
	}

	w, h := size(c, len(ps))
	var cw vg.CanvasWriterTo
	switch format {
	case "png":
		cw = vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(w, h),
			vgimg.UseDPI(DPI), vgimg.UseBackgroundColor(color.White))}
	case "svg":
		cw = vgsvg.New(w, h)
	default:
		return nil, fmt.Errorf("plotimg: unknown format %q", format)
	}

	dc := draw.New(cw)
	if len(ps) == 1 {
		ps[0].Draw(dc)
		return cw, nil
	}
	tiles := draw.Tiles{Rows: 1, Cols: len(ps), PadX: 4 * vg.Millimeter, PadTop: 2 * vg.Millimeter}
	canvases := plot.Align([][]*plot.Plot{ps}, tiles, dc)
	for i, p := range ps {
		p.Draw(canvases[0][i])
	}
	return cw, nil
}

// Save draws c to path. The format is given by path's extension.
func Save(c *benchchart.Chart, path string) error {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	img, err := Render(c, format)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := img.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func size(c *benchchart.Chart, facets int) (w, h vg.Length) {
	pw, ph := c.Width, c.Height
	if pw <= 0 {
		pw = defaultWidth
	}
	if ph <= 0 {
		ph = defaultHeight
	}
	// Leave room for the title, axes, and legend.
	w = vg.Points(float64(facets*pw + 160))
	h = vg.Points(float64(ph + 120 + 14*len(c.Subtitle)))
	return w, h
}

// Plots builds one plot per facet of c, or a single plot if c is not
// faceted.
func Plots(c *benchchart.Chart) ([]*plot.Plot, error) {
	if c == nil || len(c.Layers) == 0 {
		return nil, fmt.Errorf("plotimg: chart has no layers")
	}
	colors := newPalette()
	if c.Facet == nil {
		p, err := build(c, c.Title, c.Subtitle, func(rows []benchproc.Row) []benchproc.Row { return rows }, colors)
		if err != nil {
			return nil, err
		}
		return []*plot.Plot{p}, nil
	}

	var ps []*plot.Plot
	for i, fv := range benchchart.Values(c.Data, c.Facet.Field) {
		fv := fv
		keep := func(rows []benchproc.Row) []benchproc.Row {
			var out []benchproc.Row
			for _, r := range rows {
				if r[c.Facet.Field] == fv {
					out = append(out, r)
				}
			}
			return out
		}
		title := fmt.Sprint(fv)
		var sub []string
		if i == 0 {
			title = c.Title + "\n" + title
			sub = c.Subtitle
		}
		p, err := build(c, title, sub, keep, colors)
		if err != nil {
			return nil, err
		}
		ps = append(ps, p)
	}
	if len(ps) == 0 {
		return nil, fmt.Errorf("plotimg: chart %q has no facet values", c.Title)
	}
	return ps, nil
}

// palette assigns plotutil colors to color-channel values so that a
// value has the same color in every layer and facet.
type palette map[interface{}]color.Color

func newPalette() palette { return make(palette) }

func (p palette) get(v interface{}) color.Color {
	if c, ok := p[v]; ok {
		return c
	}
	c := plotutil.Color(len(p))
	p[v] = c
	return c
}

// plotState tracks what layers of one plot share.
type plotState struct {
	p      *plot.Plot
	colors palette
	shapes map[interface{}]draw.GlyphDrawer
	legend map[string]bool

	// plotters are the plotters added to p, in order.
	plotters []plot.Plotter

	// cats are the category values of the nominal axis, if any.
	cats       []interface{}
	horizontal bool
}

func newPlotState(p *plot.Plot, colors palette) *plotState {
	return &plotState{
		p:      p,
		colors: colors,
		shapes: make(map[interface{}]draw.GlyphDrawer),
		legend: make(map[string]bool),
	}
}

func (s *plotState) add(ps ...plot.Plotter) {
	s.p.Add(ps...)
	s.plotters = append(s.plotters, ps...)
}

func build(c *benchchart.Chart, title string, subtitle []string, rows func([]benchproc.Row) []benchproc.Row, colors palette) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = strings.Join(append([]string{title}, subtitle...), "\n")
	s := newPlotState(p, colors)

	// The first layer defines the axes.
	first := c.Layers[0].Encoding
	if first.X != nil {
		p.X.Label.Text = axisTitle(first.X)
	}
	if first.Y != nil {
		p.Y.Label.Text = axisTitle(first.Y)
	}
	var nominal *benchchart.Channel
	switch {
	case first.X != nil && first.X.Type == benchchart.Nominal:
		nominal = first.X
	case first.Y != nil && first.Y.Type == benchchart.Nominal:
		nominal, s.horizontal = first.Y, true
	}
	if nominal != nil {
		s.cats = benchchart.Values(rows(c.Data), nominal.Field)
		names := make([]string, len(s.cats))
		for i, v := range s.cats {
			if !nominal.HideLabels {
				names[i] = fmt.Sprint(v)
			}
		}
		if s.horizontal {
			p.NominalY(names...)
		} else {
			p.NominalX(names...)
		}
	}

	for _, l := range c.Layers {
		data := rows(c.LayerData(l))
		var err error
		switch l.Mark.Type {
		case benchchart.Bar:
			err = s.bars(l, data)
		case benchchart.Text:
			err = s.labels(l, data)
		case benchchart.Point:
			err = s.points(l, data)
		case benchchart.Rule:
			err = s.rules(l, data, rows(c.Data), first.X)
		default:
			err = fmt.Errorf("unknown mark %q", l.Mark.Type)
		}
		if err != nil {
			return nil, fmt.Errorf("plotimg: chart %q: %w", c.Title, err)
		}
	}
	p.Legend.Top = true
	return p, nil
}

func axisTitle(ch *benchchart.Channel) string {
	if ch.Title != "" {
		return ch.Title
	}
	return ch.Field
}

// A series is one run of bars or labels: a value per category and an
// offset across the category axis.
type series struct {
	key    interface{}
	color  color.Color
	offset vg.Length
	vals   plotter.Values
	set    []bool
}

func (s *plotState) barSeries(l *benchchart.Layer, data []benchproc.Row) ([]*series, error) {
	e := l.Encoding
	cat, val := e.X, e.Y
	if s.horizontal {
		cat, val = e.Y, e.X
	}
	if cat == nil || val == nil {
		return nil, fmt.Errorf("%s layer needs a category and a value channel", l.Mark.Type)
	}

	group := e.YOffset
	if group == nil {
		group = e.Color
	}
	if group == nil {
		group = e.Detail
	}
	var keys []interface{}
	if group != nil {
		keys = benchchart.Values(data, group.Field)
	} else {
		keys = []interface{}{nil}
	}
	// Groups keyed by the category itself are already apart.
	spread := group != nil && group.Field != cat.Field

	catIdx := make(map[interface{}]int)
	for i, v := range s.cats {
		catIdx[v] = i
	}
	out := make([]*series, len(keys))
	for j, k := range keys {
		sr := &series{key: k, vals: make(plotter.Values, len(s.cats)), set: make([]bool, len(s.cats))}
		if spread {
			sr.offset = barWidth * vg.Length(2*j-(len(keys)-1)) / 2
		}
		out[j] = sr
	}
	for _, r := range data {
		i, ok := catIdx[r[cat.Field]]
		if !ok {
			continue
		}
		j := 0
		if group != nil {
			for j = range keys {
				if keys[j] == r[group.Field] {
					break
				}
			}
		}
		v, ok := number(r[val.Field])
		if !ok {
			return nil, fmt.Errorf("field %q is not numeric", val.Field)
		}
		out[j].vals[i] = v
		out[j].set[i] = true
		if e.Color != nil {
			out[j].color = s.colors.get(r[e.Color.Field])
		}
	}
	return out, nil
}

func (s *plotState) bars(l *benchchart.Layer, data []benchproc.Row) error {
	if s.cats == nil {
		return fmt.Errorf("bar layer needs a nominal axis")
	}
	srs, err := s.barSeries(l, data)
	if err != nil {
		return err
	}
	for _, sr := range srs {
		bc, err := plotter.NewBarChart(sr.vals, barWidth)
		if err != nil {
			return err
		}
		bc.Horizontal = s.horizontal
		bc.Offset = sr.offset
		bc.LineStyle.Width = 0
		bc.Color = sr.color
		if bc.Color == nil {
			bc.Color = s.colors.get(nil)
		}
		s.add(bc)
		if l.Encoding.Color != nil {
			s.addLegend(l.Encoding.Color, sr.key, bc)
		}
	}
	return nil
}

func (s *plotState) labels(l *benchchart.Layer, data []benchproc.Row) error {
	if s.cats == nil {
		return fmt.Errorf("text layer needs a nominal axis")
	}
	srs, err := s.barSeries(l, data)
	if err != nil {
		return err
	}
	scaler := benchunit.LabelScaler
	if l.Encoding.Text != nil {
		scaler = scalerFor(l.Encoding.Text.Format)
	}
	clr := color.Color(color.Black)
	if l.Mark.Color == "white" {
		clr = color.White
	}
	for _, sr := range srs {
		var xyl plotter.XYLabels
		for i, ok := range sr.set {
			if !ok {
				continue
			}
			xy := plotter.XY{X: float64(i), Y: sr.vals[i]}
			if s.horizontal {
				xy = plotter.XY{X: sr.vals[i], Y: float64(i)}
			}
			xyl.XYs = append(xyl.XYs, xy)
			xyl.Labels = append(xyl.Labels, scaler.Format(sr.vals[i]))
		}
		if len(xyl.XYs) == 0 {
			continue
		}
		lb, err := plotter.NewLabels(xyl)
		if err != nil {
			return err
		}
		for i := range lb.TextStyle {
			lb.TextStyle[i].Color = clr
		}
		// Vega's dy grows downward; gonum's Y grows upward.
		off := vg.Point{X: vg.Points(l.Mark.DX), Y: -vg.Points(l.Mark.DY)}
		if s.horizontal {
			off.Y += sr.offset
		} else {
			off.X += sr.offset
		}
		lb.Offset = off
		s.add(lb)
	}
	return nil
}

func (s *plotState) points(l *benchchart.Layer, data []benchproc.Row) error {
	e := l.Encoding
	if e.X == nil || e.Y == nil {
		return fmt.Errorf("point layer needs x and y channels")
	}
	type seriesKey struct{ color, shape interface{} }
	byKey := make(map[seriesKey]plotter.XYs)
	var order []seriesKey
	for _, r := range data {
		x, okx := number(r[e.X.Field])
		y, oky := number(r[e.Y.Field])
		if !okx || !oky {
			return fmt.Errorf("point layer needs numeric %q and %q", e.X.Field, e.Y.Field)
		}
		var k seriesKey
		if e.Color != nil {
			k.color = r[e.Color.Field]
		}
		if e.Shape != nil {
			k.shape = r[e.Shape.Field]
		}
		if _, ok := byKey[k]; !ok {
			order = append(order, k)
		}
		byKey[k] = append(byKey[k], plotter.XY{X: x, Y: y})
	}
	for _, k := range order {
		sc, err := plotter.NewScatter(byKey[k])
		if err != nil {
			return err
		}
		sc.GlyphStyle.Color = s.colors.get(k.color)
		sc.GlyphStyle.Radius = vg.Points(3)
		if e.Shape != nil {
			sc.GlyphStyle.Shape = s.shape(k.shape)
		}
		s.add(sc)
		switch {
		case e.Color != nil && e.Shape != nil:
			s.addLegend(e.Color, fmt.Sprintf("%v %v", k.color, k.shape), sc)
		case e.Color != nil:
			s.addLegend(e.Color, k.color, sc)
		case e.Shape != nil:
			s.addLegend(e.Shape, k.shape, sc)
		}
	}
	return nil
}

// shape returns the glyph of a shape-channel value.
func (s *plotState) shape(v interface{}) draw.GlyphDrawer {
	g, ok := s.shapes[v]
	if !ok {
		g = plotutil.Shape(len(s.shapes))
		s.shapes[v] = g
	}
	return g
}

// rules draws a horizontal line at each row's Y value across the X
// range of the chart's data.
func (s *plotState) rules(l *benchchart.Layer, data, chartData []benchproc.Row, x *benchchart.Channel) error {
	e := l.Encoding
	if e.Y == nil {
		return fmt.Errorf("rule layer needs a y channel")
	}
	xmin, xmax := 0.0, 1.0
	if x != nil && x.Type == benchchart.Quantitative {
		var xs []float64
		for _, r := range chartData {
			if v, ok := number(r[x.Field]); ok {
				xs = append(xs, v)
			}
		}
		if len(xs) > 0 {
			xmin, xmax = stats.Bounds(xs)
		}
	} else if s.cats != nil {
		xmin, xmax = -0.5, float64(len(s.cats))-0.5
	}
	dashes := make(map[interface{}]int)
	for _, r := range data {
		y, ok := number(r[e.Y.Field])
		if !ok {
			return fmt.Errorf("rule layer needs numeric %q", e.Y.Field)
		}
		ln, err := plotter.NewLine(plotter.XYs{{X: xmin, Y: y}, {X: xmax, Y: y}})
		if err != nil {
			return err
		}
		var k interface{}
		if e.Color != nil {
			k = r[e.Color.Field]
		}
		ln.LineStyle.Color = s.colors.get(k)
		ln.LineStyle.Width = vg.Points(1.5)
		if e.Detail != nil {
			d := r[e.Detail.Field]
			if _, ok := dashes[d]; !ok {
				dashes[d] = len(dashes)
			}
			ln.LineStyle.Dashes = plotutil.Dashes(dashes[d])
		}
		s.add(ln)
	}
	return nil
}

func (s *plotState) addLegend(ch *benchchart.Channel, v interface{}, thumb plot.Thumbnailer) {
	name := fmt.Sprint(v)
	if s.legend[name] {
		return
	}
	s.legend[name] = true
	if len(s.legend) == 1 && ch.Title != "" {
		s.p.Legend.Add(ch.Title)
	}
	s.p.Legend.Add(name, thumb)
}

// scalerFor maps a fixed-point d3 format such as ".1f" to a Scaler.
func scalerFor(format string) benchunit.Scaler {
	if strings.HasPrefix(format, ".") && strings.HasSuffix(format, "f") {
		if prec, err := strconv.Atoi(format[1 : len(format)-1]); err == nil {
			return benchunit.Scaler{Prec: prec, Factor: 1}
		}
	}
	return benchunit.LabelScaler
}

func number(v interface{}) (float64, bool) {
	switch v := v.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}
