// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vegalite renders benchchart.Charts as Vega-Lite
// specifications for display in a browser with vega-embed.
package vegalite

import (
	"encoding/json"
	"fmt"

	"benchviz/benchchart"
	"benchviz/benchproc"
)

// Library versions the generated specifications are written against.
const (
	VegaVersion      = "5.25.0"
	VegaLiteVersion  = "5.16.3"
	VegaEmbedVersion = "6.22.2"
)

// SchemaURL is the JSON schema of the generated specifications.
const SchemaURL = "https://vega.github.io/schema/vega-lite/v5.json"

// CDN is the base URL scripts are loaded from.
const CDN = "https://cdn.jsdelivr.net/npm/"

// Versions are the versions of the client-side libraries a page must
// load to display payloads.
type Versions struct {
	Vega, VegaLite, VegaEmbed string
}

// Backend converts Charts to Vega-Lite JSON.
type Backend struct {
	// Indent, if non-empty, pretty-prints payloads.
	Indent string
}

// Versions returns the library versions payloads are written for.
func (b *Backend) Versions() Versions {
	return Versions{Vega: VegaVersion, VegaLite: VegaLiteVersion, VegaEmbed: VegaEmbedVersion}
}

// Scripts returns the URLs of the scripts a page must load, in load
// order, to display payloads with vegaEmbed.
func (b *Backend) Scripts() []string {
	v := b.Versions()
	return []string{
		CDN + "vega@" + v.Vega,
		CDN + "vega-lite@" + v.VegaLite,
		CDN + "vega-embed@" + v.VegaEmbed,
	}
}

// Payload returns the Vega-Lite specification of c as JSON.
func (b *Backend) Payload(c *benchchart.Chart) ([]byte, error) {
	s, err := Spec(c)
	if err != nil {
		return nil, err
	}
	if b != nil && b.Indent != "" {
		return json.MarshalIndent(s, "", b.Indent)
	}
	return json.Marshal(s)
}

// A spec is a top-level, layer, or facet-inner Vega-Lite view.
type spec struct {
	Schema   string                 `json:"$schema,omitempty"`
	Title    *title                 `json:"title,omitempty"`
	Width    int                    `json:"width,omitempty"`
	Height   int                    `json:"height,omitempty"`
	Data     *data                  `json:"data,omitempty"`
	Mark     *mark                  `json:"mark,omitempty"`
	Encoding map[string]*encoding   `json:"encoding,omitempty"`
	Layer    []*spec                `json:"layer,omitempty"`
	Facet    map[string]*encoding   `json:"facet,omitempty"`
	Spec     *spec                  `json:"spec,omitempty"`
	Config   map[string]interface{} `json:"config,omitempty"`
}

type title struct {
	Text     string   `json:"text"`
	Subtitle []string `json:"subtitle,omitempty"`
}

type data struct {
	Values []benchproc.Row `json:"values"`
}

type mark struct {
	Type  string  `json:"type"`
	DX    float64 `json:"dx,omitempty"`
	DY    float64 `json:"dy,omitempty"`
	Color string  `json:"color,omitempty"`
}

type encoding struct {
	Field  string      `json:"field"`
	Type   string      `json:"type"`
	Axis   *axis       `json:"axis,omitempty"`
	Legend *legend     `json:"legend,omitempty"`
	Format string      `json:"format,omitempty"`
	Stack  interface{} `json:"stack,omitempty"`
}

type axis struct {
	Title  string `json:"title,omitempty"`
	Labels *bool  `json:"labels,omitempty"`
}

type legend struct {
	Title string `json:"title"`
}

// Spec builds the Vega-Lite view of c as a JSON-encodable value.
func Spec(c *benchchart.Chart) (interface{}, error) {
	if c == nil {
		return nil, fmt.Errorf("vegalite: nil chart")
	}
	if len(c.Layers) == 0 {
		return nil, fmt.Errorf("vegalite: chart %q has no layers", c.Title)
	}

	view := &spec{Width: c.Width, Height: c.Height}
	for _, l := range c.Layers {
		ls, err := layer(c, l)
		if err != nil {
			return nil, err
		}
		view.Layer = append(view.Layer, ls)
	}
	if len(view.Layer) == 1 && c.Layers[0].Data == nil {
		// A single layer is a plain unit view.
		view.Mark, view.Encoding = view.Layer[0].Mark, view.Layer[0].Encoding
		view.Layer = nil
	}

	top := view
	if c.Facet != nil {
		top = &spec{
			Facet: map[string]*encoding{"column": channel(c.Facet, "")},
			Spec:  view,
		}
	}
	top.Schema = SchemaURL
	top.Title = &title{Text: c.Title, Subtitle: c.Subtitle}
	top.Data = &data{Values: rows(c.Data)}
	if c.TitleAnchor != "" || c.TitleOrient != "" {
		t := map[string]string{}
		if c.TitleAnchor != "" {
			t["anchor"] = c.TitleAnchor
		}
		if c.TitleOrient != "" {
			t["orient"] = c.TitleOrient
		}
		top.Config = map[string]interface{}{"title": t}
	}
	return top, nil
}

func layer(c *benchchart.Chart, l *benchchart.Layer) (*spec, error) {
	switch l.Mark.Type {
	case benchchart.Bar, benchchart.Point, benchchart.Rule, benchchart.Text:
	default:
		return nil, fmt.Errorf("vegalite: chart %q: unknown mark %q", c.Title, l.Mark.Type)
	}
	s := &spec{
		Mark:     &mark{Type: string(l.Mark.Type), DX: l.Mark.DX, DY: l.Mark.DY, Color: l.Mark.Color},
		Encoding: map[string]*encoding{},
	}
	if l.Data != nil {
		if c.Facet != nil {
			return nil, fmt.Errorf("vegalite: chart %q: faceted layers cannot have their own data", c.Title)
		}
		s.Data = &data{Values: rows(l.Data)}
	}
	e := l.Encoding
	for _, ch := range []struct {
		name string
		c    *benchchart.Channel
	}{
		{"x", e.X}, {"y", e.Y}, {"color", e.Color}, {"text", e.Text}, {"shape", e.Shape}, {"detail", e.Detail}, {"yOffset", e.YOffset},
	} {
		if ch.c != nil {
			s.Encoding[ch.name] = channel(ch.c, ch.name)
		}
	}
	return s, nil
}

func channel(c *benchchart.Channel, name string) *encoding {
	e := &encoding{Field: c.Field, Type: string(c.Type), Format: c.Format}
	if c.Stack != "" {
		e.Stack = c.Stack
	}
	switch name {
	case "x", "y":
		if c.Title != "" || c.HideLabels {
			e.Axis = &axis{Title: c.Title}
			if c.HideLabels {
				e.Axis.Labels = new(bool)
			}
		}
	case "color", "shape":
		if c.Title != "" {
			e.Legend = &legend{Title: c.Title}
		}
	}
	return e
}

// rows never returns nil, so empty data encodes as [].
func rows(r []benchproc.Row) []benchproc.Row {
	if r == nil {
		return []benchproc.Row{}
	}
	return r
}
