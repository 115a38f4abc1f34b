// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"

	"benchviz/benchchart"
	"benchviz/benchchart/vegalite"
)

// A Backend turns charts into payloads a page can embed.
type Backend interface {
	// Payload returns the JavaScript value that displays c.
	Payload(c *benchchart.Chart) ([]byte, error)

	// Scripts returns the URLs of the scripts, in load order, that
	// a page needs to display payloads.
	Scripts() []string
}

// DefaultTemplate is the page used when a Renderer has no Template.
//
// It is executed with a value of type Page.
var DefaultTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
{{- range .Scripts}}
  <script src="{{.}}"></script>
{{- end}}
{{- with .Title}}
  <title>{{.}}</title>
{{- end}}
</head>
<body>
{{- with .Header}}
<p>
{{- range $i, $line := .}}
{{if $i}}<br>
{{end}}{{$line}}
{{- end}}
</p>
{{- end}}
{{- range .Charts}}
<div id="{{.ID}}"></div>
{{- end}}
<script type="text/javascript">
{{- range .Charts}}
vegaEmbed('#{{.ID}}', {{.Payload}}).catch(console.error);
{{- end}}
</script>
</body>
</html>
`))

// Page is the data a report template is executed with.
type Page struct {
	Title   string
	Header  []string
	Scripts []string
	Charts  []PageChart
}

// A PageChart is one embedded chart.
type PageChart struct {
	// ID is the unique id of the chart's container element.
	ID      string
	Payload template.JS
}

// A Renderer writes Reports as HTML pages.
//
// The zero Renderer uses DefaultTemplate and Vega-Lite payloads.
type Renderer struct {
	Template *template.Template
	Backend  Backend
}

// NewRenderer returns a Renderer with the default template and
// backend.
func NewRenderer() *Renderer {
	return &Renderer{Template: DefaultTemplate, Backend: &vegalite.Backend{}}
}

// An OutputError reports a failure to write a report.
type OutputError struct {
	Path string
	Err  error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *OutputError) Unwrap() error {
	return e.Err
}

// Page builds the template data of r.
func (rd *Renderer) Page(r *Report) (*Page, error) {
	be := rd.Backend
	if be == nil {
		be = &vegalite.Backend{}
	}
	p := &Page{
		Title:   r.Title,
		Header:  r.Header.Lines(),
		Scripts: be.Scripts(),
	}
	for i, c := range r.Charts {
		payload, err := be.Payload(c)
		if err != nil {
			return nil, fmt.Errorf("chart %d: %w", i+1, err)
		}
		p.Charts = append(p.Charts, PageChart{
			ID:      fmt.Sprintf("vis%d", i+1),
			Payload: template.JS(payload),
		})
	}
	return p, nil
}

// Render writes r to w. Nothing is written unless the whole page
// renders.
func (rd *Renderer) Render(w io.Writer, r *Report) error {
	var buf bytes.Buffer
	if err := rd.render(&buf, r); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

func (rd *Renderer) render(buf *bytes.Buffer, r *Report) error {
	p, err := rd.Page(r)
	if err != nil {
		return err
	}
	tmpl := rd.Template
	if tmpl == nil {
		tmpl = DefaultTemplate
	}
	return tmpl.Execute(buf, p)
}

// WriteFile renders r and writes it to path, replacing any existing
// file and creating path's directory if needed. Failures to write
// are reported as *OutputError. If r fails to render, path is not
// touched.
func (rd *Renderer) WriteFile(path string, r *Report) error {
	var buf bytes.Buffer
	if err := rd.render(&buf, r); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0777); err != nil {
			return &OutputError{Path: path, Err: err}
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0666); err != nil {
		return &OutputError{Path: path, Err: err}
	}
	return nil
}
