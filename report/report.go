// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report renders a sequence of charts as a single HTML page.
//
// The page loads a client-side charting library from a CDN and embeds
// one payload per chart, produced by a Backend such as
// benchviz/benchchart/vegalite.
package report

import (
	"encoding/json"
	"fmt"
	"strconv"

	"benchviz/benchchart"
)

// A Report is an ordered sequence of charts and optional run metadata.
type Report struct {
	// Title is the page title. If empty, the page has none.
	Title string

	// Header, if non-nil, is shown above the charts.
	Header *Header

	Charts []*benchchart.Chart
}

// Add appends c to r. Nil charts are ignored.
func (r *Report) Add(c ...*benchchart.Chart) {
	for _, c := range c {
		if c != nil {
			r.Charts = append(r.Charts, c)
		}
	}
}

// A Header describes the machine and build a benchmark ran on. Zero
// fields are unknown and omitted from the page.
type Header struct {
	Executable string
	Date       string
	Host       string
	NumCPUs    int
	MHzPerCPU  int
	CPUScaling *bool
	BuildType  string
}

// Lines returns the header as display lines, omitting unknown fields.
func (h *Header) Lines() []string {
	if h == nil {
		return nil
	}
	var lines []string
	add := func(s string) { lines = append(lines, s) }
	if h.Executable != "" {
		add(h.Executable)
	}
	if h.Date != "" {
		add("Date: " + h.Date)
	}
	if h.Host != "" {
		add("Host: " + h.Host)
	}
	switch {
	case h.NumCPUs > 0 && h.MHzPerCPU > 0:
		add(fmt.Sprintf("CPU %d cores @ %d MHz", h.NumCPUs, h.MHzPerCPU))
	case h.NumCPUs > 0:
		add(fmt.Sprintf("CPU %d cores", h.NumCPUs))
	case h.MHzPerCPU > 0:
		add(fmt.Sprintf("CPU @ %d MHz", h.MHzPerCPU))
	}
	if h.CPUScaling != nil {
		if *h.CPUScaling {
			add("CPU Scaling enabled.")
		} else {
			add("CPU Scaling disabled.")
		}
	}
	if h.BuildType != "" {
		add("Build type: " + h.BuildType)
	}
	return lines
}

// HeaderFromContext extracts run metadata from a benchmark document's
// context object. Fields that are missing or have the wrong type are
// left unknown.
func HeaderFromContext(ctx map[string]interface{}) *Header {
	h := &Header{
		Executable: str(ctx["executable"]),
		Date:       str(ctx["date"]),
		Host:       str(ctx["host_name"]),
		BuildType:  str(ctx["library_build_type"]),
	}
	h.NumCPUs, _ = integer(ctx["num_cpus"])
	h.MHzPerCPU, _ = integer(ctx["mhz_per_cpu"])
	if b, ok := ctx["cpu_scaling_enabled"].(bool); ok {
		h.CPUScaling = &b
	}
	return h
}

func str(v interface{}) string {
	s, _ := v.(string)
	return s
}

func integer(v interface{}) (int, bool) {
	switch v := v.(type) {
	case json.Number:
		if n, err := strconv.Atoi(string(v)); err == nil {
			return n, true
		}
		if f, err := v.Float64(); err == nil {
			return int(f), true
		}
	case float64:
		return int(v), true
	case int:
		return v, true
	}
	return 0, false
}
