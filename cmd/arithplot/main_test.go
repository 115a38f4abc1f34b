// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
}

func TestRun(t *testing.T) {
	input, err := filepath.Abs("../../benchreport/testdata/arithmetic.json")
	if err != nil {
		t.Fatal(err)
	}
	chdir(t, t.TempDir())

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-i", input}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit %d, stderr:\n%s", code, stderr.String())
	}
	data, err := os.ReadFile("chart.html")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"<title>Fifi Benchmarks</title>", "Host: bench01", "vegaEmbed('#vis3'"} {
		if !bytes.Contains(data, []byte(want)) {
			t.Errorf("chart.html lacks %q", want)
		}
	}
	if !strings.HasPrefix(stdout.String(), "writing chart.html") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRunFailures(t *testing.T) {
	chdir(t, t.TempDir())
	if err := os.WriteFile("bad.json", []byte(`{"context": {}, "benchmarks": [{"name": "BM_region_add/basic", "label": "binary8", "bytes_per_second": 1}]}`), 0666); err != nil {
		t.Fatal(err)
	}
	for _, test := range []struct {
		args []string
		code int
		diag string
	}{
		{nil, 2, "Usage: arithplot -i file"},
		{[]string{"-i", "missing.json"}, 1, "arithplot: load missing.json: opening input"},
		{[]string{"-i", "bad.json"}, 1, `arithplot: normalize region: benchmarks[0]: field "size": missing required field`},
	} {
		var stdout, stderr bytes.Buffer
		if code := run(test.args, &stdout, &stderr); code != test.code {
			t.Errorf("run(%q) = %d, want %d", test.args, code, test.code)
		}
		if !strings.Contains(stderr.String(), test.diag) {
			t.Errorf("run(%q) stderr = %q, want %q", test.args, stderr.String(), test.diag)
		}
	}
	if _, err := os.Stat("chart.html"); !os.IsNotExist(err) {
		t.Errorf("failed runs wrote chart.html")
	}
}
