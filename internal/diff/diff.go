// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diff compares expected and actual text in tests.
package diff

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// Diff returns a unified diff from want to got, or "" if they are
// equal. If the diff command is unavailable or fails, it returns a
// description of the failure along with both strings.
func Diff(want, got string) string {
	if want == got {
		return ""
	}
	cmd := "diff"
	if runtime.GOOS == "plan9" {
		cmd = "/bin/ape/diff"
	}
	if _, err := exec.LookPath(cmd); err != nil {
		return fmt.Sprintf("diff command unavailable\nwant: %q\ngot:  %q", want, got)
	}

	f1, err := tempFile(want)
	if err != nil {
		return err.Error()
	}
	defer os.Remove(f1)
	f2, err := tempFile(got)
	if err != nil {
		return err.Error()
	}
	defer os.Remove(f2)

	data, err := exec.Command(cmd, "-u", "--label", "want", "--label", "got", f1, f2).CombinedOutput()
	if len(data) > 0 {
		// diff exits non-zero when the inputs differ.
		err = nil
	}
	if err != nil {
		data = append(data, err.Error()...)
	}
	return string(data)
}

func tempFile(s string) (string, error) {
	f, err := os.CreateTemp("", "benchviz-diff")
	if err != nil {
		return "", err
	}
	_, err = f.WriteString(s)
	if err1 := f.Close(); err == nil {
		err = err1
	}
	if err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}
