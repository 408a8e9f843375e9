// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shell implements the interactive menus of the bench programs.
//
// A shell runs one operation at a time and returns to its menu after each
// one. Bad input and out of range offsets are reported and abandon the
// current operation only; the loop ends on the exit entry or when the
// console input is closed.
package shell

import (
	"errors"
	"io"

	"github.com/u-root/plbench/pkg/console"
)

const separator = "------------------------------------------------------------\r\n"

type base struct {
	c console.Console
	e *console.Editor
}

func newBase(c console.Console) base {
	return base{c, console.NewEditor(c)}
}

func (b *base) printf(format string, a ...interface{}) {
	b.e.Printf(format, a...)
}

func (b *base) title(t string) {
	b.printf(separator)
	b.printf("=== %s ===\r\n", t)
	b.printf(separator)
}

// finished maps the end of input to a clean exit.
func finished(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
