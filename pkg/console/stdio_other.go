// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !linux
// +build !linux

package console

import (
	"os"
)

type stdio struct {
	Console
}

// OpenStdio runs the console on stdin/stdout in whatever mode the terminal
// is in.
func OpenStdio() (Port, error) {
	return &stdio{New(os.Stdin, os.Stdout)}, nil
}

func (s *stdio) Close() error {
	return nil
}
