// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package console

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

type stdio struct {
	Console
	fd  int
	old *unix.Termios
}

// OpenStdio runs the console on stdin/stdout. A terminal on stdin is put
// in non-canonical mode without echo so that keys arrive one at a time,
// like on the UART. Signals stay enabled.
func OpenStdio() (Port, error) {
	s := &stdio{Console: New(os.Stdin, os.Stdout), fd: int(os.Stdin.Fd())}
	old, err := unix.IoctlGetTermios(s.fd, unix.TCGETS)
	if err != nil {
		// Not a terminal, input is scripted.
		return s, nil
	}
	raw := *old
	raw.Lflag &^= unix.ECHO | unix.ICANON
	raw.Iflag &^= unix.ICRNL
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(s.fd, unix.TCSETS, &raw); err != nil {
		return nil, fmt.Errorf("console: set raw mode: %w", err)
	}
	s.old = old
	return s, nil
}

func (s *stdio) Close() error {
	if s.old == nil {
		return nil
	}
	err := unix.IoctlSetTermios(s.fd, unix.TCSETS, s.old)
	s.old = nil
	return err
}
