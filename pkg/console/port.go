// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package console

import (
	"fmt"

	"github.com/tarm/serial"
)

// Port is a Console that holds an OS resource.
type Port interface {
	Console
	Close() error
}

type serialPort struct {
	Console
	s *serial.Port
}

// OpenSerial runs the console over a UART, e.g. /dev/ttyPS1.
func OpenSerial(device string, baud int) (Port, error) {
	c := &serial.Config{Name: device, Baud: baud}
	s, err := serial.OpenPort(c)
	if err != nil {
		return nil, fmt.Errorf("serial.OpenPort %s: %w", device, err)
	}
	return &serialPort{New(s, s), s}, nil
}

func (p *serialPort) Close() error {
	return p.s.Close()
}
