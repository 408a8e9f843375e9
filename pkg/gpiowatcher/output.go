// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpiowatcher

import (
	"encoding/binary"
	"fmt"
	"io"
)

type Outputer interface {
	Log(s *State) error
}

type binaryLog struct {
	w io.Writer
}

func NewBinaryLog(w io.Writer) Outputer {
	return &binaryLog{w}
}

func (l *binaryLog) Log(s *State) error {
	rec := record{Nanos: s.Time.UnixNano(), Channels: uint32(s.Channels)}
	if err := binary.Write(l.w, binary.LittleEndian, rec); err != nil {
		return fmt.Errorf("binary.Write failed: %w", err)
	}
	for ch := 0; ch < s.Channels; ch++ {
		if err := binary.Write(l.w, binary.LittleEndian, []uint32{s.Data[ch], s.Tri[ch]}); err != nil {
			return fmt.Errorf("binary.Write failed: %w", err)
		}
	}
	return nil
}

// Namer gives board names to lines, e.g. LED3.
type Namer func(l Line) (string, bool)

type textLog struct {
	w      io.Writer
	p      *State
	ignore map[Line]bool
	name   Namer
}

// NewTextLog prints the initial level of every output line and then one
// row per change.
func NewTextLog(w io.Writer, ignore map[Line]bool, name Namer) Outputer {
	return &textLog{w: w, ignore: ignore, name: name}
}

func (l *textLog) lineName(ln Line) string {
	if l.name != nil {
		if n, ok := l.name(ln); ok {
			return n
		}
	}
	return ln.String()
}

func (l *textLog) printf(s *State, format string, a ...interface{}) {
	fmt.Fprintf(l.w, "%s ", s.Time.Format("15:04:05.000"))
	fmt.Fprintf(l.w, format, a...)
	fmt.Fprintf(l.w, "\r\n")
}

func level(high bool) string {
	if high {
		return "high"
	}
	return "low"
}

func (l *textLog) Log(s *State) error {
	if l.p == nil {
		for ch := 0; ch < s.Channels; ch++ {
			for b := uint(0); b < 32; b++ {
				ln := Line{ch + 1, b}
				if bit(s.Tri[ch], b) || l.ignore[ln] {
					continue
				}
				l.printf(s, "%-12s %s", l.lineName(ln), level(bit(s.Data[ch], b)))
			}
		}
		l.p = s
		return nil
	}
	if l.p.Equal(s) {
		l.p = s
		return nil
	}
	for _, e := range s.Diff(l.p) {
		if l.ignore[e.Line] {
			continue
		}
		n := l.lineName(e.Line)
		switch e.Kind {
		case BecameInput:
			l.printf(s, "%-12s became input (value: %s)", n, level(e.High))
		case BecameOutput:
			l.printf(s, "%-12s became output (value: %s)", n, level(e.High))
		case BecameHigh, BecameLow:
			verb := "sensing"
			if e.Output {
				verb = "driving"
			}
			l.printf(s, "%-12s %s %s", n, verb, level(e.High))
		}
	}
	l.p = s
	return nil
}
