// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpiowatcher

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const maxChannels = 2

// State is one sample of the data and tri-state registers of every channel.
type State struct {
	Time     time.Time
	Channels int
	Data     [maxChannels]uint32
	Tri      [maxChannels]uint32
}

// Line is one bit of one channel. Channels are numbered from 1.
type Line struct {
	Channel int
	Bit     uint
}

func (l Line) String() string {
	return fmt.Sprintf("ch%d.%d", l.Channel, l.Bit)
}

// ParseLines parses a comma separated list such as "1.0,2.7".
func ParseLines(s string) (map[Line]bool, error) {
	lines := make(map[Line]bool)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f := strings.SplitN(part, ".", 2)
		if len(f) != 2 {
			return nil, fmt.Errorf("line %q: want channel.bit", part)
		}
		ch, err := strconv.Atoi(f[0])
		if err != nil || ch < 1 || ch > maxChannels {
			return nil, fmt.Errorf("line %q: bad channel", part)
		}
		bit, err := strconv.ParseUint(f[1], 10, 8)
		if err != nil || bit > 31 {
			return nil, fmt.Errorf("line %q: bad bit", part)
		}
		lines[Line{ch, uint(bit)}] = true
	}
	return lines, nil
}

type EventKind int

const (
	BecameInput EventKind = iota
	BecameOutput
	BecameHigh
	BecameLow
)

type Event struct {
	Line
	Kind EventKind
	// High is the line value after the event.
	High bool
	// Output is the direction after the event.
	Output bool
}

func bit(v uint32, b uint) bool {
	return v&(1<<b) != 0
}

// Equal ignores the sample time.
func (s *State) Equal(o *State) bool {
	return s.Channels == o.Channels && s.Data == o.Data && s.Tri == o.Tri
}

// Diff lists what changed since prev, direction changes first.
func (s *State) Diff(prev *State) []Event {
	var ev []Event
	for ch := 0; ch < s.Channels && ch < prev.Channels; ch++ {
		for b := uint(0); b < 32; b++ {
			l := Line{ch + 1, b}
			out := !bit(s.Tri[ch], b)
			high := bit(s.Data[ch], b)
			if out != !bit(prev.Tri[ch], b) {
				k := BecameInput
				if out {
					k = BecameOutput
				}
				ev = append(ev, Event{l, k, high, out})
			} else if high != bit(prev.Data[ch], b) {
				k := BecameLow
				if high {
					k = BecameHigh
				}
				ev = append(ev, Event{l, k, high, out})
			}
		}
	}
	return ev
}
