// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpiowatcher

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jmhodges/clock"
	"github.com/u-root/plbench/pkg/gpio"
)

// Snapshotter produces samples. io.EOF ends a watch.
type Snapshotter interface {
	Snapshot() (*State, error)
}

type live struct {
	g   *gpio.GPIO
	clk clock.Clock
}

// NewLive samples the registers of g.
func NewLive(g *gpio.GPIO, clk clock.Clock) Snapshotter {
	return &live{g, clk}
}

func (l *live) Snapshot() (*State, error) {
	s := &State{Time: l.clk.Now(), Channels: l.g.Channels()}
	for ch := 1; ch <= s.Channels; ch++ {
		var err error
		if s.Tri[ch-1], err = l.g.DataDirection(ch); err != nil {
			return nil, err
		}
		if s.Data[ch-1], err = l.g.DiscreteRead(ch); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// A binary record is the sample time in Unix nanoseconds, the channel count
// and then data and tri-state per channel, all little endian.
type record struct {
	Nanos    int64
	Channels uint32
}

type playback struct {
	r io.Reader
}

// NewPlayback reads samples written by NewBinaryLog.
func NewPlayback(r io.Reader) Snapshotter {
	return &playback{r}
}

func (p *playback) Snapshot() (*State, error) {
	var rec record
	if err := binary.Read(p.r, binary.LittleEndian, &rec); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("binary.Read failed: %w", err)
	}
	if rec.Channels > maxChannels {
		return nil, fmt.Errorf("playback: %d channels in record", rec.Channels)
	}
	s := &State{Time: time.Unix(0, rec.Nanos).UTC(), Channels: int(rec.Channels)}
	for ch := 0; ch < s.Channels; ch++ {
		regs := make([]uint32, 2)
		if err := binary.Read(p.r, binary.LittleEndian, regs); err != nil {
			return nil, fmt.Errorf("binary.Read failed: %w", err)
		}
		s.Data[ch], s.Tri[ch] = regs[0], regs[1]
	}
	return s, nil
}
