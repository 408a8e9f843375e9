// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpio drives a Xilinx AXI GPIO instance.
//
// The IP has up to two channels, each a data register and a tri-state
// register. A cleared tri-state bit makes the pin an output. Channels are
// numbered from 1 like in the vendor driver.
package gpio

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/u-root/plbench/pkg/logger"
	"github.com/u-root/plbench/pkg/metric"
	"github.com/u-root/plbench/pkg/mmio"
	"go.uber.org/zap"
)

const (
	DefaultBase uint32 = 0xA0000000
	DefaultSize uint32 = 0x10000
)

// Register offsets of channel 1; channel 2 is channelStride further.
const (
	GPIO_DATA     = 0x0
	GPIO_TRI      = 0x4
	channelStride = 0x8
	AllOutputs    = 0x00000000
	maxChannels   = 2
)

var ErrChannel = errors.New("invalid gpio channel")

type GPIO struct {
	mem      mmio.Window
	channels int
	tri      [maxChannels]uint32
	writes   [maxChannels]prometheus.Counter
	log      *zap.SugaredLogger
}

// New returns an initialized driver for an instance with the given number
// of channels.
func New(mem mmio.Window, channels int) (*GPIO, error) {
	if channels < 1 || channels > maxChannels {
		return nil, fmt.Errorf("gpio: %d channels: %w", channels, ErrChannel)
	}
	g := &GPIO{
		mem:      mem,
		channels: channels,
		log:      logger.LogContainer.GetSimpleLogger(),
	}
	for i := range g.writes {
		g.writes[i] = metric.GpioWrites.WithLabelValues(strconv.Itoa(i + 1))
	}
	// Power-on state of the IP is all inputs.
	for i := range g.tri {
		g.tri[i] = 0xFFFFFFFF
	}
	return g, nil
}

func (g *GPIO) Channels() int {
	return g.channels
}

func (g *GPIO) reg(ch int, r uint32) (uint32, error) {
	if ch < 1 || ch > g.channels {
		return 0, fmt.Errorf("gpio: channel %d: %w", ch, ErrChannel)
	}
	return uint32(ch-1)*channelStride + r, nil
}

// SetDataDirection writes the tri-state register. A set bit is an input.
func (g *GPIO) SetDataDirection(ch int, mask uint32) error {
	r, err := g.reg(ch, GPIO_TRI)
	if err != nil {
		return err
	}
	g.mem.Write32(r, mask)
	g.tri[ch-1] = mask
	return nil
}

func (g *GPIO) DataDirection(ch int) (uint32, error) {
	r, err := g.reg(ch, GPIO_TRI)
	if err != nil {
		return 0, err
	}
	return g.mem.Read32(r), nil
}

func (g *GPIO) DiscreteWrite(ch int, v uint32) error {
	r, err := g.reg(ch, GPIO_DATA)
	if err != nil {
		return err
	}
	g.mem.Write32(r, v)
	g.writes[ch-1].Inc()
	return nil
}

func (g *GPIO) DiscreteRead(ch int) (uint32, error) {
	r, err := g.reg(ch, GPIO_DATA)
	if err != nil {
		return 0, err
	}
	return g.mem.Read32(r), nil
}

// SelfTest reads the tri-state registers back and compares them with what
// was last written.
func (g *GPIO) SelfTest() error {
	for ch := 1; ch <= g.channels; ch++ {
		v, err := g.DataDirection(ch)
		if err != nil {
			return err
		}
		if v != g.tri[ch-1] {
			return fmt.Errorf("gpio: channel %d direction reads %08x, expected %08x", ch, v, g.tri[ch-1])
		}
	}
	return nil
}
