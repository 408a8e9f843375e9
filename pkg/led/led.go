// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package led controls the LED logic in the programmable logic through
// an AXI GPIO instance.
//
// Channel 1 carries a 2-bit mode; blinking, counting and the knight rider
// chase are done by the PL logic itself. Channel 2 drives the eight LEDs
// directly and overrides what is shown without touching the mode register.
package led

import (
	"fmt"
	"io"

	"github.com/jmhodges/clock"
	"github.com/u-root/plbench/pkg/gpio"
	"github.com/u-root/plbench/pkg/logger"
	"go.uber.org/zap"
)

const (
	ChannelMode = 1
	ChannelLED  = 2

	modeMask = 0x3
)

type Mode uint8

const (
	Off Mode = iota
	Blink
	Counter
	Knight
)

var modeNames = [...]string{"OFF", "BLINK", "COUNTER", "KNIGHT"}

func (m Mode) String() string {
	return modeNames[m&modeMask]
}

// Fixed LED patterns.
const (
	AllOn      uint8 = 0xFF
	AllOff     uint8 = 0x00
	Alternate1 uint8 = 0xAA
	Alternate2 uint8 = 0x55
)

// Controller is one LED session. The shadow fields only feed Status.
type Controller struct {
	g   *gpio.GPIO
	out io.Writer
	clk clock.Clock
	log *zap.SugaredLogger

	mode   Mode
	direct bool
}

func New(g *gpio.GPIO, out io.Writer, clk clock.Clock) *Controller {
	return &Controller{
		g:   g,
		out: out,
		clk: clk,
		log: logger.LogContainer.GetSimpleLogger(),
	}
}

// Init configures the mode and LED channels as outputs. The LED channel is
// skipped on a single channel instance.
func (c *Controller) Init() error {
	if err := c.g.SetDataDirection(ChannelMode, gpio.AllOutputs); err != nil {
		return err
	}
	if c.g.Channels() >= ChannelLED {
		if err := c.g.SetDataDirection(ChannelLED, gpio.AllOutputs); err != nil {
			return err
		}
	}
	if err := c.g.SelfTest(); err != nil {
		c.log.Warnf("GPIO self-test failed: %v", err)
	}
	return nil
}

func (c *Controller) Mode() Mode {
	return c.mode
}

func (c *Controller) Direct() bool {
	return c.direct
}

// SetMode hands the LEDs back to the PL logic in mode m.
func (c *Controller) SetMode(m Mode) error {
	m &= modeMask
	if err := c.g.DiscreteWrite(ChannelMode, uint32(m)); err != nil {
		return err
	}
	c.mode = m
	c.direct = false
	fmt.Fprintf(c.out, "  Mode register set to: 0x%02X\r\n", uint8(m))
	c.log.Infow("mode set", "mode", m.String())
	return nil
}

// SetLED drives the LEDs directly with pattern p.
func (c *Controller) SetLED(p uint8) error {
	if err := c.g.DiscreteWrite(ChannelLED, uint32(p)); err != nil {
		return err
	}
	c.direct = true
	fmt.Fprintf(c.out, "  LED pattern set to: 0x%02X (%08b)\r\n", p, p)
	return nil
}

type Status struct {
	Direct  bool
	Mode    Mode
	ModeReg uint32
	LEDReg  uint8
}

// Status reads both channels back.
func (c *Controller) Status() (Status, error) {
	s := Status{Direct: c.direct, Mode: c.mode}
	var err error
	if s.ModeReg, err = c.g.DiscreteRead(ChannelMode); err != nil {
		return s, err
	}
	if c.g.Channels() >= ChannelLED {
		v, err := c.g.DiscreteRead(ChannelLED)
		if err != nil {
			return s, err
		}
		s.LEDReg = uint8(v)
	}
	return s, nil
}

func (s Status) Print(w io.Writer) {
	control := "PL Logic"
	if s.Direct {
		control = "PS Direct"
	}
	fmt.Fprintf(w, "\r\n")
	fmt.Fprintf(w, "============ CURRENT STATUS ============\r\n")
	fmt.Fprintf(w, "  Control Mode    : %s\r\n", control)
	fmt.Fprintf(w, "  PL Mode (sw)    : %s (0x%02X)\r\n", s.Mode, uint8(s.Mode))
	fmt.Fprintf(w, "  LED Register    : 0x%02X\r\n", s.LEDReg)
	fmt.Fprintf(w, "  LED Binary      : %08b\r\n", s.LEDReg)
	fmt.Fprintf(w, "=========================================\r\n")
}

// LineName names the GPIO lines of the LED design: MODE0 and MODE1 on the
// mode channel, LED0 to LED7 on the LED channel.
func LineName(ch int, bit uint) (string, bool) {
	switch {
	case ch == ChannelMode && bit < 2:
		return fmt.Sprintf("MODE%d", bit), true
	case ch == ChannelLED && bit < 8:
		return fmt.Sprintf("LED%d", bit), true
	}
	return "", false
}
