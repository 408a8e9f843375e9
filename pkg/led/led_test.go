// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package led

import (
	"bytes"
	"testing"
	"time"

	"github.com/jmhodges/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/u-root/plbench/pkg/gpio"
	"github.com/u-root/plbench/pkg/mmio"
)

// ledRecorder remembers every value written to the LED data register.
type ledRecorder struct {
	*mmio.Buffer
	leds  []uint8
	modes []uint32
}

func (r *ledRecorder) Write32(off uint32, v uint32) {
	switch off {
	case 0x0:
		r.modes = append(r.modes, v)
	case 0x8:
		r.leds = append(r.leds, uint8(v))
	}
	r.Buffer.Write32(off, v)
}

func newTestController(t *testing.T) (*Controller, *ledRecorder, clock.FakeClock, *bytes.Buffer) {
	mem := &ledRecorder{Buffer: mmio.NewBuffer(16)}
	g, err := gpio.New(mem, 2)
	require.NoError(t, err)
	clk := clock.NewFake()
	var out bytes.Buffer
	c := New(g, &out, clk)
	require.NoError(t, c.Init())
	return c, mem, clk, &out
}

func TestInitOutputs(t *testing.T) {
	_, mem, _, _ := newTestController(t)
	assert.Equal(t, uint32(0), mem.Read32(gpio.GPIO_TRI))
	assert.Equal(t, uint32(0), mem.Read32(0x8+gpio.GPIO_TRI))
}

func TestSetModeKnight(t *testing.T) {
	c, mem, _, out := newTestController(t)
	require.NoError(t, c.SetMode(Knight))
	assert.Equal(t, uint32(0x03), mem.Read32(gpio.GPIO_DATA))
	assert.Equal(t, Knight, c.Mode())
	assert.False(t, c.Direct())
	assert.Contains(t, out.String(), "Mode register set to: 0x03")
}

func TestSetModeMasks(t *testing.T) {
	c, mem, _, _ := newTestController(t)
	require.NoError(t, c.SetMode(Mode(6)))
	assert.Equal(t, uint32(0x02), mem.Read32(gpio.GPIO_DATA))
	assert.Equal(t, Counter, c.Mode())
}

func TestDirectDoesNotTouchMode(t *testing.T) {
	c, mem, _, out := newTestController(t)
	require.NoError(t, c.SetMode(Blink))
	require.NoError(t, c.SetLED(Alternate1))
	assert.Equal(t, uint32(0x01), mem.Read32(gpio.GPIO_DATA))
	assert.Equal(t, uint32(0xAA), mem.Read32(0x8))
	assert.True(t, c.Direct())
	assert.Contains(t, out.String(), "LED pattern set to: 0xAA (10101010)")

	s, err := c.Status()
	require.NoError(t, err)
	assert.Equal(t, Status{Direct: true, Mode: Blink, ModeReg: 1, LEDReg: 0xAA}, s)

	var buf bytes.Buffer
	s.Print(&buf)
	assert.Contains(t, buf.String(), "Control Mode    : PS Direct")
	assert.Contains(t, buf.String(), "PL Mode (sw)    : BLINK (0x01)")
	assert.Contains(t, buf.String(), "LED Binary      : 10101010")
}

func TestModeCycle(t *testing.T) {
	c, mem, clk, _ := newTestController(t)
	start := clk.Now()
	require.NoError(t, c.ModeCycle())
	assert.Equal(t, []uint32{1, 2, 3, 0}, mem.modes)
	assert.Equal(t, 15*time.Second, clk.Now().Sub(start))
	assert.Equal(t, Off, c.Mode())
}

func TestDemo(t *testing.T) {
	c, mem, clk, out := newTestController(t)
	start := clk.Now()
	require.NoError(t, c.Demo())

	// 8 + 16 + 12 + 3*14 + 12 steps, then all off.
	require.Len(t, mem.leds, 8+16+12+42+12+1)
	assert.Equal(t, []uint8{1, 2, 4, 8, 16, 32, 64, 128}, mem.leds[:8])
	assert.Equal(t, uint8(15), mem.leds[23])
	assert.Equal(t, AllOff, mem.leds[len(mem.leds)-1])

	want := 8*delayMedium + 16*delayShort + 12*delayMedium + 42*delayShort + 12*delayLong
	assert.Equal(t, want, clk.Now().Sub(start))
	assert.Contains(t, out.String(), "--- Demo Complete ---")
}

func TestSequentialTest(t *testing.T) {
	c, mem, clk, _ := newTestController(t)
	start := clk.Now()
	require.NoError(t, c.SequentialTest())
	assert.Equal(t, []uint8{1, 2, 4, 8, 16, 32, 64, 128, AllOn, AllOff}, mem.leds)
	assert.Equal(t, 6*time.Second, clk.Now().Sub(start))
}

func TestBinaryCountAndKnightRider(t *testing.T) {
	c, mem, _, out := newTestController(t)
	require.NoError(t, c.BinaryCount())
	require.Len(t, mem.leds, 256)
	assert.Equal(t, uint8(255), mem.leds[255])
	assert.Contains(t, out.String(), "Count: 240 (0xF0)")

	mem.leds = nil
	require.NoError(t, c.KnightRider())
	require.Len(t, mem.leds, 10*14+1)
	assert.Equal(t, []uint8{1, 2, 4, 8, 16, 32, 64, 128, 64, 32, 16, 8, 4, 2, 1}, mem.leds[:15])
}

func TestSingleChannel(t *testing.T) {
	g, err := gpio.New(mmio.NewBuffer(16), 1)
	require.NoError(t, err)
	c := New(g, &bytes.Buffer{}, clock.NewFake())
	require.NoError(t, c.Init())
	require.NoError(t, c.SetMode(Counter))
	assert.ErrorIs(t, c.SetLED(AllOn), gpio.ErrChannel)
	s, err := c.Status()
	require.NoError(t, err)
	assert.Equal(t, uint32(2), s.ModeReg)
}

func TestLineName(t *testing.T) {
	n, ok := LineName(ChannelLED, 7)
	assert.True(t, ok)
	assert.Equal(t, "LED7", n)
	n, ok = LineName(ChannelMode, 1)
	assert.True(t, ok)
	assert.Equal(t, "MODE1", n)
	_, ok = LineName(ChannelMode, 2)
	assert.False(t, ok)
}
