// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package led

import (
	"fmt"
	"time"
)

const (
	delayShort  = 100 * time.Millisecond
	delayMedium = 250 * time.Millisecond
	delayLong   = 500 * time.Millisecond

	modeDwell  = 5 * time.Second
	chaseDelay = 80 * time.Millisecond
)

// The sequences below run to completion. Input is not polled while they
// run, so the only way to stop one early is a reset.

type step struct {
	p uint8
	d time.Duration
}

func (c *Controller) play(steps []step) error {
	for _, s := range steps {
		if err := c.SetLED(s.p); err != nil {
			return err
		}
		c.clk.Sleep(s.d)
	}
	return nil
}

// chase sweeps a single lit LED left to right and back, cycles times.
func chase(cycles int, d time.Duration) []step {
	var steps []step
	for n := 0; n < cycles; n++ {
		for i := 0; i < 8; i++ {
			steps = append(steps, step{1 << i, d})
		}
		for i := 6; i > 0; i-- {
			steps = append(steps, step{1 << i, d})
		}
	}
	return steps
}

func alternate(times int, a, b uint8, d time.Duration) []step {
	var steps []step
	for i := 0; i < times; i++ {
		steps = append(steps, step{a, d}, step{b, d})
	}
	return steps
}

// demoSequence is the full direct-control demo.
func demoSequence() [][]step {
	var seq, count []step
	for i := 0; i < 8; i++ {
		seq = append(seq, step{1 << i, delayMedium})
	}
	for i := 0; i < 16; i++ {
		count = append(count, step{uint8(i), delayShort})
	}
	return [][]step{
		seq,
		count,
		alternate(6, Alternate1, Alternate2, delayMedium),
		chase(3, delayShort),
		alternate(6, AllOn, AllOff, delayLong),
	}
}

var demoTitles = []string{
	"1. Sequential LED test...",
	"2. Binary count demo...",
	"3. Alternate pattern...",
	"4. Knight Rider demo...",
	"5. Blink all...",
}

// Demo plays the direct-control demo and leaves the LEDs off.
func (c *Controller) Demo() error {
	fmt.Fprintf(c.out, "\r\n--- Starting Demo ---\r\n")
	for i, steps := range demoSequence() {
		fmt.Fprintf(c.out, "%s\r\n", demoTitles[i])
		if err := c.play(steps); err != nil {
			return err
		}
	}
	fmt.Fprintf(c.out, "--- Demo Complete ---\r\n")
	return c.SetLED(AllOff)
}

// ModeCycle lets the PL logic run each mode for a while and ends in OFF.
func (c *Controller) ModeCycle() error {
	for _, m := range []Mode{Blink, Counter, Knight} {
		fmt.Fprintf(c.out, "\r\n[Demo] Mode: %s\r\n", m)
		if err := c.SetMode(m); err != nil {
			return err
		}
		c.clk.Sleep(modeDwell)
	}
	fmt.Fprintf(c.out, "\r\n[Demo] Mode: %s\r\n", Off)
	if err := c.SetMode(Off); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "\r\nDemo Complete.\r\n")
	return nil
}

// SequentialTest lights every LED on its own, then all of them.
func (c *Controller) SequentialTest() error {
	fmt.Fprintf(c.out, "\r\n--- Sequential LED Test ---\r\n")
	for i := 0; i < 8; i++ {
		fmt.Fprintf(c.out, "Testing LED[%d]... ", i)
		if err := c.SetLED(1 << i); err != nil {
			return err
		}
		c.clk.Sleep(delayLong)
		fmt.Fprintf(c.out, "OK\r\n")
	}
	fmt.Fprintf(c.out, "\r\nAll LEDs ON for 2 seconds...\r\n")
	if err := c.SetLED(AllOn); err != nil {
		return err
	}
	c.clk.Sleep(2 * time.Second)
	if err := c.SetLED(AllOff); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "--- Test Complete ---\r\n")
	return nil
}

// BinaryCount counts 0 to 255 on the LEDs.
func (c *Controller) BinaryCount() error {
	fmt.Fprintf(c.out, "\r\n--- Binary Count Demo (0-255) ---\r\n")
	for i := 0; i <= 255; i++ {
		if err := c.SetLED(uint8(i)); err != nil {
			return err
		}
		c.clk.Sleep(delayShort)
		if i%16 == 0 {
			fmt.Fprintf(c.out, "  Count: %3d (0x%02X)\r\n", i, i)
		}
	}
	fmt.Fprintf(c.out, "--- Count Complete ---\r\n")
	return nil
}

// KnightRider runs the chase in software, independent of the PL mode.
func (c *Controller) KnightRider() error {
	fmt.Fprintf(c.out, "\r\n--- Knight Rider Demo ---\r\n")
	if err := c.play(chase(10, chaseDelay)); err != nil {
		return err
	}
	if err := c.SetLED(AllOff); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "--- Demo Complete ---\r\n")
	return nil
}
