// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// ledctl selects the mode of the LED logic in the PL and drives the LEDs
// directly through a dual channel AXI GPIO.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jmhodges/clock"
	"github.com/u-root/plbench/pkg/bench"
	"github.com/u-root/plbench/pkg/gpio"
	"github.com/u-root/plbench/pkg/led"
	"github.com/u-root/plbench/pkg/shell"
)

func main() {
	var o bench.Options
	o.RegisterFlags(flag.CommandLine)
	flag.Parse()

	e, err := bench.Start(o)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ledctl: %v\n", err)
		os.Exit(1)
	}
	code := run(e)
	if err := e.Close(); err != nil {
		e.Log.Warnw("shutdown", "err", err)
	}
	os.Exit(code)
}

func run(e *bench.Env) int {
	w, err := e.Map("gpio", e.Config.GPIO.Window)
	if err != nil {
		e.Console.Write([]byte("GPIO Init Failed!\r\n"))
		e.Log.Errorw("GPIO init failed", "err", err)
		return 1
	}
	g, err := gpio.New(w, e.Config.GPIO.Channels)
	if err != nil {
		e.Log.Errorw("GPIO init failed", "err", err)
		return 1
	}
	l := led.New(g, e.Console, clock.New())
	if err := shell.NewLEDShell(e.Console, l).Run(); err != nil {
		e.Log.Errorw("console failed", "err", err)
		return 1
	}
	return 0
}
