// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// gpiowatcher prints changes on the lines of the LED AXI GPIO, or records
// them to a binary log for later playback.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmhodges/clock"
	"github.com/u-root/plbench/pkg/bench"
	"github.com/u-root/plbench/pkg/gpio"
	"github.com/u-root/plbench/pkg/gpiowatcher"
	"github.com/u-root/plbench/pkg/led"
)

var (
	doBinaryLog = flag.Bool("binary", false, "Record a binary log of all samples to stdout instead of text")
	doPlayback  = flag.Bool("playback", false, "Play a binary log from stdin instead of capturing")
	ignoreLines = flag.String("ignore", "", "Ignore events on the specified comma separated channel.bit lines")
	interval    = flag.Duration("interval", gpiowatcher.DefaultInterval, "Sampling interval")
)

func main() {
	var o bench.Options
	o.RegisterFlags(flag.CommandLine)
	flag.Parse()

	ignore, err := gpiowatcher.ParseLines(*ignoreLines)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gpiowatcher: %v\n", err)
		os.Exit(2)
	}
	e, err := bench.Start(o)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gpiowatcher: %v\n", err)
		os.Exit(1)
	}
	code := run(e, ignore)
	if err := e.Close(); err != nil {
		e.Log.Warnw("shutdown", "err", err)
	}
	os.Exit(code)
}

func run(e *bench.Env, ignore map[gpiowatcher.Line]bool) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clk := clock.New()
	var src gpiowatcher.Snapshotter
	if *doPlayback {
		src = gpiowatcher.NewPlayback(os.Stdin)
	} else {
		w, err := e.Map("gpio", e.Config.GPIO.Window)
		if err != nil {
			e.Log.Errorw("GPIO init failed", "err", err)
			return 1
		}
		g, err := gpio.New(w, e.Config.GPIO.Channels)
		if err != nil {
			e.Log.Errorw("GPIO init failed", "err", err)
			return 1
		}
		src = gpiowatcher.NewLive(g, clk)
	}

	var out gpiowatcher.Outputer
	if *doBinaryLog {
		out = gpiowatcher.NewBinaryLog(os.Stdout)
	} else {
		out = gpiowatcher.NewTextLog(e.Console, ignore, func(l gpiowatcher.Line) (string, bool) {
			return led.LineName(l.Channel, l.Bit)
		})
	}
	if err := gpiowatcher.Watch(ctx, src, out, clk, *interval); err != nil {
		e.Log.Errorw("watch failed", "err", err)
		return 1
	}
	return 0
}
