// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpiowatcher samples AXI GPIO registers and reports line changes,
// either as text or as a binary log that can be played back later.
package gpiowatcher

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/jmhodges/clock"
)

const DefaultInterval = 10 * time.Millisecond

// Watch feeds samples from src to out every interval until src is
// exhausted or ctx is done.
func Watch(ctx context.Context, src Snapshotter, out Outputer, clk clock.Clock, interval time.Duration) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		s, err := src.Snapshot()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := out.Log(s); err != nil {
			return err
		}
		// TODO: pace playback by the recorded sample times instead.
		clk.Sleep(interval)
	}
}
