// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mmio gives access to memory-mapped peripheral windows.
//
// A Window covers one contiguous physical range (a BRAM controller, an AXI
// GPIO instance, ...). Offsets passed to Read32 and Write32 are byte offsets
// from the start of the window and must be word aligned. Every call is a
// single 32-bit bus access; nothing is cached or merged between calls.
//
// On the board the window is a mapping of /dev/mem. Tests and the -sim mode
// of the commands use Buffer instead.
package mmio

import (
	"errors"
)

var ErrUnaligned = errors.New("mmio: unaligned access")

type Window interface {
	Read32(off uint32) uint32
	Write32(off uint32, v uint32)
	Close() error
}

func checkAccess(off, size uint32) {
	if off&3 != 0 {
		panic(ErrUnaligned)
	}
	if size < 4 || off > size-4 {
		panic("mmio: access outside window")
	}
}
