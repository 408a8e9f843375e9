// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmio

import (
	"fmt"
	"os"
	"sync/atomic"
	"unsafe"

	"go.uber.org/multierr"
	"golang.org/x/sys/unix"
)

const devMemPath = "/dev/mem"

// DevMem is a window onto physical memory through /dev/mem.
type DevMem struct {
	f    *os.File
	mem  []byte
	base uint32
	size uint32
}

// Open maps [base, base+size) of physical memory. The mapping lives until
// Close. O_SYNC keeps the kernel from mapping the range cacheable.
func Open(base, size uint32) (*DevMem, error) {
	ps := uint32(os.Getpagesize())
	if base&(ps-1) != 0 {
		return nil, fmt.Errorf("mmio: base %#08x is not page aligned", base)
	}
	if size == 0 {
		return nil, fmt.Errorf("mmio: empty window at %#08x", base)
	}
	mapped := (size + ps - 1) &^ (ps - 1)

	f, err := os.OpenFile(devMemPath, os.O_RDWR|os.O_SYNC, 0600)
	if err != nil {
		return nil, fmt.Errorf("mmio: open %s: %w", devMemPath, err)
	}
	mem, err := unix.Mmap(int(f.Fd()), int64(base), int(mapped), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mmio: mmap %#08x+%#x: %w", base, mapped, err)
	}
	return &DevMem{f: f, mem: mem, base: base, size: size}, nil
}

func (m *DevMem) word(off uint32) *uint32 {
	checkAccess(off, m.size)
	return (*uint32)(unsafe.Pointer(&m.mem[off]))
}

func (m *DevMem) Read32(off uint32) uint32 {
	return atomic.LoadUint32(m.word(off))
}

func (m *DevMem) Write32(off uint32, v uint32) {
	atomic.StoreUint32(m.word(off), v)
}

// Base returns the physical address the window starts at.
func (m *DevMem) Base() uint32 {
	return m.base
}

func (m *DevMem) Close() error {
	if m.f == nil {
		return nil
	}
	err := unix.Munmap(m.mem)
	err = multierr.Append(err, m.f.Close())
	m.mem = nil
	m.f = nil
	return err
}
