// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmio

// Buffer is a Window backed by ordinary memory.
type Buffer struct {
	words []uint32
	// Reads and Writes count the accesses made through the window.
	Reads  int
	Writes int
}

func NewBuffer(size uint32) *Buffer {
	return &Buffer{words: make([]uint32, size/4)}
}

func (b *Buffer) Read32(off uint32) uint32 {
	checkAccess(off, b.Size())
	b.Reads++
	return b.words[off/4]
}

func (b *Buffer) Write32(off uint32, v uint32) {
	checkAccess(off, b.Size())
	b.Writes++
	b.words[off/4] = v
}

// Size is the window size in bytes.
func (b *Buffer) Size() uint32 {
	return uint32(len(b.words)) * 4
}

// Poke changes a word without counting it as a bus access, the way another
// bus master would.
func (b *Buffer) Poke(off uint32, v uint32) {
	b.words[off/4] = v
}

func (b *Buffer) Close() error {
	return nil
}
