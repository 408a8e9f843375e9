// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmio

import (
	"testing"
)

func TestBufferReadWrite(t *testing.T) {
	b := NewBuffer(16)
	b.Write32(0x4, 0xdeadbeef)
	b.Write32(0xc, 1)
	if v := b.Read32(0x4); v != 0xdeadbeef {
		t.Errorf("Read32(0x4) = %08x, expected deadbeef", v)
	}
	if v := b.Read32(0x0); v != 0 {
		t.Errorf("Read32(0x0) = %08x, expected 0", v)
	}
	if b.Reads != 2 || b.Writes != 2 {
		t.Errorf("access count = %d reads, %d writes, expected 2, 2", b.Reads, b.Writes)
	}
}

func TestBufferPoke(t *testing.T) {
	b := NewBuffer(8)
	b.Poke(4, 7)
	if b.Writes != 0 {
		t.Errorf("Poke counted as a bus write")
	}
	if v := b.Read32(4); v != 7 {
		t.Errorf("Read32(4) = %d after Poke, expected 7", v)
	}
}

func TestBufferOutOfWindow(t *testing.T) {
	for _, off := range []uint32{16, 2, 0xfffffffc} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Read32(%#x) on a 16 byte window did not panic", off)
				}
			}()
			NewBuffer(16).Read32(off)
		}()
	}
}
