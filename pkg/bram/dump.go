// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bram

import (
	"fmt"
	"io"
)

// ASCII renders the bytes of a word most significant first, with '.' for
// anything that is not printable.
func ASCII(v uint32) string {
	var s [4]byte
	for i := range s {
		c := byte(v >> (24 - 8*uint(i)))
		if c < 32 || c > 126 {
			c = '.'
		}
		s[i] = c
	}
	return string(s[:])
}

// HexDump prints count words starting at start.
func (b *BRAM) HexDump(w io.Writer, start, count uint32) error {
	if err := b.CheckRange(start, count); err != nil {
		return err
	}
	fmt.Fprintf(w, "Offset    Address     Data\r\n")
	fmt.Fprintf(w, "------    --------    --------\r\n")
	for i := uint32(0); i < count; i++ {
		off := start + i
		v := b.read(off)
		fmt.Fprintf(w, "%4d      0x%08X  0x%08X  |%s|\r\n", off, b.Address(off), v, ASCII(v))
	}
	return nil
}

// Info prints the layout of the window.
func (b *BRAM) Info(w io.Writer) {
	fmt.Fprintf(w, "BRAM Configuration:\r\n")
	fmt.Fprintf(w, "  - Base Address: 0x%08X\r\n", b.base)
	fmt.Fprintf(w, "  - End Address:  0x%08X\r\n", b.base+b.SizeBytes()-1)
	fmt.Fprintf(w, "  - Size:         %d bytes (%d KB)\r\n", b.SizeBytes(), b.SizeBytes()/1024)
	fmt.Fprintf(w, "  - Word Count:   %d (32-bit words)\r\n", b.words)
	fmt.Fprintf(w, "  - Valid Offset: 0 to %d\r\n", b.MaxOffset())
}
