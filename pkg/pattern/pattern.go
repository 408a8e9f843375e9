// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pattern defines the fixed data patterns used to exercise a
// memory window. A pattern maps a word offset to the value expected there;
// the same mapping drives both the write pass and the verify pass.
package pattern

import (
	"fmt"
)

// Pattern values double as the menu codes.
type Pattern int

const (
	Incrementing Pattern = iota + 1
	AddressEcho
	Checkerboard
	WalkingOne
	ConstantHigh
	ConstantLow
)

const (
	CheckerEven uint32 = 0x55AA55AA
	CheckerOdd  uint32 = 0xAA55AA55
)

var names = map[Pattern]string{
	Incrementing: "Incrementing",
	AddressEcho:  "Address values",
	Checkerboard: "Checkerboard",
	WalkingOne:   "Walking ones",
	ConstantHigh: "All 0xFFFFFFFF",
	ConstantLow:  "All 0x00000000",
}

// All returns the patterns in menu order.
func All() []Pattern {
	return []Pattern{Incrementing, AddressEcho, Checkerboard, WalkingOne, ConstantHigh, ConstantLow}
}

// Lookup maps a menu code to a pattern.
func Lookup(code int) (Pattern, bool) {
	p := Pattern(code)
	_, ok := names[p]
	return p, ok
}

func (p Pattern) String() string {
	if n, ok := names[p]; ok {
		return n
	}
	return fmt.Sprintf("Pattern(%d)", int(p))
}

// Value is the word expected at offset off of a window starting at
// physical address base.
func (p Pattern) Value(base, off uint32) uint32 {
	switch p {
	case Incrementing:
		return off
	case AddressEcho:
		return base + off*4
	case Checkerboard:
		if off&1 != 0 {
			return CheckerOdd
		}
		return CheckerEven
	case WalkingOne:
		return 1 << (off % 32)
	case ConstantHigh:
		return 0xFFFFFFFF
	case ConstantLow:
		return 0
	}
	panic(fmt.Sprintf("pattern: unknown pattern %d", int(p)))
}

// Constant reports whether every offset holds the same value.
func (p Pattern) Constant() (uint32, bool) {
	switch p {
	case ConstantHigh:
		return 0xFFFFFFFF, true
	case ConstantLow:
		return 0, true
	}
	return 0, false
}
