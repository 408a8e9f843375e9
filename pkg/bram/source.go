// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bram

// MaxMultiWords is the most words a single multi-word write takes.
const MaxMultiWords = 64

// Source selects where the data of a multi-word write comes from. The
// values are the menu codes.
type Source int

const (
	SourceManual Source = iota + 1
	SourceIncrementing
	SourceBaseOffset
	SourceConstant
)

// ParseSource maps a menu code to a Source. Unknown codes fall back to
// SourceIncrementing and report fellBack so the caller can warn.
func ParseSource(code int) (s Source, fellBack bool) {
	switch s := Source(code); s {
	case SourceManual, SourceIncrementing, SourceBaseOffset, SourceConstant:
		return s, false
	}
	return SourceIncrementing, true
}

func (s Source) String() string {
	switch s {
	case SourceManual:
		return "manual"
	case SourceIncrementing:
		return "incrementing"
	case SourceBaseOffset:
		return "base+offset"
	case SourceConstant:
		return "constant"
	}
	return "unknown"
}

// NeedsValue reports whether the source takes a base or constant value.
func (s Source) NeedsValue() bool {
	return s == SourceBaseOffset || s == SourceConstant
}

// Values builds count words. arg is the base for SourceBaseOffset and the
// value for SourceConstant. SourceManual returns a copy of manual.
func (s Source) Values(count uint32, arg uint32, manual []uint32) []uint32 {
	if s == SourceManual {
		return append([]uint32(nil), manual...)
	}
	vals := make([]uint32, count)
	for i := range vals {
		switch s {
		case SourceBaseOffset:
			vals[i] = arg + uint32(i)
		case SourceConstant:
			vals[i] = arg
		default:
			vals[i] = uint32(i)
		}
	}
	return vals
}

// ClampMulti limits a multi-word count to MaxMultiWords.
func ClampMulti(count uint32) (uint32, bool) {
	if count > MaxMultiWords {
		return MaxMultiWords, true
	}
	return count, false
}
