// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bram

import (
	"fmt"
)

// BurstKind selects the access sequence of an ILA burst. The values are
// the menu codes.
type BurstKind int

const (
	BurstWrite BurstKind = iota + 1
	BurstRead
	BurstMixed
	BurstCustom
)

const (
	burstLen = 100
	mixedLen = 50

	burstWriteTag  = 0xDEAD0000
	burstMixedTag  = 0xBEEF0000
	burstCustomTag = 0xCAFE0000
)

func (k BurstKind) String() string {
	switch k {
	case BurstWrite:
		return "write"
	case BurstRead:
		return "read"
	case BurstMixed:
		return "mixed"
	case BurstCustom:
		return "custom"
	}
	return fmt.Sprintf("BurstKind(%d)", int(k))
}

// Burst issues back to back accesses for capture by a logic analyzer. The
// count is only used by BurstCustom and is capped at Words(). Burst returns
// the number of bus operations issued.
func (b *BRAM) Burst(kind BurstKind, count uint32) (uint32, error) {
	var sink uint32
	ops := uint32(0)
	switch kind {
	case BurstWrite:
		for i := uint32(0); i < b.limit(burstLen); i++ {
			b.write(i, burstWriteTag|i)
			ops++
		}
	case BurstRead:
		for i := uint32(0); i < b.limit(burstLen); i++ {
			sink = b.read(i)
			ops++
		}
	case BurstMixed:
		for i := uint32(0); i < b.limit(mixedLen); i++ {
			b.write(i, burstMixedTag|i)
			sink = b.read(i)
			ops += 2
		}
	case BurstCustom:
		count = b.limit(count)
		for i := uint32(0); i < count; i++ {
			b.write(i%b.words, burstCustomTag|i)
			ops++
		}
	default:
		return 0, fmt.Errorf("unknown burst type %d", int(kind))
	}
	_ = sink
	b.log.Infow("burst done", "kind", kind.String(), "ops", ops)
	return ops, nil
}

// BurstLimit is the largest count BurstCustom accepts.
func (b *BRAM) BurstLimit(count uint32) uint32 {
	return b.limit(count)
}

func (b *BRAM) limit(n uint32) uint32 {
	if n > b.words {
		return b.words
	}
	return n
}
