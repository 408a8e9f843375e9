// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bram

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/u-root/plbench/pkg/mmio"
	"github.com/u-root/plbench/pkg/pattern"
)

func TestVerifySamePattern(t *testing.T) {
	for _, p := range pattern.All() {
		b, _ := newTestBRAM()
		b.WritePattern(p)
		r := b.VerifyPattern(p)
		assert.True(t, r.Passed(), "%v", p)
		assert.Equal(t, uint32(2048), r.Checked)
		assert.Empty(t, r.Mismatches)
	}
}

func TestVerifyOtherPattern(t *testing.T) {
	for _, p := range pattern.All() {
		for _, q := range pattern.All() {
			if p == q {
				continue
			}
			b, _ := newTestBRAM()
			b.WritePattern(p)
			want := uint32(0)
			for off := uint32(0); off < b.Words(); off++ {
				if p.Value(b.Base(), off) != q.Value(b.Base(), off) {
					want++
				}
			}
			r := b.VerifyPattern(q)
			assert.Equal(t, want, r.Total, "wrote %v, verified %v", p, q)
			assert.LessOrEqual(t, len(r.Mismatches), MaxReported)
		}
	}
}

func TestVerifyReportsFirstMismatches(t *testing.T) {
	b, mem := newTestBRAM()
	b.WritePattern(pattern.Checkerboard)
	for off := uint32(100); off < 120; off++ {
		mem.Poke(off*4, 0)
	}
	r := b.VerifyPattern(pattern.Checkerboard)
	require.Equal(t, uint32(20), r.Total)
	require.Len(t, r.Mismatches, MaxReported)
	assert.Equal(t, Mismatch{Offset: 100, Expected: 0x55AA55AA, Actual: 0}, r.Mismatches[0])
	assert.Equal(t, uint32(109), r.Mismatches[9].Offset)
}

func TestWriteVerifyMismatch(t *testing.T) {
	mem := &stuckBit{Buffer: mmio.NewBuffer(DefaultSize), mask: 0x1}
	b := New(mem, DefaultBase, DefaultSize)
	rb, ok, err := b.WriteVerify(7, 0xFF)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, uint32(0xFE), rb)

	_, _, err = b.WriteVerify(2048, 0xFF)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestVerifyWords(t *testing.T) {
	b, mem := newTestBRAM()
	vals := SourceBaseOffset.Values(4, 0x1000, nil)
	require.NoError(t, b.WriteWords(30, vals))
	mem.Poke(32*4, 0)
	r, err := b.VerifyWords(30, vals)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), r.Total)
	assert.Equal(t, Mismatch{32, 0x1002, 0}, r.Mismatches[0])

	_, err = b.VerifyWords(2047, vals)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestSampleFill(t *testing.T) {
	b, mem := newTestBRAM()
	b.FillAll(0xCAFEF00D)
	r := b.SampleFill(0xCAFEF00D)
	assert.True(t, r.Passed())
	assert.Equal(t, uint32(6), r.Checked)

	mem.Poke(1500*4, 1)
	r = b.SampleFill(0xCAFEF00D)
	assert.Equal(t, uint32(1), r.Total)

	small := New(mmio.NewBuffer(1024), DefaultBase, 1024)
	small.FillAll(3)
	r = small.SampleFill(3)
	assert.Equal(t, uint32(2), r.Checked)
}

func TestSources(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]uint32{0, 1, 2}, SourceIncrementing.Values(3, 99, nil))
	assert.Equal([]uint32{0x10, 0x11, 0x12}, SourceBaseOffset.Values(3, 0x10, nil))
	assert.Equal([]uint32{7, 7}, SourceConstant.Values(2, 7, nil))
	assert.Equal([]uint32{4, 5}, SourceManual.Values(2, 0, []uint32{4, 5}))

	s, fb := ParseSource(3)
	assert.Equal(SourceBaseOffset, s)
	assert.False(fb)
	s, fb = ParseSource(9)
	assert.Equal(SourceIncrementing, s)
	assert.True(fb)
	s, fb = ParseSource(-1)
	assert.Equal(SourceIncrementing, s)
	assert.True(fb)

	n, clamped := ClampMulti(100)
	assert.Equal(uint32(64), n)
	assert.True(clamped)
}

func TestBurst(t *testing.T) {
	b, mem := newTestBRAM()
	ops, err := b.Burst(BurstWrite, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(100), ops)
	v, _ := b.ReadWord(99)
	assert.Equal(t, uint32(0xDEAD0063), v)
	v, _ = b.ReadWord(100)
	assert.Equal(t, uint32(0), v)

	ops, err = b.Burst(BurstMixed, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(100), ops)
	v, _ = b.ReadWord(49)
	assert.Equal(t, uint32(0xBEEF0031), v)

	before := mem.Writes
	ops, err = b.Burst(BurstCustom, 100000)
	require.NoError(t, err)
	assert.Equal(t, uint32(2048), ops)
	assert.Equal(t, before+2048, mem.Writes)
	v, _ = b.ReadWord(2047)
	assert.Equal(t, uint32(0xCAFE07FF), v)

	reads := mem.Reads
	_, err = b.Burst(BurstRead, 0)
	require.NoError(t, err)
	assert.Equal(t, reads+100, mem.Reads)

	_, err = b.Burst(BurstKind(7), 0)
	assert.Error(t, err)
}

func TestBurstSmallWindow(t *testing.T) {
	// Out of window accesses panic in the buffer.
	b := New(mmio.NewBuffer(64), DefaultBase, 64)
	ops, err := b.Burst(BurstWrite, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(16), ops)
}

func TestHexDump(t *testing.T) {
	b, _ := newTestBRAM()
	require.NoError(t, b.WriteWord(2, 0x41424344))
	require.NoError(t, b.WriteWord(3, 0x7F20417E))
	var buf bytes.Buffer
	require.NoError(t, b.HexDump(&buf, 2, 2))
	want := "Offset    Address     Data\r\n" +
		"------    --------    --------\r\n" +
		"   2      0x80000008  0x41424344  |ABCD|\r\n" +
		"   3      0x8000000C  0x7F20417E  |. A~|\r\n"
	assert.Equal(t, want, buf.String())

	buf.Reset()
	assert.ErrorIs(t, b.HexDump(&buf, 2040, 9), ErrOutOfRange)
	assert.Empty(t, buf.String())
}

func TestASCII(t *testing.T) {
	assert.Equal(t, "....", ASCII(0))
	assert.Equal(t, "DEAD", ASCII(0x44454144))
	assert.Equal(t, ".~ .", ASCII(0x1F7E207F))
}

func TestInfo(t *testing.T) {
	b, _ := newTestBRAM()
	var buf bytes.Buffer
	b.Info(&buf)
	assert.Contains(t, buf.String(), "End Address:  0x80001FFF")
	assert.Contains(t, buf.String(), "8192 bytes (8 KB)")
	assert.Contains(t, buf.String(), "Valid Offset: 0 to 2047")
}

// stuckBit clears mask on every read.
type stuckBit struct {
	*mmio.Buffer
	mask uint32
}

func (s *stuckBit) Read32(off uint32) uint32 {
	return s.Buffer.Read32(off) &^ s.mask
}
