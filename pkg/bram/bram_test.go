// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bram

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/u-root/plbench/pkg/metric"
	"github.com/u-root/plbench/pkg/mmio"
	"github.com/u-root/plbench/pkg/mmio/mmiotest"
)

func newTestBRAM() (*BRAM, *mmio.Buffer) {
	mem := mmio.NewBuffer(DefaultSize)
	return New(mem, DefaultBase, DefaultSize), mem
}

func TestGeometry(t *testing.T) {
	assert := assert.New(t)
	b, _ := newTestBRAM()
	assert.Equal(uint32(2048), b.Words())
	assert.Equal(uint32(2047), b.MaxOffset())
	assert.Equal(uint32(0x80000000), b.Address(0))
	assert.Equal(uint32(0x80001FFC), b.Address(2047))
	assert.True(b.ValidOffset(2047))
	assert.False(b.ValidOffset(2048))
}

func TestWriteReadRoundTrip(t *testing.T) {
	b, _ := newTestBRAM()
	for _, off := range []uint32{0, 1, 5, 1023, 2047} {
		v := 0xA5000000 | off
		require.NoError(t, b.WriteWord(off, v))
		got, err := b.ReadWord(off)
		require.NoError(t, err)
		assert.Equal(t, v, got, "offset %d", off)
	}
}

func TestDeadBeefAtFive(t *testing.T) {
	b, _ := newTestBRAM()
	rb, ok, err := b.WriteVerify(5, 0xDEADBEEF)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint32(0xDEADBEEF), rb)
}

func TestWriteOnePastEnd(t *testing.T) {
	fm := mmiotest.New(t)
	b := New(fm, DefaultBase, DefaultSize)

	err := b.WriteWord(2048, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfRange))
	assert.Equal(t, "offset 2048 exceeds maximum 2047", err.Error())

	_, err = b.ReadWord(4096)
	assert.True(t, errors.Is(err, ErrOutOfRange))
	fm.Done()
}

func TestRangeValidatedBeforeWrite(t *testing.T) {
	fm := mmiotest.New(t)
	b := New(fm, DefaultBase, DefaultSize)

	// Start is valid, end is not: nothing may be written.
	err := b.WriteWords(2040, make([]uint32, 9))
	var oe *OffsetError
	require.True(t, errors.As(err, &oe))
	assert.Equal(t, uint64(2048), oe.Offset)

	_, err = b.ReadWords(0, 0)
	assert.True(t, errors.Is(err, ErrEmptyRange))

	// Huge counts must not wrap around.
	_, err = b.ReadWords(10, 0xFFFFFFFF)
	assert.True(t, errors.Is(err, ErrOutOfRange))
	fm.Done()
}

func TestWriteWordsOrder(t *testing.T) {
	fm := mmiotest.New(t)
	b := New(fm, DefaultBase, DefaultSize)
	fm.ExpectWrite32(10*4, 1)
	fm.ExpectWrite32(11*4, 2)
	fm.ExpectWrite32(12*4, 3)
	require.NoError(t, b.WriteWords(10, []uint32{1, 2, 3}))
	fm.FakeRead32(2045*4, 7)
	fm.FakeRead32(2046*4, 8)
	fm.FakeRead32(2047*4, 9)
	vals, err := b.ReadWords(2045, 3)
	require.NoError(t, err)
	assert.Equal(t, []uint32{7, 8, 9}, vals)
	fm.Done()
}

func TestFillAll(t *testing.T) {
	b, mem := newTestBRAM()
	b.FillAll(0x12345678)
	assert.Equal(t, 2048, mem.Writes)
	for _, off := range []uint32{0, 777, 2047} {
		v, err := b.ReadWord(off)
		require.NoError(t, err)
		assert.Equal(t, uint32(0x12345678), v)
	}

	b.FillAll(0)
	v, err := b.ReadWord(2047)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), v)
}

func TestSummary(t *testing.T) {
	b, _ := newTestBRAM()
	s := b.Summary()
	assert.Equal(t, uint32(0), s.NonZero)

	require.NoError(t, b.WriteWord(3, 0x33))
	require.NoError(t, b.WriteWord(9, 0x99))
	require.NoError(t, b.WriteWord(100, 0x100))
	s = b.Summary()
	assert.Equal(t, Summary{Words: 2048, NonZero: 3, FirstOff: 3, FirstData: 0x33, LastOff: 100, LastData: 0x100}, s)
}

func TestBusCounters(t *testing.T) {
	reads := testutil.ToFloat64(metric.BusReads.WithLabelValues("bram"))
	writes := testutil.ToFloat64(metric.BusWrites.WithLabelValues("bram"))
	b, _ := newTestBRAM()
	require.NoError(t, b.WriteWords(0, []uint32{1, 2}))
	_, err := b.ReadWord(1)
	require.NoError(t, err)
	assert.Equal(t, reads+1, testutil.ToFloat64(metric.BusReads.WithLabelValues("bram")))
	assert.Equal(t, writes+2, testutil.ToFloat64(metric.BusWrites.WithLabelValues("bram")))
}
