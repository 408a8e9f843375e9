// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bram drives an AXI BRAM controller window word by word.
//
// The layer is deliberately thin: every helper is a loop of single 32-bit
// accesses in ascending offset order so that the transactions seen by an ILA
// on the AXI bus map one to one onto the calls made here. Offsets are word
// offsets; the physical address of offset n is Base()+4n.
//
// All range-taking helpers validate the first and the last offset before the
// first access. An invalid range never results in a partial write.
package bram

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/u-root/plbench/pkg/logger"
	"github.com/u-root/plbench/pkg/metric"
	"github.com/u-root/plbench/pkg/mmio"
	"go.uber.org/zap"
)

const (
	DefaultBase uint32 = 0x80000000
	DefaultSize uint32 = 8 * 1024
)

var (
	ErrOutOfRange = errors.New("offset out of range")
	ErrEmptyRange = errors.New("empty range")
)

// OffsetError is returned for an offset past the end of the window.
type OffsetError struct {
	Offset uint64
	Max    uint32
}

func (e *OffsetError) Error() string {
	return fmt.Sprintf("offset %d exceeds maximum %d", e.Offset, e.Max)
}

func (e *OffsetError) Is(target error) bool {
	return target == ErrOutOfRange
}

type BRAM struct {
	mem   mmio.Window
	base  uint32
	words uint32

	reads  prometheus.Counter
	writes prometheus.Counter
	log    *zap.SugaredLogger
}

// New wraps a window of size bytes mapped at physical address base.
func New(mem mmio.Window, base, size uint32) *BRAM {
	return &BRAM{
		mem:    mem,
		base:   base,
		words:  size / 4,
		reads:  metric.BusReads.WithLabelValues("bram"),
		writes: metric.BusWrites.WithLabelValues("bram"),
		log:    logger.LogContainer.GetSimpleLogger(),
	}
}

func (b *BRAM) Base() uint32 {
	return b.base
}

// Words is the number of 32-bit words in the window.
func (b *BRAM) Words() uint32 {
	return b.words
}

func (b *BRAM) SizeBytes() uint32 {
	return b.words * 4
}

func (b *BRAM) MaxOffset() uint32 {
	return b.words - 1
}

// Address returns the physical address of a word offset.
func (b *BRAM) Address(off uint32) uint32 {
	return b.base + off*4
}

func (b *BRAM) ValidOffset(off uint32) bool {
	return off <= b.MaxOffset()
}

func (b *BRAM) CheckOffset(off uint32) error {
	return b.check(uint64(off))
}

func (b *BRAM) check(off uint64) error {
	if b.words == 0 || off > uint64(b.MaxOffset()) {
		return &OffsetError{Offset: off, Max: b.MaxOffset()}
	}
	return nil
}

// CheckRange validates [start, start+count).
func (b *BRAM) CheckRange(start, count uint32) error {
	if count == 0 {
		return ErrEmptyRange
	}
	if err := b.check(uint64(start)); err != nil {
		return err
	}
	return b.check(uint64(start) + uint64(count) - 1)
}

func (b *BRAM) write(off, v uint32) {
	b.writes.Inc()
	b.mem.Write32(off*4, v)
}

func (b *BRAM) read(off uint32) uint32 {
	b.reads.Inc()
	return b.mem.Read32(off * 4)
}

func (b *BRAM) WriteWord(off, v uint32) error {
	if err := b.CheckOffset(off); err != nil {
		return err
	}
	b.write(off, v)
	return nil
}

func (b *BRAM) ReadWord(off uint32) (uint32, error) {
	if err := b.CheckOffset(off); err != nil {
		return 0, err
	}
	return b.read(off), nil
}

// WriteWords writes vals to consecutive offsets starting at start.
func (b *BRAM) WriteWords(start uint32, vals []uint32) error {
	if err := b.CheckRange(start, uint32(len(vals))); err != nil {
		return err
	}
	for i, v := range vals {
		b.write(start+uint32(i), v)
	}
	return nil
}

// ReadWords reads count consecutive words starting at start.
func (b *BRAM) ReadWords(start, count uint32) ([]uint32, error) {
	if err := b.CheckRange(start, count); err != nil {
		return nil, err
	}
	vals := make([]uint32, count)
	for i := range vals {
		vals[i] = b.read(start + uint32(i))
	}
	return vals, nil
}

// FillAll writes v to every word of the window.
func (b *BRAM) FillAll(v uint32) {
	for off := uint32(0); off < b.words; off++ {
		b.write(off, v)
	}
	b.log.Infow("bram filled", logger.LogContainer.Hex("value", v), "words", b.words)
}

// Summary describes the non-zero content of the window.
type Summary struct {
	Words     uint32
	NonZero   uint32
	FirstOff  uint32
	FirstData uint32
	LastOff   uint32
	LastData  uint32
}

// Summary reads the whole window once.
func (b *BRAM) Summary() Summary {
	s := Summary{Words: b.words}
	for off := uint32(0); off < b.words; off++ {
		v := b.read(off)
		if v == 0 {
			continue
		}
		if s.NonZero == 0 {
			s.FirstOff, s.FirstData = off, v
		}
		s.LastOff, s.LastData = off, v
		s.NonZero++
	}
	return s
}
