// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bram

import (
	"github.com/u-root/plbench/pkg/metric"
	"github.com/u-root/plbench/pkg/pattern"
)

// MaxReported bounds how many mismatches a verify pass keeps for display.
const MaxReported = 10

// Offsets read back after a fill; the ones past the window are skipped.
var fillSamples = []uint32{0, 100, 500, 1000, 1500, 2047}

type Mismatch struct {
	Offset   uint32
	Expected uint32
	Actual   uint32
}

type VerifyResult struct {
	Checked    uint32
	Total      uint32
	Mismatches []Mismatch
}

func (r *VerifyResult) Passed() bool {
	return r.Total == 0
}

func (r *VerifyResult) add(off, expected, actual uint32) {
	r.Checked++
	if expected == actual {
		return
	}
	if len(r.Mismatches) < MaxReported {
		r.Mismatches = append(r.Mismatches, Mismatch{off, expected, actual})
	}
	r.Total++
}

func (b *BRAM) record(r *VerifyResult, what string) *VerifyResult {
	result := "pass"
	if !r.Passed() {
		result = "fail"
	}
	metric.VerifyRuns.WithLabelValues(result).Inc()
	metric.VerifyMismatches.Add(float64(r.Total))
	b.log.Infow("verify done", "what", what, "checked", r.Checked, "mismatches", r.Total)
	return r
}

// WritePattern runs the write pass of p over the whole window.
func (b *BRAM) WritePattern(p pattern.Pattern) {
	if v, ok := p.Constant(); ok {
		b.FillAll(v)
		return
	}
	for off := uint32(0); off < b.words; off++ {
		b.write(off, p.Value(b.base, off))
	}
	b.log.Infow("pattern written", "pattern", p.String(), "words", b.words)
}

// VerifyPattern runs the verify pass of p over the whole window.
func (b *BRAM) VerifyPattern(p pattern.Pattern) *VerifyResult {
	r := &VerifyResult{}
	for off := uint32(0); off < b.words; off++ {
		r.add(off, p.Value(b.base, off), b.read(off))
	}
	return b.record(r, p.String())
}

// VerifyWords reads back the words starting at start and compares them
// with vals.
func (b *BRAM) VerifyWords(start uint32, vals []uint32) (*VerifyResult, error) {
	if err := b.CheckRange(start, uint32(len(vals))); err != nil {
		return nil, err
	}
	r := &VerifyResult{}
	for i, v := range vals {
		off := start + uint32(i)
		r.add(off, v, b.read(off))
	}
	return b.record(r, "words"), nil
}

// WriteVerify writes v, reads it back once and reports whether the two
// agree. There is no retry.
func (b *BRAM) WriteVerify(off, v uint32) (uint32, bool, error) {
	if err := b.WriteWord(off, v); err != nil {
		return 0, false, err
	}
	rb := b.read(off)
	return rb, rb == v, nil
}

// SampleFill reads back a fixed set of offsets expected to hold v after
// FillAll(v).
func (b *BRAM) SampleFill(v uint32) *VerifyResult {
	r := &VerifyResult{}
	for _, off := range fillSamples {
		if !b.ValidOffset(off) {
			continue
		}
		r.add(off, v, b.read(off))
	}
	return b.record(r, "fill samples")
}
