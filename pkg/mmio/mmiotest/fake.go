// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mmiotest provides a scripted mmio.Window for register level tests.
package mmiotest

import (
	"fmt"
	"testing"
)

type op struct {
	write  bool
	offset uint32
	data   uint32
}

func opstr(o *op) string {
	t := "read"
	if o.write {
		t = "write"
	}
	return fmt.Sprintf("{%s @ %08x = %08x}", t, o.offset, o.data)
}

// Fake checks every access against a list of expected operations, in order.
type Fake struct {
	t   testing.TB
	ops []op
}

func New(t testing.TB) *Fake {
	return &Fake{t: t}
}

func (m *Fake) next(what string, off uint32) (op, bool) {
	if len(m.ops) == 0 {
		m.t.Errorf("Unexpected %s on %08x", what, off)
		return op{}, false
	}
	o := m.ops[0]
	m.ops = m.ops[1:]
	return o, true
}

func (m *Fake) Read32(off uint32) uint32 {
	o, ok := m.next("read", off)
	if !ok {
		return 0
	}
	if o.write || o.offset != off {
		m.t.Errorf("Expected %s, got read on %08x", opstr(&o), off)
	}
	return o.data
}

func (m *Fake) Write32(off uint32, d uint32) {
	o, ok := m.next(fmt.Sprintf("write of %08x", d), off)
	if !ok {
		return
	}
	if !o.write || o.offset != off || o.data != d {
		m.t.Errorf("Expected %s, got write of %08x on %08x", opstr(&o), d, off)
	}
}

func (m *Fake) ExpectWrite32(off uint32, d uint32) {
	m.ops = append(m.ops, op{true, off, d})
}

func (m *Fake) FakeRead32(off uint32, d uint32) {
	m.ops = append(m.ops, op{false, off, d})
}

// Done fails the test if expected operations were not performed.
func (m *Fake) Done() {
	m.t.Helper()
	for i := range m.ops {
		m.t.Errorf("Expected %s, never happened", opstr(&m.ops[i]))
	}
	m.ops = nil
}

func (m *Fake) Close() error {
	return nil
}
