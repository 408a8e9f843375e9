// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !linux
// +build !linux

package mmio

import (
	"errors"
)

type DevMem struct {
	Window
}

func Open(base, size uint32) (*DevMem, error) {
	return nil, errors.New("mmio: /dev/mem is only supported on linux")
}

func (m *DevMem) Base() uint32 {
	return 0
}
