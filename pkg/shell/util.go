// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"strconv"
	"strings"
)

func itoa(v uint32) string {
	return strconv.FormatUint(uint64(v), 10)
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
