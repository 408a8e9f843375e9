// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// bramtest is an interactive exerciser for a block RAM behind an AXI BRAM
// controller. Its burst entries produce access sequences that are easy to
// trigger on with an ILA.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/u-root/plbench/pkg/bench"
	"github.com/u-root/plbench/pkg/bram"
	"github.com/u-root/plbench/pkg/shell"
)

func main() {
	var o bench.Options
	o.RegisterFlags(flag.CommandLine)
	flag.Parse()

	e, err := bench.Start(o)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bramtest: %v\n", err)
		os.Exit(1)
	}
	code := run(e)
	if err := e.Close(); err != nil {
		e.Log.Warnw("shutdown", "err", err)
	}
	os.Exit(code)
}

func run(e *bench.Env) int {
	w, err := e.Map("bram", e.Config.BRAM)
	if err != nil {
		e.Log.Errorw("BRAM init failed", "err", err)
		return 1
	}
	b := bram.New(w, e.Config.BRAM.Base, e.Config.BRAM.Size)
	if err := shell.NewBRAMShell(e.Console, b).Run(); err != nil {
		e.Log.Errorw("console failed", "err", err)
		return 1
	}
	return 0
}
