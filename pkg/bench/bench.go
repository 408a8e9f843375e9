// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bench wires configuration, logging, metrics, the operator console
// and the register windows together for the command line programs.
package bench

import (
	"flag"
	"fmt"

	"github.com/spf13/afero"
	"github.com/u-root/plbench/config"
	"github.com/u-root/plbench/pkg/console"
	"github.com/u-root/plbench/pkg/logger"
	"github.com/u-root/plbench/pkg/metric"
	"github.com/u-root/plbench/pkg/mmio"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Options struct {
	ConfigPath string
	// Sim backs every window with plain memory instead of /dev/mem.
	Sim     bool
	Serial  string
	Baud    int
	Metrics string

	Fs afero.Fs
}

// RegisterFlags binds the common flags. Flag values override the file.
func (o *Options) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&o.ConfigPath, "config", "", "Configuration file, default is kv260.toml in /etc or the working directory")
	fs.BoolVar(&o.Sim, "sim", false, "Simulate the PL windows in memory")
	fs.StringVar(&o.Serial, "serial", "", "Serial device for the console, default is the terminal")
	fs.IntVar(&o.Baud, "baud", 0, "Serial baud rate")
	fs.StringVar(&o.Metrics, "metrics", "", "Serve Prometheus metrics on this address")
}

// Env is a running bench session.
type Env struct {
	Config  *config.Config
	Console console.Port
	Log     *zap.SugaredLogger

	sim     bool
	closers []func() error
}

// Start loads the configuration and brings up logging, the metrics endpoint
// and the console.
func Start(o Options) (*Env, error) {
	fs := o.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	c, err := config.Load(fs, o.ConfigPath)
	if err != nil {
		return nil, err
	}
	if o.Serial != "" {
		c.Console.Device = o.Serial
	}
	if o.Baud != 0 {
		c.Console.Baud = o.Baud
	}
	if o.Metrics != "" {
		c.Metrics.Listen = o.Metrics
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return nil, fmt.Errorf("log.level: %w", err)
	}
	logger.LogContainer.Configure(c.Log.File, level)
	e := &Env{Config: c, Log: logger.LogContainer.GetSimpleLogger(), sim: o.Sim}

	if c.Metrics.Listen != "" {
		l, err := metric.Start(c.Metrics.Listen, func(err error) {
			e.Log.Debugw("metrics server stopped", "err", err)
		})
		if err != nil {
			return nil, err
		}
		e.onClose(l.Close)
		e.Log.Infow("serving metrics", "addr", l.Addr().String())
	}

	if c.Console.Device != "" {
		e.Console, err = console.OpenSerial(c.Console.Device, c.Console.Baud)
	} else {
		e.Console, err = console.OpenStdio()
	}
	if err != nil {
		return nil, multierr.Append(err, e.Close())
	}
	e.onClose(e.Console.Close)
	return e, nil
}

func (e *Env) onClose(f func() error) {
	e.closers = append(e.closers, f)
}

// Map opens a register window, in memory when simulating.
func (e *Env) Map(name string, w config.Window) (mmio.Window, error) {
	if e.sim {
		e.Log.Infow("simulating window", "window", name, "size", w.Size)
		return mmio.NewBuffer(w.Size), nil
	}
	m, err := mmio.Open(w.Base, w.Size)
	if err != nil {
		return nil, fmt.Errorf("map %s window: %w", name, err)
	}
	e.onClose(m.Close)
	e.Log.Infow("mapped window", "window", name, logger.LogContainer.Hex("base", w.Base), "size", w.Size)
	return m, nil
}

// Close releases everything in reverse order of acquisition.
func (e *Env) Close() error {
	var err error
	for i := len(e.closers) - 1; i >= 0; i-- {
		err = multierr.Append(err, e.closers[i]())
	}
	e.closers = nil
	return err
}
