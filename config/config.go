// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the board layout and the operator settings.
//
// Settings come from a TOML file named kv260.toml, looked up in /etc and
// then the working directory. Every key is optional. Addresses may be
// written as TOML integers or as strings in any Go integer syntax, so
// "0x80000000" works as well.
package config

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/u-root/plbench/pkg/bram"
	"github.com/u-root/plbench/pkg/gpio"
)

const (
	Name = "kv260"

	DefaultBaud = 115200
)

var SearchPaths = []string{"/etc", "."}

type Window struct {
	Base uint32
	Size uint32
}

type GPIO struct {
	Window
	Channels int
}

type Console struct {
	// Device is a serial port. Empty means the controlling terminal.
	Device string
	Baud   int
}

type Metrics struct {
	// Listen is the address of the Prometheus endpoint. Empty disables it.
	Listen string
}

type Log struct {
	File  string
	Level string
}

type Config struct {
	BRAM    Window
	GPIO    GPIO
	Console Console
	Metrics Metrics
	Log     Log
}

var DefaultConfig = &Config{
	BRAM: Window{Base: bram.DefaultBase, Size: bram.DefaultSize},
	GPIO: GPIO{
		Window:   Window{Base: gpio.DefaultBase, Size: gpio.DefaultSize},
		Channels: 2,
	},
	Console: Console{Baud: DefaultBaud},
	Log:     Log{Level: "info"},
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig
	v.SetDefault("bram.base", d.BRAM.Base)
	v.SetDefault("bram.size", d.BRAM.Size)
	v.SetDefault("gpio.base", d.GPIO.Base)
	v.SetDefault("gpio.size", d.GPIO.Size)
	v.SetDefault("gpio.channels", d.GPIO.Channels)
	v.SetDefault("console.device", d.Console.Device)
	v.SetDefault("console.baud", d.Console.Baud)
	v.SetDefault("metrics.listen", d.Metrics.Listen)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)
}

// Load reads the configuration from fs. An explicit path must exist; with
// an empty path a missing file leaves the defaults in place.
func Load(fs afero.Fs, path string) (*Config, error) {
	v := viper.New()
	v.SetFs(fs)
	v.SetConfigType("toml")
	setDefaults(v)
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(Name)
		for _, p := range SearchPaths {
			v.AddConfigPath(p)
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &nf) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	c := &Config{
		Console: Console{Device: v.GetString("console.device"), Baud: v.GetInt("console.baud")},
		Metrics: Metrics{Listen: v.GetString("metrics.listen")},
		Log:     Log{File: v.GetString("log.file"), Level: v.GetString("log.level")},
	}
	var err error
	for _, f := range []struct {
		key string
		dst *uint32
	}{
		{"bram.base", &c.BRAM.Base},
		{"bram.size", &c.BRAM.Size},
		{"gpio.base", &c.GPIO.Base},
		{"gpio.size", &c.GPIO.Size},
	} {
		if *f.dst, err = number(v, f.key); err != nil {
			return nil, err
		}
	}
	channels, err := number(v, "gpio.channels")
	if err != nil {
		return nil, err
	}
	c.GPIO.Channels = int(channels)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func number(v *viper.Viper, key string) (uint32, error) {
	n, err := strconv.ParseUint(fmt.Sprint(v.Get(key)), 0, 32)
	if err != nil {
		return 0, fmt.Errorf("config key %s: %w", key, err)
	}
	return uint32(n), nil
}

// Validate checks the window layout.
func (c *Config) Validate() error {
	if c.BRAM.Size == 0 || c.BRAM.Size%4 != 0 {
		return fmt.Errorf("bram.size %d is not a positive multiple of 4", c.BRAM.Size)
	}
	if c.BRAM.Base%4 != 0 {
		return fmt.Errorf("bram.base 0x%08X is not word aligned", c.BRAM.Base)
	}
	if c.GPIO.Size < 0x10 {
		return fmt.Errorf("gpio.size 0x%X is smaller than the register block", c.GPIO.Size)
	}
	if c.GPIO.Channels < 1 || c.GPIO.Channels > 2 {
		return fmt.Errorf("gpio.channels must be 1 or 2, got %d", c.GPIO.Channels)
	}
	if c.Console.Baud <= 0 {
		return fmt.Errorf("console.baud must be positive, got %d", c.Console.Baud)
	}
	return nil
}
