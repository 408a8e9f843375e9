// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c, err := Load(afero.NewMemMapFs(), "")
	require.NoError(t, err)
	assert.Equal(t, *DefaultConfig, *c)
	assert.Equal(t, uint32(0x80000000), c.BRAM.Base)
	assert.Equal(t, uint32(8192), c.BRAM.Size)
	assert.Equal(t, uint32(0xA0000000), c.GPIO.Base)
}

func TestSearchPath(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/kv260.toml", []byte(`
[bram]
base = "0x40000000"
size = 4096

[console]
device = "/dev/ttyPS1"
`), 0644))
	c, err := Load(fs, "")
	require.NoError(t, err)
	assert.Equal(t, uint32(0x40000000), c.BRAM.Base)
	assert.Equal(t, uint32(4096), c.BRAM.Size)
	assert.Equal(t, "/dev/ttyPS1", c.Console.Device)
	assert.Equal(t, DefaultBaud, c.Console.Baud)
	assert.Equal(t, DefaultConfig.GPIO, c.GPIO)
}

func TestExplicitPath(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/srv/bench.toml", []byte(`
[gpio]
channels = 1

[metrics]
listen = ":9100"
`), 0644))
	c, err := Load(fs, "/srv/bench.toml")
	require.NoError(t, err)
	assert.Equal(t, 1, c.GPIO.Channels)
	assert.Equal(t, ":9100", c.Metrics.Listen)
}

func TestExplicitPathMissing(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), "/srv/missing.toml")
	assert.Error(t, err)
}

func TestInvalid(t *testing.T) {
	for _, body := range []string{
		"[bram]\nsize = 6\n",
		"[bram]\nbase = \"nowhere\"\n",
		"[gpio]\nchannels = 3\n",
	} {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/etc/kv260.toml", []byte(body), 0644))
		_, err := Load(fs, "")
		assert.Error(t, err, body)
	}
}
