// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.True(t, c.QuitOnLastWindowClosed)
	assert.Empty(t, c.Backend)
	assert.NoError(t, c.Validate())
	assert.Equal(t, 16*time.Millisecond, c.FrameInterval(16*time.Millisecond))
	c.FrameRate = 50
	assert.Equal(t, 20*time.Millisecond, c.FrameInterval(16*time.Millisecond))
}

func TestValidate(t *testing.T) {
	c := Default()
	c.ScaleOverride = -1
	assert.Error(t, c.Validate())
	c = Default()
	c.FrameRate = -3
	assert.Error(t, c.Validate())
	c = Default()
	c.LogLevel = "loud"
	assert.Error(t, c.Validate())
	for _, v := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		c = Default()
		c.ScaleOverride = v
		assert.Error(t, c.Validate(), "scale_override %g", v)
		c = Default()
		c.FrameRate = v
		assert.Error(t, c.Validate(), "frame_rate %g", v)
	}
}

func TestLoadTOML(t *testing.T) {
	t.Setenv(EnvOverrideScale, "")
	t.Setenv(EnvBackend, "")
	t.Setenv(EnvLogLevel, "")
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("backend = \"offscreen\"\nframe_rate = 30\n"), 0o644))
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "offscreen", c.Backend)
	assert.Equal(t, 30.0, c.FrameRate)
	assert.True(t, c.QuitOnLastWindowClosed, "absent keys keep their defaults")
}

func TestLoadYAML(t *testing.T) {
	t.Setenv(EnvOverrideScale, "")
	t.Setenv(EnvBackend, "")
	t.Setenv(EnvLogLevel, "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("quit_on_last_window_closed: false\nlocale: fr-FR\n"), 0o644))
	c, err := Load(path)
	require.NoError(t, err)
	assert.False(t, c.QuitOnLastWindowClosed)
	assert.Equal(t, "fr-FR", c.Locale)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	c, err := Load(filepath.Join(dir, "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default().QuitOnLastWindowClosed, c.QuitOnLastWindowClosed)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("unknown_key = 1\n"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)

	ini := filepath.Join(dir, "config.ini")
	require.NoError(t, os.WriteFile(ini, []byte("x"), 0o644))
	_, err = Load(ini)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv(EnvOverrideScale, "")
	t.Setenv(EnvBackend, "")
	t.Setenv(EnvLogLevel, "")
	for _, name := range []string{"c.toml", "c.yml"} {
		path := filepath.Join(t.TempDir(), name)
		c := Default()
		c.Backend = "x11"
		c.ScaleOverride = 1.25
		require.NoError(t, c.Save(path))
		got, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, c, got, name)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvOverrideScale, "2.5")
	t.Setenv(EnvBackend, "offscreen")
	t.Setenv(EnvLogLevel, "DEBUG")
	c := Default()
	require.NoError(t, c.ApplyEnv())
	assert.Equal(t, 2.5, c.ScaleOverride)
	assert.Equal(t, "offscreen", c.Backend)
	assert.Equal(t, "debug", c.LogLevel)

	t.Setenv(EnvOverrideScale, "-1")
	assert.Error(t, Default().ApplyEnv())
	t.Setenv(EnvOverrideScale, "abc")
	assert.Error(t, Default().ApplyEnv())
	for _, v := range []string{"Inf", "+Inf", "-Inf", "NaN"} {
		t.Setenv(EnvOverrideScale, v)
		c := Default()
		assert.Error(t, c.ApplyEnv(), v)
		assert.Zero(t, c.ScaleOverride, v)
	}
}

func TestDefaultPath(t *testing.T) {
	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "config.toml", filepath.Base(p))
	assert.Equal(t, "glazier", filepath.Base(filepath.Dir(p)))
}

func TestWatch(t *testing.T) {
	t.Setenv(EnvOverrideScale, "")
	t.Setenv(EnvBackend, "")
	t.Setenv(EnvLogLevel, "")
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("frame_rate = 10\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	got := make(chan *Config, 8)
	require.NoError(t, Watch(ctx, path, func(c *Config) { got <- c }))

	require.NoError(t, os.WriteFile(path, []byte("frame_rate = 20\n"), 0o644))
	for {
		select {
		case c := <-got:
			if c.FrameRate == 20 {
				return
			}
		case <-time.After(5 * time.Second):
			t.Fatal("no reload after write")
		}
	}
}
