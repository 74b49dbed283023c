// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the process-wide settings of a glazier
// application: which backend to use, the display scale override, the
// quit policy and the paint frame rate. Settings come from defaults, an
// optional TOML or YAML file and environment variables, in that order.
package config

import (
	"fmt"
	"math"
	"time"
)

// Environment variables read by [Config.ApplyEnv].
const (
	// EnvOverrideScale forces the display scale factor on backends that
	// query it programmatically. It is intended for debugging HiDPI
	// issues without changing system settings.
	EnvOverrideScale = "GLAZIER_OVERRIDE_SCALE"

	// EnvBackend selects the backend by name.
	EnvBackend = "GLAZIER_BACKEND"

	// EnvLogLevel sets the log level by name.
	EnvLogLevel = "GLAZIER_LOG_LEVEL"
)

// Config is the main config struct that contains all of the
// configuration options for a glazier application.
type Config struct {

	// Backend is the name of the registered driver to use, such as
	// "desktop", "x11" or "offscreen". If it is empty, the preferred
	// registered driver is used.
	Backend string `toml:"backend" yaml:"backend"`

	// ScaleOverride, if positive, replaces the scale factor of the
	// display on backends that support it (x11 and offscreen). Native
	// window sizes then follow the override too.
	ScaleOverride float64 `toml:"scale_override" yaml:"scale_override"`

	// QuitOnLastWindowClosed makes the run loop return when the last
	// window is destroyed.
	QuitOnLastWindowClosed bool `toml:"quit_on_last_window_closed" yaml:"quit_on_last_window_closed"`

	// FrameRate is the maximum number of paints per second for each
	// window. Zero means to follow the refresh rate of the driver.
	FrameRate float64 `toml:"frame_rate" yaml:"frame_rate"`

	// Locale overrides the locale reported by the platform, as a BCP 47
	// tag such as "en-US".
	Locale string `toml:"locale" yaml:"locale"`

	// LogLevel is the name of the minimum level to log: debug, info,
	// warn or error. If it is empty, the build default is used.
	LogLevel string `toml:"log_level" yaml:"log_level"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		QuitOnLastWindowClosed: true,
	}
}

func validNonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}

// Validate returns an error if any setting is out of range.
func (c *Config) Validate() error {
	if !validNonNegative(c.ScaleOverride) {
		return fmt.Errorf("config: scale_override must be a finite non-negative number, got %g", c.ScaleOverride)
	}
	if !validNonNegative(c.FrameRate) {
		return fmt.Errorf("config: frame_rate must be a finite non-negative number, got %g", c.FrameRate)
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log_level %q", c.LogLevel)
	}
	return nil
}

// FrameInterval returns the minimum time between paints of a window,
// or fallback if no frame rate is set.
func (c *Config) FrameInterval(fallback time.Duration) time.Duration {
	if c.FrameRate <= 0 {
		return fallback
	}
	return time.Duration(float64(time.Second) / c.FrameRate)
}

// Clone returns a copy of the config.
func (c *Config) Clone() *Config {
	cc := *c
	return &cc
}
