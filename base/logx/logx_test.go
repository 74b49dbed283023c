// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestLevelFromString(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromString("debug"))
	assert.Equal(t, slog.LevelError, LevelFromString("Error"))
	assert.Equal(t, UserLevel, LevelFromString(""))
	assert.Equal(t, UserLevel, LevelFromString("chatty"))
}

func TestHandler(t *testing.T) {
	prev := UserLevel
	UserLevel = slog.LevelInfo
	defer func() { UserLevel = prev }()

	var buf bytes.Buffer
	lg := slog.New(NewHandler(&buf))
	lg.Debug("hidden")
	lg.Info("shown", "window", 3)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "level=INFO")
	assert.Contains(t, buf.String(), "window=3")
}
