// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build cgo && !(android || ios || js)

package desktop

import (
	"math"
	"sync"
	"testing"

	"cogentcore.org/glazier/events"
	"cogentcore.org/glazier/events/key"
	"cogentcore.org/glazier/geom"
	"cogentcore.org/glazier/system"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestGlfwKeyCode(t *testing.T) {
	assert.Equal(t, key.CodeA, glfwKeyCode(glfw.KeyA))
	assert.Equal(t, key.Code0, glfwKeyCode(glfw.Key0))
	assert.Equal(t, key.CodeQuote, glfwKeyCode(glfw.KeyApostrophe))
	assert.Equal(t, key.CodeNumpadEnter, glfwKeyCode(glfw.KeyKPEnter))
	assert.Equal(t, key.CodeMetaRight, glfwKeyCode(glfw.KeyRightSuper))
	assert.Equal(t, key.CodeUnknown, glfwKeyCode(glfw.KeyPrintScreen))
}

func TestGlfwMods(t *testing.T) {
	assert.Equal(t, key.ModShift|key.ModMeta, glfwMods(glfw.ModShift|glfw.ModSuper))
	assert.Equal(t, key.ModControl|key.ModAlt|key.ModCapsLock, glfwMods(glfw.ModControl|glfw.ModAlt|glfw.ModCapsLock))
	assert.Zero(t, glfwMods(0))
}

func TestNewKeyEvent(t *testing.T) {
	ev := newKeyEvent(key.Down, key.CodeQ, 0, "a")
	assert.Equal(t, key.Character("a"), ev.Key, "layout text wins over the US mapping")

	ev = newKeyEvent(key.Down, key.CodeA, key.ModShift, "a")
	assert.Equal(t, key.Character("A"), ev.Key)

	ev = newKeyEvent(key.Down, key.CodeA, key.ModShift|key.ModCapsLock, "a")
	assert.Equal(t, key.Character("a"), ev.Key)

	ev = newKeyEvent(key.Up, key.CodeEnter, 0, "")
	assert.Equal(t, key.Named(key.Enter), ev.Key)
	assert.Equal(t, key.Up, ev.State)
}

func TestGlfwButton(t *testing.T) {
	assert.Equal(t, events.Left, glfwButton(glfw.MouseButtonLeft))
	assert.Equal(t, events.Right, glfwButton(glfw.MouseButtonRight))
	assert.Equal(t, events.X1, glfwButton(glfw.MouseButton4))
	assert.Equal(t, events.NoButton, glfwButton(glfw.MouseButton8))
}

func TestScale(t *testing.T) {
	assert.Equal(t, geom.V(0, 40), scrollDelta(0, -1))
	assert.Equal(t, geom.V(-80, 0), scrollDelta(2, 0))

	assert.Equal(t, geom.UniformScale(2), monitorScale(2, 2))
	assert.Equal(t, geom.DefaultScale, monitorScale(float32(math.NaN()), 0.5))

	assert.Equal(t, geom.DefaultScale, coordScale("darwin", geom.UniformScale(2)))
	assert.Equal(t, geom.UniformScale(2), coordScale("windows", geom.UniformScale(2)))
}

func TestValidate(t *testing.T) {
	d := New()
	opts := system.DefaultWindowOptions()
	assert.NoError(t, d.Validate(&opts))
	opts.AlwaysOnTop = true
	assert.NoError(t, d.Validate(&opts))

	opts.Menu = system.NewMenu()
	assert.Error(t, d.Validate(&opts))

	for _, level := range []system.WindowLevels{system.LevelTooltip, system.LevelDropDown, system.LevelModal} {
		opts = system.DefaultWindowOptions()
		opts.Level = level
		err := d.Validate(&opts)
		var ce *system.ConfigError
		if assert.ErrorAs(t, err, &ce, "level %v", level) {
			assert.Equal(t, "Level", ce.Option)
		}
	}
}

func TestWakeOutsideInit(t *testing.T) {
	d := New()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NotPanics(t, d.Wake)
		}()
	}
	wg.Wait()
	assert.False(t, d.alive)
}
