// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package x11

import (
	"testing"
	"time"

	"cogentcore.org/glazier/events"
	"cogentcore.org/glazier/events/key"
	"cogentcore.org/glazier/geom"
	"cogentcore.org/glazier/system"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/stretchr/testify/assert"
)

func TestKeyCode(t *testing.T) {
	assert.Equal(t, key.CodeA, keyCode(38))
	assert.Equal(t, key.CodeEscape, keyCode(9))
	assert.Equal(t, key.CodeEnter, keyCode(36))
	assert.Equal(t, key.CodeArrowUp, keyCode(111))
	assert.Equal(t, key.CodeMetaLeft, keyCode(133))
	assert.Equal(t, key.CodeUnknown, keyCode(3))
	assert.Equal(t, key.CodeUnknown, keyCode(255))
}

func TestKeyMods(t *testing.T) {
	m := keyMods(xproto.ModMaskShift | xproto.ModMaskControl | xproto.ModMask2)
	assert.Equal(t, key.ModShift|key.ModControl|key.ModNumLock, m)
	assert.Equal(t, key.ModAlt|key.ModMeta, keyMods(xproto.ModMask1|xproto.ModMask4))
	assert.Zero(t, keyMods(0))
}

func TestKeyEvent(t *testing.T) {
	ev := keyEvent(key.Down, 38, xproto.ModMaskShift, "A")
	assert.Equal(t, key.CodeA, ev.Code)
	assert.Equal(t, key.Character("A"), ev.Key)
	assert.Equal(t, key.ModShift, ev.Mods)

	// a layout other than US gives a different character for the same code
	ev = keyEvent(key.Down, 24, 0, "a")
	assert.Equal(t, key.CodeQ, ev.Code)
	assert.Equal(t, key.Character("a"), ev.Key)

	ev = keyEvent(key.Down, 65, 0, "space")
	assert.Equal(t, key.Character(" "), ev.Key)

	ev = keyEvent(key.Up, 36, 0, "Return")
	assert.Equal(t, key.Named(key.Enter), ev.Key)
	assert.Equal(t, key.Up, ev.State)
}

func TestButton(t *testing.T) {
	b, d := button(1)
	assert.Equal(t, events.Left, b)
	assert.Zero(t, d)
	b, _ = button(3)
	assert.Equal(t, events.Right, b)
	b, d = button(5)
	assert.Equal(t, events.NoButton, b)
	assert.Equal(t, geom.V(0, wheelStep), d)
	_, d = button(6)
	assert.Equal(t, geom.V(-wheelStep, 0), d)
	b, _ = button(9)
	assert.Equal(t, events.X2, b)

	s := buttonSet(xproto.KeyButMaskButton1 | xproto.KeyButMaskButton3)
	assert.True(t, s.Has(events.Left))
	assert.True(t, s.Has(events.Right))
	assert.False(t, s.Has(events.Middle))
}

func TestScreenScale(t *testing.T) {
	res := "Xcursor.size:\t24\nXft.dpi:\t144\nXft.antialias:\t1\n"
	assert.Equal(t, 144.0, xftDPI(res))
	assert.Equal(t, geom.UniformScale(1.5), screenScale(res, 1920, 508))
	assert.Zero(t, xftDPI("Xft.dpi: bogus"))
	assert.Zero(t, xftDPI(""))

	// 3840 px across 508 mm is 192 dpi
	assert.Equal(t, geom.UniformScale(2), screenScale("", 3840, 508))
	assert.Equal(t, geom.DefaultScale, screenScale("", 1920, 508))
	assert.Equal(t, geom.DefaultScale, screenScale("", 1920, 0))
}

func TestValidate(t *testing.T) {
	d := New()
	opts := system.DefaultWindowOptions()
	assert.NoError(t, d.Validate(&opts))

	opts.Transparent = true
	err := d.Validate(&opts)
	var ce *system.ConfigError
	if assert.ErrorAs(t, err, &ce) {
		assert.Equal(t, "Transparent", ce.Option)
	}

	opts = system.DefaultWindowOptions()
	opts.Menu = system.NewMenu()
	assert.Error(t, d.Validate(&opts))
}

func TestWaitEventsWake(t *testing.T) {
	d := New()
	d.Wake()
	start := time.Now()
	d.WaitEvents(-1)
	assert.Less(t, time.Since(start), time.Second)

	start = time.Now()
	d.WaitEvents(10 * time.Millisecond)
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}

func TestSetScaleOverride(t *testing.T) {
	d := New()
	d.display = geom.UniformScale(1.25)
	d.scale = d.windowScale()
	assert.Equal(t, geom.UniformScale(1.25), d.scale)

	d.SetScaleOverride(2)
	assert.Equal(t, geom.UniformScale(2), d.scale)
	d.SetScaleOverride(-1)
	assert.Equal(t, geom.UniformScale(1.25), d.scale)
}
