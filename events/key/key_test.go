// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runHotKeyRoundTrip(t *testing.T, s string) {
	t.Helper()
	hk, err := ParseHotKey(s)
	require.NoError(t, err, s)
	assert.Equal(t, s, hk.String())
}

func TestHotKeyParse(t *testing.T) {
	runHotKeyRoundTrip(t, "a")
	runHotKeyRoundTrip(t, "Control+a")
	runHotKeyRoundTrip(t, "Shift+Control+Enter")
	runHotKeyRoundTrip(t, "Alt+Meta+F5")
	runHotKeyRoundTrip(t, "Control++")

	hk, err := ParseHotKey("ctrl+SHIFT+z")
	require.NoError(t, err)
	assert.Equal(t, ModControl|ModShift, hk.Mods)
	assert.Equal(t, Character("z"), hk.Key)

	_, err = ParseHotKey("Hyper+x")
	assert.Error(t, err)
	_, err = ParseHotKey("")
	assert.Error(t, err)
	_, err = ParseHotKey("Control+")
	assert.Error(t, err)
}

func TestHotKeyMatches(t *testing.T) {
	save := NewHotKey(ModControl, Character("s"))
	assert.True(t, save.Matches(NewEvent(Down, CodeS, ModControl)))
	assert.True(t, save.Matches(NewEvent(Down, CodeS, ModControl|ModNumLock)), "lock modifiers are ignored")
	assert.False(t, save.Matches(NewEvent(Up, CodeS, ModControl)))
	assert.False(t, save.Matches(NewEvent(Down, CodeS, ModControl|ModShift)))
	assert.False(t, save.Matches(NewEvent(Down, CodeA, ModControl)))
	assert.False(t, save.Matches(nil))

	upper := NewHotKey(ModControl|ModShift, Character("s"))
	assert.True(t, upper.Matches(NewEvent(Down, CodeS, ModControl|ModShift)))

	esc := NewHotKey(0, Named(Escape))
	assert.True(t, esc.Matches(NewEvent(Down, CodeEscape, 0)))
}

func TestNewEvent(t *testing.T) {
	ev := NewEvent(Down, CodeA, ModShift)
	assert.Equal(t, Character("A"), ev.Key)
	assert.True(t, ev.Key.IsCharacter())

	ev = NewEvent(Up, CodeShiftRight, 0)
	assert.Equal(t, Named(Shift), ev.Key)
	assert.Equal(t, LocationRight, ev.Location)
	assert.True(t, ev.Code.IsModifier())

	assert.Equal(t, Named(F7), NewEvent(Down, CodeF7, 0).Key)
	assert.Equal(t, Named(Enter), NewEvent(Down, CodeNumpadEnter, 0).Key)
	assert.Equal(t, LocationNumpad, NewEvent(Down, CodeNumpadEnter, 0).Location)
	assert.Equal(t, "KeyQ", CodeQ.String())
	assert.Equal(t, "Unidentified", Codes(-3).String())
}

func TestSysMods(t *testing.T) {
	assert.Equal(t, ModMeta|ModShift, SysCmdShift.modifiersFor("darwin"))
	assert.Equal(t, ModControl|ModShift, SysCmdShift.modifiersFor("linux"))
	assert.Equal(t, ModAlt|ModControl, SysAltCmd.modifiersFor("windows"))
	assert.Equal(t, Modifiers(0), SysNone.modifiersFor("linux"))

	var m Modifiers
	m.SetFlag(true, ModAlt|ModShift)
	m.SetFlag(false, ModShift)
	assert.Equal(t, "Alt", m.String())
}
