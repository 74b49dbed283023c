// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

import (
	"runtime"
	"strings"
)

// Modifiers is a set of modifier keys held during an event.
type Modifiers uint32

const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
	ModMeta
	ModAltGraph
	ModCapsLock
	ModNumLock
)

// chordMods are the modifiers that take part in hot key matching,
// in the order they are written in a chord.
var chordMods = []struct {
	mod  Modifiers
	name string
}{
	{ModShift, "Shift"},
	{ModControl, "Control"},
	{ModAlt, "Alt"},
	{ModMeta, "Meta"},
}

// ChordMask is the set of modifiers compared by [HotKey.Matches].
const ChordMask = ModShift | ModControl | ModAlt | ModMeta

// Has returns whether all of the modifiers in m are set.
func (mods Modifiers) Has(m Modifiers) bool {
	return mods&m == m
}

// SetFlag sets or clears the modifiers in m.
func (mods *Modifiers) SetFlag(on bool, m Modifiers) {
	if on {
		*mods |= m
	} else {
		*mods &^= m
	}
}

func (mods Modifiers) String() string {
	var parts []string
	for _, cm := range chordMods {
		if mods.Has(cm.mod) {
			parts = append(parts, cm.name)
		}
	}
	if mods.Has(ModAltGraph) {
		parts = append(parts, "AltGraph")
	}
	if mods.Has(ModCapsLock) {
		parts = append(parts, "CapsLock")
	}
	if mods.Has(ModNumLock) {
		parts = append(parts, "NumLock")
	}
	return strings.Join(parts, "+")
}

// SysMods are platform-independent modifier combinations, where Cmd is
// Meta (the command key) on macOS and Control elsewhere.
type SysMods int32

const (
	SysNone SysMods = iota
	SysShift
	SysCmd
	SysAltCmd
	SysCmdShift
	SysAltCmdShift
)

// ToModifiers returns the concrete modifiers for the current platform.
func (s SysMods) ToModifiers() Modifiers {
	return s.modifiersFor(runtime.GOOS)
}

func (s SysMods) modifiersFor(goos string) Modifiers {
	cmd := ModControl
	if goos == "darwin" {
		cmd = ModMeta
	}
	switch s {
	case SysShift:
		return ModShift
	case SysCmd:
		return cmd
	case SysAltCmd:
		return ModAlt | cmd
	case SysCmdShift:
		return cmd | ModShift
	case SysAltCmdShift:
		return ModAlt | cmd | ModShift
	}
	return 0
}
