// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

import (
	"fmt"
	"strings"
)

// HotKey is a key combination used as a menu accelerator or shortcut.
type HotKey struct {
	Mods Modifiers
	Key  Key
}

// NewHotKey returns the hot key for the given modifiers and key.
func NewHotKey(mods Modifiers, k Key) HotKey {
	return HotKey{Mods: mods & ChordMask, Key: k}
}

// SysHotKey returns the hot key for the given platform-independent
// modifiers and key.
func SysHotKey(mods SysMods, k Key) HotKey {
	return NewHotKey(mods.ToModifiers(), k)
}

// Matches returns whether ev is a press of this hot key. Character keys
// compare case-insensitively, since the shift state is part of Mods.
func (h HotKey) Matches(ev *Event) bool {
	if ev == nil || ev.State != Down || ev.Mods&ChordMask != h.Mods {
		return false
	}
	if h.Key.Name != NoName {
		return ev.Key.Name == h.Key.Name
	}
	return ev.Key.Name == NoName && strings.EqualFold(ev.Key.Chars, h.Key.Chars)
}

// String returns the chord form of the hot key, such as "Control+Shift+s".
func (h HotKey) String() string {
	mods := h.Mods.String()
	if mods == "" {
		return h.Key.String()
	}
	return mods + "+" + h.Key.String()
}

// ParseHotKey parses the chord form returned by [HotKey.String].
// Modifier names are case-insensitive; "Cmd" and "Command" map to the
// platform command modifier.
func ParseHotKey(s string) (HotKey, error) {
	if s == "" {
		return HotKey{}, fmt.Errorf("key.ParseHotKey: empty hot key")
	}
	parts := strings.Split(s, "+")
	// a trailing "+" means the plus key itself
	if strings.HasSuffix(s, "++") || s == "+" {
		parts = append(parts[:len(parts)-2], "+")
	}
	var mods Modifiers
	for _, p := range parts[:len(parts)-1] {
		m, ok := parseMod(p)
		if !ok {
			return HotKey{}, fmt.Errorf("key.ParseHotKey: unknown modifier %q in %q", p, s)
		}
		mods |= m
	}
	last := parts[len(parts)-1]
	if last == "" {
		return HotKey{}, fmt.Errorf("key.ParseHotKey: missing key in %q", s)
	}
	k := Character(last)
	if n, ok := NameFromString(last); ok && len(last) > 1 {
		k = Named(n)
	}
	return NewHotKey(mods, k), nil
}

func parseMod(s string) (Modifiers, bool) {
	switch strings.ToLower(s) {
	case "shift":
		return ModShift, true
	case "control", "ctrl":
		return ModControl, true
	case "alt", "option":
		return ModAlt, true
	case "meta", "super":
		return ModMeta, true
	case "cmd", "command":
		return SysCmd.ToModifiers(), true
	}
	return 0, false
}
