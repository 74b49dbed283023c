// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key defines keyboard events: physical key codes, logical keys,
// modifier sets and hot keys.
package key

import (
	"fmt"
	"strings"
)

// Names are the logical keys that do not produce text.
type Names int32

const (
	// NoName means the key is a character key; see [Key.Chars].
	NoName Names = iota
	Unidentified
	Enter
	Tab
	Backspace
	Escape
	Delete
	Insert
	Home
	End
	PageUp
	PageDown
	ArrowUp
	ArrowDown
	ArrowLeft
	ArrowRight
	Shift
	Control
	Alt
	Meta
	CapsLock
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12

	namesN
)

var nameStrings = [...]string{
	NoName:       "",
	Unidentified: "Unidentified",
	Enter:        "Enter",
	Tab:          "Tab",
	Backspace:    "Backspace",
	Escape:       "Escape",
	Delete:       "Delete",
	Insert:       "Insert",
	Home:         "Home",
	End:          "End",
	PageUp:       "PageUp",
	PageDown:     "PageDown",
	ArrowUp:      "ArrowUp",
	ArrowDown:    "ArrowDown",
	ArrowLeft:    "ArrowLeft",
	ArrowRight:   "ArrowRight",
	Shift:        "Shift",
	Control:      "Control",
	Alt:          "Alt",
	Meta:         "Meta",
	CapsLock:     "CapsLock",
	F1:           "F1",
	F2:           "F2",
	F3:           "F3",
	F4:           "F4",
	F5:           "F5",
	F6:           "F6",
	F7:           "F7",
	F8:           "F8",
	F9:           "F9",
	F10:          "F10",
	F11:          "F11",
	F12:          "F12",
}

func (n Names) String() string {
	if n < 0 || n >= namesN {
		return nameStrings[Unidentified]
	}
	return nameStrings[n]
}

// NameFromString returns the named key with the given name.
func NameFromString(s string) (Names, bool) {
	for i, ns := range nameStrings {
		if ns != "" && strings.EqualFold(ns, s) {
			return Names(i), true
		}
	}
	return NoName, false
}

// Key is the logical meaning of a key press: either a named key or
// the text it produces under the active layout and modifiers.
type Key struct {
	Name  Names
	Chars string
}

// Character returns the key producing the given text.
func Character(s string) Key {
	return Key{Chars: s}
}

// Named returns the named key n.
func Named(n Names) Key {
	return Key{Name: n}
}

// IsCharacter returns whether the key produces text.
func (k Key) IsCharacter() bool {
	return k.Name == NoName && k.Chars != ""
}

func (k Key) String() string {
	if k.Name != NoName {
		return k.Name.String()
	}
	return k.Chars
}

// States is whether a key event is a press or a release.
type States int32

const (
	Down States = iota
	Up
)

func (s States) String() string {
	if s == Up {
		return "Up"
	}
	return "Down"
}

// Locations distinguish keys that appear more than once on a keyboard.
type Locations int32

const (
	LocationStandard Locations = iota
	LocationLeft
	LocationRight
	LocationNumpad
)

// Event is a keyboard event delivered to a window handler.
type Event struct {

	// State is whether the key was pressed or released.
	State States

	// Key is the logical key.
	Key Key

	// Code is the physical key.
	Code Codes

	// Location is where the key is on the keyboard.
	Location Locations

	// Mods are the modifiers held when the event occurred.
	Mods Modifiers

	// Repeat is set for auto-repeat presses.
	Repeat bool

	// IsComposing is set while an input method composition is in progress.
	IsComposing bool
}

// NewEvent returns a key event for the given physical code, filling in
// the logical key from [CodeRune] when the code produces a character.
func NewEvent(state States, code Codes, mods Modifiers) *Event {
	ev := &Event{State: state, Code: code, Location: code.Location(), Mods: mods}
	switch r := CodeRune(code); {
	case r != 0:
		s := string(r)
		if mods.Has(ModShift) {
			s = strings.ToUpper(s)
		}
		ev.Key = Character(s)
	default:
		ev.Key = Named(codeToName(code))
	}
	return ev
}

func (ev *Event) String() string {
	return fmt.Sprintf("Key%v{Key: %q, Code: %v, Mods: %v, Repeat: %v}", ev.State, ev.Key.String(), ev.Code, ev.Mods, ev.Repeat)
}

func codeToName(c Codes) Names {
	switch {
	case c >= CodeF1 && c <= CodeF12:
		return F1 + Names(c-CodeF1)
	}
	switch c {
	case CodeEnter, CodeNumpadEnter:
		return Enter
	case CodeTab:
		return Tab
	case CodeBackspace:
		return Backspace
	case CodeEscape:
		return Escape
	case CodeDelete:
		return Delete
	case CodeInsert:
		return Insert
	case CodeHome:
		return Home
	case CodeEnd:
		return End
	case CodePageUp:
		return PageUp
	case CodePageDown:
		return PageDown
	case CodeArrowUp:
		return ArrowUp
	case CodeArrowDown:
		return ArrowDown
	case CodeArrowLeft:
		return ArrowLeft
	case CodeArrowRight:
		return ArrowRight
	case CodeShiftLeft, CodeShiftRight:
		return Shift
	case CodeControlLeft, CodeControlRight:
		return Control
	case CodeAltLeft, CodeAltRight:
		return Alt
	case CodeMetaLeft, CodeMetaRight:
		return Meta
	case CodeCapsLock:
		return CapsLock
	}
	return Unidentified
}
