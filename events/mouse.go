// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"strings"

	"cogentcore.org/glazier/events/key"
	"cogentcore.org/glazier/geom"
)

// Buttons is a mouse or pointer button.
type Buttons int32

const (
	NoButton Buttons = iota
	Left
	Right
	Middle
	X1
	X2
)

var buttonNames = [...]string{"None", "Left", "Right", "Middle", "X1", "X2"}

func (b Buttons) String() string {
	if b < 0 || int(b) >= len(buttonNames) {
		return "Unknown"
	}
	return buttonNames[b]
}

// ButtonSet is the set of buttons held down at the time of an event.
type ButtonSet uint8

// With returns the set with b added.
func (s ButtonSet) With(b Buttons) ButtonSet {
	if b == NoButton {
		return s
	}
	return s | 1<<uint(b)
}

// Without returns the set with b removed.
func (s ButtonSet) Without(b Buttons) ButtonSet {
	if b == NoButton {
		return s
	}
	return s &^ (1 << uint(b))
}

// Has returns whether b is in the set.
func (s ButtonSet) Has(b Buttons) bool {
	return b != NoButton && s&(1<<uint(b)) != 0
}

// IsEmpty returns whether no buttons are held.
func (s ButtonSet) IsEmpty() bool {
	return s == 0
}

func (s ButtonSet) String() string {
	var parts []string
	for b := Left; b <= X2; b++ {
		if s.Has(b) {
			parts = append(parts, b.String())
		}
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// MouseEvent is a mouse event: a button press or release, a move or a
// wheel scroll.
type MouseEvent struct {

	// Pos is the position of the mouse in the window, in dp.
	Pos geom.Point

	// Buttons are the buttons held down after the event.
	Buttons ButtonSet

	// Mods are the keyboard modifiers held during the event.
	Mods key.Modifiers

	// Count is the click count of a press: 1 for a single click,
	// 2 for a double click and so on. It is 0 for other events.
	Count uint8

	// Focus is set when the press also focused the window.
	Focus bool

	// Button is the button that changed for a press or release.
	Button Buttons

	// WheelDelta is the scroll amount for wheel events, in dp.
	WheelDelta geom.Vec2
}

func (ev *MouseEvent) String() string {
	return fmt.Sprintf("Mouse{Pos: %v, Button: %v, Buttons: %v, Mods: %v, Count: %d, Wheel: %v}",
		ev.Pos, ev.Button, ev.Buttons, ev.Mods, ev.Count, ev.WheelDelta)
}
