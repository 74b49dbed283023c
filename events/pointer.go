// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"cogentcore.org/glazier/events/key"
	"cogentcore.org/glazier/geom"
)

// PointerTypes is the kind of device that generated a pointer event.
type PointerTypes int32

const (
	PointerMouse PointerTypes = iota
	PointerPen
	PointerTouch
)

func (t PointerTypes) String() string {
	switch t {
	case PointerPen:
		return "Pen"
	case PointerTouch:
		return "Touch"
	}
	return "Mouse"
}

// MousePointerID is the pointer id used for events derived from the mouse.
const MousePointerID = 0

// PenInfo is the extra state reported by pens.
type PenInfo struct {
	// Pressure is the normalized pressure, in [0, 1].
	Pressure float64

	// TangentialPressure is the barrel pressure, in [-1, 1].
	TangentialPressure float64

	// Altitude and Azimuth are the inclination of the pen, in radians.
	Altitude, Azimuth float64

	// Twist is the clockwise rotation of the pen around its axis, in degrees.
	Twist uint16
}

// TouchInfo is the extra state reported by touch contacts.
type TouchInfo struct {
	Pressure        float64
	ContactGeometry geom.Size
}

// PointerEvent is a device-independent pointer event: every mouse event
// also produces a pointer event of type [PointerMouse], and pens and
// touch screens produce only pointer events.
type PointerEvent struct {
	PointerID   uint64
	IsPrimary   bool
	PointerType PointerTypes

	Pos        geom.Point
	Buttons    ButtonSet
	Mods       key.Modifiers
	Button     Buttons
	Count      uint8
	Focus      bool
	WheelDelta geom.Vec2

	// Pen is valid when PointerType is PointerPen.
	Pen PenInfo
	// Touch is valid when PointerType is PointerTouch.
	Touch TouchInfo
}

// PointerFromMouse returns the pointer event equivalent to a mouse event.
func PointerFromMouse(m *MouseEvent) *PointerEvent {
	return &PointerEvent{
		PointerID:   MousePointerID,
		IsPrimary:   true,
		PointerType: PointerMouse,
		Pos:         m.Pos,
		Buttons:     m.Buttons,
		Mods:        m.Mods,
		Button:      m.Button,
		Count:       m.Count,
		Focus:       m.Focus,
		WheelDelta:  m.WheelDelta,
	}
}

func (ev *PointerEvent) String() string {
	return fmt.Sprintf("Pointer{ID: %d, Type: %v, Pos: %v, Button: %v, Buttons: %v, Mods: %v}",
		ev.PointerID, ev.PointerType, ev.Pos, ev.Button, ev.Buttons, ev.Mods)
}
