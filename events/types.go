// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Types identifies the kind of a window event, one per window handler
// callback. It is used to trace dispatch and to tag recorded events.
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// Connect is the first event of every window.
	Connect

	// Size is a change of the window content size.
	Size

	// Scale is a change of the window scale factor.
	Scale

	// Position is a move of the window on screen.
	Position

	// PreparePaint comes right before Paint, so the handler can still
	// invalidate more of the window.
	PreparePaint

	// Paint asks the handler to paint the invalid region.
	Paint

	// Command is the selection of a menu item.
	Command

	// SaveAs and OpenFile report the result of a file dialog.
	SaveAs
	OpenFile

	KeyDown
	KeyUp

	// Zoom is a pinch or other zoom gesture.
	Zoom

	MouseWheel
	MouseMove
	MouseDown
	MouseUp
	MouseLeave

	PointerDown
	PointerUp
	PointerMove
	PointerLeave

	// Timer is the firing of a timer requested by the window.
	Timer

	GotFocus
	LostFocus

	// RequestClose is a request, usually from the user, to close the window.
	RequestClose

	// Destroy is the last event of every window.
	Destroy

	// Idle is the delivery of an idle token.
	Idle

	typesN
)

var typeNames = [...]string{
	UnknownType:  "UnknownType",
	Connect:      "Connect",
	Size:         "Size",
	Scale:        "Scale",
	Position:     "Position",
	PreparePaint: "PreparePaint",
	Paint:        "Paint",
	Command:      "Command",
	SaveAs:       "SaveAs",
	OpenFile:     "OpenFile",
	KeyDown:      "KeyDown",
	KeyUp:        "KeyUp",
	Zoom:         "Zoom",
	MouseWheel:   "MouseWheel",
	MouseMove:    "MouseMove",
	MouseDown:    "MouseDown",
	MouseUp:      "MouseUp",
	MouseLeave:   "MouseLeave",
	PointerDown:  "PointerDown",
	PointerUp:    "PointerUp",
	PointerMove:  "PointerMove",
	PointerLeave: "PointerLeave",
	Timer:        "Timer",
	GotFocus:     "GotFocus",
	LostFocus:    "LostFocus",
	RequestClose: "RequestClose",
	Destroy:      "Destroy",
	Idle:         "Idle",
}

func (t Types) String() string {
	if t < 0 || t >= typesN {
		return typeNames[UnknownType]
	}
	return typeNames[t]
}

// IsInput returns whether the type is a keyboard, mouse or pointer event.
func (t Types) IsInput() bool {
	return t >= KeyDown && t <= PointerLeave
}

// IsMouse returns whether the type is a mouse event.
func (t Types) IsMouse() bool {
	return t >= MouseWheel && t <= MouseLeave
}

// ToPointer returns the pointer event type corresponding to a mouse
// event type. Mouse wheel events have no pointer equivalent.
func (t Types) ToPointer() (Types, bool) {
	switch t {
	case MouseMove:
		return PointerMove, true
	case MouseDown:
		return PointerDown, true
	case MouseUp:
		return PointerUp, true
	case MouseLeave:
		return PointerLeave, true
	}
	return UnknownType, false
}
