// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Cursors are the standard mouse cursor shapes a window can show.
type Cursors int32

const (
	CursorArrow Cursors = iota
	CursorIBeam
	CursorPointer
	CursorCrosshair
	CursorNotAllowed
	CursorResizeLeftRight
	CursorResizeUpDown
	CursorHidden
)

var cursorNames = [...]string{
	CursorArrow:           "Arrow",
	CursorIBeam:           "IBeam",
	CursorPointer:         "Pointer",
	CursorCrosshair:       "Crosshair",
	CursorNotAllowed:      "NotAllowed",
	CursorResizeLeftRight: "ResizeLeftRight",
	CursorResizeUpDown:    "ResizeUpDown",
	CursorHidden:          "Hidden",
}

func (c Cursors) String() string {
	if c < 0 || int(c) >= len(cursorNames) {
		return "Unknown"
	}
	return cursorNames[c]
}
