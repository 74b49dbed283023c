// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"log/slog"

	"cogentcore.org/glazier/events"
	"cogentcore.org/glazier/events/key"
	"cogentcore.org/glazier/geom"
	"cogentcore.org/glazier/text"
)

// windowSink translates the native events of one window into handler
// callbacks. Events for closed windows, and all events once the
// application is quitting, are dropped.
type windowSink struct {
	w *Window
}

var _ Sink = windowSink{}

func (s windowSink) live() bool {
	return s.w.isLive() && !s.w.app.quitting()
}

func (s windowSink) Resized(size geom.Size) {
	if !s.live() {
		return
	}
	s.w.setSize(size)
}

func (s windowSink) ScaleChanged(scale geom.Scale) {
	if !s.live() {
		return
	}
	s.w.setScale(nativeScale(scale))
}

func (s windowSink) Moved(pos geom.Point) {
	w := s.w
	if !s.live() || pos == w.pos {
		return
	}
	w.pos = pos
	w.handler.Position(pos)
}

func (s windowSink) Exposed(r geom.Rect) {
	if !s.live() {
		return
	}
	s.w.invalid.AddRect(r.Intersect(s.w.size.ToRect()))
}

func (s windowSink) Focused(focused bool) {
	w := s.w
	if !s.live() || focused == w.focused {
		return
	}
	w.focused = focused
	if focused {
		w.handler.GotFocus()
	} else {
		w.handler.LostFocus()
	}
}

func (s windowSink) Mouse(t events.Types, ev *events.MouseEvent) {
	if !s.live() {
		return
	}
	h := s.w.handler
	switch t {
	case events.MouseDown:
		h.MouseDown(ev)
	case events.MouseUp:
		h.MouseUp(ev)
	case events.MouseMove:
		h.MouseMove(ev)
	case events.MouseWheel:
		h.MouseWheel(ev)
	case events.MouseLeave:
		h.MouseLeave()
	default:
		slog.Error("system: unexpected mouse event type", "type", t)
		return
	}
	pt, ok := t.ToPointer()
	if !ok || !s.live() {
		return
	}
	var pev *events.PointerEvent
	if ev != nil {
		pev = events.PointerFromMouse(ev)
	}
	s.pointer(pt, pev)
}

func (s windowSink) Pointer(t events.Types, ev *events.PointerEvent) {
	if !s.live() {
		return
	}
	s.pointer(t, ev)
}

func (s windowSink) pointer(t events.Types, ev *events.PointerEvent) {
	h := s.w.handler
	switch t {
	case events.PointerDown:
		h.PointerDown(ev)
	case events.PointerUp:
		h.PointerUp(ev)
	case events.PointerMove:
		h.PointerMove(ev)
	case events.PointerLeave:
		h.PointerLeave()
	default:
		slog.Error("system: unexpected pointer event type", "type", t)
	}
}

// Key dispatches a key event. A press the handler does not handle is
// matched against the menu hot keys and then typed into the focused
// text field, if any.
func (s windowSink) Key(ev *key.Event) {
	if !s.live() {
		return
	}
	w := s.w
	if ev.State == key.Up {
		w.handler.KeyUp(ev)
		return
	}
	if w.handler.KeyDown(ev) || !s.live() {
		return
	}
	if id, ok := w.menu.MatchHotKey(ev); ok {
		w.handler.Command(id)
		return
	}
	tok := w.text.focused
	if tok == 0 || !w.text.fields[tok] {
		return
	}
	ih := w.handler.AcquireInputLock(tok, true)
	if ih == nil {
		return
	}
	text.Simulate(ih, ev)
	w.handler.ReleaseInputLock(tok)
}

func (s windowSink) Command(id uint32) {
	if s.live() {
		s.w.handler.Command(id)
	}
}

func (s windowSink) Zoomed(delta float64) {
	if s.live() {
		s.w.handler.Zoom(delta)
	}
}

func (s windowSink) CloseRequested() {
	if s.live() {
		s.w.handler.RequestClose()
	}
}

func (s windowSink) Destroyed() {
	w := s.w
	switch w.state {
	case windowLive:
		w.nativeGone = true
		w.state = windowClosing
		w.app.destroys = append(w.app.destroys, w)
	case windowClosing:
		w.nativeGone = true
	}
}

func (s windowSink) FileDialogDone(tok FileDialogToken, save bool, info *FileInfo) {
	if !s.live() {
		return
	}
	if save {
		s.w.handler.SaveAs(tok, info)
	} else {
		s.w.handler.OpenFile(tok, info)
	}
}
