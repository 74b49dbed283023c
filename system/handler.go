// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"cogentcore.org/glazier/events"
	"cogentcore.org/glazier/events/key"
	"cogentcore.org/glazier/geom"
	"cogentcore.org/glazier/text"
)

// WinHandler receives the events of one window. Every method is called
// on the UI thread, never concurrently with another callback of any
// window. The order guarantees are:
//
//   - Connect comes before any other callback of the window.
//   - Size comes before the first Paint after a resize, and Scale comes
//     before Size when both result from the same native event.
//   - Input callbacks follow the native event order.
//   - Destroy is the last callback of the window.
//
// Handlers may call back into the [Window] and [App] from a callback;
// such calls never run a nested event loop.
// Embed [HandlerBase] to get no-op defaults.
type WinHandler interface {

	// Connect gives the handler its window. It is called exactly once,
	// from [WindowBuilder.Build].
	Connect(w *Window)

	// Size reports the content size of the window, in dp.
	Size(size geom.Size)

	// Scale reports the scale factor of the window.
	Scale(scale geom.Scale)

	// Position reports the position of the window on screen, in dp.
	Position(pos geom.Point)

	// PreparePaint is called right before Paint; the handler can still
	// invalidate more of the window here.
	PreparePaint()

	// Paint asks the handler to repaint the invalid region, which
	// covers every invalidation since the previous Paint.
	Paint(invalid *geom.Region)

	// Command reports the selection of a menu item or a menu hot key.
	Command(id uint32)

	// SaveAs and OpenFile report the result of a file dialog; info is
	// nil if the dialog was cancelled.
	SaveAs(tok FileDialogToken, info *FileInfo)
	OpenFile(tok FileDialogToken, info *FileInfo)

	// KeyDown reports a key press and returns whether it was handled.
	// Unhandled presses may trigger a menu hot key or be typed into the
	// focused text field.
	KeyDown(ev *key.Event) bool
	KeyUp(ev *key.Event)

	// AcquireInputLock returns the text field for tok, locked for
	// reading and, if mutable, writing until ReleaseInputLock.
	// It may return nil if the field is gone.
	AcquireInputLock(tok TextFieldToken, mutable bool) text.InputHandler
	ReleaseInputLock(tok TextFieldToken)

	Zoom(delta float64)

	MouseWheel(ev *events.MouseEvent)
	MouseMove(ev *events.MouseEvent)
	MouseDown(ev *events.MouseEvent)
	MouseUp(ev *events.MouseEvent)
	MouseLeave()

	// Pointer events are reported for every pointer device. Mouse
	// events are also reported here, after the mouse callback.
	PointerDown(ev *events.PointerEvent)
	PointerUp(ev *events.PointerEvent)
	PointerMove(ev *events.PointerEvent)
	PointerLeave()

	// Timer reports a timer requested with [Window.RequestTimer].
	Timer(tok TimerToken)

	GotFocus()
	LostFocus()

	// RequestClose reports that the user asked to close the window.
	// The window stays open unless the handler calls [Window.Close].
	RequestClose()

	// Destroy is the last callback of the window.
	Destroy()

	// Idle reports a token added with [IdleHandle.AddIdleToken].
	Idle(tok IdleToken)
}

// HandlerBase is a [WinHandler] that does nothing, except that Connect
// keeps the window and RequestClose closes it.
type HandlerBase struct {
	win *Window
}

var _ WinHandler = &HandlerBase{}

// Window returns the window given to Connect.
func (hb *HandlerBase) Window() *Window { return hb.win }

func (hb *HandlerBase) Connect(w *Window) { hb.win = w }

func (hb *HandlerBase) RequestClose() {
	if hb.win != nil {
		hb.win.Close()
	}
}

func (hb *HandlerBase) Size(size geom.Size)                          {}
func (hb *HandlerBase) Scale(scale geom.Scale)                       {}
func (hb *HandlerBase) Position(pos geom.Point)                      {}
func (hb *HandlerBase) PreparePaint()                                {}
func (hb *HandlerBase) Paint(invalid *geom.Region)                   {}
func (hb *HandlerBase) Command(id uint32)                            {}
func (hb *HandlerBase) SaveAs(tok FileDialogToken, info *FileInfo)   {}
func (hb *HandlerBase) OpenFile(tok FileDialogToken, info *FileInfo) {}
func (hb *HandlerBase) KeyDown(ev *key.Event) bool                   { return false }
func (hb *HandlerBase) KeyUp(ev *key.Event)                          {}
func (hb *HandlerBase) Zoom(delta float64)                           {}
func (hb *HandlerBase) MouseWheel(ev *events.MouseEvent)             {}
func (hb *HandlerBase) MouseMove(ev *events.MouseEvent)              {}
func (hb *HandlerBase) MouseDown(ev *events.MouseEvent)              {}
func (hb *HandlerBase) MouseUp(ev *events.MouseEvent)                {}
func (hb *HandlerBase) MouseLeave()                                  {}
func (hb *HandlerBase) PointerDown(ev *events.PointerEvent)          {}
func (hb *HandlerBase) PointerUp(ev *events.PointerEvent)            {}
func (hb *HandlerBase) PointerMove(ev *events.PointerEvent)          {}
func (hb *HandlerBase) PointerLeave()                                {}
func (hb *HandlerBase) Timer(tok TimerToken)                         {}
func (hb *HandlerBase) GotFocus()                                    {}
func (hb *HandlerBase) LostFocus()                                   {}
func (hb *HandlerBase) Destroy()                                     {}
func (hb *HandlerBase) Idle(tok IdleToken)                           {}

func (hb *HandlerBase) AcquireInputLock(tok TextFieldToken, mutable bool) text.InputHandler {
	return nil
}

func (hb *HandlerBase) ReleaseInputLock(tok TextFieldToken) {}

// AppHandler receives application-level events.
type AppHandler interface {
	// Command reports the selection of an application menu item.
	Command(id uint32)
}

// AppHandlerFunc adapts a function to [AppHandler].
type AppHandlerFunc func(id uint32)

func (f AppHandlerFunc) Command(id uint32) { f(id) }
