// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"time"

	"cogentcore.org/glazier/events"
	"cogentcore.org/glazier/events/key"
	"cogentcore.org/glazier/geom"
	"cogentcore.org/glazier/text"
)

// Driver is a platform backend. It owns every native resource; the
// core only reaches them through this interface and [NativeWindow].
// All methods except Wake are called on the UI thread.
type Driver interface {

	// Name is the name the driver is registered under.
	Name() string

	// Init acquires process-wide native state, such as the display
	// connection. Application-level events are reported to app.
	Init(app AppSink) error

	// Terminate releases everything acquired by Init. It is called
	// once, after every window has been closed.
	Terminate()

	// Validate returns a [*ConfigError] if the driver cannot create a
	// window with the given options.
	Validate(opts *WindowOptions) error

	// NewWindow creates a hidden native window. Its events are reported
	// to sink from within WaitEvents.
	NewWindow(opts *WindowOptions, sink Sink) (NativeWindow, error)

	// WaitEvents processes pending native events, first waiting for up
	// to timeout for one to arrive. A negative timeout waits until an
	// event or a Wake. Events are reported to the window sinks on the
	// calling thread before WaitEvents returns.
	WaitEvents(timeout time.Duration)

	// Wake makes a WaitEvents in progress return promptly. A Wake while
	// no WaitEvents is in progress makes the next one return without
	// waiting. It may be called from any goroutine.
	Wake()

	// RefreshInterval is the time between display refreshes.
	RefreshInterval() time.Duration

	Clipboard() Clipboard

	// Locale returns the platform locale, or "" if unknown.
	Locale() string

	Screens() []Monitor
}

// AppSink receives application-level native events.
type AppSink interface {
	// Command reports the selection of an application menu item.
	Command(id uint32)
}

// NativeWindow is a driver's window. Sizes and positions are in dp.
type NativeWindow interface {
	Show()

	// Close destroys the native window. It is called exactly once; the
	// driver may still report a Destroyed event afterwards, which the
	// core ignores.
	Close()

	SetTitle(title string)
	SetSize(size geom.Size)
	SetPosition(pos geom.Point)
	SetMinSize(size geom.Size)
	SetResizable(resizable bool)
	SetWindowState(state WindowStates)
	SetMenu(menu *Menu)
	ShowContextMenu(menu *Menu, pos geom.Point)
	SetCursor(cursor events.Cursors)
	BringToFront()

	Size() geom.Size
	Position() geom.Point
	Scale() geom.Scale

	// Handle returns the raw native handle, such as an X11 window id.
	Handle() any
}

// TextInputer is implemented by native windows with an input method.
type TextInputer interface {
	// TextFieldFocused tells the input method which field has focus;
	// zero means none.
	TextFieldFocused(tok TextFieldToken)

	// TextFieldUpdated tells the input method that a field changed.
	TextFieldUpdated(tok TextFieldToken, ev text.Events)
}

// ScaleOverrider is implemented by drivers that can replace the display
// scale with the configured scale override. Native window sizes, event
// coordinates and [NativeWindow.Scale] then all use the override. A
// non-positive scale restores the display scale. The driver updates its
// windows but does not report the change to their sinks; the core reads
// the new size and scale back. Drivers without it ignore the override.
type ScaleOverrider interface {
	SetScaleOverride(scale float64)
}

// Sink receives the native events of one window. The core implements
// it; drivers call it only on the UI thread from within
// [Driver.WaitEvents], in the order the native events arrived.
// Sizes and positions are in dp.
type Sink interface {
	// Resized reports a new content size. When the scale also changed,
	// ScaleChanged must be reported first.
	Resized(size geom.Size)

	ScaleChanged(scale geom.Scale)
	Moved(pos geom.Point)

	// Exposed reports an area whose content was lost and must be repainted.
	Exposed(r geom.Rect)

	Focused(focused bool)

	// Mouse reports a mouse event; t is one of the mouse [events.Types].
	Mouse(t events.Types, ev *events.MouseEvent)

	// Pointer reports a pen or touch event; t is one of the pointer
	// [events.Types]. Mouse input must use Mouse.
	Pointer(t events.Types, ev *events.PointerEvent)

	Key(ev *key.Event)
	Command(id uint32)
	Zoomed(delta float64)

	// CloseRequested reports that the user asked to close the window.
	CloseRequested()

	// Destroyed reports that the native window is gone.
	Destroyed()

	// FileDialogDone reports the result of a file dialog; info is nil
	// if it was cancelled.
	FileDialogDone(tok FileDialogToken, save bool, info *FileInfo)
}
