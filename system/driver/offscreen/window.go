// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offscreen

import (
	"slices"

	"cogentcore.org/glazier/events"
	"cogentcore.org/glazier/events/key"
	"cogentcore.org/glazier/geom"
	"cogentcore.org/glazier/system"
	"cogentcore.org/glazier/text"
)

// Window is an offscreen native window. Its setters record the state
// the core asked for; platform reactions such as a resize are reported
// back as queued events, like a real window system would. The getters
// must be called on the UI thread; the Inject methods may be called
// from any goroutine.
type Window struct {
	d    *Driver
	sink system.Sink

	title        string
	size         geom.Size
	minSize      geom.Size
	pos          geom.Point
	display      geom.Scale
	scale        geom.Scale
	visible      bool
	resizable    bool
	closed       bool
	state        system.WindowStates
	menu         *system.Menu
	cursor       events.Cursors
	contextMenus []*system.Menu
	raised       int

	focusedField system.TextFieldToken
	fieldUpdates []text.Events
}

var (
	_ system.NativeWindow = &Window{}
	_ system.FileDialoger = &Window{}
	_ system.TextInputer  = &Window{}
)

func (w *Window) Show() { w.visible = true }

// Close destroys the window and reports a destroyed event.
func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.visible = false
	w.d.windows = slices.DeleteFunc(w.d.windows, func(x *Window) bool { return x == w })
	w.d.post(w.sink.Destroyed)
}

func (w *Window) SetTitle(title string) { w.title = title }

// SetSize resizes the window and reports the new size.
func (w *Window) SetSize(size geom.Size) {
	w.size = size
	w.d.post(func() { w.sink.Resized(size) })
}

// SetPosition moves the window and reports the new position.
func (w *Window) SetPosition(pos geom.Point) {
	w.pos = pos
	w.d.post(func() { w.sink.Moved(pos) })
}

func (w *Window) SetMinSize(size geom.Size)                { w.minSize = size }
func (w *Window) SetResizable(resizable bool)              { w.resizable = resizable }
func (w *Window) SetWindowState(state system.WindowStates) { w.state = state }
func (w *Window) SetMenu(menu *system.Menu)                { w.menu = menu }
func (w *Window) SetCursor(cursor events.Cursors)          { w.cursor = cursor }
func (w *Window) BringToFront()                            { w.raised++ }

func (w *Window) ShowContextMenu(menu *system.Menu, pos geom.Point) {
	w.contextMenus = append(w.contextMenus, menu)
}

func (w *Window) Size() geom.Size      { return w.size }
func (w *Window) Position() geom.Point { return w.pos }
func (w *Window) Scale() geom.Scale    { return w.scale }
func (w *Window) Handle() any          { return w }

func (w *Window) OpenFile(tok system.FileDialogToken, opts system.FileDialogOptions) error {
	w.fileDialog(tok, opts, false)
	return nil
}

func (w *Window) SaveAs(tok system.FileDialogToken, opts system.FileDialogOptions) error {
	w.fileDialog(tok, opts, true)
	return nil
}

func (w *Window) fileDialog(tok system.FileDialogToken, opts system.FileDialogOptions, save bool) {
	w.d.post(func() {
		var info *system.FileInfo
		if w.d.opts.PickFile != nil {
			info = w.d.opts.PickFile(save, opts)
		}
		w.sink.FileDialogDone(tok, save, info)
	})
}

func (w *Window) TextFieldFocused(tok system.TextFieldToken) { w.focusedField = tok }

func (w *Window) TextFieldUpdated(tok system.TextFieldToken, ev text.Events) {
	w.fieldUpdates = append(w.fieldUpdates, ev)
}

// Title returns the current title.
func (w *Window) Title() string { return w.title }

func (w *Window) IsVisible() bool                  { return w.visible }
func (w *Window) IsClosed() bool                   { return w.closed }
func (w *Window) IsResizable() bool                { return w.resizable }
func (w *Window) MinSize() geom.Size               { return w.minSize }
func (w *Window) WindowState() system.WindowStates { return w.state }
func (w *Window) Menu() *system.Menu               { return w.menu }
func (w *Window) Cursor() events.Cursors           { return w.cursor }
func (w *Window) RaiseCount() int                  { return w.raised }

// ContextMenus returns the context menus shown so far.
func (w *Window) ContextMenus() []*system.Menu { return w.contextMenus }

// FocusedTextField returns the field the input method was last told has focus.
func (w *Window) FocusedTextField() system.TextFieldToken { return w.focusedField }

// TextFieldUpdates returns the text field updates received so far.
func (w *Window) TextFieldUpdates() []text.Events { return w.fieldUpdates }

// inject queues a native event for the window, dropping it if the
// window is closed by the time it is delivered.
func (w *Window) inject(f func()) {
	w.d.post(func() {
		if !w.closed {
			f()
		}
	})
}

// InjectResize reports a resize by the user or the window manager.
func (w *Window) InjectResize(size geom.Size) {
	w.inject(func() {
		w.size = size
		w.sink.Resized(size)
	})
}

// InjectScale reports a display scale change, such as a move to
// another monitor, with the content size in dp at the new scale. Under
// a scale override the window keeps the override and only its size in
// dp changes.
func (w *Window) InjectScale(scale geom.Scale, size geom.Size) {
	w.inject(func() {
		px := size.ToPx(scale)
		w.display = scale
		w.scale = w.d.scaleFor(scale)
		w.sink.ScaleChanged(w.scale)
		w.size = px.ToDp(w.scale)
		w.sink.Resized(w.size)
	})
}

func (w *Window) InjectMove(pos geom.Point) {
	w.inject(func() {
		w.pos = pos
		w.sink.Moved(pos)
	})
}

// InjectExpose reports that part of the window must be repainted.
func (w *Window) InjectExpose(r geom.Rect) {
	w.inject(func() { w.sink.Exposed(r) })
}

func (w *Window) InjectFocus(focused bool) {
	w.inject(func() { w.sink.Focused(focused) })
}

// InjectMouse reports a mouse event; t is one of the mouse event types.
func (w *Window) InjectMouse(t events.Types, ev *events.MouseEvent) {
	w.inject(func() { w.sink.Mouse(t, ev) })
}

// InjectPointer reports a pen or touch event.
func (w *Window) InjectPointer(t events.Types, ev *events.PointerEvent) {
	w.inject(func() { w.sink.Pointer(t, ev) })
}

func (w *Window) InjectKey(ev *key.Event) {
	w.inject(func() { w.sink.Key(ev) })
}

// InjectKeyPress reports a press and release of the key with the given code.
func (w *Window) InjectKeyPress(code key.Codes, mods key.Modifiers) {
	w.InjectKey(key.NewEvent(key.Down, code, mods))
	w.InjectKey(key.NewEvent(key.Up, code, mods))
}

// InjectCommand reports the selection of a window menu item.
func (w *Window) InjectCommand(id uint32) {
	w.inject(func() { w.sink.Command(id) })
}

func (w *Window) InjectZoom(delta float64) {
	w.inject(func() { w.sink.Zoomed(delta) })
}

// InjectCloseRequest reports a click on the close button.
func (w *Window) InjectCloseRequest() {
	w.inject(w.sink.CloseRequested)
}

// InjectDestroy destroys the window from the platform side, as a
// window manager killing it would.
func (w *Window) InjectDestroy() {
	w.inject(func() {
		w.closed = true
		w.visible = false
		w.d.windows = slices.DeleteFunc(w.d.windows, func(x *Window) bool { return x == w })
		w.sink.Destroyed()
	})
}
