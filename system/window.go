// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"log/slog"
	"time"

	"cogentcore.org/glazier/events"
	"cogentcore.org/glazier/geom"
)

type windowStates int32

const (
	windowLive windowStates = iota

	// windowClosing is a window that has been closed but not yet
	// destroyed by the loop. It gets no more callbacks except Destroy.
	windowClosing

	windowDestroyed
)

// Window is the handle of a native window, created by
// [WindowBuilder.Build]. All methods must be called on the UI thread
// and panic with a [*ThreadError] otherwise, except [Window.IdleHandle]
// whose result may be used anywhere. Once the window is closed, setters
// do nothing and getters return the last known values.
type Window struct {
	app     *App
	native  NativeWindow
	handler WinHandler
	opts    WindowOptions
	state   windowStates

	size    geom.Size
	scale   geom.Scale
	pos     geom.Point
	visible bool
	focused bool
	menu    *Menu
	cursor  events.Cursors

	// invalid is the area to repaint at the next paint.
	invalid   geom.Region
	animFrame bool
	lastPaint time.Time

	idle *idleQueue
	text TextInput

	// nativeGone is set when the driver destroyed the native window itself.
	nativeGone bool
}

func (w *Window) isLive() bool {
	return w.state == windowLive
}

// gone checks the thread and returns true, logging, if the window can
// no longer be operated on.
func (w *Window) gone(op string) bool {
	w.app.checkThread(op)
	if w.isLive() {
		return false
	}
	slog.Debug("system: operation on closed window ignored", "op", op)
	return true
}

// App returns the application of the window.
func (w *Window) App() *App { return w.app }

// Handler returns the handler of the window.
func (w *Window) Handler() WinHandler { return w.handler }

// Show makes the window visible and schedules a paint of all of it.
func (w *Window) Show() {
	if w.gone("Window.Show") {
		return
	}
	w.native.Show()
	w.visible = true
	w.invalidateAll()
}

// Close closes the window. The handler's Destroy is called exactly once,
// from the event loop after the current callback returns. Close may be
// called any number of times.
func (w *Window) Close() {
	if w.gone("Window.Close") {
		return
	}
	w.state = windowClosing
	w.app.destroys = append(w.app.destroys, w)
	w.app.driver.Wake()
}

func (w *Window) SetTitle(title string) {
	if w.gone("Window.SetTitle") {
		return
	}
	w.opts.Title = title
	w.native.SetTitle(title)
}

// Title returns the window title.
func (w *Window) Title() string {
	w.app.checkThread("Window.Title")
	return w.opts.Title
}

// SetSize asks for a new content size, in dp. The handler's Size is
// called once the platform applies it.
func (w *Window) SetSize(size geom.Size) {
	if w.gone("Window.SetSize") {
		return
	}
	if size.IsEmpty() {
		slog.Debug("system: empty window size ignored", "size", size)
		return
	}
	w.native.SetSize(size)
}

// SetMinSize sets the minimum content size, in dp.
func (w *Window) SetMinSize(size geom.Size) {
	if w.gone("Window.SetMinSize") {
		return
	}
	w.opts.MinSize = size
	w.native.SetMinSize(size)
}

// SetPosition moves the window on screen, in dp.
func (w *Window) SetPosition(pos geom.Point) {
	if w.gone("Window.SetPosition") {
		return
	}
	w.native.SetPosition(pos)
}

func (w *Window) SetResizable(resizable bool) {
	if w.gone("Window.SetResizable") {
		return
	}
	w.opts.Resizable = resizable
	w.native.SetResizable(resizable)
}

func (w *Window) SetWindowState(state WindowStates) {
	if w.gone("Window.SetWindowState") {
		return
	}
	w.opts.State = state
	w.native.SetWindowState(state)
}

// WindowState returns the last requested display state.
func (w *Window) WindowState() WindowStates {
	w.app.checkThread("Window.WindowState")
	return w.opts.State
}

// SetMenu replaces the window menu. Hot keys of the menu are matched
// against key presses the handler does not handle.
func (w *Window) SetMenu(menu *Menu) {
	if w.gone("Window.SetMenu") {
		return
	}
	w.menu = menu
	w.native.SetMenu(menu)
}

// ShowContextMenu shows menu at pos, in dp relative to the window.
func (w *Window) ShowContextMenu(menu *Menu, pos geom.Point) {
	if w.gone("Window.ShowContextMenu") {
		return
	}
	w.native.ShowContextMenu(menu, pos)
}

func (w *Window) SetCursor(cursor events.Cursors) {
	if w.gone("Window.SetCursor") {
		return
	}
	if cursor == w.cursor {
		return
	}
	w.cursor = cursor
	w.native.SetCursor(cursor)
}

func (w *Window) BringToFront() {
	if w.gone("Window.BringToFront") {
		return
	}
	w.native.BringToFront()
}

// Invalidate schedules a paint of the whole window.
func (w *Window) Invalidate() {
	if w.gone("Window.Invalidate") {
		return
	}
	w.invalidateAll()
}

// InvalidateRect schedules a paint of r, in dp. All invalidations
// before the next paint are coalesced into one Paint call covering
// their union.
func (w *Window) InvalidateRect(r geom.Rect) {
	if w.gone("Window.InvalidateRect") {
		return
	}
	w.invalid.AddRect(r.Intersect(w.size.ToRect()))
}

func (w *Window) invalidateAll() {
	w.invalid.SetRect(w.size.ToRect())
}

// RequestAnimFrame schedules one paint at the next frame tick. It must
// be renewed from Paint for continuous animation.
func (w *Window) RequestAnimFrame() {
	if w.gone("Window.RequestAnimFrame") {
		return
	}
	w.animFrame = true
}

// RequestTimer schedules a call of the handler's Timer after d, with
// the returned token. Timers are one-shot and cannot be cancelled. It
// returns the zero token if the window is closed.
func (w *Window) RequestTimer(d time.Duration) TimerToken {
	if w.gone("Window.RequestTimer") {
		return 0
	}
	tok := NextTimerToken()
	w.app.timers.add(timerEntry{deadline: time.Now().Add(d), tok: tok, win: w})
	return tok
}

// Scale returns the scale factor of the window.
func (w *Window) Scale() geom.Scale {
	w.app.checkThread("Window.Scale")
	return w.scale
}

// Size returns the content size, in dp.
func (w *Window) Size() geom.Size {
	w.app.checkThread("Window.Size")
	return w.size
}

// Area returns the content size in dp and px.
func (w *Window) Area() geom.ScaledArea {
	w.app.checkThread("Window.Area")
	return geom.ScaledAreaFromDp(w.size, w.scale)
}

// Position returns the position on screen, in dp.
func (w *Window) Position() geom.Point {
	w.app.checkThread("Window.Position")
	return w.pos
}

func (w *Window) IsVisible() bool {
	w.app.checkThread("Window.IsVisible")
	return w.visible && w.isLive()
}

func (w *Window) IsFocused() bool {
	w.app.checkThread("Window.IsFocused")
	return w.focused && w.isLive()
}

// IsDestroyed returns whether the handler's Destroy has been called.
func (w *Window) IsDestroyed() bool {
	w.app.checkThread("Window.IsDestroyed")
	return w.state == windowDestroyed
}

// Text returns the text input surface of the window.
func (w *Window) Text() *TextInput {
	w.app.checkThread("Window.Text")
	return &w.text
}

// OpenFile shows an open file dialog. The result is reported to the
// handler's OpenFile with the returned token.
func (w *Window) OpenFile(opts FileDialogOptions) (FileDialogToken, error) {
	return w.fileDialog("Window.OpenFile", opts, false)
}

// SaveAs shows a save file dialog. The result is reported to the
// handler's SaveAs with the returned token.
func (w *Window) SaveAs(opts FileDialogOptions) (FileDialogToken, error) {
	return w.fileDialog("Window.SaveAs", opts, true)
}

func (w *Window) fileDialog(op string, opts FileDialogOptions, save bool) (FileDialogToken, error) {
	if w.gone(op) {
		return 0, ErrWindowGone
	}
	fd, ok := w.native.(FileDialoger)
	if !ok {
		return 0, ErrUnsupported
	}
	tok := NextFileDialogToken()
	var err error
	if save {
		err = fd.SaveAs(tok, opts)
	} else {
		err = fd.OpenFile(tok, opts)
	}
	if err != nil {
		return 0, err
	}
	return tok, nil
}

// IdleHandle returns a handle for scheduling work on this window from
// any goroutine.
func (w *Window) IdleHandle() IdleHandle {
	w.app.checkThread("Window.IdleHandle")
	return IdleHandle{q: w.idle}
}

// Handle returns the raw native handle of the window, or nil once it
// is closed.
func (w *Window) Handle() any {
	if w.gone("Window.Handle") {
		return nil
	}
	return w.native.Handle()
}

// paintDeadline returns when the window should next be painted, if it
// needs painting.
func (w *Window) paintDeadline(frame time.Duration) (time.Time, bool) {
	if !w.isLive() || !w.visible || (w.invalid.IsEmpty() && !w.animFrame) {
		return time.Time{}, false
	}
	return w.lastPaint.Add(frame), true
}

func (w *Window) paint(now time.Time) {
	w.animFrame = false
	w.lastPaint = now
	w.handler.PreparePaint()
	if !w.isLive() || w.app.quitting() {
		return
	}
	if w.invalid.IsEmpty() {
		w.invalidateAll()
	}
	region := w.invalid
	w.invalid = geom.Region{}
	w.handler.Paint(&region)
}

func (w *Window) drainIdle() {
	if !w.isLive() {
		return
	}
	w.idle.q.Drain(func(it idleItem) {
		if !w.isLive() || w.app.quitting() {
			return
		}
		if it.fn != nil {
			it.fn(w.handler)
		} else {
			w.handler.Idle(it.tok)
		}
	})
}

// setSize updates the content size, reporting it and repainting everything.
func (w *Window) setSize(size geom.Size) {
	if size == w.size {
		return
	}
	w.size = size
	w.invalidateAll()
	w.handler.Size(size)
}

// syncNative reads back the scale and size of the native window after
// the driver changed them without reporting it.
func (w *Window) syncNative() {
	w.setScale(nativeScale(w.native.Scale()))
	if w.isLive() {
		w.setSize(w.native.Size())
	}
}

// setScale updates the scale, reporting it and repainting everything.
func (w *Window) setScale(s geom.Scale) {
	if s == w.scale {
		return
	}
	w.scale = s
	w.handler.Scale(s)
	if w.isLive() {
		w.invalidateAll()
	}
}
