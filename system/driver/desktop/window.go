// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build cgo && !(android || ios || js)

package desktop

import (
	"fmt"
	"log/slog"
	"runtime"

	"cogentcore.org/glazier/events"
	"cogentcore.org/glazier/geom"
	"cogentcore.org/glazier/system"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is a GLFW window.
type Window struct {
	d    *Driver
	glw  *glfw.Window
	sink system.Sink

	size    geom.Size
	pos     geom.Point
	scale   geom.Scale
	buttons events.ButtonSet
	minSize geom.Size
	state   system.WindowStates
	shown   bool
	closed  bool
}

var _ system.NativeWindow = &Window{}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

func (d *Driver) NewWindow(opts *system.WindowOptions, sink system.Sink) (system.NativeWindow, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Resizable, glfwBool(opts.Resizable))
	glfw.WindowHint(glfw.Decorated, glfwBool(opts.ShowTitlebar))
	glfw.WindowHint(glfw.Floating, glfwBool(opts.AlwaysOnTop))
	glfw.WindowHint(glfw.TransparentFramebuffer, glfwBool(opts.Transparent))
	glfw.WindowHint(glfw.ScaleToMonitor, glfw.True)
	glfw.WindowHint(glfw.Maximized, glfwBool(opts.State == system.Maximized))

	scale := geom.DefaultScale
	if m := glfw.GetPrimaryMonitor(); m != nil {
		scale = monitorScale(m.GetContentScale())
	}
	w := &Window{d: d, sink: sink, scale: scale, minSize: opts.MinSize, state: opts.State}
	px := opts.Size.ToPx(w.coordScale()).Round()
	glw, err := glfw.CreateWindow(int(px.Width), int(px.Height), opts.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("desktop: creating window: %w", err)
	}
	w.glw = glw
	w.scale = monitorScale(glw.GetContentScale())
	w.size = w.sizeDp(glw.GetSize())
	if opts.HasPosition {
		w.SetPosition(opts.Position)
	}
	w.pos = w.toDp(float64Pair(glw.GetPos()))
	w.SetMinSize(opts.MinSize)

	glw.SetPosCallback(w.moved)
	glw.SetSizeCallback(w.resized)
	glw.SetContentScaleCallback(w.scaleChanged)
	glw.SetCloseCallback(w.closeRequested)
	glw.SetRefreshCallback(w.refresh)
	glw.SetFocusCallback(w.focused)
	glw.SetKeyCallback(w.keyEvent)
	glw.SetMouseButtonCallback(w.mouseButtonEvent)
	glw.SetScrollCallback(w.scrollEvent)
	glw.SetCursorPosCallback(w.cursorPosEvent)
	glw.SetCursorEnterCallback(w.cursorEnterEvent)

	d.windows = append(d.windows, w)
	slog.Debug("desktop: window created", "size", w.size, "scale", w.scale)
	return w, nil
}

func float64Pair(x, y int) (float64, float64) { return float64(x), float64(y) }

func (w *Window) coordScale() geom.Scale { return coordScale(runtime.GOOS, w.scale) }

func (w *Window) sizeDp(width, height int) geom.Size {
	return geom.Sz(float64(width), float64(height)).ToDp(w.coordScale())
}

func (w *Window) Show() {
	if w.closed || w.shown {
		return
	}
	w.glw.Show()
	w.shown = true
	if w.state == system.Minimized {
		w.glw.Iconify()
	}
}

func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.d.removeWindow(w)
	w.glw.Destroy()
}

func (w *Window) SetTitle(title string) { w.glw.SetTitle(title) }

func (w *Window) SetSize(size geom.Size) {
	px := size.ToPx(w.coordScale()).Round()
	w.glw.SetSize(int(px.Width), int(px.Height))
}

func (w *Window) SetPosition(pos geom.Point) {
	px := pos.ToPx(w.coordScale()).Round()
	w.glw.SetPos(int(px.X), int(px.Y))
}

func (w *Window) SetMinSize(size geom.Size) {
	w.minSize = size
	minw, minh := glfw.DontCare, glfw.DontCare
	if !size.IsEmpty() {
		px := size.ToPx(w.coordScale()).Expand()
		minw, minh = int(px.Width), int(px.Height)
	}
	w.glw.SetSizeLimits(minw, minh, glfw.DontCare, glfw.DontCare)
}

func (w *Window) SetResizable(resizable bool) {
	w.glw.SetAttrib(glfw.Resizable, glfwBool(resizable))
}

// SetWindowState applies state; a hidden window only records it, and
// Show applies it.
func (w *Window) SetWindowState(state system.WindowStates) {
	w.state = state
	if !w.shown {
		return
	}
	switch state {
	case system.Maximized:
		w.glw.Maximize()
	case system.Minimized:
		w.glw.Iconify()
	default:
		w.glw.Restore()
	}
}

func (w *Window) SetMenu(menu *system.Menu) {}

// ShowContextMenu is not supported: GLFW has no menus.
func (w *Window) ShowContextMenu(menu *system.Menu, pos geom.Point) {
	slog.Debug("desktop: context menus are not supported")
}

func (w *Window) SetCursor(cursor events.Cursors) {
	if cursor == events.CursorHidden {
		w.glw.SetInputMode(glfw.CursorMode, glfw.CursorHidden)
		return
	}
	w.glw.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	w.glw.SetCursor(w.d.cursor(cursor))
}

func (w *Window) BringToFront() { w.glw.Focus() }

func (w *Window) Size() geom.Size      { return w.size }
func (w *Window) Position() geom.Point { return w.pos }
func (w *Window) Scale() geom.Scale    { return w.scale }

// Handle returns the *glfw.Window.
func (w *Window) Handle() any { return w.glw }

func (w *Window) moved(gw *glfw.Window, x, y int) {
	w.pos = w.toDp(float64(x), float64(y))
	w.sink.Moved(w.pos)
}

func (w *Window) resized(gw *glfw.Window, width, height int) {
	w.size = w.sizeDp(width, height)
	w.sink.Resized(w.size)
}

func (w *Window) scaleChanged(gw *glfw.Window, x, y float32) {
	w.scale = monitorScale(x, y)
	w.sink.ScaleChanged(w.scale)
	w.size = w.sizeDp(gw.GetSize())
	w.sink.Resized(w.size)
}

func (w *Window) closeRequested(gw *glfw.Window) {
	gw.SetShouldClose(false)
	w.sink.CloseRequested()
}

func (w *Window) refresh(gw *glfw.Window) {
	w.sink.Exposed(w.size.ToRect())
}

func (w *Window) focused(gw *glfw.Window, focused bool) {
	w.sink.Focused(focused)
}
