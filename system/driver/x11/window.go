// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package x11

import (
	"fmt"
	"log/slog"
	"time"

	"cogentcore.org/glazier/base/errors"
	"cogentcore.org/glazier/events"
	"cogentcore.org/glazier/events/key"
	"cogentcore.org/glazier/geom"
	"cogentcore.org/glazier/system"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/motif"
	"github.com/BurntSushi/xgbutil/xprop"
	"github.com/BurntSushi/xgbutil/xwindow"
)

const eventMask = xproto.EventMaskExposure |
	xproto.EventMaskStructureNotify |
	xproto.EventMaskKeyPress |
	xproto.EventMaskKeyRelease |
	xproto.EventMaskButtonPress |
	xproto.EventMaskButtonRelease |
	xproto.EventMaskPointerMotion |
	xproto.EventMaskLeaveWindow |
	xproto.EventMaskFocusChange

// iconicState is the ICCCM WM_CHANGE_STATE value for minimizing.
const iconicState = 3

var windowTypes = map[system.WindowLevels]string{
	system.LevelNormal:   "_NET_WM_WINDOW_TYPE_NORMAL",
	system.LevelTooltip:  "_NET_WM_WINDOW_TYPE_TOOLTIP",
	system.LevelDropDown: "_NET_WM_WINDOW_TYPE_DROPDOWN_MENU",
	system.LevelModal:    "_NET_WM_WINDOW_TYPE_DIALOG",
}

// Window is an X11 top-level window.
type Window struct {
	d    *Driver
	win  *xwindow.Window
	sink system.Sink

	size      geom.Size
	pos       geom.Point
	scale     geom.Scale
	minSize   geom.Size
	resizable bool
	state     system.WindowStates
	mapped    bool
	closed    bool

	down map[xproto.Keycode]bool
}

var _ system.NativeWindow = &Window{}

func (d *Driver) NewWindow(opts *system.WindowOptions, sink system.Sink) (system.NativeWindow, error) {
	win, err := xwindow.Generate(d.xu)
	if err != nil {
		return nil, fmt.Errorf("x11: allocating window id: %w", err)
	}
	w := &Window{
		d:         d,
		win:       win,
		sink:      sink,
		size:      opts.Size,
		scale:     d.scale,
		minSize:   opts.MinSize,
		resizable: opts.Resizable,
		state:     opts.State,
		down:      map[xproto.Keycode]bool{},
	}
	if opts.HasPosition {
		w.pos = opts.Position
	}
	px := opts.Size.ToPx(w.scale).Round()
	ppos := w.pos.ToPx(w.scale).Round()
	err = win.CreateChecked(d.xu.RootWin(), int(ppos.X), int(ppos.Y), int(px.Width), int(px.Height),
		xproto.CwBackPixel|xproto.CwEventMask, d.xu.Screen().WhitePixel, eventMask)
	if err != nil {
		return nil, fmt.Errorf("x11: creating window: %w", err)
	}
	id := win.Id
	errors.Log(icccm.WmProtocolsSet(d.xu, id, []string{"WM_DELETE_WINDOW"}))
	w.SetTitle(opts.Title)
	errors.Log(ewmh.WmWindowTypeSet(d.xu, id, []string{windowTypes[opts.Level]}))
	if opts.AlwaysOnTop {
		errors.Log(ewmh.WmStateSet(d.xu, id, []string{"_NET_WM_STATE_ABOVE"}))
	}
	if !opts.ShowTitlebar {
		errors.Log(motif.WmHintsSet(d.xu, id, &motif.Hints{
			Flags:      motif.HintDecorations,
			Decoration: motif.DecorationNone,
		}))
	}
	w.setNormalHints()
	d.windows[id] = w
	slog.Debug("x11: window created", "id", id, "size", px)
	return w, nil
}

func (w *Window) Show() {
	if w.closed || w.mapped {
		return
	}
	w.win.Map()
	w.mapped = true
	if w.state != system.Restored {
		w.SetWindowState(w.state)
	}
}

func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	delete(w.d.windows, w.win.Id)
	w.win.Destroy()
}

func (w *Window) SetTitle(title string) {
	errors.Log(ewmh.WmNameSet(w.d.xu, w.win.Id, title))
	errors.Log(icccm.WmNameSet(w.d.xu, w.win.Id, title))
}

func (w *Window) SetSize(size geom.Size) {
	px := size.ToPx(w.scale).Round()
	if !w.resizable {
		w.setNormalHintsFor(size)
	}
	w.win.Resize(int(px.Width), int(px.Height))
}

func (w *Window) SetPosition(pos geom.Point) {
	px := pos.ToPx(w.scale).Round()
	w.win.Move(int(px.X), int(px.Y))
}

func (w *Window) SetMinSize(size geom.Size) {
	w.minSize = size
	w.setNormalHints()
}

func (w *Window) SetResizable(resizable bool) {
	w.resizable = resizable
	w.setNormalHints()
}

func (w *Window) setNormalHints() { w.setNormalHintsFor(w.size) }

// setNormalHintsFor publishes the size constraints. A fixed size window
// has minimum and maximum sizes equal to size.
func (w *Window) setNormalHintsFor(size geom.Size) {
	nh := &icccm.NormalHints{}
	if !w.minSize.IsEmpty() {
		ms := w.minSize.ToPx(w.scale).Round()
		nh.Flags |= icccm.SizeHintPMinSize
		nh.MinWidth, nh.MinHeight = uint(ms.Width), uint(ms.Height)
	}
	if !w.resizable {
		px := size.ToPx(w.scale).Round()
		nh.Flags |= icccm.SizeHintPMinSize | icccm.SizeHintPMaxSize
		nh.MinWidth, nh.MinHeight = uint(px.Width), uint(px.Height)
		nh.MaxWidth, nh.MaxHeight = uint(px.Width), uint(px.Height)
	}
	errors.Log(icccm.WmNormalHintsSet(w.d.xu, w.win.Id, nh))
}

func (w *Window) SetWindowState(state system.WindowStates) {
	w.state = state
	if !w.mapped {
		return
	}
	xu, id := w.d.xu, w.win.Id
	switch state {
	case system.Maximized:
		errors.Log(ewmh.WmStateReqExtra(xu, id, ewmh.StateAdd,
			"_NET_WM_STATE_MAXIMIZED_VERT", "_NET_WM_STATE_MAXIMIZED_HORZ", 1))
	case system.Restored:
		errors.Log(ewmh.WmStateReqExtra(xu, id, ewmh.StateRemove,
			"_NET_WM_STATE_MAXIMIZED_VERT", "_NET_WM_STATE_MAXIMIZED_HORZ", 1))
		w.win.Map()
	case system.Minimized:
		errors.Log(w.iconify())
	}
}

// iconify asks the window manager to minimize the window.
func (w *Window) iconify() error {
	xu := w.d.xu
	atom, err := xprop.Atm(xu, "WM_CHANGE_STATE")
	if err != nil {
		return err
	}
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: w.win.Id,
		Type:   atom,
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{iconicState, 0, 0, 0, 0}),
	}
	return xproto.SendEventChecked(xu.Conn(), false, xu.RootWin(),
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify,
		string(ev.Bytes())).Check()
}

func (w *Window) SetMenu(menu *system.Menu) {}

// ShowContextMenu is not supported: X11 has no native menus.
func (w *Window) ShowContextMenu(menu *system.Menu, pos geom.Point) {
	slog.Debug("x11: context menus are not supported")
}

func (w *Window) SetCursor(cursor events.Cursors) {
	if cursor == events.CursorHidden {
		w.win.Change(xproto.CwCursor, uint32(xproto.CursorNone))
		return
	}
	w.win.Change(xproto.CwCursor, uint32(w.d.cursor(cursor)))
}

func (w *Window) BringToFront() {
	errors.Log(ewmh.ActiveWindowReq(w.d.xu, w.win.Id))
}

func (w *Window) Size() geom.Size      { return w.size }
func (w *Window) Position() geom.Point { return w.pos }
func (w *Window) Scale() geom.Scale    { return w.scale }

// Handle returns the X window id.
func (w *Window) Handle() any { return w.win.Id }

// rescale switches the window to scale, keeping its size in px.
func (w *Window) rescale(scale geom.Scale) {
	if scale == w.scale {
		return
	}
	px := w.size.ToPx(w.scale)
	pos := w.pos.ToPx(w.scale)
	w.scale = scale
	w.size = px.ToDp(scale)
	w.pos = pos.ToDp(scale)
	w.setNormalHints()
}

func (w *Window) toDp(x, y int16) geom.Point {
	return geom.Pt(float64(x), float64(y)).ToDp(w.scale)
}

func (w *Window) configured(e xproto.ConfigureNotifyEvent) {
	size := geom.Sz(float64(e.Width), float64(e.Height)).ToDp(w.scale)
	if size != w.size {
		w.size = size
		w.sink.Resized(size)
	}
	// reparenting window managers report positions relative to the frame
	r, err := xproto.TranslateCoordinates(w.d.xu.Conn(), w.win.Id, w.d.xu.RootWin(), 0, 0).Reply()
	if err != nil {
		return
	}
	pos := w.toDp(r.DstX, r.DstY)
	if pos != w.pos {
		w.pos = pos
		w.sink.Moved(pos)
	}
}

func (w *Window) buttonPress(e xproto.ButtonPressEvent) {
	b, delta := button(e.Detail)
	ev := &events.MouseEvent{
		Pos:     w.toDp(e.EventX, e.EventY),
		Buttons: buttonSet(e.State),
		Mods:    keyMods(e.State),
	}
	if delta != (geom.Vec2{}) {
		if ev.Mods.Has(key.ModShift) && delta.X == 0 {
			delta = geom.V(delta.Y, 0)
		}
		ev.WheelDelta = delta
		w.sink.Mouse(events.MouseWheel, ev)
		return
	}
	if b == events.NoButton {
		return
	}
	ev.Button = b
	ev.Buttons = ev.Buttons.With(b)
	ev.Count = w.d.clicks.Press(b, ev.Pos, time.Now())
	w.sink.Mouse(events.MouseDown, ev)
}

func (w *Window) buttonRelease(e xproto.ButtonReleaseEvent) {
	b, _ := button(e.Detail)
	if b == events.NoButton {
		return
	}
	w.sink.Mouse(events.MouseUp, &events.MouseEvent{
		Pos:     w.toDp(e.EventX, e.EventY),
		Button:  b,
		Buttons: buttonSet(e.State).Without(b),
		Mods:    keyMods(e.State),
	})
}

func (w *Window) keyPress(e xproto.KeyPressEvent) {
	sym := keybind.LookupString(w.d.xu, e.State, e.Detail)
	ev := keyEvent(key.Down, e.Detail, e.State, sym)
	ev.Repeat = w.down[e.Detail]
	w.down[e.Detail] = true
	w.sink.Key(ev)
}

func (w *Window) keyRelease(e xproto.KeyReleaseEvent) {
	delete(w.down, e.Detail)
	sym := keybind.LookupString(w.d.xu, e.State, e.Detail)
	w.sink.Key(keyEvent(key.Up, e.Detail, e.State, sym))
}
