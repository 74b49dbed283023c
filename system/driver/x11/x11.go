// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package x11 implements a driver for the X Window System on top of the
// pure Go X protocol bindings, so it needs no C toolchain. X events are
// read by a background goroutine and delivered to the window sinks from
// within [Driver.WaitEvents] on the UI thread.
package x11

import (
	"fmt"
	"log/slog"
	"time"

	"cogentcore.org/glazier/base/errors"
	"cogentcore.org/glazier/config"
	"cogentcore.org/glazier/events"
	"cogentcore.org/glazier/geom"
	"cogentcore.org/glazier/system"
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xcursor"
	"github.com/BurntSushi/xgbutil/xprop"
)

// Name is the name the driver is registered under.
const Name = "x11"

func init() {
	system.RegisterDriver(Name, func(cfg *config.Config) (system.Driver, error) {
		return New(), nil
	})
}

// Driver is the X11 [system.Driver].
type Driver struct {
	xu  *xgbutil.XUtil
	app system.AppSink

	// display is the scale of the screen and scale the one windows use,
	// which is the override if one is set.
	display  geom.Scale
	scale    geom.Scale
	override float64

	clip system.MemClipboard

	windows map[xproto.Window]*Window
	cursors map[events.Cursors]xproto.Cursor
	clicks  *events.ClickCounter

	wmProtocols    xproto.Atom
	wmDeleteWindow xproto.Atom

	events chan xgb.Event
	wake   chan struct{}
	done   chan struct{}
}

var (
	_ system.Driver         = &Driver{}
	_ system.ScaleOverrider = &Driver{}
)

// New returns a new X11 driver. It does not connect to the server
// until Init.
func New() *Driver {
	return &Driver{
		windows: map[xproto.Window]*Window{},
		cursors: map[events.Cursors]xproto.Cursor{},
		clicks:  events.NewClickCounter(),
		events:  make(chan xgb.Event, 256),
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
}

func (d *Driver) Name() string { return Name }

// Init connects to the display named by $DISPLAY.
func (d *Driver) Init(app system.AppSink) error {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return fmt.Errorf("x11: connecting to display: %w", err)
	}
	d.xu = xu
	d.app = app
	keybind.Initialize(xu)

	if d.wmProtocols, err = xprop.Atm(xu, "WM_PROTOCOLS"); err != nil {
		xu.Conn().Close()
		return fmt.Errorf("x11: interning WM_PROTOCOLS: %w", err)
	}
	if d.wmDeleteWindow, err = xprop.Atm(xu, "WM_DELETE_WINDOW"); err != nil {
		xu.Conn().Close()
		return fmt.Errorf("x11: interning WM_DELETE_WINDOW: %w", err)
	}

	res, _ := xprop.PropValStr(xprop.GetProperty(xu, xu.RootWin(), "RESOURCE_MANAGER"))
	scr := xu.Screen()
	d.display = screenScale(res, scr.WidthInPixels, scr.WidthInMillimeters)
	d.scale = d.windowScale()
	slog.Debug("x11: connected", "screen", fmt.Sprintf("%dx%d", scr.WidthInPixels, scr.HeightInPixels), "scale", d.scale)

	go d.read()
	return nil
}

// read forwards X events to the UI thread until the connection closes.
func (d *Driver) read() {
	for {
		ev, xerr := d.xu.Conn().WaitForEvent()
		if ev == nil && xerr == nil {
			return
		}
		if xerr != nil {
			slog.Debug("x11: protocol error", "err", xerr)
			continue
		}
		select {
		case d.events <- ev:
			d.Wake()
		case <-d.done:
			return
		}
	}
}

func (d *Driver) Terminate() {
	close(d.done)
	for _, c := range d.cursors {
		xproto.FreeCursor(d.xu.Conn(), c)
	}
	d.xu.Conn().Close()
}

// SetScaleOverride replaces the screen scale with scale for every
// window, keeping their size in px.
func (d *Driver) SetScaleOverride(scale float64) {
	d.override = scale
	d.scale = d.windowScale()
	for _, w := range d.windows {
		w.rescale(d.scale)
	}
}

func (d *Driver) windowScale() geom.Scale {
	if d.override > 0 {
		return geom.UniformScale(d.override)
	}
	return d.display
}

func (d *Driver) Validate(opts *system.WindowOptions) error {
	switch {
	case opts.Transparent:
		return system.Unsupported("Transparent", Name)
	case opts.Menu != nil:
		return system.Unsupported("Menu", Name)
	}
	return nil
}

func (d *Driver) WaitEvents(timeout time.Duration) {
	if timeout != 0 {
		var tc <-chan time.Time
		if timeout > 0 {
			t := time.NewTimer(timeout)
			defer t.Stop()
			tc = t.C
		}
		select {
		case ev := <-d.events:
			d.handle(ev)
		case <-d.wake:
		case <-tc:
		}
	} else {
		select {
		case <-d.wake:
		default:
		}
	}
	for {
		select {
		case ev := <-d.events:
			d.handle(ev)
		default:
			return
		}
	}
}

func (d *Driver) Wake() {
	select {
	case d.wake <- struct{}{}:
	default:
	}
}

// RefreshInterval assumes 60 Hz; the core X protocol does not report
// the refresh rate.
func (d *Driver) RefreshInterval() time.Duration { return time.Second / 60 }

// Clipboard returns an in-process clipboard.
// TODO: exchange the CLIPBOARD selection with other clients.
func (d *Driver) Clipboard() system.Clipboard { return &d.clip }

func (d *Driver) Locale() string { return "" }

func (d *Driver) Screens() []system.Monitor {
	scr := d.xu.Screen()
	r := geom.R(0, 0, float64(scr.WidthInPixels), float64(scr.HeightInPixels)).ToDp(d.scale)
	return []system.Monitor{{
		Name:     "default",
		Primary:  true,
		Rect:     r,
		WorkRect: r,
		Scale:    d.scale,
	}}
}

// cursor returns the X cursor for c, creating it on first use.
func (d *Driver) cursor(c events.Cursors) xproto.Cursor {
	if xc, ok := d.cursors[c]; ok {
		return xc
	}
	shape := uint16(xcursor.LeftPtr)
	switch c {
	case events.CursorIBeam:
		shape = xcursor.XTerm
	case events.CursorPointer:
		shape = xcursor.Hand2
	case events.CursorCrosshair:
		shape = xcursor.Crosshair
	case events.CursorNotAllowed:
		shape = xcursor.Circle
	case events.CursorResizeLeftRight:
		shape = xcursor.SBHDoubleArrow
	case events.CursorResizeUpDown:
		shape = xcursor.SBVDoubleArrow
	}
	xc := errors.Log1(xcursor.CreateCursor(d.xu, shape))
	d.cursors[c] = xc
	return xc
}

// handle dispatches one X event to the window it belongs to.
func (d *Driver) handle(ev xgb.Event) {
	switch e := ev.(type) {
	case xproto.ConfigureNotifyEvent:
		if w := d.windows[e.Window]; w != nil {
			w.configured(e)
		}
	case xproto.ExposeEvent:
		if w := d.windows[e.Window]; w != nil {
			r := geom.R(float64(e.X), float64(e.Y), float64(e.X)+float64(e.Width), float64(e.Y)+float64(e.Height))
			w.sink.Exposed(r.ToDp(w.scale))
		}
	case xproto.ButtonPressEvent:
		if w := d.windows[e.Event]; w != nil {
			w.buttonPress(e)
		}
	case xproto.ButtonReleaseEvent:
		if w := d.windows[e.Event]; w != nil {
			w.buttonRelease(e)
		}
	case xproto.MotionNotifyEvent:
		if w := d.windows[e.Event]; w != nil {
			w.sink.Mouse(events.MouseMove, &events.MouseEvent{
				Pos:     w.toDp(e.EventX, e.EventY),
				Buttons: buttonSet(e.State),
				Mods:    keyMods(e.State),
			})
		}
	case xproto.LeaveNotifyEvent:
		if w := d.windows[e.Event]; w != nil {
			w.sink.Mouse(events.MouseLeave, nil)
		}
	case xproto.KeyPressEvent:
		if w := d.windows[e.Event]; w != nil {
			w.keyPress(e)
		}
	case xproto.KeyReleaseEvent:
		if w := d.windows[e.Event]; w != nil {
			w.keyRelease(e)
		}
	case xproto.FocusInEvent:
		if w := d.windows[e.Event]; w != nil && e.Mode == xproto.NotifyModeNormal {
			w.sink.Focused(true)
		}
	case xproto.FocusOutEvent:
		if w := d.windows[e.Event]; w != nil && e.Mode == xproto.NotifyModeNormal {
			w.sink.Focused(false)
		}
	case xproto.ClientMessageEvent:
		w := d.windows[e.Window]
		if w != nil && e.Type == d.wmProtocols && e.Format == 32 &&
			len(e.Data.Data32) > 0 && xproto.Atom(e.Data.Data32[0]) == d.wmDeleteWindow {
			w.sink.CloseRequested()
		}
	case xproto.DestroyNotifyEvent:
		if w := d.windows[e.Window]; w != nil {
			delete(d.windows, e.Window)
			w.closed = true
			w.sink.Destroyed()
		}
	}
}
