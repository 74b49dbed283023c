// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build cgo && !(android || ios || js)

// Package desktop implements a driver for macOS, Windows and Linux on
// top of GLFW. GLFW must be used from the main thread, so a program
// using this driver must lock the main goroutine to the main thread in
// an init function and create the [system.App] from it.
package desktop

import (
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"sync"
	"time"

	"cogentcore.org/glazier/config"
	"cogentcore.org/glazier/events"
	"cogentcore.org/glazier/geom"
	"cogentcore.org/glazier/system"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Name is the name the driver is registered under.
const Name = "desktop"

func init() {
	system.RegisterDriver(Name, func(cfg *config.Config) (system.Driver, error) {
		return New(), nil
	})
}

// Driver is the GLFW [system.Driver].
type Driver struct {
	app     system.AppSink
	clip    clipboard
	cursors map[events.Cursors]*glfw.Cursor
	clicks  *events.ClickCounter
	windows []*Window

	// alive is set between Init and Terminate; Wake is a no-op
	// outside of it. mu keeps Wake from posting while GLFW terminates.
	mu    sync.Mutex
	alive bool
}

var _ system.Driver = &Driver{}

// New returns a new GLFW driver. GLFW is not initialized until Init.
func New() *Driver {
	return &Driver{
		cursors: map[events.Cursors]*glfw.Cursor{},
		clicks:  events.NewClickCounter(),
	}
}

func (d *Driver) Name() string { return Name }

func (d *Driver) Init(app system.AppSink) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("desktop: initializing glfw: %w", err)
	}
	d.app = app
	d.mu.Lock()
	d.alive = true
	d.mu.Unlock()
	glfw.SetMonitorCallback(func(m *glfw.Monitor, ev glfw.PeripheralEvent) {
		slog.Debug("desktop: monitor change", "monitor", m.GetName(), "connected", ev == glfw.Connected)
	})
	return nil
}

func (d *Driver) Terminate() {
	for _, c := range d.cursors {
		c.Destroy()
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.alive = false
	glfw.Terminate()
}

// Validate rejects menus and window levels other than normal; GLFW
// has neither, and a floating window is only kept for AlwaysOnTop.
func (d *Driver) Validate(opts *system.WindowOptions) error {
	switch {
	case opts.Menu != nil:
		return system.Unsupported("Menu", Name)
	case opts.Level != system.LevelNormal:
		return system.Unsupported("Level", Name)
	}
	return nil
}

func (d *Driver) WaitEvents(timeout time.Duration) {
	switch {
	case timeout < 0:
		glfw.WaitEvents()
	case timeout == 0:
		glfw.PollEvents()
	default:
		glfw.WaitEventsTimeout(timeout.Seconds())
	}
}

// Wake posts an empty event, which GLFW keeps queued until the next
// WaitEvents when none is in progress. It does nothing before Init and
// after Terminate.
func (d *Driver) Wake() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.alive {
		glfw.PostEmptyEvent()
	}
}

func (d *Driver) RefreshInterval() time.Duration {
	if m := glfw.GetPrimaryMonitor(); m != nil {
		if vm := m.GetVideoMode(); vm != nil && vm.RefreshRate > 0 {
			return time.Second / time.Duration(vm.RefreshRate)
		}
	}
	return time.Second / 60
}

func (d *Driver) Clipboard() system.Clipboard { return &d.clip }

func (d *Driver) Locale() string { return "" }

func (d *Driver) Screens() []system.Monitor {
	primary := glfw.GetPrimaryMonitor()
	var ms []system.Monitor
	for _, mon := range glfw.GetMonitors() {
		vm := mon.GetVideoMode()
		if vm == nil || vm.Width == 0 || vm.Height == 0 {
			slog.Debug("desktop: monitor has no size", "monitor", mon.GetName())
			continue
		}
		sx, sy := mon.GetContentScale()
		scale := monitorScale(sx, sy)
		cs := coordScale(runtime.GOOS, scale)
		x, y := mon.GetPos()
		wx, wy, ww, wh := mon.GetWorkarea()
		ms = append(ms, system.Monitor{
			Name:        mon.GetName(),
			Primary:     mon == primary,
			Rect:        geom.R(float64(x), float64(y), float64(x+vm.Width), float64(y+vm.Height)).ToDp(cs),
			WorkRect:    geom.R(float64(wx), float64(wy), float64(wx+ww), float64(wy+wh)).ToDp(cs),
			Scale:       scale,
			RefreshRate: float64(vm.RefreshRate),
		})
	}
	return ms
}

// monitorScale returns the scale for a GLFW content scale, which is
// NaN or below 1 on some misconfigured systems.
func monitorScale(sx, sy float32) geom.Scale {
	fix := func(v float32) float64 {
		if math.IsNaN(float64(v)) || v < 1 {
			return 1
		}
		return float64(v)
	}
	return geom.NewScale(fix(sx), fix(sy))
}

// coordScale returns the scale between GLFW window coordinates and dp.
// On macOS window coordinates are already in dp.
func coordScale(goos string, s geom.Scale) geom.Scale {
	if goos == "darwin" {
		return geom.DefaultScale
	}
	return s
}

func (d *Driver) cursor(c events.Cursors) *glfw.Cursor {
	if gc, ok := d.cursors[c]; ok {
		return gc
	}
	shape := glfw.ArrowCursor
	switch c {
	case events.CursorIBeam:
		shape = glfw.IBeamCursor
	case events.CursorPointer:
		shape = glfw.HandCursor
	case events.CursorCrosshair:
		shape = glfw.CrosshairCursor
	case events.CursorResizeLeftRight:
		shape = glfw.HResizeCursor
	case events.CursorResizeUpDown:
		shape = glfw.VResizeCursor
	}
	gc := glfw.CreateStandardCursor(shape)
	d.cursors[c] = gc
	return gc
}

func (d *Driver) removeWindow(w *Window) {
	for i, ow := range d.windows {
		if ow == w {
			d.windows = append(d.windows[:i], d.windows[i+1:]...)
			return
		}
	}
}
