// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package offscreen implements a headless, scriptable driver. Windows
// exist only in memory, and native events are injected by calling the
// Inject methods from any goroutine; they are delivered in order from
// within [Driver.WaitEvents]. It is used for tests and for running
// without a display.
package offscreen

import (
	"slices"
	"time"

	"cogentcore.org/glazier/config"
	"cogentcore.org/glazier/events"
	"cogentcore.org/glazier/geom"
	"cogentcore.org/glazier/system"
)

// Name is the name the driver is registered under.
const Name = "offscreen"

func init() {
	system.RegisterDriver(Name, func(cfg *config.Config) (system.Driver, error) {
		return New(Options{}), nil
	})
}

// Options configure the driver.
type Options struct {

	// InitErr, if set, is returned by Init.
	InitErr error

	// Unsupported are the names of the window options Validate rejects
	// when they differ from their defaults, such as "Transparent".
	Unsupported []string

	// Scale is the scale of new windows; the zero value is 1.
	Scale geom.Scale

	// RefreshInterval is the time between frames; the default is 60 Hz.
	RefreshInterval time.Duration

	// Locale is the reported platform locale.
	Locale string

	// Screens are the reported monitors; the default is one 1920x1080
	// monitor at Scale.
	Screens []system.Monitor

	// PickFile chooses the result of a file dialog; without it every
	// dialog is cancelled.
	PickFile func(save bool, opts system.FileDialogOptions) *system.FileInfo
}

// Driver is the offscreen [system.Driver].
type Driver struct {
	opts   Options
	events *events.Queue[func()]
	wake   chan struct{}
	app    system.AppSink
	clip   system.MemClipboard

	windows     []*Window
	override    float64
	initialized bool
	terminated  bool
}

var (
	_ system.Driver         = &Driver{}
	_ system.ScaleOverrider = &Driver{}
)

// New returns a new offscreen driver.
func New(opts Options) *Driver {
	if opts.RefreshInterval <= 0 {
		opts.RefreshInterval = time.Second / 60
	}
	return &Driver{
		opts:   opts,
		events: events.NewQueue[func()](),
		wake:   make(chan struct{}, 1),
	}
}

func (d *Driver) Name() string { return Name }

func (d *Driver) Init(app system.AppSink) error {
	if d.opts.InitErr != nil {
		return d.opts.InitErr
	}
	d.app = app
	d.initialized = true
	return nil
}

func (d *Driver) Terminate() {
	d.terminated = true
	d.events.Drain(func(func()) {})
}

// Initialized returns whether Init succeeded.
func (d *Driver) Initialized() bool { return d.initialized }

// Terminated returns whether Terminate has been called.
func (d *Driver) Terminated() bool { return d.terminated }

func (d *Driver) Validate(opts *system.WindowOptions) error {
	def := system.DefaultWindowOptions()
	for _, name := range d.opts.Unsupported {
		var set bool
		switch name {
		case "Transparent":
			set = opts.Transparent
		case "AlwaysOnTop":
			set = opts.AlwaysOnTop
		case "Menu":
			set = opts.Menu != nil
		case "Position":
			set = opts.HasPosition
		case "Level":
			set = opts.Level != def.Level
		case "WindowState":
			set = opts.State != def.State
		case "ShowTitlebar":
			set = opts.ShowTitlebar != def.ShowTitlebar
		case "Resizable":
			set = opts.Resizable != def.Resizable
		case "MinSize":
			set = !opts.MinSize.IsEmpty()
		}
		if set {
			return system.Unsupported(name, Name)
		}
	}
	return nil
}

func (d *Driver) NewWindow(opts *system.WindowOptions, sink system.Sink) (system.NativeWindow, error) {
	w := &Window{
		d:         d,
		sink:      sink,
		title:     opts.Title,
		size:      opts.Size,
		minSize:   opts.MinSize,
		display:   d.opts.Scale,
		scale:     d.scaleFor(d.opts.Scale),
		resizable: opts.Resizable,
		state:     opts.State,
		menu:      opts.Menu,
	}
	if opts.HasPosition {
		w.pos = opts.Position
	}
	d.windows = append(d.windows, w)
	return w, nil
}

// SetScaleOverride makes windows use scale instead of the display
// scale, keeping their size in px.
func (d *Driver) SetScaleOverride(scale float64) {
	d.override = scale
	for _, w := range d.windows {
		px := w.size.ToPx(w.scale)
		w.scale = d.scaleFor(w.display)
		w.size = px.ToDp(w.scale)
	}
}

// scaleFor returns the window scale on a display with the given scale.
func (d *Driver) scaleFor(display geom.Scale) geom.Scale {
	if d.override > 0 {
		return geom.UniformScale(d.override)
	}
	return geom.NewScale(display.X(), display.Y())
}

// WaitEvents delivers the queued native events, first waiting for up to
// timeout for one if there are none.
func (d *Driver) WaitEvents(timeout time.Duration) {
	if d.events.Len() == 0 && timeout != 0 {
		var tc <-chan time.Time
		if timeout > 0 {
			t := time.NewTimer(timeout)
			defer t.Stop()
			tc = t.C
		}
		select {
		case <-d.wake:
		case <-tc:
		}
	} else {
		select {
		case <-d.wake:
		default:
		}
	}
	d.events.Drain(func(f func()) { f() })
}

func (d *Driver) Wake() {
	select {
	case d.wake <- struct{}{}:
	default:
	}
}

// post queues a native event. It is safe from any goroutine.
func (d *Driver) post(f func()) {
	d.events.Send(f)
	d.Wake()
}

func (d *Driver) RefreshInterval() time.Duration { return d.opts.RefreshInterval }

func (d *Driver) Clipboard() system.Clipboard { return &d.clip }

func (d *Driver) Locale() string { return d.opts.Locale }

func (d *Driver) Screens() []system.Monitor {
	if d.opts.Screens != nil {
		return slices.Clone(d.opts.Screens)
	}
	r := geom.R(0, 0, 1920, 1080)
	return []system.Monitor{{
		Name:        "offscreen",
		Primary:     true,
		Rect:        r,
		WorkRect:    r,
		Scale:       geom.NewScale(d.opts.Scale.X(), d.opts.Scale.Y()),
		RefreshRate: float64(time.Second) / float64(d.opts.RefreshInterval),
	}}
}

// Windows returns the open windows, in creation order.
func (d *Driver) Windows() []*Window {
	return slices.Clone(d.windows)
}

// InjectAppCommand queues the selection of an application menu item.
func (d *Driver) InjectAppCommand(id uint32) {
	d.post(func() {
		if d.app != nil {
			d.app.Command(id)
		}
	})
}
