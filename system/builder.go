// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"fmt"
	"log/slog"

	"cogentcore.org/glazier/geom"
)

// WindowBuilder accumulates the configuration of a new window.
// Create one with [App.NewWindowBuilder]; the setters return the
// builder for chaining.
type WindowBuilder struct {
	app     *App
	handler WinHandler
	opts    WindowOptions
}

// NewWindowBuilder returns a builder with the default options.
func (a *App) NewWindowBuilder() *WindowBuilder {
	return &WindowBuilder{app: a, opts: DefaultWindowOptions()}
}

// SetHandler sets the handler of the window. It is required.
func (b *WindowBuilder) SetHandler(h WinHandler) *WindowBuilder {
	b.handler = h
	return b
}

func (b *WindowBuilder) SetTitle(title string) *WindowBuilder {
	b.opts.Title = title
	return b
}

// SetSize sets the initial content size, in dp.
func (b *WindowBuilder) SetSize(size geom.Size) *WindowBuilder {
	b.opts.Size = size
	return b
}

// SetMinSize sets the minimum content size, in dp.
func (b *WindowBuilder) SetMinSize(size geom.Size) *WindowBuilder {
	b.opts.MinSize = size
	return b
}

// SetPosition sets the initial position on screen, in dp. Without it
// the platform places the window.
func (b *WindowBuilder) SetPosition(pos geom.Point) *WindowBuilder {
	b.opts.Position = pos
	b.opts.HasPosition = true
	return b
}

func (b *WindowBuilder) SetResizable(resizable bool) *WindowBuilder {
	b.opts.Resizable = resizable
	return b
}

func (b *WindowBuilder) SetShowTitlebar(show bool) *WindowBuilder {
	b.opts.ShowTitlebar = show
	return b
}

func (b *WindowBuilder) SetTransparent(transparent bool) *WindowBuilder {
	b.opts.Transparent = transparent
	return b
}

func (b *WindowBuilder) SetAlwaysOnTop(onTop bool) *WindowBuilder {
	b.opts.AlwaysOnTop = onTop
	return b
}

func (b *WindowBuilder) SetMenu(menu *Menu) *WindowBuilder {
	b.opts.Menu = menu
	return b
}

func (b *WindowBuilder) SetLevel(level WindowLevels) *WindowBuilder {
	b.opts.Level = level
	return b
}

func (b *WindowBuilder) SetWindowState(state WindowStates) *WindowBuilder {
	b.opts.State = state
	return b
}

// Options returns a copy of the accumulated options.
func (b *WindowBuilder) Options() WindowOptions {
	return b.opts
}

// Build creates the window. It validates the options, first for
// consistency and then against the driver, returning a [*ConfigError]
// naming the offending option before anything native is allocated.
// The handler's Connect is called before Build returns, followed by
// Scale and Size with the initial values. The window starts hidden;
// call [Window.Show] to show it.
func (b *WindowBuilder) Build() (*Window, error) {
	a := b.app
	a.checkThread("WindowBuilder.Build")
	if a.quitting() {
		return nil, ErrQuitting
	}
	if b.handler == nil {
		return nil, &ConfigError{Option: "Handler", Reason: "a window handler is required"}
	}
	opts := b.opts
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if err := a.driver.Validate(&opts); err != nil {
		return nil, err
	}

	w := &Window{
		app:     a,
		handler: b.handler,
		opts:    opts,
		menu:    opts.Menu,
		idle:    newIdleQueue(a.driver.Wake),
	}
	w.text.w = w
	nw, err := a.driver.NewWindow(&opts, windowSink{w})
	if err != nil {
		return nil, fmt.Errorf("system: creating %s window: %w", a.driverName, err)
	}
	w.native = nw
	w.size = opts.Size
	if sz := nw.Size(); !sz.IsEmpty() {
		w.size = sz
	}
	w.scale = nativeScale(nw.Scale())
	w.pos = nw.Position()
	a.windows = append(a.windows, w)
	slog.Debug("system: window built", "title", opts.Title, "size", w.size, "scale", w.scale)

	w.handler.Connect(w)
	if w.isLive() {
		w.handler.Scale(w.scale)
	}
	if w.isLive() {
		w.handler.Size(w.size)
	}
	return w, nil
}

// nativeScale normalizes a scale reported by the driver.
func nativeScale(s geom.Scale) geom.Scale {
	return geom.NewScale(s.X(), s.Y())
}

// applyScaleOverride hands the configured scale override to the driver.
func (a *App) applyScaleOverride() {
	so, ok := a.driver.(ScaleOverrider)
	if !ok {
		if a.cfg.ScaleOverride > 0 {
			slog.Info("system: the driver does not support a scale override", "driver", a.driverName)
		}
		return
	}
	so.SetScaleOverride(a.cfg.ScaleOverride)
}
