// Copyright 2023 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command basic opens a window that logs its events. Escape closes it,
// and a click starts a one second timer.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"cogentcore.org/glazier/base/logx"
	"cogentcore.org/glazier/config"
	"cogentcore.org/glazier/events"
	"cogentcore.org/glazier/events/key"
	"cogentcore.org/glazier/geom"
	"cogentcore.org/glazier/system"
	_ "cogentcore.org/glazier/system/driver"
)

func init() {
	// native toolkits want the main thread
	runtime.LockOSThread()
}

type handler struct {
	system.HandlerBase
	timer system.TimerToken
}

func (h *handler) Size(size geom.Size) {
	slog.Info("size", "size", size)
}

func (h *handler) Scale(scale geom.Scale) {
	slog.Info("scale", "scale", scale)
}

func (h *handler) Paint(invalid *geom.Region) {
	slog.Debug("paint", "bounds", invalid.BoundingBox())
}

func (h *handler) KeyDown(ev *key.Event) bool {
	slog.Info("key down", "key", ev.Key, "code", ev.Code, "mods", ev.Mods, "repeat", ev.Repeat)
	if ev.Key == key.Named(key.Escape) {
		h.RequestClose()
		return true
	}
	return false
}

func (h *handler) MouseDown(ev *events.MouseEvent) {
	slog.Info("mouse down", "pos", ev.Pos, "button", ev.Button, "count", ev.Count)
	h.timer = h.Window().RequestTimer(time.Second)
}

func (h *handler) Timer(tok system.TimerToken) {
	if tok == h.timer {
		slog.Info("timer fired")
		h.Window().Invalidate()
	}
}

func (h *handler) Destroy() {
	slog.Info("window destroyed")
}

func main() {
	vv := flag.Bool("vv", false, "log debug messages")
	v := flag.Bool("v", false, "log info messages")
	q := flag.Bool("q", false, "only log errors")
	cfgPath := flag.String("config", "", "path of the config file")
	backend := flag.String("backend", "", "name of the driver to use")
	flag.Parse()

	logx.UserLevel = logx.LevelFromFlags(*vv, *v, *q)
	logx.SetDefaultLogger()

	if err := run(*cfgPath, *backend); err != nil {
		fmt.Fprintln(os.Stderr, "basic:", err)
		os.Exit(1)
	}
}

func run(cfgPath, backend string) error {
	if cfgPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if backend != "" {
		cfg.Backend = backend
	}

	app, err := system.NewApp(system.WithConfig(cfg))
	if err != nil {
		return err
	}
	slog.Info("using driver", "name", app.DriverName())

	w, err := app.NewWindowBuilder().
		SetHandler(&handler{}).
		SetTitle("Hello, glazier").
		SetSize(geom.Sz(640, 480)).
		SetMinSize(geom.Sz(200, 150)).
		Build()
	if err != nil {
		return err
	}
	w.Show()
	app.Run()
	return nil
}
