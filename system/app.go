// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system provides the windowing and event dispatch core of
// glazier: the [App] singleton that owns the native event loop, the
// [WindowBuilder] and [Window] types, the [WinHandler] callback
// contract, and idle and timer scheduling onto the UI thread.
//
// The UI thread is the thread that called [NewApp]. Every window and
// application operation must be called on it, except [App.Quit] and the
// methods of [IdleHandle], which are safe from any goroutine. Platform
// backends implement [Driver] and register themselves with
// [RegisterDriver]; import one or more driver packages for their side
// effects to make them available.
package system

import (
	"context"
	"log/slog"
	"runtime"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"cogentcore.org/glazier/base/errors"
	"cogentcore.org/glazier/config"
	"cogentcore.org/glazier/events"
	"github.com/petermattis/goid"
)

// AppStates are the lifecycle states of an [App].
type AppStates int32

const (
	NotStarted AppStates = iota
	Running
	QuitRequested
	Terminated
)

func (s AppStates) String() string {
	switch s {
	case Running:
		return "Running"
	case QuitRequested:
		return "QuitRequested"
	case Terminated:
		return "Terminated"
	}
	return "NotStarted"
}

var (
	liveMu  sync.Mutex
	liveApp *App
)

// App is the process-wide application, owning the native event loop.
// At most one App is live at a time; it stays live until [App.Run]
// returns.
type App struct {
	cfg        *config.Config
	driver     Driver
	driverName string
	handler    AppHandler

	state atomic.Int32
	ran   bool

	// uiGoroutine is the id of the goroutine that created the app, which
	// NewApp locks to its OS thread.
	uiGoroutine int64

	// windows are the windows that have not finished destroying, in
	// creation order.
	windows []*Window

	// destroys are the windows closed since the last loop iteration.
	destroys []*Window

	timers timerHeap

	// mainQueue holds functions posted from other goroutines.
	mainQueue *events.Queue[func()]

	cancelWatch context.CancelFunc
}

type appOptions struct {
	cfg     *config.Config
	driver  Driver
	handler AppHandler
}

// AppOption is an option of [NewApp].
type AppOption func(o *appOptions)

// WithConfig sets the configuration. Without it, [config.Default]
// overlaid with the environment is used.
func WithConfig(cfg *config.Config) AppOption {
	return func(o *appOptions) { o.cfg = cfg }
}

// WithDriver uses d instead of a registered driver.
func WithDriver(d Driver) AppOption {
	return func(o *appOptions) { o.driver = d }
}

// WithAppHandler sets the handler of application-level events.
func WithAppHandler(h AppHandler) AppOption {
	return func(o *appOptions) { o.handler = h }
}

// NewApp initializes the application on the calling goroutine, which is
// locked to its OS thread and becomes the UI thread. It fails with
// [ErrAlreadyRunning] while another App is live, and with an
// [*InitError] if no driver can be set up; nothing is left allocated
// on failure.
func NewApp(opts ...AppOption) (*App, error) {
	o := appOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	cfg := o.cfg
	if cfg == nil {
		cfg = config.Default()
		errors.Log(cfg.ApplyEnv())
	}
	cfg = cfg.Clone()
	if err := cfg.Validate(); err != nil {
		return nil, &InitError{Driver: cfg.Backend, Err: err}
	}

	liveMu.Lock()
	defer liveMu.Unlock()
	if liveApp != nil {
		return nil, ErrAlreadyRunning
	}

	d := o.driver
	var name string
	if d == nil {
		var err error
		name, d, err = newDriver(cfg)
		if err != nil {
			return nil, &InitError{Driver: name, Err: err}
		}
	} else {
		name = d.Name()
	}
	a := &App{
		cfg:        cfg,
		driver:     d,
		driverName: name,
		handler:    o.handler,
		mainQueue:  events.NewQueue[func()](),
	}
	runtime.LockOSThread()
	if err := d.Init(appSink{a}); err != nil {
		runtime.UnlockOSThread()
		return nil, &InitError{Driver: name, Err: err}
	}
	a.uiGoroutine = goid.Get()
	a.applyScaleOverride()
	liveApp = a
	slog.Debug("system: app created", "driver", name)
	return a, nil
}

// State returns the lifecycle state. It is safe from any goroutine.
func (a *App) State() AppStates {
	return AppStates(a.state.Load())
}

func (a *App) quitting() bool {
	s := a.State()
	return s == QuitRequested || s == Terminated
}

// IsUIThread returns whether the caller is the goroutine that created
// the app, which is the only one running on the UI thread.
func (a *App) IsUIThread() bool {
	return goid.Get() == a.uiGoroutine
}

// checkThread panics if called off the UI thread. Once the app has
// terminated there is no UI thread any more and every thread passes.
func (a *App) checkThread(op string) {
	if a.State() != Terminated && !a.IsUIThread() {
		panic(&ThreadError{Op: op})
	}
}

// DriverName returns the name of the driver in use.
func (a *App) DriverName() string {
	return a.driverName
}

// Config returns a copy of the current configuration.
func (a *App) Config() *config.Config {
	a.checkThread("App.Config")
	return a.cfg.Clone()
}

// Clipboard returns the system clipboard.
func (a *App) Clipboard() Clipboard {
	a.checkThread("App.Clipboard")
	return a.driver.Clipboard()
}

// Screens returns the connected monitors.
func (a *App) Screens() []Monitor {
	a.checkThread("App.Screens")
	return a.driver.Screens()
}

// Windows returns the live windows, in creation order.
func (a *App) Windows() []*Window {
	a.checkThread("App.Windows")
	return slices.DeleteFunc(slices.Clone(a.windows), func(w *Window) bool { return !w.isLive() })
}

// Quit asks the event loop to stop. It may be called from any
// goroutine, any number of times, including before [App.Run] and from
// within a handler callback. No further events are dispatched once the
// current callback returns.
func (a *App) Quit() {
	for {
		s := a.state.Load()
		if s == int32(QuitRequested) || s == int32(Terminated) {
			return
		}
		if a.state.CompareAndSwap(s, int32(QuitRequested)) {
			break
		}
	}
	slog.Debug("system: quit requested")
	a.driver.Wake()
}

// runOnMain runs f on the UI thread at the next loop iteration.
// It is safe from any goroutine.
func (a *App) runOnMain(f func()) {
	if a.quitting() {
		return
	}
	a.mainQueue.Send(f)
	a.driver.Wake()
}

// Run runs the event loop on the UI thread until [App.Quit] is called
// or, if the configuration says so, the last window is destroyed.
// Before returning it destroys the remaining windows, terminates the
// driver and releases the process-wide application slot.
func (a *App) Run() {
	a.checkThread("App.Run")
	if a.ran {
		slog.Warn("system: App.Run called more than once")
		return
	}
	a.ran = true
	a.state.CompareAndSwap(int32(NotStarted), int32(Running))
	slog.Debug("system: run loop started", "driver", a.driverName)
	for a.State() == Running {
		a.driver.WaitEvents(a.timeout())
		if a.quitting() {
			break
		}
		a.mainQueue.Drain(a.runPosted)
		a.fireTimers()
		a.runIdle()
		a.processDestroys()
		a.paint()
	}
	a.shutdown()
}

func (a *App) runPosted(f func()) {
	if !a.quitting() {
		f()
	}
}

// timeout returns how long the next WaitEvents may block.
func (a *App) timeout() time.Duration {
	if a.mainQueue.Len() > 0 || len(a.destroys) > 0 {
		return 0
	}
	next, ok := a.timers.next()
	frame := a.frameInterval()
	for _, w := range a.windows {
		if w.idle.q.Len() > 0 {
			return 0
		}
		if d, need := w.paintDeadline(frame); need && (!ok || d.Before(next)) {
			next, ok = d, true
		}
	}
	if !ok {
		return -1
	}
	return max(time.Until(next), 0)
}

func (a *App) frameInterval() time.Duration {
	return a.cfg.FrameInterval(a.driver.RefreshInterval())
}

func (a *App) fireTimers() {
	for _, t := range a.timers.popDue(time.Now()) {
		if a.quitting() {
			return
		}
		if t.win.isLive() {
			t.win.handler.Timer(t.tok)
		}
	}
}

func (a *App) runIdle() {
	for _, w := range slices.Clone(a.windows) {
		w.drainIdle()
	}
}

func (a *App) processDestroys() {
	if len(a.destroys) == 0 {
		return
	}
	for len(a.destroys) > 0 {
		w := a.destroys[0]
		a.destroys = a.destroys[1:]
		a.finishDestroy(w)
	}
	if a.cfg.QuitOnLastWindowClosed && len(a.windows) == 0 {
		slog.Debug("system: last window closed")
		a.Quit()
	}
}

// finishDestroy releases the native window and sends the final Destroy.
func (a *App) finishDestroy(w *Window) {
	if w.state == windowDestroyed {
		return
	}
	w.state = windowDestroyed
	w.idle.close()
	if !w.nativeGone {
		w.native.Close()
	}
	a.windows = slices.DeleteFunc(a.windows, func(x *Window) bool { return x == w })
	slog.Debug("system: window destroyed", "title", w.opts.Title)
	w.handler.Destroy()
}

func (a *App) paint() {
	now := time.Now()
	frame := a.frameInterval()
	for _, w := range slices.Clone(a.windows) {
		if a.quitting() {
			return
		}
		if d, need := w.paintDeadline(frame); need && !now.Before(d) {
			w.paint(now)
		}
	}
}

func (a *App) shutdown() {
	for len(a.windows) > 0 {
		a.finishDestroy(a.windows[0])
	}
	a.destroys = nil
	a.timers = nil
	a.mainQueue.Drain(func(func()) {})
	if a.cancelWatch != nil {
		a.cancelWatch()
	}
	a.driver.Terminate()
	a.state.Store(int32(Terminated))
	liveMu.Lock()
	if liveApp == a {
		liveApp = nil
	}
	liveMu.Unlock()
	runtime.UnlockOSThread()
	slog.Debug("system: app terminated")
}

// WatchConfig reloads the configuration file at path whenever it
// changes, until Run returns. A reloaded scale override is handed to
// the driver, after which every window reports its new scale and size.
// The frame rate takes effect at the next paint.
// The backend is chosen once and is not changed by a reload.
func (a *App) WatchConfig(path string) error {
	a.checkThread("App.WatchConfig")
	ctx, cancel := context.WithCancel(context.Background())
	if err := config.Watch(ctx, path, func(c *config.Config) {
		a.runOnMain(func() { a.applyConfig(c) })
	}); err != nil {
		cancel()
		return err
	}
	if a.cancelWatch != nil {
		a.cancelWatch()
	}
	a.cancelWatch = cancel
	return nil
}

// applyConfig replaces the configuration, keeping the backend.
func (a *App) applyConfig(c *config.Config) {
	c = c.Clone()
	if c.Backend != a.cfg.Backend {
		slog.Info("system: backend change takes effect on restart", "backend", c.Backend)
		c.Backend = a.cfg.Backend
	}
	changed := c.ScaleOverride != a.cfg.ScaleOverride
	a.cfg = c
	if !changed {
		return
	}
	a.applyScaleOverride()
	for _, w := range slices.Clone(a.windows) {
		if w.isLive() {
			w.syncNative()
		}
	}
}

// appSink routes application-level native events.
type appSink struct {
	a *App
}

func (s appSink) Command(id uint32) {
	if s.a.quitting() || s.a.handler == nil {
		return
	}
	s.a.handler.Command(id)
}
