// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"fmt"

	"cogentcore.org/glazier/base/errors"
)

var (
	// ErrAlreadyRunning is returned by [NewApp] while another [App] is live.
	ErrAlreadyRunning = errors.New("system: an application is already running")

	// ErrWindowGone is returned by window operations after the window
	// has been destroyed.
	ErrWindowGone = errors.New("system: window has been destroyed")

	// ErrQuitting is returned by [WindowBuilder.Build] once the
	// application has been asked to quit.
	ErrQuitting = errors.New("system: application is quitting")

	// ErrUnsupported is returned for operations the active driver does
	// not implement.
	ErrUnsupported = errors.ErrUnsupported
)

// InitError is a failure to set up process-wide state, such as a
// missing display connection. An application that gets one must not
// proceed to run.
type InitError struct {
	// Driver is the name of the driver that failed, if one was chosen.
	Driver string
	Err    error
}

func (e *InitError) Error() string {
	if e.Driver == "" {
		return fmt.Sprintf("system: init failed: %v", e.Err)
	}
	return fmt.Sprintf("system: init of driver %q failed: %v", e.Driver, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// ConfigError is a window configuration that cannot be satisfied.
// It is returned by [WindowBuilder.Build] before any native resource
// is allocated.
type ConfigError struct {
	// Option is the name of the offending builder option, such as "Size".
	Option string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("system: invalid window option %s: %s", e.Option, e.Reason)
}

// Unsupported returns a [ConfigError] for an option the driver cannot
// provide.
func Unsupported(option, driver string) *ConfigError {
	return &ConfigError{Option: option, Reason: "not supported by the " + driver + " driver"}
}

// ThreadError is the panic value of a UI-thread-only operation called
// from another thread.
type ThreadError struct {
	Op string
}

func (e *ThreadError) Error() string {
	return fmt.Sprintf("system: %s called off the UI thread", e.Op)
}
