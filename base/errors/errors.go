// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a set of error functions that are helpful
// for dealing with errors in glazier. It re-exports the standard
// library helpers so that it can be imported in place of [errors].
package errors

import (
	"errors"
	"log/slog"
	"runtime"
	"strconv"
)

// Re-exports of the standard library functions, so that this package
// can be imported under the name errors.
var (
	New    = errors.New
	Is     = errors.Is
	As     = errors.As
	Join   = errors.Join
	Unwrap = errors.Unwrap
)

// ErrUnsupported is returned by operations that the active platform
// does not support.
var ErrUnsupported = errors.ErrUnsupported

// Log takes the given error and logs it if it is non-nil,
// with the caller that produced it. The intended usage is:
//
//	errors.Log(MyFunc(v))
//	// or
//	return errors.Log(MyFunc(v))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return err
}

// Log1 takes the given value and error and returns the value,
// logging the error if it is non-nil. The intended usage is:
//
//	a := errors.Log1(MyFunc(v))
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return v
}

// Must takes the given error and panics if it is non-nil.
// It should only be used for errors that indicate a programming bug.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 takes the given value and error and returns the value,
// panicking if the error is non-nil.
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Ignore1 returns the given value, ignoring the error.
// It should only be used when the error is known to be harmless.
func Ignore1[T any](v T, err error) T {
	return v
}

// CallerInfo returns the file name and line of the function that
// called the function calling CallerInfo, such as the caller of [Log].
func CallerInfo() string {
	pc, file, line, _ := runtime.Caller(2)
	name := "?"
	if fn := runtime.FuncForPC(pc); fn != nil {
		name = fn.Name()
	}
	return name + " " + file + ":" + strconv.Itoa(line)
}
