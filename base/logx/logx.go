// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the logging setup used by glazier programs:
// a user-selected verbosity level and a [slog] handler that colors
// levels when writing to a terminal.
package logx

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. The default depends on
// the debug and release build tags.
var UserLevel = defaultUserLevel

// UseColor is whether to color log levels when the output supports it.
var UseColor = true

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order, so, for example, if both
// vv and q are specified, it will still return [slog.LevelDebug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// LevelFromString parses a level name such as "debug" or "warn",
// returning [UserLevel] for an empty or unknown name.
func LevelFromString(s string) slog.Level {
	var l slog.Level
	if s == "" || l.UnmarshalText([]byte(strings.ToUpper(s))) != nil {
		return UserLevel
	}
	return l
}

// NewHandler returns a text handler writing to w at [UserLevel], with
// colored levels if [UseColor] is set and w is a color terminal.
func NewHandler(w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: UserLevel}
	out := termenv.NewOutput(w)
	if UseColor && out.Profile != termenv.Ascii {
		opts.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey && len(groups) == 0 {
				if l, ok := a.Value.Any().(slog.Level); ok {
					a.Value = slog.StringValue(colorLevel(out, l))
				}
			}
			return a
		}
	}
	return slog.NewTextHandler(w, opts)
}

// SetDefaultLogger sets the default [slog] logger to one made by
// [NewHandler] writing to stderr.
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

func colorLevel(out *termenv.Output, l slog.Level) string {
	st := out.String(l.String())
	switch {
	case l >= slog.LevelError:
		st = st.Foreground(out.Color("1")).Bold()
	case l >= slog.LevelWarn:
		st = st.Foreground(out.Color("3"))
	case l >= slog.LevelInfo:
		st = st.Foreground(out.Color("4"))
	default:
		st = st.Faint()
	}
	return st.String()
}
