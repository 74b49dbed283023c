// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"strconv"
	"sync/atomic"
)

// Tokens are process-unique identifiers minted from atomic counters.
// The zero value of every token type is invalid and is never minted.

// TimerToken identifies a timer requested with [Window.RequestTimer].
type TimerToken uint64

// IdleToken identifies an idle request made with [IdleHandle.AddIdleToken].
type IdleToken uint64

// TextFieldToken identifies a text field registered with [TextInput.AddTextField].
type TextFieldToken uint64

// FileDialogToken identifies a file dialog opened with [Window.OpenFile]
// or [Window.SaveAs].
type FileDialogToken uint64

var (
	timerCounter     atomic.Uint64
	idleCounter      atomic.Uint64
	textFieldCounter atomic.Uint64
	dialogCounter    atomic.Uint64
)

// NextTimerToken returns a new unique timer token.
func NextTimerToken() TimerToken { return TimerToken(timerCounter.Add(1)) }

// NextIdleToken returns a new unique idle token.
func NextIdleToken() IdleToken { return IdleToken(idleCounter.Add(1)) }

// NextTextFieldToken returns a new unique text field token.
func NextTextFieldToken() TextFieldToken { return TextFieldToken(textFieldCounter.Add(1)) }

// NextFileDialogToken returns a new unique file dialog token.
func NextFileDialogToken() FileDialogToken { return FileDialogToken(dialogCounter.Add(1)) }

func (t TimerToken) IsValid() bool      { return t != 0 }
func (t IdleToken) IsValid() bool       { return t != 0 }
func (t TextFieldToken) IsValid() bool  { return t != 0 }
func (t FileDialogToken) IsValid() bool { return t != 0 }

func (t TimerToken) String() string      { return "timer#" + strconv.FormatUint(uint64(t), 10) }
func (t IdleToken) String() string       { return "idle#" + strconv.FormatUint(uint64(t), 10) }
func (t TextFieldToken) String() string  { return "field#" + strconv.FormatUint(uint64(t), 10) }
func (t FileDialogToken) String() string { return "dialog#" + strconv.FormatUint(uint64(t), 10) }
