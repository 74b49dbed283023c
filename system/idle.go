// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"log/slog"
	"sync/atomic"

	"cogentcore.org/glazier/events"
)

type idleItem struct {
	fn  func(WinHandler)
	tok IdleToken
}

// idleQueue is the queue of idle work of one window: many producers on
// any goroutine, one consumer on the UI thread.
type idleQueue struct {
	q      *events.Queue[idleItem]
	closed atomic.Bool
	wake   func()
}

func newIdleQueue(wake func()) *idleQueue {
	return &idleQueue{q: events.NewQueue[idleItem](), wake: wake}
}

func (iq *idleQueue) add(it idleItem) {
	if iq.closed.Load() {
		slog.Debug("system: idle work dropped for destroyed window")
		return
	}
	iq.q.Send(it)
	iq.wake()
}

// close drops all pending work; later additions are dropped too.
func (iq *idleQueue) close() {
	iq.closed.Store(true)
	iq.q.Drain(func(idleItem) {})
}

// IdleHandle schedules work on the UI thread of a window from any
// goroutine. It is a small value; copies refer to the same window.
// Work added after the window is destroyed is silently dropped.
// Work added from different goroutines runs in no particular order
// relative to each other; work from one goroutine runs in order.
type IdleHandle struct {
	q *idleQueue
}

// AddIdleCallback schedules fn to run once on the UI thread with the
// window's handler. It never blocks.
func (h IdleHandle) AddIdleCallback(fn func(WinHandler)) {
	if h.q == nil || fn == nil {
		return
	}
	h.q.add(idleItem{fn: fn})
}

// AddIdleToken schedules a call of the handler's Idle method with tok.
// It never blocks.
func (h IdleHandle) AddIdleToken(tok IdleToken) {
	if h.q == nil {
		return
	}
	h.q.add(idleItem{tok: tok})
}

// IsValid returns whether the window still accepts idle work.
// The answer may be stale by the time it is used.
func (h IdleHandle) IsValid() bool {
	return h.q != nil && !h.q.closed.Load()
}
