// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"container/heap"
	"time"
)

type timerEntry struct {
	deadline time.Time
	tok      TimerToken
	win      *Window
}

// timerHeap is a min-heap of timers by deadline, then token.
type timerHeap []timerEntry

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].deadline.Equal(h[j].deadline) {
		return h[i].tok < h[j].tok
	}
	return h[i].deadline.Before(h[j].deadline)
}

func (h timerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *timerHeap) Push(x any) { *h = append(*h, x.(timerEntry)) }

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = timerEntry{}
	*h = old[:n-1]
	return e
}

func (h *timerHeap) add(e timerEntry) { heap.Push(h, e) }

// popDue removes and returns the timers due at now, in firing order.
func (h *timerHeap) popDue(now time.Time) []timerEntry {
	var due []timerEntry
	for h.Len() > 0 && !(*h)[0].deadline.After(now) {
		due = append(due, heap.Pop(h).(timerEntry))
	}
	return due
}

// next returns the earliest deadline.
func (h timerHeap) next() (time.Time, bool) {
	if len(h) == 0 {
		return time.Time{}, false
	}
	return h[0].deadline, true
}
