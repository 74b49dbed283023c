// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "sync/atomic"

// Queue is a lock-free FIFO queue based on the Michael-Scott algorithm.
// Any number of goroutines may [Queue.Send] concurrently; values are
// removed with [Queue.Next] by one goroutine at a time, typically the
// UI thread. Nodes are never recycled. The zero value is not usable; create queues with [NewQueue].
type Queue[T any] struct {
	head atomic.Pointer[queueNode[T]]
	tail atomic.Pointer[queueNode[T]]
	len  atomic.Int64
}

type queueNode[T any] struct {
	next atomic.Pointer[queueNode[T]]
	v    T
}

// NewQueue returns a new empty queue.
func NewQueue[T any]() *Queue[T] {
	q := &Queue[T]{}
	sentinel := &queueNode[T]{}
	q.head.Store(sentinel)
	q.tail.Store(sentinel)
	return q
}

// Next removes and returns the value at the front of the queue.
// It returns false if the queue is empty.
func (q *Queue[T]) Next() (T, bool) {
	var zero T
	for {
		first := q.head.Load()
		last := q.tail.Load()
		next := first.next.Load()
		if first != q.head.Load() {
			continue
		}
		if first == last {
			if next == nil {
				return zero, false
			}
			q.tail.CompareAndSwap(last, next)
			continue
		}
		v := next.v
		if q.head.CompareAndSwap(first, next) {
			q.len.Add(-1)
			// next is the new sentinel; drop its reference to v
			next.v = zero
			return v, true
		}
	}
}

// Send adds v to the back of the queue.
func (q *Queue[T]) Send(v T) {
	n := &queueNode[T]{v: v}
	for {
		last := q.tail.Load()
		next := last.next.Load()
		if last != q.tail.Load() {
			continue
		}
		if next != nil {
			q.tail.CompareAndSwap(last, next)
			continue
		}
		if last.next.CompareAndSwap(nil, n) {
			q.tail.CompareAndSwap(last, n)
			q.len.Add(1)
			return
		}
	}
}

// Len returns the number of values in the queue.
func (q *Queue[T]) Len() int {
	return int(q.len.Load())
}

// Drain removes every value currently in the queue, calling f for each
// in order. Values sent while draining are left for the next call.
func (q *Queue[T]) Drain(f func(T)) int {
	n := q.Len()
	for i := 0; i < n; i++ {
		v, ok := q.Next()
		if !ok {
			return i
		}
		f(v)
	}
	return n
}
