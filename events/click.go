// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"math"
	"time"

	"cogentcore.org/glazier/geom"
)

// ClickCounter computes [MouseEvent.Count] for platforms that do not
// report it: consecutive presses of the same button close together in
// time and space form a multi-click.
type ClickCounter struct {

	// Interval is the longest time between presses of a multi-click.
	Interval time.Duration

	// Slop is how far the mouse may move between presses, in dp.
	Slop float64

	last   time.Time
	pos    geom.Point
	button Buttons
	count  uint8
}

// NewClickCounter returns a counter with the usual desktop thresholds.
func NewClickCounter() *ClickCounter {
	return &ClickCounter{Interval: 500 * time.Millisecond, Slop: 4}
}

// Press records a press of b at pos and returns its click count.
func (c *ClickCounter) Press(b Buttons, pos geom.Point, now time.Time) uint8 {
	d := pos.Sub(c.pos)
	if b == c.button && c.count > 0 && c.count < math.MaxUint8 &&
		now.Sub(c.last) <= c.Interval &&
		math.Abs(d.X) <= c.Slop && math.Abs(d.Y) <= c.Slop {
		c.count++
	} else {
		c.count = 1
	}
	c.last, c.pos, c.button = now, pos, b
	return c.count
}
