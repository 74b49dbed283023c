// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"fmt"

	"cogentcore.org/glazier/geom"
)

// Monitor describes one display. Rects are in the virtual screen space,
// in dp of the monitor's own scale.
type Monitor struct {
	Name    string
	Primary bool

	// Rect is the whole area of the monitor.
	Rect geom.Rect

	// WorkRect excludes task bars, docks and other reserved areas.
	WorkRect geom.Rect

	Scale geom.Scale

	// RefreshRate is in Hz; 0 if unknown.
	RefreshRate float64
}

func (m Monitor) String() string {
	return fmt.Sprintf("%s %v scale %v primary %v", m.Name, m.Rect, m.Scale, m.Primary)
}

// PrimaryMonitor returns the primary monitor in ms, or the first one
// if none is marked primary.
func PrimaryMonitor(ms []Monitor) (Monitor, bool) {
	for _, m := range ms {
		if m.Primary {
			return m, true
		}
	}
	if len(ms) > 0 {
		return ms[0], true
	}
	return Monitor{}, false
}

// VirtualScreenRect returns the bounding box of all monitors.
func VirtualScreenRect(ms []Monitor) geom.Rect {
	var r geom.Rect
	for _, m := range ms {
		r = r.Union(m.Rect)
	}
	return r
}
