// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "strings"

// Region is a set of non-overlapping rects, used to describe the dirty
// (invalid) area of a window that needs to be painted. The zero value
// is an empty region ready to use. Copies of a Region are independent:
// the methods never write to storage a copy may share.
type Region struct {
	rects []Rect
}

// NewRegion returns a region covering the union of the given rects.
func NewRegion(rects ...Rect) Region {
	var r Region
	for _, rect := range rects {
		r.AddRect(rect)
	}
	return r
}

// AddRect adds rect to the region. Only the parts of rect that are not
// already covered are stored, so the rects of the region stay disjoint.
func (r *Region) AddRect(rect Rect) {
	if rect.IsEmpty() {
		return
	}
	pieces := []Rect{rect}
	for _, have := range r.rects {
		var next []Rect
		for _, p := range pieces {
			next = append(next, p.Subtract(have)...)
		}
		pieces = next
		if len(pieces) == 0 {
			return
		}
	}
	n := len(r.rects)
	r.rects = append(r.rects[:n:n], pieces...)
}

// Union adds all of the rects of o to the region.
func (r *Region) Union(o *Region) {
	for _, rect := range o.rects {
		r.AddRect(rect)
	}
}

// SetRect replaces the contents of the region with rect.
func (r *Region) SetRect(rect Rect) {
	r.Clear()
	r.AddRect(rect)
}

// Clear empties the region.
func (r *Region) Clear() {
	r.rects = nil
}

// Rects returns the disjoint rects making up the region. The returned
// slice must not be modified.
func (r *Region) Rects() []Rect {
	return r.rects
}

// IsEmpty returns whether the region covers no area.
func (r *Region) IsEmpty() bool {
	return len(r.rects) == 0
}

// Area returns the total area covered by the region.
func (r *Region) Area() float64 {
	a := 0.0
	for _, rect := range r.rects {
		a += rect.Area()
	}
	return a
}

// BoundingBox returns the smallest rect containing the whole region.
func (r *Region) BoundingBox() Rect {
	var bb Rect
	for _, rect := range r.rects {
		bb = bb.Union(rect)
	}
	return bb
}

// Contains returns whether p lies inside the region.
func (r *Region) Contains(p Point) bool {
	for _, rect := range r.rects {
		if rect.Contains(p) {
			return true
		}
	}
	return false
}

// ContainsRect returns whether every point of rect lies inside the region.
func (r *Region) ContainsRect(rect Rect) bool {
	rest := []Rect{rect}
	for _, have := range r.rects {
		var next []Rect
		for _, p := range rest {
			next = append(next, p.Subtract(have)...)
		}
		rest = next
	}
	return len(rest) == 0
}

// Intersects returns whether rect shares any area with the region.
func (r *Region) Intersects(rect Rect) bool {
	for _, have := range r.rects {
		if have.Overlaps(rect) {
			return true
		}
	}
	return false
}

// Intersect clips the region to rect.
func (r *Region) Intersect(rect Rect) {
	var res []Rect
	for _, have := range r.rects {
		if in := have.Intersect(rect); !in.IsEmpty() {
			res = append(res, in)
		}
	}
	r.rects = res
}

// Translate moves every rect of the region by v.
func (r *Region) Translate(v Vec2) {
	res := make([]Rect, len(r.rects))
	for i, rect := range r.rects {
		res[i] = rect.Translate(v)
	}
	r.rects = res
}

// Clone returns an independent copy of the region.
func (r *Region) Clone() Region {
	return Region{rects: append([]Rect(nil), r.rects...)}
}

// ToPx returns a copy of the region converted to physical pixels.
func (r *Region) ToPx(s Scale) Region {
	res := Region{rects: make([]Rect, len(r.rects))}
	for i, rect := range r.rects {
		res.rects[i] = rect.ToPx(s)
	}
	return res
}

func (r *Region) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, rect := range r.rects {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(rect.String())
	}
	b.WriteString("}")
	return b.String()
}
