// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect(t *testing.T) {
	r := R(10, 20, 0, 0)
	assert.Equal(t, Pt(0, 0), r.Min)
	assert.Equal(t, Pt(10, 20), r.Max)
	assert.Equal(t, Sz(10, 20), r.Size())
	assert.Equal(t, 200.0, r.Area())
	assert.True(t, r.Contains(Pt(0, 0)))
	assert.False(t, r.Contains(Pt(10, 5)))

	o := R(5, 5, 15, 15)
	assert.True(t, r.Overlaps(o))
	assert.Equal(t, R(5, 5, 10, 15), r.Intersect(o))
	assert.Equal(t, R(0, 0, 15, 20), r.Union(o))
	assert.Equal(t, o, Rect{}.Union(o))

	assert.False(t, r.Overlaps(R(10, 0, 20, 20)), "touching edges do not overlap")
	assert.True(t, R(0, 0, 0, 10).IsEmpty())
	assert.Equal(t, 0.0, R(0, 0, 0, 10).Area())
}

func TestRectSubtract(t *testing.T) {
	r := R(0, 0, 10, 10)
	assert.Equal(t, []Rect{r}, r.Subtract(R(20, 20, 30, 30)))
	assert.Empty(t, r.Subtract(R(-1, -1, 11, 11)))

	parts := r.Subtract(R(2, 2, 8, 8))
	assert.Len(t, parts, 4)
	area := 0.0
	for i, p := range parts {
		area += p.Area()
		assert.False(t, p.Overlaps(R(2, 2, 8, 8)))
		for _, q := range parts[i+1:] {
			assert.False(t, p.Overlaps(q))
		}
	}
	assert.Equal(t, 100.0-36.0, area)
}

func TestRectImage(t *testing.T) {
	r := R(0.5, 1.2, 9.1, 9.9)
	assert.Equal(t, image.Rect(0, 1, 10, 10), r.ToImage())
	assert.Equal(t, R(0, 1, 10, 10), RectFromImage(r.ToImage()))
	assert.Equal(t, R(1, 2, 9, 8), R(0, 0, 10, 10).Inset(Insets{1, 2, 1, 2}))
}

func TestSize(t *testing.T) {
	assert.True(t, Sz(0, 10).IsEmpty())
	assert.Equal(t, Sz(2, -2), Sz(1.2, -1.5).Expand())
	assert.Equal(t, Sz(10, 30), Sz(10, 20).Max(Sz(5, 30)))
	assert.Equal(t, image.Pt(800, 600), Sz(800, 600).ImagePoint())
	assert.Equal(t, R(0, 0, 4, 3), Sz(4, 3).ToRect())
}
