// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScale(t *testing.T) {
	s := NewScale(2, 1.5)
	assert.Equal(t, 2.0, s.X())
	assert.Equal(t, 1.5, s.Y())
	assert.Equal(t, Pt(20, 15), Pt(10, 10).ToPx(s))
	assert.Equal(t, Pt(10, 10), Pt(20, 15).ToDp(s))
	assert.Equal(t, R(0, 0, 200, 150), R(0, 0, 100, 100).ToPx(s))
	assert.Equal(t, Insets{2, 3, 4, 6}, Insets{1, 2, 2, 4}.ToPx(s))
	assert.Equal(t, V(-2, 3), V(-1, 2).ToPx(s))

	assert.Equal(t, DefaultScale, NewScale(0, -1))
	assert.Equal(t, 1.0, Scale{}.X(), "zero value behaves as 1")
	assert.Equal(t, UniformScale(1.5), ScaleFromDPI(144, 144))
}

func TestScaledArea(t *testing.T) {
	s := UniformScale(1.5)
	a := ScaledAreaFromDp(Sz(101, 33), s)
	assert.Equal(t, Sz(101, 33), a.SizeDp())
	assert.Equal(t, Sz(152, 50), a.SizePx())

	b := ScaledAreaFromPx(Sz(300, 150), s)
	assert.Equal(t, Sz(200, 100), b.SizeDp())

	c := b.Rescale(UniformScale(3))
	assert.Equal(t, Sz(300, 150), c.SizePx())
	assert.Equal(t, Sz(100, 50), c.SizeDp())
}
