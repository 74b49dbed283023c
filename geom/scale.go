// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "fmt"

// BaselineDPI is the screen DPI that corresponds to a scale of 1.
const BaselineDPI = 96.0

// Scale is the ratio between physical pixels (px) and device-independent
// pixels (dp) along each axis. It is an immutable value; a window whose
// scale changes receives a new Scale.
type Scale struct {
	x, y float64
}

// DefaultScale is the scale of a standard-density display.
var DefaultScale = Scale{1, 1}

// NewScale returns the scale with the given horizontal and vertical
// factors. Non-positive factors are replaced by 1.
func NewScale(x, y float64) Scale {
	if x <= 0 {
		x = 1
	}
	if y <= 0 {
		y = 1
	}
	return Scale{x, y}
}

// UniformScale returns a scale with the same factor on both axes.
func UniformScale(v float64) Scale {
	return NewScale(v, v)
}

// ScaleFromDPI returns the scale corresponding to the given dots per
// inch on each axis, relative to [BaselineDPI].
func ScaleFromDPI(xdpi, ydpi float64) Scale {
	return NewScale(xdpi/BaselineDPI, ydpi/BaselineDPI)
}

// X returns the horizontal scale factor.
func (s Scale) X() float64 {
	if s.x == 0 {
		return 1
	}
	return s.x
}

// Y returns the vertical scale factor.
func (s Scale) Y() float64 {
	if s.y == 0 {
		return 1
	}
	return s.y
}

// XToPx converts a horizontal dp value to px.
func (s Scale) XToPx(v float64) float64 { return v * s.X() }

// YToPx converts a vertical dp value to px.
func (s Scale) YToPx(v float64) float64 { return v * s.Y() }

// XToDp converts a horizontal px value to dp.
func (s Scale) XToDp(v float64) float64 { return v / s.X() }

// YToDp converts a vertical px value to dp.
func (s Scale) YToDp(v float64) float64 { return v / s.Y() }

func (s Scale) String() string {
	return fmt.Sprintf("%gx%g", s.X(), s.Y())
}

// Scalable is implemented by the value types that can be converted
// between dp and px.
type Scalable[T any] interface {
	ToPx(s Scale) T
	ToDp(s Scale) T
}

var (
	_ Scalable[Point]  = Point{}
	_ Scalable[Vec2]   = Vec2{}
	_ Scalable[Size]   = Size{}
	_ Scalable[Rect]   = Rect{}
	_ Scalable[Insets] = Insets{}
)

func (p Point) ToPx(s Scale) Point { return Point{s.XToPx(p.X), s.YToPx(p.Y)} }
func (p Point) ToDp(s Scale) Point { return Point{s.XToDp(p.X), s.YToDp(p.Y)} }

func (v Vec2) ToPx(s Scale) Vec2 { return Vec2{s.XToPx(v.X), s.YToPx(v.Y)} }
func (v Vec2) ToDp(s Scale) Vec2 { return Vec2{s.XToDp(v.X), s.YToDp(v.Y)} }

func (sz Size) ToPx(s Scale) Size { return Size{s.XToPx(sz.Width), s.YToPx(sz.Height)} }
func (sz Size) ToDp(s Scale) Size { return Size{s.XToDp(sz.Width), s.YToDp(sz.Height)} }

func (r Rect) ToPx(s Scale) Rect { return Rect{r.Min.ToPx(s), r.Max.ToPx(s)} }
func (r Rect) ToDp(s Scale) Rect { return Rect{r.Min.ToDp(s), r.Max.ToDp(s)} }

func (in Insets) ToPx(s Scale) Insets {
	return Insets{s.XToPx(in.Left), s.YToPx(in.Top), s.XToPx(in.Right), s.YToPx(in.Bottom)}
}

func (in Insets) ToDp(s Scale) Insets {
	return Insets{s.XToDp(in.Left), s.YToDp(in.Top), s.XToDp(in.Right), s.YToDp(in.Bottom)}
}

// ScaledArea is the size of a drawing area in both dp and px. The px
// size is always whole pixels; the dp size is derived from it, or the
// other way around, depending on the constructor.
type ScaledArea struct {
	sizeDp Size
	sizePx Size
}

// ScaledAreaFromPx returns the area for the given px size at scale s.
func ScaledAreaFromPx(px Size, s Scale) ScaledArea {
	px = px.Round()
	return ScaledArea{sizeDp: px.ToDp(s), sizePx: px}
}

// ScaledAreaFromDp returns the area for the given dp size at scale s,
// with the px size expanded to whole pixels.
func ScaledAreaFromDp(dp Size, s Scale) ScaledArea {
	return ScaledArea{sizeDp: dp, sizePx: dp.ToPx(s).Expand()}
}

// SizeDp returns the size in dp.
func (a ScaledArea) SizeDp() Size { return a.sizeDp }

// SizePx returns the size in whole px.
func (a ScaledArea) SizePx() Size { return a.sizePx }

// Rescale returns the area with the same px size at a new scale.
func (a ScaledArea) Rescale(s Scale) ScaledArea {
	return ScaledAreaFromPx(a.sizePx, s)
}
