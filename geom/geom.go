// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom provides the 2D value types used throughout glazier:
// points, vectors, sizes, rectangles, insets, dirty regions and the
// scale factors that convert between device-independent pixels (dp)
// and physical pixels (px).
package geom

import (
	"fmt"
	"image"
	"math"
)

// Point is a 2D position. Unless stated otherwise, points are
// expressed in device-independent pixels (dp).
type Point struct {
	X, Y float64
}

// Pt returns a new [Point] with the given coordinates.
func Pt(x, y float64) Point {
	return Point{x, y}
}

// Add returns p translated by v.
func (p Point) Add(v Vec2) Point {
	return Point{p.X + v.X, p.Y + v.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vec2 {
	return Vec2{p.X - q.X, p.Y - q.Y}
}

// In returns whether p lies inside r.
func (p Point) In(r Rect) bool {
	return r.Contains(p)
}

// Round returns p with both coordinates rounded to the nearest integer.
func (p Point) Round() Point {
	return Point{math.Round(p.X), math.Round(p.Y)}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Vec2 is a 2D displacement, used for scroll deltas and translations.
type Vec2 struct {
	X, Y float64
}

// V returns a new [Vec2] with the given components.
func V(x, y float64) Vec2 {
	return Vec2{x, y}
}

// MulScalar returns v scaled by s.
func (v Vec2) MulScalar(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// IsZero returns whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Size is a 2D extent.
type Size struct {
	Width, Height float64
}

// Sz returns a new [Size] with the given width and height.
func Sz(w, h float64) Size {
	return Size{w, h}
}

// Area returns the area of the size.
func (s Size) Area() float64 {
	return s.Width * s.Height
}

// IsEmpty returns whether the size has no area.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Max returns the component-wise maximum of s and o.
func (s Size) Max(o Size) Size {
	return Size{max(s.Width, o.Width), max(s.Height, o.Height)}
}

// Expand rounds both dimensions away from zero.
func (s Size) Expand() Size {
	return Size{expand(s.Width), expand(s.Height)}
}

// Round rounds both dimensions to the nearest integer.
func (s Size) Round() Size {
	return Size{math.Round(s.Width), math.Round(s.Height)}
}

// ToRect returns the rect with origin zero and this size.
func (s Size) ToRect() Rect {
	return Rect{Max: Point{s.Width, s.Height}}
}

// ImagePoint returns the size as an [image.Point], rounding each dimension.
func (s Size) ImagePoint() image.Point {
	return image.Pt(int(math.Round(s.Width)), int(math.Round(s.Height)))
}

func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
}

// Rect is an axis-aligned rectangle defined by its minimum and maximum
// corners. A Rect with Max <= Min on either axis is empty.
type Rect struct {
	Min Point
	Max Point
}

// R returns a new [Rect] spanning the given coordinates, which may be
// given in any order.
func R(x0, y0, x1, y1 float64) Rect {
	return Rect{
		Min: Point{min(x0, x1), min(y0, y1)},
		Max: Point{max(x0, x1), max(y0, y1)},
	}
}

// RectFromOriginSize returns the rect at the given origin with the given size.
func RectFromOriginSize(origin Point, size Size) Rect {
	return R(origin.X, origin.Y, origin.X+size.Width, origin.Y+size.Height)
}

// RectFromImage returns the rect corresponding to the given [image.Rectangle].
func RectFromImage(r image.Rectangle) Rect {
	return R(float64(r.Min.X), float64(r.Min.Y), float64(r.Max.X), float64(r.Max.Y))
}

// Width returns the width of the rect.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rect.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Size returns the size of the rect.
func (r Rect) Size() Size {
	return Size{r.Width(), r.Height()}
}

// Origin returns the minimum corner of the rect.
func (r Rect) Origin() Point {
	return r.Min
}

// Area returns the area of the rect, which is zero for an empty rect.
func (r Rect) Area() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.Width() * r.Height()
}

// IsEmpty returns whether the rect has no area.
func (r Rect) IsEmpty() bool {
	return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y
}

// Contains returns whether p lies inside r. The minimum edges are
// inclusive and the maximum edges exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// ContainsRect returns whether o lies entirely inside r.
func (r Rect) ContainsRect(o Rect) bool {
	if o.IsEmpty() {
		return true
	}
	return o.Min.X >= r.Min.X && o.Max.X <= r.Max.X && o.Min.Y >= r.Min.Y && o.Max.Y <= r.Max.Y
}

// Intersect returns the largest rect contained by both r and o.
// The result may be empty.
func (r Rect) Intersect(o Rect) Rect {
	return Rect{
		Min: Point{max(r.Min.X, o.Min.X), max(r.Min.Y, o.Min.Y)},
		Max: Point{min(r.Max.X, o.Max.X), min(r.Max.Y, o.Max.Y)},
	}
}

// Overlaps returns whether r and o share a non-empty area.
func (r Rect) Overlaps(o Rect) bool {
	return !r.Intersect(o).IsEmpty()
}

// Union returns the smallest rect containing both r and o.
// Empty rects are ignored.
func (r Rect) Union(o Rect) Rect {
	switch {
	case r.IsEmpty():
		return o
	case o.IsEmpty():
		return r
	}
	return Rect{
		Min: Point{min(r.Min.X, o.Min.X), min(r.Min.Y, o.Min.Y)},
		Max: Point{max(r.Max.X, o.Max.X), max(r.Max.Y, o.Max.Y)},
	}
}

// Subtract returns up to four disjoint rects that together cover the
// part of r not covered by o.
func (r Rect) Subtract(o Rect) []Rect {
	if r.IsEmpty() {
		return nil
	}
	in := r.Intersect(o)
	if in.IsEmpty() {
		return []Rect{r}
	}
	res := make([]Rect, 0, 4)
	if in.Min.Y > r.Min.Y {
		res = append(res, Rect{r.Min, Point{r.Max.X, in.Min.Y}})
	}
	if in.Max.Y < r.Max.Y {
		res = append(res, Rect{Point{r.Min.X, in.Max.Y}, r.Max})
	}
	if in.Min.X > r.Min.X {
		res = append(res, Rect{Point{r.Min.X, in.Min.Y}, Point{in.Min.X, in.Max.Y}})
	}
	if in.Max.X < r.Max.X {
		res = append(res, Rect{Point{in.Max.X, in.Min.Y}, Point{r.Max.X, in.Max.Y}})
	}
	return res
}

// Translate returns r moved by v.
func (r Rect) Translate(v Vec2) Rect {
	return Rect{r.Min.Add(v), r.Max.Add(v)}
}

// Inset returns r shrunk by the given insets. Negative insets grow it.
func (r Rect) Inset(in Insets) Rect {
	return R(r.Min.X+in.Left, r.Min.Y+in.Top, r.Max.X-in.Right, r.Max.Y-in.Bottom)
}

// Expand returns the smallest rect with integer coordinates containing r.
func (r Rect) Expand() Rect {
	return Rect{
		Min: Point{math.Floor(r.Min.X), math.Floor(r.Min.Y)},
		Max: Point{math.Ceil(r.Max.X), math.Ceil(r.Max.Y)},
	}
}

// ToImage returns the rect as an [image.Rectangle], expanding it to
// integer coordinates first.
func (r Rect) ToImage() image.Rectangle {
	e := r.Expand()
	return image.Rect(int(e.Min.X), int(e.Min.Y), int(e.Max.X), int(e.Max.Y))
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g,%g - %g,%g]", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}

// Insets are the distances from each edge of a rect, such as the
// space taken by a titlebar or status bar.
type Insets struct {
	Left, Top, Right, Bottom float64
}

// UniformInsets returns insets of the same size on every side.
func UniformInsets(v float64) Insets {
	return Insets{v, v, v, v}
}

// IsZero returns whether all of the insets are zero.
func (in Insets) IsZero() bool {
	return in == Insets{}
}

func expand(v float64) float64 {
	if v < 0 {
		return math.Floor(v)
	}
	return math.Ceil(v)
}
