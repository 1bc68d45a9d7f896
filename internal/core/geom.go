// Package core provides the geometry primitives shared by the board engine and
// the terminal host. It contains no external dependencies (especially no Bubble
// Tea) to keep box geometry pure and testable.
package core

import "math"

// Rect is an axis-aligned rectangle in container-relative units.
// Origin is top-left, y grows downward.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Overlaps reports whether the projections of r and other intersect on both
// axes. Intervals are closed, so rectangles sharing an edge overlap.
func (r Rect) Overlaps(other Rect) bool {
	if r.X > other.Right() || other.X > r.Right() {
		return false
	}
	if r.Y > other.Bottom() || other.Y > r.Bottom() {
		return false
	}
	return true
}

// Overlaps is the free-function form of Rect.Overlaps.
func Overlaps(a, b Rect) bool {
	return a.Overlaps(b)
}

// Contains returns true if the point (x, y) is inside this rectangle.
// The right and bottom edges are exclusive, which makes it suitable for
// hit-testing cells.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Scale multiplies position and size by the given axis ratios.
func (r Rect) Scale(xRatio, yRatio float64) Rect {
	return Rect{
		X: r.X * xRatio,
		Y: r.Y * yRatio,
		W: r.W * xRatio,
		H: r.H * yRatio,
	}
}

// Valid reports whether the rectangle has finite, non-negative dimensions.
func (r Rect) Valid() bool {
	for _, v := range [...]float64{r.X, r.Y, r.W, r.H} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return r.W >= 0 && r.H >= 0
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
