package engine

import (
	"math"

	"github.com/vovakirdan/panelboard/internal/core"
)

// Align snaps r flush against its collision partner p.
//
// The center-to-center offset is computed once. The horizontal branch fires
// when the vertical offset is within p's height and smaller than the
// horizontal one; the vertical branch fires when the horizontal offset is
// within p's width and at least the vertical one. The two conditions are not
// exclusive, so both can fire and move r diagonally. Callers settle the
// result. The boolean reports whether any branch fired.
func Align(r, p core.Rect) (core.Rect, bool) {
	pcx, pcy := p.Center()
	rcx, rcy := r.Center()
	dx, dy := pcx-rcx, pcy-rcy
	adx, ady := math.Abs(dx), math.Abs(dy)

	fired := false
	if ady <= p.H && ady < adx {
		if r.X < p.X {
			r.X = p.X - r.W
		} else {
			r.X = p.Right()
		}
		fired = true
	}
	if adx <= p.W && adx >= ady {
		if r.Y < p.Y {
			r.Y = p.Y - r.H
		} else {
			r.Y = p.Bottom()
		}
		fired = true
	}
	return r, fired
}
