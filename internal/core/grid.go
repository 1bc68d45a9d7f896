package core

import "math"

// ToGrid rounds v to the nearest multiple of unit. Ties round to the higher
// multiple. A non-positive unit disables snapping.
//
// Call sites: drag candidates, magnetic snap results, rescaled geometry and the
// quantize step of Settle. All of them must use this variant so positions
// agree at the unit/2 boundary.
func ToGrid(v, unit float64) float64 {
	if unit <= 0 {
		return v
	}
	return math.Floor(v/unit+0.5) * unit
}

// CeilToGrid rounds v up to the next multiple of unit (v itself if already on
// the grid). A non-positive unit disables snapping.
//
// Only the closing pass of Settle uses it, to lift a size that dropped below
// its minimum floor back onto the grid without going under the floor again.
func CeilToGrid(v, unit float64) float64 {
	if unit <= 0 {
		return v
	}
	return math.Ceil(v/unit) * unit
}

// Quantize snaps every component of r to the grid with ToGrid.
func Quantize(r Rect, unit float64) Rect {
	return Rect{
		X: ToGrid(r.X, unit),
		Y: ToGrid(r.Y, unit),
		W: ToGrid(r.W, unit),
		H: ToGrid(r.H, unit),
	}
}
