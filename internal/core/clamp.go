package core

// Extent is the width and height of the area boxes are constrained within.
type Extent struct {
	W, H float64
}

// Limits bundles the constants every constraint pass needs.
type Limits struct {
	MarginX float64 // Edge-lock threshold on the x axis
	MarginY float64 // Edge-lock threshold on the y axis
	MinW    float64 // Minimum box width
	MinH    float64 // Minimum box height
	Grid    float64 // Grid unit; <= 0 disables quantization
}

// Clamp applies the one-pass edge and size policy to r.
//
// Per axis, in this order: a position closer than the margin to the near edge
// goes to 0; a far edge closer than the margin to the container edge is pinned
// flush to it; an oversize extent is cut to the container; an undersize extent
// is raised to the minimum. The size corrections run after the position
// corrections and the position is not revisited, so the result can still
// overhang the container when the size was out of range. Settle closes that
// gap.
func Clamp(r Rect, c Extent, lim Limits) Rect {
	r.X, r.W = clampAxis(r.X, r.W, c.W, lim.MarginX, lim.MinW)
	r.Y, r.H = clampAxis(r.Y, r.H, c.H, lim.MarginY, lim.MinH)
	return r
}

func clampAxis(pos, size, extent, margin, minSize float64) (float64, float64) {
	if pos < margin {
		pos = 0
	}
	if pos+size > extent-margin {
		pos = extent - size
	}
	if size > extent {
		size = extent
	}
	if size < minSize {
		size = minSize
	}
	return pos, size
}

// Contain is the closing pass: it forces the size into [min, extent] and then
// the position into [0, extent-size]. When the minimum has to be restored it is
// rounded up onto the grid with CeilToGrid, unless that would overflow the
// container. If the container itself is smaller than the minimum, the
// container wins.
func Contain(r Rect, c Extent, lim Limits) Rect {
	r.X, r.W = containAxis(r.X, r.W, c.W, lim.MinW, lim.Grid)
	r.Y, r.H = containAxis(r.Y, r.H, c.H, lim.MinH, lim.Grid)
	return r
}

func containAxis(pos, size, extent, minSize, unit float64) (float64, float64) {
	if size < minSize {
		size = CeilToGrid(minSize, unit)
		if size > extent {
			size = minSize
		}
	}
	if size > extent {
		size = extent
	}
	if pos+size > extent {
		pos = extent - size
	}
	if pos < 0 {
		pos = 0
	}
	return pos, size
}

// Settle runs the full constraint pipeline a mutated box goes through:
// Clamp, quantize to the grid, then Contain.
func Settle(r Rect, c Extent, lim Limits) Rect {
	r = Clamp(r, c, lim)
	r = Quantize(r, lim.Grid)
	return Contain(r, c, lim)
}
