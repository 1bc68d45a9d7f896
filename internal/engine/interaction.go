package engine

import (
	"math"

	"github.com/vovakirdan/panelboard/internal/core"
)

// Session is the transient state of one pointer interaction: it exists from
// pointer-down to pointer-up on a single box and never leaks into Box.
type Session struct {
	BoxID    BoxID
	Mode     Mode
	PointerX float64   // Client x at pointer-down
	PointerY float64   // Client y at pointer-down
	Anchor   core.Rect // Box geometry at pointer-down
}

// moveRect computes the candidate rectangle for a move gesture. cur is the
// box's current geometry; (px, py) is the pointer in client coordinates.
// The result is not settled.
func moveRect(s Session, cur core.Rect, px, py float64, c Container, cfg Config) core.Rect {
	r := cur
	r.X = moveAxis(s.Anchor.X, cur.X, cur.W, px-s.PointerX, c.W, cfg.MarginX, cfg.GridUnit)
	r.Y = moveAxis(s.Anchor.Y, cur.Y, cur.H, py-s.PointerY, c.H, cfg.MarginY, cfg.GridUnit)
	return r
}

// moveAxis resolves one axis of a move.
//
// The axis drags freely when the box sits strictly inside the margins, or when
// the pointer has travelled more than the margin from the anchor while the box
// is inside the container. Otherwise it is locked and goes back to whichever
// container edge its current position is nearer to.
func moveAxis(anchorPos, pos, size, delta, extent, margin, unit float64) float64 {
	inside := pos > margin && pos+size < extent-margin
	unlocked := math.Abs(delta) > margin && pos >= 0 && pos+size <= extent
	if inside || unlocked {
		return core.ToGrid(anchorPos+delta, unit)
	}
	if pos < extent/2 {
		return 0
	}
	return extent - size
}

// resizeRect computes the candidate rectangle for a resize gesture. Edges
// named by the session mode follow the pointer; the opposite edges stay where
// they were at pointer-down. The result is not settled.
func resizeRect(s Session, cur core.Rect, px, py float64, c Container, cfg Config) core.Rect {
	r := cur
	e := s.Mode.edges()

	switch {
	case e.e:
		r.W = trailingEdge(px, c.X, c.W, r.X, cfg.MarginX, cfg.MinWidth)
	case e.w:
		r.X, r.W = leadingEdge(px, c.X, s.Anchor.Right(), cfg.MarginX, cfg.MinWidth)
	}

	switch {
	case e.s:
		r.H = trailingEdge(py, c.Y, c.H, r.Y, cfg.MarginY, cfg.MinHeight)
	case e.n:
		r.Y, r.H = leadingEdge(py, c.Y, s.Anchor.Bottom(), cfg.MarginY, cfg.MinHeight)
	}
	return r
}

// trailingEdge sizes a box from its right (or bottom) edge. Past the far
// margin of the container the box is stretched to the container edge.
func trailingEdge(pointer, origin, extent, pos, margin, minSize float64) float64 {
	if pointer > origin+extent-margin {
		return extent - pos
	}
	size := pointer - origin - pos
	if size < minSize {
		size = minSize
	}
	return size
}

// leadingEdge moves a box's left (or top) edge and derives the size so the
// far edge stays at farEdge. Inside the near margin of the container the edge
// goes to 0.
func leadingEdge(pointer, origin, farEdge, margin, minSize float64) (float64, float64) {
	pos := pointer - origin
	if pointer < origin+margin {
		pos = 0
	}
	if pos > farEdge-minSize {
		pos = farEdge - minSize
	}
	return pos, farEdge - pos
}
