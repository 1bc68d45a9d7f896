package engine

import (
	"fmt"

	"github.com/vovakirdan/panelboard/internal/core"
)

// BoxID identifies a box for its whole lifetime. Ids start at 1; the zero
// value means "no box".
type BoxID int

// Mode is the interaction state of a single box.
type Mode int

const (
	ModeIdle Mode = iota
	ModeHover
	ModeMove
	ModeResizeN
	ModeResizeE
	ModeResizeS
	ModeResizeW
	ModeResizeNE
	ModeResizeNW
	ModeResizeSE
	ModeResizeSW
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeHover:
		return "hover"
	case ModeMove:
		return "move"
	case ModeResizeN:
		return "resize-n"
	case ModeResizeE:
		return "resize-e"
	case ModeResizeS:
		return "resize-s"
	case ModeResizeW:
		return "resize-w"
	case ModeResizeNE:
		return "resize-ne"
	case ModeResizeNW:
		return "resize-nw"
	case ModeResizeSE:
		return "resize-se"
	case ModeResizeSW:
		return "resize-sw"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// IsResize reports whether m drags one or two edges.
func (m Mode) IsResize() bool {
	return m >= ModeResizeN && m <= ModeResizeSW
}

// Active reports whether m belongs to an open interaction session.
func (m Mode) Active() bool {
	return m == ModeMove || m.IsResize()
}

// edges is the set of box edges a resize mode drags.
type edges struct {
	n, e, s, w bool
}

func (m Mode) edges() edges {
	switch m {
	case ModeResizeN:
		return edges{n: true}
	case ModeResizeE:
		return edges{e: true}
	case ModeResizeS:
		return edges{s: true}
	case ModeResizeW:
		return edges{w: true}
	case ModeResizeNE:
		return edges{n: true, e: true}
	case ModeResizeNW:
		return edges{n: true, w: true}
	case ModeResizeSE:
		return edges{s: true, e: true}
	case ModeResizeSW:
		return edges{s: true, w: true}
	}
	return edges{}
}

// Partner is a non-owning collision reference: the id of the overlapping box
// and a snapshot of its geometry taken by the detector. It must never be used
// to reach and mutate the referenced box.
type Partner struct {
	ID   BoxID
	Rect core.Rect
}

// Valid reports whether the reference points at a box.
func (p Partner) Valid() bool {
	return p.ID != 0
}

// Box is a positioned, sized, stacked rectangle under user control.
type Box struct {
	ID      BoxID
	Rect    core.Rect
	Z       int
	Partner Partner
	Mode    Mode
}

// BoxView is the outbound, render-ready state of a box.
type BoxView struct {
	ID       BoxID
	Z        int
	X, Y     float64
	W, H     float64
	Partner  Partner
	Mode     Mode
	Selected bool
}

// Rect returns the view geometry as a rectangle.
func (v BoxView) Rect() core.Rect {
	return core.NewRect(v.X, v.Y, v.W, v.H)
}

// View builds the outbound value for b.
func (b Box) View(selected BoxID) BoxView {
	return BoxView{
		ID:       b.ID,
		Z:        b.Z,
		X:        b.Rect.X,
		Y:        b.Rect.Y,
		W:        b.Rect.W,
		H:        b.Rect.H,
		Partner:  b.Partner,
		Mode:     b.Mode,
		Selected: b.ID == selected,
	}
}
