package tui

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/panelboard/internal/core"
	"github.com/vovakirdan/panelboard/internal/engine"
)

// closeInset is the distance of the close glyph from the box's right edge.
const closeInset = 3

// gestureButton is the only button that opens and ends gestures.
const gestureButton = tea.MouseButtonLeft

// pointerFromMouse converts a Bubble Tea mouse message into a pointer event.
// Presses and releases of other buttons are dropped. Terminals in X10 mode
// report releases without a button, so those end the gesture too.
func pointerFromMouse(msg tea.MouseMsg) core.PointerEvent {
	ev := core.PointerEvent{X: float64(msg.X), Y: float64(msg.Y)}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == gestureButton {
			ev.Kind = core.PointerPress
		}
	case tea.MouseActionRelease:
		if msg.Button == gestureButton || msg.Button == tea.MouseButtonNone {
			ev.Kind = core.PointerRelease
		}
	case tea.MouseActionMotion:
		ev.Kind = core.PointerMotion
	}
	return ev
}

// cellRect returns the terminal cells a box covers: origin and size.
// Edges are rounded so adjacent boxes on the grid never share a column.
func cellRect(v engine.BoxView, c engine.Container) (x, y, w, h int) {
	x0 := round(c.X + v.X)
	y0 := round(c.Y + v.Y)
	x1 := round(c.X + v.X + v.W)
	y1 := round(c.Y + v.Y + v.H)
	return x0, y0, x1 - x0, y1 - y0
}

func round(v float64) int {
	return int(math.Floor(v + 0.5))
}

// zone is the part of a box a pointer press landed on.
type zone int

const (
	zoneNone zone = iota
	zoneBody
	zoneClose
	zoneHandle
)

// hit is the result of hit-testing a single box.
type hit struct {
	zone zone
	mode engine.Mode // Gesture to open for zoneBody and zoneHandle
}

// hitTest classifies the cell (mx, my) against box v. Border cells are
// resize handles, corners resize two edges, the close glyph sits on the top
// border and everything inside is the body.
func hitTest(v engine.BoxView, c engine.Container, mx, my int) hit {
	x, y, w, h := cellRect(v, c)
	if mx < x || my < y || mx >= x+w || my >= y+h {
		return hit{}
	}

	rx, ry := mx-x, my-y
	left, right := rx == 0, rx == w-1
	top, bottom := ry == 0, ry == h-1

	if top && w > 2*closeInset && rx == w-closeInset {
		return hit{zone: zoneClose}
	}

	handle := func(m engine.Mode) hit { return hit{zone: zoneHandle, mode: m} }
	switch {
	case top && left:
		return handle(engine.ModeResizeNW)
	case top && right:
		return handle(engine.ModeResizeNE)
	case bottom && left:
		return handle(engine.ModeResizeSW)
	case bottom && right:
		return handle(engine.ModeResizeSE)
	case top:
		return handle(engine.ModeResizeN)
	case bottom:
		return handle(engine.ModeResizeS)
	case left:
		return handle(engine.ModeResizeW)
	case right:
		return handle(engine.ModeResizeE)
	}
	return hit{zone: zoneBody, mode: engine.ModeMove}
}

// topmostHit finds the highest box under the cell (mx, my). stack is ordered
// bottom to top.
func topmostHit(stack []engine.BoxView, c engine.Container, mx, my int) (engine.BoxView, hit, bool) {
	for i := len(stack) - 1; i >= 0; i-- {
		if h := hitTest(stack[i], c, mx, my); h.zone != zoneNone {
			return stack[i], h, true
		}
	}
	return engine.BoxView{}, hit{}, false
}
