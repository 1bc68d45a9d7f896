// Package arrangements contains the built-in starting layouts. Each one
// registers itself with the registry in init().
package arrangements

import (
	"fmt"

	"github.com/vovakirdan/panelboard/internal/engine"
	"github.com/vovakirdan/panelboard/internal/registry"
)

// DefaultID is the arrangement used when none is requested.
const DefaultID = "single"

// recipe is an arrangement described by data and a seed function.
type recipe struct {
	id, title, desc string
	seed            func(b registry.Board) error
}

func (r recipe) ID() string                  { return r.id }
func (r recipe) Title() string               { return r.title }
func (r recipe) Description() string         { return r.desc }
func (r recipe) Seed(b registry.Board) error { return r.seed(b) }

func register(r recipe) {
	registry.Register(r.id, func() registry.Arrangement { return r })
}

// drag moves a box by (dx, dy) with one pointer gesture grabbed at its centre
// and returns where the box ended up.
func drag(b registry.Board, v engine.BoxView, dx, dy float64) (engine.BoxView, error) {
	c := b.Container()
	px, py := c.X+v.X+v.W/2, c.Y+v.Y+v.H/2

	if err := b.PointerDown(v.ID, px, py, engine.ModeMove); err != nil {
		return v, fmt.Errorf("arrangements: drag box %d: %w", v.ID, err)
	}
	b.PointerMove(px+dx, py+dy)
	b.PointerUp(px+dx, py+dy)

	moved, ok := b.Box(v.ID)
	if !ok {
		return v, fmt.Errorf("arrangements: box %d vanished during drag", v.ID)
	}
	return moved, nil
}

// stretch drags the south-east corner of a box by (dx, dy).
func stretch(b registry.Board, v engine.BoxView, dx, dy float64) error {
	c := b.Container()
	px, py := c.X+v.X+v.W, c.Y+v.Y+v.H

	if err := b.PointerDown(v.ID, px, py, engine.ModeResizeSE); err != nil {
		return fmt.Errorf("arrangements: resize box %d: %w", v.ID, err)
	}
	b.PointerMove(px+dx, py+dy)
	b.PointerUp(px+dx, py+dy)
	return nil
}
