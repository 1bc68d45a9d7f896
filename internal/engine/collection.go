package engine

import (
	"fmt"
	"sort"
)

// Collection owns every live box and the currently selected id.
// Storage order is insertion order; stacking is carried by Box.Z.
type Collection struct {
	boxes    []Box
	selected BoxID
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	return &Collection{}
}

// Len returns the number of live boxes.
func (c *Collection) Len() int {
	return len(c.boxes)
}

// Add appends b. It panics if the id is zero or already present, or if the
// geometry is invalid: both can only come from a broken caller.
func (c *Collection) Add(b Box) {
	if b.ID == 0 {
		panic("engine: box id must be non-zero")
	}
	if c.index(b.ID) >= 0 {
		panic(fmt.Sprintf("engine: duplicate box id %d", b.ID))
	}
	mustValid(b)
	c.boxes = append(c.boxes, b)
}

// Get returns a copy of the box with the given id.
func (c *Collection) Get(id BoxID) (Box, bool) {
	i := c.index(id)
	if i < 0 {
		return Box{}, false
	}
	return c.boxes[i], true
}

// Replace swaps the stored box with the same id for b in one assignment, so
// readers never see a half-updated rectangle. Returns false if the id is not
// live.
func (c *Collection) Replace(b Box) bool {
	i := c.index(b.ID)
	if i < 0 {
		return false
	}
	mustValid(b)
	c.boxes[i] = b
	return true
}

// Remove deletes the box with the given id and drops every collision
// reference to it. Removing the selected box clears the selection. Z values of
// the remaining boxes are left as they are.
func (c *Collection) Remove(id BoxID) (Box, bool) {
	i := c.index(id)
	if i < 0 {
		return Box{}, false
	}
	removed := c.boxes[i]
	c.boxes = append(c.boxes[:i], c.boxes[i+1:]...)

	for j := range c.boxes {
		if c.boxes[j].Partner.ID == id {
			b := c.boxes[j]
			b.Partner = Partner{}
			c.boxes[j] = b
		}
	}
	if c.selected == id {
		c.selected = 0
	}
	return removed, true
}

// All returns a copy of the boxes in collection order.
func (c *Collection) All() []Box {
	out := make([]Box, len(c.boxes))
	copy(out, c.boxes)
	return out
}

// ByZ returns a copy of the boxes ordered bottom to top. Equal z values keep
// collection order.
func (c *Collection) ByZ() []Box {
	out := c.All()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Z < out[j].Z
	})
	return out
}

// Selected returns the id of the selected box, or 0.
func (c *Collection) Selected() BoxID {
	return c.selected
}

// TopmostAt returns the highest box containing the container-relative point.
func (c *Collection) TopmostAt(x, y float64) (Box, bool) {
	stack := c.ByZ()
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].Rect.Contains(x, y) {
			return stack[i], true
		}
	}
	return Box{}, false
}

func (c *Collection) index(id BoxID) int {
	for i := range c.boxes {
		if c.boxes[i].ID == id {
			return i
		}
	}
	return -1
}

func mustValid(b Box) {
	if !b.Rect.Valid() {
		panic(fmt.Sprintf("engine: box %d has invalid geometry %+v", b.ID, b.Rect))
	}
}
