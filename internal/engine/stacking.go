package engine

// zStride is the gap left between consecutive z values.
const zStride = 100

// Select raises target above every other box and marks it selected.
//
// Selecting the already selected box is a no-op. Otherwise every other box is
// renumbered in its current stacking order as 100, 200, ... and the target
// receives the next value, which is strictly the maximum. Returns whether
// anything changed; false also covers an unknown id.
func (c *Collection) Select(target BoxID) bool {
	if c.selected == target && target != 0 {
		return false
	}
	ti := c.index(target)
	if ti < 0 {
		return false
	}

	z := 0
	for _, b := range c.ByZ() {
		if b.ID == target {
			continue
		}
		z += zStride
		b.Z = z
		c.boxes[c.index(b.ID)] = b
	}

	t := c.boxes[ti]
	t.Z = z + zStride
	c.boxes[ti] = t
	c.selected = target
	return true
}

// Lowest returns the id of the bottom box, or 0 when the collection is empty.
func (c *Collection) Lowest() BoxID {
	stack := c.ByZ()
	if len(stack) == 0 {
		return 0
	}
	return stack[0].ID
}
