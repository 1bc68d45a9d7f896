package engine

import "github.com/vovakirdan/panelboard/internal/core"

// DetectCollisions recomputes the collision partner of every box.
//
// Partners form a matching: each box has at most one partner and partnership
// is mutual. Pairs are scanned in ascending collection order and a later
// overlap replaces an earlier one, unlinking whichever boxes it displaces.
// The focus box (the one just updated, 0 for none) is scanned after all other
// pairs, so it ends up paired with the last box it overlaps in collection
// order. Every pass starts from scratch; nothing is carried over from the
// previous one. This is O(n²), fine for boards of tens of boxes.
func (c *Collection) DetectCollisions(focus BoxID) {
	n := len(c.boxes)
	partner := make([]int, n)
	for i := range partner {
		partner[i] = -1
	}

	link := func(i, j int) {
		if p := partner[i]; p >= 0 && p != j {
			partner[p] = -1
		}
		if p := partner[j]; p >= 0 && p != i {
			partner[p] = -1
		}
		partner[i] = j
		partner[j] = i
	}

	fi := c.index(focus)
	for i := 0; i < n; i++ {
		if i == fi {
			continue
		}
		for j := i + 1; j < n; j++ {
			if j == fi {
				continue
			}
			if core.Overlaps(c.boxes[i].Rect, c.boxes[j].Rect) {
				link(i, j)
			}
		}
	}
	if fi >= 0 {
		for j := 0; j < n; j++ {
			if j != fi && core.Overlaps(c.boxes[fi].Rect, c.boxes[j].Rect) {
				link(fi, j)
			}
		}
	}

	// Snapshots come from the settled geometry of this pass.
	for i, b := range c.boxes {
		b.Partner = Partner{}
		if p := partner[i]; p >= 0 {
			b.Partner = Partner{ID: c.boxes[p].ID, Rect: c.boxes[p].Rect}
		}
		c.boxes[i] = b
	}
}
