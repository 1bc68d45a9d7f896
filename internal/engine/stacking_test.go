package engine

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/panelboard/internal/core"
)

func TestSelectRenumbers(t *testing.T) {
	r := core.NewRect(0, 0, 50, 50)
	c := collectionOf(r, r, r)

	if !c.Select(2) {
		t.Fatal("Select(2) = false, expected true")
	}

	expected := map[BoxID]int{1: 100, 3: 200, 2: 300}
	for id, z := range expected {
		b, _ := c.Get(id)
		if b.Z != z {
			t.Errorf("box %d z = %d, expected %d", id, b.Z, z)
		}
	}
	if c.Selected() != 2 {
		t.Errorf("Selected() = %d, expected 2", c.Selected())
	}
}

func TestSelectKeepsRelativeOrder(t *testing.T) {
	r := core.NewRect(0, 0, 50, 50)
	c := collectionOf(r, r, r, r)
	for _, id := range []BoxID{4, 1, 3} {
		c.Select(id)
	}
	c.Select(2)

	var order []BoxID
	for _, b := range c.ByZ() {
		order = append(order, b.ID)
	}
	expected := []BoxID{4, 1, 3, 2}
	for i := range expected {
		if order[i] != expected[i] {
			t.Fatalf("ByZ() order = %v, expected %v", order, expected)
		}
	}
}

func TestSelectNoOp(t *testing.T) {
	c := collectionOf(core.NewRect(0, 0, 50, 50), core.NewRect(0, 0, 50, 50))
	c.Select(1)
	before, _ := c.Get(1)

	if c.Select(1) {
		t.Error("Select on selected box = true, expected false")
	}
	if c.Select(42) {
		t.Error("Select on unknown box = true, expected false")
	}
	after, _ := c.Get(1)
	if after.Z != before.Z {
		t.Errorf("z changed from %d to %d", before.Z, after.Z)
	}
}

func TestSelectUniqueMaximum(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	r := core.NewRect(0, 0, 50, 50)
	c := collectionOf(r, r, r, r, r, r)

	for i := 0; i < 200; i++ {
		target := BoxID(rng.Intn(6) + 1)
		c.Select(target)

		seen := map[int]bool{}
		top, _ := c.Get(target)
		for _, b := range c.All() {
			if seen[b.Z] {
				t.Fatalf("step %d: duplicate z %d", i, b.Z)
			}
			seen[b.Z] = true
			if b.ID != target && b.Z >= top.Z {
				t.Fatalf("step %d: box %d z %d not below selected z %d", i, b.ID, b.Z, top.Z)
			}
		}
	}
}

func TestRemoveSelected(t *testing.T) {
	r := core.NewRect(0, 0, 50, 50)
	c := collectionOf(r, r, r)
	c.Select(3)
	c.Select(1)

	if _, ok := c.Remove(1); !ok {
		t.Fatal("Remove(1) = false")
	}
	if c.Selected() != 0 {
		t.Errorf("Selected() = %d after removing it, expected 0", c.Selected())
	}
	b2, _ := c.Get(2)
	b3, _ := c.Get(3)
	if b2.Z != 100 || b3.Z != 200 {
		t.Errorf("z after remove = %d, %d, expected gaps kept at 100, 200", b2.Z, b3.Z)
	}
	if c.Lowest() != 2 {
		t.Errorf("Lowest() = %d, expected 2", c.Lowest())
	}
}

func TestCollectionAddPanics(t *testing.T) {
	tests := []struct {
		name string
		box  Box
	}{
		{"zero id", Box{Rect: core.NewRect(0, 0, 10, 10)}},
		{"duplicate id", Box{ID: 1, Rect: core.NewRect(0, 0, 10, 10)}},
		{"negative width", Box{ID: 2, Rect: core.NewRect(0, 0, -1, 10)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := collectionOf(core.NewRect(0, 0, 10, 10))
			defer func() {
				if recover() == nil {
					t.Error("Add did not panic")
				}
			}()
			c.Add(tt.box)
		})
	}
}

func TestTopmostAt(t *testing.T) {
	c := collectionOf(core.NewRect(0, 0, 100, 100), core.NewRect(50, 50, 100, 100))
	c.Select(1)

	b, ok := c.TopmostAt(75, 75)
	if !ok || b.ID != 1 {
		t.Errorf("TopmostAt(75, 75) = %d, %v, expected 1, true", b.ID, ok)
	}
	if _, ok := c.TopmostAt(300, 300); ok {
		t.Error("TopmostAt on empty area found a box")
	}
}
