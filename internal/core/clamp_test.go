package core

import (
	"math/rand"
	"testing"
)

var pixelLimits = Limits{MarginX: 20, MarginY: 20, MinW: 48, MinH: 48, Grid: 10}

func TestClamp(t *testing.T) {
	c := Extent{W: 800, H: 600}

	tests := []struct {
		name     string
		in       Rect
		expected Rect
	}{
		{
			name:     "inside margins untouched",
			in:       NewRect(100, 100, 200, 150),
			expected: NewRect(100, 100, 200, 150),
		},
		{
			name:     "negative position goes to zero",
			in:       NewRect(-50, -10, 100, 100),
			expected: NewRect(0, 0, 100, 100),
		},
		{
			name:     "inside near margin snaps to zero",
			in:       NewRect(19, 5, 100, 100),
			expected: NewRect(0, 0, 100, 100),
		},
		{
			name:     "far edge inside margin pins flush",
			in:       NewRect(690, 490, 100, 100),
			expected: NewRect(700, 500, 100, 100),
		},
		{
			name:     "undersize raised to minimum",
			in:       NewRect(100, 100, 10, 20),
			expected: NewRect(100, 100, 48, 48),
		},
		{
			name: "oversize keeps one-pass overhang",
			in:   NewRect(0, 0, 900, 100),
			// position is pinned against the old width before it is cut
			expected: NewRect(-100, 0, 800, 100),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Clamp(tc.in, c, pixelLimits)
			if result != tc.expected {
				t.Errorf("Clamp() = %+v, expected %+v", result, tc.expected)
			}
		})
	}
}

func TestClampIdempotentForInRangeSizes(t *testing.T) {
	c := Extent{W: 800, H: 600}
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 2000; i++ {
		r := NewRect(
			rng.Float64()*1200-200,
			rng.Float64()*1000-200,
			48+rng.Float64()*(800-48),
			48+rng.Float64()*(600-48),
		)
		once := Clamp(r, c, pixelLimits)
		twice := Clamp(once, c, pixelLimits)
		if once != twice {
			t.Fatalf("Clamp not idempotent for %+v: %+v then %+v", r, once, twice)
		}
	}
}

func TestSettleKeepsBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	containers := []Extent{{800, 600}, {805, 603}, {48, 48}, {1600, 600}, {123, 456}}

	for _, c := range containers {
		for i := 0; i < 2000; i++ {
			r := NewRect(
				rng.Float64()*2*c.W-c.W/2,
				rng.Float64()*2*c.H-c.H/2,
				rng.Float64()*1.5*c.W,
				rng.Float64()*1.5*c.H,
			)
			s := Settle(r, c, pixelLimits)
			if s.X < 0 || s.Y < 0 || s.Right() > c.W || s.Bottom() > c.H {
				t.Fatalf("Settle(%+v) in %+v = %+v escapes the container", r, c, s)
			}
			if s.W < pixelLimits.MinW || s.H < pixelLimits.MinH {
				t.Fatalf("Settle(%+v) in %+v = %+v is under the minimum size", r, c, s)
			}
		}
	}
}

func TestSettleSnapsToGrid(t *testing.T) {
	c := Extent{W: 800, H: 600}
	s := Settle(NewRect(103, 147, 212, 96), c, pixelLimits)
	expected := NewRect(100, 150, 210, 100)
	if s != expected {
		t.Errorf("Settle() = %+v, expected %+v", s, expected)
	}
}

func TestSettleRestoresMinimumOnGrid(t *testing.T) {
	c := Extent{W: 800, H: 600}
	// 44 quantizes to 40, under the 48 floor: the closing pass lifts it to 50.
	s := Settle(NewRect(100, 100, 44, 44), c, Limits{MinW: 44, MinH: 44, Grid: 10})
	if s.W != 50 || s.H != 50 {
		t.Errorf("Settle() size = %vx%v, expected 50x50", s.W, s.H)
	}
}

func TestContainSmallContainer(t *testing.T) {
	c := Extent{W: 30, H: 20}
	s := Contain(NewRect(10, 10, 100, 100), c, pixelLimits)
	expected := NewRect(0, 0, 30, 20)
	if s != expected {
		t.Errorf("Contain() = %+v, expected %+v", s, expected)
	}
}
