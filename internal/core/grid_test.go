package core

import (
	"math"
	"testing"
)

func TestToGrid(t *testing.T) {
	tests := []struct {
		v, unit, expected float64
	}{
		{0, 10, 0},
		{4, 10, 0},
		{5, 10, 10},  // tie rounds up
		{14.9, 10, 10},
		{15, 10, 20}, // tie rounds up
		{-4, 10, 0},
		{-6, 10, -10},
		{-5, 10, 0}, // tie toward the higher multiple
		{123.4, 0, 123.4},
		{123.4, -5, 123.4},
	}

	for _, tc := range tests {
		result := ToGrid(tc.v, tc.unit)
		if result != tc.expected {
			t.Errorf("ToGrid(%v, %v) = %v, expected %v", tc.v, tc.unit, result, tc.expected)
		}
	}
}

func TestCeilToGrid(t *testing.T) {
	tests := []struct {
		v, unit, expected float64
	}{
		{48, 10, 50},
		{50, 10, 50},
		{41, 10, 50},
		{0.1, 1, 1},
		{7, 0, 7},
	}

	for _, tc := range tests {
		result := CeilToGrid(tc.v, tc.unit)
		if result != tc.expected {
			t.Errorf("CeilToGrid(%v, %v) = %v, expected %v", tc.v, tc.unit, result, tc.expected)
		}
	}
}

func TestGridVariantsDivergeAtHalfUnit(t *testing.T) {
	// 42 sits under the half-unit mark: nearest rounds down, ceiling rounds up.
	if ToGrid(42, 10) != 40 {
		t.Errorf("ToGrid(42, 10) = %v, expected 40", ToGrid(42, 10))
	}
	if CeilToGrid(42, 10) != 50 {
		t.Errorf("CeilToGrid(42, 10) = %v, expected 50", CeilToGrid(42, 10))
	}
}

func TestToGridIsMultipleOfUnit(t *testing.T) {
	units := []float64{1, 2, 5, 8, 10, 16, 25}
	for _, u := range units {
		for v := -500.0; v <= 500; v += 0.37 {
			g := ToGrid(v, u)
			if math.Mod(g, u) != 0 {
				t.Fatalf("ToGrid(%v, %v) = %v is not a multiple of %v", v, u, g, u)
			}
			if math.Abs(g-v) > u/2+1e-9 {
				t.Fatalf("ToGrid(%v, %v) = %v moved more than half a unit", v, u, g)
			}
		}
	}
}

func TestQuantize(t *testing.T) {
	r := Quantize(NewRect(12, 17, 103, 148), 5)
	expected := NewRect(10, 15, 105, 150)
	if r != expected {
		t.Errorf("Quantize() = %+v, expected %+v", r, expected)
	}
}
