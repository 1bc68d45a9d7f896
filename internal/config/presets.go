package config

import "fmt"

// GridPreset represents a named snapping granularity.
type GridPreset string

const (
	GridFine   GridPreset = "fine"
	GridNormal GridPreset = "normal"
	GridCoarse GridPreset = "coarse"
	GridFree   GridPreset = "free"
)

// GridPresets lists every preset in display order.
var GridPresets = []GridPreset{GridFine, GridNormal, GridCoarse, GridFree}

// Valid reports whether p is a known preset.
func (p GridPreset) Valid() bool {
	for _, known := range GridPresets {
		if p == known {
			return true
		}
	}
	return false
}

// ParseGridPreset converts a flag value into a preset.
func ParseGridPreset(s string) (GridPreset, error) {
	p := GridPreset(s)
	if !p.Valid() {
		return "", fmt.Errorf("unknown grid preset %q (want fine, normal, coarse or free)", s)
	}
	return p, nil
}

// UnitForPreset returns the grid unit, in cells, for a preset.
func UnitForPreset(preset GridPreset) float64 {
	switch preset {
	case GridFine:
		return 1
	case GridNormal:
		return 2
	case GridCoarse:
		return 4
	default:
		return 0
	}
}

// ApplyGridPreset modifies the config based on a grid preset.
func ApplyGridPreset(cfg *BoardConfig, preset GridPreset) {
	cfg.Grid = preset
	cfg.Engine.GridUnit = UnitForPreset(preset)

	// Coarse snapping needs room for a few steps of movement per box.
	if preset == GridCoarse {
		cfg.Engine.MinWidth = max(cfg.Engine.MinWidth, 16)
		cfg.Engine.MinHeight = max(cfg.Engine.MinHeight, 8)
	}
}
