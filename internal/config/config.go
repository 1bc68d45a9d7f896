// Package config provides YAML/TOML board configuration loading and grid
// presets for panelboard.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/panelboard/internal/core"
	"github.com/vovakirdan/panelboard/internal/engine"
)

// BoardConfig contains all configuration for a board.
type BoardConfig struct {
	Engine   EngineSection   `yaml:"engine" toml:"engine"`
	Terminal TerminalSection `yaml:"terminal" toml:"terminal"`
	Grid     GridPreset      `yaml:"grid" toml:"grid"`
}

// EngineSection defines the geometry constants of the engine, in cells.
type EngineSection struct {
	MarginX          float64 `yaml:"margin_x" toml:"margin_x"`
	MarginY          float64 `yaml:"margin_y" toml:"margin_y"`
	MinWidth         float64 `yaml:"min_width" toml:"min_width"`
	MinHeight        float64 `yaml:"min_height" toml:"min_height"`
	GridUnit         float64 `yaml:"grid_unit" toml:"grid_unit"`
	InitialFraction  float64 `yaml:"initial_fraction" toml:"initial_fraction"`
	ResizeDebounceMS int     `yaml:"resize_debounce_ms" toml:"resize_debounce_ms"`
}

// TerminalSection defines where the board sits on the terminal screen.
type TerminalSection struct {
	InsetX int `yaml:"inset_x" toml:"inset_x"`
	InsetY int `yaml:"inset_y" toml:"inset_y"`
	Footer int `yaml:"footer" toml:"footer"`
}

// EngineConfig converts the engine section into engine constants.
func (c BoardConfig) EngineConfig() engine.Config {
	return engine.Config{
		MarginX:         c.Engine.MarginX,
		MarginY:         c.Engine.MarginY,
		MinWidth:        c.Engine.MinWidth,
		MinHeight:       c.Engine.MinHeight,
		GridUnit:        c.Engine.GridUnit,
		InitialFraction: c.Engine.InitialFraction,
		ResizeDebounce:  time.Duration(c.Engine.ResizeDebounceMS) * time.Millisecond,
	}
}

// Runtime returns the screen layout for a terminal of the given size.
func (c BoardConfig) Runtime(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		InsetX:  c.Terminal.InsetX,
		InsetY:  c.Terminal.InsetY,
		Footer:  c.Terminal.Footer,
	}
}

// Validate reports the first setting that would break the engine.
func (c BoardConfig) Validate() error {
	e := c.Engine
	switch {
	case e.MarginX < 0 || e.MarginY < 0:
		return errors.New("config: margins must not be negative")
	case e.MinWidth <= 0 || e.MinHeight <= 0:
		return errors.New("config: minimum box size must be positive")
	case e.GridUnit < 0:
		return errors.New("config: grid_unit must not be negative")
	case e.InitialFraction <= 0 || e.InitialFraction > 1:
		return fmt.Errorf("config: initial_fraction %v outside (0, 1]", e.InitialFraction)
	case e.ResizeDebounceMS < 0:
		return errors.New("config: resize_debounce_ms must not be negative")
	}
	t := c.Terminal
	if t.InsetX < 0 || t.InsetY < 0 || t.Footer < 0 {
		return errors.New("config: terminal insets must not be negative")
	}
	if c.Grid != "" && !c.Grid.Valid() {
		return fmt.Errorf("config: unknown grid preset %q", c.Grid)
	}
	return nil
}
