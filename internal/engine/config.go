package engine

import (
	"time"

	"github.com/vovakirdan/panelboard/internal/core"
)

// Config holds the constants an engine is built with. They are fixed for the
// lifetime of the engine.
type Config struct {
	MarginX         float64       // Edge-lock threshold on x
	MarginY         float64       // Edge-lock threshold on y
	MinWidth        float64       // Minimum box width
	MinHeight       float64       // Minimum box height
	GridUnit        float64       // Grid unit; <= 0 disables snapping
	InitialFraction float64       // New box size as a fraction of the container
	ResizeDebounce  time.Duration // Quiescence window before a rescale
}

// DefaultConfig returns the pixel-oriented defaults.
func DefaultConfig() Config {
	return Config{
		MarginX:         20,
		MarginY:         20,
		MinWidth:        48,
		MinHeight:       48,
		GridUnit:        10,
		InitialFraction: 0.25,
		ResizeDebounce:  150 * time.Millisecond,
	}
}

func (c Config) limits() core.Limits {
	return core.Limits{
		MarginX: c.MarginX,
		MarginY: c.MarginY,
		MinW:    c.MinWidth,
		MinH:    c.MinHeight,
		Grid:    c.GridUnit,
	}
}

// Container is the bounding area boxes live in. X and Y are the page (client)
// position of its top-left corner, used to translate pointer coordinates.
// W and H bound every box.
type Container struct {
	X, Y float64
	W, H float64
}

// Extent returns the container size.
func (c Container) Extent() core.Extent {
	return core.Extent{W: c.W, H: c.H}
}

// Local converts client coordinates to container-relative ones.
func (c Container) Local(x, y float64) (float64, float64) {
	return x - c.X, y - c.Y
}
