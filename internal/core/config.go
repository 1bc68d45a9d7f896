package core

// RuntimeConfig contains the terminal-side settings a board host starts with.
type RuntimeConfig struct {
	ScreenW int // Screen width in characters
	ScreenH int // Screen height in characters
	InsetX  int // Columns between the screen edge and the container
	InsetY  int // Rows between the screen top and the container
	Footer  int // Rows reserved below the container for the status line
}

// ContainerExtent returns the container size that fits the screen after the
// insets and footer are removed. Sizes never go below zero.
func (c RuntimeConfig) ContainerExtent() Extent {
	w := c.ScreenW - 2*c.InsetX
	h := c.ScreenH - 2*c.InsetY - c.Footer
	return Extent{W: float64(Max(w, 0)), H: float64(Max(h, 0))}
}
