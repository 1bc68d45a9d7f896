package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for board elements.
const (
	ColorDefault   Color = iota
	ColorBackdrop        // Container background dots
	ColorBorder          // Container outline
	ColorIdle            // Box at rest
	ColorHover           // Box under the pointer
	ColorSelected        // Topmost, selected box
	ColorActive          // Box being moved or resized
	ColorCollision       // Box overlapping a partner
	ColorTitle           // Box title text
	ColorHandle          // Resize handle and close glyph
	ColorStatus          // Status line
)
