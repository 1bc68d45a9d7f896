package core

import (
	"strings"
)

// Cell is a single character position on the screen.
type Cell struct {
	Rune  rune
	Color Color
}

// Screen is a 2D cell buffer the terminal host paints boxes into.
// It decouples box painting from the terminal: the host draws with simple rune
// operations and the platform layer turns the buffer into styled output.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  Max(width, 0),
		height: Max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions. Content is discarded; the host
// repaints every frame.
func (s *Screen) Resize(width, height int) {
	width, height = Max(width, 0), Max(height, 0)
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear fills the entire screen with uncoloured spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' '}
		}
	}
}

// Set places a rune with the default color at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetColored(x, y, r, ColorDefault)
}

// SetColored places a rune with a color at the given position.
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: c}
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, c Color) {
	i := 0
	for _, r := range text {
		s.SetColored(x+i, y, r, c)
		i++
	}
}

// DrawTextClipped writes text starting at (x, y) but never past maxX.
func (s *Screen) DrawTextClipped(x, y, maxX int, text string, c Color) {
	i := 0
	for _, r := range text {
		if x+i >= maxX {
			return
		}
		s.SetColored(x+i, y, r, c)
		i++
	}
}

// Fill paints every cell of the area with the given rune.
func (s *Screen) Fill(x, y, w, h int, r rune, c Color) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			s.SetColored(col, row, r, c)
		}
	}
}

// FrameRunes is the set of glyphs used by DrawFrame.
type FrameRunes struct {
	TopLeft, TopRight, BottomLeft, BottomRight rune
	Horizontal, Vertical                       rune
}

// LightFrame draws with thin box-drawing characters.
var LightFrame = FrameRunes{'┌', '┐', '└', '┘', '─', '│'}

// HeavyFrame draws with thick box-drawing characters.
var HeavyFrame = FrameRunes{'┏', '┓', '┗', '┛', '━', '┃'}

// DoubleFrame draws with double-line box-drawing characters.
var DoubleFrame = FrameRunes{'╔', '╗', '╚', '╝', '═', '║'}

// DrawFrame draws a box outline whose outer corners are (x, y) and
// (x+w-1, y+h-1). Frames smaller than 2x2 are not drawn.
func (s *Screen) DrawFrame(x, y, w, h int, f FrameRunes, c Color) {
	if w < 2 || h < 2 {
		return
	}
	right, bottom := x+w-1, y+h-1

	for col := x + 1; col < right; col++ {
		s.SetColored(col, y, f.Horizontal, c)
		s.SetColored(col, bottom, f.Horizontal, c)
	}
	for row := y + 1; row < bottom; row++ {
		s.SetColored(x, row, f.Vertical, c)
		s.SetColored(right, row, f.Vertical, c)
	}

	s.SetColored(x, y, f.TopLeft, c)
	s.SetColored(right, y, f.TopRight, c)
	s.SetColored(x, bottom, f.BottomLeft, c)
	s.SetColored(right, bottom, f.BottomRight, c)
}

// String converts the screen buffer to plain text, rows joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
