package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/panelboard/internal/core"
	"github.com/vovakirdan/panelboard/internal/engine"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorBackdrop:  lipgloss.NewStyle().Foreground(lipgloss.Color("237")),
	core.ColorBorder:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorIdle:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	core.ColorHover:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorSelected:  lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
	core.ColorActive:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorCollision: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorTitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorHandle:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorStatus:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// paintBoard draws the container and every box, bottom to top.
func paintBoard(dst *core.Screen, c engine.Container, stack []engine.BoxView) {
	dst.Clear()

	cx, cy := round(c.X), round(c.Y)
	cw, ch := round(c.W), round(c.H)
	dst.Fill(cx, cy, cw, ch, '·', core.ColorBackdrop)
	dst.DrawFrame(cx-1, cy-1, cw+2, ch+2, core.LightFrame, core.ColorBorder)

	for _, v := range stack {
		paintBox(dst, c, v)
	}
}

// paintBox draws one box: opaque interior, frame, title and close glyph.
func paintBox(dst *core.Screen, c engine.Container, v engine.BoxView) {
	x, y, w, h := cellRect(v, c)
	color, frame := boxStyle(v)

	dst.Fill(x, y, w, h, ' ', core.ColorDefault)
	dst.DrawFrame(x, y, w, h, frame, color)

	if w > 4 {
		dst.DrawTextClipped(x+2, y, x+w-closeInset-1, fmt.Sprintf(" #%d ", v.ID), core.ColorTitle)
	}
	if w > 2*closeInset {
		dst.SetColored(x+w-closeInset, y, '×', core.ColorHandle)
	}
	if h > 2 && w > 4 && v.Partner.Valid() {
		dst.DrawTextClipped(x+1, y+1, x+w-1, fmt.Sprintf("~#%d", v.Partner.ID), core.ColorCollision)
	}
}

// boxStyle picks the frame glyphs and color for a box's state. Gesture
// state wins over collision, which wins over selection and hover.
func boxStyle(v engine.BoxView) (core.Color, core.FrameRunes) {
	switch {
	case v.Mode.Active():
		return core.ColorActive, core.HeavyFrame
	case v.Partner.Valid():
		return core.ColorCollision, frameFor(v)
	case v.Selected:
		return core.ColorSelected, core.DoubleFrame
	case v.Mode == engine.ModeHover:
		return core.ColorHover, core.LightFrame
	}
	return core.ColorIdle, core.LightFrame
}

func frameFor(v engine.BoxView) core.FrameRunes {
	if v.Selected {
		return core.DoubleFrame
	}
	return core.LightFrame
}

// centerText pads text on the left so it is centred in width columns.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}
