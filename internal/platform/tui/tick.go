// Package tui provides the Bubble Tea host for panelboard.
// It handles the terminal UI loop, mouse and key mapping, and board
// rendering. All geometry decisions are left to the engine.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// SettleMsg is sent when a resize debounce window may have elapsed.
type SettleMsg time.Time

// settleCmd returns a Bubble Tea command that fires once the debounce window
// has passed. A zero window fires on the next frame.
func settleCmd(window time.Duration) tea.Cmd {
	if window <= 0 {
		window = time.Millisecond
	}
	return tea.Tick(window, func(t time.Time) tea.Msg {
		return SettleMsg(t)
	})
}
