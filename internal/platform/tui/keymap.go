package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/panelboard/internal/core"
)

// BoardKeyMap defines the key bindings for the board.
type BoardKeyMap struct {
	Add   key.Binding
	Close key.Binding
	Cycle key.Binding
	Help  key.Binding
	Stats key.Binding
	Back  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BoardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Close, k.Cycle, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BoardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.Close, k.Cycle},
		{k.Stats, k.Help, k.Quit},
	}
}

// DefaultBoardKeyMap returns default key bindings.
func DefaultBoardKeyMap() BoardKeyMap {
	return BoardKeyMap{
		Add: key.NewBinding(
			key.WithKeys("a", "n"),
			key.WithHelp("a", "add box"),
		),
		Close: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x/del", "close selected"),
		),
		Cycle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "raise next"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Stats: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "journal"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a board action.
func (k BoardKeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Add):
		return core.ActionAdd
	case key.Matches(msg, k.Close):
		return core.ActionClose
	case key.Matches(msg, k.Cycle):
		return core.ActionCycle
	case key.Matches(msg, k.Help):
		return core.ActionHelp
	case key.Matches(msg, k.Stats):
		return core.ActionStats
	case key.Matches(msg, k.Back):
		return core.ActionBack
	}
	return core.ActionNone
}
