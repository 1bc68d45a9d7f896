package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/panelboard/internal/registry"
	"github.com/vovakirdan/panelboard/internal/storage"
)

// Journal layout constants
const (
	maxSessions   = 100 // Max sessions to load
	journalChrome = 9   // Rows used by title, totals, tabs and help
)

// JournalKeyMap defines the key bindings for the journal screen.
type JournalKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k JournalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.PrevTab, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k JournalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Back, k.Quit},
	}
}

// DefaultJournalKeyMap returns default key bindings.
func DefaultJournalKeyMap() JournalKeyMap {
	return JournalKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next arrangement"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev arrangement"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "s"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// JournalModel is the Bubble Tea model for the session journal screen.
// The first tab covers every arrangement.
type JournalModel struct {
	tabs      []registry.Info
	cursor    int
	store     *storage.Store
	sessions  []storage.SessionRecord
	totals    *storage.Totals
	loadErr   error
	table     table.Model
	help      help.Model
	keys      JournalKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewJournalModel creates a new journal model.
func NewJournalModel(store *storage.Store, width, height int) JournalModel {
	tabs := append([]registry.Info{{ID: "", Title: "All"}}, registry.List()...)

	h := help.New()
	h.Width = width

	m := JournalModel{
		tabs:   tabs,
		store:  store,
		keys:   DefaultJournalKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table sized for the current window.
func (m *JournalModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Ended", Width: 13},
		{Title: "Layout", Width: 9},
		{Title: "From", Width: 6},
		{Title: "Boxes", Width: 6},
		{Title: "Moves", Width: 6},
		{Title: "Resizes", Width: 8},
		{Title: "Snaps", Width: 6},
		{Title: "Length", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-journalChrome, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads sessions and totals for the current tab.
func (m *JournalModel) load() {
	m.sessions, m.totals, m.loadErr = nil, nil, nil
	if m.store == nil {
		m.updateTableRows()
		return
	}

	arrangement := m.tabs[m.cursor].ID
	all, err := m.store.RecentSessions(maxSessions)
	if err != nil {
		m.loadErr = err
		m.updateTableRows()
		return
	}
	for _, rec := range all {
		if arrangement == "" || rec.Arrangement == arrangement {
			m.sessions = append(m.sessions, rec)
		}
	}
	m.totals, m.loadErr = m.store.Totals(arrangement)
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded sessions.
func (m *JournalModel) updateTableRows() {
	rows := make([]table.Row, len(m.sessions))
	for i, s := range m.sessions {
		rows[i] = table.Row{
			s.EndedAt.Local().Format("Jan 02 15:04"),
			s.Arrangement,
			s.Origin,
			fmt.Sprintf("%d", s.Stats.Added),
			fmt.Sprintf("%d", s.Stats.Moves),
			fmt.Sprintf("%d", s.Stats.Resizes),
			fmt.Sprintf("%d", s.Stats.Snaps),
			s.Duration().Round(time.Second).String(),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the journal model.
func (m JournalModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the journal.
func (m JournalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.NextTab):
			m.cursor = (m.cursor + 1) % len(m.tabs)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.PrevTab):
			m.cursor = (m.cursor - 1 + len(m.tabs)) % len(m.tabs)
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the journal.
func (m JournalModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("SESSION JOURNAL", m.width)))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.renderTotals(), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m JournalModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		if i == m.cursor {
			tabs[i] = activeTabStyle.Render(t.Title)
		} else {
			tabs[i] = tabStyle.Render(t.Title)
		}
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if lipgloss.Width(line) > m.width-4 {
		line = fmt.Sprintf("< %s >", m.tabs[m.cursor].Title)
	}
	return line
}

func (m JournalModel) renderTotals() string {
	if m.totals == nil || m.totals.Sessions == 0 {
		return ""
	}
	t := m.totals
	return fmt.Sprintf("%d sessions · %d boxes · %d moves · %d resizes · %d snaps · %d rescales",
		t.Sessions, t.Stats.Added, t.Stats.Moves, t.Stats.Resizes, t.Stats.Snaps, t.Stats.Rescales)
}

// renderTableContent renders the table or an explanatory message.
func (m JournalModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("Journal unavailable.\nThe session database could not be opened.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not read the journal:\n" + m.loadErr.Error())
	case len(m.sessions) == 0:
		return emptyStyle.Render("No sessions recorded yet.\nQuit a board to record one!")
	}
	return m.table.View()
}

// IsGoingBack returns true if the user wants to return to the board.
func (m JournalModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if the user wants to quit entirely.
func (m JournalModel) IsQuitting() bool {
	return m.quitting
}

// RunJournal runs the journal screen on its own.
func RunJournal(store *storage.Store, width, height int) error {
	model := NewJournalModel(store, width, height)
	// Back has nowhere to go, so it quits too.
	model.keys.Quit.SetKeys("q", "ctrl+c", "esc", "b")
	model.keys.Back.SetEnabled(false)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
