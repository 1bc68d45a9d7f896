package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/panelboard/internal/arrangements"
	"github.com/vovakirdan/panelboard/internal/config"
	"github.com/vovakirdan/panelboard/internal/core"
	"github.com/vovakirdan/panelboard/internal/engine"
	"github.com/vovakirdan/panelboard/internal/registry"
	"github.com/vovakirdan/panelboard/internal/storage"
)

// BoardOptions configures a board session.
type BoardOptions struct {
	Config      config.BoardConfig
	Arrangement string         // Registry id; arrangements.DefaultID when empty
	Origin      string         // Journal origin, "local" or "ssh"
	Store       *storage.Store // Optional session journal
	Logger      *log.Logger
	Width       int // Initial terminal width
	Height      int // Initial terminal height
}

// boardEvents collects listener callbacks between frames. It is shared by
// pointer so every copy of the model sees the same feed.
type boardEvents struct {
	updates int
	flash   string
}

func (ev *boardEvents) listener() engine.Listener {
	return engine.ListenerFuncs{
		Updated: func(engine.BoxView) { ev.updates++ },
		Closed:  func(id engine.BoxID) { ev.flash = fmt.Sprintf("closed #%d", id) },
	}
}

// BoardModel is the Bubble Tea model hosting one engine.
type BoardModel struct {
	opts        BoardOptions
	arrangement registry.Arrangement
	engine      *engine.Engine
	events      *boardEvents
	screen      *core.Screen
	runtime     core.RuntimeConfig
	extent      core.Extent // Last extent sent to the engine
	keys        BoardKeyMap
	help        help.Model
	logger      *log.Logger
	journal     *JournalModel
	started     time.Time
	seeded      bool
	showHelp    bool
	saved       bool
	quitting    bool
}

// NewBoardModel creates a board for the requested arrangement. The board is
// seeded as soon as the terminal has a usable size.
func NewBoardModel(opts BoardOptions) (BoardModel, error) {
	if opts.Arrangement == "" {
		opts.Arrangement = arrangements.DefaultID
	}
	if opts.Origin == "" {
		opts.Origin = "local"
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	arr, err := registry.Create(opts.Arrangement)
	if err != nil {
		return BoardModel{}, err
	}

	runtime := opts.Config.Runtime(opts.Width, opts.Height)
	ext := runtime.ContainerExtent()
	events := &boardEvents{}
	eng := engine.New(
		engine.Container{
			X: float64(runtime.InsetX),
			Y: float64(runtime.InsetY),
			W: ext.W,
			H: ext.H,
		},
		opts.Config.EngineConfig(),
		engine.WithListener(events.listener()),
		engine.WithLogger(opts.Logger.WithPrefix("engine")),
	)

	h := help.New()
	h.Width = opts.Width

	m := BoardModel{
		opts:        opts,
		arrangement: arr,
		engine:      eng,
		events:      events,
		screen:      core.NewScreen(runtime.ScreenW, runtime.ScreenH-runtime.Footer),
		runtime:     runtime,
		extent:      ext,
		keys:        DefaultBoardKeyMap(),
		help:        h,
		logger:      opts.Logger,
		started:     time.Now(),
	}
	m.seed()
	return m, nil
}

// seed runs the arrangement once the container is not degenerate.
func (m *BoardModel) seed() {
	if m.seeded || m.extent.W <= 0 || m.extent.H <= 0 {
		return
	}
	m.seeded = true
	if err := m.arrangement.Seed(m.engine); err != nil {
		m.logger.Warn("arrangement failed", "arrangement", m.arrangement.ID(), "error", err)
		m.events.flash = "arrangement failed: " + err.Error()
		return
	}
	m.logger.Debug("board seeded", "arrangement", m.arrangement.ID(), "boxes", m.engine.Len())
}

// Engine returns the engine behind the board.
func (m BoardModel) Engine() *engine.Engine {
	return m.engine
}

// Init initializes the board.
func (m BoardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.journal != nil {
		return m.updateJournal(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case SettleMsg:
		m.engine.SettleResize(time.Time(msg))
		return m, nil
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// handleResize lays the container out for the new terminal size. The first
// usable size is applied at once so the board can be seeded; later sizes go
// through the engine's debounce.
func (m BoardModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime = m.opts.Config.Runtime(msg.Width, msg.Height)
	m.screen.Resize(m.runtime.ScreenW, m.runtime.ScreenH-m.runtime.Footer)
	m.help.Width = msg.Width
	m.engine.SetOrigin(float64(m.runtime.InsetX), float64(m.runtime.InsetY))

	ext := m.runtime.ContainerExtent()
	if ext == m.extent {
		return m, nil
	}
	m.extent = ext
	m.engine.ContainerResized(ext.W, ext.H)

	if !m.seeded {
		m.engine.FlushResize()
		m.seed()
		return m, nil
	}
	return m, settleCmd(m.engine.Config().ResizeDebounce)
}

// handleMouse routes a mouse message to the engine.
func (m *BoardModel) handleMouse(msg tea.MouseMsg) {
	ev := pointerFromMouse(msg)
	switch ev.Kind {
	case core.PointerPress:
		v, h, ok := topmostHit(m.engine.Stack(), m.engine.Container(), msg.X, msg.Y)
		if !ok {
			return
		}
		if h.zone == zoneClose {
			if err := m.engine.CloseBox(v.ID); err != nil {
				m.logger.Debug("close failed", "box", v.ID, "error", err)
			}
			return
		}
		if err := m.engine.PointerDown(v.ID, ev.X, ev.Y, h.mode); err != nil {
			m.logger.Debug("gesture rejected", "box", v.ID, "mode", h.mode, "error", err)
		}
	case core.PointerMotion:
		m.engine.PointerMove(ev.X, ev.Y)
	case core.PointerRelease:
		m.engine.PointerUp(ev.X, ev.Y)
	}
}

// handleKey processes keyboard input.
func (m BoardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.finish()
		m.quitting = true
		return m, tea.Quit

	case core.ActionAdd:
		if m.extent.W > 0 && m.extent.H > 0 {
			v := m.engine.AddBox()
			m.events.flash = fmt.Sprintf("added #%d", v.ID)
		}

	case core.ActionClose:
		if id := m.engine.Selected(); id != 0 {
			//nolint:errcheck // Selected is always live
			m.engine.CloseBox(id)
		}

	case core.ActionCycle:
		if id := m.engine.CycleSelection(); id != 0 {
			m.events.flash = fmt.Sprintf("raised #%d", id)
		}

	case core.ActionHelp:
		m.showHelp = !m.showHelp

	case core.ActionStats:
		j := NewJournalModel(m.opts.Store, m.runtime.ScreenW, m.runtime.ScreenH)
		m.journal = &j
	}
	return m, nil
}

// updateJournal forwards messages to the open journal screen.
func (m BoardModel) updateJournal(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		// Keep the board in step while the journal is up.
		next, _ := m.handleResize(wsm)
		m = next.(BoardModel)
	}

	newModel, cmd := m.journal.Update(msg)
	j, ok := newModel.(JournalModel)
	if !ok {
		return m, cmd
	}

	switch {
	case j.IsQuitting():
		m.journal = nil
		m.finish()
		m.quitting = true
		return m, tea.Quit
	case j.IsGoingBack():
		m.journal = nil
		return m, settleCmd(0)
	}
	m.journal = &j
	return m, cmd
}

// finish records the session in the journal. Saving is best effort.
func (m *BoardModel) finish() {
	if m.saved || m.opts.Store == nil {
		return
	}
	m.saved = true

	rec, err := m.opts.Store.SaveSession(storage.SessionRecord{
		Arrangement: m.arrangement.ID(),
		Origin:      m.opts.Origin,
		Stats:       m.engine.Stats(),
		StartedAt:   m.started,
		EndedAt:     time.Now(),
	})
	if err != nil {
		m.logger.Warn("could not save session", "error", err)
		return
	}
	m.logger.Info("session saved", "session", rec.SessionID, "gestures", rec.Stats.Gestures())
}

// View renders the board.
func (m BoardModel) View() string {
	if m.quitting {
		return ""
	}
	if m.journal != nil {
		return m.journal.View()
	}

	paintBoard(m.screen, m.engine.Container(), m.engine.Stack())

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	if m.runtime.Footer > 0 {
		b.WriteString("\n")
		b.WriteString(m.footer())
	}
	return b.String()
}

// footer renders the status line, or the key help when toggled.
func (m BoardModel) footer() string {
	if m.showHelp {
		return m.help.ShortHelpView(m.keys.ShortHelp())
	}

	style := colorStyles[core.ColorStatus]
	parts := []string{
		m.arrangement.Title(),
		fmt.Sprintf("%d boxes", m.engine.Len()),
	}
	if id := m.engine.Selected(); id != 0 {
		parts = append(parts, fmt.Sprintf("selected #%d", id))
	}
	if s, ok := m.engine.Session(); ok {
		parts = append(parts, fmt.Sprintf("%s #%d", s.Mode, s.BoxID))
	}
	c := m.engine.Container()
	parts = append(parts, fmt.Sprintf("%gx%g", c.W, c.H))
	if m.events.flash != "" {
		parts = append(parts, m.events.flash)
	}
	parts = append(parts, "? keys")

	line := strings.Join(parts, " · ")
	if m.runtime.ScreenW > 0 && lipgloss.Width(line) > m.runtime.ScreenW {
		line = truncate(line, m.runtime.ScreenW)
	}
	return style.Render(line)
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// IsQuitting returns true if the user quit the board.
func (m BoardModel) IsQuitting() bool {
	return m.quitting
}

// Run starts a board in the local terminal and blocks until it exits.
func Run(opts BoardOptions) error {
	model, err := NewBoardModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running board: %w", err)
	}
	// Interrupted programs never saw the quit key.
	if bm, ok := final.(BoardModel); ok && !bm.quitting {
		bm.finish()
	}
	return nil
}
