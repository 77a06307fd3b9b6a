package tui

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/journal"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// Options configures a game session.
type Options struct {
	Runtime core.RuntimeConfig
	Config  config.TetrisConfig
	Store   *storage.Store  // Ledger for finished runs, may be nil
	Journal *journal.Writer // Event recording, may be nil
	Logger  *log.Logger     // Defaults to a discarding logger
	Player  string

	// Renderer styles the game screen. Defaults to the lipgloss default renderer.
	Renderer *ScreenRenderer

	// ScreenshotDir defaults to ~/.tetris/screenshots.
	ScreenshotDir string

	// Now is the clock for journal timestamps and run records.
	Now func() time.Time
}

// Model is the Bubble Tea model for one tetris game.
// It owns the machine and the tick timer: every TickMsg carries the
// generation it was scheduled under, and only the current generation is
// delivered to the machine.
type Model struct {
	machine  *tetris.Machine
	state    tetris.State
	screen   *core.Screen
	renderer *ScreenRenderer
	theme    tetris.Theme
	keys     KeyMap
	help     help.Model
	runs     runsBoard
	opts     Options
	logger   *log.Logger

	gen        uint64 // Generation of the one live tick timer
	ticking    bool   // Whether a tick of the current generation is pending
	showRuns   bool
	autoPaused bool // Paused by opening the runs board
	journalErr bool // Journal writes stopped after the first failure
	quitting   bool
}

// NewModel creates a new model and starts a game.
func NewModel(opts Options) Model {
	// Use time-based seed if not specified
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Renderer == nil {
		opts.Renderer = defaultScreenRenderer
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = defaultScreenshotDir()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	base, floor := opts.Config.Speed.Durations()
	machine := tetris.NewMachine(
		rand.New(rand.NewSource(opts.Runtime.Seed)),
		tetris.SpeedConfig{Base: base, Floor: floor},
	)

	h := help.New()
	h.ShowAll = false

	keys := NewKeyMap(opts.Config.Keys)
	theme := ThemeFromConfig(opts.Config.Theme)
	theme.PauseKey = firstKey(keys.Pause)
	theme.RestartKey = firstKey(keys.Restart)

	return Model{
		machine:  machine,
		state:    machine.State(),
		screen:   core.NewScreen(opts.Runtime.ScreenW, gameHeight(opts.Runtime.ScreenH)),
		renderer: opts.Renderer,
		theme:    theme,
		keys:     keys,
		help:     h,
		runs:     newRunsBoard(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		opts:     opts,
		logger:   opts.Logger,
		ticking:  true,
	}
}

// gameHeight leaves the last terminal row for the help line.
func gameHeight(h int) int {
	return max(h-1, 0)
}

// Init starts the tick timer.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started",
		"player", m.opts.Player,
		"seed", m.opts.Runtime.Seed,
		"interval", m.machine.Interval(),
	)
	return tickCmd(m.gen, m.machine.Interval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logger.Info("game quit", "player", m.opts.Player, "score", m.state.Score)
		return m, tea.Quit
	case key.Matches(msg, m.keys.Runs):
		return m.toggleRuns()
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	if m.showRuns {
		if msg.Type == tea.KeyEsc {
			return m.toggleRuns()
		}
		var cmd tea.Cmd
		m.runs, cmd = m.runs.update(msg)
		return m, cmd
	}

	if ev, ok := m.keys.Event(msg); ok {
		return m.dispatch(ev)
	}
	return m, nil
}

// toggleRuns opens or closes the runs board. A running game is paused
// while the board is open and resumed when it closes.
func (m Model) toggleRuns() (Model, tea.Cmd) {
	m.showRuns = !m.showRuns
	if m.showRuns {
		m.runs.refresh(m.opts.Store)
		if !m.state.Paused && !m.state.Terminated {
			m.autoPaused = true
			return m.dispatch(tetris.EventPause)
		}
		return m, nil
	}
	if m.autoPaused {
		m.autoPaused = false
		return m.dispatch(tetris.EventPause)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameHeight(msg.Height))
	m.help.Width = msg.Width
	m.runs.resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick delivers a tick from the live timer and drops stale ones.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || !m.ticking {
		return m, nil
	}
	m.ticking = false
	return m.dispatch(tetris.EventTick)
}

// dispatch hands one event to the machine and reschedules the timer.
func (m Model) dispatch(ev tetris.Event) (Model, tea.Cmd) {
	prev := m.state
	out := m.machine.Handle(ev)
	m.state = out.State
	m.record(ev)

	if out.State.Terminated && !prev.Terminated {
		m.finishRun()
	}

	var cmd tea.Cmd
	switch {
	case out.Retune:
		// A new generation orphans whatever tick is still pending.
		m.gen++
		m.ticking = true
		cmd = tickCmd(m.gen, out.Interval)
		m.logger.Debug("tick retuned", "interval", out.Interval, "gen", m.gen)
	case ev == tetris.EventTick && !out.State.Terminated:
		m.ticking = true
		cmd = tickCmd(m.gen, out.Interval)
	}
	return m, cmd
}

// record appends ev to the journal. After a failed write the journal is
// abandoned and the game continues.
func (m *Model) record(ev tetris.Event) {
	if m.opts.Journal == nil || m.journalErr {
		return
	}
	if err := m.opts.Journal.Append(ev, m.opts.Now()); err != nil {
		m.journalErr = true
		m.logger.Warn("journal disabled", "error", err)
	}
}

// finishRun stores a game that just ended. It runs once per game.
func (m *Model) finishRun() {
	s := m.state
	m.logger.Info("game over",
		"player", m.opts.Player,
		"score", s.Score,
		"rows", s.RowsCleared,
		"level", s.Level,
		"high", s.HighScore,
	)
	if m.opts.Store == nil {
		return
	}
	_, err := m.opts.Store.RecordRun(storage.Run{
		Player:  m.opts.Player,
		Score:   s.Score,
		Rows:    s.RowsCleared,
		Level:   s.Level,
		EndedAt: m.opts.Now(),
	})
	if err != nil {
		m.logger.Warn("could not record run", "error", err)
	}
	if m.showRuns {
		m.runs.refresh(m.opts.Store)
	}
}

// saveScreenshot saves the current game screen to a file.
func (m *Model) saveScreenshot() {
	tetris.Render(m.state, m.screen, m.theme)
	path, err := saveScreenshot(m.screen, m.opts.ScreenshotDir, m.opts.Now())
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpLine := m.help.View(m.keys)
	if m.showRuns {
		return m.runs.view(helpLine)
	}

	tetris.Render(m.state, m.screen, m.theme)
	return lipgloss.JoinVertical(lipgloss.Left, m.renderer.Render(m.screen), helpLine)
}

// State returns the game state as last seen by the model.
func (m Model) State() tetris.State {
	return m.state
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
