package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/entity"
	"github.com/vovakirdan/tui-runner/internal/runner"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// Options configure a game Model.
type Options struct {
	Runner  config.RunnerConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // nil disables run history
	Player  string
	Logger  *log.Logger // nil discards log output
	Clock   core.Clock  // nil uses the system monotonic clock
}

// Model is the Bubble Tea model hosting one runner session.
type Model struct {
	session  *runner.Session
	screen   *core.Screen
	store    *storage.Store
	clock    core.Clock
	config   core.RuntimeConfig
	player   string
	keys     *KeyMapper
	logger   *log.Logger
	quitting bool
	runSaved bool // Whether the current game over has been recorded
}

// NewModel creates a new Bubble Tea model and starts a session.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	clock := opts.Clock
	if clock == nil {
		clock = core.NewSystemClock()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	factory := entity.NewFactory(opts.Runner, cfg.Seed)

	return Model{
		session: runner.NewSession(opts.Runner, factory, cfg.ScreenW, cfg.ScreenH, clock.Now()),
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:   opts.Store,
		clock:   clock,
		config:  cfg,
		player:  opts.Player,
		keys:    NewKeyMapper(),
		logger:  logger,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.keys.MapMouse(msg) == core.ActionJump {
			m.session.Signal(m.clock.Now())
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. The jump signal goes straight to the
// session so it is never queued or dropped.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionJump:
		m.session.Signal(m.clock.Now())
	case core.ActionScreenshot:
		m.saveScreenshot()
	}

	return m, nil
}

// handleResize changes the drawing surface only; the run carries on.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.session.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the session one frame and schedules the next.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	now := m.clock.Now()
	m.session.Tick(now)

	state := m.session.State()
	switch {
	case !state.GameOver:
		m.runSaved = false
	case !m.runSaved:
		m.saveRun(state, m.session.Duration(now))
		m.runSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun records a finished run. Best-effort: the game continues regardless.
func (m Model) saveRun(state core.GameState, d time.Duration) {
	if m.store == nil || state.Score <= 0 {
		return
	}

	_, err := m.store.SaveRun(storage.Run{
		Player:      m.player,
		Score:       state.Score,
		Discoveries: state.Discoveries,
		Frames:      state.Frames,
		Duration:    d,
	})
	if err != nil {
		m.logger.Warn("could not save run", "player", m.player, "score", state.Score, "error", err)
		return
	}
	m.logger.Info("run finished", "player", m.player, "score", state.Score, "discoveries", state.Discoveries)
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.session.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".runner", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	filename := fmt.Sprintf("runner_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
	}
}

// State returns the session's current state.
func (m Model) State() core.GameState {
	return m.session.State()
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with a new model.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Left click counts as a tap
	)

	_, err := p.Run()
	return err
}
