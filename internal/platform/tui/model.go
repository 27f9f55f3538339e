package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dandaka/internal/core"
	"github.com/vovakirdan/dandaka/internal/registry"
	"github.com/vovakirdan/dandaka/internal/storage"
)

// Options configures the terminal front end around a game.
type Options struct {
	Store  *storage.Store // Optional; finished runs are not saved without it
	Logger *log.Logger    // Optional; defaults to discarding
	Cues   CueSink        // Optional; defaults to logging cues

	// HoldWindow is how long a key press counts as held.
	HoldWindow time.Duration
	// MaxFrameDelta bounds the seconds of wall-clock time fed to one Step.
	MaxFrameDelta float64
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{
		HoldWindow:    250 * time.Millisecond,
		MaxFrameDelta: 0.1,
	}
}

// CueSink receives sound cues emitted by the simulation.
type CueSink interface {
	Play(cue string)
}

// logCues is the cue sink used when no synthesiser is attached.
type logCues struct {
	log *log.Logger
}

func (c logCues) Play(cue string) {
	c.log.Debug("sound cue", "cue", cue)
}

// loggerSetter is implemented by games that log from inside the simulation.
type loggerSetter interface {
	SetLogger(l *log.Logger)
}

// Model is the Bubble Tea model for running the game in a terminal.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	opts      Options
	log       *log.Logger
	config    core.RuntimeConfig
	keys      *KeyMapper
	held      *HeldKeys
	gameState core.GameState
	lastTick  time.Time
	started   time.Time
	frames    int
	quitting  bool
	runSaved  bool // Whether the current finished run has been saved
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Cues == nil {
		opts.Cues = logCues{log: logger}
	}
	if ls, ok := game.(loggerSetter); ok {
		ls.SetLogger(logger.WithPrefix(game.ID()))
	}

	now := time.Now()
	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:     opts,
		log:      logger,
		config:   cfg,
		keys:     NewKeyMapper(),
		held:     NewHeldKeys(opts.HoldWindow),
		lastTick: now,
		started:  now,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.log.Info("run started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, quit := m.keys.MapKey(msg)
	if quit {
		m.quitting = true
		return m, tea.Quit
	}
	m.held.Press(action, now)
	return m, nil
}

// handleResize processes window resize events. The simulation works in world
// units, so only the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// clampDelta bounds a wall-clock delta to [0, max]. A non-positive max
// disables the upper bound.
func clampDelta(dt, max float64) float64 {
	if dt < 0 {
		return 0
	}
	if max > 0 && dt > max {
		return max
	}
	return dt
}

// handleTick advances the simulation by the wall-clock time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := clampDelta(now.Sub(m.lastTick).Seconds(), m.opts.MaxFrameDelta)
	m.lastTick = now
	m.frames++

	in := m.held.Frame(now)

	if in.Has(core.ActionRestart) && m.gameState.Finished() {
		m.restart(now)
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(in, dt)
	m.gameState = result.State
	m.dispatch(m.game.DrainEvents())

	if m.gameState.Finished() && !m.runSaved {
		m.saveRun(now)
		m.runSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// restart begins a new run with a fresh seed.
func (m *Model) restart(now time.Time) {
	m.config.Seed = now.UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.runSaved = false
	m.started = now
	m.held.Reset()
	m.log.Info("run restarted", "seed", m.config.Seed)
}

// dispatch routes simulation events to the platform. Camera shake and
// floating numbers are already part of the frame.
func (m *Model) dispatch(events []core.Event) {
	for _, ev := range events {
		switch e := ev.(type) {
		case core.SoundEvent:
			m.opts.Cues.Play(e.Cue)
		case core.ChapterAdvancedEvent:
			m.log.Info("chapter", "from", e.From, "to", e.To)
		case core.GameOverEvent:
			m.log.Info("game over", "score", e.Score, "chapter", e.Chapter)
		case core.VictoryEvent:
			m.log.Info("victory", "score", e.Score)
		case core.PlayerDamagedEvent:
			m.log.Debug("player hit", "amount", e.Amount, "health", e.Health, "source", e.Source)
		}
	}
}

// saveRun records the finished run. Failures are logged; play continues.
func (m *Model) saveRun(now time.Time) {
	if m.opts.Store == nil {
		return
	}
	run := storage.Run{
		GameID:   m.game.ID(),
		Score:    m.gameState.Score,
		Kills:    m.gameState.Kills,
		Chapter:  m.gameState.Chapter,
		Victory:  m.gameState.Victory,
		Duration: now.Sub(m.started),
		Seed:     m.config.Seed,
	}
	if _, err := m.opts.Store.SaveRun(run); err != nil {
		m.log.Error("could not save run", "err", err)
		return
	}
	m.log.Info("run saved", "score", run.Score, "result", run.Result())
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	DrawFrame(m.screen, m.game.Frame(), true)

	home, err := os.UserHomeDir()
	if err != nil {
		m.log.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".dandaka", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot failed", "err", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	blinkOn := (m.frames/4)%2 == 0
	DrawFrame(m.screen, m.game.Frame(), blinkOn)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
