package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rush-arcade/internal/core"
	"github.com/vovakirdan/rush-arcade/internal/games/rush"
	"github.com/vovakirdan/rush-arcade/internal/games/rush/replay"
	"github.com/vovakirdan/rush-arcade/internal/games/rush/sim"
	"github.com/vovakirdan/rush-arcade/internal/platform/sound"
	"github.com/vovakirdan/rush-arcade/internal/registry"
	"github.com/vovakirdan/rush-arcade/internal/storage"
)

// Options carries the optional services of a game session.
// The zero value runs silently without logging or recording.
type Options struct {
	Logger *log.Logger
	Sound  *sound.Player

	// RecordPath, when set, receives a replay of every finished run.
	RecordPath string

	// AllowBack lets B return to the menu while paused or after game over.
	AllowBack bool
}

// Model is the Bubble Tea model for running arcade games.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       Options
	keys       *KeyMapper
	hold       *core.HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState

	quitting    bool
	backToMenu  bool
	runSaved    bool // Whether the run has been stored for current game over
	replaySaved bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		opts:       opts,
		keys:       NewKeyMapper(),
		hold:       core.NewHoldTracker(cfg.EffectiveHoldTicks()),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logReset()
	return tickCmd(m.config.TickRate)
}

// logReset reports the start of a run.
func (m Model) logReset() {
	if rg, ok := m.game.(*rush.Game); ok {
		if err := rg.LoadErr(); err != nil {
			m.opts.Logger.Warn("config load failed, using defaults", "error", err)
		}
	}
	m.opts.Logger.Info("run started", "game", m.game.ID(), "seed", m.config.Seed)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The world is resolution independent; only the view follows.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, _ := m.keys.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.saveReplay()
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		if m.opts.AllowBack && (m.gameState.GameOver || m.gameState.Paused) {
			m.saveReplay()
			m.opts.Sound.SetCharge(0)
			m.backToMenu = true
		}
		return m, nil

	case core.ActionRestart:
		if !m.gameState.GameOver {
			return m, nil
		}
	}

	m.keys.MapKeyToFrame(msg, m.hold, &m.inputFrame)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.logReset()
		m.gameState = m.game.State()
		m.runSaved = false
		m.replaySaved = false
		m.hold.Reset()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	m.hold.Apply(&m.inputFrame)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.afterStep()

	m.hold.Advance()
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// afterStep feeds audio and persists the run once it ends.
func (m *Model) afterStep() {
	rg, isRush := m.game.(*rush.Game)
	if isRush {
		m.opts.Sound.Handle(rg.Events())
		m.opts.Sound.SetCharge(chargeTicks(rg.Sim(), m.gameState))
	}

	if !m.gameState.GameOver || m.runSaved {
		return
	}
	m.runSaved = true

	if !isRush {
		if m.store != nil && m.gameState.Score > 0 {
			if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
				m.opts.Logger.Error("save score failed", "error", err)
			}
		}
		return
	}

	s := rg.Sim()
	run := storage.Run{
		GameID:  rg.ID(),
		Outcome: storage.OutcomeLost,
		Score:   m.gameState.Score,
		Ticks:   s.Tick,
		HP:      s.Player.HP,
		Kills:   s.Kills(),
		Seed:    s.Seed(),
	}
	if m.gameState.Won {
		run.Outcome = storage.OutcomeWon
	}
	m.opts.Logger.Info("run finished",
		"game", run.GameID, "outcome", run.Outcome, "score", run.Score,
		"ticks", run.Ticks, "hp", run.HP, "kills", run.Kills)

	if m.store != nil {
		if _, err := m.store.SaveRun(run); err != nil {
			m.opts.Logger.Error("save run failed", "error", err)
		}
	}
	m.saveReplay()
}

// chargeTicks is the hum level input: the current charge length, or 0
// when nothing is charging or the game is halted.
func chargeTicks(s *sim.State, st core.GameState) int {
	if s == nil || st.Paused || st.GameOver || s.Player.State.Kind != sim.PlayerCharging {
		return 0
	}
	return s.Player.State.Ticks + 1
}

// saveReplay writes the current run to RecordPath, once per run.
func (m *Model) saveReplay() {
	if m.opts.RecordPath == "" || m.replaySaved {
		return
	}
	rg, ok := m.game.(*rush.Game)
	if !ok || len(rg.Intents()) == 0 {
		return
	}
	m.replaySaved = true

	if err := replay.Save(m.opts.RecordPath, replay.FromGame(rg, m.config.TickRate)); err != nil {
		m.opts.Logger.Error("save replay failed", "path", m.opts.RecordPath, "error", err)
		return
	}
	m.opts.Logger.Info("replay saved", "path", m.opts.RecordPath, "ticks", len(rg.Intents()))
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.opts.Logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot failed", "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user asked to leave the program.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// GameState returns the state after the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
