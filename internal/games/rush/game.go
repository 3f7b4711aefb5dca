// Package rush hosts the Rush simulation in the arcade.
// The player charges a dash and rushes through Crescents and Arrows,
// dodging shuriken fans and arrow runs.
package rush

import (
	"github.com/vovakirdan/rush-arcade/internal/config"
	"github.com/vovakirdan/rush-arcade/internal/core"
	"github.com/vovakirdan/rush-arcade/internal/games/rush/sim"
	"github.com/vovakirdan/rush-arcade/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game adapts a sim.State to the registry.Game interface.
type Game struct {
	id    string
	title string

	runtime core.RuntimeConfig
	cfg     config.RushConfig
	loadErr error
	state   *sim.State

	paused   bool
	debug    bool
	finished bool
	score    int

	events  []sim.Event // copy of the events of the last simulated tick
	intents []uint8     // one intent mask per simulated tick
}

// New creates a game for the arena with the given ID.
func New(arenaID, title string) *Game {
	return &Game{id: arenaID, title: title}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset loads the config and builds a fresh world.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadRush(configPath)
	g.loadErr = err
	if err != nil {
		cfg = config.DefaultRushConfig()
	}
	if difficultyPreset != "" {
		config.ApplyRushPreset(&cfg, difficultyPreset)
	}
	g.ResetWith(runtime, cfg)
}

// ResetWith builds a fresh world from an explicit config. Replays use it
// to bypass the config search path.
func (g *Game) ResetWith(runtime core.RuntimeConfig, cfg config.RushConfig) {
	g.runtime = runtime
	g.cfg = cfg

	arena, ok := cfg.Arena(g.id)
	if !ok && len(cfg.Arenas) > 0 {
		arena = cfg.Arenas[0]
	}

	g.state = sim.New(cfg, arena, runtime.Seed)
	g.paused = false
	g.finished = false
	g.score = 0
	g.events = g.events[:0]
	g.intents = g.intents[:0]
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionDebug) {
		g.debug = !g.debug
	}

	if g.finished {
		g.events = g.events[:0]
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		g.events = g.events[:0]
		return core.StepResult{State: g.State()}
	}

	g.StepIntent(IntentFromInput(in))
	return core.StepResult{State: g.State()}
}

// StepIntent runs one simulation tick followed by the animation runner.
func (g *Game) StepIntent(intent sim.Intent) {
	s := g.state
	s.Update(intent)
	sim.AdvanceAnimations(s)

	g.intents = append(g.intents, intent.Mask())
	g.events = append(g.events[:0], s.Events...)

	if s.Finished() && !g.finished {
		g.finished = true
		g.score = Score(s.Outcome, s.Player.HP, s.Tick, s.Kills())
	}
}

// IntentFromInput maps platform actions onto a player intent.
func IntentFromInput(in core.InputFrame) sim.Intent {
	return sim.Intent{
		Left:   in.Has(core.ActionLeft),
		Right:  in.Has(core.ActionRight),
		Up:     in.Has(core.ActionUp),
		Down:   in.Has(core.ActionDown),
		Charge: in.Has(core.ActionCharge),
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{}
	}
	score := g.score
	if !g.finished {
		score = Score(sim.OutcomeLost, 0, g.state.Tick, g.state.Kills())
	}
	return core.GameState{
		Score:    score,
		GameOver: g.finished,
		Paused:   g.paused,
		Won:      g.finished && g.state.Outcome == sim.OutcomeWon,
	}
}

// Sim returns the underlying world.
func (g *Game) Sim() *sim.State {
	return g.state
}

// Events returns the events of the last simulated tick. Paused and
// finished steps report none.
func (g *Game) Events() []sim.Event {
	return g.events
}

// Intents returns the intent masks of every simulated tick since Reset.
func (g *Game) Intents() []uint8 {
	return g.intents
}

// Config returns the config the current run was built with.
func (g *Game) Config() config.RushConfig {
	return g.cfg
}

// LoadErr returns the config loading error of the last Reset, if the
// game fell back to the built-in defaults.
func (g *Game) LoadErr() error {
	return g.loadErr
}

// Debug reports whether the force overlay is shown.
func (g *Game) Debug() bool {
	return g.debug
}

// Register every built-in arena as its own game.
func init() {
	for _, arena := range config.DefaultRushConfig().Arenas {
		id, title := arena.ID, arena.Title
		registry.Register(id, func() registry.Game {
			return New(id, title)
		})
	}
}
