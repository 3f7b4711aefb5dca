package sim

import (
	"math/rand"

	"github.com/vovakirdan/rush-arcade/internal/config"
)

// State is the whole simulated world. It is owned by the host loop and
// advanced with Update; nothing in the package keeps global state.
type State struct {
	Tick        int // completed updates
	Player      *Player
	Enemies     []*Enemy      // dead enemies stay as corpses
	Projectiles []*Projectile // only live projectiles after each Update
	Outcome     Outcome

	// Animations are created by Update and advanced by the host.
	Animations []*Animation
	// Events holds what happened during the most recent Update.
	Events []Event
	// ScreenFlash is the full-screen damage flash; its alpha fades to 0.
	ScreenFlash RGBA

	cfg        config.RushConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	seed       int64
}

// New builds the initial world for an arena.
// Unknown enemy kinds in the arena are skipped.
func New(cfg config.RushConfig, arena config.RushArena, seed int64) *State {
	s := &State{
		Player:     newPlayer(arena.Player, cfg.Player),
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		rng:        rand.New(rand.NewSource(seed)), //#nosec G404 -- deterministic gameplay RNG
		seed:       seed,
	}
	for _, spawn := range arena.Enemies {
		if e, ok := newEnemy(spawn, cfg); ok {
			s.Enemies = append(s.Enemies, e)
		}
	}
	return s
}

// Config returns the configuration the state was built with.
func (s *State) Config() config.RushConfig {
	return s.cfg
}

// Seed returns the RNG seed the state was built with.
func (s *State) Seed() int64 {
	return s.seed
}

// Update advances the world by one tick.
//
// Behavior runs first in a fixed order (player, enemies, projectiles) on
// the positions left by the previous tick, then queued hits are resolved,
// and only then is every velocity integrated. Once an outcome is decided
// enemies and projectiles stop acting and new hits are discarded.
func (s *State) Update(in Intent) {
	s.Events = s.Events[:0]

	s.tickPlayer(in)

	if s.Outcome == OutcomeNone {
		for _, e := range s.Enemies {
			if e.Dead() {
				continue
			}
			s.tickEnemy(e)
		}
		for _, p := range s.Projectiles {
			s.tickProjectile(p)
		}
		s.pruneProjectiles()
	}

	s.handleHits()
	s.integrate()

	s.Tick++
}

// integrate applies one tick of velocity to every body. Everything except
// projectiles is kept inside the visible world.
func (s *State) integrate() {
	w := s.cfg.World

	s.Player.Pos = clampToWorld(s.Player.Pos.Add(s.Player.Vel), w)
	for _, e := range s.Enemies {
		e.Pos = clampToWorld(e.Pos.Add(e.Vel), w)
	}
	for _, p := range s.Projectiles {
		p.Pos = p.Pos.Add(p.Vel)
	}
}

// Kills returns the number of dead enemies.
func (s *State) Kills() int {
	n := 0
	for _, e := range s.Enemies {
		if e.Dead() {
			n++
		}
	}
	return n
}

// Finished reports whether the run is over and the player has come to
// rest, which is when the host shows the result.
func (s *State) Finished() bool {
	return s.Outcome != OutcomeNone && s.Player.State.Kind == PlayerMovement
}
