package sim

import (
	"github.com/vovakirdan/rush-arcade/internal/config"
	"github.com/vovakirdan/rush-arcade/internal/core"
)

// EnemyKind identifies an enemy archetype.
type EnemyKind int

const (
	EnemyCrescent EnemyKind = iota // ranged: positions, telegraphs, fires a fan of shurikens
	EnemyArrow                     // melee: patrols in straight runs, hurts on contact
)

// String returns a human-readable name for the enemy kind.
func (k EnemyKind) String() string {
	switch k {
	case EnemyCrescent:
		return "crescent"
	case EnemyArrow:
		return "arrow"
	default:
		return "unknown"
	}
}

// EnemyStateKind discriminates EnemyState.
type EnemyStateKind int

const (
	EnemyMoveIntoAttackPosition EnemyStateKind = iota
	EnemyTelegraphAttack
	EnemyAttack
	EnemyStanding
	EnemyRunning
	EnemyDead
)

// String returns a human-readable name for the state kind.
func (k EnemyStateKind) String() string {
	switch k {
	case EnemyMoveIntoAttackPosition:
		return "move_into_attack_position"
	case EnemyTelegraphAttack:
		return "telegraph_attack"
	case EnemyAttack:
		return "attack"
	case EnemyStanding:
		return "standing"
	case EnemyRunning:
		return "running"
	case EnemyDead:
		return "dead"
	default:
		return "unknown"
	}
}

// TrailSample is one entry of an arrow's motion trail.
type TrailSample struct {
	Pos       Vec2
	FaceAngle float64
}

// EnemyState is the active enemy state. Fields other than Kind are only
// meaningful for the kinds noted.
type EnemyState struct {
	Kind EnemyStateKind

	// attack, standing, running, dead
	Ticks int

	// move_into_attack_position
	AttackPosition    Vec2
	HasAttackPosition bool

	// telegraph_attack
	Telegraph *Animation

	// running
	RunRemaining int
	RunStarted   bool
	Trail        []TrailSample
}

// Enemy is a Crescent or an Arrow. Dead enemies stay in State.Enemies as
// corpses.
type Enemy struct {
	Body
	Kind     EnemyKind
	State    EnemyState
	Tint     RGBA
	BaseTint RGBA
}

// Dead reports whether the enemy has been killed.
func (e *Enemy) Dead() bool {
	return e.State.Kind == EnemyDead
}

func newEnemy(spawn config.RushSpawn, cfg config.RushConfig) (*Enemy, bool) {
	e := &Enemy{Body: Body{Pos: core.V(spawn.X, spawn.Y)}}
	switch spawn.Kind {
	case config.KindCrescent:
		e.Kind = EnemyCrescent
		e.Radius = cfg.Crescent.Radius
		e.State = EnemyState{Kind: EnemyMoveIntoAttackPosition}
		e.BaseTint = CrescentTint
	case config.KindArrow:
		e.Kind = EnemyArrow
		e.Radius = cfg.Arrow.Radius
		e.State = EnemyState{Kind: EnemyStanding}
		e.BaseTint = ArrowTint
	default:
		return nil, false
	}
	e.Tint = e.BaseTint
	return e, true
}

func (s *State) tickEnemy(e *Enemy) {
	switch e.Kind {
	case EnemyCrescent:
		s.tickCrescent(e)
	case EnemyArrow:
		s.tickArrow(e)
	}
}

// kill turns enemy i into a corpse.
func (s *State) kill(i int) {
	e := s.Enemies[i]
	e.State = EnemyState{Kind: EnemyDead}
	e.Vel = Vec2{}
	s.cancelAnimations(&e.Tint)
	e.Tint = BloodTint
	s.emit(Event{Kind: EventEnemyKilled, Pos: e.Pos, Enemy: i})
}

// cancelAnimations drops every pending animation writing to target.
func (s *State) cancelAnimations(target *RGBA) {
	kept := s.Animations[:0]
	for _, a := range s.Animations {
		if a.Target != target {
			kept = append(kept, a)
		}
	}
	clear(s.Animations[len(kept):])
	s.Animations = kept
}

func (s *State) allEnemiesDead() bool {
	for _, e := range s.Enemies {
		if !e.Dead() {
			return false
		}
	}
	return true
}

// enemySpeed scales a base speed by the current difficulty level.
func (s *State) enemySpeed(base float64) float64 {
	return s.difficulty.Speed(base, 0, s.Tick)
}
