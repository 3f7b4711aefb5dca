package sim

import (
	"math"

	"github.com/vovakirdan/rush-arcade/internal/core"
)

// stuckEpsilon is how little an arrow may move between samples before it
// counts as pinned against the world edge.
const stuckEpsilon = 1e-6

func (s *State) tickArrow(e *Enemy) {
	switch e.State.Kind {
	case EnemyStanding:
		s.handleStanding(e)
	case EnemyRunning:
		s.handleRunning(e)
	case EnemyMoveIntoAttackPosition, EnemyTelegraphAttack, EnemyAttack, EnemyDead:
		// not arrow states
	}
}

func (s *State) handleStanding(e *Enemy) {
	e.Vel = Vec2{}
	e.State.Ticks++
	if e.State.Ticks > s.cfg.Arrow.StandTicks {
		e.State = EnemyState{Kind: EnemyRunning}
	}
}

// handleRunning moves the arrow straight ahead. When the run expires or the
// arrow did not move since the last sample, it turns 90 degrees either way
// and draws a new run length. Running never returns to standing.
func (s *State) handleRunning(e *Enemy) {
	st := &e.State
	cfg := s.cfg.Arrow
	if !st.RunStarted {
		st.RunRemaining = s.newRunLength()
		st.RunStarted = true
	}

	st.Ticks++
	st.RunRemaining--

	e.Vel = core.FromAngle(e.FaceAngle).Scale(s.enemySpeed(cfg.Speed))

	stuck := false
	if n := len(st.Trail); n > 0 {
		stuck = st.Trail[n-1].Pos.Dist(e.Pos) < stuckEpsilon
	}
	if st.RunRemaining <= 0 || stuck {
		turn := math.Pi / 2
		if s.rng.Intn(2) == 1 {
			turn = -turn
		}
		e.FaceAngle = normalizeAngle(e.FaceAngle + turn)
		st.RunRemaining = s.newRunLength()
	}

	st.Trail = append(st.Trail, TrailSample{Pos: e.Pos, FaceAngle: e.FaceAngle})
	if len(st.Trail) > cfg.TrailLength {
		st.Trail = st.Trail[len(st.Trail)-cfg.TrailLength:]
	}

	if core.SweptHit(s.Player.Pos, s.Player.Radius, e.Pos, e.Vel, e.Radius) {
		s.Player.Hits = append(s.Player.Hits, Hit{Angle: e.Vel.Angle(), Type: HitRedArrow})
	}
}

func (s *State) newRunLength() int {
	return s.cfg.Arrow.RunMin + s.rng.Intn(s.cfg.Arrow.RunSpread)
}

// normalizeAngle maps a to [0, 2π).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
