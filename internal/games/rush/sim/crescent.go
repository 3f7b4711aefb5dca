package sim

import (
	"math"
	"sort"

	"github.com/vovakirdan/rush-arcade/internal/core"
)

func (s *State) tickCrescent(e *Enemy) {
	switch e.State.Kind {
	case EnemyMoveIntoAttackPosition:
		s.handleMoveIntoAttackPosition(e)
	case EnemyTelegraphAttack:
		s.handleTelegraphAttack(e)
	case EnemyAttack:
		s.handleAttack(e)
	case EnemyStanding, EnemyRunning, EnemyDead:
		// not crescent states
	}
}

func (s *State) handleMoveIntoAttackPosition(e *Enemy) {
	st := &e.State
	cfg := s.cfg.Crescent
	if !st.HasAttackPosition {
		st.AttackPosition = s.pickAttackPosition(e)
		st.HasAttackPosition = true
	}

	if e.Pos.Dist(st.AttackPosition) < cfg.ArrivalRadius {
		e.Vel = Vec2{}
		e.State = EnemyState{Kind: EnemyTelegraphAttack}
		return
	}

	force := s.CrescentForces(e)
	e.Vel = e.Vel.Add(force)
	if l := e.Vel.Len(); l > 0 {
		e.Vel = e.Vel.Scale(s.enemySpeed(cfg.Speed) / l)
	}
	e.FaceVelocity()
}

// CrescentForces returns the goal attraction and player repulsion acting
// on e this tick, summed. It is zero when e has no attack position.
func (s *State) CrescentForces(e *Enemy) Vec2 {
	goal, repel := s.CrescentForceParts(e)
	return goal.Add(repel)
}

// CrescentForceParts returns the goal attraction and player repulsion
// acting on e separately.
func (s *State) CrescentForceParts(e *Enemy) (goal, repel Vec2) {
	cfg := s.cfg.Crescent
	if e.State.HasAttackPosition {
		goal = GoalAttractionForce(e.State.AttackPosition, e.Pos, cfg.GoalForce, cfg.GoalReach)
	}
	repel = PlayerRepulsionForce(s.Player.Pos, e.Pos, cfg.RepulsionForce, cfg.RepulsionReach)
	return goal, repel
}

// pickAttackPosition samples a ring around the player, keeps on-screen
// points and picks randomly among the ones farthest from e, so the
// crescent has to cross open ground to get there.
func (s *State) pickAttackPosition(e *Enemy) Vec2 {
	cfg := s.cfg.Crescent
	offset := s.rng.Float64() * (math.Pi / 4)
	ring := PositionsAround(s.Player.Pos, cfg.RingDistance, cfg.RingCount, offset)

	candidates := ring[:0]
	for _, p := range ring {
		if OnScreen(p, s.cfg.World) {
			candidates = append(candidates, p)
		}
	}

	if len(candidates) == 0 {
		w := s.cfg.World
		return core.V(
			float64(s.rng.Intn(max(int(w.Width)-200, 1))+100),
			float64(s.rng.Intn(max(int(w.Height)-200, 1))+100),
		)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Dist(e.Pos) > candidates[j].Dist(e.Pos)
	})
	n := min(cfg.PickAmong, len(candidates))
	return candidates[s.rng.Intn(n)]
}

func (s *State) handleTelegraphAttack(e *Enemy) {
	st := &e.State
	if st.Telegraph == nil {
		st.Telegraph = NewAnimation(&e.Tint, e.BaseTint, FlashTint, s.cfg.Crescent.TelegraphTicks)
		s.Animations = append(s.Animations, st.Telegraph)
		return
	}
	if st.Telegraph.Finished() {
		e.Tint = e.BaseTint
		e.State = EnemyState{Kind: EnemyAttack}
	}
}

func (s *State) handleAttack(e *Enemy) {
	st := &e.State
	st.Ticks++
	if st.Ticks == 1 {
		s.fireFan(e)
	}
	if st.Ticks >= s.cfg.Crescent.AttackTicks {
		e.State = EnemyState{Kind: EnemyMoveIntoAttackPosition}
	}
}

// fireFan launches one shuriken per fan angle, centered on the angle to
// the player, from a muzzle point in front of the crescent.
func (s *State) fireFan(e *Enemy) {
	cfg := s.cfg.Crescent
	aim := s.Player.Pos.Sub(e.Pos).Angle()
	e.FaceAngle = aim
	muzzle := e.Pos.Add(core.FromAngle(aim).Scale(cfg.MuzzleOffset))
	speed := s.enemySpeed(cfg.ShotSpeed)

	for _, deg := range cfg.FanDegrees {
		angle := aim + deg*math.Pi/180
		s.Projectiles = append(s.Projectiles, &Projectile{
			Body: Body{
				Pos:       muzzle,
				Vel:       core.FromAngle(angle).Scale(speed),
				FaceAngle: angle,
				Radius:    s.cfg.Projectile.Radius,
			},
			Alive: true,
			Owner: HitShuriken,
		})
	}
	s.emit(Event{Kind: EventShotsFired, Pos: muzzle, Angle: aim})
}
