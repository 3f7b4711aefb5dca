package sim

import (
	"math"

	"github.com/vovakirdan/rush-arcade/internal/config"
	"github.com/vovakirdan/rush-arcade/internal/core"
)

// PlayerStateKind discriminates PlayerState.
type PlayerStateKind int

const (
	PlayerMovement PlayerStateKind = iota
	PlayerCharging
	PlayerRushing
)

// String returns a human-readable name for the state kind.
func (k PlayerStateKind) String() string {
	switch k {
	case PlayerMovement:
		return "movement"
	case PlayerCharging:
		return "charging"
	case PlayerRushing:
		return "rushing"
	default:
		return "unknown"
	}
}

// PlayerState is the active player state. Fields other than Kind are only
// meaningful for the kinds noted.
type PlayerState struct {
	Kind              PlayerStateKind
	Ticks             int     // charging: ticks the charge has been held
	Power             int     // charging, rushing
	Ready             bool    // charging: power reached the rush threshold
	PredictedDistance float64 // charging: rush travel if released now (valid while Ready)
}

// Player is the controlled character.
type Player struct {
	Body
	State          PlayerState
	HP             int
	Hits           []Hit // cleared every tick by hit intake
	LastFlashTick  int
	LastDamageTick int
}

// never is far enough in the past that every cooldown has expired.
const never = -1000

func newPlayer(spawn config.RushSpawn, cfg config.RushPlayer) *Player {
	return &Player{
		Body: Body{
			Pos:    core.V(spawn.X, spawn.Y),
			Radius: cfg.Radius,
		},
		State:          PlayerState{Kind: PlayerMovement},
		HP:             cfg.HP,
		LastFlashTick:  never,
		LastDamageTick: never,
	}
}

// DiagonalSpeed is the per-axis speed used when moving diagonally, so the
// diagonal never outruns a cardinal move.
func DiagonalSpeed(speed float64) float64 {
	return math.Round(speed / math.Sqrt2)
}

func (s *State) tickPlayer(in Intent) {
	switch s.Player.State.Kind {
	case PlayerMovement:
		s.handleMovement(in)
	case PlayerCharging:
		s.handleCharging(in)
	case PlayerRushing:
		s.handleRushing()
	}
}

func (s *State) handleMovement(in Intent) {
	p := s.Player
	if s.Outcome != OutcomeNone {
		p.Vel = Vec2{}
		return
	}

	var dir Vec2
	if in.Left {
		dir.X = -1
	} else if in.Right {
		dir.X = 1
	}
	if in.Up {
		dir.Y = 1
	} else if in.Down {
		dir.Y = -1
	}

	speed := s.cfg.Player.Speed
	if dir.X != 0 && dir.Y != 0 {
		speed = DiagonalSpeed(speed)
	}
	p.Vel = dir.Scale(speed)
	p.FaceVelocity()

	if in.Charge {
		s.startCharging()
	}
}

func (s *State) startCharging() {
	p := s.Player
	p.State = PlayerState{Kind: PlayerCharging}
	p.Vel = Vec2{}
	s.emit(Event{Kind: EventChargeStarted, Pos: p.Pos})
}

func (s *State) handleCharging(in Intent) {
	p := s.Player
	st := &p.State

	// A run that ended mid-charge never releases into a rush.
	if s.Outcome != OutcomeNone {
		p.State = PlayerState{Kind: PlayerMovement}
		return
	}

	if !in.Charge {
		if st.Ready {
			power := st.Power
			p.State = PlayerState{Kind: PlayerRushing, Power: power}
			s.emit(Event{Kind: EventRushStarted, Pos: p.Pos, Angle: p.FaceAngle, Power: power})
		} else {
			p.State = PlayerState{Kind: PlayerMovement}
		}
		return
	}

	st.Ticks++
	st.Power = min(st.Ticks, s.cfg.Player.ChargeCap)
	wasReady := st.Ready
	st.Ready = st.Power >= s.cfg.Player.ChargeReady
	if st.Ready {
		if !wasReady {
			s.emit(Event{Kind: EventChargeReady, Pos: p.Pos})
		}
		st.PredictedDistance = PredictRushDistance(p.Body, st.Power, s.cfg.Player)
	}
}

func (s *State) handleRushing() {
	p := s.Player
	executeRush(&p.Body, &p.State.Power, s.cfg.Player)

	if s.Outcome == OutcomeNone {
		for i, e := range s.Enemies {
			if e.State.Kind == EnemyDead {
				continue
			}
			if core.SweptHit(e.Pos, e.Radius, p.Pos, p.Vel, p.Radius) {
				s.kill(i)
			}
		}
		if s.allEnemiesDead() {
			s.Outcome = OutcomeWon
			s.emit(Event{Kind: EventWon, Pos: p.Pos})
		}
	}

	if p.State.Power == 0 {
		p.State = PlayerState{Kind: PlayerMovement}
		s.emit(Event{Kind: EventRushEnded, Pos: p.Pos})
	}
}

// executeRush spends one tick of rush power. When power runs out the body
// keeps its last velocity for the final tick.
func executeRush(b *Body, power *int, cfg config.RushPlayer) {
	*power = max(*power-cfg.RushDecay, 0)
	if *power == 0 {
		return
	}
	speed := float64((*power / 2) * cfg.RushSpeedFactor)
	b.Vel = core.FromAngle(b.FaceAngle).Scale(speed)
}

// PredictRushDistance runs a rush with the given starting power on a copy
// of b to completion and returns the straight-line length of its travel.
func PredictRushDistance(b Body, power int, cfg config.RushPlayer) float64 {
	if cfg.RushDecay <= 0 {
		return 0
	}
	var travel Vec2
	for power > 0 {
		executeRush(&b, &power, cfg)
		travel = travel.Add(b.Vel)
	}
	return travel.Len()
}

// handleHits resolves the hit queue. The queue is always emptied, so hits
// landing inside the damage cooldown are dropped rather than deferred.
func (s *State) handleHits() {
	p := s.Player
	if len(p.Hits) == 0 {
		return
	}
	defer func() { p.Hits = p.Hits[:0] }()

	if s.Outcome != OutcomeNone {
		return
	}

	cfg := s.cfg.Player
	if s.Tick-p.LastFlashTick > cfg.FlashCooldown {
		p.LastFlashTick = s.Tick
		s.Animations = append(s.Animations,
			NewAnimation(&s.ScreenFlash, BloodTint.WithAlpha(255), BloodTint.WithAlpha(0), cfg.FlashTicks))
		s.emit(Event{Kind: EventFlash, Pos: p.Pos})
	}

	if s.Tick-p.LastDamageTick > cfg.DamageCooldown {
		p.LastDamageTick = s.Tick
		for _, h := range p.Hits {
			p.HP -= s.damageFor(h.Type)
			s.emit(Event{Kind: EventPlayerHit, Pos: p.Pos, Angle: h.Angle, Hit: h.Type})
		}
		if p.HP < 0 {
			p.HP = 0
		}
		if p.HP == 0 {
			s.Outcome = OutcomeLost
			s.emit(Event{Kind: EventLost, Pos: p.Pos})
		}
	}
}

func (s *State) damageFor(t HitType) int {
	switch t {
	case HitShuriken:
		return s.cfg.Damage.Shuriken
	case HitRedArrow:
		return s.cfg.Damage.RedArrow
	default:
		return 0
	}
}
