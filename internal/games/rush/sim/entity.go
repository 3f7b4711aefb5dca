// Package sim is the Rush gameplay simulation: the player, the two enemy
// archetypes, projectiles, swept-capsule hit resolution and the fixed-step
// Update that ties them together.
//
// The package has no terminal, audio or storage dependencies. A host feeds
// an Intent per tick, advances animations, and reads State and Events.
package sim

import (
	"github.com/vovakirdan/rush-arcade/internal/core"
)

// Vec2 is the world-space vector used throughout the simulation.
type Vec2 = core.Vec2

// Body holds the attributes shared by the player, enemies and projectiles.
// Vel is a per-tick displacement added to Pos during integration.
type Body struct {
	Pos       Vec2
	Vel       Vec2
	FaceAngle float64 // radians
	Radius    float64
}

// Moving reports whether the body has any velocity.
func (b *Body) Moving() bool {
	return b.Vel.X != 0 || b.Vel.Y != 0
}

// MovingDiagonally reports whether both velocity components are non-zero.
func (b *Body) MovingDiagonally() bool {
	return b.Vel.X != 0 && b.Vel.Y != 0
}

// FaceVelocity points the body along its velocity. A body at rest keeps
// its previous facing.
func (b *Body) FaceVelocity() {
	if b.Moving() {
		b.FaceAngle = b.Vel.Angle()
	}
}

// HitType identifies what struck the player.
type HitType int

const (
	HitShuriken HitType = iota
	HitRedArrow
)

// String returns a human-readable name for the hit type.
func (h HitType) String() string {
	switch h {
	case HitShuriken:
		return "shuriken"
	case HitRedArrow:
		return "red_arrow"
	default:
		return "unknown"
	}
}

// Hit is queued on the player by whatever struck it this tick.
type Hit struct {
	Angle float64
	Type  HitType
}

// Outcome is the terminal state of a run.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Intent is the per-tick input snapshot.
type Intent struct {
	Left, Right, Up, Down bool
	Charge                bool // held or just pressed
}

// Intent bits used by Mask and IntentFromMask.
const (
	IntentLeft uint8 = 1 << iota
	IntentRight
	IntentUp
	IntentDown
	IntentCharge
)

// Mask packs the intent into a bit set.
func (in Intent) Mask() uint8 {
	var m uint8
	if in.Left {
		m |= IntentLeft
	}
	if in.Right {
		m |= IntentRight
	}
	if in.Up {
		m |= IntentUp
	}
	if in.Down {
		m |= IntentDown
	}
	if in.Charge {
		m |= IntentCharge
	}
	return m
}

// IntentFromMask unpacks a bit set produced by Mask.
func IntentFromMask(m uint8) Intent {
	return Intent{
		Left:   m&IntentLeft != 0,
		Right:  m&IntentRight != 0,
		Up:     m&IntentUp != 0,
		Down:   m&IntentDown != 0,
		Charge: m&IntentCharge != 0,
	}
}
