package sim

import (
	"math"

	"github.com/vovakirdan/rush-arcade/internal/config"
	"github.com/vovakirdan/rush-arcade/internal/core"
)

// GoalAttractionForce pulls pos toward goal. The pull is maxForce/4 at or
// beyond reach and grows as 1/(d/reach) inside it, capped at maxForce.
// At the goal itself the force is zero.
func GoalAttractionForce(goal, pos Vec2, maxForce, reach float64) Vec2 {
	d := goal.Dist(pos)
	if d == 0 {
		return Vec2{}
	}

	strength := maxForce / 4
	if d < reach {
		strength = min(strength/(d/reach), maxForce)
	}
	return goal.Sub(pos).Scale(strength / d)
}

// PlayerRepulsionForce pushes pos away from player with the same falloff
// as GoalAttractionForce, but is zero beyond reach. A body exactly on the
// player is pushed along +x.
func PlayerRepulsionForce(player, pos Vec2, maxForce, reach float64) Vec2 {
	d := player.Dist(pos)
	if d > reach {
		return Vec2{}
	}
	if d == 0 {
		return Vec2{X: maxForce}
	}

	strength := min((maxForce/4)/(d/reach), maxForce)
	return pos.Sub(player).Scale(strength / d)
}

// PositionsAround returns count points evenly spaced on a circle of the
// given radius around center, rotated by offset radians.
func PositionsAround(center Vec2, distance float64, count int, offset float64) []Vec2 {
	if count <= 0 {
		return nil
	}
	step := 2 * math.Pi / float64(count)
	out := make([]Vec2, count)
	for i := range out {
		out[i] = center.Add(core.FromAngle(offset + step*float64(i)).Scale(distance))
	}
	return out
}

// OnScreen reports whether p lies in the visible world [0, W-1] x [0, H-1].
func OnScreen(p Vec2, w config.RushWorld) bool {
	return p.X >= 0 && p.X <= w.Width-1 && p.Y >= 0 && p.Y <= w.Height-1
}

// clampToWorld keeps p inside the visible world.
func clampToWorld(p Vec2, w config.RushWorld) Vec2 {
	return Vec2{
		X: core.ClampF(p.X, 0, w.Width-1),
		Y: core.ClampF(p.Y, 0, w.Height-1),
	}
}
