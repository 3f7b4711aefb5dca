package sim

import (
	"math"

	"github.com/vovakirdan/rush-arcade/internal/core"
)

// Projectile is a crescent shot. It lives while it is on screen and has
// not hit the player.
type Projectile struct {
	Body
	Alive bool
	Spin  float64 // render-only, toggles between 0 and π/4
	Owner HitType
}

func (s *State) tickProjectile(p *Projectile) {
	p.Alive = OnScreen(p.Pos, s.cfg.World)

	half := max(s.cfg.Projectile.SpinPeriod/2, 1)
	if (s.Tick/half)%2 == 0 {
		p.Spin = 0
	} else {
		p.Spin = math.Pi / 4
	}

	if !p.Alive {
		return
	}
	player := s.Player
	if core.SweptHit(player.Pos, player.Radius, p.Pos, p.Vel, p.Radius) {
		p.Alive = false
		player.Hits = append(player.Hits, Hit{Angle: p.Vel.Angle(), Type: p.Owner})
	}
}

func (s *State) pruneProjectiles() {
	kept := s.Projectiles[:0]
	for _, p := range s.Projectiles {
		if p.Alive {
			kept = append(kept, p)
		}
	}
	clear(s.Projectiles[len(kept):])
	s.Projectiles = kept
}
