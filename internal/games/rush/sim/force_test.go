package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/rush-arcade/internal/config"
	"github.com/vovakirdan/rush-arcade/internal/core"
)

func TestGoalAttractionForce(t *testing.T) {
	const force, reach = 10.0, 500.0
	goal := core.V(1000, 1000)

	tests := []struct {
		name    string
		pos     Vec2
		wantLen float64
	}{
		{"at goal", goal, 0},
		{"at reach", core.V(500, 1000), force / 4},
		{"beyond reach keeps baseline", core.V(0, 1000), force / 4},
		{"half reach doubles", core.V(750, 1000), force / 2},
		{"close is capped", core.V(990, 1000), force},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := GoalAttractionForce(goal, tt.pos, force, reach)
			if !approx(f.Len(), tt.wantLen) {
				t.Errorf("|force| = %v, want %v", f.Len(), tt.wantLen)
			}
			if tt.wantLen > 0 && f.X <= 0 {
				t.Errorf("force %+v does not point toward the goal", f)
			}
		})
	}
}

func TestPlayerRepulsionForce(t *testing.T) {
	const force, reach = 9.0, 500.0
	player := core.V(1000, 1000)

	if f := PlayerRepulsionForce(player, player, force, reach); f != (Vec2{X: force}) {
		t.Errorf("on player = %+v, want {%v 0}", f, force)
	}
	if f := PlayerRepulsionForce(player, core.V(1000, 1501), force, reach); f != (Vec2{}) {
		t.Errorf("beyond reach = %+v, want zero", f)
	}

	f := PlayerRepulsionForce(player, core.V(1000, 1500), force, reach)
	if !approx(f.Len(), force/4) {
		t.Errorf("|force| at reach = %v, want %v", f.Len(), force/4)
	}
	if f.Y <= 0 {
		t.Errorf("force %+v does not point away from the player", f)
	}

	f = PlayerRepulsionForce(player, core.V(1001, 1000), force, reach)
	if !approx(f.Len(), force) {
		t.Errorf("|force| up close = %v, want cap %v", f.Len(), force)
	}
}

func TestPositionsAround(t *testing.T) {
	center := core.V(100, 200)
	pts := PositionsAround(center, 50, 8, 0.1)
	if len(pts) != 8 {
		t.Fatalf("len = %d, want 8", len(pts))
	}
	for i, p := range pts {
		if !approx(p.Dist(center), 50) {
			t.Errorf("point %d at distance %v, want 50", i, p.Dist(center))
		}
	}
	step := pts[1].Sub(center).Angle() - pts[0].Sub(center).Angle()
	if !approx(step, math.Pi/4) {
		t.Errorf("angular step = %v, want π/4", step)
	}
	if PositionsAround(center, 50, 0, 0) != nil {
		t.Error("count 0 should yield nil")
	}
}

func TestOnScreen(t *testing.T) {
	w := config.DefaultRushConfig().World
	tests := []struct {
		p    Vec2
		want bool
	}{
		{core.V(0, 0), true},
		{core.V(3199, 1799), true},
		{core.V(3199.5, 10), false},
		{core.V(-0.1, 10), false},
		{core.V(10, 1800), false},
	}
	for _, tt := range tests {
		if got := OnScreen(tt.p, w); got != tt.want {
			t.Errorf("OnScreen(%+v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}
