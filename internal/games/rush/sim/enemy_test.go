package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/rush-arcade/internal/config"
	"github.com/vovakirdan/rush-arcade/internal/core"
)

func TestCrescentSteersAtFixedSpeed(t *testing.T) {
	crescent := config.RushSpawn{Kind: config.KindCrescent, X: 2000, Y: 1000}
	s := testState(t, config.RushSpawn{X: 500, Y: 300}, crescent)
	e := s.Enemies[0]
	e.State.AttackPosition = core.V(2600, 1000)
	e.State.HasAttackPosition = true

	for i := range 5 {
		step(s, Intent{})
		if !approx(e.Vel.Len(), 12) {
			t.Fatalf("tick %d: speed = %v, want 12", i, e.Vel.Len())
		}
	}
	if e.Vel.X <= 0 {
		t.Errorf("Vel = %+v, want heading toward the goal", e.Vel)
	}
	if !approx(e.FaceAngle, e.Vel.Angle()) {
		t.Error("crescent not facing its velocity")
	}
}

func TestCrescentVelocityHasInertia(t *testing.T) {
	crescent := config.RushSpawn{Kind: config.KindCrescent, X: 2000, Y: 1000}
	s := testState(t, config.RushSpawn{X: 500, Y: 300}, crescent)
	e := s.Enemies[0]
	e.State.AttackPosition = core.V(2000, 1600) // straight up
	e.State.HasAttackPosition = true
	e.Vel = core.V(12, 0) // currently heading right

	step(s, Intent{})
	if e.Vel.X <= 0 {
		t.Errorf("Vel = %+v: previous heading should carry over", e.Vel)
	}
	if e.Vel.Y <= 0 {
		t.Errorf("Vel = %+v: goal should pull upward", e.Vel)
	}
}

func TestCrescentAttackCycle(t *testing.T) {
	crescent := config.RushSpawn{Kind: config.KindCrescent, X: 2000, Y: 1000}
	s := testState(t, config.RushSpawn{X: 500, Y: 1000}, crescent)
	e := s.Enemies[0]
	e.State.AttackPosition = e.Pos
	e.State.HasAttackPosition = true

	step(s, Intent{})
	if e.State.Kind != EnemyTelegraphAttack {
		t.Fatalf("State = %v, want telegraph_attack on arrival", e.State.Kind)
	}
	if e.Vel != (Vec2{}) {
		t.Errorf("Vel = %+v, want zero on arrival", e.Vel)
	}

	step(s, Intent{})
	if e.State.Telegraph == nil {
		t.Fatal("telegraph animation not started")
	}

	tinted := false
	ticks := 0
	for e.State.Kind == EnemyTelegraphAttack {
		if e.Tint != e.BaseTint {
			tinted = true
		}
		step(s, Intent{})
		ticks++
		if ticks > 40 {
			t.Fatal("telegraph never finished")
		}
	}
	if !tinted {
		t.Error("telegraph did not change the tint")
	}
	if e.State.Kind != EnemyAttack {
		t.Fatalf("State = %v, want attack", e.State.Kind)
	}
	if e.Tint != e.BaseTint {
		t.Error("base tint not restored after telegraph")
	}

	step(s, Intent{})
	if len(s.Projectiles) != 3 {
		t.Fatalf("projectiles = %d, want 3", len(s.Projectiles))
	}
	if countEvents(s, EventShotsFired) != 1 {
		t.Error("missing shots_fired event")
	}

	// Player is straight left of the crescent, so the fan centers on π.
	want := []float64{math.Pi - 20*math.Pi/180, math.Pi, math.Pi + 20*math.Pi/180}
	for i, p := range s.Projectiles {
		got := normalizeAngle(p.Vel.Angle())
		if !approx(got, want[i]) {
			t.Errorf("shot %d angle = %v, want %v", i, got, want[i])
		}
		if !approx(p.Vel.Len(), 20) {
			t.Errorf("shot %d speed = %v, want 20", i, p.Vel.Len())
		}
	}

	for range 118 {
		step(s, Intent{})
		if e.State.Kind != EnemyAttack {
			t.Fatalf("left attack early at tick %d", e.State.Ticks)
		}
	}
	step(s, Intent{})
	if e.State.Kind != EnemyMoveIntoAttackPosition {
		t.Errorf("State = %v after 120 attack ticks, want move_into_attack_position", e.State.Kind)
	}
}

func TestCrescentKilledDuringTelegraphStaysBlood(t *testing.T) {
	crescent := config.RushSpawn{Kind: config.KindCrescent, X: 2000, Y: 1000}
	s := testState(t, config.RushSpawn{X: 500, Y: 1000}, crescent)
	e := s.Enemies[0]
	e.State.AttackPosition = e.Pos
	e.State.HasAttackPosition = true

	for range 3 {
		step(s, Intent{})
	}
	if e.State.Kind != EnemyTelegraphAttack || e.State.Telegraph == nil {
		t.Fatalf("State = %v, want a running telegraph", e.State.Kind)
	}

	s.kill(0)
	for _, a := range s.Animations {
		if a.Target == &e.Tint {
			t.Fatal("telegraph animation still pending on the corpse")
		}
	}
	for range 40 {
		step(s, Intent{})
	}
	if e.Tint != BloodTint {
		t.Errorf("corpse Tint = %+v, want %+v", e.Tint, BloodTint)
	}
}

func TestAttackPositionOnRing(t *testing.T) {
	crescent := config.RushSpawn{Kind: config.KindCrescent, X: 2000, Y: 1000}
	s := testState(t, config.RushSpawn{X: 1600, Y: 900}, crescent)
	e := s.Enemies[0]

	for range 20 {
		pos := s.pickAttackPosition(e)
		if !OnScreen(pos, s.cfg.World) {
			t.Fatalf("attack position %+v off screen", pos)
		}
		if !approx(pos.Dist(s.Player.Pos), 800) {
			t.Errorf("attack position %v from player, want 800", pos.Dist(s.Player.Pos))
		}
	}
}

func TestAttackPositionFallback(t *testing.T) {
	crescent := config.RushSpawn{Kind: config.KindCrescent, X: 2000, Y: 1000}
	s := testState(t, config.RushSpawn{X: 1600, Y: 900}, crescent)
	s.cfg.Crescent.RingDistance = 5000 // every ring point is off screen

	pos := s.pickAttackPosition(s.Enemies[0])
	if pos.X < 100 || pos.X >= 3100 || pos.Y < 100 || pos.Y >= 1700 {
		t.Errorf("fallback position %+v outside the inner field", pos)
	}
}

func TestArrowStandsThenRuns(t *testing.T) {
	arrow := config.RushSpawn{Kind: config.KindArrow, X: 1600, Y: 300}
	s := testState(t, config.RushSpawn{X: 100, Y: 1700}, arrow)
	e := s.Enemies[0]

	for i := range 60 {
		step(s, Intent{})
		if e.State.Kind != EnemyStanding {
			t.Fatalf("tick %d: %v, want standing", i+1, e.State.Kind)
		}
	}
	step(s, Intent{})
	if e.State.Kind != EnemyRunning {
		t.Fatalf("State = %v after 61 ticks, want running", e.State.Kind)
	}

	step(s, Intent{})
	if !approx(e.Vel.Len(), 30) {
		t.Errorf("running speed = %v, want 30", e.Vel.Len())
	}
}

func TestArrowTrailCapped(t *testing.T) {
	arrow := config.RushSpawn{Kind: config.KindArrow, X: 1000, Y: 900}
	s := testState(t, config.RushSpawn{X: 100, Y: 100}, arrow)
	e := s.Enemies[0]
	e.State = EnemyState{Kind: EnemyRunning}

	for range 15 {
		step(s, Intent{})
	}
	if len(e.State.Trail) != 10 {
		t.Fatalf("trail length = %d, want 10", len(e.State.Trail))
	}
	for i := 1; i < len(e.State.Trail); i++ {
		if e.State.Trail[i].Pos.X <= e.State.Trail[i-1].Pos.X {
			t.Errorf("trail not ordered oldest to newest at %d", i)
		}
	}
}

func TestArrowTurnsWhenStuck(t *testing.T) {
	arrow := config.RushSpawn{Kind: config.KindArrow, X: 3199, Y: 900}
	s := testState(t, config.RushSpawn{X: 500, Y: 900}, arrow)
	e := s.Enemies[0]
	e.State = EnemyState{Kind: EnemyRunning}

	step(s, Intent{})
	if e.FaceAngle != 0 {
		t.Fatalf("turned before getting stuck: %v", e.FaceAngle)
	}
	if e.Pos.X != 3199 {
		t.Fatalf("arrow left the world: x = %v", e.Pos.X)
	}

	step(s, Intent{})
	if !approx(e.FaceAngle, math.Pi/2) && !approx(e.FaceAngle, 3*math.Pi/2) {
		t.Errorf("FaceAngle = %v, want a 90 degree turn", e.FaceAngle)
	}
}

func TestArrowContactHurts(t *testing.T) {
	arrow := config.RushSpawn{Kind: config.KindArrow, X: 1500, Y: 900}
	s := testState(t, config.RushSpawn{X: 1600, Y: 900}, arrow)
	s.Enemies[0].State = EnemyState{Kind: EnemyRunning}

	step(s, Intent{})
	if s.Player.HP != 40 {
		t.Errorf("HP = %d, want 40 after arrow contact", s.Player.HP)
	}
	if countEvents(s, EventPlayerHit) != 1 {
		t.Error("missing player_hit event")
	}
}

func TestProjectileLifecycle(t *testing.T) {
	s := testState(t, config.RushSpawn{X: 1600, Y: 900}, farArrow)
	shot := func(x, y, vx float64) *Projectile {
		return &Projectile{
			Body:  Body{Pos: core.V(x, y), Vel: core.V(vx, 0), Radius: 20},
			Alive: true,
			Owner: HitShuriken,
		}
	}

	t.Run("leaves the screen", func(t *testing.T) {
		s.Projectiles = []*Projectile{shot(3190, 200, 20)}
		step(s, Intent{})
		if len(s.Projectiles) != 1 {
			t.Fatal("projectile pruned while on screen")
		}
		step(s, Intent{})
		if len(s.Projectiles) != 0 {
			t.Error("off-screen projectile not pruned")
		}
	})

	t.Run("hits the player", func(t *testing.T) {
		s.Projectiles = []*Projectile{shot(1540, 900, 20)}
		hp := s.Player.HP
		step(s, Intent{})
		if len(s.Projectiles) != 0 {
			t.Error("projectile survived its hit")
		}
		if s.Player.HP != hp-10 {
			t.Errorf("HP = %d, want %d", s.Player.HP, hp-10)
		}
	})

	t.Run("spin toggles", func(t *testing.T) {
		p := shot(100, 1000, 0)
		s.Projectiles = []*Projectile{p}
		seen := map[float64]bool{}
		for range 4 {
			step(s, Intent{})
			seen[p.Spin] = true
		}
		if len(seen) != 2 {
			t.Errorf("spin values over a cycle = %v, want two", seen)
		}
	})
}
