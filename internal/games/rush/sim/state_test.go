package sim

import (
	"testing"

	"github.com/vovakirdan/rush-arcade/internal/config"
)

// scriptedIntent walks, charges and rushes in a fixed pattern.
func scriptedIntent(tick int) Intent {
	phase := tick % 120
	switch {
	case phase < 30:
		return Intent{Right: true, Up: tick%240 < 120}
	case phase < 45:
		return Intent{Left: true}
	case phase < 100:
		return Intent{Charge: true}
	default:
		return Intent{}
	}
}

func runScripted(t *testing.T, arenaID string, seed int64, ticks int) []uint64 {
	t.Helper()
	cfg := config.DefaultRushConfig()
	arena, ok := cfg.Arena(arenaID)
	if !ok {
		t.Fatalf("arena %q missing", arenaID)
	}
	s := New(cfg, arena, seed)
	hashes := make([]uint64, 0, ticks)
	for i := range ticks {
		step(s, scriptedIntent(i))
		snap := s.Snapshot()
		hashes = append(hashes, snap.Hash())
	}
	return hashes
}

func TestDeterminism(t *testing.T) {
	for _, arena := range []string{"rush", "rush_gauntlet"} {
		t.Run(arena, func(t *testing.T) {
			a := runScripted(t, arena, 12345, 900)
			b := runScripted(t, arena, 12345, 900)
			for i := range a {
				if a[i] != b[i] {
					t.Fatalf("hash diverged at tick %d: %x vs %x", i, a[i], b[i])
				}
			}
		})
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := runScripted(t, "rush", 1, 300)
	b := runScripted(t, "rush", 2, 300)
	if a[len(a)-1] == b[len(b)-1] {
		t.Error("different seeds produced identical worlds")
	}
}

func TestNewSkipsUnknownKinds(t *testing.T) {
	s := testState(t, config.RushSpawn{X: 10, Y: 20},
		config.RushSpawn{Kind: "dragon", X: 1, Y: 1},
		config.RushSpawn{Kind: config.KindCrescent, X: 2, Y: 2},
	)
	if len(s.Enemies) != 1 || s.Enemies[0].Kind != EnemyCrescent {
		t.Errorf("enemies = %+v, want one crescent", s.Enemies)
	}
	if s.Player.HP != 60 || s.Player.Pos.X != 10 || s.Player.Pos.Y != 20 {
		t.Errorf("player = %+v", s.Player)
	}
}

func TestIntegrationClampsBodiesButNotShots(t *testing.T) {
	s := testState(t, config.RushSpawn{X: 3195, Y: 900}, farArrow)
	s.Projectiles = []*Projectile{{Body: Body{Pos: Vec2{X: 3195, Y: 10}, Vel: Vec2{X: 15}}, Alive: true}}

	s.Update(Intent{Right: true})
	if s.Player.Pos.X != 3199 {
		t.Errorf("player x = %v, want clamp at 3199", s.Player.Pos.X)
	}
	if s.Projectiles[0].Pos.X != 3210 {
		t.Errorf("projectile x = %v, want 3210 unclamped", s.Projectiles[0].Pos.X)
	}
}

func TestEventsClearedEachUpdate(t *testing.T) {
	s := testState(t, config.RushSpawn{X: 1600, Y: 900}, farArrow)
	s.Update(Intent{Charge: true})
	if countEvents(s, EventChargeStarted) != 1 {
		t.Fatal("missing charge_started")
	}
	s.Update(Intent{Charge: true})
	if len(s.Events) != 0 {
		t.Errorf("events leaked into the next tick: %+v", s.Events)
	}
	if s.Tick != 2 {
		t.Errorf("Tick = %d, want 2", s.Tick)
	}
}

func TestAnimationRunner(t *testing.T) {
	var c RGBA
	a := NewAnimation(&c, ColorBlood.WithAlpha(255), ColorBlood.WithAlpha(0), 4)
	if c.A != 255 {
		t.Fatalf("target not initialized to From: %+v", c)
	}

	s := &State{Animations: []*Animation{a}}
	wantAlpha := []uint8{191, 128, 64, 0}
	for i, want := range wantAlpha {
		AdvanceAnimations(s)
		if c.A != want {
			t.Errorf("advance %d: alpha = %d, want %d", i+1, c.A, want)
		}
	}
	if !a.Finished() {
		t.Error("animation not finished after its duration")
	}
	if len(s.Animations) != 0 {
		t.Errorf("finished animation not pruned: %d left", len(s.Animations))
	}

	var d RGBA
	if z := NewAnimation(&d, ColorWhite, ColorBlood, 0); !z.Finished() || d != ColorBlood {
		t.Error("zero-duration animation should jump to To")
	}
}

func TestIntentMask(t *testing.T) {
	in := Intent{Left: true, Down: true, Charge: true}
	if got := IntentFromMask(in.Mask()); got != in {
		t.Errorf("IntentFromMask(Mask()) = %+v, want %+v", got, in)
	}
	if (Intent{}).Mask() != 0 {
		t.Error("empty intent should pack to 0")
	}
}
