package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/rush-arcade/internal/config"
)

// farArrow stands in the top-right corner for its first 60 ticks, far
// from anything the tests do around the center.
var farArrow = config.RushSpawn{Kind: config.KindArrow, X: 3100, Y: 1700}

func testState(t *testing.T, player config.RushSpawn, enemies ...config.RushSpawn) *State {
	t.Helper()
	arena := config.RushArena{ID: "test", Player: player, Enemies: enemies}
	return New(config.DefaultRushConfig(), arena, 1)
}

// step runs one host tick: Update, then the animation runner.
func step(s *State, in Intent) {
	s.Update(in)
	AdvanceAnimations(s)
}

func countEvents(s *State, kind EventKind) int {
	n := 0
	for _, e := range s.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
