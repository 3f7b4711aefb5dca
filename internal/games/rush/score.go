package rush

import "github.com/vovakirdan/rush-arcade/internal/games/rush/sim"

// Scoring constants.
const (
	WinBonus      = 1000
	HPPoints      = 10
	ParTicks      = 3600 // one minute at 60 ticks per second
	TicksPerPoint = 6
	PointsPerKill = 100
)

// Score returns the score of a run. A win is worth a fixed bonus plus
// remaining HP and a time bonus that runs out after ParTicks. A loss (or
// a run still in progress) scores its kills only.
func Score(outcome sim.Outcome, hp, ticks, kills int) int {
	if outcome == sim.OutcomeWon {
		return WinBonus + HPPoints*hp + max(0, (ParTicks-ticks)/TicksPerPoint)
	}
	return PointsPerKill * kills
}
