package sound

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/rush-arcade/internal/games/rush/sim"
)

// Cue is a short sound effect bound to a game event.
type Cue int

const (
	CueChargeStart Cue = iota
	CueChargeReady
	CueRush
	CueKill
	CueShot
	CueHit
	CueWin
	CueLose
)

func (c Cue) String() string {
	switch c {
	case CueChargeStart:
		return "charge-start"
	case CueChargeReady:
		return "charge-ready"
	case CueRush:
		return "rush"
	case CueKill:
		return "kill"
	case CueShot:
		return "shot"
	case CueHit:
		return "hit"
	case CueWin:
		return "win"
	case CueLose:
		return "lose"
	default:
		return "unknown"
	}
}

// CueFor maps a simulation event to its cue. Events without a sound
// report false.
func CueFor(k sim.EventKind) (Cue, bool) {
	switch k {
	case sim.EventChargeStarted:
		return CueChargeStart, true
	case sim.EventChargeReady:
		return CueChargeReady, true
	case sim.EventRushStarted:
		return CueRush, true
	case sim.EventEnemyKilled:
		return CueKill, true
	case sim.EventShotsFired:
		return CueShot, true
	case sim.EventPlayerHit:
		return CueHit, true
	case sim.EventWon:
		return CueWin, true
	case sim.EventLost:
		return CueLose, true
	}
	return 0, false
}

const ms = time.Millisecond

// note is one enveloped tone.
func note(freq float64, d time.Duration, wave Wave, gain float64) beep.Streamer {
	return Scale(Shape(Tone(freq, d, wave, sampleRate), d, 5*ms, d/2, sampleRate), gain)
}

// Synth builds a fresh streamer for c. Streamers are single-use.
func Synth(c Cue) beep.Streamer {
	switch c {
	case CueChargeStart:
		return Scale(Shape(Glide(180, 260, 90*ms, WaveSaw, sampleRate), 90*ms, 10*ms, 40*ms, sampleRate), 0.25)
	case CueChargeReady:
		return beep.Seq(
			note(660, 60*ms, WaveSquare, 0.2),
			note(990, 90*ms, WaveSquare, 0.2),
		)
	case CueRush:
		return beep.Mix(
			Scale(Shape(Glide(420, 90, 220*ms, WaveSaw, sampleRate), 220*ms, 5*ms, 150*ms, sampleRate), 0.3),
			Scale(Shape(Tone(0, 220*ms, WaveNoise, sampleRate), 220*ms, 5*ms, 200*ms, sampleRate), 0.15),
		)
	case CueKill:
		return beep.Mix(
			Scale(Shape(Tone(0, 140*ms, WaveNoise, sampleRate), 140*ms, 2*ms, 120*ms, sampleRate), 0.35),
			note(110, 140*ms, WaveSquare, 0.2),
		)
	case CueShot:
		return Scale(Shape(Glide(1200, 600, 60*ms, WaveSquare, sampleRate), 60*ms, 2*ms, 40*ms, sampleRate), 0.15)
	case CueHit:
		return beep.Mix(
			Scale(Shape(Tone(0, 120*ms, WaveNoise, sampleRate), 120*ms, 2*ms, 100*ms, sampleRate), 0.4),
			Scale(Shape(Glide(300, 80, 120*ms, WaveSine, sampleRate), 120*ms, 2*ms, 80*ms, sampleRate), 0.4),
		)
	case CueWin:
		return beep.Seq(
			note(523, 110*ms, WaveSquare, 0.2),
			note(659, 110*ms, WaveSquare, 0.2),
			note(784, 110*ms, WaveSquare, 0.2),
			note(1047, 260*ms, WaveSquare, 0.2),
		)
	case CueLose:
		return beep.Seq(
			note(392, 160*ms, WaveSaw, 0.2),
			note(330, 160*ms, WaveSaw, 0.2),
			note(220, 400*ms, WaveSaw, 0.2),
		)
	}
	return beep.Silence(0)
}
