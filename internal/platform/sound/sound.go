// Package sound plays synthesized effects for Rush events through the
// system speaker. Every method is safe on a nil or uninitialized Player,
// so callers never branch on whether audio is enabled.
package sound

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/rush-arcade/internal/games/rush/sim"
)

const sampleRate = beep.SampleRate(44100)

// humTicks is the charge length at which the hum reaches full gain.
const humTicks = 60

// maxHumGain is the hum level at humTicks and beyond.
const maxHumGain = 0.2

// Player mixes cues and a looping charge hum into the speaker.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	hum     *effects.Gain
	humCtrl *beep.Ctrl
	ready   bool
}

// New returns a Player that stays silent until Init succeeds.
func New() *Player {
	return &Player{}
}

// Init opens the audio device and starts the mixer.
func (p *Player) Init() error {
	if p == nil {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ready {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("sound: init speaker: %w", err)
	}

	p.mixer = &beep.Mixer{}
	p.hum = &effects.Gain{Streamer: Tone(55, 0, WaveSaw, sampleRate), Gain: -1}
	p.humCtrl = &beep.Ctrl{Streamer: p.hum, Paused: true}
	p.mixer.Add(p.humCtrl)
	speaker.Play(p.mixer)
	p.ready = true
	return nil
}

// Play queues one cue.
func (p *Player) Play(c Cue) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}
	speaker.Lock()
	p.mixer.Add(Synth(c))
	speaker.Unlock()
}

// Handle plays the cue of every event that has one.
func (p *Player) Handle(events []sim.Event) {
	for _, e := range events {
		if c, ok := CueFor(e.Kind); ok {
			p.Play(c)
		}
	}
}

// HumGain returns the hum level for a charge that has lasted ticks.
func HumGain(ticks int) float64 {
	if ticks <= 0 {
		return 0
	}
	return maxHumGain * float64(min(ticks, humTicks)) / humTicks
}

// SetCharge sets the hum level from the current charge length. Zero or
// less silences it.
func (p *Player) SetCharge(ticks int) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}
	speaker.Lock()
	p.humCtrl.Paused = ticks <= 0
	p.hum.Gain = HumGain(ticks) - 1
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.ready = false
}
