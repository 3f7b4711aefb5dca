package sound

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length wave whose frequency glides
// linearly from freq to endFreq.
type oscillator struct {
	freq, endFreq float64
	phase         float64
	position      int
	duration      int
	wave          Wave
	rate          beep.SampleRate
	rng           *rand.Rand
}

// newOscillator returns a wave of the given shape. A zero duration never
// ends.
func newOscillator(freq, endFreq float64, d time.Duration, wave Wave, rate beep.SampleRate) *oscillator {
	return &oscillator{
		freq:     freq,
		endFreq:  endFreq,
		duration: rate.N(d),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + 1)), //#nosec G404 -- audio noise
	}
}

// Tone returns a constant-pitch wave.
func Tone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return newOscillator(freq, freq, d, wave, rate)
}

// Glide returns a wave sweeping from one pitch to another.
func Glide(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return newOscillator(from, to, d, wave, rate)
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.duration > 0 && o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq
		if o.duration > 0 {
			freq += (o.endFreq - o.freq) * float64(o.position) / float64(o.duration)
		}
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release, ending
// after d.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// Shape applies a linear attack/release envelope and cuts s after d.
func Shape(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.total {
		return 0, false
	}
	if rest := e.total - e.position; len(samples) > rest {
		samples = samples[:rest]
	}
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if left := e.total - e.position; e.release > 0 && left < e.release {
			vol = math.Min(vol, float64(left)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Scale multiplies s by factor, which must be in [0, 1].
func Scale(s beep.Streamer, factor float64) beep.Streamer {
	return &effects.Gain{Streamer: s, Gain: factor - 1}
}
