// Package audio synthesizes and plays the game's named sound events.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate is the rate every generated sound uses.
const SampleRate = beep.SampleRate(44100)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator streams a waveform whose frequency glides linearly from
// `from` to `to` over its duration.
type oscillator struct {
	from, to float64
	wave     Wave
	rate     beep.SampleRate
	phase    float64
	position int
	total    int
	noise    *rand.Rand
}

// NewOscillator returns a streamer of the given wave lasting d.
func NewOscillator(wave Wave, from, to float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		from:  from,
		to:    to,
		wave:  wave,
		rate:  rate,
		total: rate.N(d),
		noise: rand.New(rand.NewSource(1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.total {
		return 0, false
	}
	for n = range samples {
		if o.position >= o.total {
			return n, true
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
			val = o.noise.Float64()*2 - 1
		}
		samples[n][0] = val
		samples[n][1] = val

		freq := o.from + (o.to-o.from)*float64(o.position)/float64(o.total)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream of known length.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s, which is expected to last d.
func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	releaseStart := max(e.total-e.release, e.attack)
	for i := 0; i < n; i++ {
		vol := 1.0
		switch {
		case e.position < e.attack:
			vol = float64(e.position) / float64(e.attack)
		case e.position >= releaseStart && e.release > 0:
			vol = math.Max(float64(e.total-e.position)/float64(e.release), 0)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume scales s by a linear gain. Zero or less is silence.
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// tone is an enveloped oscillator note.
func tone(wave Wave, from, to float64, d time.Duration) beep.Streamer {
	osc := NewOscillator(wave, from, to, d, SampleRate)
	return NewEnvelope(osc, d, 5*time.Millisecond, d/2, SampleRate)
}

// JumpSound is a short upward chirp.
func JumpSound() beep.Streamer {
	return withVolume(tone(WaveSine, 420, 880, 120*time.Millisecond), 0.6)
}

// BreakSound is a crunchy noise burst.
func BreakSound() beep.Streamer {
	d := 150 * time.Millisecond
	noise := NewOscillator(WaveNoise, 0, 0, time.Second, SampleRate)
	burst := NewEnvelope(beep.Take(SampleRate.N(d), noise), d, 2*time.Millisecond, 120*time.Millisecond, SampleRate)
	return withVolume(burst, 0.4)
}

// SuperJumpSound is a rising square-wave arpeggio with a sine shimmer.
func SuperJumpSound() beep.Streamer {
	note := 70 * time.Millisecond
	arp := beep.Seq(
		tone(WaveSquare, 523.25, 523.25, note), // C5
		tone(WaveSquare, 659.25, 659.25, note), // E5
		tone(WaveSquare, 783.99, 783.99, note), // G5
		tone(WaveSquare, 1046.5, 1046.5, 2*note),
	)
	shimmer := tone(WaveSine, 1046.5, 2093, 5*note)
	return withVolume(beep.Mix(withVolume(arp, 0.7), withVolume(shimmer, 0.3)), 0.5)
}

// GameOverSound is a falling three-note saw phrase.
func GameOverSound() beep.Streamer {
	note := 180 * time.Millisecond
	return withVolume(beep.Seq(
		tone(WaveSaw, 392, 392, note),       // G4
		tone(WaveSaw, 311.13, 311.13, note), // Eb4
		tone(WaveSaw, 261.63, 130.81, 2*note),
	), 0.5)
}

// generators maps sound event names to their synthesizers.
var generators = map[string]func() beep.Streamer{
	"jump":      JumpSound,
	"break":     BreakSound,
	"superJump": SuperJumpSound,
	"gameOver":  GameOverSound,
}

// Sound returns a fresh streamer for a named event, or nil if unknown.
func Sound(name string) beep.Streamer {
	gen, ok := generators[name]
	if !ok {
		return nil
	}
	return gen()
}

// Names lists the sound events this package can synthesize.
func Names() []string {
	return []string{"jump", "break", "superJump", "gameOver"}
}
