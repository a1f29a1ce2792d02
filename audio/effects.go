package audio

import (
	"log"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/type-tutor/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveBuzz
)

// oscillator renders a fixed-length tone
type oscillator struct {
	freq     float64
	phase    float64
	length   int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a tone of freq lasting duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:   freq,
		length: rate.N(duration),
		wave:   wave,
		rate:   rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1.0
			if o.phase >= 0.5 {
				val = -1.0
			}
		case WaveBuzz:
			// Fundamental plus two harmonics, normalized to [-1, 1]
			p := 2 * math.Pi * o.phase
			val = (math.Sin(p) + 0.5*math.Sin(2*p) + 0.25*math.Sin(3*p)) / 1.75
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := e.gain(e.position)
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

// gain returns the envelope level at sample pos
func (e *envelope) gain(pos int) float64 {
	if e.attack > 0 && pos < e.attack {
		return float64(pos) / float64(e.attack)
	}
	if remaining := e.total - pos; e.release > 0 && remaining < e.release {
		return math.Max(float64(remaining)/float64(e.release), 0)
	}
	return 1.0
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; zero or less is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// shapedTone is one enveloped oscillator note
func shapedTone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, d, wave, rate)
	return NewEnvelope(osc, d, constants.ToneAttack, constants.ToneRelease, rate)
}

// CreateHitSound is a short high click for a correct keystroke
func CreateHitSound(rate beep.SampleRate) beep.Streamer {
	d := constants.HitToneDuration
	sine, err := generators.SineTone(rate, constants.HitToneHz)
	if err != nil {
		// Tone above the Nyquist limit of rate
		log.Printf("Hit tone unavailable: %v", err)
		return beep.Silence(0)
	}
	shaped := NewEnvelope(beep.Take(rate.N(d), sine), d, constants.ToneAttack, constants.ToneRelease, rate)
	return newVolume(shaped, 0.4)
}

// CreateMissSound is a low buzz for a keystroke that matched nothing
func CreateMissSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(shapedTone(constants.MissBuzzHz, constants.MissBuzzDuration, WaveBuzz, rate), 0.3)
}

// CreateClearSound plays a rising arpeggio when a word is cleared
func CreateClearSound(rate beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(constants.ClearArpeggioHz))
	for _, hz := range constants.ClearArpeggioHz {
		notes = append(notes, shapedTone(hz, constants.ClearNoteDuration, WaveSquare, rate))
	}
	return newVolume(beep.Seq(notes...), 0.25)
}
