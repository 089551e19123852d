package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, optionally gliding from freq to freqEnd
type oscillator struct {
	freq     float64
	freqEnd  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding linearly between two pitches
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     from,
		freqEnd:  to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.freqEnd-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain, math.Log2(0) is -Inf so zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is an enveloped oscillator
func tone(freq float64, d, attack, release time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, release, rate)
}

// Cue builders

func createLaser(rate beep.SampleRate) beep.Streamer {
	d := 90 * time.Millisecond
	osc := NewSweep(1400, 600, d, WaveSquare, rate)
	return newVolume(NewEnvelope(osc, d, 2*time.Millisecond, 40*time.Millisecond, rate), 0.25)
}

func createShock(rate beep.SampleRate) beep.Streamer {
	d := 180 * time.Millisecond
	buzz := tone(160, d, 5*time.Millisecond, 80*time.Millisecond, WaveSaw, rate)
	crackle := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, time.Millisecond, 120*time.Millisecond, rate)
	return beep.Mix(newVolume(buzz, 0.35), newVolume(crackle, 0.15))
}

func createBlast(rate beep.SampleRate) beep.Streamer {
	d := 450 * time.Millisecond
	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, 2*time.Millisecond, 380*time.Millisecond, rate)
	thump := NewEnvelope(NewSweep(120, 40, d, WaveSine, rate), d, 2*time.Millisecond, 300*time.Millisecond, rate)
	return beep.Mix(newVolume(noise, 0.4), newVolume(thump, 0.6))
}

func createBreak(rate beep.SampleRate) beep.Streamer {
	d := 200 * time.Millisecond
	crack := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, time.Millisecond, 180*time.Millisecond, rate)
	return newVolume(crack, 0.3)
}

// createProduce is a rising two-note chime
func createProduce(rate beep.SampleRate) beep.Streamer {
	n1 := tone(659.25, 120*time.Millisecond, 5*time.Millisecond, 60*time.Millisecond, WaveSine, rate)
	n2 := tone(987.77, 220*time.Millisecond, 5*time.Millisecond, 160*time.Millisecond, WaveSine, rate)
	return newVolume(beep.Seq(n1, n2), 0.4)
}

func createLoss(rate beep.SampleRate) beep.Streamer {
	d := 300 * time.Millisecond
	osc := NewSweep(440, 220, d, WaveSaw, rate)
	return newVolume(NewEnvelope(osc, d, 5*time.Millisecond, 150*time.Millisecond, rate), 0.3)
}

// createGameOver is a descending three-note phrase
func createGameOver(rate beep.SampleRate) beep.Streamer {
	d := 260 * time.Millisecond
	phrase := beep.Seq(
		tone(392.00, d, 10*time.Millisecond, 120*time.Millisecond, WaveSquare, rate),
		tone(311.13, d, 10*time.Millisecond, 120*time.Millisecond, WaveSquare, rate),
		tone(196.00, 2*d, 10*time.Millisecond, 400*time.Millisecond, WaveSquare, rate),
	)
	return newVolume(phrase, 0.3)
}

// CreateCue returns a fresh streamer for the cue, nil for CueNone or unknown cues
func CreateCue(c Cue, rate beep.SampleRate, master float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueLaser:
		s = createLaser(rate)
	case CueShock:
		s = createShock(rate)
	case CueBlast:
		s = createBlast(rate)
	case CueBreak:
		s = createBreak(rate)
	case CueProduce:
		s = createProduce(rate)
	case CueLoss:
		s = createLoss(rate)
	case CueGameOver:
		s = createGameOver(rate)
	default:
		return nil
	}
	return newVolume(s, master)
}
