// Package sound synthesizes the game's audio cues with beep and streams
// them as raw PCM to a system audio player.
package sound

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/jigsaw-drop/internal/core"
)

// SampleRate is the output rate shared by synthesis and the backend.
const SampleRate beep.SampleRate = 44100

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a tone whose frequency glides linearly from
// startFreq to endFreq over its duration.
type oscillator struct {
	startFreq float64
	endFreq   float64
	phase     float64
	total     int
	position  int
	wave      Wave
	rng       *rand.Rand
}

// Tone returns a fixed-frequency oscillator.
func Tone(freq float64, d time.Duration, wave Wave) beep.Streamer {
	return Sweep(freq, freq, d, wave)
}

// Sweep returns an oscillator gliding from one frequency to another.
func Sweep(from, to float64, d time.Duration, wave Wave) beep.Streamer {
	return &oscillator{
		startFreq: from,
		endFreq:   to,
		total:     SampleRate.N(d),
		wave:      wave,
		rng:       rand.New(rand.NewSource(int64(from*1000 + to))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.total {
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
			val = o.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.total)
		freq := o.startFreq + (o.endFreq-o.startFreq)*t
		o.phase += freq / float64(SampleRate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	releaseStart int
	release      int
	total        int
}

// Envelope shapes s, which is expected to last d.
func Envelope(s beep.Streamer, d, attack, release time.Duration) beep.Streamer {
	total := SampleRate.N(d)
	att := SampleRate.N(attack)
	rel := SampleRate.N(release)
	return &envelope{
		streamer:     s,
		attack:       att,
		release:      rel,
		releaseStart: max(att, total-rel),
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.position >= e.releaseStart && e.release > 0 {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// gain wraps s in a volume effect; math.Log2(0) is -Inf so zero is silent.
func gain(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func note(freq float64, d time.Duration, wave Wave) beep.Streamer {
	return Envelope(Tone(freq, d, wave), d, 5*time.Millisecond, d/2)
}

// chord mixes equal-weight sine notes of the same length.
func chord(d time.Duration, freqs ...float64) beep.Streamer {
	parts := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		parts[i] = gain(note(f, d, WaveSine), 1/float64(len(freqs)))
	}
	return beep.Mix(parts...)
}

// Effect builds the streamer for a cue at the given master volume.
// It returns nil for cues without a sound.
func Effect(s core.Sound, volume float64) beep.Streamer {
	var st beep.Streamer
	switch s {
	case core.SoundPlace:
		// Bell: C5 with an octave overtone
		d := 300 * time.Millisecond
		st = beep.Mix(
			gain(note(523.25, d, WaveSine), 0.7),
			gain(Envelope(Tone(1046.50, d, WaveSine), d, 2*time.Millisecond, d*3/4), 0.3),
		)
	case core.SoundMiss:
		d := 200 * time.Millisecond
		st = gain(Envelope(Tone(110, d, WaveSaw), d, 5*time.Millisecond, 80*time.Millisecond), 0.5)
	case core.SoundRotate:
		d := 150 * time.Millisecond
		st = gain(Envelope(Sweep(440, 660, d, WaveSine), d, 5*time.Millisecond, 60*time.Millisecond), 0.6)
	case core.SoundSpawn:
		step := 400 * time.Millisecond / 3
		st = gain(beep.Seq(
			note(440.00, step, WaveSine),
			note(554.37, step, WaveSine),
			note(659.25, step, WaveSine),
		), 0.4)
	case core.SoundCombo:
		// Harmonic series over A3
		st = chord(500*time.Millisecond, 220, 440, 660, 880)
	case core.SoundLevelUp:
		step := 120 * time.Millisecond
		st = gain(beep.Seq(
			note(523.25, step, WaveSquare),
			note(659.25, step, WaveSquare),
			note(783.99, step, WaveSquare),
			note(1046.50, 2*step, WaveSquare),
		), 0.35)
	case core.SoundUnlock:
		st = chord(500*time.Millisecond, 523.25, 659.25, 783.99)
	case core.SoundComplete:
		st = chord(800*time.Millisecond, 523.25, 783.99, 1046.50)
	case core.SoundGameOver:
		d := time.Second
		st = gain(Envelope(Sweep(440, 220, d, WaveSine), d, 10*time.Millisecond, 400*time.Millisecond), 0.8)
	default:
		return nil
	}
	return gain(st, volume)
}

// Render drains a streamer into a sample buffer.
func Render(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok || n == 0 {
			return out
		}
	}
}
