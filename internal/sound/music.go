package sound

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
)

// loopLength is one pass through the chord progression.
const loopLength = 16 * time.Second

// progression is C, Am, F, G, each held for a quarter of the loop.
var progression = [4][3]float64{
	{261.63, 329.63, 392.00},
	{220.00, 261.63, 329.63},
	{174.61, 220.00, 261.63},
	{196.00, 246.94, 293.66},
}

// melody is a C major pentatonic line that fits every chord above.
var melody = [5]float64{523.25, 587.33, 659.25, 783.99, 880.00}

// track synthesizes one pass of the background loop sample by sample.
// It is a beep.StreamSeeker so beep.Loop can rewind it.
type track struct {
	pos   int
	total int
}

var _ beep.StreamSeeker = (*track)(nil)

func newTrack() *track {
	return &track{total: SampleRate.N(loopLength)}
}

func (t *track) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}
		v := musicSample(SampleRate.D(t.pos).Seconds())
		samples[i] = [2]float64{v, v}
		t.pos++
	}
	return len(samples), true
}

func (t *track) Err() error    { return nil }
func (t *track) Len() int      { return t.total }
func (t *track) Position() int { return t.pos }

func (t *track) Seek(p int) error {
	if p < 0 || p > t.total {
		return fmt.Errorf("sound: seek %d outside [0, %d]", p, t.total)
	}
	t.pos = p
	return nil
}

// musicSample returns the loop's amplitude at sec seconds: the current
// chord with a slow arpeggio wobble, the melody on top, and a gentle
// four-second swell. Peaks stay well under 0.3.
func musicSample(sec float64) float64 {
	quarter := loopLength.Seconds() / float64(len(progression))
	chord := progression[int(sec/quarter)%len(progression)]

	var sum float64
	for i, f := range chord {
		note := math.Sin(2*math.Pi*f*(sec+float64(i)*0.1)) / float64(len(chord))
		wobble := 0.1 * math.Sin(2*math.Pi*sec*0.5+float64(i)*2)
		sum += note * (1 + wobble)
	}
	sum += 0.3 * math.Sin(2*math.Pi*melody[int(sec*0.5)%len(melody)]*sec)

	swell := 0.5 + 0.3*math.Sin(2*math.Pi*sec*0.25)
	return sum * swell * 0.2
}

// Music returns the background loop, repeating forever, at volume.
func Music(volume float64) beep.Streamer {
	return gain(beep.Loop(-1, newTrack()), volume)
}
