package sound

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"

	"github.com/vovakirdan/jigsaw-drop/internal/config"
	"github.com/vovakirdan/jigsaw-drop/internal/core"
)

func TestEffectDurations(t *testing.T) {
	tests := []struct {
		sound core.Sound
		want  time.Duration
	}{
		{core.SoundPlace, 300 * time.Millisecond},
		{core.SoundRotate, 150 * time.Millisecond},
		{core.SoundComplete, 800 * time.Millisecond},
		{core.SoundGameOver, time.Second},
		{core.SoundLevelUp, 600 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(tc.sound.String(), func(t *testing.T) {
			buf := Render(Effect(tc.sound, 1.0))
			want := SampleRate.N(tc.want)
			if d := len(buf) - want; d < -2 || d > 2 {
				t.Errorf("rendered %d samples, want about %d", len(buf), want)
			}
			peak := 0.0
			for _, s := range buf {
				peak = math.Max(peak, math.Abs(s[0]))
			}
			if peak == 0 || peak > 1.0001 {
				t.Errorf("peak amplitude = %v, want in (0, 1]", peak)
			}
		})
	}

	if Effect(core.SoundNone, 1.0) != nil {
		t.Error("SoundNone should have no effect")
	}
}

func TestEffectZeroVolumeIsSilent(t *testing.T) {
	for _, s := range Render(Effect(core.SoundPlace, 0)) {
		if s[0] != 0 || s[1] != 0 {
			t.Fatal("zero volume produced sound")
		}
	}
}

func TestEncode(t *testing.T) {
	in := [][2]float64{{0, 0}, {0.5, -0.5}, {3, -3}}
	out := make([]byte, len(in)*4)
	encode(in, out)

	read := func(i, ch int) int16 {
		return int16(binary.LittleEndian.Uint16(out[i*4+ch*2:]))
	}
	if read(0, 0) != 0 {
		t.Errorf("silence encoded as %d", read(0, 0))
	}
	if read(1, 0) != 16383 || read(1, 1) != -16383 {
		t.Errorf("half scale = %d/%d, want 16383/-16383", read(1, 0), read(1, 1))
	}
	if read(2, 0) <= 30000 || read(2, 1) >= -30000 {
		t.Errorf("clipped = %d/%d, want near full scale", read(2, 0), read(2, 1))
	}
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) nonZero() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, c := range b.buf.Bytes() {
		if c != 0 {
			return true
		}
	}
	return false
}

func TestPlayerStreamsCues(t *testing.T) {
	out := &syncBuffer{}
	p := NewPlayer(out, 1.0, log.New(io.Discard))
	p.Play(core.SoundPlace)

	deadline := time.Now().Add(2 * time.Second)
	for !out.nonZero() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	if !out.nonZero() {
		t.Error("player wrote only silence")
	}

	// Play after close must not block or panic
	p.Play(core.SoundRotate)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestPlayerSurvivesWriteFailure(t *testing.T) {
	p := NewPlayer(failingWriter{}, 1.0, log.New(io.Discard))
	for i := 0; i < 100; i++ {
		p.Play(core.SoundMiss)
	}
	time.Sleep(50 * time.Millisecond)
	if err := p.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}

func TestNewDisabledIsSilent(t *testing.T) {
	s, closeFn := New(config.SoundConfig{Enabled: false}, log.New(io.Discard))
	if _, ok := s.(core.NopSounder); !ok {
		t.Errorf("New(disabled) = %T, want core.NopSounder", s)
	}
	if err := closeFn(); err != nil {
		t.Errorf("close = %v", err)
	}
}

func TestDetectBackendRejectsUnknown(t *testing.T) {
	if _, err := DetectBackend("winamp"); !errors.Is(err, ErrNoBackend) {
		t.Errorf("DetectBackend(winamp) = %v, want ErrNoBackend", err)
	}
}

func TestPlayerCloseWithStalledReader(t *testing.T) {
	r, w := io.Pipe()
	p := NewPlayer(w, 1.0, log.New(io.Discard))

	// Take a few bytes so the mix loop is parked inside a half-done Write.
	if _, err := io.ReadFull(r, make([]byte, 4)); err != nil {
		t.Fatalf("reading first frame: %v", err)
	}

	closed := make(chan error, 1)
	go func() { closed <- p.Close() }()
	select {
	case err := <-closed:
		if err != nil {
			t.Errorf("Close() = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Close() hung on a writer nobody reads")
	}
}

func TestMusicTrackLoops(t *testing.T) {
	tr := newTrack()
	if tr.Len() != SampleRate.N(loopLength) {
		t.Fatalf("Len() = %d, want %d", tr.Len(), SampleRate.N(loopLength))
	}
	if err := tr.Seek(tr.Len() + 1); err == nil {
		t.Error("Seek() past the end should fail")
	}
	if err := tr.Seek(tr.Len() - 10); err != nil {
		t.Fatalf("Seek() failed: %v", err)
	}

	looped := beep.Loop(-1, tr)
	var got [][2]float64
	buf := make([][2]float64, 20)
	for len(got) < 20 {
		n, ok := looped.Stream(buf[:20-len(got)])
		if !ok {
			t.Fatal("looped track ended")
		}
		got = append(got, buf[:n]...)
	}
	if want := musicSample(0); got[10][0] != want || got[10][1] != want {
		t.Errorf("sample after wrap = %v, want the loop start %v", got[10], want)
	}
}

func TestMusicStaysQuiet(t *testing.T) {
	peak := 0.0
	for i := 0; i < SampleRate.N(loopLength); i += 37 {
		peak = math.Max(peak, math.Abs(musicSample(SampleRate.D(i).Seconds())))
	}
	if peak == 0 || peak > 0.3 {
		t.Errorf("music peak = %v, want in (0, 0.3]", peak)
	}
}

func TestPlayerStreamsMusic(t *testing.T) {
	out := &syncBuffer{}
	p := NewPlayer(out, 1.0, log.New(io.Discard))
	p.StartMusic(1.0)
	p.StartMusic(0.5)

	deadline := time.Now().Add(2 * time.Second)
	for !out.nonZero() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	p.StopMusic()
	if err := p.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	if !out.nonZero() {
		t.Error("music produced only silence")
	}

	// Music controls after close must not block
	p.StartMusic(1.0)
	p.StopMusic()
}
