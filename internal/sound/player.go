package sound

import (
	"encoding/binary"
	"fmt"
	"io"
	"os/exec"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"

	"github.com/vovakirdan/jigsaw-drop/internal/config"
	"github.com/vovakirdan/jigsaw-drop/internal/core"
)

// chunk is how much audio the mix loop writes per iteration.
const chunk = 20 * time.Millisecond

// Player mixes cues over an optional music loop and streams them to an
// output. It implements core.Sounder; Play never blocks and drops cues
// when the queue is full.
type Player struct {
	out    io.Writer
	closer func() error
	logger *log.Logger
	volume float64

	queue chan core.Sound
	music chan beep.Streamer
	stop  chan struct{}
	done  chan struct{}
	once  sync.Once

	cacheMu sync.Mutex
	cache   map[core.Sound][][2]float64

	// Accessed only by the mix goroutine
	active  []voice
	track   beep.Streamer
	scratch [][2]float64
}

type voice struct {
	samples [][2]float64
	pos     int
}

var _ core.Sounder = (*Player)(nil)

// New starts a player for the configured backend. When sound is disabled
// or no backend is installed it returns a silent core.NopSounder and a
// no-op close function.
func New(cfg config.SoundConfig, logger *log.Logger) (core.Sounder, func() error) {
	if logger == nil {
		logger = log.Default()
	}
	if !cfg.Enabled {
		return core.NopSounder{}, func() error { return nil }
	}

	backend, err := DetectBackend(cfg.Player)
	if err != nil {
		logger.Info("audio disabled", "reason", err)
		return core.NopSounder{}, func() error { return nil }
	}

	cmd := exec.Command(backend.Path, backend.Args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		logger.Warn("audio pipe", "backend", backend.Name, "err", err)
		return core.NopSounder{}, func() error { return nil }
	}
	if err := cmd.Start(); err != nil {
		logger.Warn("audio start", "backend", backend.Name, "err", err)
		return core.NopSounder{}, func() error { return nil }
	}
	logger.Debug("audio backend started", "backend", backend.Name)

	p := NewPlayer(stdin, cfg.Volume, logger)
	if cfg.Music {
		p.StartMusic(cfg.MusicVolume)
	}
	p.closer = func() error {
		if err := cmd.Wait(); err != nil {
			return fmt.Errorf("sound: %s exited: %w", backend.Name, err)
		}
		return nil
	}
	return p, p.Close
}

// NewPlayer starts a mix loop writing s16le stereo PCM to out.
func NewPlayer(out io.Writer, volume float64, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	p := &Player{
		out:    out,
		logger: logger,
		volume: volume,
		queue:  make(chan core.Sound, 32),
		music:  make(chan beep.Streamer, 1),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
		cache:  make(map[core.Sound][][2]float64),
	}
	go p.loop()
	return p
}

// Play queues a cue.
func (p *Player) Play(s core.Sound) {
	select {
	case <-p.stop:
	case p.queue <- s:
	default:
		p.logger.Debug("audio queue full, dropping cue", "sound", s)
	}
}

// StartMusic loops the background track under the cues, replacing any
// track already playing.
func (p *Player) StartMusic(volume float64) {
	p.setMusic(Music(volume))
}

// StopMusic silences the background track; cues keep playing.
func (p *Player) StopMusic() {
	p.setMusic(nil)
}

// setMusic hands a track to the mix loop. Only the latest request matters,
// so a pending one is replaced.
func (p *Player) setMusic(st beep.Streamer) {
	for {
		select {
		case <-p.stop:
			return
		case p.music <- st:
			return
		default:
			select {
			case <-p.music:
			default:
			}
		}
	}
}

// Close stops the mix loop and releases the backend. An output that is
// also an io.Closer is closed first so a write stuck on a stalled reader
// returns.
func (p *Player) Close() error {
	var err error
	p.once.Do(func() {
		close(p.stop)
		if c, ok := p.out.(io.Closer); ok {
			c.Close()
		}
		<-p.done
		if p.closer != nil {
			err = p.closer()
		}
	})
	return err
}

// samples returns the rendered cue, synthesizing it on first use.
func (p *Player) samples(s core.Sound) [][2]float64 {
	p.cacheMu.Lock()
	defer p.cacheMu.Unlock()
	if buf, ok := p.cache[s]; ok {
		return buf
	}
	var buf [][2]float64
	if st := Effect(s, p.volume); st != nil {
		buf = Render(st)
	}
	p.cache[s] = buf
	return buf
}

func (p *Player) loop() {
	defer close(p.done)

	ticker := time.NewTicker(chunk)
	defer ticker.Stop()

	frames := SampleRate.N(chunk)
	mix := make([][2]float64, frames)
	raw := make([]byte, frames*4)

	for {
		select {
		case <-p.stop:
			return
		case s := <-p.queue:
			if buf := p.samples(s); len(buf) > 0 {
				p.active = append(p.active, voice{samples: buf})
			}
		case st := <-p.music:
			p.track = st
		case <-ticker.C:
			p.mixInto(mix)
			encode(mix, raw)
			if _, err := p.out.Write(raw); err != nil {
				select {
				case <-p.stop:
				default:
					p.logger.Warn("audio write failed, muting", "err", err)
					<-p.stop
				}
				return
			}
		}
	}
}

// mixInto sums the music track and every active voice into dst and
// retires finished voices.
func (p *Player) mixInto(dst [][2]float64) {
	for i := range dst {
		dst[i] = [2]float64{}
	}
	if p.track != nil {
		if len(p.scratch) != len(dst) {
			p.scratch = make([][2]float64, len(dst))
		}
		n, ok := p.track.Stream(p.scratch)
		copyAdd(dst, p.scratch[:n])
		if !ok {
			p.track = nil
		}
	}
	alive := p.active[:0]
	for _, v := range p.active {
		n := copyAdd(dst, v.samples[v.pos:])
		v.pos += n
		if v.pos < len(v.samples) {
			alive = append(alive, v)
		}
	}
	p.active = alive
}

func copyAdd(dst, src [][2]float64) int {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i][0] += src[i][0]
		dst[i][1] += src[i][1]
	}
	return n
}

// encode converts samples to interleaved little-endian int16, soft-limiting
// peaks above 0.8 before the hard clip.
func encode(in [][2]float64, out []byte) {
	for i, s := range in {
		for ch := 0; ch < 2; ch++ {
			binary.LittleEndian.PutUint16(out[i*4+ch*2:], uint16(toInt16(s[ch])))
		}
	}
}

func toInt16(v float64) int16 {
	if v > 0.8 {
		v = 0.8 + 0.2*(1.0-1.0/(1.0+(v-0.8)*5.0))
	} else if v < -0.8 {
		v = -0.8 - 0.2*(1.0-1.0/(1.0+(-v-0.8)*5.0))
	}
	if v > 1.0 {
		v = 1.0
	} else if v < -1.0 {
		v = -1.0
	}
	return int16(v * 32767)
}
