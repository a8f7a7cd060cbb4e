package sound

import (
	"errors"
	"os/exec"
	"strconv"
)

// ErrNoBackend is returned when no supported audio player is installed.
var ErrNoBackend = errors.New("sound: no compatible audio player found")

// Backend describes an external player that reads s16le stereo PCM on stdin.
type Backend struct {
	Name string
	Path string
	Args []string
}

func backendArgs(name string) []string {
	rate := strconv.Itoa(int(SampleRate))
	switch name {
	case "pacat":
		return []string{"--raw", "--format=s16le", "--rate=" + rate, "--channels=2", "--latency-msec=50", "--playback"}
	case "pw-cat":
		return []string{"--playback", "--format=s16", "--rate=" + rate, "--channels=2", "--latency=50ms", "-"}
	case "aplay":
		return []string{"-t", "raw", "-f", "S16_LE", "-r", rate, "-c", "2", "-q"}
	case "play":
		return []string{"-t", "raw", "-e", "signed", "-b", "16", "-c", "2", "-r", rate, "-", "-d", "-q"}
	case "ffplay":
		return []string{"-nodisp", "-autoexit", "-f", "s16le", "-ac", "2", "-ar", rate, "-i", "pipe:0", "-loglevel", "quiet"}
	default:
		return nil
	}
}

// candidates in priority order.
var candidates = []string{"pacat", "pw-cat", "aplay", "play", "ffplay"}

// DetectBackend finds an installed player. A non-empty force restricts the
// search to that player name.
func DetectBackend(force string) (*Backend, error) {
	names := candidates
	if force != "" {
		if backendArgs(force) == nil {
			return nil, ErrNoBackend
		}
		names = []string{force}
	}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return &Backend{Name: name, Path: path, Args: backendArgs(name)}, nil
		}
	}
	return nil, ErrNoBackend
}
