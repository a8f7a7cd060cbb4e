package core

// Sound identifies an audio cue a game can request.
// Games only name the cue; the platform decides how (or whether) to play it.
type Sound int

const (
	SoundNone     Sound = iota
	SoundPlace          // piece locked in its cell
	SoundMiss           // piece landed somewhere wrong
	SoundRotate         // piece rotated
	SoundSpawn          // new piece dealt
	SoundCombo          // streak of correct placements
	SoundLevelUp        // level increased
	SoundUnlock         // theme unlocked
	SoundComplete       // puzzle finished
	SoundGameOver       // board overflowed
)

// String returns the cue name.
func (s Sound) String() string {
	switch s {
	case SoundPlace:
		return "place"
	case SoundMiss:
		return "miss"
	case SoundRotate:
		return "rotate"
	case SoundSpawn:
		return "spawn"
	case SoundCombo:
		return "combo"
	case SoundLevelUp:
		return "levelup"
	case SoundUnlock:
		return "unlock"
	case SoundComplete:
		return "complete"
	case SoundGameOver:
		return "gameover"
	default:
		return "none"
	}
}

// Sounder plays audio cues. Implementations must not block the caller.
type Sounder interface {
	Play(s Sound)
}

// NopSounder discards every cue.
type NopSounder struct{}

// Play implements Sounder.
func (NopSounder) Play(Sound) {}
