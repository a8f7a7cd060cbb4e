package puzzle

import "sync"

// Settings persists the high score and theme unlock flags.
// Implementations are best-effort; failures must not interrupt play.
type Settings interface {
	HighScore() int
	SetHighScore(score int)
	ThemeUnlocked(t Theme) bool
	UnlockTheme(t Theme)
}

// MemorySettings keeps settings in memory. It is safe for concurrent use.
type MemorySettings struct {
	mu        sync.Mutex
	highScore int
	unlocked  map[Theme]bool
}

// NewMemorySettings returns empty in-memory settings.
func NewMemorySettings() *MemorySettings {
	return &MemorySettings{unlocked: make(map[Theme]bool)}
}

func (m *MemorySettings) HighScore() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.highScore
}

func (m *MemorySettings) SetHighScore(score int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.highScore = score
}

func (m *MemorySettings) ThemeUnlocked(t Theme) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.unlocked[t]
}

func (m *MemorySettings) UnlockTheme(t Theme) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.unlocked[t] = true
}
