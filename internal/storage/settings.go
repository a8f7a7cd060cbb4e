package storage

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/jigsaw-drop/internal/puzzle"
)

// Setting keys.
const (
	KeyCurrentTheme = "current_theme"
	KeySoundEnabled = "sound_enabled"
	KeyMusicEnabled = "music_enabled"
)

func highScoreKey(gameID string) string { return "high_score:" + gameID }
func themeKey(t puzzle.Theme) string { return "theme_unlocked:" + string(t) }

// GetSetting returns the value stored under key and whether it exists.
func (s *Store) GetSetting(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if isNoRows(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read setting %s: %w", key, err)
	}
	return value, true, nil
}

// SetSetting stores value under key, replacing any previous value.
func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write setting %s: %w", key, err)
	}
	return nil
}

// DeleteSetting removes key. Missing keys are not an error.
func (s *Store) DeleteSetting(key string) error {
	if _, err := s.db.Exec("DELETE FROM settings WHERE key = ?", key); err != nil {
		return fmt.Errorf("storage: cannot delete setting %s: %w", key, err)
	}
	return nil
}

// GetInt reads an integer setting, returning def when absent or malformed.
func (s *Store) GetInt(key string, def int) (int, error) {
	v, ok, err := s.GetSetting(key)
	if err != nil || !ok {
		return def, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, nil
	}
	return n, nil
}

// GetBool reads a boolean setting, returning def when absent or malformed.
func (s *Store) GetBool(key string, def bool) (bool, error) {
	v, ok, err := s.GetSetting(key)
	if err != nil || !ok {
		return def, err
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, nil
	}
	return b, nil
}

// ResetHighScore forgets the persisted best score for a game.
func (s *Store) ResetHighScore(gameID string) error {
	return s.DeleteSetting(highScoreKey(gameID))
}

// CurrentTheme returns the selected theme, falling back to classic.
func (s *Store) CurrentTheme() puzzle.Theme {
	v, ok, err := s.GetSetting(KeyCurrentTheme)
	if err != nil || !ok || !puzzle.Theme(v).Valid() {
		return puzzle.ThemeClassic
	}
	return puzzle.Theme(v)
}

// SetCurrentTheme stores the selected theme. Locked themes are rejected.
func (s *Store) SetCurrentTheme(t puzzle.Theme) error {
	if !t.Valid() {
		return fmt.Errorf("storage: unknown theme %q", t)
	}
	if !puzzle.Available(t, s.Settings("")) {
		return fmt.Errorf("storage: theme %q is locked", t)
	}
	return s.SetSetting(KeyCurrentTheme, string(t))
}

// SoundEnabled reports the persisted audio toggle. Sound is on unless
// it was switched off.
func (s *Store) SoundEnabled() bool {
	on, err := s.GetBool(KeySoundEnabled, true)
	return err != nil || on
}

// SetSoundEnabled persists the audio toggle.
func (s *Store) SetSoundEnabled(on bool) error {
	return s.SetSetting(KeySoundEnabled, strconv.FormatBool(on))
}

// MusicEnabled reports the persisted background music toggle, on by
// default. It only matters while sound itself is on.
func (s *Store) MusicEnabled() bool {
	on, err := s.GetBool(KeyMusicEnabled, true)
	return err != nil || on
}

// SetMusicEnabled persists the background music toggle.
func (s *Store) SetMusicEnabled(on bool) error {
	return s.SetSetting(KeyMusicEnabled, strconv.FormatBool(on))
}

// Settings returns a puzzle.Settings backed by this store.
// The high score is tracked per game; theme unlocks are global.
// Errors are logged and otherwise ignored so play never stops on a
// storage failure.
func (s *Store) Settings(gameID string) *Settings {
	return &Settings{store: s, gameID: gameID, logger: log.Default()}
}

// Settings adapts Store to puzzle.Settings.
type Settings struct {
	store  *Store
	gameID string
	logger *log.Logger
}

var _ puzzle.Settings = (*Settings)(nil)

// WithLogger sets the logger used for best-effort failures.
func (st *Settings) WithLogger(l *log.Logger) *Settings {
	if l != nil {
		st.logger = l
	}
	return st
}

func (st *Settings) HighScore() int {
	n, err := st.store.GetInt(highScoreKey(st.gameID), 0)
	if err != nil {
		st.logger.Warn("read high score", "game", st.gameID, "err", err)
	}
	return n
}

func (st *Settings) SetHighScore(score int) {
	if err := st.store.SetSetting(highScoreKey(st.gameID), strconv.Itoa(score)); err != nil {
		st.logger.Warn("write high score", "game", st.gameID, "err", err)
	}
}

func (st *Settings) ThemeUnlocked(t puzzle.Theme) bool {
	ok, err := st.store.GetBool(themeKey(t), false)
	if err != nil {
		st.logger.Warn("read theme unlock", "theme", t, "err", err)
	}
	return ok
}

func (st *Settings) UnlockTheme(t puzzle.Theme) {
	if err := st.store.SetSetting(themeKey(t), "true"); err != nil {
		st.logger.Warn("write theme unlock", "theme", t, "err", err)
	}
}
