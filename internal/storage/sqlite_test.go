package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/jigsaw-drop/internal/puzzle"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreMigrationsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	for range 2 {
		store, err := Open(dbPath)
		if err != nil {
			t.Fatalf("Open() failed: %v", err)
		}
		v, err := store.SchemaVersion()
		if err != nil {
			t.Fatalf("SchemaVersion() failed: %v", err)
		}
		if v != len(migrations) {
			t.Errorf("SchemaVersion() = %d, expected %d", v, len(migrations))
		}
		store.Close()
	}
}

func TestStoreSaveAndTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("jigsaw", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("jigsaw_mini", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("jigsaw", 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("Expected 2 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 {
		t.Errorf("TopScores() = %d, %d; expected 200, 100", scores[0].Score, scores[1].Score)
	}

	high, err := store.HighScore("jigsaw_mini")
	if err != nil || high != 500 {
		t.Errorf("HighScore(jigsaw_mini) = %d, %v; expected 500", high, err)
	}
	if high, _ := store.HighScore("jigsaw_grand"); high != 0 {
		t.Errorf("HighScore(no scores) = %d, expected 0", high)
	}

	if err := store.ClearScores("jigsaw"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if scores, _ := store.TopScores("jigsaw", 10); len(scores) != 0 {
		t.Errorf("Expected no scores after clear, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("jigsaw", 300)
	store.SaveScore("jigsaw", 100)

	stats, err := store.GetGameStats("jigsaw")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 {
		t.Errorf("stats = %+v", stats)
	}

	empty, err := store.GetGameStats("jigsaw_grand")
	if err != nil {
		t.Fatalf("GetGameStats(empty) failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 1 || all["jigsaw"] == nil {
		t.Errorf("GetAllGamesStats() = %v", all)
	}
}

func TestStoreSettingsRoundTrip(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.GetSetting("missing"); ok || err != nil {
		t.Errorf("GetSetting(missing) ok=%v err=%v", ok, err)
	}
	if err := store.SetSetting("k", "v1"); err != nil {
		t.Fatalf("SetSetting() failed: %v", err)
	}
	if err := store.SetSetting("k", "v2"); err != nil {
		t.Fatalf("SetSetting() overwrite failed: %v", err)
	}
	if v, ok, _ := store.GetSetting("k"); !ok || v != "v2" {
		t.Errorf("GetSetting(k) = %q, %v; expected v2", v, ok)
	}

	store.SetSetting("n", "not a number")
	if n, err := store.GetInt("n", 7); n != 7 || err != nil {
		t.Errorf("GetInt(malformed) = %d, %v; expected default 7", n, err)
	}
}

func TestStoreImplementsPuzzleSettings(t *testing.T) {
	store := openTestStore(t)
	var settings puzzle.Settings = store.Settings("jigsaw")

	settings.SetHighScore(1200)
	if got := settings.HighScore(); got != 1200 {
		t.Errorf("HighScore() = %d, expected 1200", got)
	}
	if other := store.Settings("jigsaw_mini").HighScore(); other != 0 {
		t.Errorf("high score leaked across games: %d", other)
	}

	if settings.ThemeUnlocked(puzzle.ThemeOcean) {
		t.Error("ocean unlocked on a fresh store")
	}
	settings.UnlockTheme(puzzle.ThemeOcean)
	if !store.Settings("jigsaw_grand").ThemeUnlocked(puzzle.ThemeOcean) {
		t.Error("theme unlocks should be shared across games")
	}

	if err := store.ResetHighScore("jigsaw"); err != nil {
		t.Fatalf("ResetHighScore() failed: %v", err)
	}
	if got := settings.HighScore(); got != 0 {
		t.Errorf("HighScore() after reset = %d, expected 0", got)
	}
}

func TestStoreCurrentTheme(t *testing.T) {
	store := openTestStore(t)

	if got := store.CurrentTheme(); got != puzzle.ThemeClassic {
		t.Errorf("CurrentTheme() = %v, expected classic", got)
	}
	if err := store.SetCurrentTheme(puzzle.ThemeNeon); err == nil {
		t.Error("selecting a locked theme should fail")
	}
	if err := store.SetCurrentTheme(puzzle.ThemeDark); err != nil {
		t.Fatalf("SetCurrentTheme(dark) failed: %v", err)
	}
	if got := store.CurrentTheme(); got != puzzle.ThemeDark {
		t.Errorf("CurrentTheme() = %v, expected dark", got)
	}
}

func TestStoreSoundToggle(t *testing.T) {
	store := openTestStore(t)

	if !store.SoundEnabled() {
		t.Error("sound should default to on")
	}
	if err := store.SetSoundEnabled(false); err != nil {
		t.Fatalf("SetSoundEnabled(false) failed: %v", err)
	}
	if store.SoundEnabled() {
		t.Error("sound should be off after disabling")
	}
	if !store.MusicEnabled() {
		t.Error("music should default to on and not follow the sound toggle")
	}
	if err := store.SetMusicEnabled(false); err != nil {
		t.Fatalf("SetMusicEnabled(false) failed: %v", err)
	}
	if store.MusicEnabled() {
		t.Error("music should be off after disabling")
	}
}

func TestStoreRunsAndStats(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{GameID: "jigsaw", Score: 4700, Success: true, PiecesLocked: 36, PiecesTotal: 36, Level: 4, Duration: 3 * time.Minute})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id == "" {
		t.Error("SaveRun() should assign an ID")
	}
	if _, err := store.SaveRun(Run{GameID: "jigsaw_mini", Score: 90, PiecesLocked: 3, PiecesTotal: 16, Level: 1, Duration: 45 * time.Second}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	stats, err := store.PlayStats()
	if err != nil {
		t.Fatalf("PlayStats() failed: %v", err)
	}
	if stats.GamesPlayed != 2 || stats.GamesWon != 1 || stats.PiecesLocked != 39 || stats.BestLevel != 4 {
		t.Errorf("PlayStats() = %+v", stats)
	}
	if stats.PlayTime != 225*time.Second {
		t.Errorf("PlayTime = %v, expected 3m45s", stats.PlayTime)
	}

	runs, err := store.RecentRuns("jigsaw", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != id || !runs[0].Success {
		t.Errorf("RecentRuns(jigsaw) = %+v", runs)
	}
	if all, _ := store.RecentRuns("", 10); len(all) != 2 {
		t.Errorf("RecentRuns(all) returned %d runs, expected 2", len(all))
	}
}
