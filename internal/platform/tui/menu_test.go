package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/jigsaw-drop/internal/config"
	"github.com/vovakirdan/jigsaw-drop/internal/puzzle"
	"github.com/vovakirdan/jigsaw-drop/internal/storage"
)

func updateMenu(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Unexpected model type %T", next)
	}
	return mm
}

// moveToRow presses down until the cursor is on row.
func moveToRow(t *testing.T, m MenuModel, row int) MenuModel {
	t.Helper()
	for m.cursor < row {
		m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	return m
}

func TestMenuThemeCycleSkipsLocked(t *testing.T) {
	store := openTestStore(t)
	m := NewMenuModel(store, testConfig())
	if m.Theme() != puzzle.ThemeClassic {
		t.Fatalf("Expected classic theme, got %s", m.Theme())
	}

	m = moveToRow(t, m, len(m.items))
	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyRight})

	// Only classic, dark and minimalist are unlocked on a fresh store.
	if m.Theme() != puzzle.ThemeDark {
		t.Fatalf("Expected dark theme, got %s", m.Theme())
	}
	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Theme() != puzzle.ThemeMinimalist {
		t.Fatalf("Expected minimalist theme, got %s", m.Theme())
	}
	if store.CurrentTheme() != puzzle.ThemeMinimalist {
		t.Errorf("Expected the choice to persist, got %s", store.CurrentTheme())
	}
}

func TestMenuThemeCycleIncludesUnlocked(t *testing.T) {
	store := openTestStore(t)
	store.Settings("").UnlockTheme(puzzle.ThemeSunset)

	m := NewMenuModel(store, testConfig())
	m = moveToRow(t, m, len(m.items))
	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyRight})

	if m.Theme() != puzzle.ThemeSunset {
		t.Errorf("Expected sunset theme, got %s", m.Theme())
	}
}

func TestMenuDifficultyCycle(t *testing.T) {
	m := NewMenuModel(nil, testConfig())
	if m.Difficulty() != config.DifficultyNormal {
		t.Fatalf("Expected normal difficulty, got %s", m.Difficulty())
	}

	m = moveToRow(t, m, len(m.items)+1)
	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Difficulty() != config.DifficultyEasy {
		t.Errorf("Expected easy difficulty, got %s", m.Difficulty())
	}
	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Difficulty() != config.DifficultyFixed {
		t.Errorf("Expected wrap to fixed difficulty, got %s", m.Difficulty())
	}
}

func TestMenuCursorBounds(t *testing.T) {
	m := NewMenuModel(nil, testConfig())
	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("Expected cursor to stay at 0, got %d", m.cursor)
	}
	for range m.rows() + 3 {
		m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursor != m.rows()-1 {
		t.Errorf("Expected cursor at %d, got %d", m.rows()-1, m.cursor)
	}
}

func TestMenuSelectAndScoreboard(t *testing.T) {
	m := NewMenuModel(nil, testConfig())
	m.items = []MenuItem{{GameID: "stub", Title: "Stub"}}

	selected := updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if selected.Selected() == nil || selected.Selected().GameID != "stub" {
		t.Error("Expected stub to be selected")
	}

	scores := updateMenu(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !scores.WantsScoreboard() {
		t.Error("Expected tab to open the scoreboard")
	}
}

func TestMenuThemeStylesFallBack(t *testing.T) {
	if MenuThemeFor(puzzle.Theme("missing")).Border != MenuThemeFor(puzzle.ThemeClassic).Border {
		t.Error("Expected unknown themes to use classic colors")
	}
}

func TestScoreboardLoadsStats(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore("stub", 700); err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveRun(storage.Run{GameID: "stub", Score: 700, Success: true, PiecesLocked: 4, PiecesTotal: 4}); err != nil {
		t.Fatal(err)
	}

	sb := NewScoreboardModel(store, 100, 30)
	sb.load("stub")
	if len(sb.scores) != 1 || sb.stats == nil || sb.stats.HighScore != 700 {
		t.Errorf("Expected one score of 700, got %v / %+v", sb.scores, sb.stats)
	}
	if len(sb.runs) != 1 {
		t.Errorf("Expected one run, got %d", len(sb.runs))
	}
	if !strings.Contains(sb.statsLine(), "Solved: 1") {
		t.Errorf("Unexpected stats line %q", sb.statsLine())
	}
}

func TestScoreboardToggleView(t *testing.T) {
	sb := NewScoreboardModel(nil, 100, 30)
	next, _ := sb.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'v'}})
	sb = next.(ScoreboardModel)
	if sb.view != viewRuns {
		t.Fatal("Expected v to switch to recent runs")
	}
	if len(sb.columns()) != 6 {
		t.Errorf("Expected 6 run columns, got %d", len(sb.columns()))
	}
	if !strings.Contains(sb.View(), "RECENT RUNS") {
		t.Error("Expected the runs title")
	}
}

func TestFormatDuration(t *testing.T) {
	if got := formatDuration(95 * time.Second); got != "1:35" {
		t.Errorf("formatDuration = %q, expected 1:35", got)
	}
}
