package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/jigsaw-drop/internal/core"
	"github.com/vovakirdan/jigsaw-drop/internal/puzzle"
	"github.com/vovakirdan/jigsaw-drop/internal/storage"
)

// stubGame records what the platform does to it.
type stubGame struct {
	resets   int
	resized  [2]int
	inputs   []core.InputFrame
	state    core.GameState
	sounds   []core.Sound
	theme    puzzle.Theme
	settings puzzle.Settings
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
}
func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	if in.Has(core.ActionPause) {
		g.state.Paused = !g.state.Paused
	}
	return core.StepResult{State: g.state, Sounds: g.sounds}
}
func (g *stubGame) Render(dst *core.Screen)       { dst.DrawText(0, 0, "stub") }
func (g *stubGame) State() core.GameState         { return g.state }
func (g *stubGame) Resize(w, h int)               { g.resized = [2]int{w, h} }
func (g *stubGame) SetTheme(t puzzle.Theme)       { g.theme = t }
func (g *stubGame) SetSettings(s puzzle.Settings) { g.settings = s }

// recordingSounder collects played cues.
type recordingSounder struct {
	played []core.Sound
}

func (r *recordingSounder) Play(s core.Sound) { r.played = append(r.played, s) }

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1}
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Unexpected model type %T", next)
	}
	return gm
}

func TestGameModelWiresServices(t *testing.T) {
	store := openTestStore(t)
	game := &stubGame{}

	NewGameModel(game, Options{Store: store, Theme: puzzle.ThemeDark}, testConfig())

	if game.theme != puzzle.ThemeDark {
		t.Errorf("Expected dark theme, got %q", game.theme)
	}
	if game.settings == nil {
		t.Error("Expected settings to be injected")
	}
}

func TestGameModelPlaysSounds(t *testing.T) {
	game := &stubGame{sounds: []core.Sound{core.SoundPlace, core.SoundCombo}}
	sounder := &recordingSounder{}
	m := NewGameModel(game, Options{Sounder: sounder}, testConfig())

	update(t, m, TickMsg{})

	if len(sounder.played) != 2 || sounder.played[0] != core.SoundPlace {
		t.Errorf("Expected place and combo cues, got %v", sounder.played)
	}
}

func TestGameModelResizeKeepsGame(t *testing.T) {
	game := &stubGame{}
	m := NewGameModel(game, Options{}, testConfig())

	update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if game.resized != [2]int{120, 40} {
		t.Errorf("Expected resize to 120x40, got %v", game.resized)
	}
	if game.resets != 0 {
		t.Error("A resizable game must not be reset")
	}
}

func TestGameModelBackPausesFirst(t *testing.T) {
	game := &stubGame{}
	m := NewGameModel(game, Options{}, testConfig())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = update(t, m, TickMsg{})
	if !game.state.Paused {
		t.Fatal("Expected esc to pause a running game")
	}
	if m.BackToMenu() {
		t.Fatal("Back should not leave a running game")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("Expected esc on a paused game to return to the menu")
	}
}

func TestGameModelRestartOnlyAfterGameOver(t *testing.T) {
	game := &stubGame{}
	m := NewGameModel(game, Options{}, testConfig())

	m = update(t, m, runeKey("r"))
	m = update(t, m, TickMsg{})
	last := game.inputs[len(game.inputs)-1]
	if last.Has(core.ActionRestart) || !last.Has(core.ActionRotate) {
		t.Error("Expected r to rotate while playing")
	}

	game.state.GameOver = true
	m = update(t, m, TickMsg{})
	m = update(t, m, runeKey("r"))
	update(t, m, TickMsg{})
	if game.resets != 1 {
		t.Errorf("Expected one reset after game over, got %d", game.resets)
	}
}

func TestGameModelRecordsRun(t *testing.T) {
	store := openTestStore(t)
	game := &stubGame{}
	m := NewGameModel(game, Options{Store: store}, testConfig())

	game.state = core.GameState{Score: 1300, GameOver: true, Won: true}
	m = update(t, m, TickMsg{})
	update(t, m, TickMsg{})

	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 || scores[0].Score != 1300 {
		t.Errorf("Expected one score of 1300, got %v", scores)
	}
	runs, err := store.RecentRuns("stub", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || !runs[0].Success {
		t.Errorf("Expected one successful run, got %v", runs)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorTeal)
	s.DrawTextColored(2, 0, "cd", core.ColorGold)

	out := RenderScreen(s)
	for _, want := range []string{"ab", "cd"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in rendered output", want)
		}
	}
}

func TestTickIntervalClamps(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{30, time.Second / 30},
		{0, time.Second},
		{-5, time.Second},
		{1000, time.Second / maxTickRate},
	}
	for _, tt := range tests {
		if got := tickInterval(tt.rate); got != tt.want {
			t.Errorf("tickInterval(%d) = %v, want %v", tt.rate, got, tt.want)
		}
	}
}
