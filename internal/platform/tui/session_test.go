package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/jigsaw-drop/internal/registry"
)

func init() {
	registry.Register("session_stub", func() registry.Game { return &stubGame{} })
}

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Unexpected model type %T", next)
	}
	return sm
}

func menuRowOf(t *testing.T, m SessionModel, id string) int {
	t.Helper()
	for i, item := range m.menu.items {
		if item.GameID == id {
			return i
		}
	}
	t.Fatalf("game %q not in menu", id)
	return -1
}

func TestSessionGameAndBack(t *testing.T) {
	m := NewSessionModel(Options{Store: openTestStore(t)}, testConfig())
	for range menuRowOf(t, m, "session_stub") {
		m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame || m.gameModel == nil {
		t.Fatalf("Expected game screen, got %v", m.screen)
	}
	if m.View() == "" {
		t.Error("Expected game view")
	}

	// First esc pauses, second leaves.
	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = updateSession(t, m, TickMsg{})
	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || m.gameModel != nil {
		t.Fatalf("Expected menu screen after leaving, got %v", m.screen)
	}
	if m.quitting {
		t.Error("Leaving a game should not quit the session")
	}
}

func TestSessionScoreboardAndBack(t *testing.T) {
	m := NewSessionModel(Options{Store: openTestStore(t)}, testConfig())
	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScoreboard {
		t.Fatalf("Expected scoreboard screen, got %v", m.screen)
	}

	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Errorf("Expected menu screen, got %v", m.screen)
	}
}

func TestSessionQuitFromMenu(t *testing.T) {
	m := NewSessionModel(Options{}, testConfig())
	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !m.quitting || m.View() != "" {
		t.Error("Expected q to quit the session")
	}
}
