package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/jigsaw-drop/internal/core"
)

// GameKeyMap holds the in-game key bindings.
type GameKeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	Rotate  key.Binding
	Drop    key.Binding
	Place   key.Binding
	Cursor  key.Binding
	Pickup  key.Binding
	Hint    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Rotate, k.Drop, k.Place, k.Cursor, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Rotate, k.Drop, k.Place},
		{k.Cursor, k.Pickup, k.Hint},
		{k.Pause, k.Restart, k.Back, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left:    key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←/a", "left")),
		Right:   key.NewBinding(key.WithKeys("right", "d"), key.WithHelp("→/d", "right")),
		Up:      key.NewBinding(key.WithKeys("up", "w"), key.WithHelp("↑/w", "rotate / cursor up")),
		Down:    key.NewBinding(key.WithKeys("down", "s"), key.WithHelp("↓/s", "soft drop / cursor down")),
		Rotate:  key.NewBinding(key.WithKeys("r", "z"), key.WithHelp("r", "rotate")),
		Drop:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "hard drop")),
		Place:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "place here")),
		Cursor:  key.NewBinding(key.WithKeys("c", "tab"), key.WithHelp("c", "grid cursor")),
		Pickup:  key.NewBinding(key.WithKeys("x", "backspace"), key.WithHelp("x", "pick up")),
		Hint:    key.NewBinding(key.WithKeys("h", "?"), key.WithHelp("h", "hint")),
		Pause:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Restart: key.NewBinding(key.WithKeys("r", "n"), key.WithHelp("r", "restart")),
		Back:    key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "menu")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	Keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{Keys: DefaultGameKeyMap()}
}

// bindings pairs every binding with the action it raises.
// A key may raise several actions; the game ignores the ones that do not
// apply to its state (R rotates while playing and restarts after game over).
func (km *KeyMapper) bindings() []struct {
	binding key.Binding
	action  core.Action
} {
	k := km.Keys
	return []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.Up, core.ActionUp},
		{k.Down, core.ActionDown},
		{k.Rotate, core.ActionRotate},
		{k.Drop, core.ActionDrop},
		{k.Place, core.ActionPlace},
		{k.Cursor, core.ActionCursor},
		{k.Pickup, core.ActionPickup},
		{k.Hint, core.ActionHint},
		{k.Pause, core.ActionPause},
		{k.Restart, core.ActionRestart},
		{k.Back, core.ActionBack},
	}
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	if key.Matches(msg, km.Keys.Quit) {
		return true
	}
	for _, b := range km.bindings() {
		if key.Matches(msg, b.binding) {
			frame.Set(b.action)
		}
	}
	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
