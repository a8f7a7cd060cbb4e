package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/jigsaw-drop/internal/config"
	"github.com/vovakirdan/jigsaw-drop/internal/core"
	"github.com/vovakirdan/jigsaw-drop/internal/puzzle"
	"github.com/vovakirdan/jigsaw-drop/internal/registry"
	"github.com/vovakirdan/jigsaw-drop/internal/storage"
)

// MenuItem represents a selectable game in the menu.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
}

// difficulties lists the presets the menu cycles through.
var difficulties = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
}

// MenuModel is the Bubble Tea model for the game picker menu.
// Below the games it has a theme row and a difficulty row that cycle
// with left and right.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	themeIndex     int
	diffIndex      int
	width          int
	height         int
	store          *storage.Store
	settings       puzzle.Settings
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	notice         string
	quitting       bool
	selected       *MenuItem // Set when user selects a game
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		items = append(items, MenuItem{GameID: g.ID, Title: g.Title, Description: g.Description})
	}

	var settings puzzle.Settings = puzzle.NewMemorySettings()
	theme := puzzle.ThemeClassic
	if store != nil {
		settings = store.Settings("")
		theme = store.CurrentTheme()
	}

	return MenuModel{
		items:      items,
		themeIndex: max(0, themeIndex(theme)),
		diffIndex:  1, // normal
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		store:      store,
		settings:   settings,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
	}
}

func themeIndex(t puzzle.Theme) int {
	for i, candidate := range puzzle.Themes {
		if candidate == t {
			return i
		}
	}
	return -1
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// rows is the number of selectable rows: games, theme, difficulty.
func (m MenuModel) rows() int {
	return len(m.items) + 2
}

func (m MenuModel) onThemeRow() bool      { return m.cursor == len(m.items) }
func (m MenuModel) onDifficultyRow() bool { return m.cursor == len(m.items)+1 }

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)
	m.notice = ""

	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < m.rows()-1 {
			m.cursor++
		}

	case MenuActionLeft, MenuActionRight:
		step := 1
		if action == MenuActionLeft {
			step = -1
		}
		switch {
		case m.onThemeRow():
			m.cycleTheme(step)
		case m.onDifficultyRow():
			m.diffIndex = (m.diffIndex + step + len(difficulties)) % len(difficulties)
		}

	case MenuActionSelect:
		if m.cursor < len(m.items) {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}
		if m.onThemeRow() {
			m.cycleTheme(1)
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

// cycleTheme moves to the next unlocked theme in the given direction.
func (m *MenuModel) cycleTheme(step int) {
	n := len(puzzle.Themes)
	for i := 1; i <= n; i++ {
		idx := ((m.themeIndex+step*i)%n + n) % n
		if puzzle.Available(puzzle.Themes[idx], m.settings) {
			m.themeIndex = idx
			break
		}
	}
	if m.store != nil {
		if err := m.store.SetCurrentTheme(m.Theme()); err != nil {
			m.notice = err.Error()
		}
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	style := MenuThemeFor(m.Theme())
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(style.Title.Render("  J I G S A W   D R O P  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(style.Subtitle.Render("Select a puzzle"), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		b.WriteString(centerText(m.renderRow(style, i, item.Title), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	themeLine := fmt.Sprintf("Theme: < %s >", m.Theme().Name())
	b.WriteString(centerText(m.renderRow(style, len(m.items), themeLine), m.width))
	b.WriteString("\n")
	diffLine := fmt.Sprintf("Difficulty: < %s >", m.Difficulty())
	b.WriteString(centerText(m.renderRow(style, len(m.items)+1, diffLine), m.width))
	b.WriteString("\n\n")

	if m.cursor < len(m.items) && m.items[m.cursor].Description != "" {
		b.WriteString(centerText(style.Description.Render(m.items[m.cursor].Description), m.width))
		b.WriteString("\n")
	}
	if m.notice != "" {
		b.WriteString(centerText(style.ItemLocked.Render(m.notice), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Change  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(style.Subtitle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) renderRow(style MenuTheme, row int, text string) string {
	if row == m.cursor {
		return style.ItemActive.Render("> " + text)
	}
	return style.ItemNormal.Render("  " + text)
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// Theme returns the theme chosen in the menu.
func (m MenuModel) Theme() puzzle.Theme {
	return puzzle.Themes[m.themeIndex]
}

// Difficulty returns the difficulty preset chosen in the menu.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return difficulties[m.diffIndex]
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
