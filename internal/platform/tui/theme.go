package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/jigsaw-drop/internal/puzzle"
)

// MenuTheme contains the lipgloss styles for the menus and the scoreboard.
type MenuTheme struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	ItemNormal  lipgloss.Style
	ItemActive  lipgloss.Style
	ItemLocked  lipgloss.Style
	Description lipgloss.Style
	Border      lipgloss.Color
	Highlight   lipgloss.Color // Table selection background
}

// themeAccents holds the two ANSI 256 colors each puzzle theme is built on.
var themeAccents = map[puzzle.Theme][2]string{
	puzzle.ThemeClassic:    {"51", "226"},
	puzzle.ThemeDark:       {"250", "255"},
	puzzle.ThemeSunset:     {"208", "205"},
	puzzle.ThemeOcean:      {"33", "87"},
	puzzle.ThemeForest:     {"34", "220"},
	puzzle.ThemeNeon:       {"201", "118"},
	puzzle.ThemeCyberpunk:  {"226", "199"},
	puzzle.ThemeMinimalist: {"252", "255"},
	puzzle.ThemeRetro:      {"46", "226"},
	puzzle.ThemeNature:     {"130", "112"},
	puzzle.ThemeGalaxy:     {"135", "183"},
	puzzle.ThemeAurora:     {"37", "121"},
}

// MenuThemeFor builds the menu styles for a puzzle theme. Unknown themes
// use the classic colors.
func MenuThemeFor(t puzzle.Theme) MenuTheme {
	accent, ok := themeAccents[t]
	if !ok {
		accent = themeAccents[puzzle.ThemeClassic]
	}
	primary, secondary := lipgloss.Color(accent[0]), lipgloss.Color(accent[1])

	return MenuTheme{
		Title:       lipgloss.NewStyle().Foreground(primary).Bold(true),
		Subtitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		ItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ItemActive:  lipgloss.NewStyle().Foreground(secondary).Bold(true),
		ItemLocked:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Border:      primary,
		Highlight:   lipgloss.Color("57"),
	}
}
