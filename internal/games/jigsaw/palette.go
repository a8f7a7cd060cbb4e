package jigsaw

import (
	"github.com/vovakirdan/jigsaw-drop/internal/core"
	"github.com/vovakirdan/jigsaw-drop/internal/puzzle"
)

// palette maps board elements to screen colors for one theme.
type palette struct {
	Frame   core.Color
	Empty   core.Color
	Locked  core.Color
	Stray   core.Color
	Falling core.Color
	Ghost   core.Color
	Cursor  core.Color
	Text    core.Color
	Accent  core.Color
}

var palettes = map[puzzle.Theme]palette{
	puzzle.ThemeClassic: {
		Frame: core.ColorWhite, Empty: core.ColorDarkGray, Locked: core.ColorGreen,
		Stray: core.ColorRed, Falling: core.ColorBrightYellow, Ghost: core.ColorGray,
		Cursor: core.ColorBrightCyan, Text: core.ColorDefault, Accent: core.ColorBrightWhite,
	},
	puzzle.ThemeDark: {
		Frame: core.ColorDarkGray, Empty: core.ColorDarkGray, Locked: core.ColorGray,
		Stray: core.ColorBrightRed, Falling: core.ColorBrightWhite, Ghost: core.ColorDarkGray,
		Cursor: core.ColorWhite, Text: core.ColorGray, Accent: core.ColorWhite,
	},
	puzzle.ThemeSunset: {
		Frame: core.ColorOrange, Empty: core.ColorBrown, Locked: core.ColorGold,
		Stray: core.ColorPurple, Falling: core.ColorPink, Ghost: core.ColorBrown,
		Cursor: core.ColorBrightYellow, Text: core.ColorOrange, Accent: core.ColorPink,
	},
	puzzle.ThemeOcean: {
		Frame: core.ColorBlue, Empty: core.ColorNavy, Locked: core.ColorCyan,
		Stray: core.ColorBrightRed, Falling: core.ColorBrightCyan, Ghost: core.ColorNavy,
		Cursor: core.ColorBrightWhite, Text: core.ColorBrightBlue, Accent: core.ColorTeal,
	},
	puzzle.ThemeForest: {
		Frame: core.ColorGreen, Empty: core.ColorBrown, Locked: core.ColorBrightGreen,
		Stray: core.ColorOrange, Falling: core.ColorBrightYellow, Ghost: core.ColorBrown,
		Cursor: core.ColorBrightWhite, Text: core.ColorGreen, Accent: core.ColorGold,
	},
	puzzle.ThemeNeon: {
		Frame: core.ColorBrightMagenta, Empty: core.ColorPurple, Locked: core.ColorBrightGreen,
		Stray: core.ColorBrightRed, Falling: core.ColorBrightCyan, Ghost: core.ColorPurple,
		Cursor: core.ColorBrightYellow, Text: core.ColorBrightMagenta, Accent: core.ColorBrightCyan,
	},
	puzzle.ThemeCyberpunk: {
		Frame: core.ColorBrightYellow, Empty: core.ColorNavy, Locked: core.ColorBrightCyan,
		Stray: core.ColorBrightMagenta, Falling: core.ColorBrightYellow, Ghost: core.ColorNavy,
		Cursor: core.ColorPink, Text: core.ColorBrightYellow, Accent: core.ColorBrightMagenta,
	},
	puzzle.ThemeMinimalist: {
		Frame: core.ColorGray, Empty: core.ColorDarkGray, Locked: core.ColorWhite,
		Stray: core.ColorGray, Falling: core.ColorBrightWhite, Ghost: core.ColorDarkGray,
		Cursor: core.ColorBrightWhite, Text: core.ColorDefault, Accent: core.ColorWhite,
	},
	puzzle.ThemeRetro: {
		Frame: core.ColorGreen, Empty: core.ColorDarkGray, Locked: core.ColorBrightGreen,
		Stray: core.ColorYellow, Falling: core.ColorBrightGreen, Ghost: core.ColorGreen,
		Cursor: core.ColorBrightYellow, Text: core.ColorGreen, Accent: core.ColorBrightGreen,
	},
	puzzle.ThemeNature: {
		Frame: core.ColorBrown, Empty: core.ColorDarkGray, Locked: core.ColorGreen,
		Stray: core.ColorOrange, Falling: core.ColorTeal, Ghost: core.ColorBrown,
		Cursor: core.ColorBrightYellow, Text: core.ColorBrown, Accent: core.ColorBrightGreen,
	},
	puzzle.ThemeGalaxy: {
		Frame: core.ColorPurple, Empty: core.ColorNavy, Locked: core.ColorBrightBlue,
		Stray: core.ColorPink, Falling: core.ColorBrightWhite, Ghost: core.ColorNavy,
		Cursor: core.ColorGold, Text: core.ColorPurple, Accent: core.ColorBrightMagenta,
	},
	puzzle.ThemeAurora: {
		Frame: core.ColorTeal, Empty: core.ColorNavy, Locked: core.ColorBrightGreen,
		Stray: core.ColorPink, Falling: core.ColorBrightCyan, Ghost: core.ColorNavy,
		Cursor: core.ColorBrightMagenta, Text: core.ColorTeal, Accent: core.ColorBrightGreen,
	},
}

func paletteFor(t puzzle.Theme) palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[puzzle.ThemeClassic]
}
