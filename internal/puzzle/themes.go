package puzzle

// Theme is a cosmetic colour scheme. Unlocks are persisted through Settings.
type Theme string

const (
	ThemeClassic    Theme = "classic"
	ThemeDark       Theme = "dark"
	ThemeSunset     Theme = "sunset"
	ThemeOcean      Theme = "ocean"
	ThemeForest     Theme = "forest"
	ThemeNeon       Theme = "neon"
	ThemeCyberpunk  Theme = "cyberpunk"
	ThemeMinimalist Theme = "minimalist"
	ThemeRetro      Theme = "retro"
	ThemeNature     Theme = "nature"
	ThemeGalaxy     Theme = "galaxy"
	ThemeAurora     Theme = "aurora"
)

// Themes lists every theme in display order.
var Themes = []Theme{
	ThemeClassic, ThemeDark, ThemeSunset, ThemeOcean, ThemeForest, ThemeNeon,
	ThemeCyberpunk, ThemeMinimalist, ThemeRetro, ThemeNature, ThemeGalaxy, ThemeAurora,
}

var themeNames = map[Theme]string{
	ThemeClassic:    "Classic",
	ThemeDark:       "Dark Mode",
	ThemeSunset:     "Sunset",
	ThemeOcean:      "Ocean",
	ThemeForest:     "Forest",
	ThemeNeon:       "Neon",
	ThemeCyberpunk:  "Cyberpunk",
	ThemeMinimalist: "Minimalist",
	ThemeRetro:      "Retro",
	ThemeNature:     "Nature",
	ThemeGalaxy:     "Galaxy",
	ThemeAurora:     "Aurora",
}

// Name returns the display name.
func (t Theme) Name() string {
	if n, ok := themeNames[t]; ok {
		return n
	}
	return string(t)
}

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	_, ok := themeNames[t]
	return ok
}

// AlwaysUnlocked reports whether the theme needs no unlock.
func (t Theme) AlwaysUnlocked() bool {
	return t == ThemeClassic || t == ThemeDark || t == ThemeMinimalist
}

// ScoreUnlock pairs a score threshold with the theme it unlocks.
type ScoreUnlock struct {
	Score int
	Theme Theme
}

// ScoreUnlocks are checked after every correct placement.
var ScoreUnlocks = []ScoreUnlock{
	{Score: 1000, Theme: ThemeOcean},
	{Score: 2500, Theme: ThemeForest},
	{Score: 5000, Theme: ThemeNeon},
}

var levelUnlocks = map[int]Theme{
	2:  ThemeSunset,
	3:  ThemeOcean,
	4:  ThemeForest,
	5:  ThemeNeon,
	6:  ThemeCyberpunk,
	7:  ThemeRetro,
	8:  ThemeNature,
	9:  ThemeGalaxy,
	10: ThemeAurora,
}

// LevelUnlock returns the theme reached at a level, if any.
func LevelUnlock(level int) (Theme, bool) {
	t, ok := levelUnlocks[level]
	return t, ok
}

// Available reports whether t can be selected with the given settings.
func Available(t Theme, s Settings) bool {
	if t.AlwaysUnlocked() {
		return true
	}
	return s != nil && s.ThemeUnlocked(t)
}
