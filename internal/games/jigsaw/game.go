// Package jigsaw implements the jigsaw drop game: pieces of a picture fall
// one at a time and must be rotated and steered into their own cell.
package jigsaw

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/jigsaw-drop/internal/config"
	"github.com/vovakirdan/jigsaw-drop/internal/core"
	"github.com/vovakirdan/jigsaw-drop/internal/puzzle"
	"github.com/vovakirdan/jigsaw-drop/internal/registry"
)

// Variant describes one registered board size.
type Variant struct {
	ID    string
	Title string
	Rows  int // 0 means take the size from config
	Cols  int
}

var (
	Standard = Variant{ID: "jigsaw", Title: "Jigsaw Drop"}
	Mini     = Variant{ID: "jigsaw_mini", Title: "Jigsaw Drop (Mini)", Rows: 4, Cols: 4}
	Grand    = Variant{ID: "jigsaw_grand", Title: "Jigsaw Drop (Grand)", Rows: 8, Cols: 8}
)

func init() {
	for _, v := range []Variant{Standard, Mini, Grand} {
		registry.Register(v.ID, func() registry.Game { return New(v) })
	}
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game implements registry.Game on top of a puzzle.Session.
type Game struct {
	variant Variant

	// Collaborators
	settings puzzle.Settings
	theme    puzzle.Theme
	preset   config.DifficultyPreset // Overrides the package preset when set
	logger   *log.Logger

	// Configuration
	cfg        config.JigsawConfig
	difficulty *config.DifficultyManager
	tickRate   int

	rng     *rand.Rand
	session *puzzle.Session

	// Falling piece; it is not on the grid until it lands
	falling    *puzzle.Piece
	fallRow    int
	fallCol    int
	fallTicker int
	spawnTimer int

	// Progress
	tick       uint64
	landed     int
	level      int
	streak     int
	bestStreak int

	// Grid cursor for fixing strays
	cursorMode bool
	cursorRow  int
	cursorCol  int

	showHint     bool
	message      string
	messageColor core.Color
	messageTicks int

	paused   bool
	gameOver bool
	won      bool
	tooSmall bool

	screenW int
	screenH int

	sounds []core.Sound
}

// New creates a game for the given variant.
func New(v Variant) *Game {
	return &Game{
		variant: v,
		theme:   puzzle.ThemeClassic,
		logger:  log.New(io.Discard),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return g.variant.ID }

// Title returns the display name for this game.
func (g *Game) Title() string { return g.variant.Title }

// Description returns a one-line summary for listings.
func (g *Game) Description() string {
	if g.variant.Rows == 0 {
		return "Rotate and drop every piece into its own cell (board size from config)"
	}
	return fmt.Sprintf("Rotate and drop every piece into its own cell (%dx%d)", g.variant.Rows, g.variant.Cols)
}

// BoardSize reports the puzzle dimensions. The standard variant takes
// them from config, so before Reset it reports the defaults.
func (g *Game) BoardSize() (rows, cols int) {
	switch {
	case g.session != nil:
		return g.session.Rows(), g.session.Cols()
	case g.variant.Rows > 0:
		return g.variant.Rows, g.variant.Cols
	}
	d := config.DefaultJigsawConfig()
	return d.Board.Rows, d.Board.Cols
}

// SetSettings injects persistent settings. Without them the high score
// lives in memory only.
func (g *Game) SetSettings(s puzzle.Settings) {
	g.settings = s
}

// SetTheme selects the color theme. Unknown themes fall back to classic.
func (g *Game) SetTheme(t puzzle.Theme) {
	if !t.Valid() {
		t = puzzle.ThemeClassic
	}
	g.theme = t
}

// SetDifficulty selects a difficulty preset for this game only.
func (g *Game) SetDifficulty(p config.DifficultyPreset) {
	g.preset = p
}

// SetLogger sets the logger for gameplay events.
func (g *Game) SetLogger(l *log.Logger) {
	if l != nil {
		g.logger = l.WithPrefix(g.variant.ID)
	}
}

// Reset initializes or restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadJigsaw(configPath)
	if err != nil {
		g.logger.Warn("config load failed, using defaults", "err", err)
		cfg = config.DefaultJigsawConfig()
	}
	preset := difficultyPreset
	if g.preset != "" {
		preset = g.preset
	}
	cfg.ApplyPreset(preset)
	if g.variant.Rows > 0 {
		cfg.Board.Rows, cfg.Board.Cols = g.variant.Rows, g.variant.Cols
	}
	cfg.Normalize()
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.tickRate = rc.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.screenW, g.screenH = rc.ScreenW, rc.ScreenH

	if g.settings == nil {
		g.settings = puzzle.NewMemorySettings()
	}
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.session = puzzle.NewSession(cfg.Board.Rows, cfg.Board.Cols, g.rng, g.settings)

	g.falling = nil
	g.fallTicker = 0
	g.spawnTimer = 0
	g.tick = 0
	g.landed = 0
	g.level = 1
	g.streak = 0
	g.bestStreak = 0
	g.cursorMode = false
	g.showHint = cfg.Play.ShowHints
	g.message = ""
	g.messageTicks = 0
	g.paused = false
	g.gameOver = false
	g.won = false
	g.sounds = nil
	g.tooSmall = !g.fits()

	if p, ok := g.session.Start(); ok {
		g.enter(p)
	}
	g.drainEvents()
	g.logger.Debug("game started", "rows", cfg.Board.Rows, "cols", cfg.Board.Cols, "seed", rc.Seed)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.sounds = nil

	if in.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
			Seed:     g.rng.Int63(),
		})
		return g.result()
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.gameOver || g.paused || g.tooSmall {
		return g.result()
	}

	if g.messageTicks > 0 {
		g.messageTicks--
		if g.messageTicks == 0 {
			g.message = ""
		}
	}
	if in.Has(core.ActionHint) {
		g.showHint = !g.showHint
	}
	if in.Has(core.ActionCursor) {
		g.toggleCursor()
	}

	if g.cursorMode {
		g.stepCursor(in)
	} else {
		g.stepFalling(in)
	}

	g.drainEvents()
	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Sounds: g.sounds}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.session != nil {
		score = g.session.Score()
	}
	return core.GameState{
		Score:    score,
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused,
	}
}

func (g *Game) play(s core.Sound) {
	g.sounds = append(g.sounds, s)
}

func (g *Game) flash(msg string, c core.Color) {
	g.message = msg
	g.messageColor = c
	g.messageTicks = g.scaleTicks(g.cfg.Fall.MessageTicks)
}

// scaleTicks converts a count tuned for 30 ticks/s to the running rate.
func (g *Game) scaleTicks(n int) int {
	return max(1, n*g.tickRate/30)
}

// drainEvents turns session notifications into HUD messages and sounds.
func (g *Game) drainEvents() {
	for _, e := range g.session.Events() {
		switch ev := e.(type) {
		case puzzle.PieceGeneratedEvent:
			g.play(core.SoundSpawn)
		case puzzle.PlacedCorrectlyEvent:
			g.streak++
			g.bestStreak = max(g.bestStreak, g.streak)
			g.play(core.SoundPlace)
			if g.streak >= 3 && g.streak%3 == 0 {
				g.play(core.SoundCombo)
				g.flash(fmt.Sprintf("Combo x%d!", g.streak), core.ColorBrightMagenta)
			} else {
				g.flash("Perfect!", core.ColorBrightGreen)
			}
			g.logger.Debug("piece locked", "piece", ev.Piece.ID(), "score", g.session.Score())
		case puzzle.PlacedIncorrectlyEvent:
			g.streak = 0
			g.play(core.SoundMiss)
			g.flash("Try again!", core.ColorBrightRed)
		case puzzle.ThemeUnlockedEvent:
			g.play(core.SoundUnlock)
			g.flash("Theme unlocked: "+ev.Theme.Name(), core.ColorBrightYellow)
			g.logger.Info("theme unlocked", "theme", ev.Theme)
		case puzzle.PuzzleCompletedEvent:
			g.play(core.SoundComplete)
			g.flash("Puzzle complete!", core.ColorBrightGreen)
		case puzzle.GameEndedEvent:
			g.gameOver = true
			g.won = ev.Success
			g.falling = nil
			g.cursorMode = false
			g.logger.Info("game ended", "success", ev.Success, "score", ev.FinalScore,
				"locked", g.session.LockedCount(), "level", g.level)
		}
	}
}

// fits reports whether the board and side panel fit the screen.
func (g *Game) fits() bool {
	w, h := g.layoutSize(compactLayout)
	return g.screenW >= w && g.screenH >= h
}
