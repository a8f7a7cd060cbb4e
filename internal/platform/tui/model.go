package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/jigsaw-drop/internal/config"
	"github.com/vovakirdan/jigsaw-drop/internal/core"
	"github.com/vovakirdan/jigsaw-drop/internal/games/jigsaw"
	"github.com/vovakirdan/jigsaw-drop/internal/puzzle"
	"github.com/vovakirdan/jigsaw-drop/internal/registry"
	"github.com/vovakirdan/jigsaw-drop/internal/storage"
)

// Options carries the platform services a game model uses.
// Every field is optional.
type Options struct {
	Store      *storage.Store
	Sounder    core.Sounder
	Logger     *log.Logger
	Theme      puzzle.Theme
	Difficulty config.DifficultyPreset
}

func (o Options) withDefaults() Options {
	if o.Sounder == nil {
		o.Sounder = core.NopSounder{}
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Theme == "" && o.Store != nil {
		o.Theme = o.Store.CurrentTheme()
	}
	if o.Theme == "" {
		o.Theme = puzzle.ThemeClassic
	}
	return o
}

// Optional game capabilities wired by the platform.
type (
	settingsReceiver   interface{ SetSettings(puzzle.Settings) }
	themeReceiver      interface{ SetTheme(puzzle.Theme) }
	difficultyReceiver interface{ SetDifficulty(config.DifficultyPreset) }
	loggerReceiver     interface{ SetLogger(*log.Logger) }
	runSummarizer      interface{ Summary() jigsaw.Summary }
)

// prepareGame hands the platform services to a game that accepts them.
func prepareGame(game registry.Game, opts Options) {
	if g, ok := game.(settingsReceiver); ok && opts.Store != nil {
		g.SetSettings(opts.Store.Settings(game.ID()).WithLogger(opts.Logger))
	}
	if g, ok := game.(themeReceiver); ok {
		g.SetTheme(opts.Theme)
	}
	if g, ok := game.(difficultyReceiver); ok && opts.Difficulty != "" {
		g.SetDifficulty(opts.Difficulty)
	}
	if g, ok := game.(loggerReceiver); ok {
		g.SetLogger(opts.Logger)
	}
}

// GameModel is the Bubble Tea model that runs one game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	standalone bool // Back quits the program instead of returning to a menu
	startedAt  time.Time
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, opts Options, cfg core.RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	opts = opts.withDefaults()
	prepareGame(game, opts)

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		startedAt:  time.Now(),
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back leaves a paused or finished game and pauses a running one.
	if m.inputFrame.Has(core.ActionBack) {
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			if m.standalone {
				return m, tea.Quit
			}
			return m, nil
		}
		m.inputFrame.Set(core.ActionPause)
	}

	// Restart only means something once the game is over.
	if !m.gameState.GameOver {
		m.inputFrame.Unset(core.ActionRestart)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.startedAt = time.Now()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	for _, s := range result.Sounds {
		m.opts.Sounder.Play(s)
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.recordGame()
		m.scoreSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// recordGame stores the score and the run summary. Failures are logged.
func (m GameModel) recordGame() {
	store := m.opts.Store
	logger := m.opts.Logger
	if store == nil {
		return
	}

	if m.gameState.Score > 0 {
		if _, err := store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
			logger.Error("save score", "game", m.game.ID(), "err", err)
		}
	}

	run := storage.Run{
		GameID:   m.game.ID(),
		Score:    m.gameState.Score,
		Success:  m.gameState.Won,
		Duration: time.Since(m.startedAt),
	}
	if s, ok := m.game.(runSummarizer); ok {
		sum := s.Summary()
		run.PiecesLocked = sum.Locked
		run.PiecesTotal = sum.Rows * sum.Cols
		run.Level = sum.Level
	}
	id, err := store.SaveRun(run)
	if err != nil {
		logger.Error("save run", "game", m.game.ID(), "err", err)
		return
	}
	logger.Info("run recorded", "id", id, "score", run.Score, "success", run.Success)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.opts.Logger.Warn("screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, config.AppDir, "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot", "err", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot", "err", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a single game in its own Bubble Tea program.
func Run(game registry.Game, opts Options, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, opts, cfg)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
