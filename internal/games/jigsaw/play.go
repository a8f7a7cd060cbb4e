package jigsaw

import (
	"fmt"

	"github.com/vovakirdan/jigsaw-drop/internal/config"
	"github.com/vovakirdan/jigsaw-drop/internal/core"
	"github.com/vovakirdan/jigsaw-drop/internal/puzzle"
)

// spawnColumn picks the free top-row cell nearest the center, or -1 if the
// top row is full.
func (g *Game) spawnColumn() int {
	grid := g.session.Grid()
	mid := grid.Cols / 2
	for off := 0; off < grid.Cols; off++ {
		for _, c := range []int{mid - off, mid + off} {
			if grid.IsEmpty(0, c) {
				return c
			}
		}
	}
	return -1
}

// enter puts a freshly dealt piece at the top of the board.
func (g *Game) enter(p *puzzle.Piece) {
	g.falling = p
	g.fallRow = 0
	g.fallCol = max(0, g.spawnColumn())
	g.fallTicker = 0
}

// spawn deals the next piece. A full top row with pieces still queued ends
// the game.
func (g *Game) spawn() {
	if g.session.Remaining() == 0 {
		if g.messageTicks == 0 && len(g.session.Grid().Strays()) > 0 {
			g.flash("Fix misplaced pieces: press C", core.ColorYellow)
		}
		return
	}
	if g.spawnColumn() < 0 {
		g.flash("Board overflow!", core.ColorBrightRed)
		g.play(core.SoundGameOver)
		g.session.Abort()
		return
	}
	if p, ok := g.session.Next(); ok {
		g.enter(p)
	}
}

func (g *Game) progress() config.Progress {
	return config.Progress{
		Pieces: g.landed,
		Score:  g.session.Score(),
		Ticks:  int(g.tick),
	}
}

// ticksPerRow returns the current gravity interval.
func (g *Game) ticksPerRow() int {
	f := g.cfg.Fall
	return g.scaleTicks(g.difficulty.TicksPerRow(f.TicksPerRow, f.MinTicksPerRow, g.progress()))
}

func (g *Game) stepFalling(in core.InputFrame) {
	if g.falling == nil {
		if g.spawnTimer > 0 {
			g.spawnTimer--
			return
		}
		g.spawn()
		return
	}

	grid := g.session.Grid()

	if in.Has(core.ActionLeft) && grid.IsEmpty(g.fallRow, g.fallCol-1) {
		g.fallCol--
	}
	if in.Has(core.ActionRight) && grid.IsEmpty(g.fallRow, g.fallCol+1) {
		g.fallCol++
	}
	if in.Has(core.ActionRotate) || in.Has(core.ActionUp) {
		if g.falling.Rotate() {
			g.play(core.SoundRotate)
		}
	}

	switch {
	case in.Has(core.ActionPlace):
		g.land()
		return
	case in.Has(core.ActionDrop):
		g.fallRow = grid.DropRow(g.fallCol, g.fallRow)
		g.land()
		return
	case in.Has(core.ActionDown):
		g.fall()
		return
	}

	g.fallTicker++
	if g.fallTicker >= g.ticksPerRow() {
		g.fallTicker = 0
		g.fall()
	}
}

// fall moves the piece down one row, landing it when blocked.
func (g *Game) fall() {
	if g.session.Grid().IsEmpty(g.fallRow+1, g.fallCol) {
		g.fallRow++
		return
	}
	g.land()
}

// land commits the falling piece to its current cell.
func (g *Game) land() {
	p := g.falling
	if _, err := g.session.Land(p, g.fallRow, g.fallCol); err != nil {
		g.logger.Error("landing rejected", "piece", p.ID(), "row", g.fallRow, "col", g.fallCol, "err", err)
		return
	}
	g.logger.Debug("piece landed", "piece", p.ID(), "row", g.fallRow, "col", g.fallCol,
		"correct", p.CorrectlyPlaced())

	g.falling = nil
	g.landed++
	g.spawnTimer = g.scaleTicks(g.cfg.Fall.SpawnDelayTicks)
	g.checkLevel()
}

// checkLevel advances the level after level*PiecesPerLevel landings.
func (g *Game) checkLevel() {
	per := g.cfg.Play.PiecesPerLevel
	if per <= 0 {
		return
	}
	for g.level < g.cfg.Play.MaxLevel && g.landed >= g.level*per {
		g.level++
		g.play(core.SoundLevelUp)
		g.flash(fmt.Sprintf("Level %d!", g.level), core.ColorBrightCyan)
		if t, ok := puzzle.LevelUnlock(g.level); ok {
			g.session.UnlockTheme(t)
		}
	}
}

func (g *Game) toggleCursor() {
	g.cursorMode = !g.cursorMode
	if !g.cursorMode {
		return
	}
	grid := g.session.Grid()
	g.cursorRow, g.cursorCol = grid.Rows-1, grid.Cols/2
	if strays := grid.Strays(); len(strays) > 0 {
		g.cursorRow, g.cursorCol, _ = grid.PositionOf(strays[0])
	}
}

// stepCursor handles input while the grid cursor is active. Gravity is
// suspended meanwhile.
func (g *Game) stepCursor(in core.InputFrame) {
	grid := g.session.Grid()

	switch {
	case in.Has(core.ActionLeft):
		g.cursorCol--
	case in.Has(core.ActionRight):
		g.cursorCol++
	case in.Has(core.ActionUp):
		g.cursorRow--
	case in.Has(core.ActionDown):
		g.cursorRow++
	}
	g.cursorRow = core.Clamp(g.cursorRow, 0, grid.Rows-1)
	g.cursorCol = core.Clamp(g.cursorCol, 0, grid.Cols-1)

	p := grid.PieceAt(g.cursorRow, g.cursorCol)
	if p == nil || p.Locked() {
		return
	}
	switch {
	case in.Has(core.ActionRotate):
		g.play(core.SoundRotate)
		g.session.RotatePlaced(p)
	case in.Has(core.ActionPickup):
		if g.session.Requeue(p) {
			g.flash("Piece returned to queue", core.ColorCyan)
		}
	}
}

// HighScore returns the best score recorded in the injected settings.
func (g *Game) HighScore() int {
	if g.session == nil {
		return 0
	}
	return g.session.HighScore()
}

// Summary describes the finished or current run for persistence.
type Summary struct {
	Rows       int
	Cols       int
	Score      int
	Locked     int
	Landed     int
	Level      int
	BestStreak int
	Ticks      uint64
	Success    bool
}

// Summary returns counters for the current run.
func (g *Game) Summary() Summary {
	return Summary{
		Rows:       g.session.Rows(),
		Cols:       g.session.Cols(),
		Score:      g.session.Score(),
		Locked:     g.session.LockedCount(),
		Landed:     g.landed,
		Level:      g.level,
		BestStreak: g.bestStreak,
		Ticks:      g.tick,
		Success:    g.won,
	}
}
