package jigsaw

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/jigsaw-drop/internal/core"
	"github.com/vovakirdan/jigsaw-drop/internal/puzzle"
)

// layout sets the size of one board cell including its top and left border.
type layout struct {
	cellW int
	cellH int
}

var (
	fullLayout    = layout{cellW: 6, cellH: 4}
	compactLayout = layout{cellW: 4, cellH: 2}
)

const (
	panelW    = 28 // Side panel width including the gap to the board
	panelRows = 18 // Lines the side panel needs
)

// layoutSize returns the screen area the game needs with the given layout.
func (g *Game) layoutSize(l layout) (w, h int) {
	boardW := g.cfg.Board.Cols*l.cellW + 1
	boardH := g.cfg.Board.Rows*l.cellH + 1
	return boardW + panelW, max(boardH, panelRows) + 2
}

// currentLayout picks the largest layout that fits the screen.
func (g *Game) currentLayout() layout {
	w, h := g.layoutSize(fullLayout)
	if g.screenW >= w && g.screenH >= h {
		return fullLayout
	}
	return compactLayout
}

// Resize adapts to a new terminal size without restarting the puzzle.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	g.tooSmall = !g.fits()
}

var (
	topGlyphs    = map[puzzle.Edge]rune{puzzle.EdgeFlat: ' ', puzzle.EdgeTab: '▲', puzzle.EdgeBlank: '▽'}
	rightGlyphs  = map[puzzle.Edge]rune{puzzle.EdgeFlat: ' ', puzzle.EdgeTab: '▶', puzzle.EdgeBlank: '◁'}
	bottomGlyphs = map[puzzle.Edge]rune{puzzle.EdgeFlat: ' ', puzzle.EdgeTab: '▼', puzzle.EdgeBlank: '△'}
	leftGlyphs   = map[puzzle.Edge]rune{puzzle.EdgeFlat: ' ', puzzle.EdgeTab: '◀', puzzle.EdgeBlank: '▷'}
)

var arrows = map[puzzle.Orientation]rune{
	puzzle.North: '↑',
	puzzle.East:  '→',
	puzzle.South: '↓',
	puzzle.West:  '←',
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall || g.session == nil {
		g.renderTooSmall(dst)
		return
	}

	pal := paletteFor(g.theme)
	l := g.currentLayout()
	totalW, totalH := g.layoutSize(l)
	boardW := g.session.Cols()*l.cellW + 1
	boardH := g.session.Rows()*l.cellH + 1

	frame := core.CenteredIn(core.Rect{W: g.screenW, H: g.screenH}, totalW, totalH)
	board := core.Rect{X: frame.X, Y: frame.Y + 1, W: boardW, H: boardH}

	dst.DrawTextColored(frame.X, frame.Y, g.variant.Title, pal.Accent)
	g.renderBoard(dst, l, pal, board.X, board.Y)
	g.renderPanel(dst, pal, board.Right()+2, board.Y)
	dst.DrawTextColored(frame.X, frame.Bottom()-1, g.Controls(), pal.Ghost)
	g.renderOverlays(dst, pal, board)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCenteredColored(y, "Window too small", core.ColorBrightRed)
	w, h := g.layoutSize(compactLayout)
	dst.DrawTextCenteredColored(y+1, fmt.Sprintf("Need at least %dx%d", w, h), core.ColorGray)
}

// renderBoard draws the grid lines, the placed pieces and the falling one.
func (g *Game) renderBoard(dst *core.Screen, l layout, pal palette, boardX, boardY int) {
	rows, cols := g.session.Rows(), g.session.Cols()

	for y := range rows + 1 {
		for x := range cols + 1 {
			px := boardX + x*l.cellW
			py := boardY + y*l.cellH
			dst.SetColored(px, py, intersection(x, y, cols, rows), pal.Frame)
			if x < cols {
				for i := 1; i < l.cellW; i++ {
					dst.SetColored(px+i, py, '─', pal.Frame)
				}
			}
			if y < rows {
				for i := 1; i < l.cellH; i++ {
					dst.SetColored(px, py+i, '│', pal.Frame)
				}
			}
		}
	}

	grid := g.session.Grid()
	var target *puzzle.Piece
	if g.showHint && g.falling != nil {
		target = g.falling
	}

	for r := range rows {
		for c := range cols {
			cx := boardX + c*l.cellW + 1
			cy := boardY + r*l.cellH + 1
			p := grid.PieceAt(r, c)
			switch {
			case p != nil && p.Locked():
				drawPiece(dst, l, cx, cy, p, pal.Locked)
			case p != nil:
				drawPiece(dst, l, cx, cy, p, pal.Stray)
			case target != nil && r == target.Row() && c == target.Col():
				dst.SetColored(cx+(l.cellW-1)/2, cy+(l.cellH-1)/2, '◇', pal.Ghost)
			default:
				dst.SetColored(cx+(l.cellW-1)/2, cy+(l.cellH-1)/2, '·', pal.Empty)
			}
		}
	}

	if g.falling != nil && !g.cursorMode {
		cx := boardX + g.fallCol*l.cellW + 1
		cy := boardY + g.fallRow*l.cellH + 1
		drawPiece(dst, l, cx, cy, g.falling, pal.Falling)
	}

	if g.cursorMode {
		px := boardX + g.cursorCol*l.cellW
		py := boardY + g.cursorRow*l.cellH
		dst.DrawBoxColored(core.Rect{X: px, Y: py, W: l.cellW + 1, H: l.cellH + 1}, pal.Cursor)
	}
}

// intersection returns the box-drawing rune for a grid line crossing.
func intersection(x, y, cols, rows int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == cols:
		return '┐'
	case y == rows && x == 0:
		return '└'
	case y == rows && x == cols:
		return '┘'
	case y == 0:
		return '┬'
	case y == rows:
		return '┴'
	case x == 0:
		return '├'
	case x == cols:
		return '┤'
	default:
		return '┼'
	}
}

// drawPiece draws a piece into the cell interior starting at (x, y).
// The full layout shows all four edges; the compact one only left and right.
func drawPiece(dst *core.Screen, l layout, x, y int, p *puzzle.Piece, c core.Color) {
	s := p.Shape()
	innerW, innerH := l.cellW-1, l.cellH-1
	midX, midY := x+innerW/2, y+innerH/2

	dst.SetColored(x, midY, leftGlyphs[s.Left], c)
	dst.SetColored(x+innerW-1, midY, rightGlyphs[s.Right], c)
	dst.SetColored(midX, midY, arrows[p.Orientation()], c)
	if innerH >= 3 {
		dst.SetColored(midX, y, topGlyphs[s.Top], c)
		dst.SetColored(midX, y+innerH-1, bottomGlyphs[s.Bottom], c)
	}
}

// renderPanel draws score, progress, preview and the hint.
func (g *Game) renderPanel(dst *core.Screen, pal palette, x, y int) {
	s := g.session
	line := func(text string, c core.Color) {
		dst.DrawTextColored(x, y, text, c)
		y++
	}

	line(fmt.Sprintf("Score: %d", s.Score()), pal.Accent)
	line(fmt.Sprintf("Best:  %d", s.HighScore()), pal.Text)
	line(fmt.Sprintf("Level: %d", g.level), pal.Text)
	line(fmt.Sprintf("Theme: %s", g.theme.Name()), pal.Text)
	y++

	ratio := s.Grid().CompletionRatio()
	line(fmt.Sprintf("Complete: %3.0f%%", ratio*100), pal.Text)
	line(progressBar(ratio, panelW-4), pal.Locked)
	line(fmt.Sprintf("Placed: %d/%d", s.LockedCount(), s.Rows()*s.Cols()), pal.Text)
	line(fmt.Sprintf("Queued: %d", s.Remaining()), pal.Text)
	if g.streak > 1 {
		line(fmt.Sprintf("Streak: %d", g.streak), pal.Accent)
	} else {
		y++
	}
	y++

	line("Next:", pal.Text)
	var preview []string
	for _, p := range s.Peek(g.cfg.Play.PreviewCount) {
		r, c := p.Target()
		preview = append(preview, fmt.Sprintf("%c%d,%d", arrows[p.Orientation()], r+1, c+1))
	}
	if len(preview) == 0 {
		preview = append(preview, "-")
	}
	line(strings.Join(preview, "  "), pal.Ghost)
	y++

	if g.cursorMode {
		line("CURSOR: R rotate, X pick up", pal.Cursor)
	} else if g.showHint && g.falling != nil {
		line(g.falling.Hint(), pal.Ghost)
	} else {
		y++
	}

	if g.message != "" {
		line(g.message, g.messageColor)
	}
}

// progressBar renders ratio as a bar of the given width.
func progressBar(ratio float64, width int) string {
	filled := core.Clamp(int(ratio*float64(width)+0.5), 0, width)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, pal palette, board core.Rect) {
	switch {
	case g.paused:
		drawOverlay(dst, pal, board, "PAUSED", "Press P to resume")
	case g.gameOver && g.won:
		drawOverlay(dst, pal, board, "PUZZLE COMPLETE!",
			fmt.Sprintf("Final score: %d", g.session.Score()), "Press R to play again")
	case g.gameOver:
		drawOverlay(dst, pal, board, "GAME OVER",
			fmt.Sprintf("Placed %d of %d", g.session.LockedCount(), g.session.Rows()*g.session.Cols()),
			"Press R to restart")
	}
}

// drawOverlay draws a boxed message centered on the board.
func drawOverlay(dst *core.Screen, pal palette, board core.Rect, lines ...string) {
	width := 0
	for _, line := range lines {
		width = max(width, len([]rune(line)))
	}

	box := core.CenteredIn(board, width+4, len(lines)+2)
	dst.DrawRectColored(box, ' ', pal.Text)
	dst.DrawBoxColored(box, pal.Accent)

	text := box.Inset(1)
	for i, line := range lines {
		x := text.X + (text.W-len([]rune(line)))/2
		dst.DrawTextColored(x, text.Y+i, line, pal.Accent)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	if g.cursorMode {
		return "Arrows: Move | R: Rotate | X: Pick up | C: Back | P: Pause"
	}
	return "←→: Move | R/↑: Rotate | ↓: Soft | Space: Drop | Enter: Place | C: Cursor | H: Hint"
}
