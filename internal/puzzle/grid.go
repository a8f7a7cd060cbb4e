package puzzle

import (
	"errors"
	"fmt"
)

// Placement rejection reasons, matched with errors.Is.
var (
	ErrOutOfBounds  = errors.New("cell out of bounds")
	ErrOccupied     = errors.New("cell occupied")
	ErrWrongCell    = errors.New("not the piece's target cell")
	ErrEdgeMismatch = errors.New("neighbour edge mismatch")
	ErrLocked       = errors.New("piece already locked")
)

// PlacementError describes why a piece was rejected at a cell.
type PlacementError struct {
	PieceID  string
	Row, Col int
	Reason   error
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("puzzle: cannot place %s at (%d,%d): %v", e.PieceID, e.Row, e.Col, e.Reason)
}

func (e *PlacementError) Unwrap() error {
	return e.Reason
}

// Grid is a fixed rows x cols occupancy map.
// Cells are stored in row-major order: index = row*Cols + col, row 0 on top.
// The grid holds references to pieces owned by a Session.
type Grid struct {
	Rows  int
	Cols  int
	cells []*Piece

	placed int // occupied cells whose piece is locked
}

// NewGrid creates an empty grid.
func NewGrid(rows, cols int) *Grid {
	return &Grid{
		Rows:  rows,
		Cols:  cols,
		cells: make([]*Piece, rows*cols),
	}
}

func (g *Grid) index(row, col int) int {
	return row*g.Cols + col
}

// InBounds returns true if (row, col) lies on the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// PieceAt returns the occupant of a cell, or nil.
func (g *Grid) PieceAt(row, col int) *Piece {
	if !g.InBounds(row, col) {
		return nil
	}
	return g.cells[g.index(row, col)]
}

// IsEmpty reports whether an in-bounds cell has no occupant.
func (g *Grid) IsEmpty(row, col int) bool {
	return g.InBounds(row, col) && g.cells[g.index(row, col)] == nil
}

// PositionOf finds the cell holding p.
func (g *Grid) PositionOf(p *Piece) (row, col int, ok bool) {
	for i, occupant := range g.cells {
		if occupant == p {
			return i / g.Cols, i % g.Cols, true
		}
	}
	return 0, 0, false
}

// Check validates placing p at (row, col) without changing anything.
// The cell p already occupies counts as free for p itself. Locked pieces
// never move, so they are always rejected.
func (g *Grid) Check(p *Piece, row, col int) error {
	reject := func(reason error) error {
		return &PlacementError{PieceID: p.ID(), Row: row, Col: col, Reason: reason}
	}

	if p.Locked() {
		return reject(ErrLocked)
	}
	if !g.InBounds(row, col) {
		return reject(ErrOutOfBounds)
	}
	if occupant := g.cells[g.index(row, col)]; occupant != nil && occupant != p {
		return reject(ErrOccupied)
	}
	if tr, tc := p.Target(); tr != row || tc != col {
		return reject(ErrWrongCell)
	}
	for _, d := range directions {
		dr, dc := d.Delta()
		neighbor := g.PieceAt(row+dr, col+dc)
		if neighbor == nil || neighbor == p {
			continue
		}
		if !EdgesCompatible(p.Shape().Side(d), neighbor.Shape().Side(d.Opposite())) {
			return reject(ErrEdgeMismatch)
		}
	}
	return nil
}

// CanPlace reports whether Check accepts the placement.
func (g *Grid) CanPlace(p *Piece, row, col int) bool {
	return g.Check(p, row, col) == nil
}

// Place moves p into (row, col) if Check accepts it, then evaluates it.
// A correctly oriented piece locks and counts as placed; otherwise it
// stays unlocked and still occupies the cell.
func (g *Grid) Place(p *Piece, row, col int) (locked bool, err error) {
	if err := g.Check(p, row, col); err != nil {
		return false, err
	}
	g.put(p, row, col)
	return g.evaluate(p, row, col), nil
}

// Land is the drop entry point: a piece that reaches (row, col) always
// stays there if the cell is free. Placements that pass Check behave like
// Place; any other landing leaves an unlocked stray that blocks the cell.
func (g *Grid) Land(p *Piece, row, col int) (locked bool, err error) {
	err = g.Check(p, row, col)
	if err == nil {
		g.put(p, row, col)
		return g.evaluate(p, row, col), nil
	}
	if !errors.Is(err, ErrWrongCell) && !errors.Is(err, ErrEdgeMismatch) {
		return false, err
	}
	g.put(p, row, col)
	p.markPlacement(false)
	return false, nil
}

// Settle re-evaluates an unlocked piece already on the grid, typically
// after it was rotated in place. It returns true if the piece locked.
func (g *Grid) Settle(p *Piece) bool {
	if p.Locked() {
		return false
	}
	row, col, ok := g.PositionOf(p)
	if !ok {
		return false
	}
	if g.Check(p, row, col) != nil {
		p.markPlacement(false)
		return false
	}
	return g.evaluate(p, row, col)
}

// Remove clears the cell holding p. It returns false if p is not on the grid.
func (g *Grid) Remove(p *Piece) bool {
	row, col, ok := g.PositionOf(p)
	if !ok {
		return false
	}
	g.cells[g.index(row, col)] = nil
	if p.Locked() {
		g.placed--
	}
	p.unlock()
	return true
}

// Clear empties every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = nil
	}
	g.placed = 0
}

// Placed returns the number of locked pieces on the grid.
func (g *Grid) Placed() int {
	return g.placed
}

// Occupied returns the number of non-empty cells, locked or not.
func (g *Grid) Occupied() int {
	n := 0
	for _, p := range g.cells {
		if p != nil {
			n++
		}
	}
	return n
}

// CompletionRatio returns locked pieces over total cells.
func (g *Grid) CompletionRatio() float64 {
	total := g.Rows * g.Cols
	if total == 0 {
		return 0
	}
	return float64(g.placed) / float64(total)
}

// IsComplete reports whether every cell holds a locked piece.
func (g *Grid) IsComplete() bool {
	return g.placed == g.Rows*g.Cols
}

// Strays returns unlocked occupants in row-major order.
func (g *Grid) Strays() []*Piece {
	var strays []*Piece
	for _, p := range g.cells {
		if p != nil && !p.Locked() {
			strays = append(strays, p)
		}
	}
	return strays
}

// DropRow returns the row a piece falling from (fromRow, col) comes to
// rest on, or -1 if the starting cell is blocked.
func (g *Grid) DropRow(col, fromRow int) int {
	if !g.IsEmpty(fromRow, col) {
		return -1
	}
	row := fromRow
	for g.IsEmpty(row+1, col) {
		row++
	}
	return row
}

// put writes p into the cell, detaching it from any prior cell first.
func (g *Grid) put(p *Piece, row, col int) {
	if pr, pc, ok := g.PositionOf(p); ok {
		if pr == row && pc == col {
			return
		}
		g.Remove(p)
	}
	g.cells[g.index(row, col)] = p
}

func (g *Grid) evaluate(p *Piece, row, col int) bool {
	if !p.IsCorrectAt(row, col) {
		p.markPlacement(false)
		return false
	}
	p.lock()
	g.placed++
	return true
}
