package puzzle

import "fmt"

// Piece is one jigsaw piece. Its target cell and original shape never
// change; rotation and placement state do.
type Piece struct {
	row, col int
	kind     Kind
	original Shape

	shape       Shape
	orientation Orientation
	locked      bool
	correct     bool
}

// NewPiece creates an unlocked piece in canonical orientation.
func NewPiece(row, col int, shape Shape, kind Kind) *Piece {
	return &Piece{
		row:      row,
		col:      col,
		kind:     kind,
		original: shape,
		shape:    shape,
	}
}

// ID returns a stable identifier derived from the target cell.
func (p *Piece) ID() string {
	return fmt.Sprintf("piece_%d_%d", p.row, p.col)
}

// Target returns the only cell this piece may occupy.
func (p *Piece) Target() (row, col int) {
	return p.row, p.col
}

func (p *Piece) Row() int { return p.row }
func (p *Piece) Col() int { return p.col }

// Kind returns the corner/edge/interior classification.
func (p *Piece) Kind() Kind { return p.kind }

// Shape returns the current edges, after rotation.
func (p *Piece) Shape() Shape { return p.shape }

// Orientation returns the current rotation state.
func (p *Piece) Orientation() Orientation { return p.orientation }

// Locked reports whether the piece is fixed in its target cell.
func (p *Piece) Locked() bool { return p.locked }

// CorrectlyPlaced reports the result of the last placement evaluation.
func (p *Piece) CorrectlyPlaced() bool { return p.correct }

// Rotate turns the piece one quarter clockwise.
// Locked pieces cannot rotate; Rotate returns false for them.
func (p *Piece) Rotate() bool {
	if p.locked {
		return false
	}
	p.orientation = p.orientation.Rotated()
	p.shape = p.shape.Rotated()
	return true
}

// IsCorrectAt reports whether the piece would be correctly placed at
// (row, col) in its current orientation. It does not modify the piece.
func (p *Piece) IsCorrectAt(row, col int) bool {
	return row == p.row && col == p.col && p.orientation == North
}

// RotationsNeeded returns how many quarter turns bring the piece back to North.
func (p *Piece) RotationsNeeded() int {
	return (4 - int(p.orientation)) % 4
}

// Hint describes where the piece belongs and how far it is from canonical.
// Rows and columns are 1-based.
func (p *Piece) Hint() string {
	hint := fmt.Sprintf("Row %d, Column %d", p.row+1, p.col+1)
	if n := p.RotationsNeeded(); n > 0 {
		return fmt.Sprintf("%s - rotate %d more time(s)", hint, n)
	}
	return hint + " - orientation correct"
}

// markPlacement records whether the cell the piece now occupies is correct.
func (p *Piece) markPlacement(correct bool) {
	p.correct = correct
}

func (p *Piece) lock() {
	p.locked = true
	p.correct = true
}

func (p *Piece) unlock() {
	p.locked = false
	p.correct = false
}

// reset restores canonical orientation and clears placement state.
func (p *Piece) reset() {
	p.shape = p.original
	p.orientation = North
	p.unlock()
}
