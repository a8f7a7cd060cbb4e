package puzzle

import "math/rand"

// MaxSide bounds both grid dimensions.
const MaxSide = 10

// NewPieceSet generates one piece per cell in row-major order.
// Border edges are flat. Each interior seam is tagged tab or blank once
// and the neighbour gets the complement, so the solved picture is
// consistent with the edge rules.
func NewPieceSet(rows, cols int, rng *rand.Rand) []*Piece {
	shapes := make([]Shape, rows*cols)
	at := func(r, c int) *Shape { return &shapes[r*cols+c] }

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			s := at(r, c)
			if c+1 < cols {
				e := randomEdge(rng)
				s.Right = e
				at(r, c+1).Left = e.Complement()
			}
			if r+1 < rows {
				e := randomEdge(rng)
				s.Bottom = e
				at(r+1, c).Top = e.Complement()
			}
		}
	}

	pieces := make([]*Piece, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			pieces = append(pieces, NewPiece(r, c, *at(r, c), ClassifyPosition(r, c, rows, cols)))
		}
	}
	return pieces
}

func randomEdge(rng *rand.Rand) Edge {
	if rng.Intn(2) == 0 {
		return EdgeTab
	}
	return EdgeBlank
}
