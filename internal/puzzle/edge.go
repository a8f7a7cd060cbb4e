// Package puzzle contains the rules of a jigsaw drop puzzle: pieces with
// tagged edges, the grid they lock into, and the session that deals them.
// It has no rendering, audio or storage dependencies.
package puzzle

// Edge classifies one border of a piece.
type Edge uint8

const (
	EdgeFlat  Edge = iota // puzzle boundary
	EdgeTab               // protrusion
	EdgeBlank             // indentation
)

// String returns the edge name.
func (e Edge) String() string {
	switch e {
	case EdgeFlat:
		return "flat"
	case EdgeTab:
		return "tab"
	case EdgeBlank:
		return "blank"
	default:
		return "unknown"
	}
}

// Complement returns the edge a neighbour needs to fit against e.
func (e Edge) Complement() Edge {
	switch e {
	case EdgeTab:
		return EdgeBlank
	case EdgeBlank:
		return EdgeTab
	default:
		return EdgeFlat
	}
}

// EdgesCompatible reports whether two facing edges fit together.
// Tab fits blank, flat fits flat, nothing else fits.
func EdgesCompatible(mine, neighbor Edge) bool {
	switch mine {
	case EdgeTab:
		return neighbor == EdgeBlank
	case EdgeBlank:
		return neighbor == EdgeTab
	case EdgeFlat:
		return neighbor == EdgeFlat
	default:
		return false
	}
}

// Shape holds the four edge tags of a piece.
type Shape struct {
	Top    Edge
	Right  Edge
	Bottom Edge
	Left   Edge
}

// Rotated returns the shape turned 90 degrees clockwise:
// the left edge becomes the top, top becomes right, and so on.
func (s Shape) Rotated() Shape {
	return Shape{
		Top:    s.Left,
		Right:  s.Top,
		Bottom: s.Right,
		Left:   s.Bottom,
	}
}

// Side returns the edge facing the given direction.
func (s Shape) Side(d Direction) Edge {
	switch d {
	case DirUp:
		return s.Top
	case DirRight:
		return s.Right
	case DirDown:
		return s.Bottom
	default:
		return s.Left
	}
}

// Direction names one of the four orthogonal neighbours of a cell.
type Direction uint8

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Delta returns the (row, col) offset of the neighbour in direction d.
// Row 0 is the top of the grid.
func (d Direction) Delta() (int, int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirRight:
		return 0, 1
	case DirDown:
		return 1, 0
	default:
		return 0, -1
	}
}

var directions = [4]Direction{DirUp, DirRight, DirDown, DirLeft}

// Orientation is a quarter-turn rotation state. North is canonical.
type Orientation uint8

const (
	North Orientation = iota
	East
	South
	West
)

// Rotated advances one quarter turn clockwise.
func (o Orientation) Rotated() Orientation {
	return (o + 1) % 4
}

// Degrees returns the clockwise rotation angle.
func (o Orientation) Degrees() int {
	return int(o%4) * 90
}

// String returns the orientation name.
func (o Orientation) String() string {
	switch o % 4 {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	default:
		return "west"
	}
}

// Kind classifies a piece by where its target cell sits.
type Kind uint8

const (
	KindInterior Kind = iota
	KindEdge
	KindCorner
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindCorner:
		return "corner"
	case KindEdge:
		return "edge"
	default:
		return "interior"
	}
}

// ClassifyPosition derives the kind of a cell from its position alone.
func ClassifyPosition(row, col, rows, cols int) Kind {
	vertical := row == 0 || row == rows-1
	horizontal := col == 0 || col == cols-1
	switch {
	case vertical && horizontal:
		return KindCorner
	case vertical || horizontal:
		return KindEdge
	default:
		return KindInterior
	}
}
