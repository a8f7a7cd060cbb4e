// Package core holds the types shared by games and the platform: input
// frames, the screen buffer, colors, sounds and runtime config. It imports
// nothing from Bubble Tea so game logic stays testable on its own.
package core

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Inset shrinks the rectangle by n cells on every side, never below zero size.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: max(0, r.W-2*n), H: max(0, r.H-2*n)}
}

// CenteredIn returns a w x h rectangle centered inside outer. When it does
// not fit it is pinned to outer's top-left corner.
func CenteredIn(outer Rect, w, h int) Rect {
	return Rect{
		X: outer.X + max(0, (outer.W-w)/2),
		Y: outer.Y + max(0, (outer.H-h)/2),
		W: w,
		H: h,
	}
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
