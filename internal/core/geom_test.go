package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := Rect{X: 10, Y: 5, W: 20, H: 15}
	if r.Right() != 30 || r.Bottom() != 20 {
		t.Errorf("Right/Bottom = %d/%d, expected 30/20", r.Right(), r.Bottom())
	}
}

func TestRectInset(t *testing.T) {
	got := Rect{X: 2, Y: 3, W: 10, H: 6}.Inset(1)
	want := Rect{X: 3, Y: 4, W: 8, H: 4}
	if got != want {
		t.Errorf("Inset(1) = %+v, expected %+v", got, want)
	}
	if tiny := (Rect{W: 1, H: 1}).Inset(2); tiny.W != 0 || tiny.H != 0 {
		t.Errorf("Inset past zero = %+v, expected zero size", tiny)
	}
}

func TestCenteredIn(t *testing.T) {
	outer := Rect{W: 80, H: 24}

	tests := []struct {
		name string
		w, h int
		want Rect
	}{
		{"fits", 20, 10, Rect{X: 30, Y: 7, W: 20, H: 10}},
		{"too wide", 100, 10, Rect{X: 0, Y: 7, W: 100, H: 10}},
		{"small", 4, 2, Rect{X: 38, Y: 11, W: 4, H: 2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CenteredIn(outer, tc.w, tc.h); got != tc.want {
				t.Errorf("CenteredIn() = %+v, expected %+v", got, tc.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.v, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.v, tc.lo, tc.hi, got, tc.expected)
		}
	}
}
