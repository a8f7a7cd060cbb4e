package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)
	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)
	s.SetColored(3, 4, '█', ColorCyan)

	if c := s.GetCell(3, 4); c.Rune != '█' || c.Color != ColorCyan {
		t.Errorf("GetCell(3, 4) = %+v, expected cyan block", c)
	}

	s.Set(3, 4, 'x')
	if c := s.GetCell(3, 4); c.Color != ColorDefault {
		t.Errorf("Set should reset color, got %v", c.Color)
	}

	// Out of bounds is silent
	s.SetColored(-1, 0, 'A', ColorRed)
	s.SetColored(0, 100, 'A', ColorRed)
	if s.Get(-1, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextColored(0, 0, "▲▶x", ColorYellow)

	want := []rune{'▲', '▶', 'x'}
	for i, r := range want {
		if c := s.GetCell(i, 0); c.Rune != r || c.Color != ColorYellow {
			t.Errorf("cell %d = %+v, expected %q yellow", i, c, r)
		}
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCenteredColored(1, "■■", ColorGreen)
	if s.Get(9, 1) != '■' || s.GetCell(10, 1).Color != ColorGreen {
		t.Errorf("centered text misplaced: %q", s.Row(1))
	}
}

func TestScreenDrawBoxColored(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBoxColored(Rect{X: 1, Y: 1, W: 5, H: 4}, ColorGray)

	corners := map[[2]int]rune{{1, 1}: '┌', {5, 1}: '┐', {1, 4}: '└', {5, 4}: '┘'}
	for pos, r := range corners {
		if c := s.GetCell(pos[0], pos[1]); c.Rune != r || c.Color != ColorGray {
			t.Errorf("corner %v = %+v, expected %q gray", pos, c, r)
		}
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("box edges not drawn")
	}
	if s.Get(3, 2) != ' ' {
		t.Error("box interior should stay empty")
	}
}

func TestScreenStringAndResize(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if got, want := s.String(), "AAAAA\nBBBBB\nCCCCC"; got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}

	s.Resize(3, 2)
	if got := s.String(); got != "AAA\nBBB" {
		t.Errorf("after shrink String() = %q", got)
	}
	s.Resize(6, 3)
	if !strings.HasPrefix(s.Row(0), "AAA") || s.Row(2) != "      " {
		t.Errorf("after grow rows = %q / %q", s.Row(0), s.Row(2))
	}
}
