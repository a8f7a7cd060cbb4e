package registry

import (
	"testing"

	"github.com/vovakirdan/jigsaw-drop/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return "Stub " + g.id }
func (g stubGame) Description() string                  { return "a stub" }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub", func() Game { return stubGame{id: "zz_stub"} })

	if !Exists("zz_stub") {
		t.Fatal("Exists() = false after Register")
	}
	g, err := Create("zz_stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz_stub" {
		t.Errorf("ID() = %q, want zz_stub", g.ID())
	}

	var found bool
	for _, info := range List() {
		if info.ID == "zz_stub" {
			found = true
			if info.Description != "a stub" {
				t.Errorf("Description = %q, want %q", info.Description, "a stub")
			}
		}
	}
	if !found {
		t.Error("List() missing registered game")
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create() of unknown id should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return stubGame{id: "zz_dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_dup", func() Game { return stubGame{id: "zz_dup"} })
}

type sizedStub struct {
	stubGame
	n int
}

func (g sizedStub) BoardSize() (int, int) { return g.n, g.n }

func TestListOrdersByBoardSize(t *testing.T) {
	Register("size_b", func() Game { return sizedStub{stubGame{id: "size_b"}, 8} })
	Register("size_a", func() Game { return sizedStub{stubGame{id: "size_a"}, 8} })
	Register("size_c", func() Game { return sizedStub{stubGame{id: "size_c"}, 3} })

	var order []string
	for _, info := range List() {
		if info.Rows > 0 {
			order = append(order, info.ID)
		}
	}
	want := []string{"size_c", "size_a", "size_b"}
	if len(order) != len(want) {
		t.Fatalf("sized games = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %s, want %s", i, order[i], want[i])
		}
	}
}
