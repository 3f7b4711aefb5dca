package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/rush-arcade/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub_b", func() Game { return &stubGame{id: "zz_stub_b"} })
	Register("zz_stub_a", func() Game { return &stubGame{id: "zz_stub_a"} })

	if !Exists("zz_stub_a") {
		t.Fatal("registered game not found")
	}
	g, err := Create("zz_stub_b")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "zz_stub_b" {
		t.Errorf("Create returned %q", g.ID())
	}

	// List is sorted by ID and carries titles.
	var ids []string
	for _, info := range List() {
		if info.ID == "zz_stub_a" && info.Title != "Stub zz_stub_a" {
			t.Errorf("title = %q", info.Title)
		}
		ids = append(ids, info.ID)
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Fatalf("List not sorted: %v", ids)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("err = %v, want ErrUnknownGame", err)
	}
	if Exists("no_such_game") {
		t.Error("Exists reported an unregistered game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_stub_dup", func() Game { return &stubGame{id: "zz_stub_dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_stub_dup", func() Game { return &stubGame{id: "zz_stub_dup"} })
}
