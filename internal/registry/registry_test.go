package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-crawler/internal/core"
)

type stubGame struct {
	id    string
	state core.GameState
}

func (g *stubGame) ID() string                 { return g.id }
func (g *stubGame) Title() string              { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)   {}
func (g *stubGame) Render(*core.Screen)        {}
func (g *stubGame) State() core.GameState      { return g.state }
func (g *stubGame) Step(core.InputFrame) core.StepResult {
	return core.StepResult{State: g.state}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-a", func() Game { return &stubGame{id: "stub-a"} })

	if !Exists("stub-a") {
		t.Fatal("stub-a should exist")
	}
	g, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "stub-a" {
		t.Errorf("ID = %q", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "stub-a" {
			found = true
			if info.Title != "Stub stub-a" {
				t.Errorf("title = %q", info.Title)
			}
		}
	}
	if !found {
		t.Error("stub-a missing from List")
	}
}

func TestTryRegisterDuplicate(t *testing.T) {
	if !TryRegister("stub-b", func() Game { return &stubGame{id: "stub-b"} }) {
		t.Fatal("first registration should succeed")
	}
	if TryRegister("stub-b", func() Game { return &stubGame{id: "other"} }) {
		t.Error("duplicate registration should be refused")
	}

	g, _ := Create("stub-b")
	if g.ID() != "stub-b" {
		t.Error("duplicate replaced the original factory")
	}

	defer func() {
		if recover() == nil {
			t.Error("Register should panic on a duplicate")
		}
	}()
	Register("stub-b", func() Game { return &stubGame{id: "stub-b"} })
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-dungeon")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("err = %v, want ErrUnknownGame", err)
	}
}

func TestListSorted(t *testing.T) {
	TryRegister("zz-stub", func() Game { return &stubGame{id: "zz-stub"} })
	TryRegister("aa-stub", func() Game { return &stubGame{id: "aa-stub"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("List not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
