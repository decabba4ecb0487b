package registry

import (
	"sort"
	"testing"

	"github.com/vovakirdan/blockfall/internal/core"
)

// stubGame is a minimal Game implementation for registry tests.
type stubGame struct {
	id    string
	title string
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func register(id, title string) {
	Register(id, func() Game {
		return &stubGame{id: id, title: title}
	})
}

func TestRegisterAndCreate(t *testing.T) {
	register("stub-create", "Stub Create")

	g, err := Create("stub-create")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if g.ID() != "stub-create" || g.Title() != "Stub Create" {
		t.Errorf("created game = %s/%s, want stub-create/Stub Create", g.ID(), g.Title())
	}

	// Each Create call yields a fresh instance.
	g2, err := Create("stub-create")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if g == g2 {
		t.Error("Create() returned the same instance twice")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); err == nil {
		t.Error("Create() of an unregistered ID should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	register("stub-dup", "Stub Dup")

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() should panic")
		}
	}()
	register("stub-dup", "Stub Dup Again")
}

func TestExists(t *testing.T) {
	if Exists("stub-exists") {
		t.Error("Exists() true before registration")
	}
	register("stub-exists", "Stub Exists")
	if !Exists("stub-exists") {
		t.Error("Exists() false after registration")
	}
}

func TestListSorted(t *testing.T) {
	register("stub-list-b", "B")
	register("stub-list-a", "A")

	infos := List()
	if !sort.SliceIsSorted(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID }) {
		t.Errorf("List() not sorted by ID: %v", infos)
	}

	found := 0
	for _, info := range infos {
		switch info.ID {
		case "stub-list-a":
			if info.Title != "A" {
				t.Errorf("stub-list-a title = %q, want A", info.Title)
			}
			found++
		case "stub-list-b":
			found++
		}
	}
	if found != 2 {
		t.Errorf("List() contains %d of the registered stubs, want 2", found)
	}
}
