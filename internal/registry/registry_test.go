package registry

import (
	"testing"

	"github.com/mkorolik/tui2048/internal/core"
)

type stubGame struct {
	id    string
	title string
}

func (g *stubGame) ID() string                            { return g.id }
func (g *stubGame) Title() string                         { return g.title }
func (g *stubGame) Reset(cfg core.RuntimeConfig)          {}
func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	return core.StepResult{}
}
func (g *stubGame) Render(dst *core.Screen) {}
func (g *stubGame) State() core.GameState   { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-a", func() Game { return &stubGame{id: "stub-a", title: "Stub A"} })

	if !Exists("stub-a") {
		t.Error("Exists should report registered game")
	}

	g, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub-a" {
		t.Errorf("Created game ID = %s, want stub-a", g.ID())
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); err == nil {
		t.Error("Create should fail for unregistered ID")
	}
	if Exists("no-such-game") {
		t.Error("Exists should be false for unregistered ID")
	}
}

func TestListSorted(t *testing.T) {
	Register("stub-c", func() Game { return &stubGame{id: "stub-c", title: "Stub C"} })
	Register("stub-b", func() Game { return &stubGame{id: "stub-b", title: "Stub B"} })

	games := List()

	prev := ""
	found := 0
	for _, info := range games {
		if info.ID < prev {
			t.Errorf("List not sorted: %q after %q", info.ID, prev)
		}
		prev = info.ID
		if info.ID == "stub-b" || info.ID == "stub-c" {
			found++
			if info.Title == "" {
				t.Errorf("List entry %q missing title", info.ID)
			}
		}
	}
	if found != 2 {
		t.Errorf("List missing registered stubs, found %d of 2", found)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register should panic on duplicate ID")
		}
	}()

	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
}
