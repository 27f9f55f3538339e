package registry

import (
	"testing"

	"github.com/vovakirdan/dandaka/internal/core"
)

type stubGame struct{ id string }

func (s *stubGame) ID() string                                   { return s.id }
func (s *stubGame) Title() string                                { return "Stub " + s.id }
func (s *stubGame) Reset(core.RuntimeConfig)                     {}
func (s *stubGame) Step(core.InputFrame, float64) core.StepResult { return core.StepResult{} }
func (s *stubGame) Frame() core.Frame                            { return core.Frame{} }
func (s *stubGame) DrainEvents() []core.Event                    { return nil }
func (s *stubGame) State() core.GameState                        { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub", func() Game { return &stubGame{id: "zz_stub"} })

	if !Exists("zz_stub") {
		t.Fatal("registered game should exist")
	}

	g, err := Create("zz_stub")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if g.ID() != "zz_stub" {
		t.Errorf("ID() = %q, expected zz_stub", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz_stub" {
			found = true
			if info.Title != "Stub zz_stub" {
				t.Errorf("Title = %q", info.Title)
			}
		}
	}
	if !found {
		t.Error("List() should include the registered game")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does-not-exist"); err == nil {
		t.Error("expected error for unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
}
