package registry

import (
	"testing"

	"github.com/vovakirdan/dino-gym/internal/config"
	"github.com/vovakirdan/dino-gym/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-a", func() Game { return &stubGame{id: "stub-a"} })

	if !Exists("stub-a") {
		t.Fatal("registered game should exist")
	}
	g, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub-a" {
		t.Errorf("ID() = %q, expected stub-a", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "stub-a" && info.Title == "Stub stub-a" {
			found = true
		}
	}
	if !found {
		t.Error("List() should include the registered game with its title")
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create() of unknown id should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
}

func TestEnvRegistry(t *testing.T) {
	cfg := config.DefaultEnvConfig()
	cfg.ID = "Stub-v0"
	cfg.MaxEpisodeSteps = 7
	RegisterEnv(cfg)

	got, err := LookupEnv("Stub-v0")
	if err != nil {
		t.Fatalf("LookupEnv() failed: %v", err)
	}
	if got.MaxEpisodeSteps != 7 {
		t.Errorf("MaxEpisodeSteps = %d, expected 7", got.MaxEpisodeSteps)
	}
	if _, err := LookupEnv("Nope-v0"); err == nil {
		t.Error("LookupEnv() of unknown id should fail")
	}

	all := Envs()
	for i := 1; i < len(all); i++ {
		if all[i-1].ID >= all[i].ID {
			t.Errorf("Envs() not sorted: %q before %q", all[i-1].ID, all[i].ID)
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("duplicate RegisterEnv should panic")
		}
	}()
	RegisterEnv(cfg)
}
