package env

import (
	"testing"

	"github.com/vovakirdan/dino-gym/internal/config"
	"github.com/vovakirdan/dino-gym/internal/games/dino"
)

func TestNewPolicy(t *testing.T) {
	for _, name := range PolicyNames() {
		p, err := NewPolicy(name, config.DefaultDinoConfig())
		if err != nil {
			t.Fatalf("NewPolicy(%q) failed: %v", name, err)
		}
		if p.Name() != name {
			t.Errorf("Name() = %q, expected %q", p.Name(), name)
		}
	}
	if _, err := NewPolicy("greedy", config.DefaultDinoConfig()); err == nil {
		t.Error("NewPolicy should reject unknown names")
	}
}

func TestRandomPolicy(t *testing.T) {
	p := NewRandomPolicy(0)
	p.Reset(5)

	var first []int
	seen := make(map[int]bool)
	for i := 0; i < 300; i++ {
		a := p.Act(Observation{})
		if a < 0 || a >= NumActions {
			t.Fatalf("action %d out of range", a)
		}
		seen[a] = true
		first = append(first, a)
	}
	if len(seen) != NumActions {
		t.Errorf("expected all actions to appear, got %v", seen)
	}

	p.Reset(5)
	for i, want := range first {
		if got := p.Act(Observation{}); got != want {
			t.Fatalf("action %d after reseed = %d, expected %d", i, got, want)
		}
	}
}

func TestHeuristicDecisions(t *testing.T) {
	cfg := config.DefaultDinoConfig()
	tests := []struct {
		name     string
		obstacle func() dino.Obstacle
		want     dino.Action
	}{
		{"no obstacle", nil, dino.ActionIdle},
		{"far cactus", func() dino.Obstacle { return dino.NewGroundObstacle(cfg, 0, 400, 6) }, dino.ActionIdle},
		{"near cactus", func() dino.Obstacle { return dino.NewGroundObstacle(cfg, 1, 110, 6) }, dino.ActionJump},
		{"near low bird", func() dino.Obstacle { return dino.NewAirborneObstacle(cfg, 2, 100, 6) }, dino.ActionDuck},
		{"near high bird", func() dino.Obstacle { return dino.NewAirborneObstacle(cfg, 0, 100, 6) }, dino.ActionIdle},
		{"near middle bird", func() dino.Obstacle { return dino.NewAirborneObstacle(cfg, 1, 100, 6) }, dino.ActionIdle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEnv(t, config.DefaultEnvConfig(), cfg)
			e.Reset(1)
			if tt.obstacle != nil {
				e.Engine().PlaceObstacle(tt.obstacle())
			}

			p := NewHeuristicPolicy(cfg)
			if got := p.Act(e.observe()); got != int(tt.want) {
				t.Errorf("Act() = %v, expected %v", dino.Action(got), tt.want)
			}
		})
	}
}

func TestHeuristicClearsScriptedObstacles(t *testing.T) {
	tests := []struct {
		name  string
		place func(cfg config.DinoConfig) dino.Obstacle
	}{
		{"cactus", func(cfg config.DinoConfig) dino.Obstacle { return dino.NewGroundObstacle(cfg, 2, 300, 6) }},
		{"low bird", func(cfg config.DinoConfig) dino.Obstacle { return dino.NewAirborneObstacle(cfg, 2, 300, 6) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := quietDino()
			e := newTestEnv(t, config.DefaultEnvConfig(), cfg)
			p := NewHeuristicPolicy(cfg)
			e.Reset(1)
			p.Reset(1)
			e.Engine().PlaceObstacle(tt.place(cfg))
			obs := e.observe()

			passed := 0
			for i := 0; i < 120; i++ {
				res, err := e.Step(p.Act(obs))
				if err != nil {
					t.Fatal(err)
				}
				if res.Terminated {
					t.Fatalf("collided at step %d", i)
				}
				passed = max(passed, res.Info.ObstaclesPassed)
				obs = res.Obs
			}
			if passed != 1 {
				t.Errorf("expected the obstacle to be passed, got %d", passed)
			}
		})
	}
}
