package dino

import (
	"github.com/vovakirdan/dino-gym/internal/config"
	"github.com/vovakirdan/dino-gym/internal/core"
	"github.com/vovakirdan/dino-gym/internal/registry"
)

// duckHoldTicks keeps a human player ducked between terminal key repeats,
// which arrive far slower than the tick rate.
const duckHoldTicks = 12

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts the Engine to the platform's registry.Game interface for
// interactive play: key actions become engine actions, and pause is handled
// outside the simulation.
type Game struct {
	engine   *Engine
	cfg      config.DinoConfig
	runtime  core.RuntimeConfig
	paused   bool
	duckHold int // remaining ticks of held duck
	frame    int // animation frame counter
}

// New creates a new Dino Runner game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "dino"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dino Runner"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadDino(configPath)
	if err != nil {
		cfg = config.DefaultDinoConfig()
	}
	g.cfg = cfg

	if g.engine == nil {
		g.engine = NewEngine(cfg, runtime.Seed)
	} else {
		g.engine.cfg = cfg
		g.engine.Reset(runtime.Seed)
	}
	g.paused = false
	g.duckHold = 0
	g.frame = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine.Terminated() {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.frame++

	action := ActionIdle
	switch {
	case in.Has(core.ActionJump):
		action = ActionJump
		g.duckHold = 0
	case in.Has(core.ActionDuck):
		action = ActionDuck
		g.duckHold = duckHoldTicks
	case g.duckHold > 0:
		action = ActionDuck
		g.duckHold--
	}

	//nolint:errcheck // action is always valid here
	g.engine.Update(action)

	return core.StepResult{State: g.State()}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	Render(dst, g.engine, g.frame)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.engine.Terminated() {
		drawCenteredMessage(dst, "GAME OVER", "Press R to restart")
	}
}

// Engine exposes the underlying simulation for read-only consumers.
func (g *Game) Engine() *Engine {
	return g.engine
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: g.engine.Terminated(),
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("dino", func() registry.Game {
		return New()
	})
}
