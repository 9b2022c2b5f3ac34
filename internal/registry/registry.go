// Package registry provides global registries for game factories and
// environment variants. Games and environments register themselves in init()
// functions, allowing the platform to discover them without hardcoded
// dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/dino-gym/internal/config"
	"github.com/vovakirdan/dino-gym/internal/core"
)

// Game is the interface interactive games implement for the TUI platform.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "dino").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Dino Runner").
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	envs      = make(map[string]config.EnvConfig)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f()
	titles[id] = g.Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// RegisterEnv adds an environment variant keyed by cfg.ID.
// Panics if the ID is already registered.
func RegisterEnv(cfg config.EnvConfig) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := envs[cfg.ID]; exists {
		panic(fmt.Sprintf("registry: environment %q already registered", cfg.ID))
	}
	envs[cfg.ID] = cfg
}

// LookupEnv returns the configuration of a registered environment variant.
func LookupEnv(id string) (config.EnvConfig, error) {
	mu.RLock()
	defer mu.RUnlock()

	cfg, ok := envs[id]
	if !ok {
		return config.EnvConfig{}, fmt.Errorf("registry: unknown environment %q", id)
	}
	return cfg, nil
}

// Envs returns all registered environment variants, sorted by ID.
func Envs() []config.EnvConfig {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]config.EnvConfig, 0, len(envs))
	for _, cfg := range envs {
		result = append(result, cfg)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}
