// Package dino implements a Chrome Dino-style endless runner simulation.
// The runner jumps or ducks to avoid obstacles while the game speeds up.
// Given a seed and an action sequence the simulation is fully deterministic,
// so it doubles as a training environment for agents.
package dino

import (
	"cmp"
	"fmt"
	"math/rand"
	"slices"

	"github.com/vovakirdan/dino-gym/internal/config"
)

// Engine advances the simulation one tick per Update call.
// An Engine is not safe for concurrent use.
type Engine struct {
	cfg  config.DinoConfig
	rng  *rand.Rand
	seed int64

	runner      Runner
	obstacles   []Obstacle
	decorations []Decoration
	spawner     *Spawner

	score      int
	speed      float64
	terminated bool
}

// NewEngine creates an engine and resets it with the given seed.
// The configuration is assumed valid (see config.DinoConfig.Validate).
func NewEngine(cfg config.DinoConfig, seed int64) *Engine {
	e := &Engine{
		cfg:         cfg,
		obstacles:   make([]Obstacle, 0, 8),
		decorations: make([]Decoration, 0, 4),
	}
	e.Reset(seed)
	return e
}

// Reset starts a new episode. The RNG is reseeded so the whole obstacle and
// decoration sequence is reproducible for a fixed action sequence.
func (e *Engine) Reset(seed int64) {
	e.seed = seed
	e.rng = rand.New(rand.NewSource(seed))
	e.runner = NewRunner(e.cfg)
	e.obstacles = e.obstacles[:0]
	e.decorations = e.decorations[:0]
	e.spawner = NewSpawner(&e.cfg, e.rng)
	e.score = 0
	e.speed = e.cfg.Physics.BaseSpeed
	e.terminated = false
}

// Update advances the simulation by one tick. It is a no-op once the episode
// has terminated. Invalid actions are rejected with ErrInvalidAction before
// any state is touched.
func (e *Engine) Update(a Action) error {
	if !a.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidAction, int(a))
	}
	if e.terminated {
		return nil
	}

	// Ducking is momentary: anything but Duck stands the runner up
	switch a {
	case ActionJump:
		e.runner.Jump()
	case ActionDuck:
		e.runner.Crouch()
	default:
		e.runner.Stand()
	}
	e.runner.Advance()

	e.advanceEntities()

	if o, ok := e.spawner.TickObstacles(e.speed); ok {
		e.obstacles = append(e.obstacles, o)
	}
	if d, ok := e.spawner.TickDecorations(); ok {
		e.decorations = append(e.decorations, d)
	}

	if firstCollision(e.runner.Box(), e.obstacles) >= 0 {
		e.terminated = true
		return nil
	}

	e.score++
	if e.speed < e.cfg.Physics.MaxSpeed {
		e.speed = min(e.speed+e.cfg.Physics.SpeedIncrement, e.cfg.Physics.MaxSpeed)
		for i := range e.obstacles {
			e.obstacles[i].Speed = e.speed
		}
	}
	return nil
}

// advanceEntities moves obstacles and decorations and drops those that
// left the playfield.
func (e *Engine) advanceEntities() {
	kept := e.obstacles[:0]
	for _, o := range e.obstacles {
		o.advance()
		if !offScreen(o.Box()) {
			kept = append(kept, o)
		}
	}
	e.obstacles = kept

	keptDeco := e.decorations[:0]
	for _, d := range e.decorations {
		d.advance()
		if !offScreen(d.Box()) {
			keptDeco = append(keptDeco, d)
		}
	}
	e.decorations = keptDeco
}

// PlaceObstacle inserts an obstacle directly, bypassing the spawner.
// Used for scripted scenarios and tests.
func (e *Engine) PlaceObstacle(o Obstacle) {
	e.obstacles = append(e.obstacles, o)
}

// ObstaclesPassed returns how many active obstacles are fully behind the runner.
func (e *Engine) ObstaclesPassed() int {
	n := 0
	for _, o := range e.obstacles {
		if o.Right() < e.runner.X {
			n++
		}
	}
	return n
}

// UpcomingObstacles returns up to n obstacles ahead of the runner, nearest first.
func (e *Engine) UpcomingObstacles(n int) []Obstacle {
	if n <= 0 {
		return nil
	}
	upcoming := make([]Obstacle, 0, len(e.obstacles))
	for _, o := range e.obstacles {
		if o.X > e.runner.X {
			upcoming = append(upcoming, o)
		}
	}
	slices.SortStableFunc(upcoming, func(a, b Obstacle) int {
		return cmp.Compare(a.X, b.X)
	})
	if len(upcoming) > n {
		upcoming = upcoming[:n]
	}
	return upcoming
}

// Terminated reports whether the episode has ended in a collision.
func (e *Engine) Terminated() bool {
	return e.terminated
}

// Score returns the number of ticks survived in this episode.
func (e *Engine) Score() int {
	return e.score
}

// Speed returns the current horizontal game speed.
func (e *Engine) Speed() float64 {
	return e.speed
}

// Seed returns the seed of the current episode.
func (e *Engine) Seed() int64 {
	return e.seed
}

// Runner returns a copy of the runner.
func (e *Engine) Runner() Runner {
	return e.runner
}

// Obstacles returns a copy of the active obstacles.
func (e *Engine) Obstacles() []Obstacle {
	return slices.Clone(e.obstacles)
}

// Decorations returns a copy of the active decorations.
func (e *Engine) Decorations() []Decoration {
	return slices.Clone(e.decorations)
}

// Config returns the physics configuration the engine was built with.
func (e *Engine) Config() config.DinoConfig {
	return e.cfg
}
