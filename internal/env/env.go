// Package env wraps the dino engine in an episodic control loop for agents:
// Reset starts an episode, Step applies one action and reports the reward,
// the next observation and whether the episode ended.
package env

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-gym/internal/config"
	"github.com/vovakirdan/dino-gym/internal/games/dino"
	"github.com/vovakirdan/dino-gym/internal/registry"
)

var (
	// ErrInvalidAction is returned by Step for actions outside the action space.
	ErrInvalidAction = dino.ErrInvalidAction
	// ErrNotReset is returned by Step before the first Reset.
	ErrNotReset = errors.New("env: step before reset")
)

// NumActions is the size of the discrete action space {Idle, Jump, Duck}.
const NumActions = dino.NumActions

// ObservationSize is the length of an observation vector.
const ObservationSize = dino.FeatureCount

// Observation is the feature vector handed to agents.
type Observation [ObservationSize]float32

// GameOverCollision is the Info.GameOverReason of a terminated episode.
const GameOverCollision = "collision"

// Info carries episode bookkeeping alongside each observation.
type Info struct {
	Score           int
	Speed           float64
	ObstaclesPassed int
	StepCount       int
	GameOverReason  string // empty while running
}

// StepResult is the outcome of a single Step.
type StepResult struct {
	Obs        Observation
	Reward     float64
	Terminated bool // collision
	Truncated  bool // step limit reached
	Info       Info
}

// Done reports whether the episode is over for either reason.
func (r StepResult) Done() bool {
	return r.Terminated || r.Truncated
}

// Env is a single-agent environment. It is not safe for concurrent use;
// run one Env per goroutine.
type Env struct {
	cfg    config.EnvConfig
	engine *dino.Engine
	logger *log.Logger

	steps      int
	lastPassed int
	ready      bool
}

// New creates an environment. A nil logger discards output.
func New(cfg config.EnvConfig, dinoCfg config.DinoConfig, logger *log.Logger) (*Env, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("env: %w", err)
	}
	if err := dinoCfg.Validate(); err != nil {
		return nil, fmt.Errorf("env: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Env{
		cfg:    cfg,
		engine: dino.NewEngine(dinoCfg, 0),
		logger: logger.With("env", cfg.ID),
	}, nil
}

// Make creates a registered environment variant with the default physics.
func Make(id string, logger *log.Logger) (*Env, error) {
	cfg, err := registry.LookupEnv(id)
	if err != nil {
		return nil, fmt.Errorf("env: %w", err)
	}
	return New(cfg, config.DefaultDinoConfig(), logger)
}

// Reset starts a new episode seeded with seed.
func (e *Env) Reset(seed int64) (Observation, Info) {
	e.engine.Reset(seed)
	e.steps = 0
	e.lastPassed = 0
	e.ready = true

	e.logger.Debug("episode started", "seed", seed)
	return e.observe(), e.info()
}

// Step applies action and advances the episode by one tick. Out-of-range
// actions are rejected before the engine is touched.
func (e *Env) Step(action int) (StepResult, error) {
	a := dino.Action(action)
	if !a.Valid() {
		return StepResult{}, fmt.Errorf("%w: %d", ErrInvalidAction, action)
	}
	if !e.ready {
		return StepResult{}, ErrNotReset
	}

	prevPassed := e.engine.ObstaclesPassed()
	if err := e.engine.Update(a); err != nil {
		return StepResult{}, fmt.Errorf("env: %w", err)
	}
	e.steps++

	res := StepResult{
		Obs:        e.observe(),
		Terminated: e.engine.Terminated(),
		Truncated:  e.cfg.MaxEpisodeSteps > 0 && e.steps >= e.cfg.MaxEpisodeSteps,
	}
	res.Reward = e.reward(res.Terminated, prevPassed)
	e.lastPassed = e.engine.ObstaclesPassed()
	res.Info = e.info()

	if res.Done() {
		e.logger.Debug("episode finished",
			"seed", e.engine.Seed(),
			"score", res.Info.Score,
			"steps", e.steps,
			"terminated", res.Terminated,
			"truncated", res.Truncated,
		)
	}
	return res, nil
}

// reward shapes one tick: a penalty on collision, otherwise a survival
// reward plus a bonus for each obstacle that moved behind the runner.
func (e *Env) reward(terminated bool, prevPassed int) float64 {
	r := e.cfg.Rewards
	if terminated {
		return r.CollisionPenalty
	}
	reward := r.StepReward
	if passed := e.engine.ObstaclesPassed() - prevPassed; passed > 0 {
		reward += r.ObstacleReward * float64(passed)
	}
	return reward
}

func (e *Env) observe() Observation {
	snap := e.engine.Snapshot()
	var obs Observation
	for i, v := range snap.Vector {
		obs[i] = float32(v)
	}
	return obs
}

func (e *Env) info() Info {
	info := Info{
		Score:           e.engine.Score(),
		Speed:           e.engine.Speed(),
		ObstaclesPassed: e.lastPassed,
		StepCount:       e.steps,
	}
	if e.engine.Terminated() {
		info.GameOverReason = GameOverCollision
	}
	return info
}

// Config returns the environment configuration.
func (e *Env) Config() config.EnvConfig {
	return e.cfg
}

// Engine exposes the underlying simulation for rendering.
func (e *Env) Engine() *dino.Engine {
	return e.engine
}

// Steps returns the number of steps taken in the current episode.
func (e *Env) Steps() int {
	return e.steps
}

func init() {
	for _, p := range []config.Preset{config.PresetNormal, config.PresetEasy, config.PresetHard} {
		registry.RegisterEnv(config.EnvPreset(p))
	}
}
