package env

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/dino-gym/internal/config"
	"github.com/vovakirdan/dino-gym/internal/games/dino"
)

// Policy chooses an action from an observation.
type Policy interface {
	Name() string
	// Reset prepares the policy for a new episode.
	Reset(seed int64)
	Act(obs Observation) int
}

// Policy names accepted by NewPolicy.
const (
	PolicyRandom    = "random"
	PolicyHeuristic = "heuristic"
)

// PolicyNames lists the built-in policies.
func PolicyNames() []string {
	return []string{PolicyRandom, PolicyHeuristic}
}

// NewPolicy creates a built-in policy by name.
func NewPolicy(name string, cfg config.DinoConfig) (Policy, error) {
	switch name {
	case PolicyRandom:
		return NewRandomPolicy(0), nil
	case PolicyHeuristic:
		return NewHeuristicPolicy(cfg), nil
	default:
		return nil, fmt.Errorf("env: unknown policy %q", name)
	}
}

// RandomPolicy picks actions uniformly at random.
type RandomPolicy struct {
	rng *rand.Rand
}

// NewRandomPolicy creates a random policy seeded with seed.
func NewRandomPolicy(seed int64) *RandomPolicy {
	return &RandomPolicy{rng: rand.New(rand.NewSource(seed))}
}

func (p *RandomPolicy) Name() string { return PolicyRandom }

func (p *RandomPolicy) Reset(seed int64) {
	p.rng.Seed(seed)
}

func (p *RandomPolicy) Act(Observation) int {
	return p.rng.Intn(NumActions)
}

// HeuristicPolicy reads the nearest upcoming obstacle from the observation:
// it jumps over ground obstacles and ducks under birds low enough to hit a
// standing runner. Everything else is Idle.
type HeuristicPolicy struct {
	// LeadTicks is how many ticks before contact a jump is started.
	LeadTicks float64

	cfg      config.DinoConfig
	duckHold int
}

// NewHeuristicPolicy creates a heuristic policy for the given physics.
func NewHeuristicPolicy(cfg config.DinoConfig) *HeuristicPolicy {
	return &HeuristicPolicy{LeadTicks: 5, cfg: cfg}
}

func (p *HeuristicPolicy) Name() string { return PolicyHeuristic }

func (p *HeuristicPolicy) Reset(int64) {
	p.duckHold = 0
}

func (p *HeuristicPolicy) Act(obs Observation) int {
	// Birds drop out of the observation once their left edge passes the
	// runner, so keep ducking until they are clear.
	if p.duckHold > 0 {
		p.duckHold--
		return int(dino.ActionDuck)
	}

	base := dino.RunnerFeatures
	if obs[base+2] == 0 && obs[base+3] == 0 {
		return int(dino.ActionIdle) // no upcoming obstacle
	}

	pf := p.cfg.Playfield
	scale := p.cfg.Observation.SizeScale
	speed := float64(obs[4]) * p.cfg.Physics.MaxSpeed
	dx := float64(obs[base]) * pf.Width
	y := float64(obs[base+1]) * pf.Height
	w := float64(obs[base+2]) * scale
	h := float64(obs[base+3]) * scale
	ground := obs[base+4] == 1

	if ground {
		if dx < p.cfg.Runner.Width+speed*p.LeadTicks {
			return int(dino.ActionJump)
		}
		return int(dino.ActionIdle)
	}

	// Only birds reaching below the standing runner's top are dangerous
	if y+h <= pf.GroundY {
		return int(dino.ActionIdle)
	}
	if dx < p.cfg.Runner.DuckWidth+speed*2 {
		p.duckHold = int(math.Ceil((dx+w)/speed)) + 1
		return int(dino.ActionDuck)
	}
	return int(dino.ActionIdle)
}
