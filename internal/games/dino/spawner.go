package dino

import (
	"math/rand"

	"github.com/vovakirdan/dino-gym/internal/config"
)

// Spawner decides when to create obstacles and decorations. Each stream has
// its own accumulating timer and a randomly drawn threshold.
//
// The obstacle timer accumulates the current game speed, so obstacle density
// in time grows with difficulty. The decoration timer accumulates 1 per tick.
type Spawner struct {
	cfg *config.DinoConfig
	rng *rand.Rand

	obstacleTimer       float64
	obstacleThreshold   int
	decorationTimer     int
	decorationThreshold int
}

// NewSpawner creates a spawner drawing from rng. Both thresholds are drawn
// immediately, obstacle first.
func NewSpawner(cfg *config.DinoConfig, rng *rand.Rand) *Spawner {
	s := &Spawner{cfg: cfg, rng: rng}
	s.obstacleThreshold = s.randRange(cfg.Obstacles.MinGap, cfg.Obstacles.MaxGap)
	s.decorationThreshold = s.randRange(cfg.Decorations.MinSpawnRate, cfg.Decorations.MaxSpawnRate)
	return s
}

// TickObstacles advances the obstacle timer by speed and returns a new
// obstacle at the far edge when the threshold is reached.
func (s *Spawner) TickObstacles(speed float64) (Obstacle, bool) {
	s.obstacleTimer += speed
	if s.obstacleTimer < float64(s.obstacleThreshold) {
		return Obstacle{}, false
	}

	var o Obstacle
	x := s.cfg.Playfield.Width
	if s.rng.Intn(2) == 0 {
		variant := s.rng.Intn(len(s.cfg.Obstacles.CactusVariants))
		o = NewGroundObstacle(*s.cfg, variant, x, speed)
	} else {
		level := s.rng.Intn(len(s.cfg.Obstacles.BirdFlightHeights))
		o = NewAirborneObstacle(*s.cfg, level, x, speed)
	}

	s.obstacleTimer = 0
	s.obstacleThreshold = s.randRange(s.cfg.Obstacles.MinGap, s.cfg.Obstacles.MaxGap)
	return o, true
}

// TickDecorations advances the decoration timer by one tick and returns a new
// cloud at the far edge when the threshold is reached.
func (s *Spawner) TickDecorations() (Decoration, bool) {
	s.decorationTimer++
	if s.decorationTimer < s.decorationThreshold {
		return Decoration{}, false
	}

	y := s.randRange(s.cfg.Decorations.MinY, s.cfg.Decorations.MaxY)
	d := NewDecoration(*s.cfg, s.cfg.Playfield.Width, float64(y))

	s.decorationTimer = 0
	s.decorationThreshold = s.randRange(s.cfg.Decorations.MinSpawnRate, s.cfg.Decorations.MaxSpawnRate)
	return d, true
}

// randRange returns a uniform integer in [lo, hi].
func (s *Spawner) randRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}
