package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned (wrapped) when a configuration violates the
// construction-time contract of the simulation.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the physics configuration. All problems are reported at once.
func (c DinoConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.Physics.Gravity > 0, "physics.gravity must be positive, got %v", c.Physics.Gravity)
	check(c.Physics.JumpVelocity < 0, "physics.jump_velocity must be negative (upward), got %v", c.Physics.JumpVelocity)
	check(c.Physics.BaseSpeed > 0, "physics.base_speed must be positive, got %v", c.Physics.BaseSpeed)
	check(c.Physics.MaxSpeed >= c.Physics.BaseSpeed, "physics.max_speed %v below base_speed %v", c.Physics.MaxSpeed, c.Physics.BaseSpeed)
	check(c.Physics.SpeedIncrement >= 0, "physics.speed_increment must not be negative, got %v", c.Physics.SpeedIncrement)

	check(c.Playfield.Width > 0 && c.Playfield.Height > 0, "playfield dimensions must be positive, got %vx%v", c.Playfield.Width, c.Playfield.Height)
	check(c.Playfield.GroundY > 0 && c.GroundLine() <= c.Playfield.Height, "playfield.ground_y %v puts the ground line outside the playfield", c.Playfield.GroundY)

	check(c.Runner.Width > 0 && c.Runner.Height > 0, "runner dimensions must be positive")
	check(c.Runner.DuckWidth > 0 && c.Runner.DuckHeight > 0, "runner duck dimensions must be positive")
	check(c.Runner.X >= 0 && c.Runner.X < c.Playfield.Width, "runner.x %v outside the playfield", c.Runner.X)

	check(c.Obstacles.MinGap > 0 && c.Obstacles.MinGap <= c.Obstacles.MaxGap, "obstacles gap range [%d, %d] is invalid", c.Obstacles.MinGap, c.Obstacles.MaxGap)
	check(len(c.Obstacles.CactusVariants) > 0, "obstacles.cactus_variants must not be empty")
	for i, v := range c.Obstacles.CactusVariants {
		check(v.W > 0 && v.H > 0, "obstacles.cactus_variants[%d] must have positive size", i)
	}
	check(len(c.Obstacles.BirdFlightHeights) > 0, "obstacles.bird_flight_heights must not be empty")
	check(c.Obstacles.BirdWidth > 0 && c.Obstacles.BirdHeight > 0, "obstacles bird dimensions must be positive")

	check(c.Decorations.MinSpawnRate > 0 && c.Decorations.MinSpawnRate <= c.Decorations.MaxSpawnRate,
		"decorations spawn rate range [%d, %d] is invalid", c.Decorations.MinSpawnRate, c.Decorations.MaxSpawnRate)
	check(c.Decorations.MinY <= c.Decorations.MaxY, "decorations y range [%d, %d] is invalid", c.Decorations.MinY, c.Decorations.MaxY)
	check(c.Decorations.Width > 0 && c.Decorations.Height > 0, "decorations dimensions must be positive")

	check(c.Observation.VelocityScale > 0 && c.Observation.SizeScale > 0, "observation scales must be positive")

	return errors.Join(errs...)
}

// Validate checks the environment configuration.
func (c EnvConfig) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("%w: id must not be empty", ErrInvalidConfig)
	}
	if c.MaxEpisodeSteps < 0 {
		return fmt.Errorf("%w: max_episode_steps must not be negative, got %d", ErrInvalidConfig, c.MaxEpisodeSteps)
	}
	return nil
}
