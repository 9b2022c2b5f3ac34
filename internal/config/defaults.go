package config

import (
	_ "embed"
)

//go:embed defaults/dino.yaml
var defaultDinoYAML []byte

//go:embed defaults/env.yaml
var defaultEnvYAML []byte

// DefaultDinoConfig returns the default runner physics configuration.
func DefaultDinoConfig() DinoConfig {
	return DinoConfig{
		Physics: DinoPhysics{
			Gravity:        0.6,
			JumpVelocity:   -12.0,
			BaseSpeed:      6.0,
			SpeedIncrement: 0.001,
			MaxSpeed:       15.0,
		},
		Playfield: DinoPlayfield{
			Width:   600,
			Height:  300,
			GroundY: 200,
		},
		Runner: DinoRunner{
			X:          50,
			Width:      44,
			Height:     47,
			DuckWidth:  59,
			DuckHeight: 26,
		},
		Obstacles: DinoObstacles{
			MinGap: 120,
			MaxGap: 200,
			CactusVariants: []Size{
				{W: 17, H: 35},
				{W: 34, H: 35},
				{W: 51, H: 35},
			},
			BirdFlightHeights: []float64{150, 100, 75},
			BirdWidth:         46,
			BirdHeight:        40,
		},
		Decorations: DinoDecorations{
			MinSpawnRate: 200,
			MaxSpawnRate: 400,
			Speed:        1.0,
			MinY:         20,
			MaxY:         100,
			Width:        46,
			Height:       14,
		},
		Observation: DinoObservation{
			VelocityScale: 20.0,
			SizeScale:     100.0,
		},
	}
}

// DefaultEnvConfig returns the default environment configuration
// (the ChromeDino-v0 variant).
func DefaultEnvConfig() EnvConfig {
	return EnvConfig{
		ID:              "ChromeDino-v0",
		MaxEpisodeSteps: 10000,
		RewardThreshold: 1000,
		Rewards: RewardsConfig{
			StepReward:       0.1,
			ObstacleReward:   10.0,
			CollisionPenalty: -100.0,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a config name.
func GetDefaultYAML(name string) []byte {
	switch name {
	case "dino":
		return defaultDinoYAML
	case "env":
		return defaultEnvYAML
	default:
		return nil
	}
}
