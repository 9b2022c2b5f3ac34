package config

import "fmt"

// Preset represents a named environment variant.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// ParsePreset converts a CLI string into a Preset.
// An empty string selects PresetNormal.
func ParsePreset(s string) (Preset, error) {
	switch Preset(s) {
	case "", PresetNormal:
		return PresetNormal, nil
	case PresetEasy:
		return PresetEasy, nil
	case PresetHard:
		return PresetHard, nil
	default:
		return "", fmt.Errorf("unknown preset %q (want easy, normal or hard)", s)
	}
}

// EnvPreset returns the environment configuration for a preset.
func EnvPreset(preset Preset) EnvConfig {
	cfg := DefaultEnvConfig()
	ApplyEnvPreset(&cfg, preset)
	return cfg
}

// ApplyEnvPreset modifies the config based on a preset.
// Easy variants pay more for survival and punish collisions less.
func ApplyEnvPreset(cfg *EnvConfig, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.ID = "ChromeDino-Easy-v0"
		cfg.MaxEpisodeSteps = 5000
		cfg.RewardThreshold = 500
		cfg.Rewards = RewardsConfig{
			StepReward:       0.2,
			ObstacleReward:   15.0,
			CollisionPenalty: -50.0,
		}
	case PresetHard:
		cfg.ID = "ChromeDino-Hard-v0"
		cfg.MaxEpisodeSteps = 20000
		cfg.RewardThreshold = 2000
		cfg.Rewards = RewardsConfig{
			StepReward:       0.05,
			ObstacleReward:   5.0,
			CollisionPenalty: -200.0,
		}
	}
}
