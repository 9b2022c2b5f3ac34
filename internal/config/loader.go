package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDino loads the runner physics configuration.
// Search order: customPath -> ~/.dinogym/configs/dino.yaml -> ./configs/dino.yaml -> embedded default
func LoadDino(customPath string) (DinoConfig, error) {
	cfg, err := load(customPath, "dino.yaml", defaultDinoYAML, DefaultDinoConfig, DinoConfig.Validate)
	if err != nil {
		return DinoConfig{}, err
	}
	return cfg, nil
}

// LoadEnv loads the environment configuration.
// Search order: customPath -> ~/.dinogym/configs/env.yaml -> ./configs/env.yaml -> embedded default
func LoadEnv(customPath string) (EnvConfig, error) {
	cfg, err := load(customPath, "env.yaml", defaultEnvYAML, DefaultEnvConfig, EnvConfig.Validate)
	if err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// load implements the shared search order. A custom path must parse and
// validate; discovered files that fail are skipped.
func load[T any](customPath, filename string, embedded []byte, fallback func() T, validate func(T) error) (T, error) {
	// Try custom path first
	if customPath != "" {
		cfg := fallback()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := validate(cfg); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{filepath.Join("configs", filename)}
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := fallback()
		if err := yaml.Unmarshal(data, &cfg); err == nil && validate(cfg) == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := fallback()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil || validate(cfg) != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dinogym", "configs", filename)
}
