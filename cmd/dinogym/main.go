// dinogym runs the Chrome Dino runner in the terminal, both as a game for
// humans and as a deterministic environment for agents.
//
// Usage:
//
//	dinogym list                 - List games and environment variants
//	dinogym play                 - Play the runner
//	dinogym menu                 - Interactive menu (play, watch, scores)
//	dinogym demo                 - Watch an agent play
//	dinogym benchmark            - Run a parallel ensemble of agent episodes
//	dinogym scores               - Show high scores and benchmark results
//	dinogym serve                - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible runs
//	--db <path>          - Set database path (default: ~/.dinogym/scores.db)
//	--config <path>      - Physics config YAML
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dino-gym/internal/config"
	"github.com/vovakirdan/dino-gym/internal/core"
	// Importing env registers the environment variants
	"github.com/vovakirdan/dino-gym/internal/env"
	"github.com/vovakirdan/dino-gym/internal/games/dino"
	"github.com/vovakirdan/dino-gym/internal/registry"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dinogym",
	Short: "Dino Gym - the Chrome Dino runner for humans and agents",
	Long: `Dino Gym simulates the Chrome Dino side-scroller. Play it in your
terminal, watch agents play it, or benchmark them across many seeds.

Available commands:
  list       - Show games and environment variants
  play       - Play the runner
  menu       - Interactive menu
  demo       - Watch an agent play
  benchmark  - Run many agent episodes in parallel
  scores     - View high scores and benchmark results
  serve      - Start SSH server for remote play

Examples:
  dinogym play
  dinogym demo --policy heuristic --episodes 3
  dinogym benchmark --env ChromeDino-Hard-v0 --episodes 100 --plot
  dinogym serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "dinogym",
			Level:           level,
		})
		dino.SetConfigPath(flagConfig)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random for play, 0.. for agents)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dinogym/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom physics config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(benchmarkCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// runtimeConfig sizes the screen to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// resolveEnvID maps a --preset value onto its registered variant. An empty
// preset keeps envID.
func resolveEnvID(envID, preset string) (string, error) {
	if preset == "" {
		return envID, nil
	}
	p, err := config.ParsePreset(preset)
	if err != nil {
		return "", err
	}
	return config.EnvPreset(p).ID, nil
}

// loadEnvConfigs resolves an environment variant plus the physics it runs on.
// A non-empty envConfigPath overrides the registered variant.
func loadEnvConfigs(envID, envConfigPath string) (config.EnvConfig, config.DinoConfig, error) {
	dinoCfg, err := config.LoadDino(flagConfig)
	if err != nil {
		return config.EnvConfig{}, config.DinoConfig{}, err
	}

	var envCfg config.EnvConfig
	if envConfigPath != "" {
		envCfg, err = config.LoadEnv(envConfigPath)
	} else {
		envCfg, err = registry.LookupEnv(envID)
	}
	if err != nil {
		return config.EnvConfig{}, config.DinoConfig{}, err
	}
	return envCfg, dinoCfg, nil
}

// newEnv builds an environment for envID using the global physics config.
func newEnv(envID, envConfigPath string) (*env.Env, config.DinoConfig, error) {
	envCfg, dinoCfg, err := loadEnvConfigs(envID, envConfigPath)
	if err != nil {
		return nil, config.DinoConfig{}, err
	}
	e, err := env.New(envCfg, dinoCfg, logger)
	if err != nil {
		return nil, config.DinoConfig{}, err
	}
	return e, dinoCfg, nil
}
