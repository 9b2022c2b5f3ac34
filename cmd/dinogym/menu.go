package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-gym/internal/env"
	"github.com/vovakirdan/dino-gym/internal/platform/tui"
	"github.com/vovakirdan/dino-gym/internal/registry"
	"github.com/vovakirdan/dino-gym/internal/storage"
)

var flagMenuEnv string

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive menu",
	Long: `Start in interactive menu mode: play, watch the heuristic agent, or
browse high scores. After each screen you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  dinogym menu
  dinogym menu --fps 30
  dinogym menu --env ChromeDino-Hard-v0`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagMenuEnv, "env", "ChromeDino-v0", "Environment variant for the watch entry")
}

func runMenu(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	for {
		choice, updated, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		// Keep any size changes
		cfg = updated

		switch choice {
		case tui.ChoicePlay:
			game, err := registry.Create("dino")
			if err != nil {
				return err
			}
			cfg.Seed = time.Now().UnixNano()
			if err := tui.Run(game, store, cfg, playerName()); err != nil {
				logger.Error("game failed", "error", err)
			}

		case tui.ChoiceWatch:
			e, dinoCfg, err := newEnv(flagMenuEnv, "")
			if err != nil {
				return err
			}
			_, err = tui.RunWatch(tui.WatchConfig{
				Env:     e,
				Policy:  env.NewHeuristicPolicy(dinoCfg),
				Seed:    time.Now().UnixNano(),
				Runtime: cfg,
			})
			if err != nil {
				logger.Error("watch failed", "error", err)
			}

		case tui.ChoiceScores:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				logger.Error("scoreboard failed", "error", err)
			}
			if !goBack {
				return nil
			}

		default:
			return nil
		}
	}
}
