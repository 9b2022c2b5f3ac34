package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-gym/internal/platform/tui"
	"github.com/vovakirdan/dino-gym/internal/registry"
	"github.com/vovakirdan/dino-gym/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play the runner",
	Long: `Start playing in the current terminal. The game defaults to "dino".

Controls:
  Space/Up/W  - Jump
  Down/S      - Duck
  P           - Pause
  R           - Restart (after game over)
  B/Esc       - Back (when paused or after game over)
  Ctrl+S      - Save screenshot
  Q/Ctrl+C    - Quit

Examples:
  dinogym play
  dinogym play --seed 42
  dinogym play --config ./my-dino.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "dino"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'dinogym list' to see available games)", gameID)
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	// Continue without storage - game still works
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.Run(game, store, runtimeConfig(), playerName())
}

// playerName returns the local login name, used to label saved scores.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}
