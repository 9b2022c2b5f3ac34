package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-gym/internal/env"
	"github.com/vovakirdan/dino-gym/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List games and environment variants",
	Long:  `Shows the registered games and the environment variants agents can run in.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	fmt.Println("Games:")
	fmt.Println()
	if len(games) == 0 {
		fmt.Println("  none")
	}

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Environments:")
	fmt.Println()

	envs := registry.Envs()
	maxIDLen = 2
	for _, e := range envs {
		maxIDLen = max(maxIDLen, len(e.ID))
	}
	fmt.Printf("  %-*s  %10s  %8s  %8s  %9s  %9s\n", maxIDLen, "ID", "Max steps", "Step", "Obstacle", "Collision", "Threshold")
	for _, e := range envs {
		fmt.Printf("  %-*s  %10d  %8.2f  %8.1f  %9.1f  %9.0f\n",
			maxIDLen, e.ID, e.MaxEpisodeSteps,
			e.Rewards.StepReward, e.Rewards.ObstacleReward, e.Rewards.CollisionPenalty,
			e.RewardThreshold)
	}

	fmt.Println()
	fmt.Printf("Policies: %v\n", env.PolicyNames())
	fmt.Println()
	fmt.Println("Run 'dinogym play' to play, or 'dinogym demo --env <id>' to watch an agent.")
}
