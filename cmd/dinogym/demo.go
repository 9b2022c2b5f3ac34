package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-gym/internal/env"
	"github.com/vovakirdan/dino-gym/internal/platform/tui"
)

var (
	flagDemoEnv       string
	flagDemoEnvConfig string
	flagDemoPreset    string
	flagDemoPolicy    string
	flagDemoEpisodes  int
	flagDemoHeadless  bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Watch an agent play",
	Long: `Run a policy in an environment variant and show it playing.
Episode i is seeded with --seed + i, so runs are reproducible.

With --headless nothing is drawn; each episode is run as fast as possible
and summarized on stdout.

Controls (interactive):
  P         - Pause
  B/Esc     - Stop watching
  Q/Ctrl+C  - Quit

Examples:
  dinogym demo
  dinogym demo --policy random --episodes 5
  dinogym demo --preset hard
  dinogym demo --env ChromeDino-Easy-v0 --headless --seed 100`,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().StringVar(&flagDemoEnv, "env", "ChromeDino-v0", "Environment variant")
	demoCmd.Flags().StringVar(&flagDemoPreset, "preset", "", "Variant by preset: easy, normal, hard (overrides --env)")
	demoCmd.Flags().StringVar(&flagDemoEnvConfig, "env-config", "", "Path to a custom environment config YAML")
	demoCmd.Flags().StringVar(&flagDemoPolicy, "policy", env.PolicyHeuristic, "Policy: random or heuristic")
	demoCmd.Flags().IntVar(&flagDemoEpisodes, "episodes", 3, "Number of episodes (0 = until quit, interactive only)")
	demoCmd.Flags().BoolVar(&flagDemoHeadless, "headless", false, "Run without the TUI and print summaries")
}

func runDemo(cmd *cobra.Command, _ []string) error {
	envID, err := resolveEnvID(flagDemoEnv, flagDemoPreset)
	if err != nil {
		return err
	}
	e, dinoCfg, err := newEnv(envID, flagDemoEnvConfig)
	if err != nil {
		return err
	}
	policy, err := env.NewPolicy(flagDemoPolicy, dinoCfg)
	if err != nil {
		return err
	}

	if flagDemoHeadless {
		return runHeadless(cmd.Context(), e, policy)
	}

	results, err := tui.RunWatch(tui.WatchConfig{
		Env:      e,
		Policy:   policy,
		Episodes: flagDemoEpisodes,
		Seed:     flagSeed,
		Runtime:  runtimeConfig(),
	})
	if err != nil {
		return err
	}
	printEpisodes(e.Config().ID, policy.Name(), results)
	return nil
}

func runHeadless(ctx context.Context, e *env.Env, policy env.Policy) error {
	if flagDemoEpisodes <= 0 {
		return fmt.Errorf("--headless needs a positive --episodes, got %d", flagDemoEpisodes)
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	results := make([]env.EpisodeResult, 0, flagDemoEpisodes)
	for i := 0; i < flagDemoEpisodes; i++ {
		res, err := env.RunEpisode(ctx, e, policy, flagSeed+int64(i))
		if err != nil {
			return err
		}
		results = append(results, res)
	}
	printEpisodes(e.Config().ID, policy.Name(), results)
	return nil
}

func printEpisodes(envID, policy string, results []env.EpisodeResult) {
	if len(results) == 0 {
		return
	}

	fmt.Printf("%s / %s\n", envID, policy)
	fmt.Println()
	fmt.Printf("  %-4s  %-20s  %7s  %6s  %9s  %7s  %s\n", "#", "Seed", "Steps", "Score", "Reward", "Passed", "End")
	fmt.Printf("  %-4s  %-20s  %7s  %6s  %9s  %7s  %s\n", "-", "----", "-----", "-----", "------", "------", "---")
	for i, r := range results {
		end := "collision"
		if r.Truncated {
			end = "truncated"
		}
		fmt.Printf("  %-4d  %-20d  %7d  %6d  %9.1f  %7d  %s\n",
			i+1, r.Seed, r.Steps, r.Score, r.TotalReward, r.ObstaclesPassed, end)
	}

	stats := env.Summarize(results, 0)
	fmt.Println()
	fmt.Printf("Average reward: %.1f   Best score: %d\n", stats.AvgReward, stats.MaxScore)
}
