package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-gym/internal/env"
	"github.com/vovakirdan/dino-gym/internal/storage"
)

var (
	flagBenchEnv       string
	flagBenchEnvConfig string
	flagBenchPreset    string
	flagBenchPolicy    string
	flagBenchEpisodes  int
	flagBenchWorkers   int
	flagBenchPlot      bool
	flagBenchSave      bool
)

var benchmarkCmd = &cobra.Command{
	Use:   "benchmark",
	Short: "Run many agent episodes in parallel",
	Long: `Run an ensemble of episodes with one policy and report aggregate
statistics. Episode i is seeded with --seed + i; results do not depend on
--workers.

Examples:
  dinogym benchmark --episodes 100
  dinogym benchmark --policy random --workers 4 --plot
  dinogym benchmark --env ChromeDino-Hard-v0 --episodes 500 --save`,
	RunE: runBenchmark,
}

func init() {
	benchmarkCmd.Flags().StringVar(&flagBenchEnv, "env", "ChromeDino-v0", "Environment variant")
	benchmarkCmd.Flags().StringVar(&flagBenchPreset, "preset", "", "Variant by preset: easy, normal, hard (overrides --env)")
	benchmarkCmd.Flags().StringVar(&flagBenchEnvConfig, "env-config", "", "Path to a custom environment config YAML")
	benchmarkCmd.Flags().StringVar(&flagBenchPolicy, "policy", env.PolicyHeuristic, "Policy: random or heuristic")
	benchmarkCmd.Flags().IntVar(&flagBenchEpisodes, "episodes", 100, "Number of episodes")
	benchmarkCmd.Flags().IntVar(&flagBenchWorkers, "workers", 0, "Parallel workers (0 = GOMAXPROCS)")
	benchmarkCmd.Flags().BoolVar(&flagBenchPlot, "plot", false, "Plot the reward of every episode")
	benchmarkCmd.Flags().BoolVar(&flagBenchSave, "save", false, "Store episode results in the scores database")
}

func runBenchmark(cmd *cobra.Command, _ []string) error {
	envID, err := resolveEnvID(flagBenchEnv, flagBenchPreset)
	if err != nil {
		return err
	}
	envCfg, dinoCfg, err := loadEnvConfigs(envID, flagBenchEnvConfig)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	report, err := env.Benchmark(ctx, env.BenchmarkConfig{
		Env:       envCfg,
		Dino:      dinoCfg,
		Policy:    flagBenchPolicy,
		Episodes:  flagBenchEpisodes,
		SeedStart: flagSeed,
		Workers:   flagBenchWorkers,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	printStats(envCfg.ID, flagBenchPolicy, report.Stats)

	if flagBenchPlot {
		rewards := make([]float64, len(report.Results))
		for i, r := range report.Results {
			rewards[i] = r.TotalReward
		}
		fmt.Println()
		fmt.Println(asciigraph.Plot(rewards,
			asciigraph.Height(12),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("episode reward (%s, %s)", envCfg.ID, flagBenchPolicy)),
		))
	}

	if flagBenchSave {
		return saveReport(envCfg.ID, flagBenchPolicy, report.Results)
	}
	return nil
}

func printStats(envID, policy string, s env.BenchmarkStats) {
	fmt.Printf("Benchmark - %s / %s\n", envID, policy)
	fmt.Println()
	fmt.Printf("  Episodes:     %d (%d truncated)\n", s.Episodes, s.Truncated)
	fmt.Printf("  Steps:        avg %.1f, max %d\n", s.AvgSteps, s.MaxSteps)
	fmt.Printf("  Reward:       avg %.2f, max %.2f\n", s.AvgReward, s.MaxReward)
	fmt.Printf("  Score:        avg %.1f, max %d\n", s.AvgScore, s.MaxScore)
	fmt.Printf("  Solved:       %d/%d (reward >= %.0f)\n", s.Solved, s.Episodes, s.SolvedReward)
	fmt.Printf("  Elapsed:      %s\n", s.Elapsed.Round(time.Millisecond))
}

func saveReport(envID, policy string, results []env.EpisodeResult) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	records := make([]storage.EpisodeRecord, len(results))
	for i, r := range results {
		records[i] = storage.EpisodeRecord{
			EnvID:           envID,
			Policy:          policy,
			Seed:            r.Seed,
			Steps:           r.Steps,
			Score:           r.Score,
			TotalReward:     r.TotalReward,
			ObstaclesPassed: r.ObstaclesPassed,
			Terminated:      r.Terminated,
			Truncated:       r.Truncated,
		}
	}
	if err := store.SaveEpisodes(records); err != nil {
		return err
	}
	logger.Info("saved episodes", "count", len(records), "db", flagDBPath)
	return nil
}
