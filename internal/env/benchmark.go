package env

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/dino-gym/internal/config"
)

// EpisodeResult summarizes one finished episode.
type EpisodeResult struct {
	Seed            int64
	Steps           int
	Score           int
	TotalReward     float64
	ObstaclesPassed int // cumulative over the episode
	Terminated      bool
	Truncated       bool
}

// RunEpisode plays one episode of p on e, seeded with seed.
func RunEpisode(ctx context.Context, e *Env, p Policy, seed int64) (EpisodeResult, error) {
	obs, _ := e.Reset(seed)
	p.Reset(seed)

	res := EpisodeResult{Seed: seed}
	lastPassed := 0
	for {
		if e.Steps()%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}

		step, err := e.Step(p.Act(obs))
		if err != nil {
			return res, err
		}
		obs = step.Obs
		res.TotalReward += step.Reward
		res.Steps = step.Info.StepCount
		res.Score = step.Info.Score
		// Info counts passed obstacles still on screen; accumulate the increases
		res.ObstaclesPassed += max(0, step.Info.ObstaclesPassed-lastPassed)
		lastPassed = step.Info.ObstaclesPassed
		if step.Done() {
			res.Terminated = step.Terminated
			res.Truncated = step.Truncated
			return res, nil
		}
	}
}

// BenchmarkConfig describes an ensemble of episodes.
type BenchmarkConfig struct {
	Env       config.EnvConfig
	Dino      config.DinoConfig
	Policy    string
	Episodes  int
	SeedStart int64
	Workers   int // 0 = GOMAXPROCS
	Logger    *log.Logger
}

// BenchmarkStats aggregates episode results.
type BenchmarkStats struct {
	Episodes     int
	AvgSteps     float64
	MaxSteps     int
	AvgReward    float64
	MaxReward    float64
	AvgScore     float64
	MaxScore     int
	Truncated    int
	SolvedReward float64 // the variant's reward threshold
	Solved       int     // episodes reaching SolvedReward
	Elapsed      time.Duration
}

// BenchmarkReport holds per-episode results in seed order plus their stats.
type BenchmarkReport struct {
	Results []EpisodeResult
	Stats   BenchmarkStats
}

// Benchmark runs cfg.Episodes episodes in parallel, episode i seeded with
// SeedStart+i. Each worker owns its own Env and Policy, so results are
// independent of scheduling.
func Benchmark(ctx context.Context, cfg BenchmarkConfig) (BenchmarkReport, error) {
	if cfg.Episodes <= 0 {
		return BenchmarkReport{}, fmt.Errorf("env: episodes must be positive, got %d", cfg.Episodes)
	}
	if _, err := NewPolicy(cfg.Policy, cfg.Dino); err != nil {
		return BenchmarkReport{}, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	start := time.Now()
	results := make([]EpisodeResult, cfg.Episodes)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < cfg.Episodes; i++ {
		i := i // per-iteration copy; go directive is 1.21 (pre-1.22 loop semantics)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			e, err := New(cfg.Env, cfg.Dino, logger)
			if err != nil {
				return err
			}
			p, err := NewPolicy(cfg.Policy, cfg.Dino)
			if err != nil {
				return err
			}

			seed := cfg.SeedStart + int64(i)
			res, err := RunEpisode(ctx, e, p, seed)
			if err != nil {
				return fmt.Errorf("env: episode %d (seed %d): %w", i, seed, err)
			}
			results[i] = res
			logger.Debug("episode done", "episode", i, "seed", seed, "score", res.Score, "reward", res.TotalReward)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return BenchmarkReport{}, err
	}

	stats := Summarize(results, cfg.Env.RewardThreshold)
	stats.Elapsed = time.Since(start)
	logger.Info("benchmark complete",
		"env", cfg.Env.ID,
		"policy", cfg.Policy,
		"episodes", stats.Episodes,
		"avg_reward", stats.AvgReward,
		"max_score", stats.MaxScore,
		"elapsed", stats.Elapsed,
	)
	return BenchmarkReport{Results: results, Stats: stats}, nil
}

// Summarize computes aggregate statistics. An episode counts as solved when
// its total reward reaches threshold.
func Summarize(results []EpisodeResult, threshold float64) BenchmarkStats {
	stats := BenchmarkStats{Episodes: len(results), SolvedReward: threshold}
	if len(results) == 0 {
		return stats
	}

	stats.MaxReward = results[0].TotalReward
	var steps, score int
	var reward float64
	for _, r := range results {
		steps += r.Steps
		score += r.Score
		reward += r.TotalReward
		stats.MaxSteps = max(stats.MaxSteps, r.Steps)
		stats.MaxScore = max(stats.MaxScore, r.Score)
		stats.MaxReward = max(stats.MaxReward, r.TotalReward)
		if r.Truncated {
			stats.Truncated++
		}
		if r.TotalReward >= threshold {
			stats.Solved++
		}
	}

	n := float64(len(results))
	stats.AvgSteps = float64(steps) / n
	stats.AvgScore = float64(score) / n
	stats.AvgReward = reward / n
	return stats
}
