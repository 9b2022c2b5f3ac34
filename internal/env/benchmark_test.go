package env

import (
	"context"
	"errors"
	"testing"

	"github.com/vovakirdan/dino-gym/internal/config"
)

func shortEnv() config.EnvConfig {
	cfg := config.DefaultEnvConfig()
	cfg.MaxEpisodeSteps = 300
	return cfg
}

func TestBenchmarkMatchesSequentialRuns(t *testing.T) {
	cfg := BenchmarkConfig{
		Env:       shortEnv(),
		Dino:      config.DefaultDinoConfig(),
		Policy:    PolicyRandom,
		Episodes:  6,
		SeedStart: 100,
		Workers:   3,
	}

	report, err := Benchmark(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Benchmark() failed: %v", err)
	}
	if len(report.Results) != cfg.Episodes {
		t.Fatalf("expected %d results, got %d", cfg.Episodes, len(report.Results))
	}

	for i, got := range report.Results {
		e := newTestEnv(t, cfg.Env, cfg.Dino)
		p, _ := NewPolicy(cfg.Policy, cfg.Dino)
		want, err := RunEpisode(context.Background(), e, p, cfg.SeedStart+int64(i))
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("episode %d: parallel %+v, sequential %+v", i, got, want)
		}
		if got.Steps > 300 {
			t.Errorf("episode %d ran past the step limit: %d", i, got.Steps)
		}
	}

	if report.Stats.Episodes != cfg.Episodes {
		t.Errorf("Stats.Episodes = %d", report.Stats.Episodes)
	}
}

func TestBenchmarkErrors(t *testing.T) {
	base := BenchmarkConfig{
		Env:      shortEnv(),
		Dino:     config.DefaultDinoConfig(),
		Policy:   PolicyHeuristic,
		Episodes: 4,
	}

	noEpisodes := base
	noEpisodes.Episodes = 0
	if _, err := Benchmark(context.Background(), noEpisodes); err == nil {
		t.Error("expected error for zero episodes")
	}

	badPolicy := base
	badPolicy.Policy = "oracle"
	if _, err := Benchmark(context.Background(), badPolicy); err == nil {
		t.Error("expected error for unknown policy")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Benchmark(ctx, base); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestSummarize(t *testing.T) {
	results := []EpisodeResult{
		{Steps: 100, Score: 99, TotalReward: -90, Terminated: true},
		{Steps: 300, Score: 300, TotalReward: 1200, Truncated: true},
		{Steps: 200, Score: 199, TotalReward: 30, Terminated: true},
	}

	s := Summarize(results, 1000)
	if s.Episodes != 3 || s.MaxSteps != 300 || s.MaxScore != 300 {
		t.Errorf("unexpected maxima: %+v", s)
	}
	if s.AvgSteps != 200 {
		t.Errorf("AvgSteps = %v, expected 200", s.AvgSteps)
	}
	if s.AvgReward != 380 || s.MaxReward != 1200 {
		t.Errorf("rewards: avg=%v max=%v", s.AvgReward, s.MaxReward)
	}
	if s.Truncated != 1 || s.Solved != 1 {
		t.Errorf("truncated=%d solved=%d", s.Truncated, s.Solved)
	}

	// All-negative rewards keep the true maximum
	neg := Summarize([]EpisodeResult{{TotalReward: -100}, {TotalReward: -50}}, 0)
	if neg.MaxReward != -50 {
		t.Errorf("MaxReward = %v, expected -50", neg.MaxReward)
	}

	if empty := Summarize(nil, 10); empty.Episodes != 0 || empty.AvgReward != 0 {
		t.Errorf("empty summary = %+v", empty)
	}
}
