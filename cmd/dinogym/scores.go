package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dino-gym/internal/platform/tui"
	"github.com/vovakirdan/dino-gym/internal/storage"
)

var (
	flagScoresEpisodes bool
	flagScoresEnv      string
	flagScoresLimit    int
	flagScoresClear    bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and benchmark results",
	Long: `Display high scores of human players. With --episodes, show stored
benchmark episodes and per-policy statistics instead.

On an interactive terminal the scores open in a browsable table; when
output is piped a plain listing is printed.

Examples:
  dinogym scores
  dinogym scores --episodes
  dinogym scores --clear
  dinogym scores --episodes --env ChromeDino-Hard-v0 --clear
  dinogym scores --episodes --env ChromeDino-Hard-v0 | less`,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresEpisodes, "episodes", false, "Show benchmark episodes instead of human scores")
	scoresCmd.Flags().StringVar(&flagScoresEnv, "env", "", "Only show episodes of this environment variant")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the selected scores instead of showing them")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		return clearScores(store)
	}

	if term.IsTerminal(int(os.Stdout.Fd())) && !flagScoresEpisodes {
		cfg := runtimeConfig()
		_, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
		return err
	}

	if flagScoresEpisodes {
		return printEpisodeScores(store)
	}
	return printHighScores(store)
}

func printHighScores(store *storage.Store) error {
	scores, err := store.TopScores("dino", flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Println("High Scores - Dino Runner")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'dinogym play' to set the first high score!")
		return nil
	}

	if best, err := store.HighScore("dino"); err == nil {
		fmt.Printf("Best: %d\n", best)
		fmt.Println()
	}

	fmt.Printf("  %-4s  %-10s  %-16s  %s\n", "Rank", "Score", "Player", "Date")
	fmt.Printf("  %-4s  %-10s  %-16s  %s\n", "----", "-----", "------", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %-16s  %s\n", i+1, entry.Score, entry.Player, entry.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printEpisodeScores(store *storage.Store) error {
	stats, err := store.GetPolicyStats()
	if err != nil {
		return err
	}
	episodes, err := store.TopEpisodes(flagScoresEnv, flagScoresLimit)
	if err != nil {
		return err
	}

	if len(episodes) == 0 {
		fmt.Println("No benchmark episodes recorded yet.")
		fmt.Println()
		fmt.Println("Run 'dinogym benchmark --save' to record some.")
		return nil
	}

	fmt.Println("Policies")
	fmt.Println()
	fmt.Printf("  %-20s  %-10s  %8s  %10s  %10s  %9s  %s\n", "Env", "Policy", "Episodes", "Avg reward", "Max reward", "Max score", "Last run")
	for _, s := range stats {
		if flagScoresEnv != "" && s.EnvID != flagScoresEnv {
			continue
		}
		fmt.Printf("  %-20s  %-10s  %8d  %10.1f  %10.1f  %9d  %s\n",
			s.EnvID, s.Policy, s.Episodes, s.AvgReward, s.MaxReward, s.MaxScore, s.LastRun.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Println("Top episodes")
	fmt.Println()
	fmt.Printf("  %-4s  %-20s  %-10s  %-20s  %7s  %6s  %9s\n", "Rank", "Env", "Policy", "Seed", "Steps", "Score", "Reward")
	for i, ep := range episodes {
		fmt.Printf("  %-4d  %-20s  %-10s  %-20d  %7d  %6d  %9.1f\n",
			i+1, ep.EnvID, ep.Policy, ep.Seed, ep.Steps, ep.Score, ep.TotalReward)
	}
	return nil
}

func clearScores(store *storage.Store) error {
	if flagScoresEpisodes {
		if err := store.ClearEpisodes(flagScoresEnv); err != nil {
			return err
		}
		logger.Info("cleared episodes", "env", flagScoresEnv)
		return nil
	}
	if err := store.ClearScores("dino"); err != nil {
		return err
	}
	logger.Info("cleared high scores")
	return nil
}
