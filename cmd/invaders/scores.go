package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagScoresDifficulty string
	flagScoresLimit      int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top rounds, best first.

Without --difficulty the table covers every difficulty.

Examples:
  invaders scores
  invaders scores --difficulty hard
  invaders scores --limit 25`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresDifficulty, "difficulty", "", "Only show rounds played at this difficulty")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of rounds to show")
}

func runScores(_ *cobra.Command, _ []string) {
	if flagScoresDifficulty != "" {
		preset, err := config.ParsePreset(flagScoresDifficulty)
		if err != nil {
			logger.Error("invalid difficulty", "error", err)
			os.Exit(1)
		}
		flagScoresDifficulty = string(preset)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Error("could not open scores database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, flagScoresDifficulty, flagScoresLimit)
	if err != nil {
		logger.Error("could not read scores", "error", err)
		return
	}

	title := "all difficulties"
	if flagScoresDifficulty != "" {
		title = flagScoresDifficulty
	}
	fmt.Printf("High Scores - Alien Invasion (%s)\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'invaders play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-4s  %-6s  %s\n", "Rank", "Score", "Wave", "Diff", "Date")
	fmt.Printf("  %-4s  %-8s  %-4s  %-6s  %s\n", "----", "-----", "----", "----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-4d  %-6s  %s\n", i+1, entry.Score, entry.Level, entry.Difficulty, dateStr)
	}

	fmt.Println()
	stats, err := store.GetAllDifficultyStats(gameID)
	if err != nil {
		return
	}
	for _, p := range config.Presets() {
		st, ok := stats[string(p)]
		if !ok || (flagScoresDifficulty != "" && flagScoresDifficulty != string(p)) {
			continue
		}
		fmt.Printf("%-6s  best %d, wave %d, %d rounds, average %.0f\n",
			p, st.HighScore, st.BestLevel, st.GamesCount, st.AvgScore)
	}
}
