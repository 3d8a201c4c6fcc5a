package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dronemania/internal/highscore"
	"github.com/vovakirdan/dronemania/internal/registry"
	"github.com/vovakirdan/dronemania/internal/storage"
)

var (
	flagScoresLimit int
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show recorded runs for a mode",
	Long: `Display the top runs and aggregate stats for a mode
(default: dronemania). The persisted high score shown in game is
listed separately.

Examples:
  dronemania scores
  dronemania scores dronemania_endless --limit 20
  dronemania scores --limit 0
  dronemania scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show (0 for all)")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded runs for the mode and the persisted high score")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := "dronemania"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'dronemania list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := clearScores(store, gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Printf("Cleared runs for %s and the persisted high score.\n", game.Title())
		return
	}

	printScores(store, gameID, game.Title())
}

func clearScores(store *storage.Store, gameID string) error {
	if err := store.ClearScores(gameID); err != nil {
		return err
	}
	return store.DeleteValue(highscore.Key)
}

func loadRuns(store *storage.Store, gameID string, limit int) ([]storage.ScoreEntry, error) {
	if limit <= 0 {
		return store.AllScores(gameID)
	}
	return store.TopScores(gameID, limit)
}

func printScores(store *storage.Store, gameID, title string) {
	scores, err := loadRuns(store, gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	hs := highscore.NewKVStore(store, nil)
	fmt.Printf("Persisted high score: %d\n", hs.Load())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'dronemania play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-5d  %s\n", i+1, entry.Score, entry.Level, dateStr)
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Best level: %d  Average: %.0f\n",
			stats.GamesCount, stats.HighScore, stats.BestLevel, stats.AvgScore)
	}
}
