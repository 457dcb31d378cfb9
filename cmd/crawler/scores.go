package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crawler/internal/registry"
	"github.com/vovakirdan/tui-crawler/internal/storage"
)

var flagRuns int

var scoresCmd = &cobra.Command{
	Use:   "scores <dungeon>",
	Short: "Show high scores and recent runs for a dungeon",
	Long: `Display the top 10 scores, overall stats and the latest runs
for the specified dungeon.

Examples:
  crawler scores crypt
  crawler scores keep --runs 20`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRuns, "runs", 5, "Number of recent runs to show")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown dungeon %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'crawler list' to see available dungeons.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating dungeon: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'crawler play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Coins", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d   Runs: %d   Wins: %d   Most kills: %d\n",
			stats.HighScore, stats.Runs, stats.Wins, stats.BestKills)
	}

	printRecentRuns(store, gameID)
}

func printRecentRuns(store *storage.Store, gameID string) {
	if flagRuns <= 0 {
		return
	}
	runs, err := store.RecentRuns(gameID, flagRuns)
	if err != nil || len(runs) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Recent runs:")
	fmt.Printf("  %-7s  %-6s  %-5s  %-5s  %-7s  %s\n", "Outcome", "Coins", "Kills", "Rooms", "Time", "Date")
	for _, r := range runs {
		fmt.Printf("  %-7s  %-6d  %-5d  %-5d  %-7s  %s\n",
			r.Outcome, r.Coins, r.Kills, r.RoomsVisited,
			r.Duration.Round(time.Second), r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
