package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rush-arcade/internal/registry"
	"github.com/vovakirdan/rush-arcade/internal/storage"
)

var flagRecent int

var scoresCmd = &cobra.Command{
	Use:   "scores <arena>",
	Short: "Show high scores and run stats for an arena",
	Long: `Display the top 10 scores, aggregate run stats and the most recent
runs for the specified arena.

Examples:
  arcade scores rush
  arcade scores rush_gauntlet --recent 10`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 5, "Number of recent runs to list")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown arena %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available arenas.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
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
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.RunStats(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving run stats: %v\n", err)
		return
	}
	if stats.Runs == 0 {
		return
	}

	fmt.Println()
	fmt.Printf("Runs: %d  Won: %d (%.0f%%)  Avg kills: %.1f\n",
		stats.Runs, stats.Wins, stats.WinRate()*100, stats.AvgKills)
	if stats.BestTicks > 0 {
		fmt.Printf("Fastest win: %.1fs\n", float64(stats.BestTicks)/float64(flagFPS))
	}

	runs, err := store.RecentRuns(gameID, flagRecent)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("Recent runs:")
	fmt.Printf("  %-6s  %-8s  %-8s  %-4s  %-5s  %-20s  %s\n", "Result", "Score", "Time", "HP", "Kills", "Seed", "Date")
	for _, r := range runs {
		fmt.Printf("  %-6s  %-8d  %-8s  %-4d  %-5d  %-20d  %s\n",
			r.Outcome, r.Score, fmt.Sprintf("%.1fs", float64(r.Ticks)/float64(flagFPS)),
			r.HP, r.Kills, r.Seed, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
