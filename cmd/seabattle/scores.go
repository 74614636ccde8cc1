package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/seabattle/internal/games/seabattle"
	"github.com/vovakirdan/seabattle/internal/registry"
	"github.com/vovakirdan/seabattle/internal/storage"
)

var (
	flagScoresLimit  int
	flagClearScores  bool
	flagHistoryLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and match history",
	Long: `Display the top scores, recent matches and win statistics for a mode.

A win scores 10 points per enemy cell you never fired at plus 25 points
per own vessel still afloat.

Examples:
  seabattle scores
  seabattle scores seabattle_watch --history 20
  seabattle scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of top scores to show")
	scoresCmd.Flags().IntVar(&flagHistoryLimit, "history", 5, "Number of recent matches to show")
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all scores and matches of the mode")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := seabattle.GameID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'seabattle list' to see available modes.")
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

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared scores and matches for %s.\n", title)
		return
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
	} else {
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	printHistory(store, gameID)
}

// printHistory prints the match statistics and the most recent matches.
func printHistory(store *storage.Store, gameID string) {
	stats, err := store.GetMatchStats(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving match stats: %v\n", err)
		return
	}

	fmt.Println()
	if stats.Played == 0 {
		fmt.Println("No matches recorded yet.")
		return
	}
	fmt.Printf("Matches: %d  Won: %d (%.0f%%)  Avg turns: %.1f  Avg shots: %.1f\n",
		stats.Played, stats.HumanWins, stats.WinRate()*100, stats.AvgTurns, stats.AvgShots)

	matches, err := store.RecentMatches(gameID, flagHistoryLimit)
	if err != nil || len(matches) == 0 {
		return
	}

	fmt.Println()
	fmt.Printf("  %-10s  %-5s  %-7s  %-5s  %-6s  %-16s  %s\n", "Winner", "Turns", "Shots", "Score", "Time", "Date", "Match")
	for _, rec := range matches {
		fmt.Printf("  %-10s  %-5d  %-7s  %-5d  %-6s  %-16s  %s\n",
			rec.Winner,
			rec.Turns,
			fmt.Sprintf("%d/%d", rec.HumanShots, rec.CPUShots),
			rec.Score,
			rec.Duration.Round(time.Second),
			rec.CreatedAt.Format("2006-01-02 15:04"),
			rec.MatchID.String()[:8],
		)
	}
}
