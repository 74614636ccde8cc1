package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/seabattle/internal/config"
	"github.com/vovakirdan/seabattle/internal/games/seabattle"
	"github.com/vovakirdan/seabattle/internal/games/seabattle/core"
	"github.com/vovakirdan/seabattle/internal/storage"
)

var (
	flagSimCount      int
	flagSimRecord     bool
	flagSimShowBoards bool
	flagSimLogLevel   string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless computer-vs-computer matches",
	Long: `Play matches between two automated fleets without a terminal UI and
print aggregate results. Match i uses seed --seed + i, so a fixed --seed
makes the whole batch reproducible.

Examples:
  seabattle sim -n 1000
  seabattle sim -n 3 --seed 7 --show-boards
  seabattle sim -n 50 --record --log-level debug`,
	Run: runSim,
}

func init() {
	simCmd.Flags().IntVarP(&flagSimCount, "count", "n", 100, "Number of matches to play")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Record every match in the history database")
	simCmd.Flags().BoolVar(&flagSimShowBoards, "show-boards", false, "Print both final boards of every match")
	simCmd.Flags().StringVar(&flagSimLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func runSim(_ *cobra.Command, _ []string) {
	level, err := log.ParseLevel(flagSimLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "sim",
		Level:           level,
	})

	if flagSimCount <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --count must be positive")
		os.Exit(1)
	}

	conf, err := config.LoadSeaBattle(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	rules := seabattle.Rules(conf)

	var store *storage.Store
	if flagSimRecord {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
	}

	baseSeed := flagSeed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	logger.Info("starting simulation", "matches", flagSimCount, "size", rules.Size, "seed", baseSeed)

	var totals seabattle.SimTotals
	started := time.Now()
	for i := range flagSimCount {
		seed := baseSeed + int64(i)
		matchStart := time.Now()

		result, err := seabattle.Simulate(rules, seed)
		if err != nil {
			logger.Error("match failed", "match", i+1, "seed", seed, "error", err)
			continue
		}
		totals.Add(result)

		logger.Debug("match finished",
			"match", i+1,
			"seed", seed,
			"winner", result.Winner,
			"turns", result.Turns,
			"shots", result.HumanShots+result.CPUShots,
		)

		if flagSimShowBoards {
			printBoards(i+1, result)
		}

		if store != nil {
			_, err := store.SaveMatch(storage.MatchRecord{
				GameID:     seabattle.WatchGameID,
				Winner:     result.Winner.String(),
				HumanShots: result.HumanShots,
				CPUShots:   result.CPUShots,
				Turns:      result.Turns,
				Duration:   time.Since(matchStart),
			})
			if err != nil {
				logger.Warn("could not record match", "match", i+1, "error", err)
			}
		}
	}

	logger.Info("simulation finished", "elapsed", time.Since(started).Round(time.Millisecond))

	if totals.Played == 0 {
		fmt.Println("No match finished.")
		os.Exit(1)
	}

	fmt.Println()
	fmt.Printf("Matches played:   %d\n", totals.Played)
	fmt.Printf("First mover wins: %d (%.1f%%)\n", totals.HumanWins, 100*float64(totals.HumanWins)/float64(totals.Played))
	fmt.Printf("Average turns:    %.1f\n", totals.AvgTurns())
	fmt.Printf("Average shots:    %.1f\n", totals.AvgShots())
}

// printBoards prints both final boards with every vessel revealed.
func printBoards(n int, result seabattle.SimResult) {
	fmt.Printf("\nMatch %d (seed %d): %s wins after %d turns\n", n, result.Seed, result.Winner, result.Turns)
	fmt.Println("\nHuman side:")
	fmt.Println(seabattle.RenderASCII(result.Match.Board(core.SideHuman), true))
	fmt.Println("\nAutomated side:")
	fmt.Println(seabattle.RenderASCII(result.Match.Board(core.SideAutomated), true))
}
