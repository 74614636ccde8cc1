// seabattle plays Sea Battle in the terminal.
//
// Usage:
//
//	seabattle list              - List available modes
//	seabattle play [mode]       - Play a match (default: seabattle)
//	seabattle menu              - Pick a mode interactively
//	seabattle serve             - Start SSH server for remote play
//	seabattle scores [mode]     - Show high scores and match history
//	seabattle sim -n 100        - Run headless computer-vs-computer matches
//	seabattle config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 30)
//	--seed <value>   - Set RNG seed for reproducible matches
//	--db <path>      - Set database path (default: ~/.seabattle/seabattle.db)
//	--config <path>  - Use a custom game config YAML
//	--debug          - Write a debug log to ~/.seabattle/debug.log
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/seabattle/internal/core"
	"github.com/vovakirdan/seabattle/internal/games/seabattle"
	"github.com/vovakirdan/seabattle/internal/storage"
)

var (
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "seabattle",
	Short: "Sea Battle - sink the computer's fleet in your terminal",
	Long: `Sea Battle is the classic ship hunting game on a 6x6 board.

Both fleets hold seven vessels (one of three cells, two of two and four of
one) that never touch, not even diagonally. Take turns firing; a hit lets
you fire again. Sink every enemy vessel before yours go down.

Available commands:
  list     - Show all available modes
  play     - Play a match directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores and match history
  sim      - Run headless computer-vs-computer matches
  config   - Print the effective configuration

Examples:
  seabattle play
  seabattle play seabattle_watch
  seabattle menu
  seabattle serve --ssh :2222
  seabattle sim -n 500`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		seabattle.SetConfigPath(flagConfig)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Write a debug log to ~/.seabattle/debug.log")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// openDebugLog returns a file logger when --debug is set. Bubble Tea owns the
// terminal while a game runs, so nothing may be written to stderr. The
// returned close function is never nil.
func openDebugLog() (*log.Logger, func()) {
	if !flagDebug {
		return nil, func() {}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot open debug log: %v\n", err)
		return nil, func() {}
	}
	path := filepath.Join(home, ".seabattle", "debug.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot open debug log: %v\n", err)
		return nil, func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot open debug log: %v\n", err)
		return nil, func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "seabattle",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }
}

// openStore opens the scores database. A failure is reported and the caller
// continues without storage.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}
