package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/seabattle/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the configuration a match would use, as YAML.

Search order (first valid file wins):
  --config <path>
  ~/.seabattle/configs/seabattle.yaml
  ./configs/seabattle.yaml
  built-in defaults

Example:
  seabattle config > ~/.seabattle/configs/seabattle.yaml`,
	Run: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	conf, err := config.LoadSeaBattle(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(conf); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	enc.Close()
}
