// haul is Heavy Haul Tycoon, a top-down trucking game for the terminal.
//
// Usage:
//
//	haul play [mode]         - Start a career (default) or a sprint
//	haul menu                - Pick a mode interactively
//	haul serve               - Start SSH server for remote play
//	haul list                - List available modes
//	haul scores <mode>       - Show high scores for a mode
//	haul ledger [mode]       - Show recent deliveries
//	haul contracts           - Preview a contract board
//	haul cities              - Show the city list
//	haul upgrades            - Show upgrade tracks and prices
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible contract boards
//	--db <path>         - Set database path (default: ~/.haul/haul.db)
//	--log-file <path>   - Write debug logs to a file
//	--cities <path>     - City list JSON (default: data/cities.json)
//	--upgrades <path>   - Upgrade tracks YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/heavy-haul/internal/config"
	"github.com/vovakirdan/heavy-haul/internal/haul"
	"github.com/vovakirdan/heavy-haul/internal/storage"
)

var (
	// Global flags
	flagFPS          int
	flagSeed         int64
	flagDBPath       string
	flagLogFile      string
	flagCitiesPath   string
	flagUpgradesPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "haul",
	Short: "Heavy Haul Tycoon - haul freight across the map in your terminal",
	Long: `Heavy Haul Tycoon is a top-down trucking game for the terminal.

Pick a contract, drive the rig along the roads, keep it fuelled, stay
clear of the low bridge and make the drop before the deadline. Spend
your earnings on a bigger engine, tank and frame.

Available commands:
  play       - Start a career or a sprint
  menu       - Interactive mode picker
  serve      - Start SSH server for remote play
  list       - Show available modes
  scores     - View high scores
  ledger     - View the delivery ledger
  contracts  - Preview a contract board
  cities     - Show the city list
  upgrades   - Show upgrade tracks

Examples:
  haul play
  haul play haul_sprint
  haul play --difficulty hard --seed 42
  haul serve --ssh :2222
  haul ledger --limit 50`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger, err := newLogger(flagLogFile)
		if err != nil {
			return err
		}
		haul.SetLogger(logger)
		appLogger = logger
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		closeLogFile()
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores and ledger database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagCitiesPath, "cities", config.DefaultCitiesPath, "Path to city list JSON")
	rootCmd.PersistentFlags().StringVar(&flagUpgradesPath, "upgrades", "", "Path to upgrade tracks YAML")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(ledgerCmd)
	rootCmd.AddCommand(contractsCmd)
	rootCmd.AddCommand(citiesCmd)
	rootCmd.AddCommand(upgradesCmd)
}
