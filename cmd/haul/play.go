package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/heavy-haul/internal/config"
	"github.com/vovakirdan/heavy-haul/internal/haul"
	"github.com/vovakirdan/heavy-haul/internal/platform/tui"
	"github.com/vovakirdan/heavy-haul/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Start a career or a sprint",
	Long: `Start playing. The mode defaults to the career ("haul").

Driving:
  W/Up, S/Down   - Accelerate, brake/reverse
  A/Left, D/Right - Steer
  F              - Refuel at a station
  B              - Abandon the contract
  P              - Pause
  Ctrl+S         - Screenshot to ~/.haul/screenshots

Contract board:
  1-3   - Accept a contract
  R     - New offers
  U     - Upgrade shop (1-3 buy, B back)
  B     - Retire

After game over: R to start again, B for the menu, Q to quit.

Difficulty options:
  easy   - More starting cash and forgiving controls
  normal - Deadlines tighten and fuel burns faster as you deliver
  hard   - Less cash, bigger bridge fines
  fixed  - No progression

Examples:
  haul play
  haul play haul_sprint
  haul play --difficulty easy
  haul play --config ./my-haul.yaml --cities ./cities.json`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := haul.CareerID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'haul list' to see available modes.")
		os.Exit(1)
	}
	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (want easy, normal, hard or fixed)\n", flagDifficulty)
		os.Exit(1)
	}

	applyGameOptions(flagConfig, flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStoreOrWarn()
	_, runErr := tui.Run(game, store, runtimeConfig(), appLogger)
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
