package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/heavy-haul/internal/platform/tui"
	"github.com/vovakirdan/heavy-haul/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode and Tab to
browse the delivery ledger. After a game ends press B to return here.

Examples:
  haul menu
  haul menu --fps 30
  haul menu --db ./haul.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	applyGameOptions("", "")
	store := openStoreOrWarn()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = result.Config

		switch {
		case result.Quit:
			return

		case result.WantsLedger:
			back, err := tui.RunLedger(store, "", cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return
			}
			if !back {
				return
			}

		default:
			game, err := registry.Create(result.GameID)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
				return
			}
			back, err := tui.Run(game, store, cfg, appLogger)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
				return
			}
			if !back {
				return
			}
		}
	}
}
