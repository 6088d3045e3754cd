package main

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/heavy-haul/internal/config"
	"github.com/vovakirdan/heavy-haul/internal/haul"
)

var upgradesCmd = &cobra.Command{
	Use:   "upgrades",
	Short: "Show upgrade tracks and prices",
	Long: `Print every upgrade track with the price and effect of each level.
Level 1 is the stock truck.`,
	Args: cobra.NoArgs,
	Run:  runUpgrades,
}

func runUpgrades(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadUpgrades(flagUpgradesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading upgrades: %v\n", err)
		os.Exit(1)
	}

	for _, track := range haul.Tracks {
		// Walk a fresh truck up the track, buying each level with enough cash.
		u := haul.NewUpgrades(cfg)
		fmt.Println(headerStyle.Render(track.String()))
		fmt.Printf("  L%d  %-10s  %s\n", u.Level(track), "stock", u.Describe(track))
		for u.Level(track) < u.MaxLevel(track) {
			cost, err := u.Purchase(track, math.MaxInt)
			if err != nil {
				break
			}
			fmt.Printf("  L%d  %-10s  %s\n", u.Level(track), haul.FormatMoney(cost), u.Describe(track))
		}
		fmt.Println()
	}
}
