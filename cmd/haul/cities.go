package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/heavy-haul/internal/config"
)

var citiesCmd = &cobra.Command{
	Use:   "cities",
	Short: "Show the city list",
	Long: `Print the cities contracts are drawn between, read from --cities.
A missing file falls back to the built-in list.`,
	Args: cobra.NoArgs,
	Run:  runCities,
}

func runCities(_ *cobra.Command, _ []string) {
	cities, err := config.LoadCities(flagCitiesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading cities: %v\n", err)
		os.Exit(1)
	}

	maxName := 4 // "City" header
	for _, c := range cities {
		maxName = max(maxName, len(c.Name))
	}

	fmt.Printf("  %-*s  %6s  %6s\n", maxName, "City", "X", "Y")
	fmt.Printf("  %-*s  %6s  %6s\n", maxName, "----", "-", "-")
	for _, c := range cities {
		fmt.Printf("  %-*s  %6.0f  %6.0f\n", maxName, c.Name, c.X, c.Y)
	}
	fmt.Println()
	fmt.Printf("%d cities\n", len(cities))
}
