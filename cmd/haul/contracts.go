package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/heavy-haul/internal/config"
	"github.com/vovakirdan/heavy-haul/internal/haul"
)

var (
	flagOffers int
	flagClass  string
)

var contractsCmd = &cobra.Command{
	Use:   "contracts",
	Short: "Preview a contract board",
	Long: `Generate a contract board from the city list and print each offer with
its itemised payout. Use --seed to reproduce a board.

Examples:
  haul contracts
  haul contracts --seed 42 -n 10
  haul contracts --class superload
  haul contracts --cities ./cities.json`,
	Args: cobra.NoArgs,
	Run:  runContracts,
}

func init() {
	contractsCmd.Flags().IntVarP(&flagOffers, "count", "n", 0, "Number of offers (default from config)")
	contractsCmd.Flags().StringVar(&flagClass, "class", "", "Only offer one cargo class (standard, oversize, superload)")
	contractsCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runContracts(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadHaul(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	cities, err := config.LoadCities(flagCitiesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading cities: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gen, err := haul.NewGenerator(cities, cfg.Contracts, cfg.Economy.BaseRatePerMile, seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	n := flagOffers
	if n <= 0 {
		n = cfg.Contracts.Offers
	}

	var offers []haul.Contract
	if flagClass != "" {
		class, err := haul.ParseCargoClass(flagClass)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		offers = gen.GenerateClass(n, 0, class)
	} else {
		offers = gen.Generate(n, 0)
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("Contract Board (seed %d)", seed)))
	fmt.Println(contractTable(offers))
}

// contractTable lays out offers with every payout factor in its own column.
// Weight and oversize are surcharges added to 1 before the deadline
// multiplier applies.
func contractTable(offers []haul.Contract) *table.Table {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		Headers("#", "Route", "Cargo", "Class", "Miles", "Deadline", "Base", "+ Weight", "+ Oversize", "x Deadline", "Pay")
	for i, c := range offers {
		t.Row(
			strconv.Itoa(i+1),
			c.Route(),
			c.Cargo,
			c.Class.String(),
			strconv.FormatFloat(c.Miles, 'f', 1, 64),
			fmt.Sprintf("%dh", c.DeadlineHours),
			haul.FormatMoney(int(c.Pay.Base)),
			fmt.Sprintf("%+.2f", c.Pay.WeightFactor),
			fmt.Sprintf("%+.2f", c.Pay.OversizeFactor),
			strconv.FormatFloat(c.Pay.DeadlineMultiplier, 'f', 2, 64),
			haul.FormatMoney(c.Pay.Total),
		)
	}
	return t
}
