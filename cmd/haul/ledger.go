package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/heavy-haul/internal/haul"
	"github.com/vovakirdan/heavy-haul/internal/platform/tui"
	"github.com/vovakirdan/heavy-haul/internal/registry"
	"github.com/vovakirdan/heavy-haul/internal/storage"
)

var (
	flagLedgerLimit int
	flagLedgerTUI   bool
)

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	deliveredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

var ledgerCmd = &cobra.Command{
	Use:   "ledger [mode]",
	Short: "Show the delivery ledger",
	Long: `Display the most recent deliveries and totals. Without a mode the
ledger covers every mode.

Examples:
  haul ledger
  haul ledger haul --limit 50
  haul ledger --tui`,
	Args: cobra.MaximumNArgs(1),
	Run:  runLedger,
}

func init() {
	ledgerCmd.Flags().IntVarP(&flagLedgerLimit, "limit", "n", 20, "Number of deliveries to show")
	ledgerCmd.Flags().BoolVar(&flagLedgerTUI, "tui", false, "Browse the ledger interactively")
}

func runLedger(_ *cobra.Command, args []string) {
	gameID := ""
	if len(args) > 0 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagLedgerTUI {
		cfg := runtimeConfig()
		if _, err := tui.RunLedger(store, gameID, cfg.ScreenW, cfg.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	deliveries, err := store.RecentDeliveries(gameID, flagLedgerLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading ledger: %v\n", err)
		return
	}

	title := "all modes"
	if gameID != "" {
		title = registry.Title(gameID)
	}
	fmt.Println(headerStyle.Render("Delivery Ledger - " + title))
	fmt.Println()

	if len(deliveries) == 0 {
		fmt.Println("No deliveries recorded yet.")
		return
	}

	fmt.Println(deliveryTable(deliveries))

	if stats, err := store.GetDeliveryStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Missions: %d  Delivered: %d  Failed: %d  Success: %.0f%%\n",
			stats.Missions, stats.Delivered, stats.Failed, stats.SuccessRate()*100)
		fmt.Printf("Earned: %s  Penalties: %s  Miles: %.1f  Best pay: %s\n",
			haul.FormatMoney(int(stats.Earned)), haul.FormatMoney(int(stats.Penalties)),
			stats.Miles, haul.FormatMoney(stats.BestPay))
	}
}

func deliveryTable(deliveries []haul.Delivery) *table.Table {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		Headers("Date", "Route", "Cargo", "Class", "Miles", "Payment", "Status")

	for _, d := range deliveries {
		status := deliveredStyle.Render(d.Status())
		if !d.Delivered {
			status = failedStyle.Render(d.Status())
			if d.Reason != "" {
				status += " (" + d.Reason + ")"
			}
		}
		t.Row(
			d.CreatedAt.Local().Format("2006-01-02 15:04"),
			d.Origin+" → "+d.Destination,
			d.Cargo,
			d.Class,
			strconv.FormatFloat(d.Miles, 'f', 1, 64),
			haul.FormatMoney(d.Payment),
			status,
		)
	}
	return t
}
