package tui

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/heavy-haul/internal/haul"
	"github.com/vovakirdan/heavy-haul/internal/storage"
)

func TestLedgerModelOpensOnMode(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	sprint := haul.Delivery{GameID: haul.SprintID, Origin: "Tampa", Destination: "Atlanta", Cargo: "Steel Beams", Class: "Standard", Payment: 900, Delivered: true}
	if err := store.SaveDelivery(sprint); err != nil {
		t.Fatalf("SaveDelivery: %v", err)
	}

	tests := []struct {
		name   string
		gameID string
		want   string
		rows   int
	}{
		{"sprint", haul.SprintID, haul.SprintID, 1},
		{"career", haul.CareerID, haul.CareerID, 0},
		{"unknown falls back", "pinball", haul.CareerID, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewLedgerModel(store, tc.gameID, 120, 40)
			if got := m.currentGame(); got != tc.want {
				t.Errorf("currentGame() = %q, want %q", got, tc.want)
			}
			if len(m.rows) != tc.rows {
				t.Errorf("got %d rows, want %d", len(m.rows), tc.rows)
			}
		})
	}
}
