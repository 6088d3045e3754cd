package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/heavy-haul/internal/core"
	"github.com/vovakirdan/heavy-haul/internal/haul"
	"github.com/vovakirdan/heavy-haul/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) GameModel {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	haul.SetOptions(haul.Options{CitiesPath: filepath.Join(t.TempDir(), "none.json")})
	t.Cleanup(func() { haul.SetOptions(haul.Options{}) })

	m := NewGameModel(haul.NewCareerGame(), store, core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 60, Seed: 1}, nil)
	m.Init()
	return m
}

func send(m GameModel, msgs ...tea.Msg) GameModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(GameModel)
	}
	return m
}

func tick() tea.Msg { return TickMsg{} }

func TestGameModelResizeKeepsCareer(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(m, runeKey('1'), tick())

	career := m.game.(*haul.Game).Career()
	if career.Scene() != haul.SceneDriving {
		t.Fatalf("Scene = %v, want driving", career.Scene())
	}

	m = send(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.game.(*haul.Game).Career() != career || career.Scene() != haul.SceneDriving {
		t.Error("resize restarted the career")
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen %dx%d, want 120x40", m.screen.Width(), m.screen.Height())
	}
}

func TestGameModelRestartAndScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store)
	m = send(m, runeKey('b'), tick())
	if !m.State().GameOver {
		t.Fatal("retiring did not end the game")
	}
	if !strings.Contains(m.View(), "RETIRED") {
		t.Error("game over banner missing from view")
	}

	m = send(m, runeKey('r'), tick())
	if m.State().GameOver {
		t.Error("r did not restart after game over")
	}
	if m.scoreSaved {
		t.Error("scoreSaved not reset on restart")
	}
}

func TestGameModelLedgerWired(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store)
	m = send(m, runeKey('1'), tick(), runeKey('b'), tick())

	deliveries, err := store.RecentDeliveries(haul.CareerID, 10)
	if err != nil {
		t.Fatalf("RecentDeliveries: %v", err)
	}
	if len(deliveries) != 1 || deliveries[0].Reason != haul.ReasonAbandoned {
		t.Errorf("ledger = %+v", deliveries)
	}
}

func TestGameModelBackToMenu(t *testing.T) {
	m := newTestModel(t, nil)
	m.embedded = true

	m = send(m, runeKey('b'))
	if m.BackToMenu() {
		t.Fatal("b on the contract board left the game")
	}
	m = send(m, tick())
	if !m.State().GameOver {
		t.Fatal("b did not retire")
	}

	next, cmd := m.Update(runeKey('b'))
	m = next.(GameModel)
	if !m.BackToMenu() {
		t.Error("b after game over did not go back to the menu")
	}
	if cmd != nil {
		t.Error("embedded model should not quit the program")
	}
}

func TestGameModelQuit(t *testing.T) {
	m := newTestModel(t, nil)
	next, cmd := m.Update(runeKey('q'))
	if !next.(GameModel).IsQuitting() || cmd == nil {
		t.Error("q did not quit")
	}
	if next.(GameModel).View() != "" {
		t.Error("quitting model still renders")
	}
}

func TestGameModelHelpFooter(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(m, tea.WindowSizeMsg{Width: 160, Height: 40})

	if view := m.View(); !strings.Contains(view, "accept") || strings.Contains(view, "abandon") {
		t.Errorf("contract board footer wrong:\n%s", view)
	}

	m = send(m, runeKey('1'), tick())
	view := m.View()
	if !strings.Contains(view, "abandon") {
		t.Errorf("driving footer missing abandon:\n%s", view)
	}
	if strings.Contains(view, "screenshot") {
		t.Error("short help should not list every key")
	}
	if m.screen.Height() != 40-1 {
		t.Errorf("screen height %d, want 39 above a one-line footer", m.screen.Height())
	}

	m = send(m, runeKey('?'))
	if !strings.Contains(m.View(), "screenshot") {
		t.Error("? did not expand the key list")
	}
	if m.game.(*haul.Game).Career().Scene() != haul.SceneDriving {
		t.Error("? leaked into the game as input")
	}

	m = send(m, runeKey('?'))
	if strings.Contains(m.View(), "screenshot") {
		t.Error("second ? did not collapse the key list")
	}
}
