package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/heavy-haul/internal/haul"
	"github.com/vovakirdan/heavy-haul/internal/registry"
	"github.com/vovakirdan/heavy-haul/internal/storage"
)

// Ledger layout constants
const (
	minWidthForSidebar = 100 // Minimum width to show game list sidebar
	sidebarWidth       = 22  // Width of game list sidebar
	maxRows            = 200 // Max rows to load
)

// LedgerView selects what the ledger table lists.
type LedgerView int

const (
	ViewDeliveries LedgerView = iota
	ViewScores
)

func (v LedgerView) String() string {
	if v == ViewScores {
		return "High Scores"
	}
	return "Deliveries"
}

// LedgerKeyMap defines the key bindings for the ledger.
type LedgerKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Toggle   key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k LedgerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.Toggle, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k LedgerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Toggle, k.Back, k.Quit},
	}
}

// DefaultLedgerKeyMap returns default key bindings.
func DefaultLedgerKeyMap() LedgerKeyMap {
	return LedgerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next mode"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev mode"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "deliveries/scores"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// LedgerModel browses the delivery ledger and high scores per mode.
type LedgerModel struct {
	games       []registry.GameInfo
	gameCursor  int
	view        LedgerView
	store       *storage.Store
	rows        []table.Row
	stats       *storage.DeliveryStats
	loadErr     error
	table       table.Model
	help        help.Model
	keys        LedgerKeyMap
	width       int
	height      int
	embedded    bool
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewLedgerModel creates a ledger browser opened on gameID. An empty or
// unknown gameID opens the first mode.
func NewLedgerModel(store *storage.Store, gameID string, width, height int) LedgerModel {
	h := help.New()
	h.ShowAll = false

	m := LedgerModel{
		games:       registry.List(),
		store:       store,
		keys:        DefaultLedgerKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	for i, g := range m.games {
		if g.ID == gameID {
			m.gameCursor = i
		}
	}
	m.table = m.createTable()
	m.load()
	return m
}

func (m *LedgerModel) columns() []table.Column {
	if m.view == ViewScores {
		return []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 14},
			{Title: "Date", Width: 18},
		}
	}
	return []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Route", Width: 22},
		{Title: "Cargo", Width: 20},
		{Title: "Class", Width: 9},
		{Title: "Payment", Width: 10},
		{Title: "Status", Width: 16},
	}
}

func (m *LedgerModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-10)), // Leave room for header, stats and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (m *LedgerModel) currentGame() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.gameCursor].ID
}

// load fills the table for the current mode and view.
func (m *LedgerModel) load() {
	m.rows, m.stats, m.loadErr = nil, nil, nil
	if m.store == nil {
		m.table.SetRows(nil)
		return
	}

	gameID := m.currentGame()
	if m.view == ViewScores {
		m.rows, m.loadErr = scoreRows(m.store, gameID)
	} else {
		m.rows, m.loadErr = deliveryRows(m.store, gameID)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.GetDeliveryStats(gameID)
		}
	}
	m.table.SetRows(m.rows)
	m.table.GotoTop()
}

func scoreRows(store *storage.Store, gameID string) ([]table.Row, error) {
	scores, err := store.TopScores(gameID, maxRows)
	if err != nil {
		return nil, err
	}
	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			haul.FormatMoney(s.Score),
			s.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	return rows, nil
}

func deliveryRows(store *storage.Store, gameID string) ([]table.Row, error) {
	deliveries, err := store.RecentDeliveries(gameID, maxRows)
	if err != nil {
		return nil, err
	}
	rows := make([]table.Row, len(deliveries))
	for i, d := range deliveries {
		status := d.Status()
		if d.Reason != "" {
			status = d.Reason
		}
		rows[i] = table.Row{
			d.CreatedAt.Local().Format("Jan 02 15:04"),
			d.Origin + " → " + d.Destination,
			d.Cargo,
			d.Class,
			haul.FormatMoney(d.Payment),
			status,
		}
	}
	return rows, nil
}

// Init initializes the ledger model.
func (m LedgerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the ledger.
func (m LedgerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.embedded {
				return m, nil
			}
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + 1) % len(m.games)
				m.load()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor - 1 + len(m.games)) % len(m.games)
				m.load()
			}
			return m, nil

		case key.Matches(msg, m.keys.Toggle):
			m.view = 1 - m.view
			m.table = m.createTable()
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.table.SetRows(m.rows)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the ledger.
func (m LedgerModel) View() string {
	if m.quitting || (m.goingBack && !m.embedded) {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := strings.ToUpper(m.view.String())
	if len(m.games) > 0 {
		title = fmt.Sprintf("%s - %s", title, m.games[m.gameCursor].Title)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n")
	b.WriteString(centerText(m.statsLine(), m.width))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m LedgerModel) statsLine() string {
	st := m.stats
	if st == nil || st.Missions == 0 {
		return ""
	}
	return fmt.Sprintf("%d missions  %d delivered (%.0f%%)  net %s  penalties %s  %.0f mi hauled",
		st.Missions, st.Delivered, st.SuccessRate()*100,
		haul.FormatMoney(int(st.Earned)), haul.FormatMoney(int(st.Penalties)), st.Miles)
}

// renderWideLayout renders the ledger with a sidebar for mode selection.
func (m LedgerModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Modes\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, g := range m.games {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.gameCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		name := g.Title
		if maxLen := sidebarWidth - 6; len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()),
		"  ",
		tableStyle.Render(m.renderTableContent()),
	)
}

// renderNarrowLayout renders the ledger with mode tabs above the table.
func (m LedgerModel) renderNarrowLayout() string {
	var b strings.Builder

	tabStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.gameCursor {
			tabs[i] = activeTabStyle.Render(g.Title)
		} else {
			tabs[i] = tabStyle.Render(" " + g.Title + " ")
		}
	}
	tabLine := strings.Join(tabs, " ")
	if lipgloss.Width(tabLine) > m.width-4 && len(m.games) > 0 {
		tabLine = fmt.Sprintf("< %s >", m.games[m.gameCursor].Title)
	}
	b.WriteString(centerText(tabLine, m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))
	return b.String()
}

func (m LedgerModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("Ledger unavailable: no database.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not read the ledger:\n" + m.loadErr.Error())
	case len(m.rows) == 0 && m.view == ViewScores:
		return emptyStyle.Render("No scores recorded yet.\nFinish a run to set a high score!")
	case len(m.rows) == 0:
		return emptyStyle.Render("No deliveries yet.\nAccept a contract to get on the books!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m LedgerModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m LedgerModel) IsQuitting() bool {
	return m.quitting
}

// RunLedger runs the ledger screen opened on gameID.
// Returns true if user wants to go back to menu, false if quitting.
func RunLedger(store *storage.Store, gameID string, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewLedgerModel(store, gameID, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("tui: ledger: %w", err)
	}
	m, ok := finalModel.(LedgerModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
