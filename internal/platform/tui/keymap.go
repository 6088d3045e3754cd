package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/heavy-haul/internal/core"
)

// GameKeyMap holds the in-game key bindings.
type GameKeyMap struct {
	Accelerate key.Binding
	Brake      key.Binding
	Left       key.Binding
	Right      key.Binding
	Refuel     key.Binding
	Select1    key.Binding
	Select2    key.Binding
	Select3    key.Binding
	Confirm    key.Binding
	Shop       key.Binding
	Refresh    key.Binding
	Back       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns the driving keys.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Accelerate, k.Brake, k.Left, k.Right, k.Refuel, k.Pause, k.Quit}
}

// FullHelp returns every binding grouped by screen.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Accelerate, k.Brake, k.Left, k.Right, k.Refuel},
		{k.Select1, k.Select2, k.Select3, k.Refresh, k.Shop},
		{k.Confirm, k.Back, k.Pause, k.Restart},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// Key contexts reported by games that implement KeyContexter.
const (
	ContextContracts = "contracts"
	ContextShop      = "shop"
	ContextDriving   = "driving"
	ContextResults   = "results"
	ContextPaused    = "paused"
	ContextOver      = "over"
)

// KeyContexter is implemented by games whose keys change with the screen.
type KeyContexter interface {
	KeyContext() string
}

// relabel returns a copy of b with different help text.
func relabel(b key.Binding, keys, desc string) key.Binding {
	b.SetHelp(keys, desc)
	return b
}

// ContextHelp returns the bindings worth showing on one screen, labelled
// for that screen. Unknown contexts get ShortHelp.
func (k GameKeyMap) ContextHelp(ctx string) []key.Binding {
	switch ctx {
	case ContextContracts:
		return []key.Binding{
			relabel(k.Select1, "1-3", "accept"),
			relabel(k.Refresh, "r", "new offers"),
			relabel(k.Shop, "u", "upgrades"),
			relabel(k.Back, "b", "retire"),
			k.Help, k.Quit,
		}
	case ContextShop:
		return []key.Binding{
			relabel(k.Select1, "1-3", "buy"),
			relabel(k.Back, "b/u/enter", "back"),
			k.Help, k.Quit,
		}
	case ContextDriving:
		return []key.Binding{
			relabel(k.Accelerate, "w/s", "throttle"),
			relabel(k.Left, "a/d", "steer"),
			k.Refuel,
			relabel(k.Back, "b", "abandon"),
			k.Pause, k.Help, k.Quit,
		}
	case ContextResults:
		return []key.Binding{relabel(k.Confirm, "enter/space", "next contracts"), k.Quit}
	case ContextPaused:
		return []key.Binding{relabel(k.Pause, "p", "resume"), relabel(k.Back, "b", "menu"), k.Quit}
	case ContextOver:
		return []key.Binding{relabel(k.Refresh, "r", "play again"), relabel(k.Back, "b", "menu"), k.Quit}
	}
	return k.ShortHelp()
}

// DefaultGameKeyMap returns the standard bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Accelerate: key.NewBinding(key.WithKeys("up", "w"), key.WithHelp("↑/w", "accelerate")),
		Brake:      key.NewBinding(key.WithKeys("down", "s"), key.WithHelp("↓/s", "brake/reverse")),
		Left:       key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←/a", "steer left")),
		Right:      key.NewBinding(key.WithKeys("right", "d"), key.WithHelp("→/d", "steer right")),
		Refuel:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "refuel")),
		Select1:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "contract/upgrade 1")),
		Select2:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "contract/upgrade 2")),
		Select3:    key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "contract/upgrade 3")),
		Confirm:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "continue")),
		Shop:       key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "upgrade shop")),
		Refresh:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "new offers/restart")),
		Back:       key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "back/abandon/retire")),
		Pause:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Restart:    key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "restart")),
		Screenshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "all keys")),
		Quit:       key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q/esc", "quit")),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys     GameKeyMap
	bindings []binding
}

type binding struct {
	key    *key.Binding
	action core.Action
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	km := &KeyMapper{keys: DefaultGameKeyMap()}
	k := &km.keys
	km.bindings = []binding{
		{&k.Accelerate, core.ActionAccelerate},
		{&k.Brake, core.ActionBrake},
		{&k.Left, core.ActionSteerLeft},
		{&k.Right, core.ActionSteerRight},
		{&k.Refuel, core.ActionRefuel},
		{&k.Select1, core.ActionSelect1},
		{&k.Select2, core.ActionSelect2},
		{&k.Select3, core.ActionSelect3},
		{&k.Confirm, core.ActionConfirm},
		{&k.Shop, core.ActionShop},
		{&k.Refresh, core.ActionRefresh},
		{&k.Back, core.ActionBack},
		{&k.Pause, core.ActionPause},
		{&k.Restart, core.ActionRestart},
		{&k.Quit, core.ActionQuit},
	}
	return km
}

// Keys returns the bindings, for help views.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	for _, b := range km.bindings {
		if key.Matches(msg, *b.key) {
			return b.action, b.action == core.ActionQuit
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}

// IsScreenshot reports whether msg asks for a screenshot.
func (km *KeyMapper) IsScreenshot(msg tea.KeyMsg) bool {
	return key.Matches(msg, km.keys.Screenshot)
}

// IsHelp reports whether msg toggles the full key list.
func (km *KeyMapper) IsHelp(msg tea.KeyMsg) bool {
	return key.Matches(msg, km.keys.Help)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionLedger
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab", "l":
		return MenuActionLedger
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
