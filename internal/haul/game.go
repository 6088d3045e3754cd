// Package haul implements Heavy Haul, a top-down trucking game: take a
// contract, drive the rig along the roads, keep it fuelled, stay clear of
// the low bridge and reach the drop-off before the deadline.
package haul

import (
	"sync"

	"github.com/vovakirdan/heavy-haul/internal/config"
	"github.com/vovakirdan/heavy-haul/internal/core"
	"github.com/vovakirdan/heavy-haul/internal/registry"
)

// Registered game IDs.
const (
	CareerID = "haul"
	SprintID = "haul_sprint"
)

// Options are the file locations and difficulty chosen on the command line.
type Options struct {
	ConfigPath   string
	UpgradesPath string
	CitiesPath   string
	Difficulty   string
}

var (
	optsMu sync.RWMutex
	opts   Options
)

// SetOptions sets the options used by games created afterwards.
func SetOptions(o Options) {
	optsMu.Lock()
	defer optsMu.Unlock()
	opts = o
}

func currentOptions() Options {
	optsMu.RLock()
	defer optsMu.RUnlock()
	return opts
}

func init() {
	registry.Register(CareerID, func() registry.Game { return NewCareerGame() })
	registry.Register(SprintID, func() registry.Game { return NewSprintGame() })
}

// Game adapts a career or a sprint to the platform's game loop.
type Game struct {
	sprintMode bool
	runtime    core.RuntimeConfig
	ledger     Ledger
	career     *Career
	sprint     *Sprint
	paused     bool
}

// NewCareerGame creates the career mode game.
func NewCareerGame() *Game {
	return &Game{}
}

// NewSprintGame creates the sprint mode game.
func NewSprintGame() *Game {
	return &Game{sprintMode: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.sprintMode {
		return SprintID
	}
	return CareerID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.sprintMode {
		return "Heavy Haul: Sprint"
	}
	return "Heavy Haul Tycoon"
}

// SetLedger records finished deliveries in l.
func (g *Game) SetLedger(l Ledger) {
	g.ledger = l
	if g.career != nil {
		g.career.SetLedger(l)
	}
	if g.sprint != nil {
		g.sprint.SetLedger(l)
	}
}

// Reset loads configuration and starts a new career or run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false
	o := currentOptions()

	cfg := g.loadConfig(o)

	if g.sprintMode {
		g.sprint = NewSprint(cfg, runtime.TickRate, g.ID(), g.ledger)
		return
	}

	upgrades, err := config.LoadUpgrades(o.UpgradesPath)
	if err != nil {
		logger.Warn("using default upgrades", "error", err)
		upgrades = config.DefaultUpgradesConfig()
	}
	cities, err := config.LoadCities(o.CitiesPath)
	if err != nil {
		logger.Warn("using default cities", "error", err)
		cities = config.DefaultCities()
	}

	career, err := NewCareer(CareerParams{
		Config:   cfg,
		Upgrades: upgrades,
		Cities:   cities,
		Seed:     runtime.Seed,
		TickRate: runtime.TickRate,
		GameID:   g.ID(),
		Ledger:   g.ledger,
	})
	if err != nil {
		// Only a city list with fewer than two entries fails here.
		logger.Warn("using default cities", "error", err)
		career, _ = NewCareer(CareerParams{
			Config:   cfg,
			Upgrades: upgrades,
			Cities:   config.DefaultCities(),
			Seed:     runtime.Seed,
			TickRate: runtime.TickRate,
			GameID:   g.ID(),
			Ledger:   g.ledger,
		})
	}
	g.career = career
}

func (g *Game) loadConfig(o Options) config.HaulConfig {
	load, fallback := config.LoadHaul, config.DefaultHaulConfig
	if g.sprintMode {
		load, fallback = config.LoadSprint, config.DefaultSprintConfig
	}
	cfg, err := load(o.ConfigPath)
	if err != nil {
		logger.Warn("using default config", "error", err)
		cfg = fallback()
	}
	if preset, ok := config.ParsePreset(o.Difficulty); ok && o.Difficulty != "" {
		config.ApplyHaulPreset(&cfg, preset)
	}
	return cfg
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.State().GameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.driving() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	var events []string
	if g.sprintMode {
		events = g.sprint.Step(in)
	} else {
		events = g.career.Step(in)
	}
	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) driving() bool {
	if g.sprintMode {
		return g.sprint != nil && !g.sprint.Over()
	}
	return g.career != nil && g.career.Scene() == SceneDriving
}

// Render draws the current scene.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sprintMode {
		if g.sprint != nil {
			renderSprint(dst, g.sprint, g.paused)
		}
		return
	}
	if g.career != nil {
		renderCareer(dst, g.career, g.paused)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{Paused: g.paused}
	switch {
	case g.sprintMode && g.sprint != nil:
		st.Score = g.sprint.Score()
		st.GameOver = g.sprint.Over()
	case g.career != nil:
		st.Score = g.career.Score()
		st.GameOver, _ = g.career.Over()
	}
	return st
}

// KeyContext names the screen whose keys apply: "contracts", "shop",
// "driving", "results", "paused" or "over".
func (g *Game) KeyContext() string {
	switch {
	case g.State().GameOver:
		return "over"
	case g.paused:
		return "paused"
	case g.sprintMode:
		return "driving"
	case g.career != nil:
		return g.career.Scene().String()
	}
	return ""
}

// Career exposes the running career, nil in sprint mode.
func (g *Game) Career() *Career { return g.career }

// Sprint exposes the running sprint, nil in career mode.
func (g *Game) Sprint() *Sprint { return g.sprint }
