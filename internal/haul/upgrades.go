package haul

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/heavy-haul/internal/config"
)

// Upgrade refusals.
var (
	ErrMaxLevel = errors.New("already at max level")
)

// Track identifies an upgrade line.
type Track int

const (
	TrackEngine Track = iota
	TrackFuelTank
	TrackFrame
)

// Tracks lists the upgrade lines in shop order.
var Tracks = []Track{TrackEngine, TrackFuelTank, TrackFrame}

func (t Track) String() string {
	switch t {
	case TrackEngine:
		return "Engine"
	case TrackFuelTank:
		return "Fuel Tank"
	case TrackFrame:
		return "Frame"
	default:
		return fmt.Sprintf("Track(%d)", int(t))
	}
}

// Upgrades holds the truck's purchased levels. Levels start at 1.
type Upgrades struct {
	cfg    config.UpgradesConfig
	levels map[Track]int
}

// NewUpgrades creates a stock truck with every track at level 1.
func NewUpgrades(cfg config.UpgradesConfig) *Upgrades {
	return &Upgrades{
		cfg: cfg,
		levels: map[Track]int{
			TrackEngine:   1,
			TrackFuelTank: 1,
			TrackFrame:    1,
		},
	}
}

// Level returns the current level of a track.
func (u *Upgrades) Level(t Track) int {
	return u.levels[t]
}

// MaxLevel returns the highest level of a track.
func (u *Upgrades) MaxLevel(t Track) int {
	return len(u.costs(t))
}

// NextCost returns the price of the next level, or false at max level.
func (u *Upgrades) NextCost(t Track) (int, bool) {
	costs := u.costs(t)
	next := u.levels[t] // index of the next level
	if next >= len(costs) {
		return 0, false
	}
	return costs[next], true
}

// Purchase buys the next level of a track and returns its price.
func (u *Upgrades) Purchase(t Track, cash int) (int, error) {
	cost, ok := u.NextCost(t)
	if !ok {
		return 0, ErrMaxLevel
	}
	if cash < cost {
		return 0, ErrCannotAfford
	}
	u.levels[t]++
	return cost, nil
}

// SpeedBonus is the engine's top speed multiplier.
func (u *Upgrades) SpeedBonus() float64 {
	return at(u.cfg.Engine.SpeedBonuses, u.levels[TrackEngine], 1.0)
}

// TankCapacity is the fuel tank size.
func (u *Upgrades) TankCapacity() float64 {
	return at(u.cfg.FuelTank.Capacities, u.levels[TrackFuelTank], 100)
}

// CollisionFactor scales collision penalties (1.0 = full penalty).
func (u *Upgrades) CollisionFactor() float64 {
	return at(u.cfg.Frame.CollisionReduction, u.levels[TrackFrame], 1.0)
}

// Describe returns the effect of a track at its current level.
func (u *Upgrades) Describe(t Track) string {
	switch t {
	case TrackEngine:
		return fmt.Sprintf("top speed x%.1f", u.SpeedBonus())
	case TrackFuelTank:
		return fmt.Sprintf("%.0f gal tank", u.TankCapacity())
	case TrackFrame:
		return fmt.Sprintf("%.0f%% damage reduction", (1-u.CollisionFactor())*100)
	}
	return ""
}

func (u *Upgrades) costs(t Track) []int {
	switch t {
	case TrackEngine:
		return u.cfg.Engine.Costs
	case TrackFuelTank:
		return u.cfg.FuelTank.Costs
	case TrackFrame:
		return u.cfg.Frame.Costs
	}
	return nil
}

// at returns values[level-1], or def when the level is out of range.
func at(values []float64, level int, def float64) float64 {
	if level < 1 || level > len(values) {
		return def
	}
	return values[level-1]
}
