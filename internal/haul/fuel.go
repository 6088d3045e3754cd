package haul

import (
	"errors"
	"math"

	"github.com/vovakirdan/heavy-haul/internal/config"
)

// Refuel refusals.
var (
	ErrTankFull     = errors.New("tank already full")
	ErrNoStation    = errors.New("no fuel station nearby")
	ErrCannotAfford = errors.New("not enough cash")
)

// Tank tracks fuel as a percentage of capacity in [0, 100].
type Tank struct {
	Level float64
	// Capacity scales drain: a 200 unit tank loses half a percent where
	// the stock 100 unit tank loses one.
	Capacity float64
	cfg      config.FuelConfig
}

// NewTank creates a tank at the given level.
func NewTank(cfg config.FuelConfig, level, capacity float64) *Tank {
	if capacity <= 0 {
		capacity = 100
	}
	return &Tank{
		Level:    math.Max(0, math.Min(100, level)),
		Capacity: capacity,
		cfg:      cfg,
	}
}

// DrainFor returns the fuel burned in one tick at the given speed.
// rate * (1 + |speed|/divisor), times the off-road multiplier when off
// road, scaled by tank size and the difficulty multiplier.
func (t *Tank) DrainFor(speed float64, onRoad bool, multiplier float64) float64 {
	s := math.Abs(speed)
	if s <= t.cfg.DrainThreshold {
		return 0
	}
	divisor := t.cfg.SpeedDivisor
	if divisor <= 0 {
		divisor = 5
	}
	d := t.cfg.DrainRate * (1 + s/divisor)
	if !onRoad {
		d *= t.cfg.OffRoadMultiplier
	}
	return d * (100 / t.Capacity) * multiplier
}

// Drain burns fuel for one tick and returns the amount burned.
func (t *Tank) Drain(speed float64, onRoad bool, multiplier float64) float64 {
	d := math.Min(t.DrainFor(speed, onRoad, multiplier), t.Level)
	t.Level -= d
	return d
}

// Empty reports whether the tank is dry.
func (t *Tank) Empty() bool {
	return t.Level <= 0
}

// Full reports whether the tank is topped up.
func (t *Tank) Full() bool {
	return t.Level >= 100
}

// RefuelPrice returns the cost of filling the tank: the flat fee, or the
// missing percentage times the unit price when a unit price is set.
func (t *Tank) RefuelPrice() int {
	if t.cfg.PricePerUnit > 0 {
		return int((100 - t.Level) * t.cfg.PricePerUnit)
	}
	return t.cfg.RefuelCost
}

// Refuel fills the tank if cash covers the price and returns the price.
func (t *Tank) Refuel(cash int) (int, error) {
	if t.Full() {
		return 0, ErrTankFull
	}
	price := t.RefuelPrice()
	if cash < price {
		return 0, ErrCannotAfford
	}
	t.Level = 100
	return price, nil
}

// Fill tops up the tank at no cost.
func (t *Tank) Fill() {
	t.Level = 100
}
