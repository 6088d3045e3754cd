package haul

import (
	"math"

	"github.com/vovakirdan/heavy-haul/internal/config"
)

// Contract is an offered or accepted delivery job.
type Contract struct {
	Origin        config.City
	Destination   config.City
	Class         CargoClass
	Cargo         string
	DeadlineHours int
	Miles         float64
	Pay           Payout
}

// Payout is the itemised price of a contract.
type Payout struct {
	Base               float64 // Rate times miles
	WeightFactor       float64
	OversizeFactor     float64
	DeadlineMultiplier float64
	Total              int
}

// RouteMiles returns the Manhattan distance between two cities, in miles.
// Map units are tenths of a mile.
func RouteMiles(from, to config.City) float64 {
	return (math.Abs(to.X-from.X) + math.Abs(to.Y-from.Y)) / 10
}

// DeadlineMultiplier rewards tight deadlines.
func DeadlineMultiplier(hours int) float64 {
	switch {
	case hours <= 4:
		return 1.3
	case hours <= 6:
		return 1.15
	default:
		return 1.0
	}
}

// ComputePayout prices a job:
// int(rate * miles * (1 + weight + oversize) * deadline).
func ComputePayout(ratePerMile, miles float64, class CargoClass, hours int) Payout {
	p := Payout{
		Base:               ratePerMile * miles,
		WeightFactor:       class.WeightFactor(),
		OversizeFactor:     class.OversizeFactor(),
		DeadlineMultiplier: DeadlineMultiplier(hours),
	}
	p.Total = int(p.Base * (1 + p.WeightFactor + p.OversizeFactor) * p.DeadlineMultiplier)
	return p
}

// NewContract builds a priced contract between two cities.
func NewContract(origin, dest config.City, class CargoClass, cargo string, hours int, ratePerMile float64) Contract {
	miles := RouteMiles(origin, dest)
	return Contract{
		Origin:        origin,
		Destination:   dest,
		Class:         class,
		Cargo:         cargo,
		DeadlineHours: hours,
		Miles:         miles,
		Pay:           ComputePayout(ratePerMile, miles, class, hours),
	}
}

// Route returns "Origin → Destination".
func (c Contract) Route() string {
	return c.Origin.Name + " → " + c.Destination.Name
}

// DeadlineSeconds is the deadline in game seconds.
func (c Contract) DeadlineSeconds() float64 {
	return float64(c.DeadlineHours) * 3600
}
