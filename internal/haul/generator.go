package haul

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/heavy-haul/internal/config"
)

// ErrTooFewCities is returned when a route cannot be drawn.
var ErrTooFewCities = errors.New("haul: need at least two cities to generate contracts")

// Generator draws contract offers from a city list. Output is fully
// determined by the seed.
type Generator struct {
	cities []config.City
	cfg    config.ContractsConfig
	rate   float64
	rng    *rand.Rand
}

// NewGenerator creates a generator over the given cities.
func NewGenerator(cities []config.City, cfg config.ContractsConfig, ratePerMile float64, seed int64) (*Generator, error) {
	if len(cities) < 2 {
		return nil, ErrTooFewCities
	}
	return &Generator{
		cities: cities,
		cfg:    cfg,
		rate:   ratePerMile,
		rng:    rand.New(rand.NewSource(seed)),
	}, nil
}

// Generate returns n offers. deadlineCut hours are removed from each
// deadline before clamping, so harder careers get tighter jobs.
func (g *Generator) Generate(n, deadlineCut int) []Contract {
	return g.generate(n, deadlineCut, g.pickClass)
}

// GenerateClass is Generate with every offer carrying the given class.
func (g *Generator) GenerateClass(n, deadlineCut int, class CargoClass) []Contract {
	return g.generate(n, deadlineCut, func() CargoClass { return class })
}

func (g *Generator) generate(n, deadlineCut int, pick func() CargoClass) []Contract {
	offers := make([]Contract, 0, n)
	for i := 0; i < n; i++ {
		offers = append(offers, g.next(deadlineCut, pick))
	}
	return offers
}

func (g *Generator) next(deadlineCut int, pick func() CargoClass) Contract {
	origin := g.cities[g.rng.Intn(len(g.cities))]

	dests := make([]config.City, 0, len(g.cities)-1)
	for _, c := range g.cities {
		if c.Name != origin.Name {
			dests = append(dests, c)
		}
	}
	if len(dests) == 0 {
		// Every entry shares the origin's name; fall back to any other entry.
		dests = g.cities
	}
	dest := dests[g.rng.Intn(len(dests))]

	class := pick()
	descs := class.Descriptions()
	cargo := descs[g.rng.Intn(len(descs))]

	return NewContract(origin, dest, class, cargo, g.deadline(RouteMiles(origin, dest), deadlineCut), g.rate)
}

func (g *Generator) deadline(miles float64, cut int) int {
	base := 0
	if g.cfg.MilesPerHour > 0 {
		base = int(miles / g.cfg.MilesPerHour)
	}
	if base < g.cfg.MinBaseHours {
		base = g.cfg.MinBaseHours
	}
	slack := g.cfg.SlackMinHours
	if span := g.cfg.SlackMaxHours - g.cfg.SlackMinHours; span > 0 {
		slack += g.rng.Intn(span + 1)
	}
	hours := base + slack - cut
	if hours < g.cfg.MinDeadline {
		hours = g.cfg.MinDeadline
	}
	if hours > g.cfg.MaxDeadline {
		hours = g.cfg.MaxDeadline
	}
	return hours
}

func (g *Generator) pickClass() CargoClass {
	w := g.cfg.ClassWeights
	weights := []float64{w.Standard, w.Oversize, w.Superload}

	total := 0.0
	for _, x := range weights {
		total += x
	}
	if total <= 0 {
		return Standard
	}

	r := g.rng.Float64() * total
	for i, x := range weights {
		if r < x {
			return Classes[i]
		}
		r -= x
	}
	return Classes[len(Classes)-1]
}
