package haul

import (
	"github.com/vovakirdan/heavy-haul/internal/config"
	"github.com/vovakirdan/heavy-haul/internal/core"
)

// World holds the static map features a mission is played on.
type World struct {
	Width, Height float64
	Roads         []core.RectF
	Bridges       []config.BridgeConfig
	Stations      []Station
}

// Station is a fuel stop. Zone is where the truck can refuel.
type Station struct {
	Name string
	Rect core.RectF
	Zone core.RectF
}

// NewWorld builds the map from configuration.
func NewWorld(cfg config.HaulConfig) *World {
	w := &World{
		Width:   cfg.World.Width,
		Height:  cfg.World.Height,
		Roads:   cfg.Roads,
		Bridges: cfg.Bridges,
	}
	for _, s := range cfg.Stations {
		w.Stations = append(w.Stations, Station{
			Name: s.Name,
			Rect: s.Rect,
			Zone: s.Rect.Inflate(cfg.Fuel.StationReach, cfg.Fuel.StationReach),
		})
	}
	return w
}

// OnRoad reports whether the point lies on any road.
func (w *World) OnRoad(x, y float64) bool {
	for _, r := range w.Roads {
		if r.Contains(x, y) {
			return true
		}
	}
	return false
}

// BridgeStrike returns the first bridge whose danger zone the box touches
// and whose clearance is below the given load height.
func (w *World) BridgeStrike(box core.RectF, height float64) (config.BridgeConfig, bool) {
	for _, b := range w.Bridges {
		if b.Zone.Intersects(box) && height > b.Clearance {
			return b, true
		}
	}
	return config.BridgeConfig{}, false
}

// StationNear returns the station whose refuel zone the box touches.
func (w *World) StationNear(box core.RectF) (Station, bool) {
	for _, s := range w.Stations {
		if s.Zone.Intersects(box) {
			return s, true
		}
	}
	return Station{}, false
}

// DeliveryZone is the circular drop-off area.
type DeliveryZone struct {
	X, Y   float64
	Radius float64
}

// Contains reports whether the truck center is inside the zone.
func (d DeliveryZone) Contains(x, y float64) bool {
	return core.Distance(d.X, d.Y, x, y) < d.Radius
}

// Project maps a city into the world's map area using the bounding box of
// all cities, so every city lands somewhere drivable.
func Project(city config.City, cities []config.City, area core.RectF) (float64, float64) {
	if len(cities) == 0 {
		return area.Center()
	}
	minX, maxX := cities[0].X, cities[0].X
	minY, maxY := cities[0].Y, cities[0].Y
	for _, c := range cities[1:] {
		minX = min(minX, c.X)
		maxX = max(maxX, c.X)
		minY = min(minY, c.Y)
		maxY = max(maxY, c.Y)
	}

	fx, fy := 0.5, 0.5
	if maxX > minX {
		fx = (city.X - minX) / (maxX - minX)
	}
	if maxY > minY {
		fy = (city.Y - minY) / (maxY - minY)
	}
	return area.X + fx*area.W, area.Y + fy*area.H
}
