package config

import (
	_ "embed"

	"github.com/vovakirdan/heavy-haul/internal/core"
)

//go:embed defaults/haul.yaml
var defaultHaulYAML []byte

//go:embed defaults/sprint.yaml
var defaultSprintYAML []byte

//go:embed defaults/upgrades.yaml
var defaultUpgradesYAML []byte

// DefaultHaulConfig returns the built-in career configuration.
func DefaultHaulConfig() HaulConfig {
	return HaulConfig{
		World: WorldConfig{
			Width:   800,
			Height:  600,
			Margin:  30,
			StartX:  100,
			StartY:  300,
			MapArea: core.NewRectF(300, 100, 450, 400),
			Delivery: DeliveryConfig{
				Radius: 50,
			},
		},
		Roads: []core.RectF{
			core.NewRectF(0, 250, 800, 100),   // Interstate
			core.NewRectF(150, 100, 100, 200), // North spur
			core.NewRectF(550, 300, 100, 200), // South spur
		},
		Bridges: []BridgeConfig{
			{
				Name:      "Low Bridge",
				Zone:      core.NewRectF(400, 250, 80, 20),
				Visual:    core.NewRectF(400, 230, 80, 40),
				Clearance: 12,
			},
		},
		Stations: []StationConfig{
			{Name: "West Fuel", Rect: core.NewRectF(100, 180, 80, 60)},
			{Name: "South Fuel", Rect: core.NewRectF(620, 400, 80, 60)},
		},
		Truck: TruckConfig{
			Length:            60,
			Width:             30,
			Height:            15,
			MaxSpeed:          4.0,
			Acceleration:      0.15,
			Deceleration:      0.1,
			TurnSpeed:         2.5,
			ReverseMultiplier: 0.5,
			TurnThreshold:     0.1,
			MoveThreshold:     0.05,
		},
		Fuel: FuelConfig{
			Start:             100,
			DrainRate:         0.008,
			SpeedDivisor:      5,
			OffRoadMultiplier: 1.5,
			DrainThreshold:    0.1,
			StationReach:      40,
			RefuelCost:        50,
		},
		Economy: EconomyConfig{
			StartingCash:       10000,
			BaseRatePerMile:    6.0,
			BridgePenalty:      5000,
			TimeBonusPerMinute: 10,
		},
		Contracts: ContractsConfig{
			Offers: 3,
			ClassWeights: ClassWeights{
				Standard:  0.5,
				Oversize:  0.3,
				Superload: 0.2,
			},
			MinBaseHours:  3,
			MilesPerHour:  15,
			SlackMinHours: 2,
			SlackMaxHours: 6,
			MinDeadline:   5,
			MaxDeadline:   15,
		},
		Mission: MissionConfig{
			TimeScale:        60,
			EmptyTankFails:   true,
			WarnBelowSeconds: 120,
		},
		OffRoad: OffRoadConfig{
			SpeedMultiplier: 0.5,
			WarningSeconds:  2,
		},
		Controls: ControlsConfig{
			HoldTicks: 30,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "deliveries",
				MaxAt: 20,
			},
			Scaling: ScalingConfig{
				DeadlineReduction: 3,
				DrainMultiplier:   0.5,
			},
		},
	}
}

// DefaultSprintConfig returns the built-in single timed run configuration.
func DefaultSprintConfig() HaulConfig {
	cfg := DefaultHaulConfig()
	cfg.World.StartX = 150
	cfg.World.Delivery = DeliveryConfig{Radius: 40, Fixed: true, X: 650, Y: 300}
	cfg.Fuel.DrainRate = 0.03
	cfg.Fuel.RefuelCost = 0
	cfg.Fuel.PricePerUnit = 4.50
	cfg.Economy.TimeBonusPerMinute = 600 // $10 per second
	cfg.Mission = MissionConfig{
		TimeScale:         1,
		TimeLimit:         8 * 60,
		FixedPay:          2500,
		BridgeStrikeFails: true,
		WarnBelowSeconds:  120,
	}
	cfg.Difficulty = DifficultyConfig{
		Progression: ProgressionConfig{Type: "none"},
	}
	return cfg
}

// DefaultUpgradesConfig returns the built-in upgrade tracks.
func DefaultUpgradesConfig() UpgradesConfig {
	return UpgradesConfig{
		Engine: EngineTrack{
			Levels:       []int{1, 2, 3},
			Costs:        []int{5000, 12000, 25000},
			SpeedBonuses: []float64{1.0, 1.3, 1.6},
		},
		FuelTank: FuelTankTrack{
			Levels:     []int{1, 2, 3},
			Costs:      []int{3000, 8000, 15000},
			Capacities: []float64{100, 200, 300},
		},
		Frame: FrameTrack{
			Levels:             []int{1, 2, 3},
			Costs:              []int{4000, 10000, 20000},
			CollisionReduction: []float64{1.0, 0.75, 0.5},
		},
	}
}

// DefaultCities returns the city list used when no city file is found.
func DefaultCities() []City {
	return []City{
		{Name: "Tampa", X: 100, Y: 420},
		{Name: "Atlanta", X: 240, Y: 280},
		{Name: "Dallas", X: 120, Y: 360},
		{Name: "Phoenix", X: 60, Y: 380},
	}
}

// GetDefaultYAML returns the embedded default YAML for a config name.
func GetDefaultYAML(name string) []byte {
	switch name {
	case "haul":
		return defaultHaulYAML
	case "sprint":
		return defaultSprintYAML
	case "upgrades":
		return defaultUpgradesYAML
	default:
		return nil
	}
}
