// Package config provides YAML-based tuning for the haul game: world
// layout, truck handling, fuel and economy constants, contract generation,
// truck upgrades, the city list and difficulty progression.
package config

import "github.com/vovakirdan/heavy-haul/internal/core"

// HaulConfig contains all tuning for one game mode. Career and sprint share
// the type and differ only in values.
type HaulConfig struct {
	World      WorldConfig      `yaml:"world"`
	Roads      []core.RectF     `yaml:"roads"`
	Bridges    []BridgeConfig   `yaml:"bridges"`
	Stations   []StationConfig  `yaml:"fuel_stations"`
	Truck      TruckConfig      `yaml:"truck"`
	Fuel       FuelConfig       `yaml:"fuel"`
	Economy    EconomyConfig    `yaml:"economy"`
	Contracts  ContractsConfig  `yaml:"contracts"`
	Mission    MissionConfig    `yaml:"mission"`
	OffRoad    OffRoadConfig    `yaml:"off_road"`
	Controls   ControlsConfig   `yaml:"controls"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig describes the playfield in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Margin float64 `yaml:"margin"` // Truck center keeps this distance from the edges
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	// MapArea is the region city coordinates are projected into when a
	// contract destination is placed in the world.
	MapArea  core.RectF     `yaml:"map_area"`
	Delivery DeliveryConfig `yaml:"delivery"`
}

// DeliveryConfig defines the circular drop-off zone.
type DeliveryConfig struct {
	Radius float64 `yaml:"radius"`
	// Fixed places the zone at (X, Y) regardless of the contract.
	Fixed bool    `yaml:"fixed"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
}

// BridgeConfig defines a low-clearance overpass.
type BridgeConfig struct {
	Name      string     `yaml:"name"`
	Zone      core.RectF `yaml:"zone"`   // Danger zone checked for strikes
	Visual    core.RectF `yaml:"visual"` // Drawn structure, wider than the zone
	Clearance float64    `yaml:"clearance"`
}

// StationConfig defines a fuel station pad.
type StationConfig struct {
	Name string     `yaml:"name"`
	Rect core.RectF `yaml:"rect"`
}

// TruckConfig defines truck handling, all per tick.
type TruckConfig struct {
	Length            float64 `yaml:"length"`
	Width             float64 `yaml:"width"`
	Height            float64 `yaml:"height"` // Clearance height checked against bridges
	MaxSpeed          float64 `yaml:"max_speed"`
	Acceleration      float64 `yaml:"acceleration"`
	Deceleration      float64 `yaml:"deceleration"`
	TurnSpeed         float64 `yaml:"turn_speed"` // Degrees per tick
	ReverseMultiplier float64 `yaml:"reverse_multiplier"`
	TurnThreshold     float64 `yaml:"turn_threshold"`
	MoveThreshold     float64 `yaml:"move_threshold"`
}

// FuelConfig defines fuel drain and refuelling.
type FuelConfig struct {
	Start             float64 `yaml:"start"`
	DrainRate         float64 `yaml:"drain_rate"`
	SpeedDivisor      float64 `yaml:"speed_divisor"`
	OffRoadMultiplier float64 `yaml:"off_road_multiplier"`
	DrainThreshold    float64 `yaml:"drain_threshold"` // No drain at or below this speed
	StationReach      float64 `yaml:"station_reach"`   // Added to station width and height
	RefuelCost        int     `yaml:"refuel_cost"`     // Flat price, used when PricePerUnit is 0
	PricePerUnit      float64 `yaml:"price_per_unit"`
}

// EconomyConfig defines money flow.
type EconomyConfig struct {
	StartingCash       int     `yaml:"starting_cash"`
	BaseRatePerMile    float64 `yaml:"base_rate_per_mile"`
	BridgePenalty      int     `yaml:"bridge_penalty"`
	TimeBonusPerMinute float64 `yaml:"time_bonus_per_minute"`
}

// ContractsConfig defines contract offer generation.
type ContractsConfig struct {
	Offers        int          `yaml:"offers"`
	ClassWeights  ClassWeights `yaml:"class_weights"`
	MinBaseHours  int          `yaml:"min_base_hours"`
	MilesPerHour  float64      `yaml:"miles_per_hour"`
	SlackMinHours int          `yaml:"slack_min_hours"`
	SlackMaxHours int          `yaml:"slack_max_hours"`
	MinDeadline   int          `yaml:"min_deadline"`
	MaxDeadline   int          `yaml:"max_deadline"`
}

// ClassWeights are relative draw weights for the cargo classes.
type ClassWeights struct {
	Standard  float64 `yaml:"standard"`
	Oversize  float64 `yaml:"oversize"`
	Superload float64 `yaml:"superload"`
}

// MissionConfig defines how a run is timed and judged.
type MissionConfig struct {
	// TimeScale converts real seconds into game seconds. At 60 one real
	// second is one game minute, so a 5 hour deadline lasts 5 real minutes.
	TimeScale float64 `yaml:"time_scale"`
	// TimeLimit overrides the contract deadline, in game seconds.
	TimeLimit         float64 `yaml:"time_limit"`
	FixedPay          int     `yaml:"fixed_pay"` // Replaces the contract payout when set
	BridgeStrikeFails bool    `yaml:"bridge_strike_fails"`
	EmptyTankFails    bool    `yaml:"empty_tank_fails"`
	WarnBelowSeconds  float64 `yaml:"warn_below_seconds"` // Timer turns red, real seconds
}

// OffRoadConfig defines the off-road penalties.
type OffRoadConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"`
	WarningSeconds  float64 `yaml:"warning_seconds"`
}

// ControlsConfig defines input handling.
type ControlsConfig struct {
	// HoldTicks is how long a driving key press stays active. Terminals
	// report presses, not held keys.
	HoldTicks int `yaml:"hold_ticks"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a career.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "deliveries" or "none"
	MaxAt int    `yaml:"max_at"` // Deliveries at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes at max level.
type ScalingConfig struct {
	DeadlineReduction int     `yaml:"deadline_reduction"` // Hours removed from generated deadlines
	DrainMultiplier   float64 `yaml:"drain_multiplier"`   // Extra fuel drain fraction
}

// UpgradesConfig lists the purchasable truck upgrade tracks.
type UpgradesConfig struct {
	Engine   EngineTrack   `yaml:"engine"`
	FuelTank FuelTankTrack `yaml:"fuel_tank"`
	Frame    FrameTrack    `yaml:"frame"`
}

// EngineTrack raises the truck's top speed.
type EngineTrack struct {
	Levels       []int     `yaml:"levels"`
	Costs        []int     `yaml:"costs"`
	SpeedBonuses []float64 `yaml:"speed_bonuses"`
}

// FuelTankTrack enlarges the tank so each percent lasts longer.
type FuelTankTrack struct {
	Levels     []int     `yaml:"levels"`
	Costs      []int     `yaml:"costs"`
	Capacities []float64 `yaml:"capacities"`
}

// FrameTrack reduces collision penalties.
type FrameTrack struct {
	Levels             []int     `yaml:"levels"`
	Costs              []int     `yaml:"costs"`
	CollisionReduction []float64 `yaml:"collision_reduction"`
}

// City is a named map location contracts start or end at.
type City struct {
	Name string  `yaml:"name"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	case "":
		return DifficultyNormal, true
	}
	return "", false
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
