package config

import "math"

// DifficultyManager derives per-contract tuning from career progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager. The initial level
// is clamped to [0, 1].
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty level (0.0 to 1.0) after the given number of
// completed deliveries.
func (d *DifficultyManager) Level(deliveries int) float64 {
	if !d.IsEnabled() || d.cfg.Progression.Type != "deliveries" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}
	progress := clampF(float64(deliveries)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// DeadlineReduction returns how many hours to cut from generated deadlines.
func (d *DifficultyManager) DeadlineReduction(deliveries int) int {
	if !d.cfg.Enabled {
		return 0
	}
	return int(d.Level(deliveries) * float64(d.cfg.Scaling.DeadlineReduction))
}

// DrainMultiplier returns the factor applied to fuel drain.
func (d *DifficultyManager) DrainMultiplier(deliveries int) float64 {
	if !d.cfg.Enabled {
		return 1.0
	}
	return 1.0 + d.Level(deliveries)*d.cfg.Scaling.DrainMultiplier
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
