package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultCitiesPath is where the city list is looked up when no path is given.
const DefaultCitiesPath = "data/cities.json"

// LoadHaul loads the career configuration.
// Search order: customPath -> ~/.haul/configs/haul.yaml -> ./configs/haul.yaml -> embedded default
func LoadHaul(customPath string) (HaulConfig, error) {
	return loadYAML("haul", customPath, DefaultHaulConfig)
}

// LoadSprint loads the sprint configuration.
// Search order: customPath -> ~/.haul/configs/sprint.yaml -> ./configs/sprint.yaml -> embedded default
func LoadSprint(customPath string) (HaulConfig, error) {
	return loadYAML("sprint", customPath, DefaultSprintConfig)
}

// LoadUpgrades loads the upgrade tracks.
// Search order: customPath -> ~/.haul/configs/upgrades.yaml -> ./configs/upgrades.yaml -> embedded default
func LoadUpgrades(customPath string) (UpgradesConfig, error) {
	cfg, err := loadYAML("upgrades", customPath, DefaultUpgradesConfig)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadYAML decodes a named config on top of its hard-coded defaults, so a
// file only needs the keys it changes. An explicit path must exist and
// parse; the implicit locations are skipped when missing or malformed.
func loadYAML[T any](name, customPath string, defaults func() T) (T, error) {
	filename := name + ".yaml"

	if customPath != "" {
		cfg := defaults()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{filepath.Join("configs", filename)}
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := defaults()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	cfg := defaults()
	if err := yaml.Unmarshal(GetDefaultYAML(name), &cfg); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".haul", "configs", filename)
}

type citiesFile struct {
	Cities []City `json:"cities"`
}

// LoadCities reads a city list of the form {"cities":[{"name":..,"x":..,"y":..}]}.
// A missing file yields DefaultCities; an unreadable or malformed file is an
// error. An empty path means DefaultCitiesPath.
func LoadCities(path string) ([]City, error) {
	if path == "" {
		path = DefaultCitiesPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultCities(), nil
		}
		return nil, fmt.Errorf("config: read cities %s: %w", path, err)
	}

	var f citiesFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("config: parse cities %s: %w", path, err)
	}
	if len(f.Cities) < 2 {
		return nil, fmt.Errorf("config: cities %s: need at least 2 cities, got %d", path, len(f.Cities))
	}
	return f.Cities, nil
}

// Validate checks that every track has matching level, cost and bonus lists.
func (u UpgradesConfig) Validate() error {
	tracks := []struct {
		name   string
		levels int
		costs  int
		bonus  int
	}{
		{"engine", len(u.Engine.Levels), len(u.Engine.Costs), len(u.Engine.SpeedBonuses)},
		{"fuel_tank", len(u.FuelTank.Levels), len(u.FuelTank.Costs), len(u.FuelTank.Capacities)},
		{"frame", len(u.Frame.Levels), len(u.Frame.Costs), len(u.Frame.CollisionReduction)},
	}
	for _, t := range tracks {
		if t.levels == 0 {
			return fmt.Errorf("config: upgrades %s: no levels", t.name)
		}
		if t.costs != t.levels || t.bonus != t.levels {
			return fmt.Errorf("config: upgrades %s: %d levels, %d costs, %d bonuses", t.name, t.levels, t.costs, t.bonus)
		}
	}
	return nil
}

// ApplyHaulPreset modifies the config based on a difficulty preset.
func ApplyHaulPreset(cfg *HaulConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Economy.StartingCash = 15000
		cfg.Controls.HoldTicks = 36
	case DifficultyHard:
		cfg.Economy.StartingCash = 7500
		cfg.Economy.BridgePenalty = cfg.Economy.BridgePenalty * 3 / 2
	}
}
