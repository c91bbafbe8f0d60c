package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FocusConfig tunes the focus-session XP rule. CancelMinMinutes is the
// minimum elapsed time for a cancelled session to still earn XP; earlier
// releases used 5 minutes, current releases use 15, so it stays configurable
// rather than hardcoded.
type FocusConfig struct {
	CancelMinMinutes int `yaml:"cancel_min_minutes"`
}

type SeasonConfig struct {
	LengthDays int `yaml:"length_days"`
}

type DailyConfig struct {
	XPGoal int `yaml:"xp_goal"`
}

type AutosaveConfig struct {
	IntervalSeconds int `yaml:"interval_seconds"`
}

// Config holds the tunable constants of the progression engine. Values not
// present in the config file keep their defaults.
type Config struct {
	Focus    FocusConfig    `yaml:"focus"`
	Season   SeasonConfig   `yaml:"season"`
	Daily    DailyConfig    `yaml:"daily"`
	Autosave AutosaveConfig `yaml:"autosave"`
}

func Default() Config {
	return Config{
		Focus:    FocusConfig{CancelMinMinutes: 15},
		Season:   SeasonConfig{LengthDays: 42},
		Daily:    DailyConfig{XPGoal: 15},
		Autosave: AutosaveConfig{IntervalSeconds: 30},
	}
}

// Load reads the YAML tuning config at path, falling back to defaults when
// the file does not exist. A present but malformed file is an error rather
// than a silent fallback.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Default(), err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.Focus.CancelMinMinutes < 0 {
		return fmt.Errorf("focus.cancel_min_minutes must not be negative (got %d)", c.Focus.CancelMinMinutes)
	}
	if c.Season.LengthDays < 1 {
		return fmt.Errorf("season.length_days must be at least 1 (got %d)", c.Season.LengthDays)
	}
	if c.Daily.XPGoal < 1 {
		return fmt.Errorf("daily.xp_goal must be at least 1 (got %d)", c.Daily.XPGoal)
	}
	if c.Autosave.IntervalSeconds < 1 {
		return fmt.Errorf("autosave.interval_seconds must be at least 1 (got %d)", c.Autosave.IntervalSeconds)
	}
	return nil
}
