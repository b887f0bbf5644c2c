package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/shopfloor/reflow/internal/domain"
)

// Config is the CLI demo driver's configuration: where its run history
// lives, how it logs, and the default weekly shift calendar scenario
// files fall back to when they don't declare their own shifts.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Store    StoreConfig    `yaml:"store"`
	Schedule ScheduleConfig `yaml:"schedule"`
}

// LoggingConfig controls the CLI driver's log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// StoreConfig points at the run-history database.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// ScheduleConfig carries defaults applied when a scenario file omits them.
type ScheduleConfig struct {
	SearchHorizonDays int             `yaml:"search_horizon_days"`
	DefaultShifts     []domain.Shift  `yaml:"default_shifts"`
}

// Default returns a Config with production-sane defaults, mirroring the
// teacher's NewDefaultConfig: zero-configuration startup, override only
// what you need.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info"},
		Store:   StoreConfig{Path: "./data/reflow-history.db"},
		Schedule: ScheduleConfig{
			SearchHorizonDays: 14,
			DefaultShifts: []domain.Shift{
				{DayOfWeek: 1, StartHour: 8, EndHour: 17},
				{DayOfWeek: 2, StartHour: 8, EndHour: 17},
				{DayOfWeek: 3, StartHour: 8, EndHour: 17},
				{DayOfWeek: 4, StartHour: 8, EndHour: 17},
				{DayOfWeek: 5, StartHour: 8, EndHour: 17},
			},
		},
	}
}

// Load reads a YAML configuration file and overlays it on Default. An
// empty path or a missing file both return the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration is usable before the CLI driver
// starts acting on it.
func (c *Config) Validate() error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level %q, must be one of: debug, info, warn, error", c.Logging.Level)
	}

	if c.Store.Path == "" {
		return fmt.Errorf("store path cannot be empty")
	}

	if c.Schedule.SearchHorizonDays <= 0 {
		return fmt.Errorf("schedule search horizon days must be positive, got %d", c.Schedule.SearchHorizonDays)
	}

	for _, s := range c.Schedule.DefaultShifts {
		if s.DayOfWeek < 0 || s.DayOfWeek > 6 {
			return fmt.Errorf("default shift day of week must be 0-6, got %d", s.DayOfWeek)
		}
		if s.StartHour < 0 || s.EndHour > 24 || s.StartHour >= s.EndHour {
			return fmt.Errorf("default shift hours invalid: start=%d end=%d", s.StartHour, s.EndHour)
		}
	}

	return nil
}
