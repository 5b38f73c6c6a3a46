// Package config loads settings for the measure command.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/phanxgames/measure"
	"gopkg.in/yaml.v3"
)

// Config holds the display preferences of the measure command.
type Config struct {
	// Decimals printed after the point; -1 prints the shortest exact form.
	Precision int `yaml:"precision"`

	// Units used when a command is not told which unit to print in.
	DistanceUnit     measure.DistanceUnit     `yaml:"distance_unit"`
	SpeedUnit        measure.SpeedUnit        `yaml:"speed_unit"`
	MassUnit         measure.MassUnit         `yaml:"mass_unit"`
	AccelerationUnit measure.AccelerationUnit `yaml:"acceleration_unit"`

	LogLevel string `yaml:"log_level"` // debug, info, warn, error
}

// Default returns metric units, two decimals and info logging.
func Default() Config {
	return Config{
		Precision:        2,
		DistanceUnit:     measure.Meters,
		SpeedUnit:        measure.MetersPerSecond,
		MassUnit:         measure.Kilograms,
		AccelerationUnit: measure.MetersPerSecondSquared,
		LogLevel:         "info",
	}
}

// Load reads config from a YAML file. Keys missing from the file keep their
// defaults. If the file doesn't exist, returns defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Precision < -1 {
		return cfg, fmt.Errorf("config %s: precision %d: %w", path, cfg.Precision, measure.ErrInvalidArgument)
	}

	return cfg, nil
}

// SlogLevel maps LogLevel to a slog.Level, falling back to info.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
