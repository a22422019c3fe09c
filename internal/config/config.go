// Package config provides YAML-based configuration loading, environment
// overrides and difficulty presets for blockfall.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid is wrapped by every error returned from BlocksConfig.Validate.
var ErrInvalid = errors.New("config: invalid configuration")

// Smallest playable field in cells.
const (
	MinFieldCols = 5
	MinFieldRows = 4
)

// BlocksConfig contains all configuration for the falling-block game.
type BlocksConfig struct {
	Field   FieldConfig   `yaml:"field"`
	Timing  TimingConfig  `yaml:"timing"`
	Logging LoggingConfig `yaml:"logging"`
}

// FieldConfig defines the playfield geometry in layout units.
// The grid is Width/BoxSize columns by Height/BoxSize rows.
type FieldConfig struct {
	Width   int `yaml:"width" env:"BLOCKFALL_WIDTH"`
	Height  int `yaml:"height" env:"BLOCKFALL_HEIGHT"`
	BoxSize int `yaml:"box_size" env:"BLOCKFALL_BOX_SIZE"`
}

// TimingConfig defines gravity speed and its progression.
type TimingConfig struct {
	InitialIntervalMs   int `yaml:"initial_interval_ms" env:"BLOCKFALL_INITIAL_INTERVAL_MS"`
	LevelUpEveryNLocks  int `yaml:"level_up_every_n_locks" env:"BLOCKFALL_LEVEL_UP_EVERY_N_LOCKS"`
	IntervalDecrementMs int `yaml:"interval_decrement_ms" env:"BLOCKFALL_INTERVAL_DECREMENT_MS"`
	MinIntervalMs       int `yaml:"min_interval_ms" env:"BLOCKFALL_MIN_INTERVAL_MS"`
}

// LoggingConfig defines where diagnostics go.
type LoggingConfig struct {
	Level string `yaml:"level" env:"BLOCKFALL_LOG_LEVEL"` // debug, info, warn, error
	File  string `yaml:"file" env:"BLOCKFALL_LOG_FILE"`   // empty discards logs in play mode
}

// Cols returns the number of grid columns.
func (f FieldConfig) Cols() int {
	if f.BoxSize <= 0 {
		return 0
	}
	return f.Width / f.BoxSize
}

// Rows returns the number of grid rows.
func (f FieldConfig) Rows() int {
	if f.BoxSize <= 0 {
		return 0
	}
	return f.Height / f.BoxSize
}

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate reports every problem with the configuration at once.
func (c BlocksConfig) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...)))
	}

	f := c.Field
	if f.Width <= 0 || f.Height <= 0 || f.BoxSize <= 0 {
		invalid("field.width, field.height and field.box_size must be positive")
	} else if f.Cols() < MinFieldCols || f.Rows() < MinFieldRows {
		invalid("field is %dx%d cells, need at least %dx%d", f.Cols(), f.Rows(), MinFieldCols, MinFieldRows)
	}

	t := c.Timing
	if t.InitialIntervalMs <= 0 {
		invalid("timing.initial_interval_ms must be positive")
	}
	if t.MinIntervalMs <= 0 {
		invalid("timing.min_interval_ms must be positive")
	} else if t.MinIntervalMs > t.InitialIntervalMs {
		invalid("timing.min_interval_ms (%d) exceeds timing.initial_interval_ms (%d)", t.MinIntervalMs, t.InitialIntervalMs)
	}
	if t.IntervalDecrementMs < 0 {
		invalid("timing.interval_decrement_ms must not be negative")
	}
	if t.LevelUpEveryNLocks <= 0 {
		invalid("timing.level_up_every_n_locks must be positive")
	}

	if c.Logging.Level != "" {
		level := strings.ToLower(c.Logging.Level)
		found := false
		for _, l := range logLevels {
			if l == level {
				found = true
			}
		}
		if !found {
			invalid("logging.level %q is not one of %s", c.Logging.Level, strings.Join(logLevels, ", "))
		}
	}

	return errors.Join(errs...)
}
