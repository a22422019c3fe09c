package config

import (
	_ "embed"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

// DefaultBlocksConfig returns the hard-coded default configuration. It
// matches the embedded defaults/blocks.yaml.
func DefaultBlocksConfig() BlocksConfig {
	return BlocksConfig{
		Field: FieldConfig{
			Width:   300,
			Height:  500,
			BoxSize: 20,
		},
		Timing: TimingConfig{
			InitialIntervalMs:   500,
			LevelUpEveryNLocks:  5,
			IntervalDecrementMs: 20,
			MinIntervalMs:       100,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBlocksYAML
}
