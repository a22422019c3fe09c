package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets returns all presets in increasing difficulty, fixed last.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset resolves a preset name. An empty name means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "", nil
	}
	for _, p := range Presets() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
}

// ApplyPreset adjusts the timing section for a difficulty preset.
// Normal resets the curve to the defaults; fixed keeps the start speed and
// disables speed-ups.
func ApplyPreset(cfg *BlocksConfig, preset DifficultyPreset) {
	def := DefaultBlocksConfig().Timing

	switch preset {
	case DifficultyEasy:
		cfg.Timing.InitialIntervalMs = 700
		cfg.Timing.IntervalDecrementMs = def.IntervalDecrementMs
	case DifficultyNormal:
		cfg.Timing.InitialIntervalMs = def.InitialIntervalMs
		cfg.Timing.IntervalDecrementMs = def.IntervalDecrementMs
	case DifficultyHard:
		cfg.Timing.InitialIntervalMs = 300
		cfg.Timing.IntervalDecrementMs = 25
	case DifficultyFixed:
		cfg.Timing.IntervalDecrementMs = 0
	}

	// Keep the floor reachable from the new start.
	if cfg.Timing.MinIntervalMs > cfg.Timing.InitialIntervalMs {
		cfg.Timing.MinIntervalMs = cfg.Timing.InitialIntervalMs
	}
}
