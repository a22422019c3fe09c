package blocks

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/blockfall/internal/config"
)

// ErrInvalidOptions is wrapped by every error returned from Options.Validate.
var ErrInvalidOptions = errors.New("blocks: invalid options")

// Smallest playable field: a horizontal line must fit at the spawn column,
// and a freshly spawned piece must be able to fall at least once.
const (
	minCols = 5
	minRows = 4
)

// Options configures the field geometry and the difficulty curve.
type Options struct {
	Width               int // Field width in layout units
	Height              int // Field height in layout units
	BoxSize             int // Size of one cell in layout units
	InitialIntervalMs   int // Gravity interval at level 1
	LevelUpEveryNLocks  int // Locks per level
	IntervalDecrementMs int // Interval reduction per level
	MinIntervalMs       int // Interval floor
}

// DefaultOptions returns the classic 300x500 field with 20-unit boxes.
func DefaultOptions() Options {
	return Options{
		Width:               300,
		Height:              500,
		BoxSize:             20,
		InitialIntervalMs:   500,
		LevelUpEveryNLocks:  5,
		IntervalDecrementMs: 20,
		MinIntervalMs:       100,
	}
}

// OptionsFromConfig maps a loaded configuration to engine options.
func OptionsFromConfig(cfg config.BlocksConfig) Options {
	return Options{
		Width:               cfg.Field.Width,
		Height:              cfg.Field.Height,
		BoxSize:             cfg.Field.BoxSize,
		InitialIntervalMs:   cfg.Timing.InitialIntervalMs,
		LevelUpEveryNLocks:  cfg.Timing.LevelUpEveryNLocks,
		IntervalDecrementMs: cfg.Timing.IntervalDecrementMs,
		MinIntervalMs:       cfg.Timing.MinIntervalMs,
	}
}

// Cols returns the number of columns in the field.
func (o Options) Cols() int {
	if o.BoxSize <= 0 {
		return 0
	}
	return o.Width / o.BoxSize
}

// Rows returns the number of rows in the field.
func (o Options) Rows() int {
	if o.BoxSize <= 0 {
		return 0
	}
	return o.Height / o.BoxSize
}

// Validate reports every problem with the options at once.
func (o Options) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidOptions, fmt.Sprintf(format, args...)))
	}

	if o.BoxSize <= 0 {
		invalid("box size must be positive, got %d", o.BoxSize)
	} else {
		if o.Cols() < minCols {
			invalid("field must be at least %d cells wide, got %d", minCols, o.Cols())
		}
		if o.Rows() < minRows {
			invalid("field must be at least %d cells tall, got %d", minRows, o.Rows())
		}
	}
	if o.InitialIntervalMs <= 0 {
		invalid("initial interval must be positive, got %dms", o.InitialIntervalMs)
	}
	if o.MinIntervalMs <= 0 {
		invalid("minimum interval must be positive, got %dms", o.MinIntervalMs)
	}
	if o.MinIntervalMs > o.InitialIntervalMs {
		invalid("minimum interval %dms exceeds initial interval %dms", o.MinIntervalMs, o.InitialIntervalMs)
	}
	if o.IntervalDecrementMs < 0 {
		invalid("interval decrement must not be negative, got %dms", o.IntervalDecrementMs)
	}
	if o.LevelUpEveryNLocks <= 0 {
		invalid("locks per level must be positive, got %d", o.LevelUpEveryNLocks)
	}

	return errors.Join(errs...)
}

// intervalFor returns the gravity interval after lowering current by one
// level step, never going below the floor.
func (o Options) intervalFor(current time.Duration) time.Duration {
	next := current - time.Duration(o.IntervalDecrementMs)*time.Millisecond
	floor := time.Duration(o.MinIntervalMs) * time.Millisecond
	if next < floor {
		return floor
	}
	return next
}
