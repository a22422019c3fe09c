package blocks

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick              uint64
	Score             int
	Level             int
	Lines             int
	LocksSinceLevelUp int
	IntervalMs        int64
	Phase             Phase
	Paused            bool
	Locked            int    // Number of locked cells
	ActiveKind        string // Empty when no piece is falling
	ActiveCol         int
	ActiveRow         int
	Board             string // Grid.String of the locked cells
}

// Snapshot returns the current game snapshot.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Tick:              e.tick,
		Score:             e.score,
		Level:             e.level,
		Lines:             e.lines,
		LocksSinceLevelUp: e.locksSinceLevelUp,
		IntervalMs:        e.interval.Milliseconds(),
		Phase:             e.phase,
		Paused:            e.paused,
		Locked:            e.grid.Len(),
		Board:             e.grid.String(),
	}
	if e.hasActive {
		o := e.active.Origin()
		s.ActiveKind = e.active.Kind().String()
		s.ActiveCol = o.Col
		s.ActiveRow = o.Row
	}
	return s
}
