package blocks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/core"
)

func newTestEngine(t *testing.T, cols, rows int, next func() Kind) (*Engine, *recorder) {
	t.Helper()
	rec := newRecorder()
	e, err := New(fieldOptions(cols, rows), rec, rec)
	require.NoError(t, err)
	if next != nil {
		e.nextKind = next
	}
	return e, rec
}

// requireInSync checks that the drawn surface equals the locked cells plus
// the active piece.
func requireInSync(t *testing.T, e *Engine, rec *recorder) {
	t.Helper()
	want := make(map[Cell]int)
	for r := 0; r < e.grid.Rows(); r++ {
		for c := 0; c < e.grid.Cols(); c++ {
			if e.grid.Occupied(Cell{c, r}) {
				want[Cell{c, r}]++
			}
		}
	}
	if p, ok := e.Active(); ok {
		for _, c := range p.Cells() {
			want[c]++
		}
	}
	require.Equal(t, want, rec.drawn())
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.Width = 40

	_, err := New(opts, nil, nil)
	require.ErrorIs(t, err, ErrInvalidOptions)
}

func TestStartSpawnsPiece(t *testing.T) {
	e, rec := newTestEngine(t, 15, 25, always(TWedge))
	assert.Equal(t, PhaseSpawning, e.Phase())

	e.Start()

	p, ok := e.Active()
	require.True(t, ok)
	assert.Equal(t, TWedge, p.Kind())
	assert.Equal(t, Cell{Col: 6, Row: 0}, p.Origin())
	assert.Equal(t, PhaseFalling, e.Phase())
	assert.Equal(t, 4, rec.draws)
	assert.Equal(t, []int{0}, rec.scores)
	assert.Equal(t, []int{1}, rec.levels)
	assert.Equal(t, 500*time.Millisecond, e.FallInterval())
	requireInSync(t, e, rec)
}

func TestCommandsMoveActivePiece(t *testing.T) {
	e, rec := newTestEngine(t, 10, 20, always(LeftL))
	e.Start()
	start, _ := e.Active()

	require.True(t, e.Left())
	require.True(t, e.SoftDrop())
	require.True(t, e.Right())
	require.True(t, e.Right())

	p, _ := e.Active()
	assert.Equal(t, start.Origin().Add(Cell{Col: 1, Row: 1}), p.Origin())
	requireInSync(t, e, rec)

	require.True(t, e.Rotate())
	requireInSync(t, e, rec)
}

func TestCommandsRejectedAtWalls(t *testing.T) {
	e, rec := newTestEngine(t, 5, 6, always(Line))
	e.Start()

	// Line spans columns 1-4 of a 5-wide field.
	assert.False(t, e.Right())
	assert.True(t, e.Left())
	assert.False(t, e.Left())
	// Vertical line would poke above the top.
	assert.False(t, e.Rotate())

	p, _ := e.Active()
	assert.Equal(t, Cell{Col: 0, Row: 0}, p.Origin())
	requireInSync(t, e, rec)
}

func TestSoftDropNeverLocks(t *testing.T) {
	e, _ := newTestEngine(t, 5, 6, always(Square))
	e.Start()

	for e.SoftDrop() {
	}
	p, ok := e.Active()
	require.True(t, ok)
	assert.Equal(t, 4, p.Origin().Row)
	assert.Zero(t, e.grid.Len())
	assert.Equal(t, PhaseFalling, e.Phase())
}

func TestCommandsIgnoredOutsideFalling(t *testing.T) {
	e, rec := newTestEngine(t, 10, 20, always(TWedge))

	assert.False(t, e.Left())
	assert.False(t, e.Rotate())
	assert.Equal(t, TickResult{}, e.Tick())
	assert.Zero(t, rec.draws)

	e.Start()
	require.True(t, e.TogglePause())
	assert.False(t, e.Left())
	assert.False(t, e.SoftDrop())
	assert.Equal(t, TickResult{}, e.Tick())

	require.True(t, e.TogglePause())
	assert.True(t, e.Left())
}

func TestEveryTickMovesOrLocks(t *testing.T) {
	e, rec := newTestEngine(t, 10, 12, nil)
	e.Seed(99)
	e.Start()

	locks := 0
	for i := 0; i < 5000 && e.Phase() != PhaseGameOver; i++ {
		before, _ := e.Active()
		res := e.Tick()
		require.NotEqual(t, res.Moved, res.Locked, "tick %d", i)
		if res.Moved {
			after, _ := e.Active()
			assert.Equal(t, before.Origin().Add(Cell{Col: 0, Row: 1}), after.Origin())
		} else {
			locks++
		}
		if e.Phase() == PhaseFalling {
			requireInSync(t, e, rec)
		}
		// Nudge pieces around so the stack is uneven.
		switch i % 7 {
		case 1:
			e.Left()
		case 3:
			e.Rotate()
		case 5:
			e.Right()
			e.Right()
		}
	}

	assert.Equal(t, PhaseGameOver, e.Phase())
	assert.Positive(t, locks)
	assert.Len(t, rec.gameOvers, 1)
}

func TestLockClearsAndScores(t *testing.T) {
	e, rec := newTestEngine(t, 5, 12, always(Line))
	e.Start()
	fillRow(e.grid, 10, 2)
	e.grid.place(Cell{0, 5}, core.ColorRed)

	// Stand the line up in column 2.
	require.True(t, e.SoftDrop())
	require.True(t, e.SoftDrop())
	require.True(t, e.Rotate())
	require.True(t, e.Left())

	var res TickResult
	for !res.Locked {
		res = e.Tick()
	}

	assert.Equal(t, 1, res.Lines)
	assert.False(t, res.GameOver)
	assert.Equal(t, 10, e.State().Score)
	assert.Equal(t, 1, e.State().Lines)
	assert.True(t, e.grid.Occupied(Cell{0, 6}), "cell above the cleared row moved down")
	assert.True(t, e.grid.Occupied(Cell{2, 10}))
	assert.False(t, e.grid.Occupied(Cell{1, 10}))
	assert.Equal(t, 10, rec.scores[len(rec.scores)-1])
	requireInSync(t, e, rec)
}

func TestScoreUsesLevelAndLineCount(t *testing.T) {
	e, rec := newTestEngine(t, 5, 8, always(Square))
	e.Start()
	fillRow(e.grid, 7, 0, 1)
	fillRow(e.grid, 6, 0, 1)
	e.level = 3

	require.True(t, e.Left())
	var res TickResult
	for !res.Locked {
		res = e.Tick()
	}

	assert.Equal(t, 2, res.Lines)
	assert.Equal(t, 10*3*3*2*2, e.State().Score)
	assert.Zero(t, e.grid.Len())
	requireInSync(t, e, rec)
}

func TestLevelUpEveryFiveLocks(t *testing.T) {
	e, rec := newTestEngine(t, 5, 12, always(Line))
	e.Start()

	locks := 0
	for locks < 5 {
		if e.Tick().Locked {
			locks++
		}
		if locks < 5 {
			assert.Equal(t, 1, e.State().Level)
		}
	}

	st := e.State()
	assert.Equal(t, 2, st.Level)
	assert.Zero(t, st.LocksSinceLevelUp)
	assert.Equal(t, 480*time.Millisecond, e.FallInterval())
	assert.Equal(t, 2, rec.levels[len(rec.levels)-1])
	assert.Zero(t, st.Score)
}

func TestIntervalStopsAtFloor(t *testing.T) {
	rec := newRecorder()
	opts := fieldOptions(5, 30)
	opts.InitialIntervalMs = 130
	opts.LevelUpEveryNLocks = 1
	e, err := New(opts, rec, rec)
	require.NoError(t, err)
	e.nextKind = always(Line)
	e.Start()

	for locks := 0; locks < 4; {
		if e.Tick().Locked {
			locks++
		}
	}

	assert.Equal(t, 5, e.State().Level)
	assert.Equal(t, 100*time.Millisecond, e.FallInterval())
}

func TestGameOverWhenSpawnCannotFall(t *testing.T) {
	e, rec := newTestEngine(t, 5, 6, always(Line))
	e.Start()
	fillRow(e.grid, 2, 0)

	// The first line settles on row 1; the next one cannot leave row 0.
	assert.True(t, e.Tick().Moved)
	res := e.Tick()
	assert.True(t, res.Locked)
	assert.True(t, res.GameOver)

	assert.Equal(t, PhaseGameOver, e.Phase())
	_, ok := e.Active()
	assert.False(t, ok)
	require.Len(t, rec.gameOvers, 1)
	assert.Zero(t, rec.gameOvers[0])

	for range 10 {
		assert.Equal(t, TickResult{}, e.Tick())
	}
	assert.False(t, e.Left())
	assert.False(t, e.TogglePause())
	assert.Len(t, rec.gameOvers, 1)
}

func TestGameOverFromStacking(t *testing.T) {
	e, rec := newTestEngine(t, 5, 4, always(Line))
	e.Start()

	var last TickResult
	ticks := 0
	for e.Phase() != PhaseGameOver {
		last = e.Tick()
		ticks++
		require.Less(t, ticks, 100)
	}

	assert.True(t, last.Locked)
	assert.True(t, last.GameOver)
	assert.Len(t, rec.gameOvers, 1)
	assert.Zero(t, e.grid.Len(), "grid is reset at game over")
	assert.Empty(t, rec.drawn(), "surface is cleared at game over")
	assert.Equal(t, 2, rec.clears, "one clear at start, one at game over")

	e.Tick()
	assert.Len(t, rec.gameOvers, 1)
}

func TestRestartAfterGameOver(t *testing.T) {
	e, rec := newTestEngine(t, 5, 4, always(Line))
	e.Start()
	firstID := e.ID()
	for e.Phase() != PhaseGameOver {
		e.Tick()
	}

	require.True(t, e.Handle(core.ActionRestart))

	st := e.State()
	assert.Equal(t, PhaseFalling, st.Phase)
	assert.Zero(t, st.Score)
	assert.Equal(t, 1, st.Level)
	assert.NotEqual(t, firstID, e.ID())
	requireInSync(t, e, rec)
}

func TestHandleRestartIgnoredWhilePlaying(t *testing.T) {
	e, _ := newTestEngine(t, 10, 20, always(TWedge))
	e.Start()
	id := e.ID()

	assert.False(t, e.Handle(core.ActionRestart))
	assert.Equal(t, id, e.ID())
}

func TestHandleDispatch(t *testing.T) {
	e, _ := newTestEngine(t, 10, 20, always(TWedge))
	e.Start()
	start, _ := e.Active()

	assert.True(t, e.Handle(core.ActionLeft))
	assert.True(t, e.Handle(core.ActionSoftDrop))
	assert.True(t, e.Handle(core.ActionRight))
	assert.True(t, e.Handle(core.ActionRotate))
	assert.False(t, e.Handle(core.ActionNone))
	assert.False(t, e.Handle(core.ActionQuit))

	p, _ := e.Active()
	assert.Equal(t, start.Origin().Add(Cell{Col: 0, Row: 1}), p.Origin())

	assert.True(t, e.Handle(core.ActionPause))
	assert.True(t, e.Paused())
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		e, _ := newTestEngine(t, 10, 20, nil)
		e.Seed(12345)
		e.Start()
		for i := range 400 {
			switch i % 5 {
			case 0:
				e.Left()
			case 2:
				e.Rotate()
			}
			e.Tick()
		}
		return e.Snapshot()
	}

	s1 := run()
	s2 := run()
	assert.Equal(t, s1, s2)
	assert.NotZero(t, s1.Tick)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "falling", PhaseFalling.String())
	assert.Equal(t, "game_over", PhaseGameOver.String())
	assert.Equal(t, "unknown", Phase(42).String())
}
