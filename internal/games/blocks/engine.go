// Package blocks implements the falling-block game engine: the locked-cell
// grid, tetromino pieces, the legality check behind every transform, and the
// state machine that drives gravity, locking, line clears and game over.
//
// The engine is single-threaded. A host calls Tick on its gravity timer and
// the command methods on input, one at a time. Drawing and status updates are
// pushed to the injected Renderer and StatusSink.
package blocks

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Phase is the state of the game loop.
type Phase int

const (
	PhaseSpawning Phase = iota
	PhaseFalling
	PhaseLocking
	PhaseClearing
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseSpawning:
		return "spawning"
	case PhaseFalling:
		return "falling"
	case PhaseLocking:
		return "locking"
	case PhaseClearing:
		return "clearing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// State is the externally visible game state.
type State struct {
	Score             int
	Level             int
	Lines             int
	LocksSinceLevelUp int
	FallInterval      time.Duration
	Phase             Phase
	Paused            bool
}

// TickResult describes what a gravity tick did.
type TickResult struct {
	Moved    bool // The active piece fell one row
	Locked   bool // The active piece locked into the grid
	Lines    int  // Rows cleared by the lock
	GameOver bool // The next piece could not be placed
}

// Engine owns the grid, the active piece and the game state.
type Engine struct {
	opts     Options
	grid     *Grid
	renderer Renderer
	status   StatusSink
	baseLog  *log.Logger
	log      *log.Logger
	rng      *rand.Rand
	nextKind func() Kind
	id       uuid.UUID

	// Active piece and the renderer handles of its four cells.
	active    Piece
	handles   [4]Handle
	hasActive bool

	phase             Phase
	paused            bool
	tick              uint64
	score             int
	level             int
	lines             int
	locksSinceLevelUp int
	interval          time.Duration
}

// New validates opts and creates an engine in the spawning phase. Call Start
// to place the first piece. Nil collaborators are replaced with no-ops.
func New(opts Options, renderer Renderer, status StatusSink) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if renderer == nil {
		renderer = &NopRenderer{}
	}
	if status == nil {
		status = NopStatus{}
	}

	discard := log.New(io.Discard)
	e := &Engine{
		opts:     opts,
		grid:     NewGrid(opts.Cols(), opts.Rows(), renderer),
		renderer: renderer,
		status:   status,
		baseLog:  discard,
		log:      discard,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		phase:    PhaseSpawning,
		level:    1,
		interval: time.Duration(opts.InitialIntervalMs) * time.Millisecond,
	}
	e.nextKind = func() Kind { return RandomKind(e.rng) }
	return e, nil
}

// SetLogger sets the logger used for game events.
func (e *Engine) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	e.baseLog = l
	e.log = l.With("game", e.id.String())
}

// Seed makes the piece sequence deterministic.
func (e *Engine) Seed(seed int64) {
	e.rng.Seed(seed)
}

// ID returns the identifier of the current game.
func (e *Engine) ID() uuid.UUID {
	return e.id
}

// Cols returns the field width in cells.
func (e *Engine) Cols() int {
	return e.grid.Cols()
}

// Rows returns the field height in cells.
func (e *Engine) Rows() int {
	return e.grid.Rows()
}

// Start begins a new game from scratch: empty grid, score 0, level 1, the
// initial interval, and a freshly spawned piece.
func (e *Engine) Start() {
	e.id = uuid.New()
	e.log = e.baseLog.With("game", e.id.String())

	e.grid.Reset()
	e.renderer.ClearAll()
	e.hasActive = false
	e.paused = false
	e.tick = 0
	e.score = 0
	e.level = 1
	e.lines = 0
	e.locksSinceLevelUp = 0
	e.interval = time.Duration(e.opts.InitialIntervalMs) * time.Millisecond

	e.log.Debug("game started", "cols", e.grid.Cols(), "rows", e.grid.Rows(), "interval", e.interval)
	e.status.ScoreChanged(e.score, e.level)
	e.spawn()
}

// Restart abandons the current game and starts a new one.
func (e *Engine) Restart() {
	e.log.Debug("restart requested", "phase", e.phase, "score", e.score)
	e.Start()
}

// Tick applies one step of gravity. The active piece either falls one row or
// locks; a lock is followed by line clearing, level progression and the
// next spawn. Ticks are ignored unless a piece is falling and the game is
// not paused.
func (e *Engine) Tick() TickResult {
	if e.phase != PhaseFalling || e.paused || !e.hasActive {
		return TickResult{}
	}
	e.tick++

	if next := e.active.Translated(0, 1); IsLegal(e.grid, next) {
		e.commit(next)
		return TickResult{Moved: true}
	}

	e.lock()
	lines := e.clearLines()
	e.progress()
	e.spawn()

	return TickResult{
		Locked:   true,
		Lines:    lines,
		GameOver: e.phase == PhaseGameOver,
	}
}

// Left shifts the active piece one column left if legal.
func (e *Engine) Left() bool {
	return e.try(func(p Piece) Piece { return p.Translated(-1, 0) })
}

// Right shifts the active piece one column right if legal.
func (e *Engine) Right() bool {
	return e.try(func(p Piece) Piece { return p.Translated(1, 0) })
}

// SoftDrop moves the active piece one row down if legal. It never locks.
func (e *Engine) SoftDrop() bool {
	return e.try(func(p Piece) Piece { return p.Translated(0, 1) })
}

// Rotate turns the active piece clockwise if legal.
func (e *Engine) Rotate() bool {
	return e.try(Piece.RotatedClockwise)
}

// Handle dispatches a host action. It reports whether the action changed
// the game. Restart is honoured only after game over.
func (e *Engine) Handle(a core.Action) bool {
	switch a {
	case core.ActionLeft:
		return e.Left()
	case core.ActionRight:
		return e.Right()
	case core.ActionSoftDrop:
		return e.SoftDrop()
	case core.ActionRotate:
		return e.Rotate()
	case core.ActionPause:
		return e.TogglePause()
	case core.ActionRestart:
		if e.phase != PhaseGameOver {
			return false
		}
		e.Restart()
		return true
	default:
		return false
	}
}

// TogglePause pauses or resumes a running game.
func (e *Engine) TogglePause() bool {
	if e.phase == PhaseGameOver {
		return false
	}
	e.paused = !e.paused
	e.log.Debug("pause toggled", "paused", e.paused)
	return true
}

// Paused reports whether the game is paused.
func (e *Engine) Paused() bool {
	return e.paused
}

// Phase returns the current loop phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// FallInterval returns the current gravity interval.
func (e *Engine) FallInterval() time.Duration {
	return e.interval
}

// Active returns the falling piece, if any.
func (e *Engine) Active() (Piece, bool) {
	return e.active, e.hasActive
}

// State returns a copy of the game state.
func (e *Engine) State() State {
	return State{
		Score:             e.score,
		Level:             e.level,
		Lines:             e.lines,
		LocksSinceLevelUp: e.locksSinceLevelUp,
		FallInterval:      e.interval,
		Phase:             e.phase,
		Paused:            e.paused,
	}
}

// try commits the transformed active piece when the result is legal.
func (e *Engine) try(transform func(Piece) Piece) bool {
	if e.phase != PhaseFalling || e.paused || !e.hasActive {
		return false
	}
	candidate := transform(e.active)
	if !IsLegal(e.grid, candidate) {
		return false
	}
	e.commit(candidate)
	return true
}

// commit replaces the active piece and moves its drawn cells to match.
func (e *Engine) commit(candidate Piece) {
	from := e.active.Cells()
	to := candidate.Cells()
	for i := range to {
		d := to[i].Sub(from[i])
		if d.Col != 0 || d.Row != 0 {
			e.renderer.MoveCell(e.handles[i], d.Col, d.Row)
		}
	}
	e.active = candidate
}

// spawn places the next piece, or ends the game when it cannot fall.
func (e *Engine) spawn() {
	e.phase = PhaseSpawning
	p := Spawn(e.nextKind(), e.grid.Cols())
	if !IsLegal(e.grid, p) || !IsLegal(e.grid, p.Translated(0, 1)) {
		e.gameOver(p)
		return
	}

	e.active = p
	e.hasActive = true
	for i, c := range p.Cells() {
		e.handles[i] = e.renderer.DrawCell(c, p.Color())
	}
	e.phase = PhaseFalling
	e.log.Debug("piece spawned", "kind", p.Kind(), "origin", p.Origin())
}

// lock erases the drawn active piece and folds it into the grid.
func (e *Engine) lock() {
	e.phase = PhaseLocking
	for _, h := range e.handles {
		e.renderer.RemoveCell(h)
	}
	e.grid.Lock(e.active)
	e.hasActive = false
	e.locksSinceLevelUp++
	e.log.Debug("piece locked", "kind", e.active.Kind(), "color", e.active.Color(), "origin", e.active.Origin(), "tick", e.tick)
}

// clearLines removes completed rows and scores them.
func (e *Engine) clearLines() int {
	e.phase = PhaseClearing
	rows := e.grid.FindFullRows()
	if len(rows) == 0 {
		return 0
	}

	e.grid.ClearRows(rows)
	n := len(rows)
	gained := 10 * e.level * e.level * n * n
	e.score += gained
	e.lines += n
	e.log.Debug("rows cleared", "rows", rows, "points", gained, "score", e.score)
	e.status.ScoreChanged(e.score, e.level)
	return n
}

// progress raises the level every LevelUpEveryNLocks locks.
func (e *Engine) progress() {
	if e.locksSinceLevelUp < e.opts.LevelUpEveryNLocks {
		return
	}
	e.locksSinceLevelUp = 0
	e.level++
	e.interval = e.opts.intervalFor(e.interval)
	e.log.Debug("level up", "level", e.level, "interval", e.interval)
	e.status.ScoreChanged(e.score, e.level)
}

// gameOver ends the game; blocked is the piece that could not be placed.
func (e *Engine) gameOver(blocked Piece) {
	e.phase = PhaseGameOver
	e.hasActive = false
	e.paused = false
	e.grid.Reset()
	e.renderer.ClearAll()
	e.log.Info("game over", "score", e.score, "level", e.level, "lines", e.lines, "blocked", blocked.Kind())
	e.status.GameOver(e.score)
}
