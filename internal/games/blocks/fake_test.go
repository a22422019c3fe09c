package blocks

import (
	"github.com/vovakirdan/blockfall/internal/core"
)

// recorder is a Renderer and StatusSink that keeps the drawn cells so tests
// can compare them against the engine state.
type recorder struct {
	next   Handle
	cells  map[Handle]Cell
	colors map[Handle]core.Color

	draws, moves, removes, clears int

	scores    []int
	levels    []int
	gameOvers []int
}

func newRecorder() *recorder {
	return &recorder{
		cells:  make(map[Handle]Cell),
		colors: make(map[Handle]core.Color),
	}
}

func (r *recorder) DrawCell(c Cell, color core.Color) Handle {
	r.next++
	r.cells[r.next] = c
	r.colors[r.next] = color
	r.draws++
	return r.next
}

func (r *recorder) MoveCell(h Handle, dCol, dRow int) {
	c, ok := r.cells[h]
	if !ok {
		panic("recorder: move of unknown handle")
	}
	r.cells[h] = c.Add(Cell{Col: dCol, Row: dRow})
	r.moves++
}

func (r *recorder) RemoveCell(h Handle) {
	if _, ok := r.cells[h]; !ok {
		panic("recorder: remove of unknown handle")
	}
	delete(r.cells, h)
	delete(r.colors, h)
	r.removes++
}

func (r *recorder) ClearAll() {
	clear(r.cells)
	clear(r.colors)
	r.clears++
}

func (r *recorder) ScoreChanged(score, level int) {
	r.scores = append(r.scores, score)
	r.levels = append(r.levels, level)
}

func (r *recorder) GameOver(finalScore int) {
	r.gameOvers = append(r.gameOvers, finalScore)
}

// drawn returns the set of cells currently on the surface.
func (r *recorder) drawn() map[Cell]int {
	set := make(map[Cell]int, len(r.cells))
	for _, c := range r.cells {
		set[c]++
	}
	return set
}

// fieldOptions returns options for a field of cols x rows cells.
func fieldOptions(cols, rows int) Options {
	opts := DefaultOptions()
	opts.BoxSize = 20
	opts.Width = cols * opts.BoxSize
	opts.Height = rows * opts.BoxSize
	return opts
}

// always returns a piece source that yields k forever.
func always(k Kind) func() Kind {
	return func() Kind { return k }
}
