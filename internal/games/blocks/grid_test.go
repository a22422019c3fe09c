package blocks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/core"
)

// fillRow locks every cell of row except the listed columns.
func fillRow(g *Grid, row int, except ...int) {
	for c := 0; c < g.Cols(); c++ {
		skip := false
		for _, e := range except {
			if e == c {
				skip = true
			}
		}
		if !skip {
			g.place(Cell{Col: c, Row: row}, core.ColorGray)
		}
	}
}

func TestGridBounds(t *testing.T) {
	g := NewGrid(5, 6, nil)

	tests := []struct {
		cell Cell
		want bool
	}{
		{Cell{0, 0}, true},
		{Cell{4, 5}, true},
		{Cell{-1, 0}, false},
		{Cell{5, 0}, false},
		{Cell{0, -1}, false},
		{Cell{0, 6}, false},
	}
	for _, tt := range tests {
		if got := g.InBounds(tt.cell); got != tt.want {
			t.Errorf("InBounds(%v) = %v, want %v", tt.cell, got, tt.want)
		}
	}
}

func TestGridLockDrawsCells(t *testing.T) {
	rec := newRecorder()
	g := NewGrid(10, 10, rec)
	p := Spawn(LeftL, 10).Translated(0, 3)

	g.Lock(p)

	assert.Equal(t, 4, g.Len())
	assert.Equal(t, 4, rec.draws)
	for _, c := range p.Cells() {
		assert.True(t, g.Occupied(c), "cell %v", c)
		color, ok := g.ColorAt(c)
		require.True(t, ok)
		assert.Equal(t, core.ColorBlue, color)
	}
	assert.Equal(t, []int{3, 4}, g.touched)
}

func TestGridLockOverlapPanics(t *testing.T) {
	g := NewGrid(10, 10, nil)
	p := Spawn(Square, 10)
	g.Lock(p)

	assert.Panics(t, func() { g.Lock(p) })
	assert.Panics(t, func() { g.Lock(p.Translated(0, -1)) })
	assert.Equal(t, 4, g.Len())
}

func TestFindFullRowsIdempotent(t *testing.T) {
	g := NewGrid(5, 8, nil)
	fillRow(g, 7)
	fillRow(g, 6, 2)
	fillRow(g, 4)

	first := g.FindFullRows()
	second := g.FindFullRows()

	assert.Equal(t, []int{4, 7}, first)
	assert.Equal(t, first, second)
}

func TestFindFullRowsAfterLockScansTouchedRows(t *testing.T) {
	g := NewGrid(5, 6, nil)
	fillRow(g, 5, 0, 1)
	g.Lock(Spawn(Square, 5).Translated(-1, 4)) // cols 0-1, rows 4-5

	assert.Equal(t, []int{5}, g.FindFullRows())
}

func TestClearSingleRow(t *testing.T) {
	rec := newRecorder()
	g := NewGrid(5, 8, rec)
	fillRow(g, 5)
	g.place(Cell{0, 2}, core.ColorRed)
	g.place(Cell{3, 4}, core.ColorRed)
	g.place(Cell{1, 7}, core.ColorRed)

	g.ClearRows([]int{5})

	assert.Equal(t, 3, g.Len())
	assert.True(t, g.Occupied(Cell{0, 3}))
	assert.True(t, g.Occupied(Cell{3, 5}))
	assert.True(t, g.Occupied(Cell{1, 7}), "rows below the cleared row stay")
	assert.Empty(t, g.FindFullRows())
	assert.Equal(t, 5, rec.removes)
	assert.Equal(t, 2, rec.moves)
}

func TestClearTwoRowsMatchesSequentialClears(t *testing.T) {
	build := func() (*Grid, *recorder) {
		rec := newRecorder()
		g := NewGrid(5, 7, rec)
		fillRow(g, 3)
		fillRow(g, 5)
		g.place(Cell{0, 1}, core.ColorRed)
		g.place(Cell{2, 2}, core.ColorRed)
		g.place(Cell{4, 4}, core.ColorRed)
		g.place(Cell{1, 6}, core.ColorRed)
		return g, rec
	}

	together, rec := build()
	together.ClearRows([]int{5, 3})

	assert.True(t, together.Occupied(Cell{0, 3}), "above row 3 moves down by 2")
	assert.True(t, together.Occupied(Cell{2, 4}), "above row 3 moves down by 2")
	assert.True(t, together.Occupied(Cell{4, 5}), "between rows moves down by 1")
	assert.True(t, together.Occupied(Cell{1, 6}), "below row 5 stays")
	assert.Equal(t, 4, together.Len())

	sequential, _ := build()
	sequential.ClearRows([]int{5})
	sequential.ClearRows([]int{4}) // row 3 after the first clear
	assert.Equal(t, sequential.String(), together.String())

	// The drawn surface follows the grid.
	drawn := rec.drawn()
	assert.Len(t, drawn, together.Len())
	for c := range drawn {
		assert.True(t, together.Occupied(c), "drawn cell %v not in grid", c)
	}
}

func TestClearRowsIgnoresDuplicatesAndOutOfRange(t *testing.T) {
	g := NewGrid(5, 4, nil)
	fillRow(g, 3)
	g.place(Cell{2, 0}, core.ColorRed)

	g.ClearRows([]int{3, 3, -1, 9})

	assert.Equal(t, 1, g.Len())
	assert.True(t, g.Occupied(Cell{2, 1}))
}

func TestGridScenarioRowTen(t *testing.T) {
	g := NewGrid(5, 12, nil)
	fillRow(g, 10, 2)
	g.place(Cell{0, 9}, core.ColorRed)
	g.place(Cell{3, 0}, core.ColorRed)

	// Vertical line in column 2 with its bottom cell in row 10.
	line := Spawn(Line, 5).RotatedClockwise().Translated(-1, 9)
	require.True(t, IsLegal(g, line))
	g.Lock(line)

	require.Equal(t, []int{10}, g.FindFullRows())
	g.ClearRows([]int{10})

	want := "" +
		".....\n" +
		"...#.\n" +
		".....\n" +
		".....\n" +
		".....\n" +
		".....\n" +
		".....\n" +
		".....\n" +
		"..#..\n" +
		"..#..\n" +
		"#.#..\n" +
		"....."
	assert.Equal(t, want, g.String())
}

func TestGridReset(t *testing.T) {
	g := NewGrid(5, 4, nil)
	fillRow(g, 3)
	g.Reset()

	assert.Zero(t, g.Len())
	assert.Empty(t, g.FindFullRows())
}
