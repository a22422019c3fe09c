package blocks

import (
	"fmt"
	"slices"
	"strings"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/blockfall/internal/core"
)

// lockedCell is one settled box in the grid.
type lockedCell struct {
	color  core.Color
	handle Handle
}

// Grid is the occupancy model of the field. It only holds locked cells; the
// falling piece is not part of the grid until it locks.
type Grid struct {
	cols, rows int
	cells      *intmap.Map[int, lockedCell] // keyed by row*cols + col
	renderer   Renderer

	// touched lists the rows covered by the most recent lock, ascending.
	// nil means no lock happened since the last clear or reset.
	touched []int
}

// NewGrid creates an empty grid of cols x rows cells that reports drawing
// changes to r. A nil renderer is replaced with a NopRenderer.
func NewGrid(cols, rows int, r Renderer) *Grid {
	if r == nil {
		r = &NopRenderer{}
	}
	return &Grid{
		cols:     cols,
		rows:     rows,
		cells:    intmap.New[int, lockedCell](cols * rows),
		renderer: r,
	}
}

// Cols returns the field width in cells.
func (g *Grid) Cols() int {
	return g.cols
}

// Rows returns the field height in cells.
func (g *Grid) Rows() int {
	return g.rows
}

// Len returns the number of locked cells.
func (g *Grid) Len() int {
	return g.cells.Len()
}

func (g *Grid) key(c Cell) int {
	return c.Row*g.cols + c.Col
}

func (g *Grid) cellAt(key int) Cell {
	return Cell{Col: key % g.cols, Row: key / g.cols}
}

// InBounds reports whether c lies inside the field.
func (g *Grid) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Col < g.cols && c.Row >= 0 && c.Row < g.rows
}

// Occupied reports whether a locked cell exists at c.
func (g *Grid) Occupied(c Cell) bool {
	if !g.InBounds(c) {
		return false
	}
	return g.cells.Has(g.key(c))
}

// ColorAt returns the color of the locked cell at c.
func (g *Grid) ColorAt(c Cell) (core.Color, bool) {
	if !g.InBounds(c) {
		return core.ColorDefault, false
	}
	lc, ok := g.cells.Get(g.key(c))
	return lc.color, ok
}

// place draws and records a single locked cell.
func (g *Grid) place(c Cell, color core.Color) {
	if !g.InBounds(c) || g.cells.Has(g.key(c)) {
		panic(fmt.Sprintf("blocks: cannot lock cell %s: out of bounds or occupied", c))
	}
	h := g.renderer.DrawCell(c, color)
	g.cells.Put(g.key(c), lockedCell{color: color, handle: h})
}

// Lock folds the cells of p into the grid. Locking onto an occupied or
// out-of-bounds cell means the legality check was bypassed; Lock panics.
func (g *Grid) Lock(p Piece) {
	cells := p.Cells()
	for _, c := range cells {
		if !g.InBounds(c) || g.Occupied(c) {
			panic(fmt.Sprintf("blocks: cannot lock %s piece at %s: cell %s is out of bounds or occupied",
				p.Kind(), p.Origin(), c))
		}
	}

	touched := make([]int, 0, len(cells))
	for _, c := range cells {
		g.place(c, p.Color())
		if !slices.Contains(touched, c.Row) {
			touched = append(touched, c.Row)
		}
	}
	slices.Sort(touched)
	g.touched = touched
}

// FindFullRows returns the completely filled rows in ascending order.
// Only the rows touched by the last lock are scanned when that is known.
func (g *Grid) FindFullRows() []int {
	candidates := g.touched
	if candidates == nil {
		candidates = make([]int, g.rows)
		for r := range candidates {
			candidates[r] = r
		}
	}

	var full []int
	for _, r := range candidates {
		if g.rowFull(r) {
			full = append(full, r)
		}
	}
	return full
}

func (g *Grid) rowFull(r int) bool {
	for c := 0; c < g.cols; c++ {
		if !g.cells.Has(r*g.cols + c) {
			return false
		}
	}
	return true
}

// ClearRows removes every cell in rows and lets the cells above settle:
// each remaining cell moves down by the number of cleared rows strictly
// below it. Rows may be given in any order and need not be contiguous.
func (g *Grid) ClearRows(rows []int) {
	cleared := make([]int, 0, len(rows))
	for _, r := range rows {
		if r >= 0 && r < g.rows && !slices.Contains(cleared, r) {
			cleared = append(cleared, r)
		}
	}
	if len(cleared) == 0 {
		return
	}

	type entry struct {
		cell Cell
		lc   lockedCell
	}
	kept := make([]entry, 0, g.cells.Len())
	for k, lc := range g.cells.All() {
		c := g.cellAt(k)
		if slices.Contains(cleared, c.Row) {
			g.renderer.RemoveCell(lc.handle)
			continue
		}
		shift := 0
		for _, r := range cleared {
			if r > c.Row {
				shift++
			}
		}
		if shift > 0 {
			g.renderer.MoveCell(lc.handle, 0, shift)
			c.Row += shift
		}
		kept = append(kept, entry{cell: c, lc: lc})
	}

	g.cells.Clear()
	for _, e := range kept {
		g.cells.Put(g.key(e.cell), e.lc)
	}
	g.touched = nil
}

// Reset empties the grid. Drawing surfaces are cleared by the caller.
func (g *Grid) Reset() {
	g.cells.Clear()
	g.touched = nil
}

// String renders the grid as rows of '#' and '.' for debugging.
func (g *Grid) String() string {
	var b strings.Builder
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < g.cols; c++ {
			if g.cells.Has(r*g.cols + c) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}
