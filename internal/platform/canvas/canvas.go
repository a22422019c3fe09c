// Package canvas is the terminal drawing surface for the blocks engine.
// It implements blocks.Renderer by remembering every drawn box under its
// handle and paints them onto a core.Screen on demand.
package canvas

import (
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blocks"
)

// CellWidth is the number of screen columns one field cell takes.
// Terminal glyphs are about twice as tall as wide.
const CellWidth = 2

// Glyphs used to paint the field.
const (
	boxRune   = '█'
	emptyRune = ' '
	dotRune   = '·'
)

type box struct {
	cell  blocks.Cell
	color core.Color
}

// Canvas holds the boxes drawn by the engine.
type Canvas struct {
	cols, rows int
	next       blocks.Handle
	boxes      *intmap.Map[blocks.Handle, box]
	grid       bool // paint a dot in empty cells
}

// New creates an empty canvas for a field of cols x rows cells.
func New(cols, rows int) *Canvas {
	return &Canvas{
		cols:  cols,
		rows:  rows,
		boxes: intmap.New[blocks.Handle, box](cols * rows),
	}
}

// SetGrid toggles painting of empty cells.
func (c *Canvas) SetGrid(on bool) {
	c.grid = on
}

// DrawCell records a box and returns its handle.
func (c *Canvas) DrawCell(cell blocks.Cell, color core.Color) blocks.Handle {
	c.next++
	c.boxes.Put(c.next, box{cell: cell, color: color})
	return c.next
}

// MoveCell shifts a box by whole cells. Unknown handles are ignored.
func (c *Canvas) MoveCell(h blocks.Handle, dCol, dRow int) {
	b, ok := c.boxes.Get(h)
	if !ok {
		return
	}
	b.cell = b.cell.Add(blocks.Cell{Col: dCol, Row: dRow})
	c.boxes.Put(h, b)
}

// RemoveCell erases a box.
func (c *Canvas) RemoveCell(h blocks.Handle) {
	c.boxes.Del(h)
}

// ClearAll erases every box.
func (c *Canvas) ClearAll() {
	c.boxes.Clear()
}

// Len returns the number of boxes on the canvas.
func (c *Canvas) Len() int {
	return c.boxes.Len()
}

// At returns the color of the box covering cell, if any.
func (c *Canvas) At(cell blocks.Cell) (core.Color, bool) {
	for _, b := range c.boxes.All() {
		if b.cell == cell {
			return b.color, true
		}
	}
	return core.ColorDefault, false
}

// Size returns the screen footprint of the framed field.
func (c *Canvas) Size() (w, h int) {
	return c.cols*CellWidth + 2, c.rows + 2
}

// Draw paints the framed field onto s with its top-left corner at (x, y).
func (c *Canvas) Draw(s *core.Screen, x, y int) {
	w, h := c.Size()
	s.DrawBox(core.NewRect(x, y, w, h))

	empty := emptyRune
	if c.grid {
		empty = dotRune
	}
	for row := range c.rows {
		for col := range c.cols {
			for i := range CellWidth {
				s.SetColored(x+1+col*CellWidth+i, y+1+row, empty, core.ColorGray)
			}
		}
	}

	field := core.NewRect(0, 0, c.cols, c.rows)
	for _, b := range c.boxes.All() {
		if !field.Contains(b.cell.Col, b.cell.Row) {
			continue
		}
		px := x + 1 + b.cell.Col*CellWidth
		py := y + 1 + b.cell.Row
		for i := range CellWidth {
			s.SetColored(px+i, py, boxRune, b.color)
		}
	}
}
