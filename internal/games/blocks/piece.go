package blocks

import "github.com/vovakirdan/blockfall/internal/core"

// pivotIndex is the cell rotations are computed around.
const pivotIndex = 2

// Piece is a live tetromino: a kind, an origin on the field, and four cell
// offsets relative to that origin. Pieces are values; every transform returns
// a new candidate and leaves the receiver untouched.
type Piece struct {
	kind    Kind
	origin  Cell
	offsets [4]Cell
}

// Spawn places a piece of the given kind at the top of a field cols wide.
// The origin column is the field centre snapped down to a whole cell and
// shifted one cell left. Legality is not checked here.
func Spawn(kind Kind, cols int) Piece {
	return Piece{
		kind:    kind,
		origin:  Cell{Col: max(0, cols/2-1), Row: 0},
		offsets: kind.Offsets(),
	}
}

// Kind returns the piece kind.
func (p Piece) Kind() Kind {
	return p.kind
}

// Color returns the color of the piece kind.
func (p Piece) Color() core.Color {
	return p.kind.Color()
}

// Origin returns the anchor cell of the piece.
func (p Piece) Origin() Cell {
	return p.origin
}

// Offsets returns the current cell offsets relative to the origin.
func (p Piece) Offsets() [4]Cell {
	return p.offsets
}

// Cells returns the absolute field cells covered by the piece.
func (p Piece) Cells() [4]Cell {
	var cells [4]Cell
	for i, off := range p.offsets {
		cells[i] = p.origin.Add(off)
	}
	return cells
}

// Translated returns a copy of the piece moved by (dx, dy) cells.
func (p Piece) Translated(dx, dy int) Piece {
	p.origin = p.origin.Add(Cell{Col: dx, Row: dy})
	return p
}

// RotatedClockwise returns a copy of the piece turned 90 degrees clockwise
// around its pivot cell. Each offset d from the pivot becomes (-d.Row, d.Col).
// Squares are returned unchanged: turning a 2x2 block about one of its own
// cells would only shift it.
func (p Piece) RotatedClockwise() Piece {
	if p.kind == Square {
		return p
	}
	pivot := p.offsets[pivotIndex]
	for i, off := range p.offsets {
		d := off.Sub(pivot)
		p.offsets[i] = pivot.Add(Cell{Col: -d.Row, Row: d.Col})
	}
	return p
}
