package blocks

import "fmt"

// Cell is a discrete field coordinate. Row 0 is the top of the field and
// rows grow downward, so gravity moves pieces by +1 row.
type Cell struct {
	Col, Row int
}

// Add returns the cell translated by o.
func (c Cell) Add(o Cell) Cell {
	return Cell{Col: c.Col + o.Col, Row: c.Row + o.Row}
}

// Sub returns the offset from o to c.
func (c Cell) Sub(o Cell) Cell {
	return Cell{Col: c.Col - o.Col, Row: c.Row - o.Row}
}

// String formats the cell as (col,row).
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}
