package blocks

import "github.com/vovakirdan/blockfall/internal/core"

// Handle identifies a cell drawn by a Renderer.
type Handle uint64

// Renderer receives drawing notifications for confirmed state changes.
// The engine never reads anything back from it.
type Renderer interface {
	// DrawCell draws one box at the given cell and returns its handle.
	DrawCell(c Cell, color core.Color) Handle
	// MoveCell moves a previously drawn box by whole cells.
	MoveCell(h Handle, dCol, dRow int)
	// RemoveCell erases a previously drawn box.
	RemoveCell(h Handle)
	// ClearAll erases every box.
	ClearAll()
}

// StatusSink receives score and end-of-game notifications.
type StatusSink interface {
	ScoreChanged(score, level int)
	GameOver(finalScore int)
}

// NopRenderer hands out handles and draws nothing.
type NopRenderer struct {
	next Handle
}

// DrawCell returns a fresh handle.
func (r *NopRenderer) DrawCell(Cell, core.Color) Handle {
	r.next++
	return r.next
}

func (r *NopRenderer) MoveCell(Handle, int, int) {}
func (r *NopRenderer) RemoveCell(Handle)         {}
func (r *NopRenderer) ClearAll()                 {}

// NopStatus ignores every notification.
type NopStatus struct{}

func (NopStatus) ScoreChanged(int, int) {}
func (NopStatus) GameOver(int)          {}
