// Package tui provides the Bubble Tea host for blockfall.
// It owns the terminal loop, maps keys to engine actions, schedules gravity
// ticks at the engine's current fall interval and draws the canvas.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one gravity tick. Gen ties the message to the schedule
// that produced it; ticks from an older schedule are dropped.
type TickMsg struct {
	Gen int
	At  time.Time
}

// tickCmd returns a command that sends a TickMsg after interval.
func tickCmd(gen int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, At: t}
	})
}
