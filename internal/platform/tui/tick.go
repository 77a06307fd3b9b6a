// Package tui provides the Bubble Tea integration for the tetris platform.
// It handles the terminal UI loop, input mapping, and the tick timer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent when the tick timer fires.
// Gen identifies the timer that produced it; a message whose Gen is not the
// model's current generation belongs to a cancelled timer and is dropped.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// tickCmd returns a one-shot Bubble Tea command that fires after interval.
func tickCmd(gen uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
