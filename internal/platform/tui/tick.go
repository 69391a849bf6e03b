// Package tui provides the Bubble Tea host for Breakout. It handles the
// terminal UI loop, input mapping, drawing and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a round of simulation steps.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that fires once after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
