// Package tui provides the Bubble Tea host for the runner.
// It owns the frame loop, maps terminal input to the jump signal and
// draws the session's screen buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per frame.
type TickMsg time.Time

// tickCmd schedules the next frame at the given rate.
// The next frame is only requested after the current one finished.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
