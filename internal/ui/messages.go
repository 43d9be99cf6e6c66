package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type frameMsg time.Time

// frameCmd schedules the next render frame. The engine ticks at its own
// rate; the TUI only samples snapshots, so 30 fps is plenty.
func frameCmd() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
