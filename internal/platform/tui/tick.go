// Package tui provides the Bubble Tea front end for snakes and ladders.
// It handles the terminal UI loop, key bindings, and pacing of the
// computer's turns.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// computerTurnMsg asks the model to play the computer's move. gen ties the
// message to the match that scheduled it, so a reset drops stale turns.
type computerTurnMsg struct {
	gen int
}

// computerTurnCmd returns a command that delivers a computerTurnMsg after delay.
func computerTurnCmd(gen int, delay time.Duration) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg { return computerTurnMsg{gen: gen} }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return computerTurnMsg{gen: gen}
	})
}
