// Package tui provides the Bubble Tea frontend for the 2048 game.
// It handles the terminal UI loop, input mapping, dialogs and rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// TickMsg is sent to refresh the view from the game state.
type TickMsg time.Time

// FlashMsg advances the merge flash animation.
type FlashMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// flashCmd schedules the next flash phase.
func flashCmd() tea.Cmd {
	return tea.Tick(t2048.FlashInterval, func(t time.Time) tea.Msg {
		return FlashMsg(t)
	})
}
