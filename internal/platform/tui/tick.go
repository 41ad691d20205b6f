// Package tui provides the Bubble Tea integration for the game.
// It owns the terminal UI loop, maps keys to engine input and schedules
// engine ticks.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one engine Advance.
type TickMsg time.Time

// Scheduler arms the timer for the next tick. The model asks for exactly
// one tick after each completed Advance, so ticks never overlap.
type Scheduler interface {
	Schedule(d time.Duration) tea.Cmd
}

// TeaScheduler schedules ticks with tea.Tick.
type TeaScheduler struct{}

// Schedule returns a command that sends a TickMsg after d.
func (TeaScheduler) Schedule(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
