// Package tui provides the Bubble Tea host for the tilt maze.
// It handles the terminal UI loop, input mapping, tick scheduling and menus.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// SampleTickMsg triggers one motion sample. Gen identifies the tick chain
// that produced it; ticks from a stopped chain are dropped.
type SampleTickMsg struct {
	Gen int
	At  time.Time
}

// ClockTickMsg triggers the one-second game timer.
type ClockTickMsg struct {
	Gen int
	At  time.Time
}

// sampleInterval converts a sample rate into a tick interval.
func sampleInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = 50
	}
	return time.Second / time.Duration(rate)
}

// sampleTickCmd returns a command that sends one sample tick after the
// interval for the given rate.
func sampleTickCmd(rate, gen int) tea.Cmd {
	return tea.Tick(sampleInterval(rate), func(t time.Time) tea.Msg {
		return SampleTickMsg{Gen: gen, At: t}
	})
}

// clockTickCmd returns a command that sends one clock tick after d.
func clockTickCmd(d time.Duration, gen int) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return ClockTickMsg{Gen: gen, At: t}
	})
}
