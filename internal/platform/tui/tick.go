// Package tui runs a game in the terminal with Bubble Tea: a fixed-rate
// tick loop, key hold synthesis and lipgloss-colored output.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 120
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// holdTicks converts the key hold window to ticks, at least one.
func holdTicks(holdMS, tickRate int) int {
	return max(1, holdMS*tickRate/1000)
}

// tapGapMS separates a second tap of a held key from terminal auto-repeat,
// which arrives every 20-40ms.
const tapGapMS = 60

// tapTicks converts tapGapMS to ticks, at least one.
func tapTicks(tickRate int) int {
	return max(1, tapGapMS*tickRate/1000)
}
