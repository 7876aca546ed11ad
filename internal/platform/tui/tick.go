// Package tui runs games in the terminal with Bubble Tea: the fixed-rate
// tick loop, key and mouse mapping, the menu, the scoreboard and SSH hosting.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. It carries the ID of
// the loop that scheduled it so a model ignores ticks left over from an
// earlier game in the same program.
type TickMsg struct {
	Time time.Time
	loop uint64
}

var tickLoops atomic.Uint64

// newTickLoop returns a fresh tick loop ID.
func newTickLoop() uint64 {
	return tickLoops.Add(1)
}

// tickInterval is the simulated duration of one tick.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd schedules the next tick of a loop at the given rate.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg{Time: t, loop: loop}
	})
}
