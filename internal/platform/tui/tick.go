// Package tui provides the Bubble Tea integration for rockfall. It
// handles the terminal loop, input mapping and frame pacing; all game
// rules live in the cave core.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent at the render rate. Physics ticks are derived from
// frames by the model's accumulator.
type FrameMsg time.Time

// frameCmd returns a command that emits frame messages at the given
// rate.
func frameCmd(frameRate int) tea.Cmd {
	interval := time.Second / time.Duration(frameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// tickAccumulator converts wall-clock frames into fixed physics ticks.
// When the terminal stalls longer than one tick period the surplus is
// discarded, so the simulation slows down instead of fast-forwarding.
type tickAccumulator struct {
	tickPeriod time.Duration
	elapsed    time.Duration
	last       time.Time
}

func newTickAccumulator(tickMS int) *tickAccumulator {
	return &tickAccumulator{tickPeriod: time.Duration(tickMS) * time.Millisecond}
}

// Advance feeds one frame timestamp and reports whether a physics tick
// is due. At most one tick fires per frame; the accumulator resets to
// zero when it fires.
func (a *tickAccumulator) Advance(now time.Time) bool {
	if a.last.IsZero() {
		a.last = now
		return false
	}
	a.elapsed += now.Sub(a.last)
	a.last = now

	if a.elapsed >= a.tickPeriod {
		a.elapsed = 0
		return true
	}
	return false
}

// Reset clears the accumulated time, used when the game un-pauses.
func (a *tickAccumulator) Reset() {
	a.elapsed = 0
	a.last = time.Time{}
}
