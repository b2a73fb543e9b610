// Package tui provides the Bubble Tea host for Snake Xenzia.
// It owns the tick source, maps keys and mouse swipes to engine calls and
// renders engine snapshots. It holds no game rules of its own.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-xenzia/internal/games/snake"
)

// TickMsg is sent to trigger a game simulation tick.
// Gen identifies the tick loop that scheduled it; ticks from an older loop
// (before a restart or pause) are ignored.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick after the game's fixed interval.
func tickCmd(gen int) tea.Cmd {
	return tea.Tick(snake.TickInterval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
