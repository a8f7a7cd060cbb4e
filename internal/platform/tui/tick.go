// Package tui runs puzzles inside Bubble Tea: the local program, the menu
// and scoreboard screens, key mapping, and the SSH server that hands each
// connection its own session.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxTickRate bounds the frame rate so a bad flag cannot spin the CPU.
const maxTickRate = 120

// TickMsg advances the running puzzle by one frame.
type TickMsg struct {
	At time.Time
}

// tickInterval converts a rate in frames per second to a frame duration.
func tickInterval(rate int) time.Duration {
	return time.Second / time.Duration(min(max(rate, 1), maxTickRate))
}

func tickCmd(rate int) tea.Cmd {
	return tea.Tick(tickInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg{At: t}
	})
}
