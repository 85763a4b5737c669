package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// How long the copy confirmation and notices stay visible.
const (
	copiedFor = 2 * time.Second
	noticeFor = 4 * time.Second
)

// copyResultMsg reports a finished clipboard write.
type copyResultMsg struct{ err error }

// resetCopiedMsg reverts the confirmation started by copy sequence seq.
type resetCopiedMsg struct{ seq int }

// clearNoticeMsg clears the notice set with sequence seq.
type clearNoticeMsg struct{ seq int }

func resetCopiedAfter(seq int) tea.Cmd {
	return tea.Tick(copiedFor, func(time.Time) tea.Msg { return resetCopiedMsg{seq: seq} })
}

func clearNoticeAfter(seq int) tea.Cmd {
	return tea.Tick(noticeFor, func(time.Time) tea.Msg { return clearNoticeMsg{seq: seq} })
}
