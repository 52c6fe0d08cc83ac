package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/gallery/internal/tui/state"
	"github.com/thenoetrevino/gallery/internal/wizard"
)

// fetchDoneMsg reports the end of a dialog's fetch
type fetchDoneMsg struct {
	dialog *wizard.Dialog
	err    error
}

// shareDoneMsg reports a written share card
type shareDoneMsg struct {
	path         string
	clipboardErr error
	err          error
}

// notificationExpiredMsg removes a notification from the status bar
type notificationExpiredMsg struct {
	id int
}

// notify shows message in the status bar and schedules its removal
func (m Model) notify(level state.NotificationLevel, message string) tea.Cmd {
	id := m.NotificationState.Add(level, message)
	return tea.Tick(state.NotificationTTL, func(time.Time) tea.Msg {
		return notificationExpiredMsg{id: id}
	})
}
