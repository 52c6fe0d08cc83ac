package tui

import (
	"log/slog"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/gallery/internal/tui/state"
	"github.com/thenoetrevino/gallery/internal/wizard"
)

// Update handles all messages and updates the model.
// Required by tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UIState.SetSize(msg.Width, msg.Height)
		m.clampSelection()
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		return m.handleKey(msg)

	case spinner.TickMsg:
		if m.UIState.Mode() != state.FetchingMode {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case fetchDoneMsg:
		return m.handleFetchDone(msg)

	case shareDoneMsg:
		return m.handleShareDone(msg)

	case notificationExpiredMsg:
		m.NotificationState.Remove(msg.id)
		return m, nil
	}

	// huh forms also consume their own internal messages
	if m.DialogState.Form != nil {
		return m.updateForm(msg)
	}
	return m, nil
}

// handleKey dispatches a key press to the handler of the current mode
func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch m.UIState.Mode() {
	case state.SearchMode:
		return m.handleSearchMode(msg)
	case state.HelpMode:
		return m.handleHelpMode(msg)
	case state.DimensionFormMode, state.SourceFormMode, state.CustomLabelMode:
		if msg.String() == "esc" {
			return m.handleFormCancel()
		}
		return m.updateForm(msg)
	case state.FetchingMode:
		return m.handleFetchingMode(msg)
	case state.ChipSelectionMode:
		return m.handleChipSelectionMode(msg)
	case state.DeleteConfirmMode:
		return m.handleDeleteConfirmMode(msg)
	case state.AlertMode:
		m.ConfirmState.Reset()
		m.UIState.SetMode(state.NormalMode)
		return m, nil
	default:
		return m.handleNormalMode(msg)
	}
}

// handleFetchDone moves a still-open dialog on to chip selection or the error alert
func (m Model) handleFetchDone(msg fetchDoneMsg) (tea.Model, tea.Cmd) {
	if !m.DialogState.IsCurrent(msg.dialog) || wizard.IsDismissed(msg.err) {
		return m, nil
	}

	if msg.err != nil {
		slog.Error("failed to fetch image", "error", msg.err)
		m.DialogState.Close()
		m.ConfirmState.Alert = msg.err.Error()
		m.UIState.SetMode(state.AlertMode)
		return m, nil
	}

	m.DialogState.FocusChips()
	m.UIState.SetMode(state.ChipSelectionMode)
	return m, nil
}

func (m Model) handleShareDone(msg shareDoneMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.err != nil:
		slog.Error("failed to share item", "error", msg.err)
		return m, m.notify(state.LevelError, "Share failed: "+msg.err.Error())
	case msg.clipboardErr != nil:
		slog.Warn("failed to copy card path", "error", msg.clipboardErr)
		return m, m.notify(state.LevelWarning, "Card saved to "+msg.path)
	default:
		return m, m.notify(state.LevelInfo, "Card path copied: "+msg.path)
	}
}

// quit saves the list and exits
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.DialogState.Close()
	if err := m.App.ItemService.Save(m.Ctx); err != nil {
		slog.Error("failed to save items on quit", "error", err)
		m.SaveErr = err
	}
	return m, tea.Quit
}
