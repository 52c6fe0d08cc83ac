package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/gallery/internal/tui/state"
)

// handleSearchMode handles keyboard input in search mode.
// The list is filtered as the query is typed.
func (m Model) handleSearchMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.SearchState.Activate()
		m.UIState.SetMode(state.NormalMode)
		if m.SearchState.Query == "" {
			m.SearchState.Clear()
		}
		return m, nil
	case "esc":
		m.SearchState.Clear()
		m.UIState.SetMode(state.NormalMode)
		return m.executeSearch()
	case "backspace", "ctrl+h":
		if m.SearchState.Backspace() {
			return m.executeSearch()
		}
		return m, nil
	default:
		if m.SearchState.AppendText(msg.Text) {
			return m.executeSearch()
		}
		return m, nil
	}
}

// executeSearch applies the query to the list
func (m Model) executeSearch() (tea.Model, tea.Cmd) {
	m.list().Filter(m.SearchState.Query)
	m.UIState.SetSelectedItem(0)
	m.clampSelection()
	return m, nil
}

// handleHelpMode closes the help screen.
func (m Model) handleHelpMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.Config.KeyMappings.ShowHelp, m.Config.KeyMappings.Quit, "esc", "enter", "space", " ":
		m.UIState.SetMode(state.NormalMode)
	}
	return m, nil
}
