package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/gallery/internal/tui/components"
	"github.com/thenoetrevino/gallery/internal/tui/layers"
	"github.com/thenoetrevino/gallery/internal/tui/notifications"
	"github.com/thenoetrevino/gallery/internal/tui/state"
	"github.com/thenoetrevino/gallery/internal/tui/theme"
)

// View renders the current state of the application.
// Required by tea.Model interface
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.BackgroundColor = lipgloss.Color(theme.Background)

	// Wait for terminal size to be initialized
	if m.UIState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	stack := []*lipgloss.Layer{lipgloss.NewLayer(m.viewList())}
	if modal := m.modalLayer(); modal != nil {
		stack = append(stack, modal)
	}

	view.Content = lipgloss.NewCanvas(stack...).Render()
	return view
}

// viewList renders the header, the visible rows and the status bar
func (m Model) viewList() string {
	width := m.UIState.Width()
	items := m.visibleItems()
	rows := m.UIState.ContentHeight()

	header := components.TitleStyle.Render("Gallery")
	if m.UIState.Mode() == state.SearchMode {
		header = lipgloss.JoinHorizontal(lipgloss.Top, header, "  ", "/"+m.SearchState.Query+"█")
	}

	var lines []string
	switch {
	case len(items) == 0 && m.SearchState.Query != "":
		lines = append(lines, components.SubtleStyle.Render(fmt.Sprintf("No items match %q", m.SearchState.Query)))
	case len(items) == 0:
		lines = append(lines, components.SubtleStyle.Render(
			fmt.Sprintf("No items yet. Press %s to add one.", m.Config.KeyMappings.AddItem)))
	default:
		start := m.UIState.ScrollOffset()
		end := min(start+rows, len(items))
		for i := start; i < end; i++ {
			lines = append(lines, components.RenderItemRow(components.ItemRowProps{
				Item:     items[i],
				Index:    i,
				Width:    width,
				Selected: i == m.UIState.SelectedItem(),
				Reorder:  m.UIState.Reorder(),
			}))
		}
	}
	for len(lines) < rows {
		lines = append(lines, "")
	}

	var left string
	if n, ok := m.NotificationState.Latest(); ok {
		left = notifications.RenderInlineFromState(n)
	}
	statusBar := components.RenderStatusBar(components.StatusBarProps{
		Width:   width,
		Left:    left,
		Count:   len(items),
		Total:   len(m.list().Items()),
		Query:   m.SearchState.Query,
		Reorder: m.UIState.Reorder(),
	})

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		strings.Join(lines, "\n"),
		"",
		statusBar,
	)
}

// modalLayer renders the overlay for the current mode, if it has one
func (m Model) modalLayer() *lipgloss.Layer {
	var content string
	switch m.UIState.Mode() {
	case state.DimensionFormMode, state.SourceFormMode, state.CustomLabelMode:
		content = m.viewForm()
	case state.FetchingMode:
		content = m.viewFetching()
	case state.ChipSelectionMode:
		content = m.viewChipSelection()
	case state.DeleteConfirmMode:
		content = m.viewDeleteConfirm()
	case state.AlertMode:
		content = notifications.RenderAlert(notifications.Error, m.ConfirmState.Alert, m.dialogWidth())
	case state.HelpMode:
		content = m.viewHelp()
	default:
		return nil
	}
	return layers.CreateCenteredLayer(content, m.UIState.Width(), m.UIState.Height())
}
