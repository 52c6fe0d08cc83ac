package tui

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/gallery/internal/tui/components"
	"github.com/thenoetrevino/gallery/internal/tui/huhforms"
	"github.com/thenoetrevino/gallery/internal/tui/state"
	"github.com/thenoetrevino/gallery/internal/tui/theme"
	"github.com/thenoetrevino/gallery/internal/wizard"
)

// dialogBox frames content with the add or edit border
func (m Model) dialogBox(title, content string) string {
	box := components.DialogBoxStyle
	if d := m.DialogState.Dialog; d != nil && d.Mode() == wizard.ModeEdit {
		box = components.EditDialogBoxStyle
	}
	return box.Width(m.dialogWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, components.TitleStyle.Render(title), "", content),
	)
}

func (m Model) dialogTitle() string {
	switch m.UIState.Mode() {
	case state.DimensionFormMode:
		return "Add image"
	case state.SourceFormMode:
		if m.DialogState.SourceKind == huhforms.SourceFile {
			return "Import image"
		}
		return "Add image from URL"
	case state.CustomLabelMode:
		return "Custom label"
	case state.FetchingMode:
		return "Loading image"
	}
	if d := m.DialogState.Dialog; d != nil && d.Mode() == wizard.ModeEdit {
		return "Edit item"
	}
	return "Choose color and label"
}

func (m Model) viewForm() string {
	if m.DialogState.Form == nil {
		return ""
	}
	hint := components.SubtleStyle.Render("enter: next  esc: cancel")
	return m.dialogBox(m.dialogTitle(), lipgloss.JoinVertical(lipgloss.Left, m.DialogState.Form.View(), "", hint))
}

func (m Model) viewFetching() string {
	line := m.Spinner.View() + " Fetching image, extracting colors and labels…"
	hint := components.SubtleStyle.Render("esc: cancel")
	return m.dialogBox(m.dialogTitle(), lipgloss.JoinVertical(lipgloss.Left, line, "", hint))
}

func (m Model) viewChipSelection() string {
	ds := m.DialogState
	if ds.Dialog == nil {
		return ""
	}
	inner := m.dialogWidth() - 6

	colorCursor, labelCursor := -1, -1
	if ds.Row == state.ColorRow {
		colorCursor = ds.Cursor
	} else {
		labelCursor = ds.Cursor
	}

	sections := []string{
		sectionTitle("Color", ds.Row == state.ColorRow),
		components.RenderChipGroup(ds.Dialog.Colors(), colorCursor, inner),
		"",
		sectionTitle("Label", ds.Row == state.LabelRow),
		components.RenderChipGroup(ds.Dialog.Labels(), labelCursor, inner),
	}
	if ds.Dialog.CustomSelected() && ds.CustomLabel != "" {
		sections = append(sections, components.SubtleStyle.Render("Custom: "+ds.CustomLabel))
	}
	if ds.Message != "" {
		sections = append(sections, "", lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Delete)).Render(ds.Message))
	}
	sections = append(sections, "", components.SubtleStyle.Render("←/→ move  tab: switch row  space: check  enter: save  esc: cancel"))

	return m.dialogBox(m.dialogTitle(), lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func sectionTitle(title string, focused bool) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
	if focused {
		style = style.Foreground(lipgloss.Color(theme.Highlight)).Bold(true)
	}
	return style.Render(title)
}

func (m Model) viewDeleteConfirm() string {
	prompt := fmt.Sprintf("Delete item '%s'?", m.ConfirmState.PendingLabel)
	hint := components.SubtleStyle.Render("y: delete  n/esc: cancel")
	return components.DeleteBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, prompt, "", hint))
}
