// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/gallery/internal/config/colors"
	"github.com/thenoetrevino/gallery/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// TitleStyle defines the app header
	TitleStyle lipgloss.Style

	// RowStyle is an unselected item row
	RowStyle lipgloss.Style

	// SelectedRowStyle is the row under the cursor
	SelectedRowStyle lipgloss.Style

	// SubtleStyle renders secondary text such as image references
	SubtleStyle lipgloss.Style

	// DialogBoxStyle defines the add dialog frame (create color border)
	DialogBoxStyle lipgloss.Style

	// EditDialogBoxStyle defines the edit dialog frame (edit color border)
	EditDialogBoxStyle lipgloss.Style

	// DeleteBoxStyle frames the delete confirmation (delete color border)
	DeleteBoxStyle lipgloss.Style

	// HelpBoxStyle frames the help overlay
	HelpBoxStyle lipgloss.Style
)

func init() {
	InitStyles(*colors.Default())
}

// InitStyles rebuilds every style from the given color scheme.
// theme.Init must be called with the same scheme first.
func InitStyles(scheme colors.ColorScheme) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title))

	RowStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal)).
		Padding(0, 1)

	SelectedRowStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal)).
		Background(lipgloss.Color(scheme.SelectedBg)).
		Bold(true).
		Padding(0, 1)

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	dialog := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2)

	DialogBoxStyle = dialog.BorderForeground(lipgloss.Color(scheme.Create))
	EditDialogBoxStyle = dialog.BorderForeground(lipgloss.Color(scheme.Edit))
	DeleteBoxStyle = dialog.BorderForeground(lipgloss.Color(scheme.Delete))
	HelpBoxStyle = dialog.BorderForeground(lipgloss.Color(theme.Highlight))
}
