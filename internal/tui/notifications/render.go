package notifications

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/gallery/internal/tui/state"
)

// RenderAlert renders a modal alert box of at most width cells
func RenderAlert(severity Severity, message string, width int) string {
	style := severity.style()

	headerText := style.icon + " " + style.title
	innerWidth := max(min(max(lipgloss.Width(headerText), lipgloss.Width(message)), width-4), 1)

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Bold(true).
		Width(innerWidth).
		Render(headerText)

	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Width(innerWidth).
		Render(message)

	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Faint(true).
		Width(innerWidth).
		Render("press any key to close")

	content := lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", hint)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(style.borderForeground)).
		Background(lipgloss.Color(style.background)).
		Padding(0, 1).
		Render(content)
}

// RenderInline renders a compact single line notification for the status bar
func RenderInline(severity Severity, message string) string {
	style := severity.style()

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Background(lipgloss.Color(style.background)).
		Padding(0, 1).
		Render(style.icon + " " + message)
}

// RenderInlineFromState renders a compact inline notification from state
func RenderInlineFromState(n state.Notification) string {
	return RenderInline(FromLevel(n.Level), n.Message)
}
