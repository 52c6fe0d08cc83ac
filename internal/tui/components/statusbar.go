package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/gallery/internal/tui/theme"
)

// StatusBarProps configures RenderStatusBar
type StatusBarProps struct {
	Width int

	// Left replaces the default title, e.g. with a notification
	Left string

	// Count is the number of visible items out of Total
	Count int
	Total int

	Query   string
	Reorder bool
}

// RenderStatusBar renders a status bar with left and right aligned text.
// Left side: the notification or "Gallery".
// Right side: filter, reorder flag, count and the help hint.
func RenderStatusBar(props StatusBarProps) string {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.StatusBarText)).
		Background(lipgloss.Color(theme.StatusBarBg))

	left := props.Left
	if left == "" {
		left = style.Render("Gallery")
	}

	var right []string
	if props.Query != "" {
		right = append(right, "/"+props.Query)
	}
	if props.Reorder {
		right = append(right, "REORDER")
	}
	right = append(right, countText(props.Count, props.Total), "press ? for help")
	rightRendered := style.Render(strings.Join(right, "  "))

	gapWidth := max(props.Width-lipgloss.Width(left)-lipgloss.Width(rightRendered), 1)
	gap := style.Render(strings.Repeat(" ", gapWidth))

	return lipgloss.JoinHorizontal(lipgloss.Top, left, gap, rightRendered)
}

func countText(count, total int) string {
	noun := " items"
	if total == 1 {
		noun = " item"
	}
	if count == total {
		return itoa(total) + noun
	}
	return itoa(count) + "/" + itoa(total) + noun
}
