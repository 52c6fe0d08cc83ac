package components

import (
	"strconv"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/gallery/internal/models"
	"github.com/thenoetrevino/gallery/internal/tui/theme"
	"github.com/thenoetrevino/gallery/internal/wizard"
)

// RenderColorSwatch renders a small block in c
func RenderColorSwatch(c models.Color) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Hex())).
		Render("■")
}

// RenderChip renders a single chip. Checked chips are filled; the focused
// chip gets a highlighted border.
func RenderChip(chip wizard.Chip, focused bool) string {
	text := chip.Text
	if chip.Checked {
		text = "✓ " + text
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.ChipBorder)).
		Padding(0, 1)

	switch {
	case !chip.Custom && chip.Text == chip.Color.Hex():
		style = style.
			Background(lipgloss.Color(chip.Color.Hex())).
			Foreground(lipgloss.Color(ContrastText(chip.Color)))
	case chip.Checked:
		style = style.
			Background(lipgloss.Color(theme.ChipChecked)).
			Foreground(lipgloss.Color(theme.Normal))
	default:
		style = style.Foreground(lipgloss.Color(theme.Normal))
	}

	if focused {
		style = style.BorderForeground(lipgloss.Color(theme.Highlight)).Bold(true)
	}
	return style.Render(text)
}

// RenderChipGroup renders the chips of g in rows no wider than width.
// cursor is the focused chip index, or -1.
func RenderChipGroup(g wizard.ChipGroup, cursor, width int) string {
	if len(g.Chips) == 0 {
		return SubtleStyle.Render("(none found)")
	}

	var rows []string
	var row []string
	rowWidth := 0
	for i, chip := range g.Chips {
		rendered := RenderChip(chip, i == cursor)
		w := lipgloss.Width(rendered)
		if rowWidth > 0 && rowWidth+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		row = append(row, rendered)
		rowWidth += w
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// ContrastText returns black or white, whichever reads better on c
func ContrastText(c models.Color) string {
	r, g, b := c.Channels()
	luma := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
	if luma > 140 {
		return "#000000"
	}
	return "#FFFFFF"
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
