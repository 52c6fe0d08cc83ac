package components

import (
	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"github.com/thenoetrevino/gallery/internal/models"
)

// ItemRowProps configures RenderItemRow
type ItemRowProps struct {
	Item     *models.Item
	Index    int
	Width    int
	Selected bool
	Reorder  bool
}

// RenderItemRow renders one item of the list: position, color swatch,
// label, and the image reference truncated to fit
func RenderItemRow(props ItemRowProps) string {
	marker := "  "
	if props.Selected {
		marker = "> "
		if props.Reorder {
			marker = "⇅ "
		}
	}

	head := marker + itoa(props.Index+1) + ". " + RenderColorSwatch(props.Item.Color) + " " + props.Item.Label + "  "
	style := RowStyle
	if props.Selected {
		style = SelectedRowStyle
	}

	// Row padding takes two cells
	room := props.Width - 2 - lipgloss.Width(head)
	ref := ""
	if room > 4 {
		ref = SubtleStyle.Render(truncate.StringWithTail(props.Item.ImageURL, uint(room), "…"))
	}

	return style.Width(max(props.Width, 1)).Render(head + ref)
}
