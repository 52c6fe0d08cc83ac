package tui

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/gallery/internal/config"
	"github.com/thenoetrevino/gallery/internal/tui/components"
)

// helpMarkdown lists the key bindings of km as a markdown table
func helpMarkdown(km config.KeyMappings) string {
	rows := []struct{ key, action string }{
		{km.AddItem, "Add an image from the placeholder service"},
		{km.ImportFile, "Import an image file"},
		{km.AddFromURL, "Add an image from a URL"},
		{km.EditItem, "Refetch and edit the selected item"},
		{km.DeleteItem, "Delete the selected item"},
		{km.ShareItem, "Save a card image and copy its path"},
		{km.Search, "Filter by label"},
		{km.Sort, "Sort by label"},
		{km.ToggleReorder, "Toggle reorder mode"},
		{km.MoveItemDown + " / " + km.MoveItemUp, "Move the selected item (reorder mode)"},
		{km.NextItem + " / " + km.PrevItem, "Next / previous item"},
		{km.ShowHelp, "Toggle this help"},
		{km.Quit, "Save and quit"},
	}

	var b strings.Builder
	b.WriteString("# Gallery keys\n\n| Key | Action |\n| --- | --- |\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "| `%s` | %s |\n", r.key, r.action)
	}
	b.WriteString("\nIn the chip dialog: arrows move, `tab` switches between colors and labels, ")
	b.WriteString("`space` checks a chip, `enter` saves and `esc` cancels the fetch.\n")
	return b.String()
}

func (m Model) viewHelp() string {
	width := m.dialogWidth()
	return components.HelpBoxStyle.Width(width).Render(
		components.RenderMarkdown(helpMarkdown(m.Config.KeyMappings), width-6),
	)
}
