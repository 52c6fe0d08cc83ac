package components

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"

	"github.com/thenoetrevino/gallery/internal/models"
	"github.com/thenoetrevino/gallery/internal/wizard"
)

func TestContrastText(t *testing.T) {
	assert.Equal(t, "#000000", ContrastText(models.Color(0xFFFFFF)))
	assert.Equal(t, "#FFFFFF", ContrastText(models.Color(0x000000)))
	assert.Equal(t, "#000000", ContrastText(models.Color(0xFFEB3B)))
	assert.Equal(t, "#FFFFFF", ContrastText(models.Color(0x1A237E)))
}

func TestRenderItemRow(t *testing.T) {
	item := &models.Item{ID: "1", Label: "Dog", Color: 0xFF0000, ImageURL: "https://example.com/a.png"}

	row := RenderItemRow(ItemRowProps{Item: item, Index: 0, Width: 60, Selected: true})
	assert.Contains(t, row, "> 1. ")
	assert.Contains(t, row, "Dog")
	assert.Equal(t, 60, lipgloss.Width(row))

	row = RenderItemRow(ItemRowProps{Item: item, Index: 4, Width: 60, Selected: true, Reorder: true})
	assert.Contains(t, row, "⇅ 5. ")

	narrow := RenderItemRow(ItemRowProps{Item: item, Index: 0, Width: 14})
	assert.NotContains(t, narrow, "https")
}

func TestRenderChipGroup(t *testing.T) {
	g := wizard.ChipGroup{Chips: []wizard.Chip{
		{Text: "Dog", Checked: true},
		{Text: "Grass"},
		{Text: models.CustomChipText, Custom: true},
	}}

	out := RenderChipGroup(g, 1, 80)
	assert.Contains(t, out, "✓ Dog")
	assert.Contains(t, out, "Grass")
	assert.Contains(t, out, models.CustomChipText)
	assert.Equal(t, 3, lipgloss.Height(out), "one row of bordered chips")

	wrapped := RenderChipGroup(g, -1, 12)
	assert.Greater(t, lipgloss.Height(wrapped), 3)

	assert.Contains(t, RenderChipGroup(wizard.ChipGroup{}, 0, 80), "none found")
}

func TestRenderStatusBar(t *testing.T) {
	out := RenderStatusBar(StatusBarProps{Width: 80, Count: 2, Total: 5, Query: "do", Reorder: true})
	assert.Contains(t, out, "Gallery")
	assert.Contains(t, out, "/do")
	assert.Contains(t, out, "REORDER")
	assert.Contains(t, out, "2/5 items")

	out = RenderStatusBar(StatusBarProps{Width: 80, Count: 3, Total: 3})
	assert.Contains(t, out, "3 items")
	assert.False(t, strings.Contains(out, "REORDER"))
}

func TestRenderMarkdown(t *testing.T) {
	out := RenderMarkdown("# Keys\n\n- `a` add", 40)
	assert.Contains(t, out, "Keys")
	assert.Contains(t, out, "add")
}
