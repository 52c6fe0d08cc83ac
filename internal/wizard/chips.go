package wizard

import "github.com/thenoetrevino/gallery/internal/models"

// Chip is one selectable option in a chip group
type Chip struct {
	Text    string
	Color   models.Color // set for color chips
	Custom  bool         // the synthetic free-text label chip
	Checked bool
}

// ChipGroup is a single-selection group of chips
type ChipGroup struct {
	Chips []Chip
}

func colorChips(colors []models.Color) ChipGroup {
	g := ChipGroup{Chips: make([]Chip, 0, len(colors))}
	for _, c := range colors {
		g.Chips = append(g.Chips, Chip{Text: c.Hex(), Color: c})
	}
	return g
}

func labelChips(labels []string) ChipGroup {
	g := ChipGroup{Chips: make([]Chip, 0, len(labels)+1)}
	for _, l := range labels {
		g.Chips = append(g.Chips, Chip{Text: l})
	}
	g.Chips = append(g.Chips, Chip{Text: models.CustomChipText, Custom: true})
	return g
}

// Check selects chip i and clears every other chip. Checking a checked chip unchecks it.
func (g *ChipGroup) Check(i int) bool {
	if i < 0 || i >= len(g.Chips) {
		return false
	}
	was := g.Chips[i].Checked
	for j := range g.Chips {
		g.Chips[j].Checked = false
	}
	g.Chips[i].Checked = !was
	return true
}

// Select checks chip i and clears every other chip without toggling
func (g *ChipGroup) Select(i int) bool {
	if i < 0 || i >= len(g.Chips) {
		return false
	}
	for j := range g.Chips {
		g.Chips[j].Checked = j == i
	}
	return true
}

// Checked returns the index of the selected chip
func (g *ChipGroup) Checked() (int, bool) {
	for i, c := range g.Chips {
		if c.Checked {
			return i, true
		}
	}
	return -1, false
}

// Len returns the number of chips
func (g *ChipGroup) Len() int {
	return len(g.Chips)
}

func (g *ChipGroup) checkWhere(match func(Chip) bool) {
	for i, c := range g.Chips {
		if match(c) {
			g.Check(i)
			return
		}
	}
}
