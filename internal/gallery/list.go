// Package gallery holds the ordered item list and the filtered, sorted view shown to the user
package gallery

import (
	"fmt"
	"sort"
	"strings"

	"github.com/thenoetrevino/gallery/internal/models"
)

// List keeps the full ordered item list and the visible subset derived from it.
// It is not safe for concurrent use.
type List struct {
	items    []*models.Item
	visible  []*models.Item
	query    string
	sorted   bool
	listener Listener
}

// New creates a list over items, all visible
func New(items []*models.Item) *List {
	l := &List{}
	l.Replace(items)
	return l
}

// SetListener registers the change listener, replacing any previous one
func (l *List) SetListener(listener Listener) {
	l.listener = listener
}

func (l *List) notify(c Change) {
	if l.listener != nil {
		l.listener.OnChange(c)
	}
}

// Replace swaps in a new backing list and reapplies the active filter
func (l *List) Replace(items []*models.Item) {
	l.items = append([]*models.Item(nil), items...)
	l.refilter()
	l.notify(Change{Kind: Reset})
}

// Items returns the full backing list in persisted order
func (l *List) Items() []*models.Item {
	return append([]*models.Item(nil), l.items...)
}

// Visible returns the list as currently displayed
func (l *List) Visible() []*models.Item {
	return append([]*models.Item(nil), l.visible...)
}

// Len returns the number of visible items
func (l *List) Len() int {
	return len(l.visible)
}

// Query returns the active filter text
func (l *List) Query() string {
	return l.query
}

// At returns the visible item at position i
func (l *List) At(i int) (*models.Item, error) {
	if i < 0 || i >= len(l.visible) {
		return nil, fmt.Errorf("%w: %d", models.ErrInvalidPosition, i)
	}
	return l.visible[i], nil
}

// IndexOf returns the visible position of id, or -1
func (l *List) IndexOf(id string) int {
	return indexOf(l.visible, id)
}

// Get returns the item with id whether or not it is visible
func (l *List) Get(id string) (*models.Item, error) {
	i := indexOf(l.items, id)
	if i < 0 {
		return nil, models.ErrItemNotFound
	}
	return l.items[i], nil
}

// Add appends item. It becomes visible when it matches the active filter.
func (l *List) Add(item *models.Item) {
	l.items = append(l.items, item)
	if l.matches(item) {
		l.visible = append(l.visible, item)
		l.notify(Change{Kind: Inserted, Index: len(l.visible) - 1})
	}
}

// Delete removes the item with id
func (l *List) Delete(id string) error {
	i := indexOf(l.items, id)
	if i < 0 {
		return models.ErrItemNotFound
	}
	l.items = append(l.items[:i], l.items[i+1:]...)

	if v := indexOf(l.visible, id); v >= 0 {
		l.visible = append(l.visible[:v], l.visible[v+1:]...)
		l.notify(Change{Kind: Removed, Index: v})
	}
	return nil
}

// Edit replaces the item with id in place, keeping its ID and position.
// An edited item that no longer matches the filter leaves the visible list.
func (l *List) Edit(id string, item *models.Item) error {
	i := indexOf(l.items, id)
	if i < 0 {
		return models.ErrItemNotFound
	}
	item.ID = id
	l.items[i] = item

	v := indexOf(l.visible, id)
	switch {
	case v >= 0 && l.matches(item):
		l.visible[v] = item
		l.notify(Change{Kind: Changed, Index: v})
	case v >= 0:
		l.visible = append(l.visible[:v], l.visible[v+1:]...)
		l.notify(Change{Kind: Removed, Index: v})
	case l.matches(item):
		v = l.insertionPoint(i, item)
		l.visible = append(l.visible, nil)
		copy(l.visible[v+1:], l.visible[v:])
		l.visible[v] = item
		l.notify(Change{Kind: Inserted, Index: v})
	}
	return nil
}

// insertionPoint returns where item, at backing index i, belongs in the
// visible list: after equal labels when sorted, otherwise in backing order
func (l *List) insertionPoint(i int, item *models.Item) int {
	if l.sorted {
		return sort.Search(len(l.visible), func(j int) bool {
			return l.visible[j].Label > item.Label
		})
	}
	v := 0
	for _, other := range l.items[:i] {
		if v < len(l.visible) && l.visible[v].ID == other.ID {
			v++
		}
	}
	return v
}

// Move swaps visible positions from and to, and swaps the same two items in
// the backing list so the new order persists
func (l *List) Move(from, to int) error {
	if from < 0 || from >= len(l.visible) || to < 0 || to >= len(l.visible) {
		return fmt.Errorf("%w: %d -> %d", models.ErrInvalidPosition, from, to)
	}
	if from == to {
		return nil
	}

	a, b := l.visible[from], l.visible[to]
	l.visible[from], l.visible[to] = b, a

	ia, ib := indexOf(l.items, a.ID), indexOf(l.items, b.ID)
	if ia >= 0 && ib >= 0 {
		l.items[ia], l.items[ib] = l.items[ib], l.items[ia]
	}

	l.notify(Change{Kind: Moved, Index: from, To: to})
	return nil
}

// Filter shows only items whose label contains query, ignoring case.
// An empty or blank query shows every item. Surrounding spaces in a
// non-blank query are part of the match.
func (l *List) Filter(query string) {
	if strings.TrimSpace(query) == "" {
		query = ""
	}
	l.query = query
	l.refilter()
	l.notify(Change{Kind: Reset})
}

// SortAlphabetically orders the visible list by label. The backing order is untouched.
func (l *List) SortAlphabetically() {
	sort.SliceStable(l.visible, func(i, j int) bool {
		return l.visible[i].Label < l.visible[j].Label
	})
	l.sorted = true
	l.notify(Change{Kind: Reset})
}

func (l *List) refilter() {
	l.sorted = false
	l.visible = l.visible[:0:0]
	for _, item := range l.items {
		if l.matches(item) {
			l.visible = append(l.visible, item)
		}
	}
}

func (l *List) matches(item *models.Item) bool {
	if l.query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(item.Label), strings.ToLower(l.query))
}

func indexOf(items []*models.Item, id string) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
