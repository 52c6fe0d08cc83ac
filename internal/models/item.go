package models

import (
	"time"

	"github.com/google/uuid"
)

// Item is a single gallery entry: an image reference plus the color and label chosen for it
type Item struct {
	ID        string    `json:"id"`
	ImageURL  string    `json:"image_url"` // http(s) URL or file:// URI
	Color     Color     `json:"color"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"created_at"`
}

// NewItem creates an item with a freshly generated ID
func NewItem(imageURL string, color Color, label string) *Item {
	return &Item{
		ID:        NewID(),
		ImageURL:  imageURL,
		Color:     color,
		Label:     label,
		CreatedAt: time.Now().UTC(),
	}
}

// NewID returns a time-ordered unique identifier for an item
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Equal reports whether two items are the same entry.
// Identity is the ID; two items with identical fields but different IDs are distinct.
func (i *Item) Equal(other *Item) bool {
	if i == nil || other == nil {
		return i == other
	}
	return i.ID == other.ID
}

// Clone returns a copy of the item
func (i *Item) Clone() *Item {
	if i == nil {
		return nil
	}
	c := *i
	return &c
}

// GetID implements the quiet-mode ID accessor used by the CLI output formatter
func (i *Item) GetID() string {
	return i.ID
}
