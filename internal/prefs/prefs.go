// Package prefs persists the item list as a single JSON value in a diskv key-value directory
package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/peterbourgon/diskv/v3"

	"github.com/thenoetrevino/gallery/internal/models"
)

// ItemsKey is the key holding the serialized list
const ItemsKey = "items"

// Store keeps the whole list under ItemsKey
type Store struct {
	d *diskv.Diskv
}

// Open creates a store rooted at dir
func Open(dir string) *Store {
	return &Store{d: diskv.New(diskv.Options{
		BasePath:     dir,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 1024 * 1024, // 1MB
	})}
}

// Load returns the stored list, or an empty list when nothing was saved yet
func (s *Store) Load(ctx context.Context) ([]*models.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := s.d.Read(ItemsKey)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ItemsKey, err)
	}

	var items []*models.Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", ItemsKey, err)
	}
	return items, nil
}

// Save overwrites the stored list
func (s *Store) Save(ctx context.Context, items []*models.Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if items == nil {
		items = []*models.Item{}
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", ItemsKey, err)
	}
	if err := s.d.Write(ItemsKey, raw); err != nil {
		return fmt.Errorf("failed to write %s: %w", ItemsKey, err)
	}
	return nil
}

// Close releases nothing; diskv holds no open handles
func (s *Store) Close() error {
	return nil
}
