package item

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/thenoetrevino/gallery/internal/gallery"
	"github.com/thenoetrevino/gallery/internal/imaging"
	"github.com/thenoetrevino/gallery/internal/models"
	"github.com/thenoetrevino/gallery/internal/share"
	"github.com/thenoetrevino/gallery/internal/storage"
)

// Service defines all item-related business operations
type Service interface {
	// Persistence
	Load(ctx context.Context) error
	Save(ctx context.Context) error

	// Read operations
	List(ctx context.Context, req ListRequest) ([]*models.Item, error)
	Get(ctx context.Context, id string) (*models.Item, error)

	// Write operations
	Add(ctx context.Context, req CreateItemRequest) (*models.Item, error)
	Update(ctx context.Context, req UpdateItemRequest) (*models.Item, error)
	Delete(ctx context.Context, id string) error
	Move(ctx context.Context, req MoveRequest) error

	// Share renders the item's card as PNG into w
	Share(ctx context.Context, id string, w io.Writer) error

	// Gallery exposes the list the TUI renders and mutates directly
	Gallery() *gallery.List
}

// ImageLoader loads the image behind an item reference
type ImageLoader interface {
	LoadImage(ctx context.Context, ref string) (*imaging.Image, error)
}

// ListRequest selects the visible view of the list
type ListRequest struct {
	Query string
	Sort  bool
}

// CreateItemRequest encapsulates data for adding an item
type CreateItemRequest struct {
	ImageURL string
	Color    models.Color
	Label    string
}

// UpdateItemRequest encapsulates data for editing an item. Nil fields are kept.
type UpdateItemRequest struct {
	ID       string
	ImageURL *string
	Color    *models.Color
	Label    *string
}

// MoveRequest swaps two positions of the view described by ListRequest
type MoveRequest struct {
	ListRequest
	From int
	To   int
}

// service implements Service interface
type service struct {
	mu       sync.Mutex
	store    storage.Store
	list     *gallery.List
	images   ImageLoader
	renderer *share.Renderer
	autoSave bool
}

// Option is a functional option for configuring the service
type Option func(*service)

// WithAutoSave persists the list after every successful mutation
func WithAutoSave() Option {
	return func(s *service) {
		s.autoSave = true
	}
}

// WithRenderer sets the share card renderer
func WithRenderer(r *share.Renderer) Option {
	return func(s *service) {
		s.renderer = r
	}
}

// NewService creates a new item service over store
func NewService(store storage.Store, images ImageLoader, opts ...Option) Service {
	s := &service{
		store:    store,
		list:     gallery.New(nil),
		images:   images,
		renderer: share.NewRenderer(0),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory list with the stored one
func (s *service) Load(ctx context.Context) error {
	items, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load items: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.list.Replace(items)
	slog.Debug("items loaded", "count", len(items))
	return nil
}

// Save writes the full list in backing order
func (s *service) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(ctx)
}

func (s *service) saveLocked(ctx context.Context) error {
	if err := s.store.Save(ctx, s.list.Items()); err != nil {
		slog.Error("failed to save items", "error", err)
		return fmt.Errorf("failed to save items: %w", err)
	}
	return nil
}

// afterMutation saves when auto-save is on. A failed save restores the
// backing list to before so callers never see an unsaved change.
func (s *service) afterMutation(ctx context.Context, before []*models.Item) error {
	if !s.autoSave {
		return nil
	}
	if err := s.saveLocked(ctx); err != nil {
		s.list.Replace(before)
		return err
	}
	return nil
}

// List applies the filter and optional sort and returns the visible items
func (s *service) List(ctx context.Context, req ListRequest) ([]*models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.applyView(req)
	return s.list.Visible(), nil
}

func (s *service) applyView(req ListRequest) {
	s.list.Filter(req.Query)
	if req.Sort {
		s.list.SortAlphabetically()
	}
}

// Get retrieves an item by ID
func (s *service) Get(ctx context.Context, id string) (*models.Item, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidItemID
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.Get(id)
}

// Add validates and appends a new item
func (s *service) Add(ctx context.Context, req CreateItemRequest) (*models.Item, error) {
	label, err := validateLabel(req.Label)
	if err != nil {
		return nil, err
	}
	if err := validateImageURL(req.ImageURL); err != nil {
		return nil, err
	}

	item := models.NewItem(req.ImageURL, req.Color, label)

	s.mu.Lock()
	defer s.mu.Unlock()
	before := s.list.Items()
	s.list.Add(item)
	if err := s.afterMutation(ctx, before); err != nil {
		return nil, err
	}
	return item, nil
}

// Update edits an item in place
func (s *service) Update(ctx context.Context, req UpdateItemRequest) (*models.Item, error) {
	if strings.TrimSpace(req.ID) == "" {
		return nil, ErrInvalidItemID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.list.Get(req.ID)
	if err != nil {
		return nil, err
	}
	updated := existing.Clone()

	if req.Label != nil {
		if updated.Label, err = validateLabel(*req.Label); err != nil {
			return nil, err
		}
	}
	if req.ImageURL != nil {
		if err := validateImageURL(*req.ImageURL); err != nil {
			return nil, err
		}
		updated.ImageURL = *req.ImageURL
	}
	if req.Color != nil {
		updated.Color = *req.Color
	}

	before := s.list.Items()
	if err := s.list.Edit(req.ID, updated); err != nil {
		return nil, err
	}
	if err := s.afterMutation(ctx, before); err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes an item
func (s *service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidItemID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.list.Items()
	if err := s.list.Delete(id); err != nil {
		return err
	}
	return s.afterMutation(ctx, before)
}

// Move swaps two positions of the requested view
func (s *service) Move(ctx context.Context, req MoveRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.applyView(req.ListRequest)
	before := s.list.Items()
	if err := s.list.Move(req.From, req.To); err != nil {
		return err
	}
	return s.afterMutation(ctx, before)
}

// Share renders the item's card into w
func (s *service) Share(ctx context.Context, id string, w io.Writer) error {
	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	img, err := s.images.LoadImage(ctx, item.ImageURL)
	if err != nil {
		return fmt.Errorf("failed to load image for %s: %w", id, err)
	}
	return s.renderer.WritePNG(w, img.Decoded, item)
}

// Gallery returns the underlying list
func (s *service) Gallery() *gallery.List {
	return s.list
}

func validateLabel(label string) (string, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return "", ErrEmptyLabel
	}
	if utf8.RuneCountInString(label) > models.MaxLabelLength {
		return "", ErrLabelTooLong
	}
	return label, nil
}

func validateImageURL(ref string) error {
	if strings.HasPrefix(ref, models.FileScheme) {
		return nil
	}
	u, err := url.Parse(ref)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidImageURL
	}
	return nil
}
