package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/thenoetrevino/gallery/internal/config"
	"github.com/thenoetrevino/gallery/internal/imaging"
	"github.com/thenoetrevino/gallery/internal/labeling"
	"github.com/thenoetrevino/gallery/internal/pipeline"
	itemservice "github.com/thenoetrevino/gallery/internal/services/item"
	"github.com/thenoetrevino/gallery/internal/share"
	"github.com/thenoetrevino/gallery/internal/storage"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	Config *config.Config

	// Persistence backend selected by Config.Storage
	store   storage.Store
	labeler labeling.Labeler
	logger  *slog.Logger

	// Fetch pipeline shared by the wizard, the CLI and the HTTP API
	Pipeline *pipeline.Pipeline
	Renderer *share.Renderer

	// Service layer (business logic)
	ItemService itemservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
// Items are loaded from the store before New returns.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	ac := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(ac)
	}

	store := ac.store
	if store == nil {
		s, err := storage.Open(ctx, cfg.Storage)
		if err != nil {
			return nil, err
		}
		store = s
	}

	labeler := ac.labeler
	if labeler == nil {
		l, err := labeling.New(ctx, cfg.Labeling)
		if err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("failed to create labeler: %w", err)
		}
		labeler = l
	}

	pipeOpts := []pipeline.Option{
		pipeline.WithTimeout(cfg.Fetch.Timeout),
		pipeline.WithPlaceholderBase(cfg.Fetch.PlaceholderBase),
	}
	if ac.httpClient != nil {
		pipeOpts = append(pipeOpts, pipeline.WithHTTPClient(ac.httpClient))
	}
	pipe := pipeline.New(imaging.NewExtractor(cfg.Palette.Algorithm), labeler, pipeOpts...)

	renderer := share.NewRenderer(cfg.Share.Width)
	svcOpts := []itemservice.Option{itemservice.WithRenderer(renderer)}
	if ac.autoSave {
		svcOpts = append(svcOpts, itemservice.WithAutoSave())
	}

	a := &App{
		Config:      cfg,
		store:       store,
		labeler:     labeler,
		logger:      ac.logger,
		Pipeline:    pipe,
		Renderer:    renderer,
		ItemService: itemservice.NewService(store, pipe, svcOpts...),
	}

	if err := a.ItemService.Load(ctx); err != nil {
		_ = a.Close()
		return nil, err
	}
	a.logger.Debug("app initialized",
		"storage", cfg.Storage.Backend,
		"labeler", cfg.Labeling.Backend,
		"palette", cfg.Palette.Algorithm)
	return a, nil
}

// Store returns the persistence backend.
func (a *App) Store() storage.Store {
	return a.store
}

// Logger returns the logger the app was built with.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close releases the store and any labeler resources.
func (a *App) Close() error {
	var errs []error
	if c, ok := a.labeler.(io.Closer); ok {
		errs = append(errs, c.Close())
	}
	if a.store != nil {
		errs = append(errs, a.store.Close())
	}
	return errors.Join(errs...)
}
