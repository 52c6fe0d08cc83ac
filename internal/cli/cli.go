package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/thenoetrevino/gallery/internal/app"
	"github.com/thenoetrevino/gallery/internal/config"
)

// CLI represents the CLI application context
type CLI struct {
	App   *app.App // Application container with services
	ctx   context.Context
	owned bool
}

type contextKey struct{}

// WithApp stores an already built App in ctx. Commands executed with that
// context use it instead of opening the configured store.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, contextKey{}, a)
}

// NewCLI loads the user config and builds an App that saves after every mutation
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	application, err := app.New(ctx, cfg, app.WithAutoSave())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize app: %w", err)
	}

	return &CLI{
		App:   application,
		ctx:   ctx,
		owned: true,
	}, nil
}

// GetCLIFromContext returns a CLI around the App stored by WithApp, or a new one
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		return nil, errors.New("nil context")
	}
	if a, ok := ctx.Value(contextKey{}).(*app.App); ok && a != nil {
		return &CLI{App: a, ctx: ctx}, nil
	}
	return NewCLI(ctx)
}

// Close cleans up CLI resources. An App injected through WithApp is left open.
func (c *CLI) Close() error {
	if !c.owned || c.App == nil {
		return nil
	}
	return c.App.Close()
}
