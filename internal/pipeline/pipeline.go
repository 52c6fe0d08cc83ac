// Package pipeline turns an image reference into the palette and labels offered to the user
package pipeline

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/thenoetrevino/gallery/internal/imaging"
	"github.com/thenoetrevino/gallery/internal/labeling"
	"github.com/thenoetrevino/gallery/internal/models"
)

// DefaultTimeout bounds every HTTP request made by the pipeline
const DefaultTimeout = 30 * time.Second

// Result is the outcome of a successful fetch
type Result struct {
	URL    string
	Image  *imaging.Image
	Colors []models.Color
	Labels []string
}

// Pipeline fetches images and extracts their features
type Pipeline struct {
	client          *http.Client
	placeholderBase string
	extractor       imaging.PaletteExtractor
	labeler         labeling.Labeler
}

// Option is a functional option for configuring a Pipeline
type Option func(*Pipeline)

// WithHTTPClient replaces the HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(p *Pipeline) {
		p.client = c
	}
}

// WithTimeout sets the HTTP client timeout
func WithTimeout(d time.Duration) Option {
	return func(p *Pipeline) {
		if d > 0 {
			p.client = &http.Client{Timeout: d, Transport: p.client.Transport}
		}
	}
}

// WithPlaceholderBase sets the placeholder image service base URL
func WithPlaceholderBase(base string) Option {
	return func(p *Pipeline) {
		p.placeholderBase = base
	}
}

// New creates a pipeline using extractor for colors and labeler for labels
func New(extractor imaging.PaletteExtractor, labeler labeling.Labeler, opts ...Option) *Pipeline {
	p := &Pipeline{
		client:          &http.Client{Timeout: DefaultTimeout},
		placeholderBase: models.DefaultPlaceholderBase,
		extractor:       extractor,
		labeler:         labeler,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// FetchPlaceholder requests a random image of the given size, resolves the
// placeholder redirect to its permanent URL and analyzes the image
func (p *Pipeline) FetchPlaceholder(ctx context.Context, d imaging.Dimensions) (*Result, error) {
	placeholder := imaging.PlaceholderURL(p.placeholderBase, d)

	resolved, err := imaging.ResolveRedirect(ctx, p.client, placeholder)
	if err != nil {
		slog.Error("failed to resolve placeholder", "url", placeholder, "error", err)
		return nil, &FetchError{Stage: StageResolve, Err: err}
	}
	slog.Debug("placeholder resolved", "from", placeholder, "to", resolved)

	return p.fetch(ctx, resolved)
}

// FetchURL loads an existing reference (http(s) or file://) without a redirect step
func (p *Pipeline) FetchURL(ctx context.Context, ref string) (*Result, error) {
	return p.fetch(ctx, ref)
}

// FetchFile imports a local image; the result URL is its file:// URI
func (p *Pipeline) FetchFile(ctx context.Context, path string) (*Result, error) {
	uri, err := imaging.FileURI(path)
	if err != nil {
		return nil, &FetchError{Stage: StageDownload, Err: err}
	}
	return p.fetch(ctx, uri)
}

// LoadImage loads an item's image without analyzing it
func (p *Pipeline) LoadImage(ctx context.Context, ref string) (*imaging.Image, error) {
	img, err := imaging.Load(ctx, p.client, ref)
	if err != nil {
		return nil, &FetchError{Stage: StageDownload, Err: err}
	}
	return img, nil
}

func (p *Pipeline) fetch(ctx context.Context, ref string) (*Result, error) {
	img, err := imaging.Load(ctx, p.client, ref)
	if err != nil {
		slog.Error("failed to load image", "url", ref, "error", err)
		return nil, &FetchError{Stage: StageDownload, Err: err}
	}

	colors, labels, err := p.Analyze(ctx, img)
	if err != nil {
		return nil, err
	}

	return &Result{URL: ref, Image: img, Colors: colors, Labels: labels}, nil
}

// Analyze extracts the palette and the labels concurrently. The first failure
// cancels the other task.
func (p *Pipeline) Analyze(ctx context.Context, img *imaging.Image) ([]models.Color, []string, error) {
	var colors []models.Color
	var labels []string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := p.extractor.Extract(img.Decoded)
		if err != nil {
			slog.Error("palette extraction failed", "error", err)
			return &FetchError{Stage: StagePalette, Err: err}
		}
		colors = c
		return nil
	})
	g.Go(func() error {
		l, err := p.labeler.Label(gctx, img)
		if err != nil {
			slog.Error("labeling failed", "error", err)
			return &FetchError{Stage: StageLabel, Err: err}
		}
		labels = l
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return colors, labels, nil
}
