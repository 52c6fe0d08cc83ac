// Package labeling describes image content as short text labels
package labeling

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/gallery/internal/config"
	"github.com/thenoetrevino/gallery/internal/imaging"
)

// Labeler returns an ordered list of labels for an image.
// Labels are not deduplicated or filtered by confidence.
type Labeler interface {
	Label(ctx context.Context, img *imaging.Image) ([]string, error)
}

// Labeler errors
var (
	ErrModelUnavailable = errors.New("on-device model unavailable")
	ErrMissingAPIKey    = errors.New("GEMINI_API_KEY is not set")
	ErrUnknownBackend   = errors.New("unknown labeling backend")
)

// Func adapts a function to the Labeler interface
type Func func(ctx context.Context, img *imaging.Image) ([]string, error)

// Label calls f
func (f Func) Label(ctx context.Context, img *imaging.Image) ([]string, error) {
	return f(ctx, img)
}

// New builds the labeler selected by cfg.Backend
func New(ctx context.Context, cfg config.LabelingConfig) (Labeler, error) {
	switch cfg.Backend {
	case "", "colors":
		return NewColorNamer(imaging.NewTargetExtractor(), cfg.MaxLabels), nil
	case "gemini":
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			return nil, ErrMissingAPIKey
		}
		return NewGemini(ctx, apiKey, cfg.Gemini.Model, cfg.MaxLabels)
	case "dnn":
		return NewDNN(cfg.DNN, cfg.MaxLabels)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, cfg.Backend)
	}
}

func truncate(labels []string, limit int) []string {
	if limit > 0 && len(labels) > limit {
		return labels[:limit]
	}
	return labels
}
