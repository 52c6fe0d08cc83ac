package pipeline

import (
	"errors"

	"github.com/thenoetrevino/gallery/internal/imaging"
)

// Stage names the pipeline step that failed
type Stage string

// Pipeline stages
const (
	StageResolve  Stage = "resolve"
	StageDownload Stage = "download"
	StagePalette  Stage = "palette"
	StageLabel    Stage = "label"
)

// FetchError reports a pipeline failure as one human-readable message
type FetchError struct {
	Stage Stage
	Err   error
}

func (e *FetchError) Error() string {
	switch e.Stage {
	case StageResolve, StageDownload:
		if errors.Is(e.Err, imaging.ErrMalformedURL) {
			return "malformed URL"
		}
		return "Image load failed"
	case StagePalette:
		return "color palette is null"
	case StageLabel:
		return "labeling failed: " + e.Err.Error()
	default:
		return e.Err.Error()
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
