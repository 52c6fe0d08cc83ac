//go:build !opencv

package labeling

import "github.com/thenoetrevino/gallery/internal/config"

// NewDNN reports that the classifier is unavailable in builds without OpenCV
func NewDNN(cfg config.DNNCfg, limit int) (Labeler, error) {
	return nil, ErrModelUnavailable
}
