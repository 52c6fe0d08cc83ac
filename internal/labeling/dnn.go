//go:build opencv

package labeling

import (
	"bufio"
	"context"
	"fmt"
	"image"
	"os"
	"sort"
	"strings"
	"sync"

	"gocv.io/x/gocv"

	"github.com/thenoetrevino/gallery/internal/config"
	"github.com/thenoetrevino/gallery/internal/imaging"
)

// DNN classifies images on-device with an OpenCV DNN network
type DNN struct {
	mu      sync.Mutex // gocv.Net is not safe for concurrent Forward calls
	net     gocv.Net
	classes []string
	size    int
	limit   int
}

// NewDNN loads the network and its class names
func NewDNN(cfg config.DNNCfg, limit int) (Labeler, error) {
	if cfg.Model == "" || cfg.Labels == "" {
		return nil, ErrModelUnavailable
	}

	net := gocv.ReadNet(cfg.Model, cfg.Config)
	if net.Empty() {
		return nil, fmt.Errorf("%w: cannot read %s", ErrModelUnavailable, cfg.Model)
	}

	classes, err := readClasses(cfg.Labels)
	if err != nil {
		net.Close()
		return nil, err
	}

	size := cfg.Size
	if size <= 0 {
		size = 224
	}
	return &DNN{net: net, classes: classes, size: size, limit: limit}, nil
}

func readClasses(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open class names: %w", err)
	}
	defer f.Close()

	var classes []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		classes = append(classes, strings.TrimSpace(scanner.Text()))
	}
	return classes, scanner.Err()
}

// Label runs one forward pass and returns class names ordered by score
func (d *DNN) Label(ctx context.Context, img *imaging.Image) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mat, err := gocv.IMDecode(img.Raw, gocv.IMReadColor)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image for classifier: %w", err)
	}
	defer mat.Close()

	blob := gocv.BlobFromImage(mat, 1.0/255.0, image.Pt(d.size, d.size), gocv.NewScalar(0, 0, 0, 0), true, false)
	defer blob.Close()

	d.mu.Lock()
	d.net.SetInput(blob, "")
	prob := d.net.Forward("")
	d.mu.Unlock()
	defer prob.Close()

	n := int(prob.Total())
	type score struct {
		idx int
		val float32
	}
	scores := make([]score, 0, n)
	for i := 0; i < n; i++ {
		scores = append(scores, score{i, prob.GetFloatAt(0, i)})
	}
	sort.Slice(scores, func(i, j int) bool { return scores[i].val > scores[j].val })

	top := d.limit
	if top <= 0 || top > len(scores) {
		top = len(scores)
	}
	labels := make([]string, 0, top)
	for _, s := range scores[:top] {
		if s.idx < len(d.classes) {
			labels = append(labels, d.classes[s.idx])
		}
	}
	return labels, nil
}

// Close releases the network
func (d *DNN) Close() error {
	return d.net.Close()
}
