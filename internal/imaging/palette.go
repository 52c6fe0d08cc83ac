package imaging

import (
	"image"
	"math"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/thenoetrevino/gallery/internal/models"
)

// PaletteExtractor selects a small set of representative colors from an image
type PaletteExtractor interface {
	Extract(img image.Image) ([]models.Color, error)
}

// Swatch is one quantized color cluster and how many sampled pixels fell into it
type Swatch struct {
	Color      models.Color
	Population int
	hue        float64
	saturation float64
	lightness  float64
}

func newSwatch(c models.Color, population int) Swatch {
	r, g, b := c.Channels()
	h, s, l := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}.Hsl()
	return Swatch{Color: c, Population: population, hue: h, saturation: s, lightness: l}
}

// Target describes the saturation/lightness window a palette slot prefers
type Target struct {
	Name                                    string
	MinSaturation, TargetSat, MaxSaturation float64
	MinLightness, TargetLight, MaxLightness float64
}

// Default targets, in the order colors are reported
var (
	TargetVibrant      = Target{"vibrant", 0.35, 1, 1, 0.3, 0.5, 0.7}
	TargetLightVibrant = Target{"light_vibrant", 0.35, 1, 1, 0.55, 0.74, 1}
	TargetDarkVibrant  = Target{"dark_vibrant", 0.35, 1, 1, 0, 0.26, 0.45}
	TargetMuted        = Target{"muted", 0, 0.3, 0.4, 0.3, 0.5, 0.7}
	TargetLightMuted   = Target{"light_muted", 0, 0.3, 0.4, 0.55, 0.74, 1}
	TargetDarkMuted    = Target{"dark_muted", 0, 0.3, 0.4, 0, 0.26, 0.45}

	DefaultTargets = []Target{
		TargetVibrant, TargetLightVibrant, TargetDarkVibrant,
		TargetMuted, TargetLightMuted, TargetDarkMuted,
	}
)

const (
	saturationWeight = 0.24
	lightnessWeight  = 0.52
	populationWeight = 0.24

	defaultResizeArea = 112 * 112
	defaultMaxColors  = 16
	quantizeBits      = 5
)

// TargetExtractor scores quantized swatches against the vibrant/muted targets.
// Each swatch fills at most one target.
type TargetExtractor struct {
	ResizeArea int
	MaxColors  int
	Targets    []Target
}

// NewTargetExtractor returns an extractor with the default six targets
func NewTargetExtractor() *TargetExtractor {
	return &TargetExtractor{
		ResizeArea: defaultResizeArea,
		MaxColors:  defaultMaxColors,
		Targets:    DefaultTargets,
	}
}

// Extract returns up to len(Targets) distinct colors, never models.NoColor
func (e *TargetExtractor) Extract(img image.Image) ([]models.Color, error) {
	swatches, err := e.Swatches(img)
	if err != nil {
		return nil, err
	}

	maxPop := 0
	for _, s := range swatches {
		if s.Population > maxPop {
			maxPop = s.Population
		}
	}

	used := make(map[models.Color]bool)
	var colors []models.Color
	for _, target := range e.Targets {
		best, ok := scoreTarget(target, swatches, used, maxPop)
		if !ok {
			continue
		}
		used[best.Color] = true
		if best.Color != models.NoColor {
			colors = append(colors, best.Color)
		}
	}

	return dedupe(colors), nil
}

// Swatches samples the image and reduces it to at most MaxColors clusters
func (e *TargetExtractor) Swatches(img image.Image) ([]Swatch, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, ErrEmptyPalette
	}

	hist := histogram(img, e.ResizeArea)
	if len(hist) == 0 {
		return nil, ErrEmptyPalette
	}

	maxColors := e.MaxColors
	if maxColors <= 0 {
		maxColors = defaultMaxColors
	}

	var swatches []Swatch
	if len(hist) <= maxColors {
		for _, entry := range hist {
			swatches = append(swatches, newSwatch(entry.color(), entry.count))
		}
	} else {
		swatches = medianCut(hist, maxColors)
	}

	allowed := swatches[:0]
	for _, s := range swatches {
		if isAllowed(s) {
			allowed = append(allowed, s)
		}
	}
	return allowed, nil
}

func scoreTarget(t Target, swatches []Swatch, used map[models.Color]bool, maxPop int) (Swatch, bool) {
	var best Swatch
	bestScore := math.Inf(-1)
	found := false
	for _, s := range swatches {
		if used[s.Color] {
			continue
		}
		if s.saturation < t.MinSaturation || s.saturation > t.MaxSaturation ||
			s.lightness < t.MinLightness || s.lightness > t.MaxLightness {
			continue
		}
		score := saturationWeight*(1-math.Abs(s.saturation-t.TargetSat)) +
			lightnessWeight*(1-math.Abs(s.lightness-t.TargetLight))
		if maxPop > 0 {
			score += populationWeight * float64(s.Population) / float64(maxPop)
		}
		if score > bestScore {
			best, bestScore, found = s, score, true
		}
	}
	return best, found
}

// isAllowed drops near-black, near-white and the skin-tone "red I line" swatches
func isAllowed(s Swatch) bool {
	if s.lightness <= 0.05 || s.lightness >= 0.95 {
		return false
	}
	if s.hue >= 10 && s.hue <= 37 && s.saturation <= 0.82 {
		return false
	}
	return true
}

func dedupe(colors []models.Color) []models.Color {
	seen := make(map[models.Color]bool, len(colors))
	out := colors[:0]
	for _, c := range colors {
		if c == models.NoColor || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// ============================================================================
// Quantization
// ============================================================================

type histEntry struct {
	r, g, b uint8 // quantized channels
	count   int
}

func (h histEntry) color() models.Color {
	return models.RGB(widen(h.r), widen(h.g), widen(h.b))
}

// widen maps a 5-bit channel back to 8 bits, keeping 0 and 31 at the extremes
func widen(v uint8) uint8 {
	return v<<(8-quantizeBits) | v>>(2*quantizeBits-8)
}

// histogram samples roughly area pixels and counts quantized colors.
// Transparent pixels are skipped.
func histogram(img image.Image, area int) []histEntry {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	step := 1.0
	if area > 0 && w*h > area {
		step = math.Sqrt(float64(w*h) / float64(area))
	}

	counts := make(map[uint16]int)
	for fy := 0.0; int(fy) < h; fy += step {
		for fx := 0.0; int(fx) < w; fx += step {
			r, g, bl, a := img.At(b.Min.X+int(fx), b.Min.Y+int(fy)).RGBA()
			if a < 0x8000 {
				continue
			}
			key := uint16(r>>11)<<10 | uint16(g>>11)<<5 | uint16(bl>>11)
			counts[key]++
		}
	}

	entries := make([]histEntry, 0, len(counts))
	for key, n := range counts {
		entries = append(entries, histEntry{
			r:     uint8(key >> 10 & 0x1F),
			g:     uint8(key >> 5 & 0x1F),
			b:     uint8(key & 0x1F),
			count: n,
		})
	}
	// map iteration order is random; keep results deterministic
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].color() < entries[j].color()
	})
	return entries
}

type vbox struct {
	entries []histEntry
}

func (v vbox) ranges() (rr, gr, br int) {
	minR, minG, minB := uint8(31), uint8(31), uint8(31)
	var maxR, maxG, maxB uint8
	for _, e := range v.entries {
		minR, maxR = min(minR, e.r), max(maxR, e.r)
		minG, maxG = min(minG, e.g), max(maxG, e.g)
		minB, maxB = min(minB, e.b), max(maxB, e.b)
	}
	return int(maxR - minR), int(maxG - minG), int(maxB - minB)
}

func (v vbox) volume() int {
	r, g, b := v.ranges()
	return (r + 1) * (g + 1) * (b + 1)
}

// split divides the box at the population median of its longest dimension
func (v vbox) split() (vbox, vbox) {
	r, g, b := v.ranges()
	key := func(e histEntry) uint8 { return e.r }
	switch {
	case g >= r && g >= b:
		key = func(e histEntry) uint8 { return e.g }
	case b >= r && b >= g:
		key = func(e histEntry) uint8 { return e.b }
	}
	sort.SliceStable(v.entries, func(i, j int) bool { return key(v.entries[i]) < key(v.entries[j]) })

	total := 0
	for _, e := range v.entries {
		total += e.count
	}
	at, acc := 1, 0
	for i, e := range v.entries[:len(v.entries)-1] {
		acc += e.count
		if acc >= total/2 {
			at = i + 1
			break
		}
	}
	return vbox{entries: v.entries[:at]}, vbox{entries: v.entries[at:]}
}

func (v vbox) average() Swatch {
	var sr, sg, sb, n int
	for _, e := range v.entries {
		sr += int(e.r) * e.count
		sg += int(e.g) * e.count
		sb += int(e.b) * e.count
		n += e.count
	}
	avg := histEntry{
		r: uint8((sr + n/2) / n),
		g: uint8((sg + n/2) / n),
		b: uint8((sb + n/2) / n),
	}
	return newSwatch(avg.color(), n)
}

// medianCut repeatedly splits the largest-volume box until maxColors boxes exist
func medianCut(entries []histEntry, maxColors int) []Swatch {
	boxes := []vbox{{entries: append([]histEntry(nil), entries...)}}
	for len(boxes) < maxColors {
		idx := -1
		for i, bx := range boxes {
			if len(bx.entries) < 2 {
				continue
			}
			if idx < 0 || bx.volume() > boxes[idx].volume() {
				idx = i
			}
		}
		if idx < 0 {
			break
		}
		a, b := boxes[idx].split()
		boxes[idx] = a
		boxes = append(boxes, b)
	}

	swatches := make([]Swatch, 0, len(boxes))
	for _, bx := range boxes {
		swatches = append(swatches, bx.average())
	}
	return swatches
}
