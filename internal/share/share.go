// Package share renders an item as a PNG card and hands it to the system clipboard
package share

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/thenoetrevino/gallery/internal/models"
)

const (
	defaultWidth = 480
	padding      = 12
	lineGap      = 4

	// maxAspect caps the photo area at maxAspect times the card width
	maxAspect = 4
)

// Renderer draws share cards of a fixed width
type Renderer struct {
	Width int
	face  font.Face
}

// NewRenderer returns a renderer for cards width pixels wide
func NewRenderer(width int) *Renderer {
	if width <= 0 {
		width = defaultWidth
	}
	return &Renderer{Width: width, face: basicfont.Face7x13}
}

// Render draws img scaled to the card width above a strip in the item's color
// holding the wrapped label and the color code
func (r *Renderer) Render(img image.Image, item *models.Item) *image.RGBA {
	var imgH int
	var src image.Rectangle
	if img != nil && !img.Bounds().Empty() {
		src = img.Bounds()
		imgH = int(int64(src.Dy()) * int64(r.Width) / int64(src.Dx()))
		if maxH := r.Width * maxAspect; imgH > maxH {
			// keep the centered band that fits the cap
			imgH = maxH
			bandH := src.Dx() * maxAspect
			top := src.Min.Y + (src.Dy()-bandH)/2
			src = image.Rect(src.Min.X, top, src.Max.X, top+bandH)
		}
	}

	lines := r.wrapLabel(item.Label)
	lines = append(lines, item.Color.Hex())

	lineH := r.face.Metrics().Height.Ceil() + lineGap
	stripH := 2*padding + len(lines)*lineH

	card := image.NewRGBA(image.Rect(0, 0, r.Width, imgH+stripH))
	if imgH > 0 {
		draw.CatmullRom.Scale(card, image.Rect(0, 0, r.Width, imgH), img, src, draw.Src, nil)
	}

	cr, cg, cb := item.Color.Channels()
	bg := color.RGBA{R: cr, G: cg, B: cb, A: 0xFF}
	draw.Draw(card, image.Rect(0, imgH, r.Width, imgH+stripH), image.NewUniform(bg), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  card,
		Src:  image.NewUniform(textColor(item.Color)),
		Face: r.face,
	}
	ascent := r.face.Metrics().Ascent.Ceil()
	for i, line := range lines {
		d.Dot = fixed.P(padding, imgH+padding+i*lineH+ascent)
		d.DrawString(line)
	}
	return card
}

// WritePNG renders the card and encodes it to w
func (r *Renderer) WritePNG(w io.Writer, img image.Image, item *models.Item) error {
	if err := png.Encode(w, r.Render(img, item)); err != nil {
		return fmt.Errorf("failed to encode card: %w", err)
	}
	return nil
}

// WriteFile renders the card into dir as <item id>.png and returns the path
func (r *Renderer) WriteFile(dir string, img image.Image, item *models.Item) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create share directory: %w", err)
	}

	path := filepath.Join(dir, item.ID+".png")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create card file: %w", err)
	}
	if err := r.WritePNG(f, img, item); err != nil {
		_ = f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to write card file: %w", err)
	}
	return path, nil
}

// CopyToClipboard places text on the system clipboard
func CopyToClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

func (r *Renderer) wrapLabel(label string) []string {
	advance := font.MeasureString(r.face, "M").Ceil()
	cols := (r.Width - 2*padding) / max(advance, 1)
	if cols < 1 {
		cols = 1
	}
	wrapped := wrap.String(wordwrap.String(label, cols), cols)
	return strings.Split(wrapped, "\n")
}

// textColor picks black or white for contrast against bg
func textColor(bg models.Color) color.Color {
	r, g, b := bg.Channels()
	luma := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
	if luma > 140 {
		return color.Black
	}
	return color.White
}
