// Package imaging downloads, decodes and analyzes images for the gallery
package imaging

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/thenoetrevino/gallery/internal/models"
)

// maxImageBytes bounds downloads and file reads
const maxImageBytes = 32 << 20

// Image is a decoded image together with its encoded bytes
type Image struct {
	Raw     []byte
	MIME    string
	Format  string
	Decoded image.Image
}

// Bounds returns the decoded image bounds
func (i *Image) Bounds() image.Rectangle {
	return i.Decoded.Bounds()
}

// Decode decodes raw image bytes in any registered format
func Decode(raw []byte) (*Image, error) {
	img, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	return &Image{
		Raw:     raw,
		MIME:    http.DetectContentType(raw),
		Format:  format,
		Decoded: img,
	}, nil
}

// Download fetches and decodes the image at rawURL
func Download(ctx context.Context, client *http.Client, rawURL string) (*Image, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %s", ErrMalformedURL, rawURL)
	}
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	return Decode(raw)
}

// ReadFile reads and decodes a local image
func ReadFile(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	return Decode(raw)
}

// Load resolves an item reference: file:// URIs are read from disk,
// anything else is downloaded.
func Load(ctx context.Context, client *http.Client, ref string) (*Image, error) {
	if path, ok := LocalPath(ref); ok {
		return ReadFile(path)
	}
	return Download(ctx, client, ref)
}

// FileURI converts a filesystem path into a file:// reference
func FileURI(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String(), nil
}

// LocalPath returns the filesystem path of a file:// reference
func LocalPath(ref string) (string, bool) {
	if !strings.HasPrefix(ref, models.FileScheme) {
		return "", false
	}
	u, err := url.Parse(ref)
	if err != nil {
		return "", false
	}
	return filepath.FromSlash(u.Path), true
}
