package testutil

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/thenoetrevino/gallery/internal/imaging"
	"github.com/thenoetrevino/gallery/internal/labeling"
)

// Colors of the fixture image halves
var (
	FixtureLeft  = color.NRGBA{R: 220, G: 30, B: 30, A: 255}
	FixtureRight = color.NRGBA{R: 30, G: 30, B: 200, A: 255}
)

// TwoTonePNG encodes a w×h image whose left half is FixtureLeft and right half FixtureRight
func TwoTonePNG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := FixtureLeft
			if x >= w/2 {
				c = FixtureRight
			}
			img.SetNRGBA(x, y, c)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode fixture: %v", err)
	}
	return buf.Bytes()
}

// WriteFixture writes a TwoTonePNG into dir and returns its path
func WriteFixture(t *testing.T, dir string) string {
	t.Helper()

	path := filepath.Join(dir, "fixture.png")
	if err := os.WriteFile(path, TwoTonePNG(t, 32, 24), 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	return path
}

// ImageServer mimics the placeholder service. /{w} and /{w}/{h} redirect to
// /id/1/{w}/{h}.png which serves a two-tone PNG of that size; /broken.png
// serves bytes that are not an image.
func ImageServer(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
		switch {
		case r.URL.Path == "/broken.png":
			_, _ = w.Write([]byte("not an image"))
		case len(parts) == 4 && parts[0] == "id":
			width, errW := strconv.Atoi(parts[2])
			height, errH := strconv.Atoi(strings.TrimSuffix(parts[3], ".png"))
			if errW != nil || errH != nil || width <= 0 || height <= 0 || width > 2000 || height > 2000 {
				http.NotFound(w, r)
				return
			}
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write(TwoTonePNG(t, width, height))
		case len(parts) == 1 || len(parts) == 2:
			width, err := strconv.Atoi(parts[0])
			if err != nil {
				http.NotFound(w, r)
				return
			}
			height := width
			if len(parts) == 2 {
				if height, err = strconv.Atoi(parts[1]); err != nil {
					http.NotFound(w, r)
					return
				}
			}
			http.Redirect(w, r, fmt.Sprintf("/id/1/%d/%d.png", width, height), http.StatusFound)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

// ImageURL returns the permanent fixture URL for a w×h image on srv
func ImageURL(srv *httptest.Server, w, h int) string {
	return fmt.Sprintf("%s/id/1/%d/%d.png", srv.URL, w, h)
}

// StaticLabeler returns labels for every image
func StaticLabeler(labels ...string) labeling.Labeler {
	return labeling.Func(func(context.Context, *imaging.Image) ([]string, error) {
		return labels, nil
	})
}
