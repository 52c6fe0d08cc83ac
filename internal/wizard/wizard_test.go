package wizard

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/gallery/internal/imaging"
	"github.com/thenoetrevino/gallery/internal/models"
	"github.com/thenoetrevino/gallery/internal/pipeline"
)

// fakeFetcher records calls and returns a canned result. When block is set,
// fetches wait for context cancellation or release.
type fakeFetcher struct {
	mu      sync.Mutex
	calls   []string
	dims    imaging.Dimensions
	result  *pipeline.Result
	err     error
	block   bool
	started chan struct{}
	release chan struct{}
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		result: &pipeline.Result{
			URL:    "https://picsum.photos/id/10/300/200",
			Colors: []models.Color{0xFF0000, 0x00FF00},
			Labels: []string{"Dog", "Grass"},
		},
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
}

func (f *fakeFetcher) do(ctx context.Context, call string) (*pipeline.Result, error) {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	block := f.block
	f.mu.Unlock()

	if block {
		f.started <- struct{}{}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-f.release:
		}
	}
	return f.result, f.err
}

func (f *fakeFetcher) FetchPlaceholder(ctx context.Context, d imaging.Dimensions) (*pipeline.Result, error) {
	f.mu.Lock()
	f.dims = d
	f.mu.Unlock()
	return f.do(ctx, "placeholder")
}

func (f *fakeFetcher) FetchURL(ctx context.Context, ref string) (*pipeline.Result, error) {
	return f.do(ctx, "url:"+ref)
}

func (f *fakeFetcher) FetchFile(ctx context.Context, path string) (*pipeline.Result, error) {
	return f.do(ctx, "file:"+path)
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func TestSubmitDimensions_EmptyDoesNotFetch(t *testing.T) {
	f := newFakeFetcher()
	d := NewAdd(f)

	err := d.SubmitDimensions("", "  ")
	var fe *models.FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "width", fe.Field)
	assert.Equal(t, "Enter at least one parameter", fe.Message)

	assert.Equal(t, CollectingDimensions, d.State())
	assert.ErrorIs(t, d.Run(context.Background()), ErrInvalidState)
	assert.Equal(t, 0, f.callCount(), "no fetch may be issued for invalid dimensions")
}

func TestAddFlow(t *testing.T) {
	f := newFakeFetcher()
	d := NewAdd(f)

	require.NoError(t, d.SubmitDimensions("300", ""))
	assert.Equal(t, Fetching, d.State())

	require.NoError(t, d.Run(context.Background()))
	assert.Equal(t, ChipSelection, d.State())
	assert.Equal(t, imaging.Dimensions{Width: 300, Height: 300}, f.dims)

	colors := d.Colors()
	require.Equal(t, 2, colors.Len())
	assert.Equal(t, models.Color(0xFF0000), colors.Chips[0].Color)

	labels := d.Labels()
	require.Equal(t, 3, labels.Len())
	assert.True(t, labels.Chips[2].Custom)
	assert.Equal(t, models.CustomChipText, labels.Chips[2].Text)

	_, ok := colors.Checked()
	assert.False(t, ok, "add mode starts with nothing checked")

	require.NoError(t, d.CheckColor(1))
	require.NoError(t, d.CheckLabel(0))

	item, err := d.Submit()
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "https://picsum.photos/id/10/300/200", item.ImageURL)
	assert.Equal(t, models.Color(0x00FF00), item.Color)
	assert.Equal(t, "Dog", item.Label)
	assert.Equal(t, Submitted, d.State())
}

func TestSubmit_Guards(t *testing.T) {
	setup := func(t *testing.T) *Dialog {
		d := NewAdd(newFakeFetcher())
		require.NoError(t, d.SubmitDimensions("10", "20"))
		require.NoError(t, d.Run(context.Background()))
		return d
	}

	t.Run("nothing selected", func(t *testing.T) {
		d := setup(t)
		_, err := d.Submit()
		assert.ErrorIs(t, err, ErrIncompleteSelection)
		assert.Equal(t, ChipSelection, d.State())
	})

	t.Run("color only", func(t *testing.T) {
		d := setup(t)
		require.NoError(t, d.CheckColor(0))
		_, err := d.Submit()
		assert.ErrorIs(t, err, ErrIncompleteSelection)
	})

	t.Run("custom label empty", func(t *testing.T) {
		d := setup(t)
		require.NoError(t, d.CheckColor(0))
		require.NoError(t, d.CheckLabel(2))
		assert.True(t, d.CustomSelected())
		d.SetCustomLabel("   ")

		_, err := d.Submit()
		var fe *models.FieldError
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, "Please enter custom label", fe.Message)
	})

	t.Run("custom label too long", func(t *testing.T) {
		d := setup(t)
		require.NoError(t, d.CheckColor(0))
		require.NoError(t, d.CheckLabel(2))
		d.SetCustomLabel(strings.Repeat("x", models.MaxLabelLength+1))

		_, err := d.Submit()
		var fe *models.FieldError
		assert.True(t, errors.As(err, &fe))
	})

	t.Run("custom label trimmed", func(t *testing.T) {
		d := setup(t)
		require.NoError(t, d.CheckColor(0))
		require.NoError(t, d.CheckLabel(2))
		d.SetCustomLabel("  Sunset  ")

		item, err := d.Submit()
		require.NoError(t, err)
		assert.Equal(t, "Sunset", item.Label)
	})

	t.Run("bad chip index", func(t *testing.T) {
		d := setup(t)
		assert.ErrorIs(t, d.CheckColor(9), ErrInvalidChip)
		assert.ErrorIs(t, d.CheckLabel(-1), ErrInvalidChip)
	})
}

func TestChipGroup_SingleSelection(t *testing.T) {
	g := labelChips([]string{"A", "B"})

	g.Check(0)
	g.Check(1)
	i, ok := g.Checked()
	require.True(t, ok)
	assert.Equal(t, 1, i)
	assert.False(t, g.Chips[0].Checked)

	g.Check(1)
	_, ok = g.Checked()
	assert.False(t, ok, "checking the checked chip clears the group")
}

func TestEditFlow_KeepsIDAndPrechecks(t *testing.T) {
	f := newFakeFetcher()
	orig := &models.Item{ID: "item-1", ImageURL: "https://picsum.photos/id/10/300/200", Color: 0x00FF00, Label: "Grass"}
	d := NewEdit(f, orig)
	assert.Equal(t, Fetching, d.State())

	require.NoError(t, d.Run(context.Background()))
	assert.Equal(t, []string{"url:https://picsum.photos/id/10/300/200"}, f.calls)

	colors := d.Colors()
	ci, ok := colors.Checked()
	require.True(t, ok)
	assert.Equal(t, 1, ci)
	labels := d.Labels()
	li, ok := labels.Checked()
	require.True(t, ok)
	assert.Equal(t, 1, li)

	require.NoError(t, d.CheckLabel(0))
	item, err := d.Submit()
	require.NoError(t, err)
	assert.Equal(t, "item-1", item.ID)
	assert.Equal(t, "Dog", item.Label)
	assert.Equal(t, models.Color(0x00FF00), item.Color)
	assert.Equal(t, "Grass", orig.Label, "original item is not mutated")
}

func TestImportFlow(t *testing.T) {
	f := newFakeFetcher()
	d := NewImport(f, "/tmp/cat.png")
	require.NoError(t, d.Run(context.Background()))
	assert.Equal(t, []string{"file:/tmp/cat.png"}, f.calls)
	assert.Equal(t, ModeImport, d.Mode())
}

func TestRun_Failure(t *testing.T) {
	f := newFakeFetcher()
	f.err = &pipeline.FetchError{Stage: pipeline.StageDownload, Err: errors.New("boom")}
	d := NewAdd(f)
	require.NoError(t, d.SubmitDimensions("5", "5"))

	err := d.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, Failed, d.State())
	assert.Equal(t, "Image load failed", d.Err().Error())

	_, err = d.Submit()
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestDismissDuringFetch(t *testing.T) {
	f := newFakeFetcher()
	f.block = true
	d := NewAdd(f)
	require.NoError(t, d.SubmitDimensions("100", "100"))

	done := make(chan error, 1)
	go func() { done <- d.Run(context.Background()) }()

	select {
	case <-f.started:
	case <-time.After(time.Second):
		t.Fatal("fetch did not start")
	}

	d.Dismiss()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrDismissed)
		assert.True(t, IsDismissed(err))
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Dismiss")
	}

	assert.Equal(t, Dismissed, d.State())
	assert.Nil(t, d.Result(), "result of a dismissed dialog is dropped")
}

func TestDismiss_IndependentDialogs(t *testing.T) {
	slow := newFakeFetcher()
	slow.block = true
	fast := newFakeFetcher()

	a := NewAdd(slow)
	b := NewAdd(fast)
	require.NoError(t, a.SubmitDimensions("1", "1"))
	require.NoError(t, b.SubmitDimensions("2", "2"))

	done := make(chan error, 1)
	go func() { done <- a.Run(context.Background()) }()
	<-slow.started

	a.Dismiss()
	require.NoError(t, b.Run(context.Background()))
	assert.Equal(t, ChipSelection, b.State())
	assert.ErrorIs(t, <-done, ErrDismissed)
}

func TestDismiss_TerminalIsNoop(t *testing.T) {
	d := NewAdd(newFakeFetcher())
	require.NoError(t, d.SubmitDimensions("1", ""))
	require.NoError(t, d.Run(context.Background()))
	require.NoError(t, d.CheckColor(0))
	require.NoError(t, d.CheckLabel(0))
	_, err := d.Submit()
	require.NoError(t, err)

	d.Dismiss()
	assert.Equal(t, Submitted, d.State())
}

func TestRun_AfterDismiss(t *testing.T) {
	f := newFakeFetcher()
	d := NewEdit(f, &models.Item{ID: "x", ImageURL: "https://example.com/a.png"})
	d.Dismiss()

	assert.ErrorIs(t, d.Run(context.Background()), ErrDismissed)
	assert.Equal(t, 0, f.callCount())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "chip selection", ChipSelection.String())
	assert.True(t, Dismissed.Terminal())
	assert.False(t, Fetching.Terminal())
}

func TestChoose(t *testing.T) {
	ready := func(t *testing.T) *Dialog {
		d := NewAdd(newFakeFetcher())
		require.NoError(t, d.SubmitDimensions("10", "10"))
		require.NoError(t, d.Run(context.Background()))
		return d
	}

	tests := []struct {
		name      string
		color     int
		label     int
		custom    string
		wantColor models.Color
		wantLabel string
		wantErr   error
	}{
		{name: "defaults to first chips", color: -1, label: -1, wantColor: 0xFF0000, wantLabel: "Dog"},
		{name: "explicit indices", color: 1, label: 1, wantColor: 0x00FF00, wantLabel: "Grass"},
		{name: "custom label", color: 0, label: -1, custom: "Puppy", wantColor: 0xFF0000, wantLabel: "Puppy"},
		{name: "color out of range", color: 7, label: 0, wantErr: ErrInvalidChip},
		{name: "label out of range", color: 0, label: 9, wantErr: ErrInvalidChip},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := ready(t).Choose(tt.color, tt.label, tt.custom)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantColor, item.Color)
			assert.Equal(t, tt.wantLabel, item.Label)
		})
	}
}

func TestChoose_EditKeepsPrechecked(t *testing.T) {
	orig := &models.Item{ID: "item-1", ImageURL: "https://picsum.photos/id/10/300/200", Color: 0x00FF00, Label: "Grass"}
	d := NewEdit(newFakeFetcher(), orig)
	require.NoError(t, d.Run(context.Background()))

	item, err := d.Choose(-1, -1, "")
	require.NoError(t, err)
	assert.Equal(t, "item-1", item.ID)
	assert.Equal(t, models.Color(0x00FF00), item.Color)
	assert.Equal(t, "Grass", item.Label)
}

func TestChoose_BeforeFetch(t *testing.T) {
	_, err := NewAdd(newFakeFetcher()).Choose(0, 0, "")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestFromURLFlow(t *testing.T) {
	f := newFakeFetcher()
	d := NewFromURL(f, "https://example.com/cat.jpg")
	assert.Equal(t, Fetching, d.State())
	require.NoError(t, d.Run(context.Background()))
	assert.Equal(t, []string{"url:https://example.com/cat.jpg"}, f.calls)
	assert.Equal(t, ModeURL, d.Mode())
}
