// Package wizard implements the add/edit image dialog as a UI-independent state machine
package wizard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/thenoetrevino/gallery/internal/imaging"
	"github.com/thenoetrevino/gallery/internal/models"
	"github.com/thenoetrevino/gallery/internal/pipeline"
)

// State is the dialog's position in its workflow
type State int

// Dialog states
const (
	CollectingDimensions State = iota
	Fetching
	ChipSelection
	Submitted
	Failed
	Dismissed
)

func (s State) String() string {
	switch s {
	case CollectingDimensions:
		return "collecting dimensions"
	case Fetching:
		return "fetching"
	case ChipSelection:
		return "chip selection"
	case Submitted:
		return "submitted"
	case Failed:
		return "failed"
	case Dismissed:
		return "dismissed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transitions are possible
func (s State) Terminal() bool {
	return s == Submitted || s == Failed || s == Dismissed
}

// Mode distinguishes how the dialog was opened
type Mode int

// Dialog modes
const (
	ModeAdd Mode = iota
	ModeEdit
	ModeImport
	ModeURL
)

// Fetcher loads an image and computes its palette and labels
type Fetcher interface {
	FetchPlaceholder(ctx context.Context, d imaging.Dimensions) (*pipeline.Result, error)
	FetchURL(ctx context.Context, ref string) (*pipeline.Result, error)
	FetchFile(ctx context.Context, path string) (*pipeline.Result, error)
}

// Dialog drives one add, edit or import interaction
type Dialog struct {
	mu      sync.Mutex
	mode    Mode
	state   State
	fetcher Fetcher

	original *models.Item
	dims     imaging.Dimensions
	source   string

	cancel context.CancelFunc
	result *pipeline.Result
	err    error

	colors     ChipGroup
	labels     ChipGroup
	customText string
	submitted  *models.Item
}

// NewAdd opens a dialog that asks for placeholder dimensions first
func NewAdd(f Fetcher) *Dialog {
	return &Dialog{mode: ModeAdd, state: CollectingDimensions, fetcher: f}
}

// NewEdit opens a dialog that refetches item's image and keeps its ID
func NewEdit(f Fetcher, item *models.Item) *Dialog {
	return &Dialog{mode: ModeEdit, state: Fetching, fetcher: f, original: item.Clone()}
}

// NewImport opens a dialog for a local image file
func NewImport(f Fetcher, path string) *Dialog {
	return &Dialog{mode: ModeImport, state: Fetching, fetcher: f, source: path}
}

// NewFromURL opens a dialog for an image already reachable at ref
func NewFromURL(f Fetcher, ref string) *Dialog {
	return &Dialog{mode: ModeURL, state: Fetching, fetcher: f, source: ref}
}

// SubmitDimensions validates the dimension fields and moves to Fetching.
// Validation errors are *models.FieldError and leave the state unchanged.
func (d *Dialog) SubmitDimensions(width, height string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state != CollectingDimensions {
		return ErrInvalidState
	}

	dims, err := imaging.ParseDimensions(width, height)
	if err != nil {
		return err
	}

	d.dims = dims
	d.state = Fetching
	return nil
}

// Run performs the fetch. It blocks until the pipeline finishes, ctx is done,
// or Dismiss is called. A dismissed dialog discards the result and returns ErrDismissed.
func (d *Dialog) Run(ctx context.Context) error {
	d.mu.Lock()
	if d.state == Dismissed {
		d.mu.Unlock()
		return ErrDismissed
	}
	if d.state != Fetching || d.cancel != nil {
		d.mu.Unlock()
		return ErrInvalidState
	}
	ctx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	mode, dims, source := d.mode, d.dims, d.source
	if d.original != nil {
		source = d.original.ImageURL
	}
	d.mu.Unlock()
	defer cancel()

	var res *pipeline.Result
	var err error
	switch mode {
	case ModeEdit, ModeURL:
		res, err = d.fetcher.FetchURL(ctx, source)
	case ModeImport:
		res, err = d.fetcher.FetchFile(ctx, source)
	default:
		res, err = d.fetcher.FetchPlaceholder(ctx, dims)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancel = nil

	if d.state == Dismissed {
		slog.Debug("dropping fetch result of dismissed dialog")
		return ErrDismissed
	}
	if err != nil {
		d.state = Failed
		d.err = err
		return err
	}

	d.result = res
	d.colors = colorChips(res.Colors)
	d.labels = labelChips(res.Labels)
	if d.original != nil {
		orig := d.original
		d.colors.checkWhere(func(c Chip) bool { return c.Color == orig.Color })
		d.labels.checkWhere(func(c Chip) bool { return !c.Custom && c.Text == orig.Label })
	}
	d.state = ChipSelection
	return nil
}

// Dismiss cancels any in-flight fetch. It is a no-op once the dialog is terminal.
func (d *Dialog) Dismiss() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state.Terminal() {
		return
	}
	if d.cancel != nil {
		d.cancel()
	}
	d.state = Dismissed
}

// CheckColor toggles color chip i
func (d *Dialog) CheckColor(i int) error {
	return d.check(&d.colors, i)
}

// CheckLabel toggles label chip i
func (d *Dialog) CheckLabel(i int) error {
	return d.check(&d.labels, i)
}

func (d *Dialog) check(g *ChipGroup, i int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state != ChipSelection {
		return ErrInvalidState
	}
	if !g.Check(i) {
		return ErrInvalidChip
	}
	return nil
}

// SetCustomLabel stores the free-text label used when the Custom chip is checked
func (d *Dialog) SetCustomLabel(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.customText = text
}

// Submit validates the chip selection and produces the resulting item.
// Add and import create a new ID; edit keeps the original ID.
func (d *Dialog) Submit() (*models.Item, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state != ChipSelection {
		return nil, ErrInvalidState
	}

	ci, okColor := d.colors.Checked()
	li, okLabel := d.labels.Checked()
	if !okColor || !okLabel {
		return nil, ErrIncompleteSelection
	}

	labelChip := d.labels.Chips[li]
	label := labelChip.Text
	if labelChip.Custom {
		label = strings.TrimSpace(d.customText)
		if label == "" {
			return nil, &models.FieldError{Field: "label", Message: "Please enter custom label"}
		}
		if utf8.RuneCountInString(label) > models.MaxLabelLength {
			return nil, &models.FieldError{Field: "label", Message: fmt.Sprintf("Label must be at most %d characters", models.MaxLabelLength)}
		}
	}

	color := d.colors.Chips[ci].Color
	var item *models.Item
	if d.original != nil {
		item = d.original.Clone()
		item.ImageURL = d.result.URL
		item.Color = color
		item.Label = label
	} else {
		item = models.NewItem(d.result.URL, color, label)
	}

	d.submitted = item
	d.state = Submitted
	return item, nil
}

// Choose selects chips without user interaction and submits.
// A negative index keeps the pre-checked chip, or the first chip when none is checked.
// A non-empty custom label selects the Custom chip.
func (d *Dialog) Choose(colorIndex, labelIndex int, custom string) (*models.Item, error) {
	d.mu.Lock()
	if d.state != ChipSelection {
		d.mu.Unlock()
		return nil, ErrInvalidState
	}
	if custom != "" {
		labelIndex = d.labels.Len() - 1
		d.customText = custom
	}
	for _, sel := range []struct {
		g *ChipGroup
		i int
	}{{&d.colors, colorIndex}, {&d.labels, labelIndex}} {
		if sel.i < 0 {
			if _, ok := sel.g.Checked(); ok {
				continue
			}
			sel.i = 0
		}
		if sel.g.Len() == 0 {
			continue
		}
		if !sel.g.Select(sel.i) {
			d.mu.Unlock()
			return nil, ErrInvalidChip
		}
	}
	d.mu.Unlock()

	return d.Submit()
}

// State returns the current state
func (d *Dialog) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Mode returns how the dialog was opened
func (d *Dialog) Mode() Mode {
	return d.mode
}

// Err returns the fetch error of a Failed dialog
func (d *Dialog) Err() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.err
}

// Result returns the fetch result once chips are available
func (d *Dialog) Result() *pipeline.Result {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.result
}

// Colors returns a copy of the color chip group
func (d *Dialog) Colors() ChipGroup {
	d.mu.Lock()
	defer d.mu.Unlock()
	return ChipGroup{Chips: append([]Chip(nil), d.colors.Chips...)}
}

// Labels returns a copy of the label chip group
func (d *Dialog) Labels() ChipGroup {
	d.mu.Lock()
	defer d.mu.Unlock()
	return ChipGroup{Chips: append([]Chip(nil), d.labels.Chips...)}
}

// CustomSelected reports whether the Custom label chip is checked
func (d *Dialog) CustomSelected() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	i, ok := d.labels.Checked()
	return ok && d.labels.Chips[i].Custom
}

// Original returns the item being edited, or nil
func (d *Dialog) Original() *models.Item {
	return d.original
}

// IsDismissed reports whether err came from a dismissed dialog
func IsDismissed(err error) bool {
	return errors.Is(err, ErrDismissed)
}
