// Package huhforms builds the huh forms used by the add and edit dialogs
package huhforms

import (
	"errors"
	"os"
	"strings"
	"unicode/utf8"

	"charm.land/huh/v2"

	"github.com/thenoetrevino/gallery/internal/imaging"
	"github.com/thenoetrevino/gallery/internal/models"
)

// Source kinds for CreateSourceForm
const (
	SourceURL  = "url"
	SourceFile = "file"
)

// ValidateDimensions accepts the pair when imaging.ParseDimensions does.
// The message is the field error shown inline under the form.
func ValidateDimensions(width, height string) error {
	if _, err := imaging.ParseDimensions(width, height); err != nil {
		var fieldErr *models.FieldError
		if errors.As(err, &fieldErr) {
			return errors.New(fieldErr.Message)
		}
		return err
	}
	return nil
}

// CreateDimensionForm creates the form asking for placeholder width and height.
// One value alone requests a square image.
func CreateDimensionForm(width, height *string) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("width").
			Title("Width").
			Placeholder("e.g. 400").
			CharLimit(5).
			Value(width),

		huh.NewInput().
			Key("height").
			Title("Height").
			Description("Leave one field empty for a square image").
			Placeholder("e.g. 300").
			CharLimit(5).
			Validate(func(h string) error {
				return ValidateDimensions(*width, h)
			}).
			Value(height),
	}

	return huh.NewForm(huh.NewGroup(fields...)).WithShowHelp(false)
}

// ValidateSource checks a URL or file path entered in the source form
func ValidateSource(kind, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		if kind == SourceFile {
			return errors.New("Enter a file path")
		}
		return errors.New("Enter an image URL")
	}
	if kind == SourceFile {
		info, err := os.Stat(value)
		if err != nil {
			return errors.New("File does not exist")
		}
		if info.IsDir() {
			return errors.New("Path is a directory")
		}
	}
	return nil
}

// CreateSourceForm creates the form asking for an image URL or a local file path
func CreateSourceForm(kind string, value *string) *huh.Form {
	title, placeholder := "Image URL", "https://…"
	if kind == SourceFile {
		title, placeholder = "Image file", "~/Pictures/photo.jpg"
	}

	input := huh.NewInput().
		Key(kind).
		Title(title).
		Placeholder(placeholder).
		Validate(func(v string) error {
			return ValidateSource(kind, v)
		}).
		Value(value)

	return huh.NewForm(huh.NewGroup(input)).WithShowHelp(false)
}

// ValidateCustomLabel checks the text typed for the Custom chip
func ValidateCustomLabel(label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return errors.New("Please enter custom label")
	}
	if utf8.RuneCountInString(label) > models.MaxLabelLength {
		return errors.New("Label is too long")
	}
	return nil
}

// CreateCustomLabelForm creates the form asking for the custom label text
func CreateCustomLabelForm(label *string) *huh.Form {
	input := huh.NewInput().
		Key("label").
		Title("Custom label").
		Placeholder("Enter label...").
		CharLimit(models.MaxLabelLength).
		Validate(ValidateCustomLabel).
		Value(label)

	return huh.NewForm(huh.NewGroup(input)).WithShowHelp(false)
}
