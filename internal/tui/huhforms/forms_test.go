package huhforms

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDimensions(t *testing.T) {
	tests := []struct {
		name    string
		width   string
		height  string
		wantErr string
	}{
		{name: "both", width: "200", height: "300"},
		{name: "width only", width: "200"},
		{name: "height only", height: "300"},
		{name: "both empty", wantErr: "Enter at least one parameter"},
		{name: "blank", width: "  ", height: " ", wantErr: "Enter at least one parameter"},
		{name: "not a number", width: "abc", wantErr: "Must be a whole number"},
		{name: "zero", height: "0", wantErr: "Must be greater than zero"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDimensions(tt.width, tt.height)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestValidateSource(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "img.png")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	tests := []struct {
		name    string
		kind    string
		value   string
		wantErr bool
	}{
		{name: "url", kind: SourceURL, value: "https://example.com/a.png"},
		{name: "empty url", kind: SourceURL, value: " ", wantErr: true},
		{name: "existing file", kind: SourceFile, value: file},
		{name: "missing file", kind: SourceFile, value: filepath.Join(dir, "nope.png"), wantErr: true},
		{name: "directory", kind: SourceFile, value: dir, wantErr: true},
		{name: "empty path", kind: SourceFile, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSource(tt.kind, tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateCustomLabel(t *testing.T) {
	assert.NoError(t, ValidateCustomLabel("Sunset"))
	assert.EqualError(t, ValidateCustomLabel("   "), "Please enter custom label")
	assert.EqualError(t, ValidateCustomLabel(strings.Repeat("x", 51)), "Label is too long")
}

func TestCreateForms(t *testing.T) {
	var w, h, src, label string
	assert.NotNil(t, CreateDimensionForm(&w, &h))
	assert.NotNil(t, CreateSourceForm(SourceURL, &src))
	assert.NotNil(t, CreateSourceForm(SourceFile, &src))
	assert.NotNil(t, CreateCustomLabelForm(&label))
}
