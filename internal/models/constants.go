package models

// ============================================================================
// IMAGE SOURCE CONSTANTS
// ============================================================================

// DefaultPlaceholderBase is the random-image placeholder service
const DefaultPlaceholderBase = "https://picsum.photos"

// FileScheme prefixes references to images on the local filesystem
const FileScheme = "file://"

// ============================================================================
// LABEL CONSTANTS
// ============================================================================

// CustomChipText is the synthetic label chip that enables free-text labels
const CustomChipText = "Custom"

// MaxLabelLength bounds user-entered labels
const MaxLabelLength = 50

// MaxPaletteColors is the number of palette targets (vibrant/muted x light/normal/dark)
const MaxPaletteColors = 6
