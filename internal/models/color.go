package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a 24-bit RGB value packed as 0xRRGGBB
type Color uint32

// NoColor is the reserved "no color found" value. Palette extraction never yields it.
const NoColor Color = 0

// RGB builds a Color from its channels
func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Channels returns the red, green and blue components
func (c Color) Channels() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Hex renders the color as #RRGGBB
func (c Color) Hex() string {
	return fmt.Sprintf("#%06X", uint32(c)&0xFFFFFF)
}

// String implements fmt.Stringer
func (c Color) String() string {
	return c.Hex()
}

// ParseColor parses a #RRGGBB (or RRGGBB) hex string
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return NoColor, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return NoColor, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return Color(v), nil
}
