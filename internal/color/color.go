// Package color converts between hex strings and RGB triples and derives
// brightness-adjusted shades through an HSV round-trip.
package color

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	accenterrors "github.com/alexisbeaulieu97/accentgen/pkg/errors"
)

// Marker is the optional prefix accepted on hex input and always emitted on output.
const Marker = "#"

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Hex encodes the color as lower-case #rrggbb.
func (c RGB) Hex() string {
	return c.colorful().Hex()
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255.0, G: float64(c.G) / 255.0, B: float64(c.B) / 255.0}
}

// Decode parses six hex digits, with or without a leading marker.
func Decode(hex string) (RGB, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(hex), Marker)
	if len(digits) != 6 {
		return RGB{}, accenterrors.NewParseError(hex, fmt.Sprintf("invalid hex color: expected 6 digits, got %d", len(digits)), nil)
	}
	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return RGB{}, accenterrors.NewParseError(hex, fmt.Sprintf("invalid hex color: non-hex digit %q at offset %d", digits[i], i), nil)
		}
	}

	parsed, err := colorful.Hex(Marker + digits)
	if err != nil {
		return RGB{}, accenterrors.NewParseError(hex, "invalid hex color", err)
	}
	r, g, b := parsed.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// Encode is the inverse of Decode.
func Encode(c RGB) string {
	return c.Hex()
}

// Normalize decodes and re-encodes hex, yielding the canonical lower-case form.
func Normalize(hex string) (string, error) {
	c, err := Decode(hex)
	if err != nil {
		return "", err
	}
	return Encode(c), nil
}

// Translucent renders hex as a CSS "rgb(r g b / p%)" string. The opacity is a
// fraction in [0,1]; fractional percents are truncated.
func Translucent(hex string, opacity float64) (string, error) {
	c, err := Decode(hex)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("rgb(%d %d %d / %d%%)", c.R, c.G, c.B, int(opacity*100)), nil
}

// ScaleBrightness multiplies the HSV value channel of hex by factor, capping it at 1.
// Channels are rounded to the nearest integer on the way back, so a factor of 1
// returns the input unchanged.
func ScaleBrightness(hex string, factor float64) (string, error) {
	c, err := Decode(hex)
	if err != nil {
		return "", err
	}
	h, s, v := c.colorful().Hsv()
	v = math.Min(1.0, v*factor)
	return colorful.Hsv(h, s, v).Clamped().Hex(), nil
}

func isHexDigit(b byte) bool {
	switch {
	case b >= '0' && b <= '9':
		return true
	case b >= 'a' && b <= 'f':
		return true
	case b >= 'A' && b <= 'F':
		return true
	}
	return false
}
