// Package color holds the pure colour helpers shared by every editor: hex
// validation and normalisation, rgba formatting and readable text selection.
package color

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned when a string is not a 3 or 6 digit hex colour.
var ErrInvalidColor = errors.New("invalid color")

const (
	// Black is returned by PickReadableText for light backgrounds.
	Black = "#000000"
	// White is returned by PickReadableText for dark backgrounds.
	White = "#ffffff"
)

var hexPattern = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

// RGB holds 8-bit colour channels.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// IsValidHex reports whether s is '#' followed by exactly 3 or 6 hex digits.
func IsValidHex(s string) bool {
	return hexPattern.MatchString(s)
}

// NormalizeHex expands #abc to #aabbcc and lower-cases the result.
func NormalizeHex(s string) (string, error) {
	if !IsValidHex(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	s = strings.ToLower(s)
	if len(s) == 4 {
		return string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]}), nil
	}
	return s, nil
}

// HexToRGB decodes a 3 or 6 digit hex colour into its channels.
func HexToRGB(s string) (RGB, error) {
	normalized, err := NormalizeHex(s)
	if err != nil {
		return RGB{}, err
	}
	c, err := colorful.Hex(normalized)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %v", ErrInvalidColor, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// Hex renders the channels as a canonical 6 digit hex string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Luminance returns the perceptual luminance 0.299r + 0.587g + 0.114b.
func (c RGB) Luminance() float64 {
	return (float64(c.R)*299 + float64(c.G)*587 + float64(c.B)*114) / 1000
}

// ToRGBA formats hex plus an opacity percentage as rgba(r, g, b, a).
// The opacity is clamped to [0, 100] before it is divided by 100.
func ToRGBA(hex string, opacityPercent float64) (string, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return "", err
	}
	alpha := clamp(opacityPercent, 0, 100) / 100
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", rgb.R, rgb.G, rgb.B, FormatNumber(alpha)), nil
}

// PickReadableText returns black for light backgrounds (luminance >= 128)
// and white otherwise. Unparseable input falls back to black.
func PickReadableText(background string) string {
	rgb, err := HexToRGB(strings.TrimSpace(background))
	if err != nil {
		return Black
	}
	if rgb.Luminance() >= 128 {
		return Black
	}
	return White
}

// Blend interpolates between two hex colours in RGB space. t is clamped to
// [0, 1]. Invalid inputs are treated as black.
func Blend(a, b string, t float64) string {
	ca, err := HexToRGB(a)
	if err != nil {
		ca = RGB{}
	}
	cb, err := HexToRGB(b)
	if err != nil {
		cb = RGB{}
	}
	from := colorful.Color{R: float64(ca.R) / 255, G: float64(ca.G) / 255, B: float64(ca.B) / 255}
	to := colorful.Color{R: float64(cb.R) / 255, G: float64(cb.G) / 255, B: float64(cb.B) / 255}
	return from.BlendRgb(to, clamp(t, 0, 1)).Clamped().Hex()
}

// FormatNumber renders v in the shortest form that round-trips, so whole
// numbers print without a fraction (1, 0.8, 12.5).
func FormatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
