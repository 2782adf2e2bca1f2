package entity

import (
	"fmt"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

type Format string

const (
	FormatHex  Format = "hex"
	FormatRGB  Format = "rgb"
	FormatRGBA Format = "rgba"
	FormatHSL  Format = "hsl"
)

// ParseFormat maps a stored or user-supplied value to a Format.
// Anything unrecognised becomes FormatHex.
func ParseFormat(s string) Format {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatRGB:
		return FormatRGB
	case FormatRGBA:
		return FormatRGBA
	case FormatHSL:
		return FormatHSL
	default:
		return FormatHex
	}
}

func (f Format) String() string {
	return string(f)
}

// Color is an opaque 8-bit RGB triple. All textual forms are derived from it.
type Color struct {
	R, G, B uint8
}

// SentinelColor is returned for samples that fall outside a capture buffer.
var SentinelColor = Color{R: 128, G: 128, B: 128}

type HSL struct {
	H int // [0,360)
	S int // [0,100]
	L int // [0,100]
}

func (c Color) ToHex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ToHSL rounds each component to an integer. A hue that rounds up to 360
// wraps to 0.
func (c Color) ToHSL() HSL {
	h, sat, l := c.toColorful().Hsl()

	hue := int(math.Round(h))
	if hue >= 360 {
		hue -= 360
	}

	return HSL{
		H: hue,
		S: int(math.Round(sat * 100)),
		L: int(math.Round(l * 100)),
	}
}

func (c Color) toColorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

func (c Color) Format(f Format) string {
	switch f {
	case FormatRGB:
		return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
	case FormatRGBA:
		return fmt.Sprintf("rgba(%d, %d, %d, 1)", c.R, c.G, c.B)
	case FormatHSL:
		hsl := c.ToHSL()
		return fmt.Sprintf("hsl(%d, %d%%, %d%%)", hsl.H, hsl.S, hsl.L)
	default:
		return c.ToHex()
	}
}

func (c Color) String() string {
	return c.ToHex()
}

// ParseHex accepts "#RRGGBB", "RRGGBB" and the "#RGB" shorthand.
func ParseHex(s string) (Color, error) {
	hex := strings.TrimSpace(s)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}

	col, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}

	r, g, b := col.RGB255()
	return Color{R: r, G: g, B: b}, nil
}
