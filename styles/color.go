package styles

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a 32-bit color with 8 bits per channel, in 0xRRGGBBAA order.
type Color uint32

const (
	Black Color = 0x000000FF
	White Color = 0xFFFFFFFF
)

// RGB returns the fully opaque color with the given channels.
func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | 0xFF)
}

func (c Color) Red() uint8   { return uint8(c >> 24) }
func (c Color) Green() uint8 { return uint8(c >> 16) }
func (c Color) Blue() uint8  { return uint8(c >> 8) }
func (c Color) Alpha() uint8 { return uint8(c) }

// WithAlpha returns c with its channels premultiplied by alpha.
func (c Color) WithAlpha(alpha uint8) Color {
	r := uint32(c >> 24)
	g := uint32(c>>16) & 0xFF
	b := uint32(c>>8) & 0xFF
	r = (r * uint32(alpha)) / 255
	g = (g * uint32(alpha)) / 255
	b = (b * uint32(alpha)) / 255
	return Color(r<<24 | g<<16 | b<<8 | uint32(alpha))
}

// Hex returns the color as "#rrggbb", dropping the alpha channel.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.Red(), c.Green(), c.Blue())
}

// String returns a string representation of the color. Opaque colors
// print as "#rrggbb"; others include the alpha channel.
func (c Color) String() string {
	if c.Alpha() == 0xFF {
		return c.Hex()
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.Red(), c.Green(), c.Blue(), c.Alpha())
}

// ParseColor parses "#rrggbb" or "#rrggbbaa" (case-insensitive). A
// six-digit color is opaque.
func ParseColor(s string) (Color, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return 0, fmt.Errorf("color %q: missing leading '#'", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", s, err)
	}
	switch len(hex) {
	case 6:
		return Color(v<<8 | 0xFF), nil
	case 8:
		return Color(v), nil
	default:
		return 0, fmt.Errorf("color %q: want 6 or 8 hex digits, have %d", s, len(hex))
	}
}
