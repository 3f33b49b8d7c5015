package shade

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// toColorful converts a 0xRRGGBBAA color to a colorful.Color, dropping alpha.
func toColorful(c uint32) colorful.Color {
	return colorful.Color{
		R: float64(c>>24&0xFF) / 255,
		G: float64(c>>16&0xFF) / 255,
		B: float64(c>>8&0xFF) / 255,
	}
}

// fromColorful converts back to 0xRRGGBBAA, reattaching the given alpha byte.
func fromColorful(c colorful.Color, alpha uint32) uint32 {
	c = c.Clamped()
	r := uint32(c.R*255 + 0.5)
	g := uint32(c.G*255 + 0.5)
	b := uint32(c.B*255 + 0.5)
	return r<<24 | g<<16 | b<<8 | alpha&0xFF
}

// Luminance returns the perceived lightness of a color in [0, 1],
// using the L component of CIE Lab.
func Luminance(c uint32) float64 {
	l, _, _ := toColorful(c).Lab()
	return l
}

// IsDarkColor reports whether a color reads as dark.
func IsDarkColor(c uint32) bool {
	return Luminance(c) < 0.5
}

// Lighten raises the HSL lightness of a color by amount (0..1). Alpha is
// preserved.
func Lighten(c uint32, amount float64) uint32 {
	h, s, l := toColorful(c).Hsl()
	return fromColorful(colorful.Hsl(h, s, clamp01(l+amount)), c&0xFF)
}

// Darken lowers the HSL lightness of a color by amount (0..1). Alpha is
// preserved.
func Darken(c uint32, amount float64) uint32 {
	h, s, l := toColorful(c).Hsl()
	return fromColorful(colorful.Hsl(h, s, clamp01(l-amount)), c&0xFF)
}

// invertLightness mirrors a color's HSL lightness around the midpoint,
// turning near-white neutrals into near-black ones and vice versa.
func invertLightness(c uint32) uint32 {
	h, s, l := toColorful(c).Hsl()
	return fromColorful(colorful.Hsl(h, s, 1-l), c&0xFF)
}

// contrastColor picks black or white, whichever contrasts with c.
func contrastColor(c uint32) uint32 {
	if IsDarkColor(c) {
		return 0xFFFFFFFF
	}
	return 0x000000FF
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Hex formats a 0xRRGGBBAA color as "#RRGGBB", or "#RRGGBBAA" when the
// alpha byte is not fully opaque.
func Hex(c uint32) string {
	if c&0xFF == 0xFF {
		return fmt.Sprintf("#%06X", c>>8)
	}
	return fmt.Sprintf("#%08X", c)
}

// ParseColor parses "#RGB", "#RRGGBB" or "#RRGGBBAA" into 0xRRGGBBAA.
func ParseColor(value string) (uint32, error) {
	value = strings.TrimSpace(value)
	if !strings.HasPrefix(value, "#") {
		return 0, fmt.Errorf("invalid color %q: missing '#' prefix", value)
	}
	hex := value[1:]

	// Expand shorthand: #RGB → #RRGGBB
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}

	switch len(hex) {
	case 6:
		var r, g, b uint32
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
			return 0, fmt.Errorf("invalid color %q: %w", value, err)
		}
		return r<<24 | g<<16 | b<<8 | 0xFF, nil
	case 8:
		var r, g, b, a uint32
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return 0, fmt.Errorf("invalid color %q: %w", value, err)
		}
		return r<<24 | g<<16 | b<<8 | a, nil
	default:
		return 0, fmt.Errorf("invalid color %q: want #RGB, #RRGGBB or #RRGGBBAA", value)
	}
}
