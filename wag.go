package wag

import (
	"fmt"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Lerp linearly interpolates between c and other by t.
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		R: lerp(c.R, other.R, t),
		G: lerp(c.G, other.G, t),
		B: lerp(c.B, other.B, t),
		A: lerp(c.A, other.A, t),
	}
}

// Dim returns the color with R, G, and B scaled by f. Alpha is unchanged.
// Used by the painter's depth pass to push far-side shapes back.
func (c Color) Dim(f float64) Color {
	return Color{R: c.R * f, G: c.G * f, B: c.B * f, A: c.A}
}

// Lighten moves R, G, and B toward white by t. Alpha is unchanged.
func (c Color) Lighten(t float64) Color {
	return Color{
		R: lerp(c.R, 1, t),
		G: lerp(c.G, 1, t),
		B: lerp(c.B, 1, t),
		A: c.A,
	}
}

// WithAlpha returns the color with its alpha replaced by a.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// ParseColor parses a hex color string: "#RGB", "#RRGGBB", or "#RRGGBBAA".
// The leading "#" is optional.
func ParseColor(s string) (Color, error) {
	raw := s
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	var r, g, b uint8
	a := uint8(0xff)
	var err error
	switch len(s) {
	case 3:
		var r4, g4, b4 uint8
		_, err = fmt.Sscanf(s, "%1x%1x%1x", &r4, &g4, &b4)
		r, g, b = r4*17, g4*17, b4*17
	case 6:
		_, err = fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b)
	case 8:
		_, err = fmt.Sscanf(s, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		return Color{}, fmt.Errorf("color %q: want 3, 6 or 8 hex digits", raw)
	}
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", raw, err)
	}
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}

// hex parses a hex color literal, panicking on malformed input. For the
// built-in breed table, where a bad literal is a programmer error.
func hex(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic("wag: " + err.Error())
	}
	return c
}

// --- Math helpers ---

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// clamp01 clamps x to [0, 1].
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// finite reports whether x is neither NaN nor infinite.
func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
