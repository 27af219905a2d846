package plotkit

import "image/color"

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// Common colors.
var (
	Transparent = RGBA{}
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(0.84, 0.15, 0.16)
	Green       = RGB(0.17, 0.63, 0.17)
	Blue        = RGB(0.12, 0.47, 0.71)
	Orange      = RGB(1, 0.5, 0.05)
	Purple      = RGB(0.58, 0.4, 0.74)
	Gray        = RGB(0.5, 0.5, 0.5)
	LightGray   = RGB(0.85, 0.85, 0.85)
)

// seriesPalette is the default color cycle for plotted series.
var seriesPalette = []RGBA{Blue, Orange, Green, Red, Purple, Gray}

// NRGBA converts the color to a standard non-premultiplied color.NRGBA.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color { return c.NRGBA() }

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	return RGBA{
		R: float64(r) / 65535,
		G: float64(g) / 65535,
		B: float64(b) / 65535,
		A: float64(a) / 65535,
	}
}

// WithAlpha returns the same color with alpha replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
