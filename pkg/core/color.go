package core

import (
	"image/color"
	"math"
)

// Color is an RGB color with float64 channels on a 0-255 scale. Lighting is
// free to push channels outside that range mid-pipeline; values are clamped
// only when converting for an output surface.
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Scale returns the color with every channel multiplied by intensity
func (c Color) Scale(intensity float64) Color {
	return Color{c.R * intensity, c.G * intensity, c.B * intensity}
}

// Add returns the channel-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// RGBA converts the color for display, rounding and clamping each channel
// to [0,255] and forcing fully opaque alpha. This is the single point where
// out-of-range lighting output is brought back into byte range.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: clampChannel(c.R),
		G: clampChannel(c.G),
		B: clampChannel(c.B),
		A: 255,
	}
}

func clampChannel(v float64) uint8 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
