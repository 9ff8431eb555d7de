package core

import (
	"image/color"
	"math"
)

// Color is a triple of linear floating-point channel intensities. Values are
// not bounded to [0,1]; clamping belongs to whoever writes pixels.
type Color struct {
	R, G, B float64
}

// Background is returned for rays that hit nothing
var Background = Color{}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Gray returns a color with all channels set to v
func Gray(v float64) Color {
	return Color{v, v, v}
}

// ColorFromRGB8 converts 8-bit channels to a color in [0,1]
func ColorFromRGB8(r, g, b uint8) Color {
	return Color{float64(r) / 255.0, float64(g) / 255.0, float64(b) / 255.0}
}

// Add returns the channel-wise sum
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Scale multiplies every channel by s
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Modulate returns the channel-wise product
func (c Color) Modulate(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Clamp returns the color with channels clamped to [minVal, maxVal]
func (c Color) Clamp(minVal, maxVal float64) Color {
	return Color{
		R: max(minVal, min(maxVal, c.R)),
		G: max(minVal, min(maxVal, c.G)),
		B: max(minVal, min(maxVal, c.B)),
	}
}

// GammaCorrect applies gamma correction to the channels
func (c Color) GammaCorrect(gamma float64) Color {
	invGamma := 1.0 / gamma
	return Color{
		R: math.Pow(max(0, c.R), invGamma),
		G: math.Pow(max(0, c.G), invGamma),
		B: math.Pow(max(0, c.B), invGamma),
	}
}

// Luminance returns the perceptual luminance of the color
func (c Color) Luminance() float64 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

// IsBlack reports whether every channel is exactly zero
func (c Color) IsBlack() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

// RGBA clamps the color to [0,1] and converts it to an opaque 8-bit color
func (c Color) RGBA() color.RGBA {
	c = c.Clamp(0, 1)
	return color.RGBA{
		R: uint8(255*c.R + 0.5),
		G: uint8(255*c.G + 0.5),
		B: uint8(255*c.B + 0.5),
		A: 255,
	}
}
