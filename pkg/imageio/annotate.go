package imageio

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	lineHeight = 15 // basicfont.Face7x13 plus spacing
	padding    = 4
)

// Annotate returns a copy of img with the given lines printed in its top-left
// corner on a translucent black band
func Annotate(img image.Image, lines ...string) *image.RGBA {
	bounds := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(out, out.Bounds(), img, bounds.Min, draw.Src)
	if len(lines) == 0 {
		return out
	}

	face := basicfont.Face7x13
	width := 0
	for _, line := range lines {
		width = max(width, font.MeasureString(face, line).Ceil())
	}
	band := image.Rect(0, 0, width+2*padding, len(lines)*lineHeight+padding).Intersect(out.Bounds())
	draw.Draw(out, band, image.NewUniform(color.RGBA{A: 160}), image.Point{}, draw.Over)

	d := &font.Drawer{
		Dst:  out,
		Src:  image.White,
		Face: face,
	}
	for i, line := range lines {
		d.Dot = fixed.P(padding, (i+1)*lineHeight-2)
		d.DrawString(line)
	}
	return out
}
