package renderer

import (
	"image"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// ResolvePixel averages the super-sampled block behind output pixel (x, y)
func ResolvePixel(buf *Buffer, x, y int) core.Color {
	ss := buf.SuperSampling
	var ps PixelStats
	for sy := y * ss; sy < (y+1)*ss; sy++ {
		for sx := x * ss; sx < (x+1)*ss; sx++ {
			ps.AddSample(buf.At(sx, sy))
		}
	}
	return ps.GetColor()
}

// Resolve averages every ss×ss block into one pixel, clamps to [0,1] and
// converts to 8 bits. A gamma other than 0 or 1 is applied after averaging.
func Resolve(buf *Buffer, gamma float64) *image.RGBA {
	return ResolveRegion(buf, image.Rect(0, 0, buf.Width, buf.Height), gamma)
}

// ResolveRegion resolves the output pixels inside r into an image whose
// origin is r.Min
func ResolveRegion(buf *Buffer, r image.Rectangle, gamma float64) *image.RGBA {
	r = r.Intersect(image.Rect(0, 0, buf.Width, buf.Height))
	img := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := ResolvePixel(buf, x, y)
			if gamma > 0 && gamma != 1 {
				c = c.GammaCorrect(gamma)
			}
			img.SetRGBA(x-r.Min.X, y-r.Min.Y, c.RGBA())
		}
	}

	return img
}
