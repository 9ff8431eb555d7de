// Package overlay draws debug wireframes of scene objects over rendered images.
package overlay

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Options controls how wireframes are drawn
type Options struct {
	Color     core.Color
	LineWidth float64
	Segments  int // Divisions around each circle of the tessellation
}

// DefaultOptions returns thin green lines with 16 segments per circle
func DefaultOptions() Options {
	return Options{
		Color:     core.NewColor(0, 1, 0),
		LineWidth: 1,
		Segments:  16,
	}
}

// Segment is a line in screen coordinates of the camera's output raster
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// ProjectObject tessellates obj, moves the edges to world space and runs them
// through the camera's view, projection and screen transforms. Edges with an
// endpoint behind the camera, or with no endpoint inside the view volume, are
// dropped.
func ProjectObject(camera *geometry.Camera, obj *scene.Object, segments int) []Segment {
	var out []Segment
	for _, e := range geometry.Tessellate(obj.Kind, segments) {
		a := obj.Transform.TransformPoint(e[0])
		b := obj.Transform.TransformPoint(e[1])

		if _, ok := camera.Project(a); !ok {
			continue
		}
		if _, ok := camera.Project(b); !ok {
			continue
		}
		if !camera.InViewVolume(a, b) {
			continue
		}

		x1, y1 := camera.WorldToScreen(a)
		x2, y2 := camera.WorldToScreen(b)
		out = append(out, Segment{x1, y1, x2, y2})
	}
	return out
}

// ProjectScene returns the visible wireframe segments of every object
func ProjectScene(camera *geometry.Camera, objects []*scene.Object, segments int) []Segment {
	var out []Segment
	for _, obj := range objects {
		out = append(out, ProjectObject(camera, obj, segments)...)
	}
	return out
}

// Draw returns a copy of img with the scene's wireframe stroked on top.
// Screen coordinates are scaled when img is not the camera's output size.
func Draw(img image.Image, sc *scene.Scene, opts Options) (*image.RGBA, error) {
	camera, err := sc.Camera()
	if err != nil {
		return nil, err
	}

	dc := gg.NewContextForImage(img)
	defer dc.Close()

	cfg := camera.Config()
	sx := float64(dc.Width()) / float64(cfg.Width)
	sy := float64(dc.Height()) / float64(cfg.Height)

	dc.SetRGB(opts.Color.R, opts.Color.G, opts.Color.B)
	dc.SetLineWidth(max(opts.LineWidth, 0.5))

	segments := ProjectScene(camera, sc.Objects(), opts.Segments)
	for _, s := range segments {
		dc.DrawLine(s.X1*sx, s.Y1*sy, s.X2*sx, s.Y2*sy)
	}
	if len(segments) > 0 {
		if err := dc.Stroke(); err != nil {
			return nil, fmt.Errorf("stroke wireframe: %w", err)
		}
	}

	rgba, ok := dc.Image().(*image.RGBA)
	if !ok {
		return nil, fmt.Errorf("unexpected image type %T", dc.Image())
	}
	return rgba, nil
}
