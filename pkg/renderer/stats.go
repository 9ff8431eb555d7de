package renderer

import (
	"image"
	"sync/atomic"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// RenderStats counts the rays cast during a render. All methods are safe for
// concurrent use, and a nil *RenderStats ignores updates.
type RenderStats struct {
	primaryRays  atomic.Int64
	hits         atomic.Int64
	shadowRays   atomic.Int64
	occludedRays atomic.Int64
}

func (s *RenderStats) addPrimary() {
	if s != nil {
		s.primaryRays.Add(1)
	}
}

func (s *RenderStats) addHit() {
	if s != nil {
		s.hits.Add(1)
	}
}

func (s *RenderStats) addShadow() {
	if s != nil {
		s.shadowRays.Add(1)
	}
}

func (s *RenderStats) addOccluded() {
	if s != nil {
		s.occludedRays.Add(1)
	}
}

// Snapshot returns the current counters
func (s *RenderStats) Snapshot() StatsSnapshot {
	if s == nil {
		return StatsSnapshot{}
	}
	return StatsSnapshot{
		PrimaryRays:  s.primaryRays.Load(),
		Hits:         s.hits.Load(),
		ShadowRays:   s.shadowRays.Load(),
		OccludedRays: s.occludedRays.Load(),
	}
}

// StatsSnapshot contains statistics about a finished render
type StatsSnapshot struct {
	PrimaryRays   int64         `json:"primaryRays"`   // Rays cast from the camera
	Hits          int64         `json:"hits"`          // Primary rays that hit an object
	ShadowRays    int64         `json:"shadowRays"`    // Shadow rays cast toward lights
	OccludedRays  int64         `json:"occludedRays"`  // Shadow rays that were blocked
	Width         int           `json:"width"`         // Output width in pixels
	Height        int           `json:"height"`        // Output height in pixels
	SuperSampling int           `json:"superSampling"` // Sub-pixels per pixel along each axis
	Duration      time.Duration `json:"duration"`      // Wall-clock render time
}

// HitRatio returns the fraction of primary rays that hit an object
func (s StatsSnapshot) HitRatio() float64 {
	if s.PrimaryRays == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.PrimaryRays)
}

// RaysPerSecond returns primary plus shadow rays per second of wall time
func (s StatsSnapshot) RaysPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.PrimaryRays+s.ShadowRays) / s.Duration.Seconds()
}

// PixelStats accumulates the sub-pixel samples of one output pixel
type PixelStats struct {
	ColorAccum  core.Color // RGB accumulator for final result
	SampleCount int        // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Color) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Color {
	if ps.SampleCount == 0 {
		return core.Color{}
	}
	return ps.ColorAccum.Scale(1.0 / float64(ps.SampleCount))
}

// CalculateAverageLuminance returns the mean luminance of an image in [0,1]
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	if bounds.Empty() {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			total += core.NewColor(float64(r)/0xffff, float64(g)/0xffff, float64(b)/0xffff).Luminance()
		}
	}
	return total / float64(bounds.Dx()*bounds.Dy())
}
