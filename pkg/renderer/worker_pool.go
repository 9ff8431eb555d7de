package renderer

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Buffer holds one color per sub-pixel of a super-sampled raster
type Buffer struct {
	Width, Height int // Output size in pixels
	SuperSampling int // Sub-pixels per pixel along each axis
	Pixels        []core.Color
}

// NewBuffer allocates a black buffer for a width×height image
func NewBuffer(width, height, superSampling int) *Buffer {
	return &Buffer{
		Width:         width,
		Height:        height,
		SuperSampling: superSampling,
		Pixels:        make([]core.Color, width*superSampling*height*superSampling),
	}
}

// SuperSize returns the size of the sub-pixel raster
func (b *Buffer) SuperSize() (width, height int) {
	return b.Width * b.SuperSampling, b.Height * b.SuperSampling
}

// At returns the color of sub-pixel (x, y)
func (b *Buffer) At(x, y int) core.Color {
	w, _ := b.SuperSize()
	return b.Pixels[y*w+x]
}

func (b *Buffer) set(x, y int, c core.Color) {
	w, _ := b.SuperSize()
	b.Pixels[y*w+x] = c
}

// RenderConfig controls a single render pass
type RenderConfig struct {
	TileSize      int // Output pixels per tile edge
	NumWorkers    int // Number of parallel workers (0 = use CPU count)
	SuperSampling int // Overrides the camera's factor when > 0

	// OnTile is called once per finished tile. Calls are serialized.
	OnTile func(tile *Tile, buf *Buffer)
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TileSize:   64,
		NumWorkers: 0,
	}
}

// RenderBuffer traces every sub-pixel of the scene's camera raster. Tiles are
// rendered in parallel; each writes a disjoint part of the buffer. The scene
// must not be modified until RenderBuffer returns. Cancelling ctx stops the
// pass between tiles.
func RenderBuffer(ctx context.Context, sc *scene.Scene, cfg RenderConfig) (*Buffer, StatsSnapshot, error) {
	start := time.Now()

	cameraConfig := sc.CameraConfig
	if cfg.SuperSampling > 0 {
		cameraConfig.SuperSampling = cfg.SuperSampling
	}
	if err := sc.Validate(); err != nil {
		return nil, StatsSnapshot{}, err
	}
	camera, err := geometry.NewCamera(cameraConfig)
	if err != nil {
		return nil, StatsSnapshot{}, fmt.Errorf("scene %q: %w", sc.Name, err)
	}

	workers := cfg.NumWorkers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	stats := &RenderStats{}
	rt := NewRaytracer(camera, WithFarClipping(sc.ClipFar), WithStats(stats))
	buf := NewBuffer(cameraConfig.Width, cameraConfig.Height, cameraConfig.SuperSampling)
	objects := sc.Objects()
	pl, dl := sc.Lights()
	tiles := NewTileGrid(cameraConfig.Width, cameraConfig.Height, cfg.TileSize)

	var callbackMu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, tile := range tiles {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			renderTile(rt, buf, tile, objects, pl, dl)
			if cfg.OnTile != nil {
				callbackMu.Lock()
				cfg.OnTile(tile, buf)
				callbackMu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		Logger().Warn("render cancelled", "scene", sc.Name, "err", err)
		return nil, StatsSnapshot{}, err
	}
	if err := ctx.Err(); err != nil {
		return nil, StatsSnapshot{}, err
	}

	snap := stats.Snapshot()
	snap.Width = cameraConfig.Width
	snap.Height = cameraConfig.Height
	snap.SuperSampling = cameraConfig.SuperSampling
	snap.Duration = time.Since(start)

	Logger().Debug("render pass finished",
		"scene", sc.Name,
		"size", fmt.Sprintf("%dx%d", snap.Width, snap.Height),
		"ss", snap.SuperSampling,
		"workers", workers,
		"tiles", len(tiles),
		"primary", snap.PrimaryRays,
		"shadow", snap.ShadowRays,
		"elapsed", snap.Duration)

	return buf, snap, nil
}
