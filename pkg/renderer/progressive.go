package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// ProgressiveConfig contains configuration for progressive rendering
type ProgressiveConfig struct {
	TileSize   int     // Size of each tile (64x64 recommended)
	Levels     []int   // Super-sampling factor of each pass, in order
	NumWorkers int     // Number of parallel workers (0 = use CPU count)
	Gamma      float64 // Gamma applied when resolving (0 or 1 = none)
}

// DefaultProgressiveConfig returns sensible default values
func DefaultProgressiveConfig() ProgressiveConfig {
	return ProgressiveConfig{
		TileSize:   64,
		Levels:     []int{1, 2, 4}, // Quick preview, then 4 and 16 rays per pixel
		NumWorkers: 0,              // Auto-detect CPU count
		Gamma:      1.0,
	}
}

// ProgressiveRaytracer renders a scene in several passes of increasing
// super-sampling. The scene may only be changed between passes.
type ProgressiveRaytracer struct {
	scene       *scene.Scene
	config      ProgressiveConfig
	currentPass int
	logger      core.Logger
}

// NewProgressiveRaytracer creates a new progressive raytracer
func NewProgressiveRaytracer(sc *scene.Scene, config ProgressiveConfig, logger core.Logger) *ProgressiveRaytracer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	if len(config.Levels) == 0 {
		config.Levels = []int{max(1, sc.CameraConfig.SuperSampling)}
	}
	return &ProgressiveRaytracer{
		scene:  sc,
		config: config,
		logger: logger,
	}
}

// MaxPasses returns the number of passes RenderProgressive will run
func (pr *ProgressiveRaytracer) MaxPasses() int {
	return len(pr.config.Levels)
}

// getSuperSamplingForPass returns the super-sampling factor of a 1-based pass
func (pr *ProgressiveRaytracer) getSuperSamplingForPass(passNumber int) int {
	idx := min(max(passNumber, 1), len(pr.config.Levels)) - 1
	return max(1, pr.config.Levels[idx])
}

// PassResult contains the result of a single pass
type PassResult struct {
	PassNumber    int
	SuperSampling int
	Image         *image.RGBA
	Buffer        *Buffer
	Stats         StatsSnapshot
	IsLast        bool
}

// TileCompletionResult contains information about a completed tile for callbacks
type TileCompletionResult struct {
	TileX      int // Tile coordinates (not pixel coordinates)
	TileY      int
	TileImage  *image.RGBA // Image data for just this tile
	PassNumber int         // Which pass this tile was rendered in

	// Progress information
	TileNumber  int // Current tile number in this pass (1-based)
	TotalTiles  int // Total number of tiles in the image
	TotalPasses int // Total number of passes planned
}

// RenderOptions configures progressive rendering behavior
type RenderOptions struct {
	TileUpdates bool // Whether to generate tile completion events
}

// RenderPass renders a single progressive pass
func (pr *ProgressiveRaytracer) RenderPass(ctx context.Context, passNumber int, tileCallback func(TileCompletionResult)) (PassResult, error) {
	pr.currentPass = passNumber
	ss := pr.getSuperSamplingForPass(passNumber)
	width, height := pr.scene.CameraConfig.Width, pr.scene.CameraConfig.Height

	pr.logger.Printf("Pass %d: %dx%d super-sampling (%d rays per pixel)...\n", passNumber, ss, ss, ss*ss)

	cfg := RenderConfig{
		TileSize:      pr.config.TileSize,
		NumWorkers:    pr.config.NumWorkers,
		SuperSampling: ss,
	}

	if tileCallback != nil {
		tileSize := max(1, pr.config.TileSize)
		if pr.config.TileSize <= 0 {
			tileSize = max(width, height)
		}
		totalTiles := ((width + tileSize - 1) / tileSize) * ((height + tileSize - 1) / tileSize)
		tileNumber := 0

		// Serialized by RenderBuffer
		cfg.OnTile = func(tile *Tile, buf *Buffer) {
			tileNumber++
			tile.PassesCompleted++
			tileCallback(TileCompletionResult{
				TileX:       tile.Bounds.Min.X / tileSize,
				TileY:       tile.Bounds.Min.Y / tileSize,
				TileImage:   ResolveRegion(buf, tile.Bounds, pr.config.Gamma),
				PassNumber:  passNumber,
				TileNumber:  tileNumber,
				TotalTiles:  totalTiles,
				TotalPasses: pr.MaxPasses(),
			})
		}
	}

	buf, stats, err := RenderBuffer(ctx, pr.scene, cfg)
	if err != nil {
		return PassResult{}, err
	}

	return PassResult{
		PassNumber:    passNumber,
		SuperSampling: ss,
		Image:         Resolve(buf, pr.config.Gamma),
		Buffer:        buf,
		Stats:         stats,
		IsLast:        passNumber >= pr.MaxPasses(),
	}, nil
}

// RenderProgressive renders with channel-based communication.
// Returns channels for events. The caller should read from these channels in separate goroutines.
// If options.TileUpdates is false, the tile channel will be closed immediately and no tile events will be generated.
func (pr *ProgressiveRaytracer) RenderProgressive(ctx context.Context, options RenderOptions) (<-chan PassResult, <-chan TileCompletionResult, <-chan error) {
	passChan := make(chan PassResult, 1)
	tileChan := make(chan TileCompletionResult, 100) // Buffer for tiles
	errChan := make(chan error, 1)

	if !options.TileUpdates {
		close(tileChan)
	}

	go func() {
		defer close(passChan)
		if options.TileUpdates {
			defer close(tileChan)
		}
		defer close(errChan)

		pr.logger.Printf("Starting progressive rendering with %d passes...\n", pr.MaxPasses())

		for pass := 1; pass <= pr.MaxPasses(); pass++ {
			// Check if client disconnected before starting this pass
			select {
			case <-ctx.Done():
				pr.logger.Printf("Rendering cancelled before pass %d\n", pass)
				errChan <- ctx.Err()
				return
			default:
			}

			startTime := time.Now()

			var tileCallback func(TileCompletionResult)
			if options.TileUpdates {
				tileCallback = func(result TileCompletionResult) {
					select {
					case tileChan <- result:
					case <-ctx.Done():
					default:
						// Channel full; the pass image still carries the tile
					}
				}
			}

			result, err := pr.RenderPass(ctx, pass, tileCallback)
			if err != nil {
				errChan <- fmt.Errorf("pass %d: %w", pass, err)
				return
			}

			pr.logger.Printf("Pass %d completed in %v (%d primary rays, %d shadow rays)\n",
				pass, time.Since(startTime), result.Stats.PrimaryRays, result.Stats.ShadowRays)

			select {
			case passChan <- result:
			case <-ctx.Done():
				return
			}
		}
	}()

	return passChan, tileChan, errChan
}

// Render runs one pass at the camera's own super-sampling factor and returns
// the resolved image
func Render(ctx context.Context, sc *scene.Scene, cfg RenderConfig, gamma float64) (*image.RGBA, StatsSnapshot, error) {
	buf, stats, err := RenderBuffer(ctx, sc, cfg)
	if err != nil {
		return nil, StatsSnapshot{}, err
	}
	return Resolve(buf, gamma), stats, nil
}
