// Command viewer opens a window that renders a scene progressively and lets
// the camera orbit the gaze point with the arrow keys.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log/slog"
	"math"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// orbitStep is the camera rotation per key press
const orbitStep = math.Pi / 18

type viewer struct {
	scene  *scene.Scene
	config renderer.ProgressiveConfig
	logger core.Logger

	mu      sync.Mutex
	latest  *image.RGBA // Most recent finished pass or tile mosaic
	pass    int
	dirty   bool
	lastErr error
	gen     int // Incremented per restart; stale renders drop their results

	cancel context.CancelFunc
	frame  *ebiten.Image
}

func newViewer(sc *scene.Scene, config renderer.ProgressiveConfig, logger core.Logger) *viewer {
	w, h := sc.CameraConfig.Width, sc.CameraConfig.Height
	return &viewer{
		scene:  sc,
		config: config,
		logger: logger,
		latest: image.NewRGBA(image.Rect(0, 0, w, h)),
		frame:  ebiten.NewImage(w, h),
	}
}

// restart cancels any running render and starts a new progressive render of
// the current camera. The render works on a copy of the scene, so the camera
// can be moved again while the previous render winds down.
func (v *viewer) restart() {
	if v.cancel != nil {
		v.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	v.cancel = cancel

	v.mu.Lock()
	v.gen++
	gen := v.gen
	v.mu.Unlock()

	snapshot := *v.scene
	pr := renderer.NewProgressiveRaytracer(&snapshot, v.config, v.logger)
	passChan, tileChan, errChan := pr.RenderProgressive(ctx, renderer.RenderOptions{TileUpdates: true})

	tileSize := max(1, v.config.TileSize)
	go func() {
		for tile := range tileChan {
			v.mu.Lock()
			if gen == v.gen {
				origin := image.Pt(tile.TileX*tileSize, tile.TileY*tileSize)
				copyInto(v.latest, tile.TileImage, origin)
				v.dirty = true
			}
			v.mu.Unlock()
		}
	}()

	go func() {
		for result := range passChan {
			v.mu.Lock()
			if gen == v.gen {
				v.latest = result.Image
				v.pass = result.PassNumber
				v.dirty = true
			}
			v.mu.Unlock()
		}
		if err := <-errChan; err != nil && ctx.Err() == nil {
			v.mu.Lock()
			v.lastErr = err
			v.mu.Unlock()
		}
	}()
}

func copyInto(dst, src *image.RGBA, origin image.Point) {
	b := src.Bounds()
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dst.SetRGBA(origin.X+x, origin.Y+y, src.RGBAAt(b.Min.X+x, b.Min.Y+y))
		}
	}
}

func (v *viewer) Update() error {
	v.mu.Lock()
	err := v.lastErr
	v.mu.Unlock()
	if err != nil {
		return err
	}

	yaw, pitch := 0.0, 0.0
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		yaw = -orbitStep
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		yaw = orbitStep
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		pitch = orbitStep
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		pitch = -orbitStep
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	}

	if yaw != 0 || pitch != 0 {
		v.scene.CameraConfig = v.scene.CameraConfig.Orbit(yaw, pitch)
		v.restart()
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	v.mu.Lock()
	if v.dirty {
		v.frame.WritePixels(v.latest.Pix)
		v.dirty = false
		ebiten.SetWindowTitle(fmt.Sprintf("%s - pass %d", v.scene.Name, v.pass))
	}
	v.mu.Unlock()
	screen.DrawImage(v.frame, nil)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.scene.CameraConfig.Width, v.scene.CameraConfig.Height
}

func main() {
	sceneType := flag.String("scene", "default", "Scene to render")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	renderer.SetLogger(logger)

	sc, err := scene.Create(*sceneType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	config := renderer.DefaultProgressiveConfig()
	config.NumWorkers = *workers

	v := newViewer(sc, config, core.NewSlogLogger(logger, slog.LevelInfo))
	v.restart()

	ebiten.SetWindowTitle(sc.Name)
	ebiten.SetWindowSize(sc.CameraConfig.Width, sc.CameraConfig.Height)
	ebiten.SetTPS(30)
	if err := ebiten.RunGame(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
