package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/imageio"
	"github.com/df07/go-phong-raytracer/pkg/overlay"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Config holds the command line options
type Config struct {
	SceneType string
	Width     int
	Height    int
	SS        int
	Workers   int
	TileSize  int
	Format    string
	Out       string
	Wireframe bool
	Annotate  bool
	Gamma     float64
	Compare   string
	Verbose   bool
	List      bool
	Help      bool
}

func main() {
	config, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	if config.Help {
		showHelp(os.Stdout)
		return
	}
	if config.List {
		listScenes(os.Stdout)
		return
	}

	level := slog.LevelInfo
	if config.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	renderer.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, config, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newFlagSet registers every command line flag on a new flag set writing into config
func newFlagSet(config *Config, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&config.SceneType, "scene", "default", "Scene to render (see -list)")
	fs.IntVar(&config.Width, "width", 0, "Output width in pixels (0 = scene default)")
	fs.IntVar(&config.Height, "height", 0, "Output height in pixels (0 = scene default)")
	fs.IntVar(&config.SS, "ss", 0, "Super-sampling factor per axis (0 = scene default)")
	fs.IntVar(&config.Workers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	fs.IntVar(&config.TileSize, "tile", 64, "Tile edge in pixels")
	fs.StringVar(&config.Format, "format", "png", "Output format: png, bmp or jpeg")
	fs.StringVar(&config.Out, "out", "", "Output file (default output/<scene>/render_<timestamp>.<format>)")
	fs.BoolVar(&config.Wireframe, "wireframe", false, "Draw object wireframes over the render")
	fs.BoolVar(&config.Annotate, "annotate", false, "Print render statistics onto the image")
	fs.Float64Var(&config.Gamma, "gamma", 1.0, "Gamma applied when writing pixels (1 = linear)")
	fs.StringVar(&config.Compare, "compare", "", "Reference image to compare the render against")
	fs.BoolVar(&config.Verbose, "verbose", false, "Enable debug logging")
	fs.BoolVar(&config.List, "list", false, "List available scenes")
	fs.BoolVar(&config.Help, "help", false, "Show help information")
	return fs
}

func parseFlags(args []string, output io.Writer) (Config, error) {
	var config Config
	fs := newFlagSet(&config, output)
	if err := fs.Parse(args); err != nil {
		return config, err
	}
	if config.Width < 0 || config.Height < 0 || config.SS < 0 {
		err := errors.New("width, height and ss must not be negative")
		fmt.Fprintln(output, err)
		return config, err
	}
	if _, err := imageio.ParseFormat(config.Format); err != nil {
		fmt.Fprintln(output, err)
		return config, err
	}
	return config, nil
}

func showHelp(w io.Writer) {
	fmt.Fprintln(w, "Phong Raytracer")
	fmt.Fprintln(w, "Usage: raytracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	var discard Config
	newFlagSet(&discard, w).PrintDefaults()
	fmt.Fprintln(w)
	listScenes(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output will be saved to output/<scene>/render_<timestamp>.<format>")
}

func listScenes(w io.Writer) {
	fmt.Fprintln(w, "Available scenes:")
	for _, group := range scene.ListAllScenes().Groups {
		fmt.Fprintf(w, "  %s:\n", group.Name)
		for _, info := range group.Scenes {
			fmt.Fprintf(w, "    %-10s %s (%d objects)\n", info.ID, info.Description, info.Objects)
		}
	}
}

// createScene builds a registered scene with the size and super-sampling
// overrides from the command line. Changing the size keeps pixels square.
func createScene(config Config) (*scene.Scene, error) {
	if config.SceneType == "" {
		return nil, errors.New("scene name is empty")
	}

	override := geometry.CameraConfig{
		Width:         config.Width,
		Height:        config.Height,
		SuperSampling: config.SS,
	}
	sc, err := scene.Create(config.SceneType, override)
	if err != nil {
		return nil, err
	}

	if config.Width > 0 || config.Height > 0 {
		sc.CameraConfig.AspectRatio = float64(sc.CameraConfig.Width) / float64(sc.CameraConfig.Height)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

// outputPath returns the file the render is written to
func outputPath(config Config, sc *scene.Scene, format imageio.Format, now time.Time) string {
	if config.Out != "" {
		return config.Out
	}
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", sc.Name, fmt.Sprintf("render_%s%s", timestamp, format.Ext()))
}

func run(ctx context.Context, config Config, stdout io.Writer) error {
	p := message.NewPrinter(language.English)

	format, err := imageio.ParseFormat(config.Format)
	if err != nil {
		return err
	}

	sc, err := createScene(config)
	if err != nil {
		return err
	}

	cam := sc.CameraConfig
	p.Fprintf(stdout, "Rendering %q: %dx%d, %dx%d super-sampling, %d objects\n",
		sc.Name, cam.Width, cam.Height, cam.SuperSampling, cam.SuperSampling, sc.GetPrimitiveCount())

	renderConfig := renderer.DefaultRenderConfig()
	renderConfig.NumWorkers = config.Workers
	renderConfig.TileSize = config.TileSize

	rgba, stats, err := renderer.Render(ctx, sc, renderConfig, config.Gamma)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	p.Fprintf(stdout, "Render completed in %v\n", stats.Duration.Round(time.Millisecond))
	p.Fprintf(stdout, "Primary rays: %d (%.1f%% hit), shadow rays: %d (%d occluded), %.0f rays/s\n",
		stats.PrimaryRays, 100*stats.HitRatio(), stats.ShadowRays, stats.OccludedRays, stats.RaysPerSecond())
	p.Fprintf(stdout, "Average luminance: %.3f\n", renderer.CalculateAverageLuminance(rgba))

	var img image.Image = rgba
	if config.Wireframe {
		wired, err := overlay.Draw(img, sc, overlay.DefaultOptions())
		if err != nil {
			return fmt.Errorf("wireframe failed: %w", err)
		}
		img = wired
	}
	if config.Annotate {
		img = imageio.Annotate(img,
			fmt.Sprintf("%s %dx%d ss=%d", sc.Name, cam.Width, cam.Height, cam.SuperSampling),
			p.Sprintf("%d rays in %v", stats.PrimaryRays+stats.ShadowRays, stats.Duration.Round(time.Millisecond)),
		)
	}

	if config.Compare != "" {
		ref, err := imageio.LoadImage(config.Compare)
		if err != nil {
			return err
		}
		diff, err := imageio.Compare(img, ref)
		if err != nil {
			return err
		}
		p.Fprintf(stdout, "Compared with %s: RMS %.4f, max channel %.4f, %d differing pixels\n",
			config.Compare, diff.RMS, diff.MaxChannel, diff.Differing)
	}

	filename := outputPath(config, sc, format, time.Now())
	if err := imageio.Save(filename, img, format); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Render saved as %s\n", filename)
	return nil
}
