// Command buddhabrot renders Buddhabrot images from the command line.
//
// With no -config file it renders the classic three-threshold nebula over
// the standard viewport. Output format is chosen by the -output extension
// (.png, .tif/.tiff).
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/google/gops/agent"
	"golang.org/x/image/tiff"

	buddha "github.com/gogpu/buddhabrot"
)

func main() {
	var (
		configPath = flag.String("config", "", "JSON config file (overrides the flags below)")
		width      = flag.Int("width", 1024, "image width")
		height     = flag.Int("height", 1024, "image height")
		samples    = flag.Uint64("samples", 50_000_000, "random seeds per threshold")
		seed       = flag.Uint64("seed", 0, "RNG seed (0 = non-deterministic)")
		workers    = flag.Int("workers", 0, "sampling goroutines (0 = GOMAXPROCS)")
		gray       = flag.Bool("gray", false, "single-threshold grayscale render")
		iters      = flag.Int("iters", 4096, "iteration bound for -gray mode")
		linear     = flag.Bool("linear", false, "linear instead of logarithmic normalization")
		deep       = flag.String("deep", "", "also write a 16-bit grayscale TIFF (gray mode only)")
		output     = flag.String("output", "buddhabrot.png", "output file")
		verbose    = flag.Bool("v", false, "debug logging")
		debug      = flag.Bool("debug", false, "start a gops diagnostics agent")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	buddha.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *debug {
		if err := agent.Listen(agent.Options{}); err != nil {
			log.Fatalf("gops agent: %v", err)
		}
		defer agent.Close()
	}

	cfg, err := buildConfig(*configPath, *width, *height, *samples, *seed, *iters, *gray, *linear)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	r, err := buddha.NewRenderer(cfg, buddha.WithWorkers(*workers))
	if err != nil {
		log.Fatalf("renderer: %v", err)
	}

	// Ctrl-C abandons the render at the next batch boundary.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *gray {
		renderGray(ctx, r, cfg, *output, *deep, *workers)
		return
	}

	img, err := r.Render(ctx)
	if err != nil {
		log.Fatalf("render: %v", err)
	}
	if err := save(img, *output); err != nil {
		log.Fatalf("save: %v", err)
	}
	log.Printf("wrote %s (%dx%d)", *output, img.Width(), img.Height())
}

// buildConfig assembles a Config from a file or from the flag defaults.
func buildConfig(path string, width, height int, samples, seed uint64, iters int, gray, linear bool) (buddha.Config, error) {
	if path != "" {
		return buddha.LoadConfig(path)
	}

	cfg := buddha.Config{
		Viewport: buddha.Viewport{
			RealMin: -2, RealMax: 1,
			ImagMin: -1.5, ImagMax: 1.5,
			Width: width, Height: height,
		},
		SampleCount: samples,
		RandomSeed:  seed,
	}
	if linear {
		cfg.Normalization = buddha.NormalizeLinear
	}
	if gray {
		cfg.Thresholds = []buddha.Threshold{{MaxIterations: iters, Weights: buddha.White}}
	} else {
		cfg.Thresholds = []buddha.Threshold{
			{MaxIterations: 64, Weights: buddha.Blue},
			{MaxIterations: 256, Weights: buddha.Red},
			{MaxIterations: 4096, Weights: buddha.Green},
		}
	}
	if err := cfg.Validate(); err != nil {
		return buddha.Config{}, err
	}
	return cfg, nil
}

func renderGray(ctx context.Context, r *buddha.Renderer, cfg buddha.Config, output, deep string, workers int) {
	img, err := r.RenderGrayscale(ctx)
	if err != nil {
		log.Fatalf("render: %v", err)
	}
	if err := save(img, output); err != nil {
		log.Fatalf("save: %v", err)
	}
	log.Printf("wrote %s (%dx%d)", output, img.Width(), img.Height())

	if deep == "" {
		return
	}
	// The 16-bit export re-runs normalization from the raw counts, so it
	// needs the histogram, not the 8-bit image.
	engine := &buddha.Engine{Seed: cfg.RandomSeed, Workers: workers}
	hist, _, err := engine.Sample(ctx, cfg.Viewport, cfg.SampleCount, cfg.Thresholds[0].MaxIterations)
	if err != nil {
		log.Fatalf("deep render: %v", err)
	}
	if err := writeTIFF16(deep, hist, cfg.Normalization); err != nil {
		log.Fatalf("deep save: %v", err)
	}
	log.Printf("wrote %s (16-bit)", deep)
}

func writeTIFF16(path string, hist *buddha.Histogram, mode buddha.NormalizationMode) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return tiff.Encode(f, buddha.NormalizeDeep(hist, mode), &tiff.Options{Compression: tiff.Deflate})
}

// saver is implemented by both image types.
type saver interface {
	SavePNG(path string) error
	SaveTIFF(path string) error
	Width() int
	Height() int
}

func save(img saver, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tif", ".tiff":
		return img.SaveTIFF(path)
	default:
		return img.SavePNG(path)
	}
}
