// Package buddha renders Buddhabrot images: Monte-Carlo visitation
// histograms of the escape-time map z ← z² + c.
//
// # Overview
//
// A render samples a large number of random seeds c and iterates each
// through the escape-time map. For seeds that diverge, a counter is
// incremented at every pixel the orbit visits before escaping. The resulting count
// grid is normalized to an intensity plane, and multiple planes rendered
// at different iteration-depth thresholds can be composited into one RGB
// image with a lighten blend.
//
// # Quick Start
//
//	cfg := buddha.Config{
//	    Viewport:    buddha.Viewport{RealMin: -2, RealMax: 1, ImagMin: -1.5, ImagMax: 1.5, Width: 1024, Height: 1024},
//	    Thresholds:  []buddha.Threshold{{MaxIterations: 64, Weights: buddha.Blue}},
//	    SampleCount: 10_000_000,
//	    RandomSeed:  42,
//	}
//	r, err := buddha.NewRenderer(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	img, err := r.RenderGrayscale(context.Background())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	img.SavePNG("buddhabrot.png")
//
// # Architecture
//
// The pipeline is: Config → sampling engine (coordinate mapping + escape
// iteration, accumulating into a Histogram) → Normalize → Composite →
// image. Each stage is exported and usable on its own; Renderer wires
// them together for the common case.
//
// # Concurrency
//
// Sampling is decomposed into fixed-size batches of seeds. Each worker
// owns a private Histogram and accumulates into it without locks; the
// private grids are merged once after all workers join. Batch RNG
// sub-streams are derived from the configured seed by batch index, so
// a non-zero RandomSeed gives bit-identical histograms regardless of
// worker count or scheduling.
//
// # Coordinate System
//
// Pixel (0,0) maps to the (RealMin, ImagMin) corner of the viewport; i
// increases with the real axis, j with the imaginary axis. Both mappings
// use pixel centers, so they round-trip exactly for in-frame pixels.
package buddha
