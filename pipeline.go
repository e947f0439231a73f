package buddha

import "context"

// Threshold is one iteration-depth pass of a render: how deep the escape
// test iterates, and which color channels the resulting intensity layer
// feeds.
type Threshold struct {
	MaxIterations int            `json:"max_iterations"`
	Weights       ChannelWeights `json:"weights"`
}

// Config is the full parameter bundle for one render request.
type Config struct {
	// Viewport is the complex-plane window and pixel resolution.
	Viewport Viewport `json:"viewport"`

	// Thresholds lists the iteration-depth passes, one intensity layer
	// each. A classic Buddhabrot "nebula" uses three.
	Thresholds []Threshold `json:"thresholds"`

	// SampleCount is the number of random seeds drawn per threshold.
	SampleCount uint64 `json:"sample_count"`

	// RandomSeed keys the sampling RNG. Zero draws a seed from process
	// entropy; any other value makes the render reproducible.
	RandomSeed uint64 `json:"random_seed,omitempty"`

	// Normalization selects how counts map to intensities. The zero
	// value is logarithmic.
	Normalization NormalizationMode `json:"normalization,omitempty"`
}

// Validate checks the bundle before any work starts. All configuration
// errors are fatal and reported here, never from the middle of a pass.
func (cfg Config) Validate() error {
	if err := cfg.Viewport.Validate(); err != nil {
		return err
	}
	if cfg.SampleCount == 0 {
		return ErrZeroSampleCount
	}
	if len(cfg.Thresholds) == 0 {
		return ErrNoThresholds
	}
	for _, th := range cfg.Thresholds {
		if th.MaxIterations < 0 {
			return ErrNegativeIterations
		}
	}
	return nil
}

// Sink receives a finished pixel buffer from RenderTo. The core makes no
// assumption about what the sink does with it; file encoding, display,
// and transport are entirely the collaborator's concern.
type Sink interface {
	Deliver(pix []uint8, width, height int) error
}

// Renderer runs the full pipeline for one render request: a sampling and
// normalization pass per configured threshold, then a composite of the
// resulting layers.
type Renderer struct {
	cfg     Config
	sampler Sampler
}

// NewRenderer validates cfg and builds a renderer for it. The default
// sampling engine is the uniform Monte-Carlo Engine seeded from
// cfg.RandomSeed; options can override the engine's knobs or replace the
// sampler entirely.
func NewRenderer(cfg Config, opts ...Option) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	sampler := o.sampler
	if sampler == nil {
		sampler = &Engine{
			Seed:      cfg.RandomSeed,
			Workers:   o.workers,
			BatchSize: o.batchSize,
		}
	}
	return &Renderer{cfg: cfg, sampler: sampler}, nil
}

// Render runs every configured threshold and composites the layers into
// one RGB image.
func (r *Renderer) Render(ctx context.Context) (*CompositeImage, error) {
	Logger().Info("render started",
		"thresholds", len(r.cfg.Thresholds),
		"samples", r.cfg.SampleCount,
		"resolution", r.cfg.Viewport.Width*r.cfg.Viewport.Height)

	layers := make([]Layer, 0, len(r.cfg.Thresholds))
	for _, th := range r.cfg.Thresholds {
		img, err := r.renderLayer(ctx, th)
		if err != nil {
			return nil, err
		}
		layers = append(layers, Layer{Image: img, Weights: th.Weights})
	}

	out, err := Composite(layers)
	if err != nil {
		return nil, err
	}
	Logger().Info("composite done", "layers", len(layers))
	return out, nil
}

// RenderGrayscale runs the single-threshold pipeline and returns the
// intensity layer directly, skipping the compositor. It requires exactly
// one configured threshold.
func (r *Renderer) RenderGrayscale(ctx context.Context) (*IntensityImage, error) {
	if len(r.cfg.Thresholds) != 1 {
		return nil, ErrNotGrayscale
	}
	return r.renderLayer(ctx, r.cfg.Thresholds[0])
}

// RenderTo renders and hands the finished composite's pixel buffer to
// sink.
func (r *Renderer) RenderTo(ctx context.Context, sink Sink) error {
	img, err := r.Render(ctx)
	if err != nil {
		return err
	}
	return sink.Deliver(img.Pix(), img.Width(), img.Height())
}

// renderLayer is one sampling + normalization pass.
func (r *Renderer) renderLayer(ctx context.Context, th Threshold) (*IntensityImage, error) {
	hist, stats, err := r.sampler.Sample(ctx, r.cfg.Viewport, r.cfg.SampleCount, th.MaxIterations)
	if err != nil {
		return nil, err
	}
	Logger().Info("layer finished",
		"maxIter", th.MaxIterations,
		"escaped", stats.Escaped,
		"plotted", stats.Plotted,
		"maxCount", hist.Max())
	return Normalize(hist, r.cfg.Normalization), nil
}
