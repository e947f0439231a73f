package buddha

// Option configures a Renderer during creation.
// Use functional options to customize sampling behavior.
//
// Example:
//
//	// Default engine, GOMAXPROCS workers
//	r, err := buddha.NewRenderer(cfg)
//
//	// Pin the worker count
//	r, err := buddha.NewRenderer(cfg, buddha.WithWorkers(4))
type Option func(*rendererOptions)

// rendererOptions holds optional configuration for Renderer creation.
type rendererOptions struct {
	workers   int
	batchSize uint64
	sampler   Sampler
}

// defaultOptions returns the default renderer options.
func defaultOptions() rendererOptions {
	return rendererOptions{
		workers:   0, // Engine interprets 0 as GOMAXPROCS
		batchSize: 0, // Engine interprets 0 as DefaultBatchSize
	}
}

// WithWorkers sets the number of sampling goroutines.
// Values <= 0 select GOMAXPROCS. Worker count never affects the rendered
// output, only throughput.
func WithWorkers(n int) Option {
	return func(o *rendererOptions) {
		o.workers = n
	}
}

// WithBatchSize sets the number of seeds per work unit. The batch size
// keys the per-batch RNG sub-streams, so renders are reproducible only
// across runs using the same batch size.
func WithBatchSize(n uint64) Option {
	return func(o *rendererOptions) {
		o.batchSize = n
	}
}

// WithSampler replaces the sampling engine entirely. Use this for
// dependency injection of alternative sampling strategies.
//
// Example:
//
//	r, err := buddha.NewRenderer(cfg, buddha.WithSampler(customSampler))
func WithSampler(s Sampler) Option {
	return func(o *rendererOptions) {
		o.sampler = s
	}
}
