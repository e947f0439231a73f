package buddha

import (
	"context"
	"math/rand/v2"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// DefaultBatchSize is the number of seeds a worker draws per batch when
// Engine.BatchSize is zero. Batches are the unit of work distribution and
// of cancellation checks; they also key the per-batch RNG sub-streams, so
// changing the batch size changes which seeds are drawn.
const DefaultBatchSize = 1 << 16

// Stats summarizes one sampling pass.
type Stats struct {
	// Escaped is the number of seeds whose orbit diverged.
	Escaped uint64

	// Bounded is the number of seeds still bounded at the iteration limit,
	// including seeds discarded for degenerate (NaN/Inf) iterates.
	Bounded uint64

	// Plotted is the number of orbit points that landed inside the
	// viewport and were counted. It equals the resulting histogram's
	// Total.
	Plotted uint64
}

// add accumulates other into s. Used for the per-worker stats reduction.
func (s *Stats) add(other Stats) {
	s.Escaped += other.Escaped
	s.Bounded += other.Bounded
	s.Plotted += other.Plotted
}

// Sampler produces a visitation histogram for one iteration-depth
// threshold. Engine is the uniform Monte-Carlo implementation; an
// importance-sampling strategy would implement the same contract.
type Sampler interface {
	Sample(ctx context.Context, vp Viewport, samples uint64, maxIter int) (*Histogram, Stats, error)
}

// Engine samples seeds uniformly over the square [-2,2]×[-2,2] of the
// complex plane. The square is a strict superset of the radius-2 disk
// containing every bounded orbit; seeds outside the disk escape within a
// step or two and contribute almost nothing, and restricting sampling to
// the square rather than the whole plane is the standard documented
// approximation for this renderer.
//
// The zero value is a ready-to-use engine with a non-deterministic seed,
// GOMAXPROCS workers, and DefaultBatchSize batches.
type Engine struct {
	// Seed keys every RNG sub-stream of the pass. Zero means "draw a seed
	// from process entropy", making the render non-deterministic.
	Seed uint64

	// Workers is the number of concurrent sampling goroutines.
	// Zero or negative means GOMAXPROCS.
	Workers int

	// BatchSize is the number of seeds per work unit. Zero means
	// DefaultBatchSize.
	BatchSize uint64
}

// sampleRegion is the half-extent of the square seeds are drawn from.
const sampleRegion = 2.0

// Sample runs the full Monte-Carlo pass: samples seeds, iterates each,
// and accumulates every in-frame orbit point of escaping seeds into a
// histogram.
//
// The sample space is partitioned into contiguous batches handed out to
// workers through an atomic counter. Each worker accumulates into a
// private histogram; the privates are merged sequentially after all
// workers join, so the hot loop touches no shared state. Batch RNG
// streams are derived from the seed by batch index, not worker identity,
// so output for a non-zero Seed is bit-identical across runs regardless
// of worker count.
//
// Cancellation is checked at batch boundaries only. A canceled context
// abandons the pass and returns ctx's error; it never interrupts a seed
// mid-iteration.
func (e *Engine) Sample(ctx context.Context, vp Viewport, samples uint64, maxIter int) (*Histogram, Stats, error) {
	if err := vp.Validate(); err != nil {
		return nil, Stats{}, err
	}
	if maxIter < 0 {
		return nil, Stats{}, ErrNegativeIterations
	}

	workers := e.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	batchSize := e.BatchSize
	if batchSize == 0 {
		batchSize = DefaultBatchSize
	}
	seed := e.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	numBatches := (samples + batchSize - 1) / batchSize
	if wb := uint64(workers); numBatches < wb {
		workers = int(numBatches)
		if workers == 0 {
			workers = 1
		}
	}

	Logger().Debug("sampling pass started",
		"samples", samples, "maxIter", maxIter,
		"workers", workers, "batches", numBatches)

	grids := make([]*Histogram, workers)
	stats := make([]Stats, workers)
	var nextBatch atomic.Uint64

	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		g.Go(func() error {
			grid := NewHistogram(vp.Width, vp.Height)
			grids[w] = grid
			orbit := make([]complex128, 0, maxIter)
			var st Stats

			for {
				b := nextBatch.Add(1) - 1
				if b >= numBatches {
					stats[w] = st
					return nil
				}
				if err := ctx.Err(); err != nil {
					return err
				}

				n := batchSize
				if b == numBatches-1 {
					n = samples - b*batchSize
				}
				lo, hi := batchSeed(seed, b)
				rng := rand.New(rand.NewPCG(lo, hi))

				for range n {
					c := complex(
						rng.Float64()*(2*sampleRegion)-sampleRegion,
						rng.Float64()*(2*sampleRegion)-sampleRegion,
					)
					var escaped bool
					orbit, escaped = Iterate(c, maxIter, orbit)
					if !escaped {
						st.Bounded++
						continue
					}
					st.Escaped++
					for _, z := range orbit {
						if i, j, ok := vp.ComplexToPixel(z); ok {
							grid.Increment(i, j)
							st.Plotted++
						}
					}
				}
			}
		})
	}
	if err := g.Wait(); err != nil {
		return nil, Stats{}, err
	}

	result := grids[0]
	var total Stats
	total.add(stats[0])
	for w := 1; w < workers; w++ {
		if err := result.Merge(grids[w]); err != nil {
			return nil, Stats{}, err
		}
		total.add(stats[w])
	}

	Logger().Debug("sampling pass done",
		"maxIter", maxIter, "escaped", total.Escaped,
		"bounded", total.Bounded, "plotted", total.Plotted)
	return result, total, nil
}

// batchSeed derives the two PCG seed words for a batch from the pass seed
// and the batch index using SplitMix64 finalization. Distinct batches get
// statistically independent streams, and the derivation depends only on
// (seed, batch), never on which worker runs the batch.
func batchSeed(seed, batch uint64) (uint64, uint64) {
	base := seed + (batch+1)*0x9e3779b97f4a7c15
	return mix64(base), mix64(base + 0x9e3779b97f4a7c15)
}

// mix64 is the SplitMix64 finalizer.
func mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
