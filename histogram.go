package buddha

// Histogram is a width×height grid of per-pixel visitation counters.
//
// Counters are uint64 so no reachable configuration can overflow them.
// A Histogram is not safe for concurrent mutation; the sampling engine
// gives each worker a private grid and merges them after the join point,
// so no locking is needed in the accumulation loop.
type Histogram struct {
	width  int
	height int
	counts []uint64
}

// NewHistogram creates a zeroed histogram with the given dimensions.
func NewHistogram(width, height int) *Histogram {
	return &Histogram{
		width:  width,
		height: height,
		counts: make([]uint64, width*height),
	}
}

// Width returns the width of the histogram in pixels.
func (h *Histogram) Width() int {
	return h.width
}

// Height returns the height of the histogram in pixels.
func (h *Histogram) Height() int {
	return h.height
}

// Counts returns the raw counter slice in row-major order (j*width + i).
func (h *Histogram) Counts() []uint64 {
	return h.counts
}

// At returns the counter at pixel (i, j).
func (h *Histogram) At(i, j int) uint64 {
	return h.counts[j*h.width+i]
}

// Increment adds 1 to the counter at pixel (i, j).
//
// (i, j) must be in range. Callers obtain coordinates from
// Viewport.ComplexToPixel, which never returns an out-of-range pixel, so
// Increment performs no bounds check of its own.
func (h *Histogram) Increment(i, j int) {
	h.counts[j*h.width+i]++
}

// Merge adds other's counts element-wise into h. Both histograms must
// have identical dimensions; otherwise Merge returns a
// *DimensionMismatchError and h is left unchanged.
//
// Merge is commutative and associative over counts, which is what allows
// per-worker grids to be reduced in any order.
func (h *Histogram) Merge(other *Histogram) error {
	if other.width != h.width || other.height != h.height {
		return &DimensionMismatchError{
			WantWidth: h.width, WantHeight: h.height,
			GotWidth: other.width, GotHeight: other.height,
		}
	}
	for i, c := range other.counts {
		h.counts[i] += c
	}
	return nil
}

// Max returns the largest counter in the grid. An all-zero grid returns 0.
func (h *Histogram) Max() uint64 {
	var max uint64
	for _, c := range h.counts {
		if c > max {
			max = c
		}
	}
	return max
}

// Total returns the sum of all counters, i.e. the number of in-frame
// orbit points plotted into the grid.
func (h *Histogram) Total() uint64 {
	var total uint64
	for _, c := range h.counts {
		total += c
	}
	return total
}

// Reset zeroes all counters for reuse.
func (h *Histogram) Reset() {
	clear(h.counts)
}
