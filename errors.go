package buddha

import (
	"errors"
	"fmt"
)

// Sentinel errors for render configuration. All of them are detected by
// Config.Validate before any sampling work starts.
var (
	// ErrInvalidViewport is returned when a viewport's bounds are not a
	// proper rectangle (RealMax <= RealMin or ImagMax <= ImagMin), or when
	// a bound is NaN or infinite.
	ErrInvalidViewport = errors.New("buddha: invalid viewport bounds")

	// ErrZeroResolution is returned when a viewport's pixel resolution is
	// not positive in both dimensions.
	ErrZeroResolution = errors.New("buddha: viewport resolution must be positive")

	// ErrZeroSampleCount is returned when a render is configured with no
	// samples.
	ErrZeroSampleCount = errors.New("buddha: sample count must be positive")

	// ErrNoThresholds is returned when a render is configured without any
	// iteration-depth thresholds.
	ErrNoThresholds = errors.New("buddha: at least one threshold required")

	// ErrNegativeIterations is returned when a threshold carries a negative
	// iteration bound.
	ErrNegativeIterations = errors.New("buddha: max iterations must not be negative")

	// ErrNoLayers is returned by Composite when called with no layers.
	ErrNoLayers = errors.New("buddha: no layers to composite")

	// ErrNotGrayscale is returned by RenderGrayscale when more than one
	// threshold is configured.
	ErrNotGrayscale = errors.New("buddha: grayscale render requires exactly one threshold")
)

// DimensionMismatchError is returned when grids or images that must share
// dimensions disagree. It indicates a programming defect in the caller, not
// a recoverable condition.
type DimensionMismatchError struct {
	WantWidth, WantHeight int
	GotWidth, GotHeight   int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("buddha: dimension mismatch: want %dx%d, got %dx%d",
		e.WantWidth, e.WantHeight, e.GotWidth, e.GotHeight)
}
