package buddha

import (
	"fmt"
	"image"
	"math"
)

// NormalizationMode selects how raw counts map to intensities.
//
// Buddhabrot count distributions are heavily right-skewed: a handful of
// pixels near the attractor accumulate orders of magnitude more visits
// than the rest of the frame. Logarithmic scaling is therefore the
// default; linear scaling is available when faithful relative counts
// matter more than visible contrast.
type NormalizationMode int

const (
	// NormalizeLog maps count c to round(255 * log(1+c) / log(1+max)).
	NormalizeLog NormalizationMode = iota

	// NormalizeLinear maps count c to round(255 * c / max).
	NormalizeLinear
)

// String returns the mode's configuration name.
func (m NormalizationMode) String() string {
	switch m {
	case NormalizeLog:
		return "log"
	case NormalizeLinear:
		return "linear"
	default:
		return fmt.Sprintf("NormalizationMode(%d)", int(m))
	}
}

// MarshalJSON encodes the mode as its configuration name.
func (m NormalizationMode) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON accepts "log", "logarithmic", "linear", or an empty
// string (the default, logarithmic).
func (m *NormalizationMode) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"log"`, `"logarithmic"`, `""`, `null`:
		*m = NormalizeLog
	case `"linear"`:
		*m = NormalizeLinear
	default:
		return fmt.Errorf("buddha: unknown normalization mode %s", data)
	}
	return nil
}

// Normalize converts a count grid into an 8-bit intensity plane.
//
// The grid's maximum count maps to 255 and unvisited pixels to 0. A grid
// with no counts at all yields an all-zero image rather than an error;
// that almost always means the viewport or sample budget is misconfigured,
// so a warning is logged.
func Normalize(h *Histogram, mode NormalizationMode) *IntensityImage {
	img := NewIntensityImage(h.Width(), h.Height())
	max := h.Max()
	if max == 0 {
		Logger().Warn("normalizing an empty histogram; viewport or sample count is likely misconfigured",
			"width", h.Width(), "height", h.Height())
		return img
	}

	counts := h.Counts()
	pix := img.Pix()
	switch mode {
	case NormalizeLinear:
		scale := 255 / float64(max)
		for i, c := range counts {
			pix[i] = uint8(math.Round(float64(c) * scale))
		}
	default:
		scale := 255 / math.Log1p(float64(max))
		for i, c := range counts {
			pix[i] = uint8(math.Round(math.Log1p(float64(c)) * scale))
		}
	}
	return img
}

// NormalizeDeep is Normalize at 16-bit depth, for export paths that keep
// more of the count distribution than an 8-bit plane can hold. The result
// encodes directly as a 16-bit grayscale TIFF or PNG.
func NormalizeDeep(h *Histogram, mode NormalizationMode) *image.Gray16 {
	img := image.NewGray16(image.Rect(0, 0, h.Width(), h.Height()))
	max := h.Max()
	if max == 0 {
		return img
	}

	counts := h.Counts()
	for i, c := range counts {
		var v uint16
		switch mode {
		case NormalizeLinear:
			v = uint16(math.Round(float64(c) * 65535 / float64(max)))
		default:
			v = uint16(math.Round(math.Log1p(float64(c)) * 65535 / math.Log1p(float64(max))))
		}
		img.Pix[2*i] = uint8(v >> 8)
		img.Pix[2*i+1] = uint8(v)
	}
	return img
}
