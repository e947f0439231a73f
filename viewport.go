package buddha

import "math"

// Viewport is a rectangular window onto the complex plane together with
// the pixel resolution it is rendered at. A Viewport is a value type and
// never mutated after construction.
type Viewport struct {
	RealMin float64 `json:"real_min"`
	RealMax float64 `json:"real_max"`
	ImagMin float64 `json:"imag_min"`
	ImagMax float64 `json:"imag_max"`
	Width   int     `json:"width_px"`
	Height  int     `json:"height_px"`
}

// Validate reports whether the viewport describes a proper rectangle with
// a positive pixel resolution.
func (v Viewport) Validate() error {
	for _, b := range [...]float64{v.RealMin, v.RealMax, v.ImagMin, v.ImagMax} {
		if math.IsNaN(b) || math.IsInf(b, 0) {
			return ErrInvalidViewport
		}
	}
	if v.RealMax <= v.RealMin || v.ImagMax <= v.ImagMin {
		return ErrInvalidViewport
	}
	if v.Width <= 0 || v.Height <= 0 {
		return ErrZeroResolution
	}
	return nil
}

// PixelToComplex maps pixel (i, j) to the complex point at the center of
// that pixel's cell. i must be in [0, Width), j in [0, Height).
func (v Viewport) PixelToComplex(i, j int) complex128 {
	re := v.RealMin + (float64(i)+0.5)*(v.RealMax-v.RealMin)/float64(v.Width)
	im := v.ImagMin + (float64(j)+0.5)*(v.ImagMax-v.ImagMin)/float64(v.Height)
	return complex(re, im)
}

// ComplexToPixel maps a complex point to the pixel cell containing it.
// ok is false when the point lies outside the viewport; that is the
// normal "no contribution" case for orbit points leaving the frame, not
// an error.
//
// ComplexToPixel is the inverse of PixelToComplex up to floating-point
// rounding: for every in-range (i, j), the center of cell (i, j) maps
// back to (i, j).
func (v Viewport) ComplexToPixel(z complex128) (i, j int, ok bool) {
	re, im := real(z), imag(z)
	// Written so that NaN coordinates fail the containment test.
	if !(re >= v.RealMin && re < v.RealMax && im >= v.ImagMin && im < v.ImagMax) {
		return 0, 0, false
	}
	i = int((re - v.RealMin) * float64(v.Width) / (v.RealMax - v.RealMin))
	j = int((im - v.ImagMin) * float64(v.Height) / (v.ImagMax - v.ImagMin))
	// Rounding can nudge a point sitting on the top edge of the last cell
	// past Width-1 even though re < RealMax held above.
	if i >= v.Width {
		i = v.Width - 1
	}
	if j >= v.Height {
		j = v.Height - 1
	}
	return i, j, true
}
