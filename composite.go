package buddha

// ChannelWeights assigns an intensity layer's contribution to the red,
// green, and blue channels. A layer commonly feeds exactly one channel at
// full weight, but fractional and multi-channel weights are supported.
type ChannelWeights struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// Single-channel assignments for the common case.
var (
	Red   = ChannelWeights{R: 1}
	Green = ChannelWeights{G: 1}
	Blue  = ChannelWeights{B: 1}
	White = ChannelWeights{R: 1, G: 1, B: 1}
)

// Layer pairs an intensity plane with its channel assignment.
type Layer struct {
	Image   *IntensityImage
	Weights ChannelWeights
}

// Composite blends intensity layers into one RGB image using a lighten
// blend: each output channel is the maximum weighted intensity any layer
// contributes to it, clipped to [0, 255]. Lighten keeps each channel
// independent, so a multi-layer composite agrees channel-by-channel with
// the single-layer composites of its inputs.
//
// All layers must share the same dimensions; otherwise Composite returns
// a *DimensionMismatchError. At least one layer is required.
func Composite(layers []Layer) (*CompositeImage, error) {
	if len(layers) == 0 {
		return nil, ErrNoLayers
	}
	width, height := layers[0].Image.Width(), layers[0].Image.Height()
	for _, l := range layers[1:] {
		if l.Image.Width() != width || l.Image.Height() != height {
			return nil, &DimensionMismatchError{
				WantWidth: width, WantHeight: height,
				GotWidth: l.Image.Width(), GotHeight: l.Image.Height(),
			}
		}
	}

	out := NewCompositeImage(width, height)
	pix := out.Pix()
	for _, l := range layers {
		src := l.Image.Pix()
		for p, v := range src {
			o := p * 4
			lightenChannel(&pix[o], v, l.Weights.R)
			lightenChannel(&pix[o+1], v, l.Weights.G)
			lightenChannel(&pix[o+2], v, l.Weights.B)
		}
	}
	return out, nil
}

// lightenChannel writes the weighted intensity into *dst if it exceeds
// the value already there.
func lightenChannel(dst *uint8, intensity uint8, weight float64) {
	if weight == 0 {
		return
	}
	v := clamp255(float64(intensity) * weight)
	if uint8(v) > *dst {
		*dst = uint8(v)
	}
}

// clamp255 clips x to the displayable [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
