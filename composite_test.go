package buddha

import (
	"errors"
	"testing"
)

// gradientLayer builds a deterministic intensity plane for blend tests.
func gradientLayer(width, height int, salt int) *IntensityImage {
	img := NewIntensityImage(width, height)
	pix := img.Pix()
	for i := range pix {
		pix[i] = uint8((i*31 + salt*97) % 256)
	}
	return img
}

func TestCompositeSingleChannel(t *testing.T) {
	img := gradientLayer(8, 8, 1)

	tests := []struct {
		name    string
		weights ChannelWeights
	}{
		{"red", Red},
		{"green", Green},
		{"blue", Blue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Composite([]Layer{{Image: img, Weights: tt.weights}})
			if err != nil {
				t.Fatalf("Composite() = %v", err)
			}
			for j := 0; j < 8; j++ {
				for i := 0; i < 8; i++ {
					r, g, b := out.RGBAt(i, j)
					v := img.ValueAt(i, j)
					wantR, wantG, wantB := uint8(0), uint8(0), uint8(0)
					switch tt.name {
					case "red":
						wantR = v
					case "green":
						wantG = v
					case "blue":
						wantB = v
					}
					if r != wantR || g != wantG || b != wantB {
						t.Fatalf("pixel (%d,%d) = (%d,%d,%d), want (%d,%d,%d)",
							i, j, r, g, b, wantR, wantG, wantB)
					}
				}
			}
		})
	}
}

func TestCompositeLightenMatchesSingleLayers(t *testing.T) {
	// A multi-layer lighten composite must agree channel-by-channel with
	// the single-layer composites of its inputs.
	layers := []Layer{
		{Image: gradientLayer(16, 16, 1), Weights: Blue},
		{Image: gradientLayer(16, 16, 2), Weights: Red},
		{Image: gradientLayer(16, 16, 3), Weights: Green},
	}

	combined, err := Composite(layers)
	if err != nil {
		t.Fatalf("Composite() = %v", err)
	}

	for _, l := range layers {
		single, err := Composite([]Layer{l})
		if err != nil {
			t.Fatalf("Composite() = %v", err)
		}
		for j := 0; j < 16; j++ {
			for i := 0; i < 16; i++ {
				cr, cg, cb := combined.RGBAt(i, j)
				sr, sg, sb := single.RGBAt(i, j)
				// Each assigned channel is fed by exactly one layer here,
				// so the combined channel equals the single-layer one.
				if l.Weights.R == 1 && cr != sr {
					t.Fatalf("red at (%d,%d) = %d, want %d", i, j, cr, sr)
				}
				if l.Weights.G == 1 && cg != sg {
					t.Fatalf("green at (%d,%d) = %d, want %d", i, j, cg, sg)
				}
				if l.Weights.B == 1 && cb != sb {
					t.Fatalf("blue at (%d,%d) = %d, want %d", i, j, cb, sb)
				}
			}
		}
	}
}

func TestCompositeLightenTakesMax(t *testing.T) {
	dim := NewIntensityImage(2, 1)
	dim.Pix()[0] = 50
	dim.Pix()[1] = 200
	bright := NewIntensityImage(2, 1)
	bright.Pix()[0] = 150
	bright.Pix()[1] = 100

	out, err := Composite([]Layer{
		{Image: dim, Weights: Red},
		{Image: bright, Weights: Red},
	})
	if err != nil {
		t.Fatalf("Composite() = %v", err)
	}
	r0, _, _ := out.RGBAt(0, 0)
	r1, _, _ := out.RGBAt(1, 0)
	if r0 != 150 || r1 != 200 {
		t.Errorf("lighten = (%d, %d), want (150, 200)", r0, r1)
	}
}

func TestCompositeWeights(t *testing.T) {
	img := NewIntensityImage(1, 1)
	img.Pix()[0] = 100

	tests := []struct {
		name    string
		weights ChannelWeights
		wantR   uint8
		wantG   uint8
		wantB   uint8
	}{
		{"fractional", ChannelWeights{R: 0.5}, 50, 0, 0},
		{"multi-channel", ChannelWeights{R: 1, G: 0.25, B: 0.1}, 100, 25, 10},
		{"overdriven clips", ChannelWeights{R: 4}, 255, 0, 0},
		{"negative clips to zero", ChannelWeights{R: -1}, 0, 0, 0},
		{"white", White, 100, 100, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Composite([]Layer{{Image: img, Weights: tt.weights}})
			if err != nil {
				t.Fatalf("Composite() = %v", err)
			}
			r, g, b := out.RGBAt(0, 0)
			if r != tt.wantR || g != tt.wantG || b != tt.wantB {
				t.Errorf("RGBAt = (%d,%d,%d), want (%d,%d,%d)", r, g, b, tt.wantR, tt.wantG, tt.wantB)
			}
		})
	}
}

func TestCompositeDimensionMismatch(t *testing.T) {
	layers := []Layer{
		{Image: NewIntensityImage(8, 8), Weights: Red},
		{Image: NewIntensityImage(8, 9), Weights: Blue},
	}
	_, err := Composite(layers)
	var dim *DimensionMismatchError
	if !errors.As(err, &dim) {
		t.Fatalf("Composite() = %v, want *DimensionMismatchError", err)
	}
}

func TestCompositeNoLayers(t *testing.T) {
	if _, err := Composite(nil); !errors.Is(err, ErrNoLayers) {
		t.Errorf("Composite(nil) = %v, want ErrNoLayers", err)
	}
}

func TestCompositeAlphaOpaque(t *testing.T) {
	out, err := Composite([]Layer{{Image: NewIntensityImage(4, 4), Weights: Red}})
	if err != nil {
		t.Fatalf("Composite() = %v", err)
	}
	pix := out.Pix()
	for i := 3; i < len(pix); i += 4 {
		if pix[i] != 0xff {
			t.Fatal("composite alpha is not fully opaque")
		}
	}
}
