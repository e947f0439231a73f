package buddha

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/tiff"
)

// IntensityImage is a single-channel 8-bit image, the output of
// Normalize. It is immutable once produced.
type IntensityImage struct {
	width  int
	height int
	pix    []uint8
}

// NewIntensityImage creates a zeroed intensity image.
func NewIntensityImage(width, height int) *IntensityImage {
	return &IntensityImage{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height),
	}
}

// Width returns the width of the image in pixels.
func (m *IntensityImage) Width() int { return m.width }

// Height returns the height of the image in pixels.
func (m *IntensityImage) Height() int { return m.height }

// Pix returns the raw intensity data in row-major order (j*width + i).
func (m *IntensityImage) Pix() []uint8 { return m.pix }

// ValueAt returns the intensity at pixel (i, j).
func (m *IntensityImage) ValueAt(i, j int) uint8 {
	return m.pix[j*m.width+i]
}

// ToImage converts the plane to an image.Gray.
func (m *IntensityImage) ToImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, m.width, m.height))
	copy(img.Pix, m.pix)
	return img
}

// SavePNG writes the plane to a grayscale PNG file.
func (m *IntensityImage) SavePNG(path string) error {
	return saveImage(path, m.ToImage(), png.Encode)
}

// SaveTIFF writes the plane to a grayscale TIFF file with deflate
// compression.
func (m *IntensityImage) SaveTIFF(path string) error {
	return saveTIFF(path, m.ToImage())
}

// At implements the image.Image interface.
func (m *IntensityImage) At(x, y int) color.Color {
	return color.Gray{Y: m.ValueAt(x, y)}
}

// Bounds implements the image.Image interface.
func (m *IntensityImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// ColorModel implements the image.Image interface.
func (m *IntensityImage) ColorModel() color.Model {
	return color.GrayModel
}

// CompositeImage is an RGB image assembled by Composite from one or more
// intensity layers. Pixels are stored RGBA with full alpha, 4 bytes per
// pixel, matching image.RGBA's layout.
type CompositeImage struct {
	width  int
	height int
	pix    []uint8
}

// NewCompositeImage creates an all-black, fully opaque composite image.
func NewCompositeImage(width, height int) *CompositeImage {
	c := &CompositeImage{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}
	for i := 3; i < len(c.pix); i += 4 {
		c.pix[i] = 0xff
	}
	return c
}

// Width returns the width of the image in pixels.
func (c *CompositeImage) Width() int { return c.width }

// Height returns the height of the image in pixels.
func (c *CompositeImage) Height() int { return c.height }

// Pix returns the raw RGBA data, 4 bytes per pixel in row-major order.
func (c *CompositeImage) Pix() []uint8 { return c.pix }

// RGBAt returns the color channels at pixel (i, j).
func (c *CompositeImage) RGBAt(i, j int) (r, g, b uint8) {
	o := (j*c.width + i) * 4
	return c.pix[o], c.pix[o+1], c.pix[o+2]
}

// ToImage converts the composite to an image.RGBA.
func (c *CompositeImage) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	copy(img.Pix, c.pix)
	return img
}

// SavePNG writes the composite to a PNG file.
func (c *CompositeImage) SavePNG(path string) error {
	return saveImage(path, c.ToImage(), png.Encode)
}

// SaveTIFF writes the composite to a TIFF file with deflate compression.
func (c *CompositeImage) SaveTIFF(path string) error {
	return saveTIFF(path, c.ToImage())
}

// At implements the image.Image interface.
func (c *CompositeImage) At(x, y int) color.Color {
	r, g, b := c.RGBAt(x, y)
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

// Bounds implements the image.Image interface.
func (c *CompositeImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *CompositeImage) ColorModel() color.Model {
	return color.NRGBAModel
}

func saveImage(path string, img image.Image, encode func(io.Writer, image.Image) error) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return encode(f, img)
}

func saveTIFF(path string, img image.Image) error {
	return saveImage(path, img, func(w io.Writer, m image.Image) error {
		return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
	})
}
