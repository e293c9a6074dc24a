package whiteboard

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Canvas is the fixed-size pixel buffer backing a painted surface.
// It is allocated once at surface setup and never resized at runtime;
// only the stamp rasterizer and the clear/redraw operations mutate it.
type Canvas struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewCanvas creates a new canvas with the given dimensions.
// All pixels start fully transparent; callers normally clear the
// canvas to a background color before painting.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// NewCanvasFromImage creates a canvas initialized from an image.
func NewCanvasFromImage(img image.Image) *Canvas {
	bounds := img.Bounds()
	c := NewCanvas(bounds.Dx(), bounds.Dy())
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			c.SetPixel(x, y, FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y)))
		}
	}
	return c
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.height
}

// Data returns the raw pixel data (RGBA format).
func (c *Canvas) Data() []uint8 {
	return c.data
}

// SetPixel sets the color of a single pixel, replacing what was there.
// Coordinates outside the canvas bounds are ignored.
func (c *Canvas) SetPixel(x, y int, col RGBA) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	i := (y*c.width + x) * 4
	c.data[i+0] = uint8(clamp255(col.R * 255))
	c.data[i+1] = uint8(clamp255(col.G * 255))
	c.data[i+2] = uint8(clamp255(col.B * 255))
	c.data[i+3] = uint8(clamp255(col.A * 255))
}

// GetPixel returns the color of a single pixel.
// Returns Transparent for coordinates outside the canvas bounds.
func (c *Canvas) GetPixel(x, y int) RGBA {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Transparent
	}
	i := (y*c.width + x) * 4
	return RGBA{
		R: float64(c.data[i+0]) / 255,
		G: float64(c.data[i+1]) / 255,
		B: float64(c.data[i+2]) / 255,
		A: float64(c.data[i+3]) / 255,
	}
}

// BlendPixel composites a color over the existing pixel using
// source-over blending. Opaque colors take the replacement fast path.
// Coordinates outside the canvas bounds are ignored.
func (c *Canvas) BlendPixel(x, y int, col RGBA) {
	if col.A <= 0 {
		return
	}
	if col.A >= 1 {
		c.SetPixel(x, y, col)
		return
	}
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}

	existing := c.GetPixel(x, y)
	inv := 1.0 - col.A
	outA := col.A + existing.A*inv
	if outA <= 0 {
		return
	}
	c.SetPixel(x, y, RGBA{
		R: (col.R*col.A + existing.R*existing.A*inv) / outA,
		G: (col.G*col.A + existing.G*existing.A*inv) / outA,
		B: (col.B*col.A + existing.B*existing.A*inv) / outA,
		A: outA,
	})
}

// Clear fills the entire canvas with a color.
func (c *Canvas) Clear(col RGBA) {
	r := uint8(clamp255(col.R * 255))
	g := uint8(clamp255(col.G * 255))
	b := uint8(clamp255(col.B * 255))
	a := uint8(clamp255(col.A * 255))

	for i := 0; i < len(c.data); i += 4 {
		c.data[i+0] = r
		c.data[i+1] = g
		c.data[i+2] = b
		c.data[i+3] = a
	}
}

// ToImage converts the canvas to an image.NRGBA.
func (c *Canvas) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.width, c.height))
	copy(img.Pix, c.data)
	return img
}

// SavePNG saves the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, c.ToImage())
}

// Set implements the draw.Image interface, letting image/draw and
// x/image/draw composite directly onto the canvas.
func (c *Canvas) Set(x, y int, col color.Color) {
	c.SetPixel(x, y, FromColor(col))
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.GetPixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.NRGBAModel
}
