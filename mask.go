package whiteboard

import "image"

// Mask is a single-channel alpha raster. The guide gate samples it to
// decide whether paint may be applied at a pixel. Values range from 0
// (fully transparent) to 255 (fully opaque).
type Mask struct {
	width  int
	height int
	data   []uint8
}

// NewMask creates a new mask with the given dimensions.
// All values are initialized to 0.
func NewMask(width, height int) *Mask {
	return &Mask{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// NewMaskFromAlpha extracts the alpha channel of a sub-rectangle of an
// image into a mask. An empty sub-rectangle selects the whole image.
func NewMaskFromAlpha(img image.Image, sub image.Rectangle) *Mask {
	if sub.Empty() {
		sub = img.Bounds()
	}
	w, h := sub.Dx(), sub.Dy()
	m := NewMask(w, h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_, _, _, a := img.At(sub.Min.X+x, sub.Min.Y+y).RGBA()
			// a is 0-65535, shift by 8 to get 0-255
			m.data[y*w+x] = uint8(a >> 8)
		}
	}

	return m
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// At returns the mask value at (x, y). Coordinates are clamped into
// the valid sample range, so lookups near or past the edge never fault.
func (m *Mask) At(x, y int) uint8 {
	if m.width == 0 || m.height == 0 {
		return 0
	}
	if x < 0 {
		x = 0
	} else if x >= m.width {
		x = m.width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= m.height {
		y = m.height - 1
	}
	return m.data[y*m.width+x]
}

// Set sets the mask value at (x, y).
// Coordinates outside the mask bounds are ignored.
func (m *Mask) Set(x, y int, value uint8) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.data[y*m.width+x] = value
}

// Fill fills the entire mask with a value.
func (m *Mask) Fill(value uint8) {
	for i := range m.data {
		m.data[i] = value
	}
}
