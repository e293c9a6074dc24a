package whiteboard

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

// Guide is one traceable template: a source image and the sub-rectangle
// within it that holds the glyph. An empty Rect selects the whole image.
type Guide struct {
	Source image.Image
	Rect   image.Rectangle
}

// bounds returns the effective glyph sub-rectangle.
func (g Guide) bounds() image.Rectangle {
	if g.Rect.Empty() {
		return g.Source.Bounds()
	}
	return g.Rect
}

// GuideMask gates paint application against a traceable template placed
// on the canvas (letter-tracing mode). The template occupies a centered
// placement rectangle sized as a fraction of the canvas dimensions;
// paint is accepted only where the template's alpha channel exceeds the
// configured threshold. Positions outside the placement rectangle are
// always rejected.
//
// A nil GuideMask accepts every position.
type GuideMask struct {
	guides    []Guide
	masks     []*Mask
	index     int
	threshold float64
	fracW     float64
	fracH     float64
}

// NewGuideMask creates a guide mask over a set of templates. threshold
// is the alpha acceptance threshold in [0, 1]; fracW and fracH size the
// centered placement rectangle as fractions of the canvas dimensions.
// The alpha channel of each template is extracted once at construction.
func NewGuideMask(guides []Guide, threshold, fracW, fracH float64) *GuideMask {
	masks := make([]*Mask, len(guides))
	for i, g := range guides {
		masks[i] = NewMaskFromAlpha(g.Source, g.bounds())
	}
	return &GuideMask{
		guides:    guides,
		masks:     masks,
		threshold: threshold,
		fracW:     fracW,
		fracH:     fracH,
	}
}

// Len returns the number of templates in the set.
func (g *GuideMask) Len() int {
	if g == nil {
		return 0
	}
	return len(g.guides)
}

// Index returns the currently selected template index.
func (g *GuideMask) Index() int {
	if g == nil {
		return 0
	}
	return g.index
}

// SetIndex selects the template to trace. Out-of-range indices are
// ignored.
func (g *GuideMask) SetIndex(i int) {
	if g == nil || i < 0 || i >= len(g.guides) {
		return
	}
	g.index = i
}

// placement returns the centered placement rectangle on a canvas of the
// given dimensions.
func (g *GuideMask) placement(width, height int) (x0, y0, w, h float64) {
	w = g.fracW * float64(width)
	h = g.fracH * float64(height)
	x0 = (float64(width) - w) / 2
	y0 = (float64(height) - h) / 2
	return x0, y0, w, h
}

// Accepts reports whether paint may be applied at a pixel position on a
// canvas of the given dimensions. Absent masks accept everything;
// positions outside the placement rectangle are rejected; inside it the
// position is mapped linearly into the template's pixel space, clamped,
// and accepted iff the sampled alpha exceeds the threshold.
func (g *GuideMask) Accepts(pos Point, width, height int) bool {
	if g == nil || len(g.masks) == 0 {
		return true
	}

	x0, y0, w, h := g.placement(width, height)
	if w <= 0 || h <= 0 {
		return false
	}
	if pos.X < x0 || pos.X >= x0+w || pos.Y < y0 || pos.Y >= y0+h {
		return false
	}

	m := g.masks[g.index]
	mx := int(math.Floor((pos.X - x0) / w * float64(m.Width())))
	my := int(math.Floor((pos.Y - y0) / h * float64(m.Height())))
	alpha := float64(m.At(mx, my)) / 255
	return alpha > g.threshold
}

// DrawTo renders the selected template into its placement rectangle on
// the canvas, scaling the glyph sub-rectangle to fit. Called after a
// clear or background change to restore the visible tracing template.
func (g *GuideMask) DrawTo(c *Canvas) {
	if g == nil || len(g.guides) == 0 || c == nil {
		return
	}

	x0, y0, w, h := g.placement(c.Width(), c.Height())
	dst := image.Rect(
		int(math.Floor(x0)), int(math.Floor(y0)),
		int(math.Ceil(x0+w)), int(math.Ceil(y0+h)),
	)
	guide := g.guides[g.index]
	xdraw.ApproxBiLinear.Scale(c, dst, guide.Source, guide.bounds(), xdraw.Over, nil)
}
