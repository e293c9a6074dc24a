package whiteboard

import (
	"image"
	"image/color"
	"testing"
)

// glyphHalf builds a 16x16 template whose right half is opaque and left
// half fully transparent.
func glyphHalf() Guide {
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 8; x < 16; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 40, G: 40, B: 40, A: 255})
		}
	}
	return Guide{Source: img}
}

// glyphUniform builds a 16x16 light-gray template with a single alpha
// everywhere.
func glyphUniform(alpha uint8) Guide {
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 200, B: 200, A: alpha})
		}
	}
	return Guide{Source: img}
}

func TestGuideMaskAbsentAcceptsAll(t *testing.T) {
	var g *GuideMask
	positions := []Point{Pt(0, 0), Pt(-10, -10), Pt(1000, 1000), Pt(32, 32)}
	for _, p := range positions {
		if !g.Accepts(p, 64, 64) {
			t.Errorf("nil mask rejected %+v", p)
		}
	}
}

func TestGuideMaskPlacementRectangle(t *testing.T) {
	// Placement covers the centered half of a 64x64 canvas: [16,48).
	g := NewGuideMask([]Guide{glyphUniform(255)}, 0.5, 0.5, 0.5)

	tests := []struct {
		name string
		pos  Point
		want bool
	}{
		{"inside placement", Pt(32, 32), true},
		{"left of placement", Pt(15, 32), false},
		{"right edge is exclusive", Pt(48, 32), false},
		{"above placement", Pt(32, 10), false},
		{"top-left corner inclusive", Pt(16, 16), true},
		{"canvas origin", Pt(0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Accepts(tt.pos, 64, 64); got != tt.want {
				t.Errorf("Accepts(%+v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestGuideMaskAlphaThreshold(t *testing.T) {
	g := NewGuideMask([]Guide{glyphHalf()}, 0.5, 0.5, 0.5)

	// Placement on a 64x64 canvas is [16,48); the glyph's opaque half
	// begins at the placement midpoint x=32.
	if g.Accepts(Pt(20, 32), 64, 64) {
		t.Errorf("transparent half accepted")
	}
	if !g.Accepts(Pt(40, 32), 64, 64) {
		t.Errorf("opaque half rejected")
	}
}

// TestGuideMaskThresholdStrict verifies acceptance requires alpha
// strictly above the threshold.
func TestGuideMaskThresholdStrict(t *testing.T) {
	alpha := float64(128) / 255

	at := NewGuideMask([]Guide{glyphUniform(128)}, alpha, 1, 1)
	if at.Accepts(Pt(8, 8), 16, 16) {
		t.Errorf("alpha equal to threshold should be rejected")
	}

	below := NewGuideMask([]Guide{glyphUniform(128)}, alpha-0.01, 1, 1)
	if !below.Accepts(Pt(8, 8), 16, 16) {
		t.Errorf("alpha above threshold should be accepted")
	}
}

func TestGuideMaskSetIndex(t *testing.T) {
	left := glyphUniform(0)
	right := glyphUniform(255)
	g := NewGuideMask([]Guide{left, right}, 0.5, 1, 1)

	if g.Accepts(Pt(8, 8), 16, 16) {
		t.Errorf("transparent template accepted")
	}

	g.SetIndex(1)
	if !g.Accepts(Pt(8, 8), 16, 16) {
		t.Errorf("opaque template rejected after index switch")
	}

	g.SetIndex(5)
	if g.Index() != 1 {
		t.Errorf("out-of-range index applied: %d", g.Index())
	}
	g.SetIndex(-1)
	if g.Index() != 1 {
		t.Errorf("negative index applied: %d", g.Index())
	}
}

// TestGuideMaskSubRectangle verifies gating samples only the glyph's
// sub-rectangle within a larger source image.
func TestGuideMaskSubRectangle(t *testing.T) {
	// 32x16 sheet: left tile transparent, right tile opaque.
	img := image.NewNRGBA(image.Rect(0, 0, 32, 16))
	for y := 0; y < 16; y++ {
		for x := 16; x < 32; x++ {
			img.SetNRGBA(x, y, color.NRGBA{A: 255})
		}
	}

	opaqueTile := Guide{Source: img, Rect: image.Rect(16, 0, 32, 16)}
	g := NewGuideMask([]Guide{opaqueTile}, 0.5, 1, 1)

	if !g.Accepts(Pt(2, 8), 16, 16) {
		t.Errorf("sub-rectangle tile should accept everywhere")
	}
}

func TestMaskClampedLookup(t *testing.T) {
	m := NewMask(4, 4)
	m.Fill(200)
	m.Set(0, 0, 10)
	m.Set(3, 3, 20)

	tests := []struct {
		name string
		x, y int
		want uint8
	}{
		{"inside", 1, 1, 200},
		{"negative clamps to first", -5, -5, 10},
		{"past end clamps to last", 10, 10, 20},
		{"mixed clamp", -1, 3, m.At(0, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.At(tt.x, tt.y); got != tt.want {
				t.Errorf("At(%d,%d) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestGuideMaskDrawTo(t *testing.T) {
	c := NewCanvas(64, 64)
	c.Clear(White)

	g := NewGuideMask([]Guide{glyphHalf()}, 0.5, 0.5, 0.5)
	g.DrawTo(c)

	// The opaque half of the glyph lands in the right half of the
	// placement rectangle; the untouched corner stays background.
	if colorApprox(c.GetPixel(40, 32), White, 0.01) {
		t.Errorf("glyph content not drawn into placement rectangle")
	}
	if !colorApprox(c.GetPixel(2, 2), White, 0.01) {
		t.Errorf("content drawn outside placement rectangle")
	}
}
