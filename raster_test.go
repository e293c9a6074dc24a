package whiteboard

import (
	"bytes"
	"testing"
)

// countColor returns the number of canvas pixels matching a color.
func countColor(c *Canvas, col RGBA, tol float64) int {
	n := 0
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if colorApprox(c.GetPixel(x, y), col, tol) {
				n++
			}
		}
	}
	return n
}

func TestDrawStampAxisAligned(t *testing.T) {
	c := NewCanvas(64, 64)
	c.Clear(Black)
	r := NewRasterizer(c, 2)

	r.DrawStamp(Pt(32, 32), Red, 4, 2, 0)

	// Half-widths 4 and 2 cover an 8x4 pixel block centered on (32,32).
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			inside := x >= 28 && x <= 35 && y >= 30 && y <= 33
			got := c.GetPixel(x, y)
			if inside && !colorApprox(got, Red, 0.01) {
				t.Fatalf("pixel (%d,%d) inside stamp not painted", x, y)
			}
			if !inside && !colorApprox(got, Black, 0.01) {
				t.Fatalf("pixel (%d,%d) outside stamp painted", x, y)
			}
		}
	}
}

// TestDrawStampQuarterTurn verifies the clockwise rotation convention:
// a quarter turn swaps the stamp's extents.
func TestDrawStampQuarterTurn(t *testing.T) {
	rotated := NewCanvas(64, 64)
	rotated.Clear(Black)
	NewRasterizer(rotated, 2).DrawStamp(Pt(32, 32), Red, 4, 2, 90)

	swapped := NewCanvas(64, 64)
	swapped.Clear(Black)
	NewRasterizer(swapped, 2).DrawStamp(Pt(32, 32), Red, 2, 4, 0)

	if !bytes.Equal(rotated.Data(), swapped.Data()) {
		t.Errorf("90-degree rotation does not match swapped extents")
	}
}

func TestDrawStampRotatedCoversCenter(t *testing.T) {
	c := NewCanvas(64, 64)
	c.Clear(Black)
	r := NewRasterizer(c, 2)

	r.DrawStamp(Pt(32, 32), Red, 5, 3, 37)

	if !colorApprox(c.GetPixel(32, 32), Red, 0.01) {
		t.Errorf("rotated stamp does not cover its center")
	}
	if n := countColor(c, Red, 0.01); n == 0 {
		t.Errorf("rotated stamp painted nothing")
	}
}

func TestDrawStampClipping(t *testing.T) {
	tests := []struct {
		name       string
		pos        Point
		wantPixels int
	}{
		{"fully off canvas", Pt(-50, -50), 0},
		{"far past the edge", Pt(200, 200), 0},
		{"corner overlap", Pt(0, 0), 9}, // 3x3 of the 6x6 stamp remains
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(64, 64)
			c.Clear(Black)
			r := NewRasterizer(c, 2)

			r.DrawStamp(tt.pos, Red, 3, 3, 0)

			if n := countColor(c, Red, 0.01); n != tt.wantPixels {
				t.Errorf("painted %d pixels, want %d", n, tt.wantPixels)
			}
		})
	}
}

func TestDrawStampDegenerateSize(t *testing.T) {
	c := NewCanvas(16, 16)
	c.Clear(Black)
	r := NewRasterizer(c, 2)

	r.DrawStamp(Pt(8, 8), Red, 0, 3, 0)
	r.DrawStamp(Pt(8, 8), Red, 3, -1, 0)

	if n := countColor(c, Red, 0.01); n != 0 {
		t.Errorf("degenerate stamps painted %d pixels", n)
	}
}

func TestStepsNeverBelowOne(t *testing.T) {
	r := NewRasterizer(NewCanvas(16, 16), 2)

	tests := []struct {
		name string
		from Point
		to   Point
		want int
	}{
		{"zero distance", Pt(5, 5), Pt(5, 5), 1},
		{"below spacing", Pt(5, 5), Pt(6, 5), 1},
		{"ten pixels at spacing two", Pt(10, 10), Pt(10, 20), 5},
		{"uneven distance rounds up", Pt(0, 0), Pt(0, 7), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Steps(tt.from, tt.to); got != tt.want {
				t.Errorf("Steps = %d, want %d", got, tt.want)
			}
		})
	}
}

// TestDrawInterpolatedSamplePositions pins the interpolation contract:
// moving from (10,10) to (10,20) with spacing 2 paints exactly five
// stamps at y = 12, 14, 16, 18, 20.
func TestDrawInterpolatedSamplePositions(t *testing.T) {
	c := NewCanvas(256, 256)
	c.Clear(White)
	r := NewRasterizer(c, 2)

	var samples []Point
	painted := r.DrawInterpolated(Pt(10, 10), Pt(10, 20), Black, 1, 1, 0,
		func(p Point) bool {
			samples = append(samples, p)
			return true
		})

	want := []Point{Pt(10, 12), Pt(10, 14), Pt(10, 16), Pt(10, 18), Pt(10, 20)}
	if painted != len(want) {
		t.Fatalf("painted %d stamps, want %d", painted, len(want))
	}
	if len(samples) != len(want) {
		t.Fatalf("sampled %d positions, want %d", len(samples), len(want))
	}
	for i, w := range want {
		if !samples[i].Approx(w, 1e-9) {
			t.Errorf("sample %d = %+v, want %+v", i, samples[i], w)
		}
	}
}

// TestDrawInterpolatedNoGaps verifies stamps along a straight path are
// spaced at most minSpacing apart.
func TestDrawInterpolatedNoGaps(t *testing.T) {
	r := NewRasterizer(NewCanvas(256, 256), 3)

	var samples []Point
	from, to := Pt(20, 30), Pt(90, 75)
	r.DrawInterpolated(from, to, Black, 1, 1, 0, func(p Point) bool {
		samples = append(samples, p)
		return true
	})

	prev := from
	for i, p := range samples {
		if d := prev.Distance(p); d > 3+1e-9 {
			t.Errorf("gap of %.3f before sample %d exceeds spacing", d, i)
		}
		prev = p
	}
	if last := samples[len(samples)-1]; !last.Approx(to, 1e-9) {
		t.Errorf("final sample = %+v, want %+v", last, to)
	}
}

func TestDrawInterpolatedGating(t *testing.T) {
	c := NewCanvas(256, 256)
	c.Clear(White)
	r := NewRasterizer(c, 2)

	// Reject everything: spacing still advances, nothing painted.
	painted := r.DrawInterpolated(Pt(10, 10), Pt(10, 20), Black, 1, 1, 0,
		func(Point) bool { return false })

	if painted != 0 {
		t.Errorf("painted %d stamps through a rejecting gate", painted)
	}
	if n := countColor(c, Black, 0.01); n != 0 {
		t.Errorf("%d pixels painted through a rejecting gate", n)
	}
}
