package whiteboard

import "math"

// Rasterizer paints rotated rectangular stamps directly into a canvas.
// Geometry partially or fully outside the canvas is clipped per pixel;
// an off-canvas stamp center is tolerated, never a fault.
type Rasterizer struct {
	canvas     *Canvas
	minSpacing float64
}

// NewRasterizer creates a rasterizer for the given canvas. minSpacing
// is the maximum allowed gap between consecutive interpolated stamps,
// in pixels; values below 1 are raised to 1.
func NewRasterizer(canvas *Canvas, minSpacing float64) *Rasterizer {
	if minSpacing < 1 {
		minSpacing = 1
	}
	return &Rasterizer{canvas: canvas, minSpacing: minSpacing}
}

// MinSpacing returns the minimum inter-stamp spacing.
func (r *Rasterizer) MinSpacing() float64 {
	return r.minSpacing
}

// DrawStamp fills a rotated rectangle of half-widths halfW, halfH
// centered at pos with a flat color. Rotation is in degrees, clockwise
// in screen coordinates (origin top-left, Y down). Colors with alpha
// below 1 are composited source-over; opaque colors overwrite.
func (r *Rasterizer) DrawStamp(pos Point, col RGBA, halfW, halfH, rotDegrees float64) {
	if halfW <= 0 || halfH <= 0 {
		return
	}

	rad := rotDegrees * math.Pi / 180
	sin, cos := math.Sincos(rad)

	// Corners of the axis-aligned rectangle, rotated clockwise and
	// translated to the stamp center.
	quad := [4]Point{
		rotateCW(Pt(-halfW, -halfH), sin, cos).Add(pos),
		rotateCW(Pt(halfW, -halfH), sin, cos).Add(pos),
		rotateCW(Pt(halfW, halfH), sin, cos).Add(pos),
		rotateCW(Pt(-halfW, halfH), sin, cos).Add(pos),
	}

	r.fillQuad(quad, col)
}

// rotateCW rotates a point clockwise in screen coordinates.
func rotateCW(p Point, sin, cos float64) Point {
	return Point{
		X: p.X*cos + p.Y*sin,
		Y: -p.X*sin + p.Y*cos,
	}
}

// fillQuad scanline-fills a convex quadrilateral, clipping each row to
// the canvas bounds.
func (r *Rasterizer) fillQuad(quad [4]Point, col RGBA) {
	yMin, yMax := quad[0].Y, quad[0].Y
	for _, p := range quad[1:] {
		yMin = math.Min(yMin, p.Y)
		yMax = math.Max(yMax, p.Y)
	}

	y0 := int(math.Floor(yMin))
	y1 := int(math.Ceil(yMax))
	if y0 < 0 {
		y0 = 0
	}
	if y1 > r.canvas.Height() {
		y1 = r.canvas.Height()
	}

	for y := y0; y < y1; y++ {
		scanY := float64(y) + 0.5
		xMin, xMax, any := quadSpan(quad, scanY)
		if !any {
			continue
		}
		// Pixel-center coverage: pixel x is filled iff x+0.5 lies
		// inside [xMin, xMax].
		r.fillSpan(int(math.Ceil(xMin-0.5)), int(math.Floor(xMax-0.5)), y, col)
	}
}

// quadSpan intersects a horizontal scanline with the quad's edges and
// returns the covered x range.
func quadSpan(quad [4]Point, y float64) (xMin, xMax float64, any bool) {
	xMin = math.MaxFloat64
	xMax = -math.MaxFloat64
	for i := 0; i < 4; i++ {
		p0 := quad[i]
		p1 := quad[(i+1)%4]
		if p0.Y == p1.Y {
			// Horizontal edge: covered at this scanline iff exactly on it,
			// which the two adjacent edges already account for.
			continue
		}
		lo, hi := p0, p1
		if lo.Y > hi.Y {
			lo, hi = hi, lo
		}
		if y < lo.Y || y >= hi.Y {
			continue
		}
		x := lo.X + (hi.X-lo.X)*(y-lo.Y)/(hi.Y-lo.Y)
		xMin = math.Min(xMin, x)
		xMax = math.Max(xMax, x)
		any = true
	}
	return xMin, xMax, any
}

// fillSpan paints pixels [x0, x1] on row y, clipped to the canvas.
func (r *Rasterizer) fillSpan(x0, x1, y int, col RGBA) {
	if x0 < 0 {
		x0 = 0
	}
	if x1 >= r.canvas.Width() {
		x1 = r.canvas.Width() - 1
	}
	for x := x0; x <= x1; x++ {
		r.canvas.BlendPixel(x, y, col)
	}
}

// Steps returns the number of interpolation subdivisions between two
// stamp positions: ceil(distance / minSpacing), never less than 1.
func (r *Rasterizer) Steps(from, to Point) int {
	steps := int(math.Ceil(from.Distance(to) / r.minSpacing))
	if steps < 1 {
		steps = 1
	}
	return steps
}

// DrawInterpolated paints stamps along the straight path from one
// position to the next, subdividing so that consecutive stamps are at
// most minSpacing apart. Stamps are placed at lerp(from, to, i/steps)
// for i in 1..steps: the starting position was painted on a previous
// tick and is not repeated. accept, when non-nil, gates each sample
// position; rejected samples are skipped without affecting spacing.
// Returns the number of stamps painted.
func (r *Rasterizer) DrawInterpolated(from, to Point, col RGBA, halfW, halfH, rotDegrees float64, accept func(Point) bool) int {
	steps := r.Steps(from, to)
	painted := 0
	for i := 1; i <= steps; i++ {
		p := from.Lerp(to, float64(i)/float64(steps))
		if accept != nil && !accept(p) {
			continue
		}
		r.DrawStamp(p, col, halfW, halfH, rotDegrees)
		painted++
	}
	return painted
}
