package whiteboard

import "math"

// Shared test helpers.

func abs(x float64) float64 {
	return math.Abs(x)
}

// uvFor returns the normalized surface coordinate that MeshUVMapper
// maps to the center of pixel (x, y) on a width×height canvas.
func uvFor(x, y, width, height int) Point {
	return Pt(
		(float64(x)+0.5)/float64(width),
		1-(float64(y)+0.5)/float64(height),
	)
}

// colorApprox reports whether two colors match within tolerance on all
// channels.
func colorApprox(a, b RGBA, tol float64) bool {
	return abs(a.R-b.R) <= tol && abs(a.G-b.G) <= tol &&
		abs(a.B-b.B) <= tol && abs(a.A-b.A) <= tol
}
