package whiteboard

import "math"

// Mapper converts a contact on the painted surface into canvas pixel
// coordinates. The returned position is not clamped: contacts outside
// the mapped [0,1] range produce coordinates outside the canvas, and
// the rasterizer clips them at draw time. Both strategies flip the
// vertical axis so downstream logic is strategy-agnostic.
type Mapper interface {
	// Map returns the pixel position for a contact on a canvas of the
	// given dimensions. The second return value is false when the
	// contact cannot be mapped at all (for example a mesh mapper given
	// a contact with no surface coordinate).
	Map(c Contact, width, height int) (Point, bool)
}

// BoxVolumeMapper projects world-space hit points into the local frame
// of a box-shaped painting volume. AxisU and AxisV are the unit axes
// spanning the painted face; Size is the face's full world-space extent
// along each axis.
type BoxVolumeMapper struct {
	Center Vec3
	AxisU  Vec3
	AxisV  Vec3
	Size   Point
}

// Map implements Mapper. The hit point is expressed relative to the
// volume center, divided by the face extent to land in [-0.5, 0.5],
// offset by 0.5, and vertically flipped to match canvas row ordering.
func (m *BoxVolumeMapper) Map(c Contact, width, height int) (Point, bool) {
	if m.Size.X == 0 || m.Size.Y == 0 {
		return Point{}, false
	}
	rel := c.Point.Sub(m.Center)
	u := rel.Dot(m.AxisU)/m.Size.X + 0.5
	v := rel.Dot(m.AxisV)/m.Size.Y + 0.5
	return toPixels(u, v, width, height), true
}

// MeshUVMapper maps contacts through the precomputed surface coordinate
// supplied by the host engine's mesh raycast.
type MeshUVMapper struct{}

// Map implements Mapper. Contacts without a native surface coordinate
// cannot be mapped.
func (MeshUVMapper) Map(c Contact, width, height int) (Point, bool) {
	if !c.HasUV {
		return Point{}, false
	}
	return toPixels(c.UV.X, c.UV.Y, width, height), true
}

// toPixels converts a normalized surface coordinate to integer pixel
// coordinates, applying the shared vertical flip. No clamping: values
// outside [0,1] map outside the canvas.
func toPixels(u, v float64, width, height int) Point {
	return Point{
		X: math.Floor(u * float64(width)),
		Y: math.Floor((1 - v) * float64(height)),
	}
}
