package whiteboard

// Contact is one tick's intersection between a brush prop and a painted
// surface, as resolved by the host engine's raycast. Contacts are
// ephemeral: consumed during the tick they were produced in, never
// retained beyond updating the brush's last painted position.
type Contact struct {
	// Point is the world-space hit point.
	Point Vec3

	// Target identifies the surface that was hit. A whiteboard ignores
	// contacts whose target does not match its own name.
	Target string

	// Distance is the raycast distance from the prop tip to the hit
	// point. Contacts beyond the whiteboard's configured maximum ray
	// distance are treated as misses.
	Distance float64

	// UV is the native surface coordinate of the hit, normalized to
	// [0,1] on both axes. Only meaningful when HasUV is true; mesh-based
	// surfaces supply it, box volumes do not.
	UV Point

	// HasUV reports whether UV carries a precomputed surface coordinate.
	HasUV bool
}

// ContactSource resolves the current contact for a brush, one query per
// grabbed brush per tick. The second return value is false when the
// brush is not touching anything this tick — the normal "brush lifted"
// signal, not an error.
type ContactSource interface {
	Contact(id BrushID) (Contact, bool)
}

// ContactFunc adapts a function to the ContactSource interface.
type ContactFunc func(id BrushID) (Contact, bool)

// Contact implements ContactSource.
func (f ContactFunc) Contact(id BrushID) (Contact, bool) {
	return f(id)
}
