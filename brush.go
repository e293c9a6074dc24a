package whiteboard

// BrushID identifies a registered brush. IDs are stable for the life of
// the registry: removing a brush never renumbers the others, so event
// dispatch can safely hold an ID across add/remove churn.
type BrushID int

// BrushSpec configures a brush at registration time.
type BrushSpec struct {
	// Color is the paint color. Non-eraser brushes have their alpha
	// replaced by the registry's paint alpha; eraser brushes paint in
	// the background color at full opacity regardless of Color.
	Color RGBA

	// HalfWidth and HalfHeight are the stamp half-extents in pixels.
	HalfWidth  float64
	HalfHeight float64

	// Eraser marks the brush as an eraser: it paints the background
	// color and bypasses guide gating.
	Eraser bool

	// BypassGuide lets a non-eraser brush paint through the guide mask.
	BypassGuide bool

	// Rotation, when non-nil, supplies the stamp rotation in degrees
	// each tick (typically the prop's surface-local roll angle).
	Rotation func() float64
}

// Brush is a registered painting prop. Its color is kept normalized by
// the registry; its stroke tracker carries the per-brush drawing state.
type Brush struct {
	id      BrushID
	spec    BrushSpec
	color   RGBA
	grabbed bool
	tracker *StrokeTracker
}

// ID returns the brush's stable identifier.
func (b *Brush) ID() BrushID {
	return b.id
}

// Color returns the normalized paint color.
func (b *Brush) Color() RGBA {
	return b.color
}

// HalfWidth returns the stamp half-width in pixels.
func (b *Brush) HalfWidth() float64 {
	return b.spec.HalfWidth
}

// HalfHeight returns the stamp half-height in pixels.
func (b *Brush) HalfHeight() float64 {
	return b.spec.HalfHeight
}

// IsEraser reports whether the brush is an eraser.
func (b *Brush) IsEraser() bool {
	return b.spec.Eraser
}

// BypassesGuide reports whether the brush paints through the guide
// mask. Erasers always do.
func (b *Brush) BypassesGuide() bool {
	return b.spec.Eraser || b.spec.BypassGuide
}

// IsGrabbed reports whether the brush is currently held.
func (b *Brush) IsGrabbed() bool {
	return b.grabbed
}

// IsDrawing reports whether the brush is currently in contact with the
// surface and painting.
func (b *Brush) IsDrawing() bool {
	return b.tracker.IsDrawing()
}

// LastPosition returns the last painted pixel position. Only meaningful
// while IsDrawing reports true.
func (b *Brush) LastPosition() Point {
	return b.tracker.LastPosition()
}

// RotationDegrees returns the current stamp rotation, 0 when the brush
// has no rotation source.
func (b *Brush) RotationDegrees() float64 {
	if b.spec.Rotation == nil {
		return 0
	}
	return b.spec.Rotation()
}
