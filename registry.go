package whiteboard

// Registry owns the set of active brushes. Brushes are addressed by
// stable IDs and iterated in insertion order, which defines paint order
// within a tick. The registry also normalizes brush colors: non-eraser
// brushes receive the configured paint alpha, eraser brushes are forced
// to the background color at full opacity, redone whenever the
// background changes.
type Registry struct {
	brushes    map[BrushID]*Brush
	order      []BrushID
	nextID     BrushID
	paintAlpha float64
	background RGBA
}

// NewRegistry creates an empty registry. paintAlpha is the alpha
// applied to every non-eraser brush color; background is the color
// eraser brushes paint in.
func NewRegistry(paintAlpha float64, background RGBA) *Registry {
	return &Registry{
		brushes:    make(map[BrushID]*Brush),
		paintAlpha: paintAlpha,
		background: background,
	}
}

// Add registers a brush and returns its stable ID. The brush's color is
// normalized immediately. canvasWidth and canvasHeight size the stroke
// tracker's edge-crossing thresholds.
func (r *Registry) Add(spec BrushSpec, canvasWidth, canvasHeight int) BrushID {
	id := r.nextID
	r.nextID++

	b := &Brush{
		id:      id,
		spec:    spec,
		tracker: NewStrokeTracker(canvasWidth, canvasHeight),
	}
	r.normalize(b)

	r.brushes[id] = b
	r.order = append(r.order, id)
	return id
}

// Remove detaches a brush from the registry. Returns ErrUnknownBrush if
// the ID is not registered.
func (r *Registry) Remove(id BrushID) error {
	if _, ok := r.brushes[id]; !ok {
		return ErrUnknownBrush
	}
	delete(r.brushes, id)
	for i, o := range r.order {
		if o == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Get returns the brush with the given ID, or nil if it is not
// registered.
func (r *Registry) Get(id BrushID) *Brush {
	return r.brushes[id]
}

// Len returns the number of registered brushes.
func (r *Registry) Len() int {
	return len(r.brushes)
}

// Brushes returns the registered brushes in insertion order. The slice
// is a snapshot: removing brushes while iterating it is safe.
func (r *Registry) Brushes() []*Brush {
	out := make([]*Brush, 0, len(r.order))
	for _, id := range r.order {
		if b, ok := r.brushes[id]; ok {
			out = append(out, b)
		}
	}
	return out
}

// Background returns the current background color.
func (r *Registry) Background() RGBA {
	return r.background
}

// SetBackground updates the background color and re-normalizes every
// eraser brush to paint in it.
func (r *Registry) SetBackground(c RGBA) {
	r.background = c
	for _, b := range r.brushes {
		if b.spec.Eraser {
			r.normalize(b)
		}
	}
}

// normalize applies the color rules: erasers paint the background at
// full opacity, everything else keeps its configured color with the
// registry's paint alpha.
func (r *Registry) normalize(b *Brush) {
	if b.spec.Eraser {
		b.color = r.background.Opaque()
		return
	}
	b.color = b.spec.Color.WithAlpha(r.paintAlpha)
}

// OnGrabbed transitions a brush into the held state. The stroke tracker
// is reset so the first contact after the grab is a fresh stamp.
// Unknown IDs are ignored.
func (r *Registry) OnGrabbed(id BrushID) {
	b := r.brushes[id]
	if b == nil {
		return
	}
	b.grabbed = true
	b.tracker.Reset()
}

// OnReleased transitions a brush out of the held state, halting drawing
// immediately and re-arming first-draw for the next grab. Unknown IDs
// are ignored.
func (r *Registry) OnReleased(id BrushID) {
	b := r.brushes[id]
	if b == nil {
		return
	}
	b.grabbed = false
	b.tracker.Reset()
}
