package whiteboard

// Whiteboard is a paintable drawing surface: a canvas, a surface
// mapper, a brush registry, and an optional guide mask, driven by a
// per-tick pipeline. All operations are synchronous and side-effecting;
// the pipeline is single-threaded and processes brushes in registry
// insertion order.
type Whiteboard struct {
	name           string
	canvas         *Canvas
	mapper         Mapper
	registry       *Registry
	guide          *GuideMask
	raster         *Rasterizer
	maxRayDistance float64
	disabled       bool
}

// New creates a whiteboard with a canvas of the given dimensions. The
// canvas is cleared to the background color (and the guide drawn over
// it) before New returns.
//
// A whiteboard missing its essential resources — a canvas with positive
// dimensions and a mapper — latches into a disabled state: the
// condition is logged once and every subsequent operation on the
// surface is a no-op. No recovery is attempted.
func New(width, height int, opts ...Option) *Whiteboard {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	canvas := cfg.canvas
	if canvas == nil && width > 0 && height > 0 {
		canvas = NewCanvas(width, height)
	}

	w := &Whiteboard{
		name:           cfg.name,
		canvas:         canvas,
		mapper:         cfg.mapper,
		guide:          cfg.guide,
		maxRayDistance: cfg.maxRayDistance,
	}

	if canvas == nil || canvas.Width() <= 0 || canvas.Height() <= 0 || cfg.mapper == nil {
		w.disabled = true
		Logger().Warn("whiteboard: surface disabled, missing canvas or mapper",
			"name", cfg.name, "width", width, "height", height)
		return w
	}

	w.registry = NewRegistry(cfg.paintAlpha, cfg.background)
	w.raster = NewRasterizer(canvas, cfg.minSpacing)
	for _, spec := range cfg.brushes {
		w.registry.Add(spec, canvas.Width(), canvas.Height())
	}

	w.ClearCanvas()
	return w
}

// Name returns the surface identity matched against Contact.Target.
func (w *Whiteboard) Name() string {
	return w.name
}

// Canvas returns the painted pixel buffer, or nil for a disabled
// surface.
func (w *Whiteboard) Canvas() *Canvas {
	if w.disabled {
		return nil
	}
	return w.canvas
}

// Guide returns the attached guide mask, nil when absent.
func (w *Whiteboard) Guide() *GuideMask {
	return w.guide
}

// Disabled reports whether the surface has latched into its no-op
// state.
func (w *Whiteboard) Disabled() bool {
	return w.disabled
}

// AddBrush registers a brush and returns its stable ID.
func (w *Whiteboard) AddBrush(spec BrushSpec) BrushID {
	if w.disabled {
		return -1
	}
	return w.registry.Add(spec, w.canvas.Width(), w.canvas.Height())
}

// RemoveBrush detaches a brush from the surface. Removing an unknown
// brush is a no-op.
func (w *Whiteboard) RemoveBrush(id BrushID) {
	if w.disabled {
		return
	}
	if err := w.registry.Remove(id); err != nil {
		Logger().Debug("whiteboard: remove brush", "id", int(id), "err", err)
	}
}

// Brush returns the registered brush with the given ID, nil if absent.
func (w *Whiteboard) Brush(id BrushID) *Brush {
	if w.disabled {
		return nil
	}
	return w.registry.Get(id)
}

// OnGrabbed is the lifecycle hook invoked by the external grab system
// when a brush prop is picked up.
func (w *Whiteboard) OnGrabbed(id BrushID) {
	if w.disabled {
		return
	}
	w.registry.OnGrabbed(id)
}

// OnReleased is the lifecycle hook invoked by the external grab system
// when a brush prop is let go. Drawing for that brush halts immediately.
func (w *Whiteboard) OnReleased(id BrushID) {
	if w.disabled {
		return
	}
	w.registry.OnReleased(id)
}

// SetBackgroundColor updates the background, re-normalizes eraser brush
// colors, and redraws the canvas background and guide content.
func (w *Whiteboard) SetBackgroundColor(col RGBA) {
	if w.disabled {
		return
	}
	w.registry.SetBackground(col)
	w.ClearCanvas()
}

// ClearCanvas resets the canvas to the background color and redraws the
// guide content if present. Clearing twice in a row yields the same
// canvas state as clearing once.
func (w *Whiteboard) ClearCanvas() {
	if w.disabled {
		return
	}
	w.canvas.Clear(w.registry.Background())
	w.guide.DrawTo(w.canvas)
}

// SetGuideIndex selects the guide template to trace and redraws the
// canvas. A no-op when the surface has no guide mask.
func (w *Whiteboard) SetGuideIndex(i int) {
	if w.disabled || w.guide == nil {
		return
	}
	w.guide.SetIndex(i)
	w.ClearCanvas()
}

// Begin opens a scoped drawing pass over the canvas. Returns nil for a
// disabled surface; StampBatch methods on a nil batch are not safe, so
// callers that may hold a disabled surface check first.
func (w *Whiteboard) Begin() *StampBatch {
	if w.disabled {
		return nil
	}
	return &StampBatch{
		raster: w.raster,
		guide:  w.guide,
		width:  w.canvas.Width(),
		height: w.canvas.Height(),
	}
}

// Draw paints a single rotated stamp directly into the canvas,
// bypassing stroke tracking and guide gating. Exposed for external
// callers that want raw canvas mutation.
func (w *Whiteboard) Draw(pos Point, col RGBA, halfW, halfH, rotDegrees float64) {
	if w.disabled {
		return
	}
	w.raster.DrawStamp(pos, col, halfW, halfH, rotDegrees)
}

// Tick runs one pass of the painting pipeline: for every grabbed brush,
// resolve its contact, map it to pixel coordinates, advance the stroke
// tracker, and rasterize the accepted samples. Contacts for other
// surfaces, beyond the maximum ray distance, or absent entirely count
// as the brush being lifted.
func (w *Whiteboard) Tick(src ContactSource) {
	if w.disabled || src == nil {
		return
	}

	batch := w.Begin()
	defer batch.Close()

	for _, b := range w.registry.Brushes() {
		if !b.IsGrabbed() {
			continue
		}

		contact, ok := src.Contact(b.ID())
		if !ok || contact.Target != w.name ||
			(w.maxRayDistance > 0 && contact.Distance > w.maxRayDistance) {
			b.tracker.Lift()
			continue
		}

		pos, ok := w.mapper.Map(contact, w.canvas.Width(), w.canvas.Height())
		if !ok {
			b.tracker.Lift()
			continue
		}

		gated := !b.BypassesGuide()
		rot := b.RotationDegrees()
		action, prev := b.tracker.Advance(pos)
		switch action {
		case StrokeStamp:
			_ = batch.Stamp(pos, b.Color(), b.HalfWidth(), b.HalfHeight(), rot, gated)
		case StrokeInterpolate:
			_ = batch.Line(prev, pos, b.Color(), b.HalfWidth(), b.HalfHeight(), rot, gated)
		}
	}
}
