package whiteboard

// StampBatch is a scoped drawing pass over a whiteboard's canvas.
// A batch is acquired before a run of stamps and closed after; all
// stamp submission goes through it, so there is no implicit "active
// render target" state anywhere in the pipeline.
//
// Batches are not reusable: after Close, submissions return
// ErrBatchClosed and paint nothing.
type StampBatch struct {
	raster *Rasterizer
	guide  *GuideMask
	width  int
	height int
	stamps int
	closed bool
}

// Stamp paints a single rotated stamp at pos. When gated is true the
// position is checked against the guide mask first; rejected positions
// paint nothing. Returns the ErrBatchClosed sentinel after Close.
func (b *StampBatch) Stamp(pos Point, col RGBA, halfW, halfH, rotDegrees float64, gated bool) error {
	if b.closed {
		return ErrBatchClosed
	}
	if gated && !b.guide.Accepts(pos, b.width, b.height) {
		return nil
	}
	b.raster.DrawStamp(pos, col, halfW, halfH, rotDegrees)
	b.stamps++
	return nil
}

// Line paints interpolated stamps along the straight path from one
// position to the next, spaced at most the rasterizer's minimum
// spacing apart. The starting position is not repainted. When gated is
// true each sample is checked against the guide mask individually.
func (b *StampBatch) Line(from, to Point, col RGBA, halfW, halfH, rotDegrees float64, gated bool) error {
	if b.closed {
		return ErrBatchClosed
	}
	var accept func(Point) bool
	if gated {
		accept = func(p Point) bool {
			return b.guide.Accepts(p, b.width, b.height)
		}
	}
	b.stamps += b.raster.DrawInterpolated(from, to, col, halfW, halfH, rotDegrees, accept)
	return nil
}

// Stamps returns the number of stamps painted so far in this batch.
func (b *StampBatch) Stamps() int {
	return b.stamps
}

// Close ends the drawing pass. Further submissions are rejected.
func (b *StampBatch) Close() {
	if b.closed {
		return
	}
	b.closed = true
	if b.stamps > 0 {
		Logger().Debug("whiteboard: batch closed", "stamps", b.stamps)
	}
}
