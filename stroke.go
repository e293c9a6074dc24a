package whiteboard

import "math"

// edgeDivisor sets the edge-crossing threshold as a fraction of the
// canvas dimensions: a per-tick jump of more than width/16 horizontally
// or height/16 vertically is treated as a surface discontinuity.
const edgeDivisor = 16

// StrokeAction tells the caller how to paint the current sample.
type StrokeAction int

const (
	// StrokeNone indicates nothing should be painted this tick.
	StrokeNone StrokeAction = iota

	// StrokeStamp indicates a single stamp at the current position,
	// with no interpolation. Used for the first sample after contact
	// begins or resumes, and when an edge crossing is detected.
	StrokeStamp

	// StrokeInterpolate indicates the path from the previous position
	// to the current one should be filled with interpolated stamps.
	StrokeInterpolate
)

type strokeState int

const (
	strokeIdle strokeState = iota
	strokeTouchingFirst
	strokeTouchingContinuing
)

// StrokeTracker follows one brush's contact continuity across ticks.
// It decides whether each sample is a fresh stamp, a continuation to
// interpolate, or a seam crossing to skip, and remembers the last
// painted pixel position.
//
// The last position is meaningful only while the tracker is drawing;
// a lift or release discards it so the next contact never interpolates
// against a stale position.
type StrokeTracker struct {
	state strokeState
	last  Point
	edgeX float64
	edgeY float64
}

// NewStrokeTracker creates a tracker with edge-crossing thresholds
// derived from the canvas dimensions.
func NewStrokeTracker(canvasWidth, canvasHeight int) *StrokeTracker {
	return &StrokeTracker{
		edgeX: float64(canvasWidth) / edgeDivisor,
		edgeY: float64(canvasHeight) / edgeDivisor,
	}
}

// Advance feeds the tracker the current tick's sample position and
// returns how to paint it. For StrokeInterpolate the returned point is
// the previous painted position to interpolate from; for other actions
// it is the sample itself.
func (t *StrokeTracker) Advance(sample Point) (StrokeAction, Point) {
	switch t.state {
	case strokeIdle, strokeTouchingFirst:
		t.state = strokeTouchingContinuing
		t.last = sample
		return StrokeStamp, sample

	case strokeTouchingContinuing:
		prev := t.last
		t.last = sample
		if math.Abs(sample.X-prev.X) > t.edgeX || math.Abs(sample.Y-prev.Y) > t.edgeY {
			// Jump across a UV seam: stamp once at the new position
			// instead of smearing paint across the discontinuity.
			return StrokeStamp, sample
		}
		return StrokeInterpolate, prev
	}
	return StrokeNone, sample
}

// Lift signals that the brush had no contact this tick. Drawing stops
// and the next contact is treated as a first touch.
func (t *StrokeTracker) Lift() {
	t.state = strokeIdle
}

// Reset forces the tracker back to idle regardless of current state.
// Called on grab release.
func (t *StrokeTracker) Reset() {
	t.state = strokeIdle
	t.last = Point{}
}

// IsDrawing reports whether the brush is currently in contact and
// painting.
func (t *StrokeTracker) IsDrawing() bool {
	return t.state != strokeIdle
}

// IsFirstDraw reports whether the next sample must not be interpolated
// against the last position.
func (t *StrokeTracker) IsFirstDraw() bool {
	return t.state != strokeTouchingContinuing
}

// LastPosition returns the last painted pixel position. Only meaningful
// while IsDrawing reports true.
func (t *StrokeTracker) LastPosition() Point {
	return t.last
}
