package whiteboard

import "errors"

// Sentinel errors for the whiteboard package.
var (
	// ErrUnknownBrush is returned when an operation references a brush
	// ID that is not registered.
	ErrUnknownBrush = errors.New("whiteboard: unknown brush id")

	// ErrBatchClosed is returned when stamps are submitted to a drawing
	// batch after it has been closed.
	ErrBatchClosed = errors.New("whiteboard: batch already closed")
)
