// Package whiteboard implements paintable drawing surfaces for tracked
// pen and brush props.
//
// # Overview
//
// A Whiteboard owns a fixed-size pixel Canvas and a set of registered
// brushes. Each simulation tick the caller supplies the current contact
// for every grabbed brush (a 3D hit point resolved by the host engine's
// raycast); the whiteboard maps the contact to canvas pixel coordinates,
// tracks stroke continuity, optionally gates the sample against a guide
// mask, and rasterizes rotated rectangular stamps into the canvas.
//
// # Quick Start
//
//	wb := whiteboard.New(1024, 512,
//		whiteboard.WithName("board"),
//		whiteboard.WithBackground(whiteboard.White),
//	)
//	pen := wb.AddBrush(whiteboard.BrushSpec{
//		Color:      whiteboard.Blue,
//		HalfWidth:  3,
//		HalfHeight: 3,
//	})
//
//	// Per tick, driven by the host input system:
//	wb.OnGrabbed(pen)
//	wb.Tick(contactSource)
//
//	// Export the painted canvas:
//	wb.Canvas().SavePNG("board.png")
//
// # Coordinate System
//
// Canvas coordinates follow the render-target convention: origin (0,0)
// at the top-left, X increasing right, Y increasing down. Surface
// mappers flip the vertical axis so that both mapping strategies agree
// with this row ordering. Stamp rotation angles are in degrees,
// clockwise on screen.
//
// # Concurrency
//
// The pipeline is single-threaded: one pass over all grabbed brushes
// per tick, in registry insertion order. None of the types in
// this package are safe for concurrent use, with the exception of
// SetLogger/Logger.
package whiteboard
