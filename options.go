package whiteboard

// Option configures a Whiteboard during creation.
// Use functional options to customize behavior.
//
// Example:
//
//	// Plain board with defaults
//	wb := whiteboard.New(1024, 512)
//
//	// Letter-tracing board with a guide mask and tighter stamps
//	wb := whiteboard.New(1024, 512,
//		whiteboard.WithGuide(guide),
//		whiteboard.WithMinStampSpacing(1),
//	)
type Option func(*config)

// config holds optional configuration for Whiteboard creation.
type config struct {
	name           string
	canvas         *Canvas
	mapper         Mapper
	guide          *GuideMask
	minSpacing     float64
	maxRayDistance float64
	paintAlpha     float64
	background     RGBA
	brushes        []BrushSpec
}

// defaultConfig returns the default whiteboard configuration.
func defaultConfig() config {
	return config{
		name:       "whiteboard",
		mapper:     MeshUVMapper{},
		minSpacing: 2,
		paintAlpha: 1,
		background: White,
	}
}

// WithName sets the surface identity matched against Contact.Target.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithCanvas supplies an existing canvas instead of allocating one.
// The canvas dimensions take precedence over the constructor's.
func WithCanvas(canvas *Canvas) Option {
	return func(c *config) {
		c.canvas = canvas
	}
}

// WithMapper selects the surface mapping strategy. The default is
// MeshUVMapper; box-shaped volumes use a BoxVolumeMapper describing
// their painted face.
func WithMapper(m Mapper) Option {
	return func(c *config) {
		c.mapper = m
	}
}

// WithGuide attaches a guide mask (letter-tracing mode). The guide is
// drawn onto the canvas on every clear and background change.
func WithGuide(g *GuideMask) Option {
	return func(c *config) {
		c.guide = g
	}
}

// WithMinStampSpacing sets the maximum gap, in pixels, between
// consecutive interpolated stamps. The default is 2.
func WithMinStampSpacing(spacing float64) Option {
	return func(c *config) {
		c.minSpacing = spacing
	}
}

// WithMaxRayDistance sets the maximum raycast distance at which a
// contact still counts as touching the surface. Zero (the default)
// accepts any distance.
func WithMaxRayDistance(d float64) Option {
	return func(c *config) {
		c.maxRayDistance = d
	}
}

// WithPaintAlpha sets the alpha applied to every non-eraser brush
// color. The default is 1 (opaque paint).
func WithPaintAlpha(a float64) Option {
	return func(c *config) {
		c.paintAlpha = a
	}
}

// WithBackground sets the initial background color. The default is
// white.
func WithBackground(col RGBA) Option {
	return func(c *config) {
		c.background = col
	}
}

// WithBrush registers a brush at construction time. May be repeated.
func WithBrush(spec BrushSpec) Option {
	return func(c *config) {
		c.brushes = append(c.brushes, spec)
	}
}
