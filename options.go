package viewport

// Option configures an Engine during creation.
//
// Example:
//
//	// Screen-style coordinates, no frame cache:
//	eng := viewport.New(alloc, viewport.WithYAxisDown(), viewport.WithDirectRendering())
type Option func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	yDown  bool
	direct bool
	live   Config
}

func defaultEngineOptions() engineOptions {
	return engineOptions{}
}

// WithYAxisDown makes virtual Y increase downward on screen, matching
// raw pixel coordinates. The default orientation is Y up, matching
// conventional math axes.
func WithYAxisDown() Option {
	return func(o *engineOptions) {
		o.yDown = true
	}
}

// WithDirectRendering disables the frame cache: every Render call draws
// the full scene straight onto the destination surface. Useful for
// single-shot offline rendering where no frame is ever reused, and for
// isolating cache bugs.
func WithDirectRendering() Option {
	return func(o *engineOptions) {
		o.direct = true
	}
}

// WithConfig sets the live configuration the engine starts with, instead
// of a default BaseConfig. Equivalent to calling SetConfig before the
// first frame.
func WithConfig(cfg Config) Option {
	return func(o *engineOptions) {
		o.live = cfg
	}
}
