package hull

// DefaultPlaneDistanceTolerance is the plane-distance robustness used
// when no WithPlaneDistanceTolerance option is supplied.
//
// A point further than the tolerance from a candidate facet plane (on
// its outer side) counts as outside the hull; points within the
// tolerance of every facet plane are treated as interior or on the
// boundary and do not become hull vertices.
const DefaultPlaneDistanceTolerance = 1e-10

// Options bundles the tunable parameters of one construction call.
//
// Example:
//
//	opts := hull.DefaultOptions()
//	opts.PlaneDistanceTolerance = 1e-7 // noisy scanner data
type Options struct {
	// PlaneDistanceTolerance is the plane-distance robustness parameter.
	// Must be a positive finite number; anything else is classified as
	// InvalidInput by the engine.
	PlaneDistanceTolerance float64
}

// DefaultOptions returns the documented defaults:
// PlaneDistanceTolerance = DefaultPlaneDistanceTolerance.
func DefaultOptions() Options {
	return Options{PlaneDistanceTolerance: DefaultPlaneDistanceTolerance}
}

// Option mutates Options before construction starts.
type Option func(*Options)

// WithPlaneDistanceTolerance overrides the plane-distance tolerance.
// The value is validated by the engine, not here, so that every
// classified failure travels through the same Result path.
func WithPlaneDistanceTolerance(tolerance float64) Option {
	return func(o *Options) { o.PlaneDistanceTolerance = tolerance }
}

// gatherOptions applies opts on top of the defaults.
func gatherOptions(opts ...Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
