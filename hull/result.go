package hull

// Outcome classifies the result of one construction attempt. Exactly one
// Outcome accompanies every Result; callers must branch on it before
// touching Result.Hull.
type Outcome int

const (
	// Success: the hull was fully constructed; Result.Hull is non-nil.
	Success Outcome = iota

	// InvalidInput: the point collection was nil, a coordinate was
	// NaN/±Inf, or the plane-distance tolerance was not a positive
	// finite number.
	InvalidInput

	// DimensionSmaller: the dimension inferred from the first point's
	// position is below 2.
	DimensionSmaller

	// NotEnoughVerticesForDimension: fewer than D+1 points were supplied
	// for a hull in dimension D (or the collection was empty).
	NotEnoughVerticesForDimension

	// NonUniformDimension: some point's position length differs from the
	// dimension inferred from the first point.
	NonUniformDimension

	// DegenerateData: the input is affinely dependent within tolerance -
	// all points coincident, collinear in 2D, coplanar in 3D, and so on -
	// so no full-dimensional hull exists.
	DegenerateData

	// NumericInstability: the engine hit a numerical breakdown during
	// construction, such as a zero-norm facet normal or an inconsistent
	// facet ridge. Retrying with a larger tolerance often helps.
	NumericInstability

	// UnknownError: an unanticipated failure was caught at the factory
	// boundary; Result.Message carries the underlying description.
	UnknownError
)

// String returns the outcome name for diagnostics.
func (o Outcome) String() string {
	switch o {
	case Success:
		return "Success"
	case InvalidInput:
		return "InvalidInput"
	case DimensionSmaller:
		return "DimensionSmaller"
	case NotEnoughVerticesForDimension:
		return "NotEnoughVerticesForDimension"
	case NonUniformDimension:
		return "NonUniformDimension"
	case DegenerateData:
		return "DegenerateData"
	case NumericInstability:
		return "NumericInstability"
	case UnknownError:
		return "UnknownError"
	default:
		return "Outcome(?)"
	}
}

// Result is the uniform outcome of every construction attempt.
//
// Invariant: Hull != nil ⇔ Outcome == Success. A nil Hull with a
// Success outcome never occurs; a non-nil Hull must not be trusted
// without checking the outcome first.
type Result[V Vertex, F any] struct {
	// Hull is the constructed aggregate; nil unless Outcome == Success.
	Hull *ConvexHull[V, F]

	// Outcome classifies this attempt.
	Outcome Outcome

	// Message is the diagnostic text of a failed attempt; empty on success.
	Message string
}

// Ok reports whether construction succeeded.
func (r Result[V, F]) Ok() bool { return r.Outcome == Success }

// success wraps a constructed hull into a Result.
func success[V Vertex, F any](h *ConvexHull[V, F]) Result[V, F] {
	return Result[V, F]{Hull: h, Outcome: Success}
}

// failure wraps a classified failure into a Result with an absent hull.
func failure[V Vertex, F any](outcome Outcome, msg string) Result[V, F] {
	return Result[V, F]{Outcome: outcome, Message: msg}
}
