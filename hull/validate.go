// Package hull - staged input validation for the construction engine.
//
// Design principles:
//   - Deterministic, side-effect free checks.
//   - No logging, no panics on user input - only classified failures.
//   - O(n·d) worst case over n points of dimension d.
package hull

import "math"

// validateInput verifies tolerance and point geometry before any
// construction work. It returns the inferred dimension d on success.
//
// Stages:
//  1. Tolerance must be a positive finite number.
//  2. At least one point must exist to infer the dimension.
//  3. d is read from the first position and must be ≥ 2.
//  4. Every position must have length d and finite coordinates.
//  5. At least d+1 points are required for a full-dimensional hull.
//
// Complexity: O(n·d) time, O(1) extra space.
func validateInput(positions [][]float64, tolerance float64) (int, error) {
	// Stage 1: tolerance sanity. Delegated here (not to the facade) so
	// every classified failure travels through one path.
	if math.IsNaN(tolerance) || math.IsInf(tolerance, 0) || tolerance <= 0 {
		return 0, newGenerationError(InvalidInput,
			"plane distance tolerance must be a positive finite number, got %v", tolerance)
	}

	// Stage 2: dimension is inferred from the first position.
	if len(positions) == 0 {
		return 0, newGenerationError(NotEnoughVerticesForDimension,
			"input must contain at least one point")
	}

	// Stage 3: dimension bound.
	d := len(positions[0])
	if d < 2 {
		return 0, newGenerationError(DimensionSmaller,
			"dimension %d is too small: at least 2 required", d)
	}

	// Stage 4: uniform dimension + finite coordinates.
	var i int
	var p []float64
	for i, p = range positions {
		if len(p) != d {
			return 0, newGenerationError(NonUniformDimension,
				"point %d has dimension %d, expected %d", i, len(p), d)
		}
		for _, c := range p {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return 0, newGenerationError(InvalidInput,
					"point %d has a non-finite coordinate", i)
			}
		}
	}

	// Stage 5: a full-dimensional simplex needs d+1 vertices.
	if len(positions) < d+1 {
		return 0, newGenerationError(NotEnoughVerticesForDimension,
			"%d points are not enough for dimension %d: need at least %d",
			len(positions), d, d+1)
	}

	return d, nil
}
