// Package hull - initial simplex selection.
//
// Construction starts from d+1 affinely independent input points. They
// are picked greedily: a farthest pair among the axis extremes seeds the
// simplex, then each further vertex is the point with the largest
// residual after projecting onto the affine subspace spanned so far
// (Gram–Schmidt). A residual that never exceeds the tolerance means the
// input is affinely dependent and no full-dimensional hull exists.
package hull

// initialSimplex returns the indexes of d+1 affinely independent points,
// or a DegenerateData failure naming the achieved affine rank.
//
// Complexity: O(n·d³) time, O(d²) memory.
func initialSimplex(positions [][]float64, d int, tolerance float64) ([]int, error) {
	// Seed: the farthest pair among per-axis extreme points. If even the
	// extremes collapse within tolerance, every point does.
	first, second := farthestExtremePair(positions, d)
	seed := sub(positions[second], positions[first])
	seedLen := norm(seed)
	if seedLen <= tolerance {
		return nil, newGenerationError(DegenerateData,
			"all input points coincide within tolerance %v", tolerance)
	}

	chosen := make([]int, 0, d+1)
	chosen = append(chosen, first, second)
	used := map[int]bool{first: true, second: true}

	// Orthonormal basis of the affine subspace through the chosen points.
	basis := make([][]float64, 0, d)
	for i := range seed {
		seed[i] /= seedLen
	}
	basis = append(basis, seed)

	base := positions[first]
	residual := make([]float64, d)
	for len(chosen) < d+1 {
		// Farthest point from the current affine subspace.
		bestIdx, bestResid := -1, tolerance
		for i, p := range positions {
			if used[i] {
				continue
			}
			r := residualNorm(p, base, basis, residual)
			if r > bestResid {
				bestIdx, bestResid = i, r
			}
		}
		if bestIdx < 0 {
			return nil, newGenerationError(DegenerateData,
				"input points are affinely dependent: affine rank %d, need %d",
				len(chosen)-1, d)
		}

		// Extend the basis with the normalized residual of the winner.
		r := residualNorm(positions[bestIdx], base, basis, residual)
		next := make([]float64, d)
		for i := range residual {
			next[i] = residual[i] / r
		}
		basis = append(basis, next)
		chosen = append(chosen, bestIdx)
		used[bestIdx] = true
	}

	return chosen, nil
}

// farthestExtremePair scans the per-axis minimum and maximum points and
// returns the pair with the largest separation among them. The extreme
// set spans the bounding box, so a collapsed pair bounds the diameter.
//
// Complexity: O(n·d + d³) time.
func farthestExtremePair(positions [][]float64, d int) (int, int) {
	extremes := make([]int, 0, 2*d)
	for axis := 0; axis < d; axis++ {
		lo, hi := 0, 0
		for i, p := range positions {
			if p[axis] < positions[lo][axis] {
				lo = i
			}
			if p[axis] > positions[hi][axis] {
				hi = i
			}
		}
		extremes = append(extremes, lo, hi)
	}

	first, second, bestSq := extremes[0], extremes[0], -1.0
	for i := 0; i < len(extremes); i++ {
		for j := i + 1; j < len(extremes); j++ {
			delta := sub(positions[extremes[i]], positions[extremes[j]])
			if sq := dot(delta, delta); sq > bestSq {
				first, second, bestSq = extremes[i], extremes[j], sq
			}
		}
	}

	return first, second
}

// residualNorm projects p-base out of the orthonormal basis, writing the
// residual vector into scratch, and returns its length.
func residualNorm(p, base []float64, basis [][]float64, scratch []float64) float64 {
	for i := range scratch {
		scratch[i] = p[i] - base[i]
	}
	for _, b := range basis {
		proj := dot(scratch, b)
		for i := range scratch {
			scratch[i] -= proj * b[i]
		}
	}

	return norm(scratch)
}
