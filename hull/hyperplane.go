// Package hull - dense float64 kernels for facet-plane algebra.
//
// A facet of a hull in dimension d is bounded by d points; its plane is
// described by a unit normal n and offset o with n·x = o on the plane.
// The normal is the generalized cross product of the d-1 edge vectors,
// computed componentwise as signed cofactor determinants; determinants
// use Gaussian elimination with partial pivoting.
package hull

import "math"

// dot returns the inner product of two equal-length vectors.
func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}

	return s
}

// sub returns a-b as a fresh vector.
func sub(a, b []float64) []float64 {
	r := make([]float64, len(a))
	for i := range a {
		r[i] = a[i] - b[i]
	}

	return r
}

// norm returns the Euclidean length of v.
func norm(v []float64) float64 {
	return math.Sqrt(dot(v, v))
}

// gaussianDet computes det(m) for a square matrix, destroying m.
// Partial pivoting keeps the elimination stable for the small,
// well-scaled systems facet construction produces.
//
// Complexity: O(k³) for a k×k matrix.
func gaussianDet(m [][]float64) float64 {
	k := len(m)
	det := 1.0
	for col := 0; col < k; col++ {
		// Pick the largest pivot in this column.
		piv := col
		for r := col + 1; r < k; r++ {
			if math.Abs(m[r][col]) > math.Abs(m[piv][col]) {
				piv = r
			}
		}
		if m[piv][col] == 0 {
			return 0
		}
		if piv != col {
			m[piv], m[col] = m[col], m[piv]
			det = -det
		}
		det *= m[col][col]
		for r := col + 1; r < k; r++ {
			factor := m[r][col] / m[col][col]
			for c := col + 1; c < k; c++ {
				m[r][c] -= factor * m[col][c]
			}
		}
	}

	return det
}

// hyperplane computes the unit normal and plane offset of the facet
// through the d points positions[verts[0..d-1]].
//
// The k-th normal component is (-1)^k times the determinant of the
// (d-1)×(d-1) minor obtained by deleting column k from the edge matrix
// [p1-p0; …; p_{d-1}-p0]. ok is false when the points are affinely
// dependent (zero-norm normal) or the arithmetic broke down.
//
// Complexity: O(d⁴) time, O(d²) memory.
func hyperplane(positions [][]float64, verts []int) (normal []float64, offset float64, ok bool) {
	d := len(verts)
	base := positions[verts[0]]

	// Edge vectors from the base point: (d-1) rows of length d.
	edges := make([][]float64, d-1)
	for i := 1; i < d; i++ {
		edges[i-1] = sub(positions[verts[i]], base)
	}

	// Cofactor expansion: one minor determinant per component.
	normal = make([]float64, d)
	minor := make([][]float64, d-1)
	for r := range minor {
		minor[r] = make([]float64, d-1)
	}
	for k := 0; k < d; k++ {
		for r := 0; r < d-1; r++ {
			cc := 0
			for c := 0; c < d; c++ {
				if c == k {
					continue
				}
				minor[r][cc] = edges[r][c]
				cc++
			}
		}
		det := gaussianDet(minor)
		if k%2 == 1 {
			det = -det
		}
		normal[k] = det
	}

	// Normalize; a vanishing or non-finite norm means a degenerate facet.
	n := norm(normal)
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return nil, 0, false
	}
	for k := range normal {
		normal[k] /= n
	}

	return normal, dot(normal, base), true
}

// signedDistance returns the distance of p from the plane (normal,
// offset): positive on the normal's side, negative on the other.
func signedDistance(normal []float64, offset float64, p []float64) float64 {
	return dot(normal, p) - offset
}
