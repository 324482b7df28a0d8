// Package hull - the construction engine behind the Create factory.
//
// Algorithm Outline (incremental beneath–beyond):
//  1. Validate tolerance and point geometry (validate.go); infer d.
//  2. Pick an initial simplex of d+1 affinely independent points
//     (simplex.go); its centroid is the interior reference for
//     orienting every facet normal outward.
//  3. Build the d+1 simplex facets (hyperplane.go).
//  4. For each remaining point p:
//     a. facets with signedDistance(p) > tolerance are visible from p;
//     if none, p is interior (or within tolerance of the boundary)
//     and is discarded;
//     b. ridges occurring exactly once among the visible facets form
//     the horizon;
//     c. replace the visible facets by one new facet per horizon
//     ridge + p (the cone over the horizon).
//  5. Assemble the mesh: surviving facets, the union of their vertex
//     indexes, and ridge-sharing adjacency.
//
// Failure taxonomy raised here (always as *generationError):
//   - InvalidInput, DimensionSmaller, NonUniformDimension,
//     NotEnoughVerticesForDimension — validation stages;
//   - DegenerateData — no full-dimensional initial simplex;
//   - NumericInstability — zero-norm facet normal, a facet plane through
//     the interior reference point, an empty horizon, or an open ridge.
//
// Complexity: O(n·f·d) distance tests over n points and f live facets,
// plus O(d⁴) per constructed facet for the normal algebra.
package hull

import (
	"fmt"
	"sort"
	"strconv"
)

// generationError is a classified construction failure. The factory
// unwraps it into the Result; any other error type becomes UnknownError.
type generationError struct {
	outcome Outcome
	msg     string
}

// newGenerationError builds a classified failure.
func newGenerationError(outcome Outcome, format string, args ...any) *generationError {
	return &generationError{outcome: outcome, msg: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *generationError) Error() string { return "hull: " + e.msg }

// hullFace is one simplicial facet during and after construction.
// vertices holds d ascending input indexes; the plane (normal, offset)
// is oriented outward, away from the interior reference point.
type hullFace struct {
	vertices []int
	normal   []float64
	offset   float64
}

// hullMesh is the engine's output: the data the factory turns into a
// ConvexHull aggregate.
type hullMesh struct {
	dimension int
	vertices  []int // accepted input indexes, ascending
	faces     []*hullFace
	adjacency [][]int // adjacency[i][j]: facet sharing the ridge of faces[i] opposite vertices[j]
}

// buildHull runs the full construction over raw positions. It returns a
// populated mesh, a *generationError for classified failures, or - in
// principle - any other error for unanticipated ones.
func buildHull(positions [][]float64, tolerance float64) (*hullMesh, error) {
	d, err := validateInput(positions, tolerance)
	if err != nil {
		return nil, err
	}

	simplex, err := initialSimplex(positions, d, tolerance)
	if err != nil {
		return nil, err
	}

	// Interior reference: the simplex centroid stays strictly inside the
	// hull as it grows, so it orients every facet for the whole run.
	interior := make([]float64, d)
	for _, idx := range simplex {
		for c, v := range positions[idx] {
			interior[c] += v
		}
	}
	for c := range interior {
		interior[c] /= float64(len(simplex))
	}

	// Simplex facets: leave one vertex out per facet.
	faces := make([]*hullFace, 0, d+1)
	verts := make([]int, d)
	inSimplex := make(map[int]bool, d+1)
	for _, idx := range simplex {
		inSimplex[idx] = true
	}
	for omit := 0; omit <= d; omit++ {
		verts = verts[:0]
		for i, idx := range simplex {
			if i == omit {
				continue
			}
			verts = append(verts, idx)
		}
		f, ferr := makeFace(positions, verts, interior)
		if ferr != nil {
			return nil, ferr
		}
		faces = append(faces, f)
	}

	// Incremental insertion of the remaining points, in input order.
	for idx, p := range positions {
		if inSimplex[idx] {
			continue
		}
		faces, err = insertPoint(positions, faces, idx, p, interior, tolerance)
		if err != nil {
			return nil, err
		}
	}

	return assembleMesh(d, faces)
}

// insertPoint folds one point into the current facet set, returning the
// facet set unchanged when the point is not outside any facet plane.
func insertPoint(positions [][]float64, faces []*hullFace, idx int, p, interior []float64, tolerance float64) ([]*hullFace, error) {
	visible := make([]*hullFace, 0, len(faces))
	retained := make([]*hullFace, 0, len(faces))
	for _, f := range faces {
		if signedDistance(f.normal, f.offset, p) > tolerance {
			visible = append(visible, f)
		} else {
			retained = append(retained, f)
		}
	}
	if len(visible) == 0 {
		// Interior or within tolerance of the boundary: discarded.
		return faces, nil
	}

	// Horizon: ridges occurring exactly once among the visible facets.
	type ridgeRec struct {
		verts []int
		count int
	}
	ridges := make(map[string]*ridgeRec, len(visible)*len(visible[0].vertices))
	for _, f := range visible {
		for omit := range f.vertices {
			ridge := ridgeWithout(f.vertices, omit)
			key := ridgeKey(ridge)
			if rec, seen := ridges[key]; seen {
				rec.count++
			} else {
				ridges[key] = &ridgeRec{verts: ridge, count: 1}
			}
		}
	}

	// Horizon in deterministic order: map iteration must not leak into
	// the facet ordering of the result.
	horizon := make([][]int, 0, len(ridges))
	for _, rec := range ridges {
		if rec.count == 1 {
			horizon = append(horizon, rec.verts)
		}
	}
	sort.Slice(horizon, func(i, j int) bool { return lessIndexes(horizon[i], horizon[j]) })
	if len(horizon) == 0 {
		// Every ridge paired up: the point claims to see the whole closed
		// surface, which is geometrically impossible. Numerical breakdown.
		return nil, newGenerationError(NumericInstability,
			"no horizon ridge while adding point %d", idx)
	}

	// Cone: one new facet per horizon ridge + apex.
	cone := retained
	for _, ridge := range horizon {
		f, err := makeFace(positions, append(ridge, idx), interior)
		if err != nil {
			return nil, err
		}
		cone = append(cone, f)
	}

	return cone, nil
}

// makeFace builds the facet over the given vertex indexes, oriented
// outward against the interior reference point.
func makeFace(positions [][]float64, verts []int, interior []float64) (*hullFace, error) {
	sorted := make([]int, len(verts))
	copy(sorted, verts)
	sort.Ints(sorted)

	normal, offset, ok := hyperplane(positions, sorted)
	if !ok {
		return nil, newGenerationError(NumericInstability,
			"degenerate facet normal over vertices %v", sorted)
	}

	side := signedDistance(normal, offset, interior)
	if side == 0 {
		return nil, newGenerationError(NumericInstability,
			"facet plane through the interior reference point, vertices %v", sorted)
	}
	if side > 0 {
		for i := range normal {
			normal[i] = -normal[i]
		}
		offset = -offset
	}

	return &hullFace{vertices: sorted, normal: normal, offset: offset}, nil
}

// assembleMesh collects the accepted vertex set and ridge-sharing
// adjacency of the final facet list.
func assembleMesh(d int, faces []*hullFace) (*hullMesh, error) {
	accepted := map[int]bool{}
	ridgeFaces := make(map[string][]int, len(faces)*d)
	for fi, f := range faces {
		for omit, v := range f.vertices {
			accepted[v] = true
			key := ridgeKey(ridgeWithout(f.vertices, omit))
			ridgeFaces[key] = append(ridgeFaces[key], fi)
		}
	}

	adjacency := make([][]int, len(faces))
	for fi, f := range faces {
		adjacency[fi] = make([]int, d)
		for omit := range f.vertices {
			pair := ridgeFaces[ridgeKey(ridgeWithout(f.vertices, omit))]
			if len(pair) != 2 {
				return nil, newGenerationError(NumericInstability,
					"inconsistent facet adjacency (open ridge)")
			}
			if pair[0] == fi {
				adjacency[fi][omit] = pair[1]
			} else {
				adjacency[fi][omit] = pair[0]
			}
		}
	}

	vertices := make([]int, 0, len(accepted))
	for v := range accepted {
		vertices = append(vertices, v)
	}
	sort.Ints(vertices)

	return &hullMesh{dimension: d, vertices: vertices, faces: faces, adjacency: adjacency}, nil
}

// ridgeWithout returns verts minus the element at position omit; the
// input is sorted, so the ridge stays sorted.
func ridgeWithout(verts []int, omit int) []int {
	ridge := make([]int, 0, len(verts)-1)
	for i, v := range verts {
		if i == omit {
			continue
		}
		ridge = append(ridge, v)
	}

	return ridge
}

// lessIndexes orders index lists lexicographically.
func lessIndexes(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
}

// ridgeKey encodes a sorted index list as a map key.
func ridgeKey(ridge []int) string {
	buf := make([]byte, 0, 8*len(ridge))
	for _, v := range ridge {
		buf = strconv.AppendInt(buf, int64(v), 10)
		buf = append(buf, ',')
	}

	return string(buf)
}
