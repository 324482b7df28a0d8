// Package hull - the Create factory family, the single public entry
// point of the library.
//
// Contract: the factory never panics and never returns an error. Every
// call yields exactly one Result; callers branch on Result.Outcome.
// Three failure paths exist:
//  1. invalid argument - a nil point collection, rejected here before
//     the engine runs (the only validation not delegated to it);
//  2. classified generation failure - the engine identified a geometric
//     degeneracy or numerical breakdown; its outcome and message pass
//     through unchanged;
//  3. unknown error - anything else raised during construction is
//     recovered and wrapped with the underlying message.
//
// The factory touches no shared state; concurrent calls on independent
// inputs need no synchronization.
package hull

import (
	"errors"
	"fmt"
)

// Create constructs the convex hull of points, generic over both the
// vertex type V and the face type F. F is allocated by the factory via
// the FacePtr constraint, so callers instantiate only V and F:
//
//	res := hull.Create[*MyVertex, MyFace](points)
//
// The dimension D is inferred from the first point's position; every
// point must expose exactly D coordinates, and at least D+1 points are
// required. Options default to DefaultOptions().
//
// Complexity: engine cost (see package doc) + O(f·d) assembly over the
// f facets of the result.
func Create[V Vertex, F any, PF FacePtr[F, V]](points []V, opts ...Option) (res Result[V, F]) {
	// Nil input is the facade's own check; everything else is the
	// engine's business.
	if points == nil {
		return failure[V, F](InvalidInput, "point collection must not be nil")
	}

	// Nothing escapes the factory boundary: a panic anywhere below
	// (a misbehaving Vertex implementation included) becomes a Result.
	defer func() {
		if r := recover(); r != nil {
			res = failure[V, F](UnknownError, fmt.Sprint(r))
		}
	}()

	cfg := gatherOptions(opts...)

	positions := make([][]float64, len(points))
	for i, p := range points {
		positions[i] = p.Position()
	}

	mesh, err := buildHull(positions, cfg.PlaneDistanceTolerance)
	if err != nil {
		var gen *generationError
		if errors.As(err, &gen) {
			return failure[V, F](gen.outcome, gen.msg)
		}

		return failure[V, F](UnknownError, err.Error())
	}

	return success(assembleHull[V, F, PF](points, mesh))
}

// CreateDefault constructs the convex hull of points with the built-in
// DefaultFace facet type; only the vertex type is generic.
func CreateDefault[V Vertex](points []V, opts ...Option) Result[V, DefaultFace[V]] {
	return Create[V, DefaultFace[V]](points, opts...)
}

// CreateFromPoints is the raw-coordinate convenience overload: each
// coordinate array is wrapped into a DefaultVertex (one-to-one, in
// order) before delegating to CreateDefault.
func CreateFromPoints(coords [][]float64, opts ...Option) Result[*DefaultVertex, DefaultFace[*DefaultVertex]] {
	if coords == nil {
		return failure[*DefaultVertex, DefaultFace[*DefaultVertex]](
			InvalidInput, "point collection must not be nil")
	}

	vertices := make([]*DefaultVertex, len(coords))
	for i, c := range coords {
		vertices[i] = &DefaultVertex{Coords: c}
	}

	return CreateDefault(vertices, opts...)
}

// assembleHull maps the engine mesh (input indexes) back onto the
// caller's vertex values and allocates one F per facet.
func assembleHull[V Vertex, F any, PF FacePtr[F, V]](points []V, mesh *hullMesh) *ConvexHull[V, F] {
	hullPoints := make([]V, len(mesh.vertices))
	for i, idx := range mesh.vertices {
		hullPoints[i] = points[idx]
	}

	faces := make([]*F, len(mesh.faces))
	for i, mf := range mesh.faces {
		var face F
		pf := PF(&face)
		vertices := make([]V, len(mf.vertices))
		for j, idx := range mf.vertices {
			vertices[j] = points[idx]
		}
		pf.SetVertices(vertices)
		pf.SetNormal(mf.normal)
		pf.SetOffset(mf.offset)
		faces[i] = &face
	}

	return newConvexHull[V, F](mesh.dimension, hullPoints, faces, mesh.adjacency)
}
