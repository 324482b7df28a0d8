// Package hull constructs convex hulls of finite point sets in any
// dimension D ≥ 2 and reports every attempt as an inspectable Result.
//
// 🚀 What is hull?
//
//	The public construction surface of MIConvexHull.  Callers supply a
//	collection of points - anything exposing a Position() []float64 - and
//	an optional plane-distance tolerance; the factory returns either a
//	fully formed ConvexHull (accepted vertices + simplicial facets) or a
//	classified description of why construction failed.  Geometric
//	degeneracy (coincident, collinear, coplanar input) and numerical
//	breakdown are expected events, not exceptional ones, so they are
//	modeled as first-class Outcome values instead of panics or errors.
//
// ✨ Key features:
//   - three entry points: Create (generic vertex + face types),
//     CreateDefault (generic vertex, DefaultFace), CreateFromPoints
//     (raw [][]float64 coordinates)
//   - never panics, never returns an error: the factory's contract is
//     "always a Result"; Result.Hull != nil ⇔ Result.Outcome == Success
//   - faces carry their D bounding vertices, an outward unit normal, the
//     plane offset, and neighbor facet adjacency
//   - stateless: concurrent calls need no synchronization
//
// ⚙️ Usage:
//
//	import "github.com/stephensmitchell-forks/MIConvexHull/hull"
//
//	points := [][]float64{
//	  {0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1},
//	}
//	res := hull.CreateFromPoints(points)
//	if !res.Ok() {
//	  // handle res.Outcome / res.Message
//	}
//	for _, f := range res.Hull.Faces() {
//	  _ = f.Normal // outward unit normal of this facet
//	}
//
// The plane-distance tolerance (default DefaultPlaneDistanceTolerance)
// controls how far a point may lie from a candidate facet plane before
// it counts as outside the hull: larger values tolerate more numerical
// noise but may discard legitimate boundary points; smaller values risk
// numerical instability. Override it per call:
//
//	res := hull.CreateFromPoints(points, hull.WithPlaneDistanceTolerance(1e-7))
//
// Performance (n points, dimension d, f facets on the final hull):
//
//   - Time:   O(n·f·d) distance tests + O(f·d⁴) facet-normal algebra
//   - Memory: O(f·d)
//
// See example_test.go and the examples/ directory for full scenarios.
package hull
