// Package convexhull computes convex hulls of finite point sets in any
// dimension D ≥ 2, with a generic, failure-as-data construction API.
//
// 🚀 What is MIConvexHull?
//
//	A pure-Go library that turns raw point collections into convex hulls:
//	  • Generic over vertex and face types: attach arbitrary payload data
//	    to geometric primitives without the core depending on it
//	  • One validated entry point, three convenience forms (fully generic,
//	    default face, raw coordinate arrays)
//	  • Every construction attempt returns an inspectable Result - a
//	    classified Outcome plus diagnostic message - instead of panicking
//	  • Simplicial facets with outward normals, plane offsets and
//	    neighbor adjacency
//
// ✨ Why choose this library?
//
//   - Failure-friendly - degenerate and ill-conditioned inputs are common
//     in geometry; they come back as classified outcomes, never as panics
//   - Stateless & concurrent - every call is an independent transformation,
//     safe from any number of goroutines
//   - Pure Go - no cgo, no hidden deps
//   - Dimension-agnostic - 2D polygons, 3D polyhedra, or higher
//
// Everything lives under one functional subpackage:
//
//	hull/ — vertex/face capability contracts, the ConvexHull aggregate,
//	        Outcome/Result types, and the Create factory family
//
// Quick ASCII example (2D):
//
//	  ·   B
//	  A ·   ·  C        hull(A,B,C,D) = the quadrilateral A-B-C-D;
//	    · x ·           interior points (x) are discarded.
//	      D
//
// Dive into hull/doc.go for the full API walkthrough and into examples/
// for runnable scenarios.
//
//	go get github.com/stephensmitchell-forks/MIConvexHull/hull
package convexhull
