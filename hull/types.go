// Package hull: capability contracts and default primitive types.
//
// This file declares the Vertex and Face capabilities the factory is
// generic over, the FacePtr construction constraint, and the
// DefaultVertex / DefaultFace implementations for callers with no
// custom payload needs.
package hull

// Vertex is the minimal capability required of every input point: a
// position of fixed dimension D (the same D for every point of one
// construction call).
//
// Vertices are supplied and owned by the caller; the library never
// copies or mutates the returned slice. Two distinct vertices may share
// a position - identity is by reference, not by value.
type Vertex interface {
	// Position returns the ordered coordinates of this point.
	Position() []float64
}

// Face is the capability the construction engine needs to populate one
// hull facet. A facet of a hull in D-dimensional space is bounded by
// exactly D vertices and carries an outward-pointing unit normal n with
// plane offset o, such that n·x = o for every point x on the facet
// plane and n·x < o for every interior point.
//
// Implementations are plain data holders; all three setters are called
// exactly once, by the factory, on the successful path.
type Face[V Vertex] interface {
	// SetVertices stores the D vertices bounding this facet.
	SetVertices(vertices []V)

	// SetNormal stores the outward unit normal of the facet plane.
	SetNormal(normal []float64)

	// SetOffset stores the facet plane offset (normal · point-on-plane).
	SetOffset(offset float64)
}

// FacePtr constrains a face type F to pointer-constructible
// implementations of Face[V], letting the factory allocate caller face
// types without reflection:
//
//	res := hull.Create[*MyVertex, MyFace](points)
//
// The third type parameter of Create is inferred from this constraint;
// callers never spell it out.
type FacePtr[F any, V Vertex] interface {
	*F
	Face[V]
}

// DefaultVertex is the built-in Vertex implementation: a bare coordinate
// holder with no payload.
type DefaultVertex struct {
	// Coords is the position of this vertex.
	Coords []float64
}

// NewDefaultVertex wraps the given coordinates into a DefaultVertex.
func NewDefaultVertex(coords ...float64) *DefaultVertex {
	return &DefaultVertex{Coords: coords}
}

// Position returns the coordinates of this vertex.
func (v *DefaultVertex) Position() []float64 { return v.Coords }

// DefaultFace is the built-in Face implementation: a facet record with
// no payload beyond the geometric data itself.
type DefaultFace[V Vertex] struct {
	// Vertices are the D vertices bounding this facet.
	Vertices []V

	// Normal is the outward unit normal of the facet plane.
	Normal []float64

	// Offset is the facet plane offset: Normal · x == Offset on the plane.
	Offset float64
}

// SetVertices stores the facet's bounding vertices.
func (f *DefaultFace[V]) SetVertices(vertices []V) { f.Vertices = vertices }

// SetNormal stores the facet's outward unit normal.
func (f *DefaultFace[V]) SetNormal(normal []float64) { f.Normal = normal }

// SetOffset stores the facet's plane offset.
func (f *DefaultFace[V]) SetOffset(offset float64) { f.Offset = offset }
