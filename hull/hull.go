package hull

// ConvexHull is the immutable result aggregate: the accepted vertex set
// and the facets bounding the hull. It is constructible only through the
// Create factory family; there is no public constructor.
//
// Invariants, guaranteed at construction:
//   - every facet's vertices are a subset of Points();
//   - Adjacency() is symmetric and complete (every facet ridge is shared
//     by exactly two facets).
//
// The slices returned by the accessors are the aggregate's own backing
// storage; callers must treat them as read-only.
type ConvexHull[V Vertex, F any] struct {
	dimension int
	points    []V
	faces     []*F
	adjacency [][]int
}

// newConvexHull assembles the aggregate. Package-private: external
// construction goes through the factory only.
func newConvexHull[V Vertex, F any](dimension int, points []V, faces []*F, adjacency [][]int) *ConvexHull[V, F] {
	return &ConvexHull[V, F]{
		dimension: dimension,
		points:    points,
		faces:     faces,
		adjacency: adjacency,
	}
}

// Dimension returns the spatial dimension D of the hull.
func (h *ConvexHull[V, F]) Dimension() int { return h.dimension }

// Points returns the vertices forming the hull boundary, in input order.
// Input points interior to the hull (or within tolerance of it) are not
// included.
func (h *ConvexHull[V, F]) Points() []V { return h.points }

// Faces returns the facets bounding the hull.
func (h *ConvexHull[V, F]) Faces() []*F { return h.faces }

// Adjacency returns the neighbor facet indexes: Adjacency()[i][j] is the
// index into Faces() of the facet sharing the ridge of facet i opposite
// its j-th vertex.
func (h *ConvexHull[V, F]) Adjacency() [][]int { return h.adjacency }
