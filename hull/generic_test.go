package hull_test

import (
	"math"
	"testing"

	"github.com/stephensmitchell-forks/MIConvexHull/hull"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// site is a caller vertex type carrying payload data alongside its
// position.
type site struct {
	Name   string
	coords []float64
}

func (s *site) Position() []float64 { return s.coords }

// wall is a caller face type with payload fields next to the geometric
// data set by the factory.
type wall struct {
	Label    string
	vertices []*site
	normal   []float64
	offset   float64
}

func (w *wall) SetVertices(vertices []*site) { w.vertices = vertices }
func (w *wall) SetNormal(normal []float64)   { w.normal = normal }
func (w *wall) SetOffset(offset float64)     { w.offset = offset }

// TestCreate_CustomTypes drives the fully generic entry point with
// payload-carrying vertex and face types: the same input points must
// come back by reference, and every face must be populated.
func TestCreate_CustomTypes(t *testing.T) {
	points := []*site{
		{Name: "origin", coords: []float64{0, 0, 0}},
		{Name: "x", coords: []float64{1, 0, 0}},
		{Name: "y", coords: []float64{0, 1, 0}},
		{Name: "z", coords: []float64{0, 0, 1}},
	}

	res := hull.Create[*site, wall](points)
	require.True(t, res.Ok(), res.Message)
	require.Len(t, res.Hull.Faces(), 4)

	byRef := map[*site]bool{}
	for _, p := range res.Hull.Points() {
		byRef[p] = true
	}
	for _, p := range points {
		assert.True(t, byRef[p], "hull points are the caller's own values, not copies")
	}

	for _, w := range res.Hull.Faces() {
		require.Len(t, w.vertices, 3)
		require.Len(t, w.normal, 3)
		assert.False(t, math.IsNaN(w.offset), "offset must be populated with a finite value")
		assert.Empty(t, w.Label, "payload fields stay untouched")
	}
}

// TestCreate_NilGenericInput: the generic entry point rejects nil
// collections before touching the engine.
func TestCreate_NilGenericInput(t *testing.T) {
	res := hull.Create[*site, wall](nil)
	assert.Equal(t, hull.InvalidInput, res.Outcome)
	assert.Nil(t, res.Hull)
}

// panicVertex simulates a misbehaving caller implementation.
type panicVertex struct{}

func (p *panicVertex) Position() []float64 { panic("position unavailable") }

// TestCreate_RecoversPanicAsUnknownError: an unanticipated failure (a
// panicking Vertex) must surface as UnknownError with the underlying
// message, never as a panic past the factory boundary.
func TestCreate_RecoversPanicAsUnknownError(t *testing.T) {
	res := hull.CreateDefault([]*panicVertex{{}, {}, {}})
	assert.Equal(t, hull.UnknownError, res.Outcome)
	assert.Nil(t, res.Hull)
	assert.Contains(t, res.Message, "position unavailable")
}

// TestCreate_NilVertexValue: a nil vertex inside the collection is an
// unanticipated failure, caught and classified.
func TestCreate_NilVertexValue(t *testing.T) {
	points := []*hull.DefaultVertex{
		hull.NewDefaultVertex(0, 0),
		nil,
		hull.NewDefaultVertex(1, 0),
	}
	res := hull.CreateDefault(points)
	assert.Equal(t, hull.UnknownError, res.Outcome)
	assert.Nil(t, res.Hull)
	assert.NotEmpty(t, res.Message)
}

// TestCreate_ConcurrentCalls: the factory is stateless; parallel calls
// on independent inputs must all succeed independently.
func TestCreate_ConcurrentCalls(t *testing.T) {
	coords := tetrahedron()
	done := make(chan hull.Outcome, 16)
	for i := 0; i < 16; i++ {
		go func() {
			done <- hull.CreateFromPoints(coords).Outcome
		}()
	}
	for i := 0; i < 16; i++ {
		assert.Equal(t, hull.Success, <-done)
	}
}
