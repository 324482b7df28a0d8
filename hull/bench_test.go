package hull_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stephensmitchell-forks/MIConvexHull/hull"
)

// spherePoints generates n reproducible points on the unit sphere in
// dimension d (every one a hull vertex - the worst case for face count).
func spherePoints(n, d int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	points := make([][]float64, n)
	for i := range points {
		p := make([]float64, d)
		var normSq float64
		for c := range p {
			p[c] = rng.NormFloat64()
			normSq += p[c] * p[c]
		}
		norm := math.Sqrt(normSq)
		for c := range p {
			p[c] /= norm
		}
		points[i] = p
	}

	return points
}

// benchmarkCreate runs CreateFromPoints over a fixed point cloud.
// It resets the timer after setup and fails on any non-success outcome.
func benchmarkCreate(b *testing.B, points [][]float64) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res := hull.CreateFromPoints(points)
		if !res.Ok() {
			b.Fatalf("construction failed: %s: %s", res.Outcome, res.Message)
		}
	}
}

// BenchmarkCreateFromPoints_Circle2D_256 benchmarks 256 points on a 2D circle.
func BenchmarkCreateFromPoints_Circle2D_256(b *testing.B) {
	benchmarkCreate(b, spherePoints(256, 2, 42))
}

// BenchmarkCreateFromPoints_Sphere3D_128 benchmarks 128 points on a 3D sphere.
func BenchmarkCreateFromPoints_Sphere3D_128(b *testing.B) {
	benchmarkCreate(b, spherePoints(128, 3, 42))
}

// BenchmarkCreateFromPoints_Sphere3D_512 benchmarks 512 points on a 3D sphere.
func BenchmarkCreateFromPoints_Sphere3D_512(b *testing.B) {
	benchmarkCreate(b, spherePoints(512, 3, 42))
}

// BenchmarkCreateFromPoints_Sphere4D_64 benchmarks 64 points on a 4D sphere.
func BenchmarkCreateFromPoints_Sphere4D_64(b *testing.B) {
	benchmarkCreate(b, spherePoints(64, 4, 42))
}

// BenchmarkCreateFromPoints_BallInterior benchmarks a cloud where most
// points are interior (the cheap discard path): 1000 points in a small
// ball surrounded by a fixed enclosing bipyramid.
func BenchmarkCreateFromPoints_BallInterior(b *testing.B) {
	rng := rand.New(rand.NewSource(7))
	points := [][]float64{
		{8, 0, 0}, {-8, 8, 0}, {-8, -8, 0}, {0, 0, 8}, {0, 0, -8},
	}
	for i := 0; i < 1000; i++ {
		points = append(points, []float64{
			rng.Float64() - 0.5, rng.Float64() - 0.5, rng.Float64() - 0.5,
		})
	}
	benchmarkCreate(b, points)
}
