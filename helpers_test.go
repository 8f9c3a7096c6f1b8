package linkage

import "math/rand"

// randomPoints returns n points with coordinates uniform in [-span, span].
func randomPoints(rng *rand.Rand, n int, span int64) []Point {
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{
			X: rng.Int63n(2*span+1) - span,
			Y: rng.Int63n(2*span+1) - span,
			Z: rng.Int63n(2*span+1) - span,
		}
	}
	return points
}

// clusteredPoints returns n points scattered tightly around k random centres.
func clusteredPoints(rng *rand.Rand, n, k int) []Point {
	centres := randomPoints(rng, k, 10000)
	points := make([]Point, n)
	for i := range points {
		c := centres[rng.Intn(k)]
		points[i] = Point{
			X: c.X + rng.Int63n(21) - 10,
			Y: c.Y + rng.Int63n(21) - 10,
			Z: c.Z + rng.Int63n(21) - 10,
		}
	}
	return points
}

// duplicateHeavyPoints returns n points drawn from a 3×3×3 lattice, so most
// coordinates and many whole points repeat.
func duplicateHeavyPoints(rng *rand.Rand, n int) []Point {
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{X: rng.Int63n(3), Y: rng.Int63n(3), Z: rng.Int63n(3)}
	}
	return points
}

// bruteNearestDist returns the minimum squared distance from target to any
// unexcluded point, and whether one exists.
func bruteNearestDist(points []Point, target Point, excludes PointSet) (int64, bool) {
	_, d, ok := BruteIndex(points).Nearest(target, excludes)
	return d, ok
}
