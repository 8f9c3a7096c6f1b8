package linkage

import "math"

// NeighborIndex answers nearest-neighbour queries with point exclusion.
// *KDTree and BruteIndex both satisfy it.
type NeighborIndex interface {
	// Nearest returns the point closest to target that is not in excludes,
	// and its squared distance. ok is false if every point is excluded.
	Nearest(target Point, excludes PointSet) (p Point, dist int64, ok bool)

	// Len returns the number of indexed points.
	Len() int
}

var (
	_ NeighborIndex = (*KDTree)(nil)
	_ NeighborIndex = BruteIndex(nil)
)

// BruteIndex is an exhaustive linear-scan NeighborIndex. Among equidistant
// points the first in slice order wins.
type BruteIndex []Point

// Len returns the number of points.
func (b BruteIndex) Len() int { return len(b) }

// Nearest scans every point.
func (b BruteIndex) Nearest(target Point, excludes PointSet) (Point, int64, bool) {
	var (
		best  Point
		dist  int64 = math.MaxInt64
		found bool
	)
	for _, p := range b {
		if excludes.Contains(p) {
			continue
		}
		if d := SquaredDistance(target, p); d < dist {
			best, dist, found = p, d, true
		}
	}
	if !found {
		return Point{}, 0, false
	}
	return best, dist, true
}
