package linkage

import "github.com/pkg/errors"

// MaxCoordinate bounds the absolute value of every coordinate. Within the
// bound each axis delta is at most 2^30, its square at most 2^60, and the sum
// of three squares stays below 2^63.
const MaxCoordinate int64 = 1 << 29

// ErrCoordinateRange is returned for points outside [-MaxCoordinate, MaxCoordinate].
var ErrCoordinateRange = errors.New("linkage: coordinate out of range")

// SquaredDistance returns dx²+dy²+dz². No square root is ever taken: all
// comparisons stay in exact integer arithmetic.
func SquaredDistance(a, b Point) int64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z
	return dx*dx + dy*dy + dz*dz
}

// ValidatePoints checks that every coordinate is within MaxCoordinate.
func ValidatePoints(points []Point) error {
	for i, p := range points {
		for a := AxisX; a <= AxisZ; a++ {
			c := p.Coord(a)
			if c > MaxCoordinate || c < -MaxCoordinate {
				return errors.Wrapf(ErrCoordinateRange, "point %d (%v): %v=%d", i, p, a, c)
			}
		}
	}
	return nil
}
