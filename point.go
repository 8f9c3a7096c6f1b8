package linkage

import "fmt"

// Point is a location in three-dimensional integer space. Points are
// comparable, so equality and map keys are structural.
type Point struct {
	X, Y, Z int64
}

// Axis selects one coordinate of a Point.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// numAxes is the dimensionality of the space.
const numAxes = 3

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Coord returns the coordinate of p along axis a.
func (p Point) Coord(a Axis) int64 {
	switch a {
	case AxisX:
		return p.X
	case AxisY:
		return p.Y
	default:
		return p.Z
	}
}

func (p Point) String() string {
	return fmt.Sprintf("%d,%d,%d", p.X, p.Y, p.Z)
}

// PointSet is a set of points keyed by coordinates. A nil PointSet is empty.
type PointSet map[Point]struct{}

// Contains reports whether p is in the set.
func (s PointSet) Contains(p Point) bool {
	_, ok := s[p]
	return ok
}

// Add inserts p into the set.
func (s PointSet) Add(p Point) {
	s[p] = struct{}{}
}
