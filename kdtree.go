package linkage

import (
	"math"
	"sort"
)

// KDTree is a k-d tree spatial index for nearest-neighbour queries with
// point exclusion. Points are stored in one flat array, reordered during the
// build so that every leaf owns a contiguous range of it.
//
// Nodes live in an arena and refer to each other by index: interior nodes
// own their two children, and every node keeps a non-owning parent index
// (-1 at the root) for upward traversal.
type KDTree struct {
	data     []Point // permuted copy of the input points
	leafSize int
	nodes    []kdNode // nodes[0] is the root
}

// kdNode is either a split or a leaf.
type kdNode struct {
	leaf bool

	// Split fields. Points with coordinate <= threshold along axis are on
	// the left.
	axis        Axis
	threshold   int64
	left, right int

	// Leaf fields: the points data[start:end].
	start, end int

	parent int
}

// NewKDTree builds a k-d tree over points. leafSize is the maximum number of
// points per leaf; values below 1 are treated as 1. An empty point set
// produces a tree with a single empty leaf.
func NewKDTree(points []Point, leafSize int) *KDTree {
	if leafSize < 1 {
		leafSize = 1
	}

	data := make([]Point, len(points))
	copy(data, points)

	t := &KDTree{
		data:     data,
		leafSize: leafSize,
		nodes:    make([]kdNode, 0, kdMaxNodes(len(points), leafSize)),
	}
	t.buildNode(0, len(data), 0, -1)
	return t
}

// kdMaxNodes returns a capacity hint for the node arena.
func kdMaxNodes(n, leafSize int) int {
	if n <= leafSize {
		return 1
	}
	leaves := (n + leafSize - 1) / leafSize
	return 2*leaves + 1
}

// buildNode builds the subtree for data[start:end] at the given depth and
// returns its arena index.
func (t *KDTree) buildNode(start, end, depth, parent int) int {
	id := len(t.nodes)
	t.nodes = append(t.nodes, kdNode{leaf: true, start: start, end: end, parent: parent})

	if end-start <= t.leafSize {
		return id
	}

	axis, threshold, ok := t.chooseSplit(start, end, depth)
	if !ok {
		// Every point is identical; no plane can separate them.
		return id
	}
	mid := t.partition(start, end, axis, threshold)

	// The arena may grow during recursion, so children are attached by index.
	left := t.buildNode(start, mid, depth+1, id)
	right := t.buildNode(mid, end, depth+1, id)
	t.nodes[id] = kdNode{
		axis:      axis,
		threshold: threshold,
		left:      left,
		right:     right,
		parent:    parent,
	}
	return id
}

// chooseSplit picks the splitting plane for data[start:end]. The axis cycles
// X, Y, Z by depth. If every point shares the coordinate on that axis, the
// following axes are tried in cycle order. ok is false only if all points
// are identical.
func (t *KDTree) chooseSplit(start, end, depth int) (axis Axis, threshold int64, ok bool) {
	coords := make([]int64, end-start)
	for k := 0; k < numAxes; k++ {
		axis = Axis((depth + k) % numAxes)
		for i, p := range t.data[start:end] {
			coords[i] = p.Coord(axis)
		}
		var left int
		threshold, left = balancedSplit(coords)
		if left < len(coords) {
			return axis, threshold, true
		}
	}
	return 0, 0, false
}

// balancedSplit sorts coords and sweeps the distinct values, keeping running
// counts of coordinates <= and > each candidate. It returns the first
// candidate minimising |left - right| together with its left count.
func balancedSplit(coords []int64) (threshold int64, leftCount int) {
	sort.Slice(coords, func(i, j int) bool { return coords[i] < coords[j] })

	n := len(coords)
	bestDiff := math.MaxInt
	for i := 0; i < n; {
		v := coords[i]
		// Advance past every duplicate of v.
		for i < n && coords[i] == v {
			i++
		}
		left, right := i, n-i
		diff := left - right
		if diff < 0 {
			diff = -diff
		}
		if diff < bestDiff {
			bestDiff = diff
			threshold, leftCount = v, left
		}
	}
	return threshold, leftCount
}

// partition reorders data[start:end] so that points with coordinate <=
// threshold come first, and returns the index of the first point on the
// right.
func (t *KDTree) partition(start, end int, axis Axis, threshold int64) int {
	mid := start
	for i := start; i < end; i++ {
		if t.data[i].Coord(axis) <= threshold {
			t.data[mid], t.data[i] = t.data[i], t.data[mid]
			mid++
		}
	}
	return mid
}

// Len returns the number of points in the tree.
func (t *KDTree) Len() int { return len(t.data) }

// LeafSize returns the leaf-size threshold the tree was built with.
func (t *KDTree) LeafSize() int { return t.leafSize }

// nnSearch is the running state of a nearest-neighbour query.
type nnSearch struct {
	target   Point
	excludes PointSet
	best     Point
	dist     int64
	found    bool
}

// Nearest returns the point closest to target that is not in excludes,
// together with its squared distance. ok is false if every point is excluded
// or the tree is empty. Among equidistant points the first one reached by the
// traversal wins.
func (t *KDTree) Nearest(target Point, excludes PointSet) (p Point, dist int64, ok bool) {
	s := nnSearch{target: target, excludes: excludes, dist: math.MaxInt64}
	t.search(0, &s)
	if !s.found {
		return Point{}, 0, false
	}
	return s.best, s.dist, true
}

func (t *KDTree) search(id int, s *nnSearch) {
	node := &t.nodes[id]

	if node.leaf {
		for _, p := range t.data[node.start:node.end] {
			if s.excludes.Contains(p) {
				continue
			}
			if d := SquaredDistance(s.target, p); d < s.dist {
				s.best, s.dist, s.found = p, d, true
			}
		}
		return
	}

	c := s.target.Coord(node.axis)
	near, far := node.left, node.right
	if c > node.threshold {
		near, far = far, near
	}

	t.search(near, s)

	// No point beyond the plane can be closer than the plane itself.
	plane := c - node.threshold
	if plane*plane < s.dist {
		t.search(far, s)
	}
}

// Do calls fn for every point in the tree, leaf by leaf from left to right,
// until fn returns true. It reports whether fn stopped the walk.
func (t *KDTree) Do(fn func(Point) (done bool)) bool {
	return t.do(0, fn)
}

func (t *KDTree) do(id int, fn func(Point) bool) bool {
	node := &t.nodes[id]
	if node.leaf {
		for _, p := range t.data[node.start:node.end] {
			if fn(p) {
				return true
			}
		}
		return false
	}
	return t.do(node.left, fn) || t.do(node.right, fn)
}

// TreeStats summarises the shape of a KDTree.
type TreeStats struct {
	Nodes       int
	Leaves      int
	EmptyLeaves int
	MaxDepth    int
	MaxLeafSize int
}

// Stats walks the arena and reports the tree shape. Leaf depth is measured
// by following parent links up to the root.
func (t *KDTree) Stats() TreeStats {
	var st TreeStats
	st.Nodes = len(t.nodes)
	for id := range t.nodes {
		node := &t.nodes[id]
		if !node.leaf {
			continue
		}
		st.Leaves++
		size := node.end - node.start
		if size == 0 {
			st.EmptyLeaves++
		}
		if size > st.MaxLeafSize {
			st.MaxLeafSize = size
		}
		if d := t.depth(id); d > st.MaxDepth {
			st.MaxDepth = d
		}
	}
	return st
}

// depth counts the parent links between node id and the root.
func (t *KDTree) depth(id int) int {
	d := 0
	for t.nodes[id].parent != -1 {
		id = t.nodes[id].parent
		d++
	}
	return d
}
