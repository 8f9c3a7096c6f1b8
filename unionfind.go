package linkage

import "sort"

// UnionFind implements a disjoint-set data structure with path compression
// and union by rank over the indices 0..n-1.
type UnionFind struct {
	parent []int
	rank   []int
	// count is the number of disjoint classes.
	count int
}

// NewUnionFind creates a UnionFind for n singleton classes.
func NewUnionFind(n int) *UnionFind {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &UnionFind{
		parent: parent,
		rank:   make([]int, n),
		count:  n,
	}
}

// Len returns the number of elements.
func (uf *UnionFind) Len() int { return len(uf.parent) }

// Count returns the number of disjoint classes.
func (uf *UnionFind) Count() int { return uf.count }

// Find returns the representative of x's class, with path compression.
func (uf *UnionFind) Find(x int) int {
	// Walk to the root.
	root := x
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	// Path compression: point all nodes along the path directly to root.
	for uf.parent[x] != root {
		x, uf.parent[x] = uf.parent[x], root
	}
	return root
}

// Union merges the classes of x and y by attaching the lower-rank root under
// the higher-rank one. On equal rank y's root goes under x's root and x's
// root rank grows by one. Returns false if x and y were already in the same
// class.
func (uf *UnionFind) Union(x, y int) bool {
	rootX := uf.Find(x)
	rootY := uf.Find(y)
	if rootX == rootY {
		return false
	}

	switch {
	case uf.rank[rootX] > uf.rank[rootY]:
		uf.parent[rootY] = rootX
	case uf.rank[rootX] < uf.rank[rootY]:
		uf.parent[rootX] = rootY
	default:
		uf.parent[rootY] = rootX
		uf.rank[rootX]++
	}
	uf.count--
	return true
}

// Connected reports whether x and y are in the same class.
func (uf *UnionFind) Connected(x, y int) bool {
	return uf.Find(x) == uf.Find(y)
}

// AllConnected reports whether every index shares a root with index 0.
// It is trivially true for zero or one element.
func (uf *UnionFind) AllConnected() bool {
	return uf.count <= 1
}

// Sizes returns the size of every class, largest first.
func (uf *UnionFind) Sizes() []int {
	counts := make(map[int]int, uf.count)
	for i := range uf.parent {
		counts[uf.Find(i)]++
	}
	sizes := make([]int, 0, len(counts))
	for _, c := range counts {
		sizes = append(sizes, c)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
	return sizes
}
