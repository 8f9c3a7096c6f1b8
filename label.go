package linkage

import "sort"

// Merge is one row of a single-linkage dendrogram in scipy linkage format.
// Left and Right are cluster IDs: 0..n-1 are the original points and each
// merge creates the next ID starting at n.
type Merge struct {
	Left, Right int
	Distance    int64
	Size        int
}

// Dendrogram converts spanning-tree edges into a single-linkage dendrogram.
// Edges are processed in candidate order; an edge whose endpoints are already
// joined is skipped, so any accepted-edge list from a Merger (or the full
// pairwise edge list) yields at most n-1 rows.
func Dendrogram(edges []CandidateEdge, n int) []Merge {
	if len(edges) == 0 || n < 2 {
		return nil
	}

	sorted := make([]CandidateEdge, len(edges))
	copy(sorted, edges)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })

	uf := NewUnionFind(n)
	// label maps a union-find root to its dendrogram cluster ID.
	label := make([]int, n)
	size := make([]int, n)
	for i := range label {
		label[i] = i
		size[i] = 1
	}
	nextLabel := n

	result := make([]Merge, 0, n-1)
	for _, e := range sorted {
		aa := uf.Find(e.I)
		bb := uf.Find(e.J)
		if aa == bb {
			continue
		}
		newSize := size[aa] + size[bb]
		result = append(result, Merge{Left: label[aa], Right: label[bb], Distance: e.Distance, Size: newSize})

		uf.Union(aa, bb)
		root := uf.Find(aa)
		label[root] = nextLabel
		size[root] = newSize
		nextLabel++
		if len(result) == n-1 {
			break
		}
	}
	return result
}
