package linkage

import "sync"

// numPairs returns n choose 2.
func numPairs(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// rowOffset returns the position of edge (i, i+1) in the row-major
// enumeration of all pairs i < j.
func rowOffset(i, n int) int {
	return i * (2*n - i - 1) / 2
}

// PairwiseEdges enumerates the candidate edge of every unordered pair
// (i, j), i < j, in row-major order.
func PairwiseEdges(points []Point) []CandidateEdge {
	n := len(points)
	edges := make([]CandidateEdge, 0, numPairs(n))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, CandidateEdge{
				Distance: SquaredDistance(points[i], points[j]),
				I:        i,
				J:        j,
			})
		}
	}
	return edges
}

// PairwiseEdgesParallel computes the same slice as PairwiseEdges using
// multiple goroutines. numWorkers controls the degree of parallelism; if
// <= 1, it falls back to the sequential PairwiseEdges.
func PairwiseEdgesParallel(points []Point, numWorkers int) []CandidateEdge {
	n := len(points)
	if numWorkers <= 1 || n <= 2 {
		return PairwiseEdges(points)
	}

	edges := make([]CandidateEdge, numPairs(n))

	// Split rows across workers. Row i owns the fixed slice range starting at
	// rowOffset(i, n), so no synchronization is needed for writes.
	var wg sync.WaitGroup

	rowsPerWorker := (n + numWorkers - 1) / numWorkers

	for w := 0; w < numWorkers; w++ {
		startRow := w * rowsPerWorker
		endRow := startRow + rowsPerWorker
		if endRow > n {
			endRow = n
		}
		if startRow >= n {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				k := rowOffset(i, n)
				for j := i + 1; j < n; j++ {
					edges[k] = CandidateEdge{
						Distance: SquaredDistance(points[i], points[j]),
						I:        i,
						J:        j,
					}
					k++
				}
			}
		}(startRow, endRow)
	}

	wg.Wait()
	return edges
}
