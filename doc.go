// Package linkage implements greedy single-linkage clustering of points in
// three-dimensional integer space.
//
// Two strategies are provided and they compute different things.
//
// The exhaustive strategy enumerates every pairwise squared distance into an
// ordered frontier and drains it through a union-find, Kruskal style. It
// answers the bounded query (sizes of the largest components after K merge
// attempts) and the full-connectivity query (the bottleneck edge that first
// joins every point into one component):
//
//	cfg := linkage.DefaultConfig()
//	cfg.MergeBudget = 1000
//	sizes, err := linkage.ClusterSizes(points, cfg)
//	// sizes.Product is the product of the three largest component sizes
//
//	b, err := linkage.Bottleneck(points, cfg)
//	if b.Found {
//		x := points[b.Edge.I].X * points[b.Edge.J].X
//	}
//
// The k-d tree strategy builds a balanced spatial index once and repeatedly
// pairs the globally closest pair of points that have not been paired with each
// other before. It yields a sequence of pairings, not a partition:
//
//	pairs, err := linkage.GreedyPairs(points, cfg)
//
// All distances are squared Euclidean distances in exact int64 arithmetic.
// Coordinates must satisfy |c| <= MaxCoordinate so that no distance overflows.
package linkage
