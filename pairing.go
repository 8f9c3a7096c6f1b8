package linkage

import "go.uber.org/zap"

// Pair is one greedy pairing: B was the nearest point to A not yet paired
// with it, at squared distance Distance.
type Pair struct {
	A, B     Point
	Distance int64
}

// PairingResult is the output of GreedyPairs. Pairings do not form a
// partition into components: a point may be paired again with a different
// partner in a later round.
type PairingResult struct {
	// Pairs holds one pairing per round, in round order.
	Pairs []Pair

	// Exhausted reports whether the loop stopped because no unexcluded pair
	// remained, as opposed to hitting cfg.PairingRounds.
	Exhausted bool
}

// GreedyPairs builds a k-d tree over points and runs greedy pairing on it.
//
// Every distinct point starts with an exclusion set holding only itself.
// Each round finds, for every point, its nearest neighbour outside its
// exclusion set and selects the globally smallest distance (the earliest
// point in input order on ties). The two points are added to each other's
// exclusion sets and the pair is recorded. The loop ends when no pair can be
// found, or after cfg.PairingRounds rounds if that is positive.
//
// Exclusion sets are keyed by coordinates, so duplicate points share one set
// and never pair with each other.
func GreedyPairs(points []Point, cfg Config) (*PairingResult, error) {
	if err := prepare(points, &cfg); err != nil {
		return nil, err
	}
	tree := NewKDTree(points, cfg.LeafSize)
	st := tree.Stats()
	cfg.Logger.Debug("k-d tree built",
		zap.Int("points", tree.Len()),
		zap.Int("leafSize", cfg.LeafSize),
		zap.Int("nodes", st.Nodes),
		zap.Int("leaves", st.Leaves),
		zap.Int("maxDepth", st.MaxDepth),
		zap.Int("maxLeafSize", st.MaxLeafSize))
	return greedyPairs(points, tree, cfg), nil
}

// GreedyPairsIndex runs greedy pairing over points using a caller-supplied
// index, which must hold exactly the given points.
func GreedyPairsIndex(points []Point, index NeighborIndex, cfg Config) (*PairingResult, error) {
	if err := prepare(points, &cfg); err != nil {
		return nil, err
	}
	return greedyPairs(points, index, cfg), nil
}

// neighbor is the cached answer of one nearest-neighbour query.
type neighbor struct {
	point Point
	dist  int64
	ok    bool
}

func greedyPairs(points []Point, index NeighborIndex, cfg Config) *PairingResult {
	// Distinct points in input order; duplicates would issue identical queries.
	var distinct []Point
	position := make(map[Point]int, len(points))
	for _, p := range points {
		if _, ok := position[p]; !ok {
			position[p] = len(distinct)
			distinct = append(distinct, p)
		}
	}

	excludes := make([]PointSet, len(distinct))
	for i, p := range distinct {
		excludes[i] = PointSet{p: {}}
	}

	// The index is static and a round only grows the exclusion sets of the
	// two paired points, so every other cached answer stays valid.
	cache := make([]neighbor, len(distinct))
	query := func(i int) {
		p, d, ok := index.Nearest(distinct[i], excludes[i])
		cache[i] = neighbor{point: p, dist: d, ok: ok}
	}
	for i := range distinct {
		query(i)
	}

	r := &PairingResult{}
	for cfg.PairingRounds == 0 || len(r.Pairs) < cfg.PairingRounds {
		best := -1
		for i, nb := range cache {
			if nb.ok && (best == -1 || nb.dist < cache[best].dist) {
				best = i
			}
		}
		if best == -1 {
			r.Exhausted = true
			break
		}

		a, b := distinct[best], cache[best].point
		r.Pairs = append(r.Pairs, Pair{A: a, B: b, Distance: cache[best].dist})

		j := position[b]
		excludes[best].Add(b)
		excludes[j].Add(a)
		query(best)
		query(j)
	}

	cfg.Logger.Debug("greedy pairing done",
		zap.Int("points", len(distinct)),
		zap.Int("pairs", len(r.Pairs)),
		zap.Bool("exhausted", r.Exhausted))
	return r
}
