package linkage

import "go.uber.org/zap"

// Merger drains a Distance Frontier through a UnionFind, Kruskal style.
// Each call to Next pops the globally smallest remaining candidate edge and
// merges its endpoints if they are not yet connected.
type Merger struct {
	frontier Frontier
	uf       *UnionFind
	pops     int
	accepted []CandidateEdge
	logger   *zap.Logger
}

// NewMerger validates cfg and points, enumerates every pairwise distance and
// loads them into the configured frontier.
func NewMerger(points []Point, cfg Config) (*Merger, error) {
	if err := prepare(points, &cfg); err != nil {
		return nil, err
	}
	return newMerger(points, cfg)
}

// newMerger assumes cfg has been defaulted and validated.
func newMerger(points []Point, cfg Config) (*Merger, error) {
	edges := PairwiseEdgesParallel(points, cfg.Workers)
	frontier, err := NewFrontier(cfg.Frontier, edges)
	if err != nil {
		return nil, err
	}
	cfg.Logger.Debug("frontier built",
		zap.Int("points", len(points)),
		zap.Int("edges", frontier.Len()),
		zap.String("frontier", string(cfg.Frontier)),
		zap.Int("workers", cfg.Workers))

	n := len(points)
	capHint := n - 1
	if capHint < 0 {
		capHint = 0
	}
	return &Merger{
		frontier: frontier,
		uf:       NewUnionFind(n),
		accepted: make([]CandidateEdge, 0, capHint),
		logger:   cfg.Logger,
	}, nil
}

// Next pops the smallest remaining edge. merged reports whether the edge
// joined two classes; redundant edges are popped and discarded. ok is false
// once the frontier is exhausted.
func (m *Merger) Next() (e CandidateEdge, merged, ok bool) {
	e, ok = m.frontier.Pop()
	if !ok {
		return CandidateEdge{}, false, false
	}
	m.pops++
	if m.uf.Union(e.I, e.J) {
		m.accepted = append(m.accepted, e)
		return e, true, true
	}
	return e, false, true
}

// UnionFind returns the connectivity state. It must not be mutated.
func (m *Merger) UnionFind() *UnionFind { return m.uf }

// Pops returns how many edges have been popped, redundant ones included.
func (m *Merger) Pops() int { return m.pops }

// Accepted returns the edges that merged two classes, in pop order.
func (m *Merger) Accepted() []CandidateEdge { return m.accepted }

// Remaining returns the number of edges still queued.
func (m *Merger) Remaining() int { return m.frontier.Len() }

// SizesResult is the answer to the bounded query.
type SizesResult struct {
	// Sizes holds every component size, largest first.
	Sizes []int

	// Product is the product of the TopComponents largest sizes, or of all
	// sizes when fewer components exist. It is 1 for an empty point set.
	Product int

	// Pops is the number of frontier pops performed (at most MergeBudget).
	Pops int

	// Merges is the number of pops that joined two components.
	Merges int
}

// ClusterSizes pops exactly cfg.MergeBudget edges, or fewer if the frontier
// runs out, merging endpoints as it goes. Redundant pops still count toward
// the budget. It then multiplies the largest cfg.TopComponents component
// sizes together.
func ClusterSizes(points []Point, cfg Config) (*SizesResult, error) {
	if err := prepare(points, &cfg); err != nil {
		return nil, err
	}
	m, err := newMerger(points, cfg)
	if err != nil {
		return nil, err
	}

	for m.Pops() < cfg.MergeBudget {
		if _, _, ok := m.Next(); !ok {
			cfg.Logger.Debug("frontier exhausted before merge budget",
				zap.Int("pops", m.Pops()),
				zap.Int("budget", cfg.MergeBudget))
			break
		}
	}

	sizes := m.UnionFind().Sizes()
	return &SizesResult{
		Sizes:   sizes,
		Product: productOfLargest(sizes, cfg.TopComponents),
		Pops:    m.Pops(),
		Merges:  len(m.Accepted()),
	}, nil
}

// productOfLargest multiplies the first k entries of sizes, which must be
// sorted descending.
func productOfLargest(sizes []int, k int) int {
	if k > len(sizes) {
		k = len(sizes)
	}
	product := 1
	for _, s := range sizes[:k] {
		product *= s
	}
	return product
}

// BottleneckResult is the answer to the full-connectivity query.
type BottleneckResult struct {
	// Edge is the accepted edge after which every point is connected: the
	// heaviest edge of the minimum spanning tree. Only meaningful if Found.
	Edge CandidateEdge

	// Found is false when no edge was needed (fewer than two points) or the
	// frontier ran out first.
	Found bool

	// Connected reports whether the point set ended up as one component.
	Connected bool

	// Tree holds the accepted edges in acceptance order; for a connected
	// result they form a minimum spanning tree ending with Edge.
	Tree []CandidateEdge

	// Pops is the number of frontier pops performed, redundant ones included.
	Pops int
}

// Endpoints returns the two points joined by the bottleneck edge.
func (r *BottleneckResult) Endpoints(points []Point) (Point, Point) {
	return points[r.Edge.I], points[r.Edge.J]
}

// Bottleneck pops edges until every point is in one component. Redundant
// edges are discarded without ending the loop. The last accepted edge is the
// bottleneck edge.
func Bottleneck(points []Point, cfg Config) (*BottleneckResult, error) {
	if err := prepare(points, &cfg); err != nil {
		return nil, err
	}
	m, err := newMerger(points, cfg)
	if err != nil {
		return nil, err
	}

	r := &BottleneckResult{}
	uf := m.UnionFind()
	for !uf.AllConnected() {
		e, merged, ok := m.Next()
		if !ok {
			cfg.Logger.Warn("frontier exhausted before full connectivity",
				zap.Int("components", uf.Count()))
			break
		}
		if merged {
			r.Edge = e
			r.Found = true
		}
	}

	r.Connected = uf.AllConnected()
	if !r.Connected {
		r.Found = false
		r.Edge = CandidateEdge{}
	}
	r.Tree = m.Accepted()
	r.Pops = m.Pops()
	cfg.Logger.Debug("bottleneck search done",
		zap.Bool("found", r.Found),
		zap.Int("pops", r.Pops),
		zap.Int("remaining", m.Remaining()))
	return r, nil
}
