package linkage

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
)

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestClusterSizes_ClosestPairFirst(t *testing.T) {
	points := []Point{{0, 0, 0}, {0, 0, 1}, {0, 0, 10}}
	cfg := DefaultConfig()
	cfg.MergeBudget = 1

	r, err := ClusterSizes(points, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !intsEqual(r.Sizes, []int{2, 1}) {
		t.Errorf("Sizes = %v, want [2 1]", r.Sizes)
	}
	if r.Product != 2 {
		t.Errorf("Product = %d, want 2", r.Product)
	}
	if r.Pops != 1 || r.Merges != 1 {
		t.Errorf("Pops=%d Merges=%d, want 1 and 1", r.Pops, r.Merges)
	}
}

func TestClusterSizes_RedundantPopsCountTowardBudget(t *testing.T) {
	// Edges in order: 0-1 (1), 0-2 (1), 1-2 (2), then the far point.
	points := []Point{{0, 0, 0}, {0, 0, 1}, {0, 1, 0}, {0, 0, 100}}
	cfg := DefaultConfig()
	cfg.MergeBudget = 3

	r, err := ClusterSizes(points, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Pops != 3 {
		t.Errorf("Pops = %d, want 3", r.Pops)
	}
	if r.Merges != 2 {
		t.Errorf("Merges = %d, want 2 (third pop is redundant)", r.Merges)
	}
	if !intsEqual(r.Sizes, []int{3, 1}) {
		t.Errorf("Sizes = %v, want [3 1]", r.Sizes)
	}
	if r.Product != 3 {
		t.Errorf("Product = %d, want 3", r.Product)
	}
}

func TestClusterSizes_FrontierExhausted(t *testing.T) {
	points := []Point{{0, 0, 0}, {5, 0, 0}, {0, 5, 0}}
	r, err := ClusterSizes(points, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Pops != 3 {
		t.Errorf("Pops = %d, want all 3 edges", r.Pops)
	}
	if !intsEqual(r.Sizes, []int{3}) || r.Product != 3 {
		t.Errorf("Sizes=%v Product=%d, want [3] and 3", r.Sizes, r.Product)
	}
}

func TestClusterSizes_TopComponents(t *testing.T) {
	// Four well separated pairs: sizes 2,2,2,2 after four merges.
	var points []Point
	for i := int64(0); i < 4; i++ {
		points = append(points, Point{i * 1000, 0, 0}, Point{i*1000 + 1, 0, 0})
	}
	cfg := DefaultConfig()
	cfg.MergeBudget = 4

	for top, want := range map[int]int{1: 2, 2: 4, 3: 8, 4: 16, 10: 16} {
		cfg.TopComponents = top
		r, err := ClusterSizes(points, cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Product != want {
			t.Errorf("TopComponents=%d: Product = %d, want %d", top, r.Product, want)
		}
	}
}

func TestBottleneck_CollinearTie(t *testing.T) {
	points := []Point{{0, 0, 0}, {0, 0, 5}, {0, 0, 10}}
	r, err := Bottleneck(points, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Found || !r.Connected {
		t.Fatalf("Found=%v Connected=%v, want both true", r.Found, r.Connected)
	}
	// Both spanning edges weigh 25; index order makes 1-2 the second one.
	want := CandidateEdge{Distance: 25, I: 1, J: 2}
	if r.Edge != want {
		t.Errorf("Edge = %v, want %v", r.Edge, want)
	}
	if len(r.Tree) != 2 || r.Tree[0] != (CandidateEdge{25, 0, 1}) {
		t.Errorf("Tree = %v, want [0-1(25) 1-2(25)]", r.Tree)
	}
	if r.Pops != 2 {
		t.Errorf("Pops = %d, want 2", r.Pops)
	}
	a, b := r.Endpoints(points)
	if a != points[1] || b != points[2] {
		t.Errorf("Endpoints = %v, %v", a, b)
	}
}

func TestBottleneck_SkipsRedundantEdges(t *testing.T) {
	points := []Point{{0, 0, 0}, {0, 0, 1}, {0, 1, 0}, {0, 0, 100}}
	r, err := Bottleneck(points, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 1-2 is redundant; the far point joins via its closest neighbour 1.
	want := CandidateEdge{Distance: 99 * 99, I: 1, J: 3}
	if r.Edge != want {
		t.Errorf("Edge = %v, want %v", r.Edge, want)
	}
	if r.Pops != 4 {
		t.Errorf("Pops = %d, want 4", r.Pops)
	}
	if len(r.Tree) != 3 {
		t.Errorf("len(Tree) = %d, want 3", len(r.Tree))
	}
}

func TestBottleneck_MatchesGonumKruskal(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 5; trial++ {
		points := randomPoints(rng, 120, 1000)
		r, err := Bottleneck(points, DefaultConfig())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		g := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
		for _, e := range PairwiseEdges(points) {
			g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(e.I), simple.Node(e.J), float64(e.Distance)))
		}
		dst := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
		total := path.Kruskal(dst, g)

		var heaviest float64
		edges := dst.WeightedEdges()
		for edges.Next() {
			if w := edges.WeightedEdge().Weight(); w > heaviest {
				heaviest = w
			}
		}

		if float64(r.Edge.Distance) != heaviest {
			t.Errorf("trial %d: bottleneck distance %d, gonum MST heaviest edge %g", trial, r.Edge.Distance, heaviest)
		}
		var sum int64
		for _, e := range r.Tree {
			sum += e.Distance
		}
		if float64(sum) != total {
			t.Errorf("trial %d: tree weight %d, gonum MST weight %g", trial, sum, total)
		}
		if len(r.Tree) != len(points)-1 {
			t.Errorf("trial %d: %d tree edges, want %d", trial, len(r.Tree), len(points)-1)
		}
		if r.Tree[len(r.Tree)-1] != r.Edge {
			t.Errorf("trial %d: last tree edge %v != bottleneck %v", trial, r.Tree[len(r.Tree)-1], r.Edge)
		}
	}
}

func TestQueries_FrontierKindsAndWorkersAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	points := clusteredPoints(rng, 150, 6)

	base := DefaultConfig()
	base.MergeBudget = 200
	base.Workers = 1
	wantSizes, err := ClusterSizes(points, base)
	if err != nil {
		t.Fatal(err)
	}
	wantB, err := Bottleneck(points, base)
	if err != nil {
		t.Fatal(err)
	}

	for _, kind := range []FrontierKind{FrontierHeap, FrontierLLRB} {
		for _, workers := range []int{1, 4} {
			cfg := base
			cfg.Frontier = kind
			cfg.Workers = workers
			gotSizes, err := ClusterSizes(points, cfg)
			if err != nil {
				t.Fatal(err)
			}
			if !intsEqual(gotSizes.Sizes, wantSizes.Sizes) || gotSizes.Product != wantSizes.Product {
				t.Errorf("%s/%d: sizes %v, want %v", kind, workers, gotSizes.Sizes, wantSizes.Sizes)
			}
			gotB, err := Bottleneck(points, cfg)
			if err != nil {
				t.Fatal(err)
			}
			if gotB.Edge != wantB.Edge || gotB.Pops != wantB.Pops {
				t.Errorf("%s/%d: bottleneck %v after %d pops, want %v after %d",
					kind, workers, gotB.Edge, gotB.Pops, wantB.Edge, wantB.Pops)
			}
		}
	}
}

func TestMerger_Next(t *testing.T) {
	points := []Point{{0, 0, 0}, {0, 0, 1}, {0, 1, 0}}
	m, err := NewMerger(points, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Remaining() != 3 {
		t.Fatalf("Remaining() = %d, want 3", m.Remaining())
	}

	wantMerged := []bool{true, true, false}
	for i, want := range wantMerged {
		_, merged, ok := m.Next()
		if !ok {
			t.Fatalf("pop %d: frontier exhausted early", i)
		}
		if merged != want {
			t.Errorf("pop %d: merged = %v, want %v", i, merged, want)
		}
	}
	if _, _, ok := m.Next(); ok {
		t.Error("Next after exhaustion reported ok")
	}
	if m.Pops() != 3 || len(m.Accepted()) != 2 {
		t.Errorf("Pops=%d Accepted=%d, want 3 and 2", m.Pops(), len(m.Accepted()))
	}
	if !m.UnionFind().AllConnected() {
		t.Error("points not connected after draining")
	}
}
