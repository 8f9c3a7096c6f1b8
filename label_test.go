package linkage

import (
	"math/rand"
	"testing"
)

func TestDendrogram_FourPointTree(t *testing.T) {
	// Sorted edges: 0-2 (1), 2-3 (1), 0-1 (2).
	//
	// 0-2: clusters 0 and 2 join as 4.
	// 2-3: 2 now lives in 4, so 4 and 3 join as 5.
	// 0-1: 0 now lives in 5, so 5 and 1 join as 6.
	edges := []CandidateEdge{
		{Distance: 2, I: 0, J: 1},
		{Distance: 1, I: 2, J: 3},
		{Distance: 1, I: 0, J: 2},
	}
	got := Dendrogram(edges, 4)
	want := []Merge{
		{Left: 0, Right: 2, Distance: 1, Size: 2},
		{Left: 4, Right: 3, Distance: 1, Size: 3},
		{Left: 5, Right: 1, Distance: 2, Size: 4},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d rows, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestDendrogram_InputNotModified(t *testing.T) {
	edges := []CandidateEdge{{5, 0, 1}, {1, 1, 2}}
	Dendrogram(edges, 3)
	if edges[0] != (CandidateEdge{5, 0, 1}) || edges[1] != (CandidateEdge{1, 1, 2}) {
		t.Errorf("input edges reordered: %v", edges)
	}
}

func TestDendrogram_SkipsRedundantEdges(t *testing.T) {
	points := []Point{{0, 0, 0}, {0, 0, 5}, {0, 0, 10}}
	got := Dendrogram(PairwiseEdges(points), len(points))
	if len(got) != 2 {
		t.Fatalf("got %d rows, want 2", len(got))
	}
	if got[1].Distance != 25 || got[1].Size != 3 {
		t.Errorf("final row %+v, want distance 25 size 3", got[1])
	}
}

func TestDendrogram_Degenerate(t *testing.T) {
	if got := Dendrogram(nil, 5); got != nil {
		t.Errorf("no edges: got %v", got)
	}
	if got := Dendrogram([]CandidateEdge{{1, 0, 0}}, 1); got != nil {
		t.Errorf("single point: got %v", got)
	}
}

func TestDendrogram_MatchesBottleneckTree(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	points := clusteredPoints(rng, 80, 4)
	r, err := Bottleneck(points, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	rows := Dendrogram(r.Tree, len(points))
	if len(rows) != len(points)-1 {
		t.Fatalf("got %d rows, want %d", len(rows), len(points)-1)
	}

	seen := make(map[int]bool)
	for i, row := range rows {
		if i > 0 && row.Distance < rows[i-1].Distance {
			t.Errorf("row %d: distance %d decreases from %d", i, row.Distance, rows[i-1].Distance)
		}
		newID := len(points) + i
		for _, id := range []int{row.Left, row.Right} {
			if id >= newID {
				t.Errorf("row %d references future cluster %d", i, id)
			}
			if seen[id] {
				t.Errorf("row %d reuses cluster %d", i, id)
			}
			seen[id] = true
		}
	}
	last := rows[len(rows)-1]
	if last.Size != len(points) {
		t.Errorf("final size %d, want %d", last.Size, len(points))
	}
	if last.Distance != r.Edge.Distance {
		t.Errorf("final distance %d, want bottleneck %d", last.Distance, r.Edge.Distance)
	}
}
