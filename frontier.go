package linkage

import (
	"container/heap"
	"fmt"

	"github.com/biogo/store/llrb"
)

// CandidateEdge is a possible merge of points I and J (I < J) at squared
// distance Distance.
type CandidateEdge struct {
	Distance int64
	I, J     int
}

func (e CandidateEdge) String() string {
	return fmt.Sprintf("%d-%d(%d)", e.I, e.J, e.Distance)
}

// Less orders edges by distance, then I, then J. Ties are broken by index,
// never by arrival order, so every frontier pops in the same sequence.
func (e CandidateEdge) Less(o CandidateEdge) bool {
	if e.Distance != o.Distance {
		return e.Distance < o.Distance
	}
	if e.I != o.I {
		return e.I < o.I
	}
	return e.J < o.J
}

// Compare satisfies llrb.Comparable using the Less ordering.
func (e CandidateEdge) Compare(c llrb.Comparable) int {
	o := c.(CandidateEdge)
	switch {
	case e.Less(o):
		return -1
	case o.Less(e):
		return 1
	default:
		return 0
	}
}

// Frontier is a min-ordered queue of candidate edges.
type Frontier interface {
	// Push adds an edge.
	Push(CandidateEdge)

	// Pop removes and returns the smallest edge. ok is false when the
	// frontier is empty.
	Pop() (e CandidateEdge, ok bool)

	// Len returns the number of queued edges.
	Len() int
}

// NewFrontier builds a frontier of the given kind holding edges. The heap
// kind takes ownership of the edges slice.
func NewFrontier(kind FrontierKind, edges []CandidateEdge) (Frontier, error) {
	switch kind {
	case FrontierHeap, "":
		h := edgeHeap(edges)
		heap.Init(&h)
		return &heapFrontier{h: h}, nil
	case FrontierLLRB:
		t := &treeFrontier{}
		for _, e := range edges {
			t.Push(e)
		}
		return t, nil
	default:
		return nil, fmt.Errorf("linkage: invalid Frontier %q", kind)
	}
}

// --- binary heap frontier ---

// edgeHeap is a min-heap of CandidateEdge.
type edgeHeap []CandidateEdge

func (h edgeHeap) Len() int            { return len(h) }
func (h edgeHeap) Less(i, j int) bool  { return h[i].Less(h[j]) }
func (h edgeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *edgeHeap) Push(x interface{}) { *h = append(*h, x.(CandidateEdge)) }
func (h *edgeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

type heapFrontier struct {
	h edgeHeap
}

func (f *heapFrontier) Push(e CandidateEdge) { heap.Push(&f.h, e) }
func (f *heapFrontier) Len() int             { return f.h.Len() }

func (f *heapFrontier) Pop() (CandidateEdge, bool) {
	if f.h.Len() == 0 {
		return CandidateEdge{}, false
	}
	return heap.Pop(&f.h).(CandidateEdge), true
}

// --- left-leaning red-black tree frontier ---

// treeFrontier keeps edges in an ordered LLRB tree. Edges are unique by
// (I, J), so Compare never reports equality for distinct pairs.
type treeFrontier struct {
	t llrb.Tree
}

func (f *treeFrontier) Push(e CandidateEdge) { f.t.Insert(e) }
func (f *treeFrontier) Len() int             { return f.t.Len() }

func (f *treeFrontier) Pop() (CandidateEdge, bool) {
	m := f.t.Min()
	if m == nil {
		return CandidateEdge{}, false
	}
	f.t.DeleteMin()
	return m.(CandidateEdge), true
}
