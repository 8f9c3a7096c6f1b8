package linkage

import "fmt"

// FrontierKind selects the Distance Frontier implementation.
type FrontierKind string

const (
	// FrontierHeap is a binary min-heap, heapified in linear time.
	FrontierHeap FrontierKind = "heap"
	// FrontierLLRB is an ordered left-leaning red-black tree.
	FrontierLLRB FrontierKind = "llrb"
)

// ParseFrontierKind resolves a command-line name into a FrontierKind.
func ParseFrontierKind(s string) (FrontierKind, error) {
	switch k := FrontierKind(s); k {
	case FrontierHeap, FrontierLLRB:
		return k, nil
	default:
		return "", fmt.Errorf("linkage: unknown frontier %q (want %q or %q)", s, FrontierHeap, FrontierLLRB)
	}
}
