package lengths

import "container/heap"

// kraftHeapItem pairs a symbol's current "gain" — how much its rounded code
// length still undershoots its entropy estimate — with the symbol's index in
// freq and codeLengths.  LimitedKraftHeap greedily extends whichever symbol
// currently has the largest gain.
type kraftHeapItem struct {
	gain  float32
	index int
}

// kraftMaxHeap is a max-heap of kraftHeapItem ordered by gain, implemented
// as a slice type satisfying container/heap's heap.Interface.
type kraftMaxHeap []kraftHeapItem

func (h kraftMaxHeap) Len() int      { return len(h) }
func (h kraftMaxHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h kraftMaxHeap) Less(i, j int) bool {
	return h[i].gain > h[j].gain // max-heap: biggest gain first
}

func (h *kraftMaxHeap) Push(x any) {
	*h = append(*h, x.(kraftHeapItem))
}

func (h *kraftMaxHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

var _ heap.Interface = (*kraftMaxHeap)(nil)
