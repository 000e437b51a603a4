package search

import (
	"container/heap"

	"github.com/katalvlaran/gridpath/grid"
)

// node is the ephemeral SearchState of one frontier entry: a cell, its
// depth in moves from the start (arrival time = StartTime + depth), and
// the accumulated ordering cost under the algorithm's cost rule.
type node struct {
	cell  grid.Cell
	depth int
	g     int
}

// frontier abstracts the open set so one expansion skeleton serves all
// three algorithms: FIFO for BFS, a min-heap for UCS and A*.
type frontier interface {
	push(n node, priority int)
	pop() (node, bool)
}

// fifoFrontier pops nodes in insertion order; priority is ignored.
// Backing BFS, where every edge counts 1 and FIFO order is exactly
// non-decreasing depth.
type fifoFrontier struct {
	queue []node
}

func (f *fifoFrontier) push(n node, _ int) { f.queue = append(f.queue, n) }

func (f *fifoFrontier) pop() (node, bool) {
	if len(f.queue) == 0 {
		return node{}, false
	}
	n := f.queue[0]
	f.queue = f.queue[1:]

	return n, true
}

// heapItem is one entry of the lazy min-heap. seq is a monotonically
// increasing insertion counter: the final tie-break that keeps equal
// (priority, g) entries in FIFO order, making pops fully deterministic.
type heapItem struct {
	node
	priority int
	seq      int
}

// itemHeap orders by (priority, g, seq) ascending.
// For UCS priority==g, so equal-cost entries pop in insertion order;
// for A* priority==f, ties break by lower g, then by insertion order —
// which within one expansion is the grid's neighbor order.
type itemHeap []heapItem

func (h itemHeap) Len() int { return len(h) }

func (h itemHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	if h[i].g != h[j].g {
		return h[i].g < h[j].g
	}

	return h[i].seq < h[j].seq
}

func (h itemHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (h *itemHeap) Push(x interface{}) { *h = append(*h, x.(heapItem)) }

// Pop removes and returns the smallest element. Called by heap.Pop.
func (h *itemHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// heapFrontier wraps itemHeap behind the frontier interface, using the
// “lazy decrease-key” pattern: improved costs push duplicates, and stale
// entries are skipped at dequeue against the best-g map.
type heapFrontier struct {
	items itemHeap
	seq   int
}

func newHeapFrontier() *heapFrontier {
	hf := &heapFrontier{items: make(itemHeap, 0)}
	heap.Init(&hf.items)

	return hf
}

func (f *heapFrontier) push(n node, priority int) {
	heap.Push(&f.items, heapItem{node: n, priority: priority, seq: f.seq})
	f.seq++
}

func (f *heapFrontier) pop() (node, bool) {
	if f.items.Len() == 0 {
		return node{}, false
	}
	item := heap.Pop(&f.items).(heapItem)

	return item.node, true
}
