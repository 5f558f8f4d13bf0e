package search

import "container/heap"

// pqItem is one frontier entry of the heap strategies.
// Entries for the same cell may coexist; older ones go stale and are
// discarded when popped (lazy deletion).
type pqItem struct {
	cell     Cell
	key      int
	priority int64
	seq      uint64 // insertion order; breaks priority ties
}

// itemHeap orders by (priority, seq) ascending, so equal priorities pop
// first-in first-out.
type itemHeap []pqItem

func (h itemHeap) Len() int { return len(h) }
func (h itemHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}
func (h itemHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *itemHeap) Push(x interface{}) { *h = append(*h, x.(pqItem)) }

func (h *itemHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// stableQueue is a binary min-heap with stable tie-breaking.
type stableQueue struct {
	items itemHeap
	next  uint64
}

func newStableQueue(capacity int) *stableQueue {
	return &stableQueue{items: make(itemHeap, 0, capacity)}
}

func (q *stableQueue) Len() int { return q.items.Len() }

func (q *stableQueue) push(c Cell, key int, priority int64) {
	heap.Push(&q.items, pqItem{cell: c, key: key, priority: priority, seq: q.next})
	q.next++
}

func (q *stableQueue) pop() pqItem {
	return heap.Pop(&q.items).(pqItem)
}

// ordered returns a copy of the entries sorted by pop order.
func (q *stableQueue) ordered() []pqItem {
	cp := make(itemHeap, len(q.items))
	copy(cp, q.items)
	out := make([]pqItem, 0, len(cp))
	for cp.Len() > 0 {
		out = append(out, heap.Pop(&cp).(pqItem))
	}

	return out
}
