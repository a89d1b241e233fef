package search

import "github.com/katalvlaran/gridmaze/grid"

// pqItem pairs a coordinate with the priority it was enqueued under
// (F for A*, Distance for Dijkstra).
type pqItem struct {
	coord    grid.Coord
	priority float64
}

// cellPQ is a min-heap of pqItem ordered by ascending priority, shared by
// A* and Dijkstra under the lazy-decrease-key pattern: improving a cell
// pushes a fresh entry, and stale entries are skipped at pop time via the
// closed/visited set. Order among equal priorities is whatever the heap
// yields; callers must not rely on a particular tie-break.
type cellPQ []pqItem

// Len returns the number of items in the heap.
func (pq cellPQ) Len() int { return len(pq) }

// Less defines the comparison: smaller priority first.
func (pq cellPQ) Less(i, j int) bool { return pq[i].priority < pq[j].priority }

// Swap swaps two elements in the heap.
func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap; x must be a pqItem.
func (pq *cellPQ) Push(x any) { *pq = append(*pq, x.(pqItem)) }

// Pop removes and returns the last element after heap reordering.
func (pq *cellPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
