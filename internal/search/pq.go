package search

import "container/heap"

// pqItem is one entry in the priority queue: a vertex key plus its
// tentative distance. The teacher's retrieved max_probability_path.go
// calls into a PriorityQueue/PQItem pair that never actually appears
// anywhere in the retrieved pack (confirmed absent from every file under
// internal/inference) -- this is authored fresh here, following the
// standard container/heap.Interface shape the call site implies (a
// Push/Pop-backed min-heap ordered by Priority).
type pqItem struct {
	key      string
	priority int64
	seq      int64
	index    int
}

// priorityQueue is a container/heap.Interface min-heap over pqItem,
// ordered by ascending priority (here, tentative path cost), with seq (an
// insertion counter) as a FIFO tiebreak so equal-cost alternatives settle
// in the order they were discovered -- spec §9: "needs stable ordering
// under equal priority (FIFO) to make output deterministic."
type priorityQueue []*pqItem

func (pq priorityQueue) Len() int { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}
	return pq[i].seq < pq[j].seq
}
func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *priorityQueue) Push(x any) {
	item := x.(*pqItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]
	return item
}

var _ heap.Interface = (*priorityQueue)(nil)
