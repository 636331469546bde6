package dijkstra

// entry is one priority-queue record: a node reached at a cumulative cost.
// seq is assigned from a strictly increasing counter at push time and only
// breaks ties between equal costs, so node IDs are never compared.
type entry struct {
	cost float64
	seq  uint64
	id   string
}

// entryPQ is a min-heap of entries ordered by cost, then seq.
// We use the “lazy-decrease-key” approach: when a cheaper cost to an existing
// node is found, a fresh entry is pushed and the old one is dropped as stale
// when popped.
type entryPQ []entry

// Len returns the number of items in the heap.
func (pq entryPQ) Len() int { return len(pq) }

// Less orders by cost, then by insertion sequence.
func (pq entryPQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq entryPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *entryPQ) Push(x interface{}) { *pq = append(*pq, x.(entry)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *entryPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
