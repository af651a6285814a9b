// Implements PriorityQueue, an array-backed binary min-heap over process
// references with a comparator injected at construction. Used for every pool
// that must stay ordered: ready queues under SJF/Priority policies, the
// I/O-waiting queue, the job pool, and the terminated pool.

package sim

// Comparator reports whether a should be strictly closer to the top of the
// heap than b. Every comparator in this system is a strict total order: ties
// on the primary key fall through to the PID, so no two distinct processes
// ever compare equal.
type Comparator func(a, b *Process) bool

// PriorityQueue is a complete binary tree stored in a slice, addressed by
// index arithmetic (parent (i-1)/2, children 2i+1 and 2i+2). The element at
// index 0 is the top: no element compares ahead of it under the comparator.
type PriorityQueue struct {
	items []*Process
	less  Comparator
}

// NewPriorityQueue creates an empty heap ordered by the given comparator.
func NewPriorityQueue(less Comparator) *PriorityQueue {
	return &PriorityQueue{less: less}
}

// Enqueue inserts a process at the next complete-tree position and sifts it
// upward until its parent no longer compares behind it. Always succeeds.
func (pq *PriorityQueue) Enqueue(p *Process) {
	pq.items = append(pq.items, p)
	pq.siftUp(len(pq.items) - 1)
}

// Dequeue removes and returns the top process. The last element in tree order
// is promoted to the root and sifted downward, at each level swapping with
// the smaller child while that child compares ahead of it.
// Returns nil if the heap is empty; an empty heap is not mutated.
func (pq *PriorityQueue) Dequeue() *Process {
	n := len(pq.items)
	if n == 0 {
		return nil
	}
	top := pq.items[0]
	pq.items[0] = pq.items[n-1]
	pq.items[n-1] = nil
	pq.items = pq.items[:n-1]
	if len(pq.items) > 0 {
		pq.siftDown(0)
	}
	return top
}

// Peek returns the top process without removing it, or nil if the heap is empty.
func (pq *PriorityQueue) Peek() *Process {
	if len(pq.items) == 0 {
		return nil
	}
	return pq.items[0]
}

// Len returns the number of processes in the heap.
func (pq *PriorityQueue) Len() int {
	return len(pq.items)
}

// IsEmpty reports whether the heap holds no processes.
func (pq *PriorityQueue) IsEmpty() bool {
	return len(pq.items) == 0
}

// Items returns the backing storage for side-effect-only bulk updates
// (aging, I/O advancement). Traversal order is heap order, not sorted order;
// callers MUST NOT mutate ordering keys non-uniformly, append, or reslice.
func (pq *PriorityQueue) Items() []*Process {
	return pq.items
}

func (pq *PriorityQueue) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !pq.less(pq.items[i], pq.items[parent]) {
			break
		}
		pq.items[i], pq.items[parent] = pq.items[parent], pq.items[i]
		i = parent
	}
}

func (pq *PriorityQueue) siftDown(i int) {
	n := len(pq.items)
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < n && pq.less(pq.items[left], pq.items[smallest]) {
			smallest = left
		}
		if right < n && pq.less(pq.items[right], pq.items[smallest]) {
			smallest = right
		}
		if smallest == i {
			return
		}
		pq.items[i], pq.items[smallest] = pq.items[smallest], pq.items[i]
		i = smallest
	}
}
