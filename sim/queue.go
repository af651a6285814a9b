// Implements the FIFOQueue, the ready structure for policies with no
// intrinsic ordering (FCFS, Round-Robin). Strict insertion order, no
// reordering, no search.

package sim

import (
	"fmt"
	"strings"
)

// FIFOQueue is an insertion-ordered queue of process references.
type FIFOQueue struct {
	queue []*Process
}

// Enqueue adds a process to the back of the queue. Always succeeds.
func (q *FIFOQueue) Enqueue(p *Process) {
	q.queue = append(q.queue, p)
}

// Dequeue removes and returns the process at the front of the queue.
// Returns nil if the queue is empty.
func (q *FIFOQueue) Dequeue() *Process {
	if len(q.queue) == 0 {
		return nil
	}
	front := q.queue[0]
	q.queue = q.queue[1:]
	return front
}

// Peek returns the process at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (q *FIFOQueue) Peek() *Process {
	if len(q.queue) == 0 {
		return nil
	}
	return q.queue[0]
}

// Len returns the number of processes in the queue.
func (q *FIFOQueue) Len() int {
	return len(q.queue)
}

// IsEmpty reports whether the queue holds no processes.
func (q *FIFOQueue) IsEmpty() bool {
	return len(q.queue) == 0
}

// Items returns the queue contents for iteration.
// The returned slice is the queue's internal storage -- callers within the
// sim package may iterate over it but MUST NOT append to or reslice it.
func (q *FIFOQueue) Items() []*Process {
	return q.queue
}

func (q *FIFOQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, p := range q.queue {
		sb.WriteString(fmt.Sprint(p.PID))
		if i < len(q.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
