// The four total orders used by the simulator's heaps. Each breaks ties on
// PID so the resulting order is strict and deterministic across runs.

package sim

// ShortestBurst orders by remaining CPU burst, shortest first.
// Ready-queue order for SJF (both variants).
func ShortestBurst(a, b *Process) bool {
	if a.CPUBurst != b.CPUBurst {
		return a.CPUBurst < b.CPUBurst
	}
	return a.PID < b.PID
}

// HighestPriority orders by priority value, smallest (most urgent) first.
// Ready-queue order for Priority scheduling (both variants).
func HighestPriority(a, b *Process) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return a.PID < b.PID
}

// ShortestIOBurst orders by remaining I/O burst, shortest first.
// Order of the I/O-waiting queue.
func ShortestIOBurst(a, b *Process) bool {
	if a.IOBurst != b.IOBurst {
		return a.IOBurst < b.IOBurst
	}
	return a.PID < b.PID
}

// EarliestArrival orders by arrival time, earliest first.
// Order of the job pool and the terminated pool.
func EarliestArrival(a, b *Process) bool {
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.PID < b.PID
}
