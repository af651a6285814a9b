// Tracks per-run aggregate statistics computed once at natural termination.

package sim

import (
	"fmt"
	"io"
)

// Metrics aggregates statistics about one simulator run for final reporting.
type Metrics struct {
	Policy      Policy
	NumProcess  int
	ElapsedTime int // tick counter at termination (zero-indexed)
	IdleTime    int // ticks with an empty CPU slot

	CPUUtilization    float64
	AvgWaitingTime    float64
	AvgTurnaroundTime float64
	MaxWaitingTime    int

	// Completed holds the terminated processes in arrival order, counters
	// frozen. Kept for property checks and per-process reporting.
	Completed []*Process
}

// evaluate drains the terminated pool and computes the aggregates.
// Guarded against elapsed == 0 (e.g. an empty workload): such a run reports
// zero utilization and zero averages instead of dividing by zero.
func evaluate(policy Policy, numProcess, elapsed, idle int, terminated *PriorityQueue) *Metrics {
	m := &Metrics{
		Policy:      policy,
		NumProcess:  numProcess,
		ElapsedTime: elapsed,
		IdleTime:    idle,
	}

	var sumWaiting, sumTurnaround int
	for p := terminated.Dequeue(); p != nil; p = terminated.Dequeue() {
		sumWaiting += p.WaitingTime
		sumTurnaround += p.TurnaroundTime
		if p.WaitingTime > m.MaxWaitingTime {
			m.MaxWaitingTime = p.WaitingTime
		}
		m.Completed = append(m.Completed, p)
	}

	if elapsed == 0 || numProcess == 0 {
		return m
	}

	m.CPUUtilization = float64(elapsed+1-idle) / float64(elapsed)
	m.AvgWaitingTime = float64(sumWaiting) / float64(numProcess)
	m.AvgTurnaroundTime = float64(sumTurnaround) / float64(numProcess)
	return m
}

// Print writes the run's aggregates in the per-policy report format.
func (m *Metrics) Print(w io.Writer) {
	fmt.Fprintf(w, "-> Execution time: %d\n", m.ElapsedTime+1)
	fmt.Fprintf(w, "-> CPU Utilization: %.3f\n", m.CPUUtilization)
	fmt.Fprintf(w, "-> Average waiting time: %.3f\n", m.AvgWaitingTime)
	fmt.Fprintf(w, "-> Average turnaround time: %.3f\n", m.AvgTurnaroundTime)
}
