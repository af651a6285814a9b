// Defines the Process struct that models a single process in the simulation.
// Identity and workload fields are fixed at generation; the counters are
// advanced by the engine as simulated time passes.

package sim

import (
	"fmt"
)

// Process models one process of the synthetic workload.
//
// PID, ArrivalTime and Priority never change after generation. CPUBurst and
// IOBurst are the remaining ticks of work on each resource and only go down.
// WaitingTime and TurnaroundTime only go up. CompletionTime is set once, at
// the tick the process terminates.
type Process struct {
	PID int // unique within a workload, 1..N; final tie-break in every ordering

	CPUBurst    int // remaining CPU ticks; the process terminates when this hits 0
	IOBurst     int // remaining I/O ticks; 0 means no I/O is ever needed
	ArrivalTime int // tick at which the process becomes eligible for the ready structure
	Priority    int // smaller value = more urgent

	WaitingTime    int // cumulative ticks spent in the ready structure
	TurnaroundTime int // cumulative ticks since arrival while anywhere in {ready, running, waiting}
	CompletionTime int // tick of the final CPU tick; meaningful only once terminated
}

// Clone returns an independent field-for-field copy.
// Each simulator instance runs against its own clones of the generated batch
// so that all policies race an identical workload.
func (p *Process) Clone() *Process {
	c := *p
	return &c
}

// String returns a human-readable one-line representation of a Process.
func (p Process) String() string {
	return fmt.Sprintf("Process: (PID: %d, CPUBurst: %d, IOBurst: %d, ArrivalTime: %d, Priority: %d)",
		p.PID, p.CPUBurst, p.IOBurst, p.ArrivalTime, p.Priority)
}
