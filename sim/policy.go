// Scheduling policies as small descriptors over one shared engine: each
// policy is fully characterized by its ready-structure kind, its comparator
// (heap-backed policies only), a preemption flag, and whether the quantum
// applies. The tick loop itself lives in simulator.go.

package sim

import "fmt"

// Policy identifies one of the six scheduling algorithms.
type Policy string

const (
	PolicyFCFS                  Policy = "fcfs"
	PolicyNonPreemptiveSJF      Policy = "np-sjf"
	PolicyPreemptiveSJF         Policy = "sjf"
	PolicyNonPreemptivePriority Policy = "np-priority"
	PolicyPreemptivePriority    Policy = "priority"
	PolicyRoundRobin            Policy = "rr"
)

// AllPolicies returns the six policies in their canonical reporting order.
func AllPolicies() []Policy {
	return []Policy{
		PolicyFCFS,
		PolicyNonPreemptiveSJF,
		PolicyPreemptiveSJF,
		PolicyNonPreemptivePriority,
		PolicyPreemptivePriority,
		PolicyRoundRobin,
	}
}

// validPolicies maps accepted policy names.
var validPolicies = map[Policy]bool{
	PolicyFCFS:                  true,
	PolicyNonPreemptiveSJF:      true,
	PolicyPreemptiveSJF:         true,
	PolicyNonPreemptivePriority: true,
	PolicyPreemptivePriority:    true,
	PolicyRoundRobin:            true,
}

// IsValidPolicy returns true if the given name is a recognized policy.
func IsValidPolicy(name string) bool {
	return validPolicies[Policy(name)]
}

// Title returns the display name used in report headers and the summary table.
func (p Policy) Title() string {
	switch p {
	case PolicyFCFS:
		return "FCFS"
	case PolicyNonPreemptiveSJF:
		return "Non-Preemptive SJF"
	case PolicyPreemptiveSJF:
		return "Preemptive SJF"
	case PolicyNonPreemptivePriority:
		return "Non-Preemptive Priority"
	case PolicyPreemptivePriority:
		return "Preemptive Priority"
	case PolicyRoundRobin:
		return "Round Robin"
	default:
		return string(p)
	}
}

// ReadyQueue is the pool of processes eligible for CPU assignment.
// FIFOQueue and PriorityQueue both satisfy it; the policy decides which one
// backs a given simulator.
type ReadyQueue interface {
	Enqueue(p *Process)
	Dequeue() *Process
	Peek() *Process
	Len() int
	IsEmpty() bool
	Items() []*Process
}

// policySpec is the per-policy parameterization of the engine.
type policySpec struct {
	comparator Comparator // nil for FIFO-backed policies
	preemptive bool
	quantum    bool // Round-Robin forced requeue
}

// newReadyQueue constructs the ready structure for the policy.
func (ps policySpec) newReadyQueue() ReadyQueue {
	if ps.comparator == nil {
		return &FIFOQueue{}
	}
	return NewPriorityQueue(ps.comparator)
}

// newPolicySpec resolves a policy to its engine parameterization.
// Callers validate with IsValidPolicy first; panics on unrecognized values
// since the policy set is closed.
func newPolicySpec(p Policy) policySpec {
	switch p {
	case PolicyFCFS:
		return policySpec{}
	case PolicyNonPreemptiveSJF:
		return policySpec{comparator: ShortestBurst}
	case PolicyPreemptiveSJF:
		return policySpec{comparator: ShortestBurst, preemptive: true}
	case PolicyNonPreemptivePriority:
		return policySpec{comparator: HighestPriority}
	case PolicyPreemptivePriority:
		return policySpec{comparator: HighestPriority, preemptive: true}
	case PolicyRoundRobin:
		return policySpec{quantum: true}
	default:
		panic(fmt.Sprintf("unknown scheduling policy %q", p))
	}
}
