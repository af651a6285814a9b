// sim/simulator.go
package sim

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/sched-sim/sched-sim/sim/trace"
)

// Simulator is the core object that holds simulated time, the process pools,
// and the tick loop. One instance simulates one policy to completion.
//
// Every process reference lives in exactly one of: the job pool, the ready
// structure, the CPU slot, the waiting heap, or the terminated pool. All
// transitions are pop-then-push, so no reference is ever duplicated.
type Simulator struct {
	Policy Policy
	spec   policySpec
	cfg    SimConfig

	Clock    int // current tick, starts at 0
	IdleTime int // ticks executed with an empty CPU slot

	numProcess int
	cpuSlot    *Process
	ready      ReadyQueue
	// waiting holds processes inside an I/O burst, ordered by remaining
	// I/O time. The per-tick decrement is uniform across all elements, so
	// relative order under ShortestIOBurst is preserved without re-heapify.
	waiting *PriorityQueue
	// jobPool holds processes that have not arrived yet, ordered by arrival.
	jobPool *PriorityQueue
	// terminated accumulates finished processes; drained once at evaluation.
	terminated *PriorityQueue

	quantumCounter int // Round-Robin only: consecutive ticks the runner has held the CPU

	rng *rand.Rand // I/O-interrupt sampling stream

	Trace   *trace.SimulationTrace
	Metrics *Metrics
}

// NewSimulator creates a simulator for one policy. The given batch is cloned
// field-for-field, so every simulator built from the same batch races an
// identical workload without sharing mutable state. The rng is this
// simulator's interrupt stream (see PartitionedRNG).
func NewSimulator(policy Policy, cfg SimConfig, batch []*Process, rng *rand.Rand) *Simulator {
	spec := newPolicySpec(policy)
	s := &Simulator{
		Policy:     policy,
		spec:       spec,
		cfg:        cfg,
		numProcess: len(batch),
		ready:      spec.newReadyQueue(),
		waiting:    NewPriorityQueue(ShortestIOBurst),
		jobPool:    NewPriorityQueue(EarliestArrival),
		terminated: NewPriorityQueue(EarliestArrival),
		rng:        rng,
		Trace:      trace.NewSimulationTrace(),
	}
	for _, p := range batch {
		s.jobPool.Enqueue(p.Clone())
	}
	return s
}

// Run advances the simulation one tick at a time until every process has
// terminated, then computes the run's aggregate metrics.
func (s *Simulator) Run() *Metrics {
	logrus.Infof("Starting %s simulation with %d processes", s.Policy.Title(), s.numProcess)

	// An empty workload terminates at once; evaluation reports zeros
	// rather than dividing by elapsed time.
	if s.numProcess == 0 {
		s.Metrics = evaluate(s.Policy, 0, 0, 0, s.terminated)
		return s.Metrics
	}

	for {
		s.admit()
		s.dispatch()
		s.ageReady()
		s.advanceIO()
		s.resolveInterrupts()
		if s.execute() {
			break
		}
		s.Clock++
	}

	logrus.Infof("[tick %07d] %s simulation ended", s.Clock, s.Policy.Title())
	s.Metrics = evaluate(s.Policy, s.numProcess, s.Clock, s.IdleTime, s.terminated)
	return s.Metrics
}

// admit moves every process whose arrival tick is now from the job pool into
// the ready structure, then every process whose I/O burst has run out from
// the waiting heap into the ready structure.
func (s *Simulator) admit() {
	for p := s.jobPool.Peek(); p != nil && p.ArrivalTime == s.Clock; p = s.jobPool.Peek() {
		s.jobPool.Dequeue()
		s.ready.Enqueue(p)
		logrus.Debugf("[tick %07d] pid %d arrived", s.Clock, p.PID)
	}
	for p := s.waiting.Peek(); p != nil && p.IOBurst == 0; p = s.waiting.Peek() {
		s.waiting.Dequeue()
		s.ready.Enqueue(p)
		logrus.Debugf("[tick %07d] pid %d completed I/O", s.Clock, p.PID)
	}
}

// dispatch fills an empty CPU slot from the head of the ready structure.
// Under a preemptive policy, a ready process that compares strictly ahead of
// the runner evicts it: the runner re-enters the ready heap (and is aged this
// tick) and the new head takes the slot.
func (s *Simulator) dispatch() {
	if s.cpuSlot == nil {
		if p := s.ready.Dequeue(); p != nil {
			s.cpuSlot = p
			logrus.Debugf("[tick %07d] pid %d dispatched", s.Clock, p.PID)
		}
		return
	}
	if !s.spec.preemptive {
		return
	}
	if head := s.ready.Peek(); head != nil && s.spec.comparator(head, s.cpuSlot) {
		preempted := s.cpuSlot
		s.ready.Enqueue(preempted)
		s.cpuSlot = s.ready.Dequeue()
		logrus.Debugf("[tick %07d] pid %d preempted by pid %d", s.Clock, preempted.PID, s.cpuSlot.PID)
	}
}

// ageReady charges one tick of waiting and turnaround time to every process
// in the ready structure. Linear traversal over the backing storage; order is
// irrelevant because the update is side-effect-only.
func (s *Simulator) ageReady() {
	for _, p := range s.ready.Items() {
		p.WaitingTime++
		p.TurnaroundTime++
	}
}

// advanceIO progresses the I/O burst of every waiting process by one tick.
// The decrement is uniform, so the heap's order is untouched.
func (s *Simulator) advanceIO() {
	for _, p := range s.waiting.Items() {
		p.IOBurst--
		p.TurnaroundTime++
	}
}

// resolveInterrupts gives each waiting process one random chance to leave its
// I/O burst early. A process returns to ready if its trial fires and it still
// has more than one CPU tick left; the survivors rebuild the waiting heap
// under the same comparator.
func (s *Simulator) resolveInterrupts() {
	if s.waiting.IsEmpty() {
		return
	}
	rebuilt := NewPriorityQueue(ShortestIOBurst)
	for p := s.waiting.Dequeue(); p != nil; p = s.waiting.Dequeue() {
		if s.interruptFires() && p.CPUBurst > 1 {
			s.ready.Enqueue(p)
			logrus.Debugf("[tick %07d] pid %d interrupted out of I/O", s.Clock, p.PID)
		} else {
			rebuilt.Enqueue(p)
		}
	}
	s.waiting = rebuilt
}

// execute runs one CPU tick. Returns true when the last process terminates.
func (s *Simulator) execute() bool {
	if s.cpuSlot == nil {
		s.IdleTime++
		s.Trace.RecordTick(s.Clock, trace.IdlePID)
		return false
	}

	p := s.cpuSlot
	p.CPUBurst--
	p.TurnaroundTime++
	s.Trace.RecordTick(s.Clock, p.PID)
	if s.spec.quantum {
		s.quantumCounter++
	}

	// <= 0 guards workloads generated with a zero burst: such a process
	// terminates on its first CPU tick instead of looping forever.
	if p.CPUBurst <= 0 {
		p.CompletionTime = s.Clock
		s.terminated.Enqueue(p)
		s.vacate()
		logrus.Debugf("[tick %07d] pid %d terminated", s.Clock, p.PID)
		return s.terminated.Len() == s.numProcess
	}

	if p.IOBurst > 0 && (p.CPUBurst == 1 || s.interruptFires()) {
		s.waiting.Enqueue(p)
		s.vacate()
		logrus.Debugf("[tick %07d] pid %d entered I/O", s.Clock, p.PID)
		return false
	}

	if s.spec.quantum && s.quantumCounter == s.cfg.Quantum {
		s.ready.Enqueue(p)
		s.vacate()
		logrus.Debugf("[tick %07d] pid %d quantum expired", s.Clock, p.PID)
	}
	return false
}

// vacate clears the CPU slot and resets the quantum counter.
func (s *Simulator) vacate() {
	s.cpuSlot = nil
	s.quantumCounter = 0
}

func (s *Simulator) interruptFires() bool {
	return CoinBurst(s.rng, s.cfg.InterruptTrials, s.cfg.InterruptThreshold)
}
