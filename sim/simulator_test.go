package sim

import (
	"math"
	"math/rand"
	"testing"
)

func newTestSimulator(policy Policy, batch []*Process) *Simulator {
	return NewSimulator(policy, DefaultSimConfig(), batch, rand.New(rand.NewSource(1)))
}

func completedByPID(m *Metrics, pid int) *Process {
	for _, p := range m.Completed {
		if p.PID == pid {
			return p
		}
	}
	return nil
}

func TestSimulator_FCFS_SingleProcess(t *testing.T) {
	// GIVEN one process: burst 5, no I/O, arrives at tick 0
	batch := []*Process{{PID: 1, CPUBurst: 5, ArrivalTime: 0}}
	s := newTestSimulator(PolicyFCFS, batch)

	// WHEN the simulation runs to completion
	m := s.Run()

	// THEN it ends on the fifth tick with no waiting and no idle time
	if m.ElapsedTime != 4 {
		t.Errorf("elapsed: got %d, want 4", m.ElapsedTime)
	}
	if m.IdleTime != 0 {
		t.Errorf("idle: got %d, want 0", m.IdleTime)
	}
	p := completedByPID(m, 1)
	if p == nil {
		t.Fatal("pid 1 not in terminated pool")
	}
	if p.WaitingTime != 0 {
		t.Errorf("waiting time: got %d, want 0", p.WaitingTime)
	}
	if p.TurnaroundTime != 5 {
		t.Errorf("turnaround time: got %d, want 5", p.TurnaroundTime)
	}
	if got := float64(4+1-0) / float64(4); math.Abs(m.CPUUtilization-got) > 1e-12 {
		t.Errorf("utilization: got %f, want %f", m.CPUUtilization, got)
	}
}

func TestSimulator_NonPreemptiveSJF_ShorterBurstFirst(t *testing.T) {
	// GIVEN two processes arriving together: burst 5 and burst 3
	batch := []*Process{
		{PID: 1, CPUBurst: 5, ArrivalTime: 0},
		{PID: 2, CPUBurst: 3, ArrivalTime: 0},
	}
	s := newTestSimulator(PolicyNonPreemptiveSJF, batch)

	// WHEN the simulation runs to completion
	m := s.Run()

	// THEN the shorter burst was dispatched first
	for tick := 0; tick < 3; tick++ {
		if got := s.Trace.Records[tick].PID; got != 2 {
			t.Errorf("tick %d: got pid %d, want 2", tick, got)
		}
	}
	// AND the longer process waited exactly 3 ticks before starting
	p1 := completedByPID(m, 1)
	if p1.WaitingTime != 3 {
		t.Errorf("pid 1 waiting time: got %d, want 3", p1.WaitingTime)
	}
	p2 := completedByPID(m, 2)
	if p2.WaitingTime != 0 {
		t.Errorf("pid 2 waiting time: got %d, want 0", p2.WaitingTime)
	}
}

func TestSimulator_PriorityTies_LowerPIDDispatchedFirst(t *testing.T) {
	// GIVEN two processes identical in priority and arrival
	batch := []*Process{
		{PID: 2, CPUBurst: 2, ArrivalTime: 0, Priority: 5},
		{PID: 1, CPUBurst: 2, ArrivalTime: 0, Priority: 5},
	}

	// WHEN the priority simulation runs repeatedly
	for run := 0; run < 5; run++ {
		s := newTestSimulator(PolicyNonPreemptivePriority, batch)
		s.Run()

		// THEN the lower pid always occupies the CPU first
		if got := s.Trace.Records[0].PID; got != 1 {
			t.Fatalf("run %d tick 0: got pid %d, want 1", run, got)
		}
		if got := s.Trace.Records[2].PID; got != 2 {
			t.Fatalf("run %d tick 2: got pid %d, want 2", run, got)
		}
	}
}

func TestSimulator_PreemptiveSJF_ShorterArrivalPreempts(t *testing.T) {
	// GIVEN a long process running when a shorter one arrives
	batch := []*Process{
		{PID: 1, CPUBurst: 8, ArrivalTime: 0},
		{PID: 2, CPUBurst: 2, ArrivalTime: 2},
	}
	s := newTestSimulator(PolicyPreemptiveSJF, batch)

	// WHEN the simulation runs to completion
	m := s.Run()

	// THEN the newcomer preempts at its arrival tick and runs to completion
	wantPIDs := []int{1, 1, 2, 2, 1, 1, 1, 1, 1, 1}
	for tick, want := range wantPIDs {
		if got := s.Trace.Records[tick].PID; got != want {
			t.Errorf("tick %d: got pid %d, want %d", tick, got, want)
		}
	}
	// AND the preempted process was aged while displaced
	p1 := completedByPID(m, 1)
	if p1.WaitingTime != 2 {
		t.Errorf("pid 1 waiting time: got %d, want 2", p1.WaitingTime)
	}
	if p1.TurnaroundTime != 10 {
		t.Errorf("pid 1 turnaround time: got %d, want 10", p1.TurnaroundTime)
	}
	p2 := completedByPID(m, 2)
	if p2.TurnaroundTime != 2 {
		t.Errorf("pid 2 turnaround time: got %d, want 2", p2.TurnaroundTime)
	}
}

func TestSimulator_RoundRobin_QuantumForcedRequeue(t *testing.T) {
	// GIVEN two CPU-only processes, one longer than the quantum (10)
	batch := []*Process{
		{PID: 1, CPUBurst: 15, ArrivalTime: 0},
		{PID: 2, CPUBurst: 5, ArrivalTime: 0},
	}
	s := newTestSimulator(PolicyRoundRobin, batch)

	// WHEN the simulation runs to completion
	m := s.Run()

	// THEN pid 1 holds the CPU for exactly one quantum, is requeued behind
	// pid 2, and finishes afterwards: 1 x10, 2 x5, 1 x5
	var wantPIDs []int
	for i := 0; i < 10; i++ {
		wantPIDs = append(wantPIDs, 1)
	}
	for i := 0; i < 5; i++ {
		wantPIDs = append(wantPIDs, 2)
	}
	for i := 0; i < 5; i++ {
		wantPIDs = append(wantPIDs, 1)
	}
	if len(s.Trace.Records) != len(wantPIDs) {
		t.Fatalf("trace length: got %d, want %d", len(s.Trace.Records), len(wantPIDs))
	}
	for tick, want := range wantPIDs {
		if got := s.Trace.Records[tick].PID; got != want {
			t.Errorf("tick %d: got pid %d, want %d", tick, got, want)
		}
	}
	if m.ElapsedTime != 19 {
		t.Errorf("elapsed: got %d, want 19", m.ElapsedTime)
	}
}

func TestSimulator_RoundRobin_NoMidQuantumTermination(t *testing.T) {
	// GIVEN one CPU-only process longer than two quanta
	batch := []*Process{{PID: 1, CPUBurst: 25, ArrivalTime: 0}}
	s := newTestSimulator(PolicyRoundRobin, batch)

	// WHEN the simulation runs to completion
	m := s.Run()

	// THEN the process runs every tick (requeue to an empty queue is
	// invisible in the trace) and terminates only when its burst hits zero
	if m.ElapsedTime != 24 {
		t.Errorf("elapsed: got %d, want 24", m.ElapsedTime)
	}
	for tick, r := range s.Trace.Records {
		if r.PID != 1 {
			t.Errorf("tick %d: got pid %d, want 1", tick, r.PID)
		}
	}
}

func TestSimulator_LateArrival_AccruesIdleTime(t *testing.T) {
	// GIVEN a single process arriving at tick 3
	batch := []*Process{{PID: 1, CPUBurst: 2, ArrivalTime: 3}}
	s := newTestSimulator(PolicyFCFS, batch)

	// WHEN the simulation runs to completion
	m := s.Run()

	// THEN the first three ticks are idle
	if m.IdleTime != 3 {
		t.Errorf("idle: got %d, want 3", m.IdleTime)
	}
	for tick := 0; tick < 3; tick++ {
		if !s.Trace.Records[tick].Idle() {
			t.Errorf("tick %d: expected idle", tick)
		}
	}
	if m.ElapsedTime != 4 {
		t.Errorf("elapsed: got %d, want 4", m.ElapsedTime)
	}
}

func TestSimulator_EmptyWorkload_TerminatesWithZeroedMetrics(t *testing.T) {
	// GIVEN no processes
	s := newTestSimulator(PolicyFCFS, nil)

	// WHEN the simulation runs
	m := s.Run()

	// THEN it terminates immediately and reports zeros instead of dividing
	// by zero elapsed time
	if m.ElapsedTime != 0 || m.IdleTime != 0 {
		t.Errorf("elapsed/idle: got %d/%d, want 0/0", m.ElapsedTime, m.IdleTime)
	}
	if m.CPUUtilization != 0 || m.AvgWaitingTime != 0 || m.AvgTurnaroundTime != 0 {
		t.Errorf("metrics not zeroed: %+v", m)
	}
}

func TestSimulator_ClonesBatch_SourceUntouched(t *testing.T) {
	// GIVEN a batch run through one simulator
	batch := []*Process{{PID: 1, CPUBurst: 5, IOBurst: 0, ArrivalTime: 0}}
	s := newTestSimulator(PolicyFCFS, batch)
	s.Run()

	// THEN the source processes keep their generated values
	if batch[0].CPUBurst != 5 || batch[0].TurnaroundTime != 0 {
		t.Errorf("source batch mutated: %+v", batch[0])
	}
}

func TestSimulator_SameSeed_SameTrace(t *testing.T) {
	// GIVEN two identically-seeded runs of a policy with I/O interrupts
	batch := []*Process{
		{PID: 1, CPUBurst: 9, IOBurst: 4, ArrivalTime: 0},
		{PID: 2, CPUBurst: 6, IOBurst: 7, ArrivalTime: 1},
		{PID: 3, CPUBurst: 12, IOBurst: 2, ArrivalTime: 2},
	}
	run := func() *Simulator {
		s := NewSimulator(PolicyFCFS, DefaultSimConfig(), batch, rand.New(rand.NewSource(99)))
		s.Run()
		return s
	}

	s1, s2 := run(), run()

	// THEN the traces are identical tick for tick
	if s1.Trace.Len() != s2.Trace.Len() {
		t.Fatalf("trace lengths differ: %d vs %d", s1.Trace.Len(), s2.Trace.Len())
	}
	for i := range s1.Trace.Records {
		if s1.Trace.Records[i] != s2.Trace.Records[i] {
			t.Fatalf("tick %d differs: %+v vs %+v", i, s1.Trace.Records[i], s2.Trace.Records[i])
		}
	}
}
