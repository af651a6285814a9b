package trace

// SimulationTrace collects tick records during one simulator run.
type SimulationTrace struct {
	Records []TickRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace() *SimulationTrace {
	return &SimulationTrace{
		Records: make([]TickRecord, 0),
	}
}

// RecordTick appends one tick's CPU occupancy.
func (st *SimulationTrace) RecordTick(tick, pid int) {
	st.Records = append(st.Records, TickRecord{Tick: tick, PID: pid})
}

// Len returns the number of recorded ticks.
func (st *SimulationTrace) Len() int {
	return len(st.Records)
}

// IdleTicks returns the number of recorded ticks with an empty CPU slot.
func (st *SimulationTrace) IdleTicks() int {
	n := 0
	for _, r := range st.Records {
		if r.Idle() {
			n++
		}
	}
	return n
}
