// Package trace provides per-tick CPU-occupancy recording for the scheduling
// simulators. This package has no dependencies on sim/ — it stores pure data
// types, keeping the engine free of rendering concerns.
package trace

// IdlePID marks a tick during which the CPU slot was empty.
const IdlePID = 0

// TickRecord captures which process occupied the CPU for one tick.
type TickRecord struct {
	Tick int // zero-indexed simulated tick
	PID  int // running process, or IdlePID
}

// Idle reports whether the CPU slot was empty during this tick.
func (r TickRecord) Idle() bool {
	return r.PID == IdlePID
}
