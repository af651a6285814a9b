// Package sim provides the core tick-driven simulation engine for the CPU
// scheduling simulator.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - process.go: the Process record (immutable identity, mutable counters)
//   - simulator.go: the tick loop (admit → dispatch/preempt → age → I/O →
//     interrupts → execute) and end-of-run evaluation
//   - policy.go: the six scheduling policies as descriptors over one engine
//
// # Architecture
//
// The sim package owns the engine and its two queue structures; supporting
// concerns live in sub-packages:
//   - sim/trace/: per-tick CPU-occupancy recording and gantt rendering
//   - sim/workload/: synthetic process generation and per-policy cloning
//
// A Simulator owns one ready structure (FIFO or comparator heap, chosen by
// policy), one I/O-waiting heap, one arrival-ordered job pool, one terminated
// pool, and at most one process in the CPU slot. Every process reference is
// in exactly one of those places at any instant.
//
// Randomness flows through PartitionedRNG: a master seed derives isolated
// per-subsystem streams, so workload generation and each policy's interrupt
// sampling are independently reproducible.
package sim
