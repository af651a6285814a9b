// Package workload generates the synthetic process batch the simulators race.
// One batch is generated per run and cloned field-for-field into every
// simulator instance, so all policies are compared on identical input.
package workload

import (
	"math/rand"

	"github.com/sched-sim/sched-sim/sim"
)

// Options adjust the generated fields for deterministic experiments.
type Options struct {
	ZeroIOBursts bool // force io_burst_time = 0 for every process
	ZeroArrivals bool // force arrival_time = 0 for every process
}

// Generate creates n processes with PIDs 1..n. Deterministic given the same
// rng state. Field distributions:
//   - cpu_burst_time: skewed, P(1..10)=0.90, P(11..20)=0.05, P(21..40)=0.05
//   - io_burst_time:  uniform over [0, 19] (0 = never needs I/O)
//   - arrival_time:   uniform over [0, 3n-1]
//   - priority:       uniform over [-20, 20]
func Generate(n int, opts Options, rng *rand.Rand) []*sim.Process {
	if n <= 0 {
		return nil
	}

	bursts := NewSkewedBurstSampler(rng)

	batch := make([]*sim.Process, 0, n)
	for i := 0; i < n; i++ {
		p := &sim.Process{
			PID:         i + 1,
			CPUBurst:    bursts.Sample(rng),
			IOBurst:     rng.Intn(20),
			ArrivalTime: rng.Intn(3 * n),
			Priority:    rng.Intn(41) - 20,
		}
		if opts.ZeroIOBursts {
			p.IOBurst = 0
		}
		if opts.ZeroArrivals {
			p.ArrivalTime = 0
		}
		batch = append(batch, p)
	}
	return batch
}
