package workload

import "math/rand"

// BurstSampler generates CPU burst lengths in ticks.
type BurstSampler interface {
	// Sample returns a positive burst length (>= 1).
	Sample(rng *rand.Rand) int
}

// poolSize values are drawn up front; sampling then picks uniformly from the
// pool, which realizes the skewed discrete distribution:
// P(1..10) = 0.90, P(11..20) = 0.05, P(21..40) = 0.05.
const poolSize = 500

// SkewedBurstSampler produces bursts that are short with high probability and
// occasionally long, the shape of a geometric-like CPU burst distribution.
type SkewedBurstSampler struct {
	pool []int
}

// NewSkewedBurstSampler fills the value pool from rng.
func NewSkewedBurstSampler(rng *rand.Rand) *SkewedBurstSampler {
	pool := make([]int, poolSize)
	for i := range pool {
		switch {
		case i < poolSize*90/100:
			pool[i] = rng.Intn(10) + 1 // 1..10
		case i < poolSize*95/100:
			pool[i] = rng.Intn(10) + 11 // 11..20
		default:
			pool[i] = rng.Intn(20) + 21 // 21..40
		}
	}
	return &SkewedBurstSampler{pool: pool}
}

func (s *SkewedBurstSampler) Sample(rng *rand.Rand) int {
	return s.pool[rng.Intn(len(s.pool))]
}
