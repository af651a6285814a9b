package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RNG modes for I/O-interrupt sampling. Workload generation is unaffected:
// the generated batch depends only on the master seed.
const (
	// RNGModePerPolicy gives each simulator a private interrupt stream
	// derived from the master seed and the policy name (default).
	RNGModePerPolicy = "per-policy"
	// RNGModeShared makes all simulators draw interrupts from one
	// uncoordinated stream, as the original design did.
	RNGModeShared = "shared"
)

// validRNGModes is the set of recognized rng_mode values.
var validRNGModes = map[string]bool{"": true, RNGModePerPolicy: true, RNGModeShared: true}

// SimConfig holds the simulation constants, loadable from a YAML file.
// Zero values mean "not set" and are filled in by ApplyDefaults.
type SimConfig struct {
	Quantum            int    `yaml:"quantum"`             // Round-Robin time quantum in ticks
	GanttWidth         int    `yaml:"gantt_width"`         // cells per gantt chart line
	InterruptTrials    int    `yaml:"interrupt_trials"`    // fair coin flips per interrupt trial
	InterruptThreshold int    `yaml:"interrupt_threshold"` // successes required for the trial to fire
	RNGMode            string `yaml:"rng_mode"`            // "per-policy" or "shared"

	// Debug toggles for deterministic experiments: force the corresponding
	// generated field to zero for every process.
	ZeroIOBursts bool `yaml:"zero_io_bursts"`
	ZeroArrivals bool `yaml:"zero_arrivals"`
}

// DefaultSimConfig returns the configuration matching the original simulator's
// constants: quantum 10, gantt lines of 10 cells, interrupt trial of 100 fair
// coins with threshold 50.
func DefaultSimConfig() SimConfig {
	return SimConfig{
		Quantum:            10,
		GanttWidth:         10,
		InterruptTrials:    100,
		InterruptThreshold: 50,
		RNGMode:            RNGModePerPolicy,
	}
}

// ApplyDefaults fills unset (zero) fields from DefaultSimConfig.
func (c *SimConfig) ApplyDefaults() {
	def := DefaultSimConfig()
	if c.Quantum == 0 {
		c.Quantum = def.Quantum
	}
	if c.GanttWidth == 0 {
		c.GanttWidth = def.GanttWidth
	}
	if c.InterruptTrials == 0 {
		c.InterruptTrials = def.InterruptTrials
	}
	if c.InterruptThreshold == 0 {
		c.InterruptThreshold = def.InterruptThreshold
	}
	if c.RNGMode == "" {
		c.RNGMode = def.RNGMode
	}
}

// Validate checks field ranges after defaults have been applied.
func (c *SimConfig) Validate() error {
	if c.Quantum < 1 {
		return fmt.Errorf("quantum must be >= 1, got %d", c.Quantum)
	}
	if c.GanttWidth < 1 {
		return fmt.Errorf("gantt_width must be >= 1, got %d", c.GanttWidth)
	}
	if c.InterruptTrials < 1 {
		return fmt.Errorf("interrupt_trials must be >= 1, got %d", c.InterruptTrials)
	}
	if c.InterruptThreshold < 0 || c.InterruptThreshold > c.InterruptTrials {
		return fmt.Errorf("interrupt_threshold must be in [0, %d], got %d", c.InterruptTrials, c.InterruptThreshold)
	}
	if !validRNGModes[c.RNGMode] {
		return fmt.Errorf("unknown rng_mode %q", c.RNGMode)
	}
	return nil
}

// LoadSimConfig reads and parses a YAML simulation configuration file,
// applies defaults for unset fields, and validates the result.
func LoadSimConfig(path string) (*SimConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sim config: %w", err)
	}
	var cfg SimConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing sim config: %w", err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sim config: %w", err)
	}
	return &cfg, nil
}
