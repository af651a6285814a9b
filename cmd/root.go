package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/sched-sim/sched-sim/sim"
	"github.com/sched-sim/sched-sim/sim/workload"
)

var (
	// CLI flags
	seed         int64    // Seed for workload generation and interrupt sampling
	numProcesses int      // Number of processes to generate; negative = prompt on stdin
	quantum      int      // Round-Robin time quantum (in ticks)
	ganttWidth   int      // Number of cells per gantt chart line
	logLevel     string   // Log verbosity level
	rngMode      string   // Interrupt RNG mode (per-policy or shared)
	configPath   string   // Optional YAML config; overrides the flags above when given
	policyNames  []string // Policies to simulate
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "sched-sim",
	Short: "Discrete-event simulator for CPU scheduling policies",
}

// runCmd executes all requested policy simulations against one shared workload
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the scheduling simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := resolveConfig()

		policies := make([]sim.Policy, 0, len(policyNames))
		for _, name := range policyNames {
			if !sim.IsValidPolicy(name) {
				logrus.Fatalf("Unknown scheduling policy %q", name)
			}
			policies = append(policies, sim.Policy(name))
		}

		n := numProcesses
		if n < 0 {
			fmt.Print("Enter the number of processes: ")
			if _, err := fmt.Fscan(os.Stdin, &n); err != nil {
				logrus.Fatalf("Could not read process count: %v", err)
			}
		}
		if n < 0 {
			logrus.Fatalf("Process count must be non-negative, got %d", n)
		}

		logrus.Infof("Starting simulation: %d processes, seed=%d, quantum=%d, rng_mode=%s",
			n, seed, cfg.Quantum, cfg.RNGMode)

		// Generate the workload once; every simulator clones it.
		rng := sim.NewPartitionedRNG(sim.NewSimulationKey(seed))
		batch := workload.Generate(n, workload.Options{
			ZeroIOBursts: cfg.ZeroIOBursts,
			ZeroArrivals: cfg.ZeroArrivals,
		}, rng.ForSubsystem(sim.SubsystemWorkload))

		printWorkloadTable(os.Stdout, batch)

		results := make([]*sim.Metrics, 0, len(policies))
		for _, policy := range policies {
			stream := sim.SubsystemInterrupts
			if cfg.RNGMode == sim.RNGModePerPolicy {
				stream = sim.SubsystemPolicyInterrupts(policy)
			}
			s := sim.NewSimulator(policy, cfg, batch, rng.ForSubsystem(stream))
			results = append(results, s.Run())
			printPolicyReport(os.Stdout, s, cfg.GanttWidth)
		}

		printComparisonTable(os.Stdout, results)

		logrus.Info("Simulation complete.")
	},
}

// resolveConfig builds the simulation constants: from the YAML file when
// --config is given, from the flags otherwise.
func resolveConfig() sim.SimConfig {
	if configPath != "" {
		cfg, err := sim.LoadSimConfig(configPath)
		if err != nil {
			logrus.Fatalf("Could not load config %s: %v", configPath, err)
		}
		return *cfg
	}
	cfg := sim.DefaultSimConfig()
	cfg.Quantum = quantum
	cfg.GanttWidth = ganttWidth
	cfg.RNGMode = rngMode
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}
	return cfg
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// allPolicyNames returns the default value for the --policies flag.
func allPolicyNames() []string {
	names := make([]string, 0, 6)
	for _, p := range sim.AllPolicies() {
		names = append(names, string(p))
	}
	return names
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for workload generation and interrupt sampling")
	runCmd.Flags().IntVar(&numProcesses, "processes", -1, "Number of processes to generate (prompts on stdin when omitted)")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	runCmd.Flags().IntVar(&quantum, "quantum", 10, "Round-Robin time quantum (in ticks)")
	runCmd.Flags().IntVar(&ganttWidth, "gantt-width", 10, "Number of cells per gantt chart line")
	runCmd.Flags().StringVar(&rngMode, "rng-mode", sim.RNGModePerPolicy, "Interrupt RNG mode: per-policy (reproducible per simulator) or shared (one uncoordinated stream)")
	runCmd.Flags().StringVar(&configPath, "config", "", "YAML simulation config; overrides the constant flags when given")
	runCmd.Flags().StringSliceVar(&policyNames, "policies", allPolicyNames(), "Scheduling policies to simulate")

	rootCmd.AddCommand(runCmd)
}
