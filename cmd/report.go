// Report rendering: the generated-workload table, per-policy sections with
// gantt chart and run statistics, and the final cross-policy comparison.

package cmd

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	sim "github.com/sched-sim/sched-sim/sim"
	"github.com/sched-sim/sched-sim/sim/trace"
)

// printWorkloadTable writes one row per generated process.
func printWorkloadTable(w io.Writer, batch []*sim.Process) {
	fmt.Fprintln(w, "Generated workload")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "CPU Burst", "IO Burst", "Arrival", "Priority"})
	for _, p := range batch {
		table.Append([]string{
			fmt.Sprint(p.PID),
			fmt.Sprint(p.CPUBurst),
			fmt.Sprint(p.IOBurst),
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.Priority),
		})
	}
	table.Render()
}

// printPolicyReport writes one completed simulator's section: algorithm
// header, the per-tick gantt chart wrapped at width cells, and the run's
// aggregate statistics.
func printPolicyReport(w io.Writer, s *sim.Simulator, width int) {
	fmt.Fprintf(w, "\n# %s Algorithm\n\n", s.Policy.Title())
	trace.RenderGantt(w, s.Trace, width)
	fmt.Fprintf(w, "\n-> Simulation End.\n\n")
	s.Metrics.Print(w)
}

// printComparisonTable writes the final table comparing all simulated
// policies on CPU utilization, average waiting time, average turnaround
// time, and maximum waiting time.
func printComparisonTable(w io.Writer, results []*sim.Metrics) {
	fmt.Fprintln(w, "\n# Summary")
	fmt.Fprintln(w)
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Policy", "CPU Util", "Avg WT", "Avg TT", "Max WT"})
	for _, m := range results {
		table.Append([]string{
			m.Policy.Title(),
			fmt.Sprintf("%.3f", m.CPUUtilization),
			fmt.Sprintf("%.3f", m.AvgWaitingTime),
			fmt.Sprintf("%.3f", m.AvgTurnaroundTime),
			fmt.Sprint(m.MaxWaitingTime),
		})
	}
	table.Render()
}
