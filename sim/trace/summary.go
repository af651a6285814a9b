package trace

import (
	"fmt"
	"io"
)

// RenderGantt writes the trace as a gantt chart: one fixed-width cell per
// tick, naming the running process or IDLE, wrapped after width cells per
// line. A trailing newline is emitted if the last line is partial.
func RenderGantt(w io.Writer, st *SimulationTrace, width int) {
	if width < 1 {
		width = 1
	}
	for i, r := range st.Records {
		if r.Idle() {
			fmt.Fprint(w, "[  IDLE  ]")
		} else {
			fmt.Fprintf(w, "[ %6d ]", r.PID)
		}
		if (i+1)%width == 0 {
			fmt.Fprintln(w)
		}
	}
	if len(st.Records)%width != 0 {
		fmt.Fprintln(w)
	}
}
