package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/railway-sim/railway-sim/banker"
)

// renderState writes the allocation ledger as a fixed-width table:
// one row per train with its Allocation | Maximum | Need columns, followed
// by the free units per track. Read-only.
func renderState(w io.Writer, s *banker.State) {
	n, m := s.NumConsumers(), s.NumResources()

	header := func(title string) string {
		cells := make([]string, m)
		for j := 0; j < m; j++ {
			cells[j] = fmt.Sprintf("R%d", j)
		}
		return fmt.Sprintf(" %s %s", title, strings.Join(cells, " "))
	}
	rule := strings.Repeat("-", 22+3*(3*m)+6)

	fmt.Fprintf(w, "Trains: %d    Track sections: %d\n", n, m)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%-4s %-12s |%s |%s |%s\n", "ID", "Train", header("Alloc"), header("Max"), header("Need"))
	fmt.Fprintln(w, rule)

	for i := 0; i < n; i++ {
		fmt.Fprintf(w, "%-4d %-12s |", i, s.ConsumerNames[i])
		writeRow(w, s.Allocation[i])
		fmt.Fprint(w, " |")
		writeRow(w, s.Maximum[i])
		fmt.Fprint(w, " |")
		writeRow(w, s.Need[i])
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, rule)

	fmt.Fprint(w, "Available:")
	for j := 0; j < m; j++ {
		fmt.Fprintf(w, " R%d=%d", j, s.Available[j])
	}
	fmt.Fprintln(w)
}

func writeRow(w io.Writer, row []int) {
	for _, v := range row {
		fmt.Fprintf(w, " %2d", v)
	}
}

// renderWaitForGraph lists each train's wait set, or "none".
func renderWaitForGraph(w io.Writer, s *banker.State, g *banker.WaitForGraph) {
	fmt.Fprintln(w, "Wait-for graph (train -> train):")
	for i := 0; i < g.N; i++ {
		fmt.Fprintf(w, "  T%d (%s) waits for:", i, s.ConsumerNames[i])
		succs := g.Successors(i)
		if len(succs) == 0 {
			fmt.Fprint(w, " none")
		}
		for _, j := range succs {
			fmt.Fprintf(w, " T%d (%s)", j, s.ConsumerNames[j])
		}
		fmt.Fprintln(w)
	}
}

// renderCycle formats a deadlock witness as A -> B -> ... -> A.
func renderCycle(s *banker.State, cycle []int) string {
	parts := make([]string, 0, len(cycle)+1)
	for _, i := range cycle {
		parts = append(parts, s.ConsumerNames[i])
	}
	parts = append(parts, s.ConsumerNames[cycle[0]])
	return strings.Join(parts, " -> ")
}

// renderSafeSequence formats a Banker's completion order.
func renderSafeSequence(s *banker.State, seq []int) string {
	parts := make([]string, len(seq))
	for k, i := range seq {
		parts[k] = s.ConsumerNames[i]
	}
	return strings.Join(parts, " -> ")
}
