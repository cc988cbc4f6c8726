// Package dot renders a banker.State and its wait-for graph as a Graphviz
// digraph. Read-only collaborator: it never mutates the state it draws.
package dot

import (
	"fmt"
	"io"

	"github.com/railway-sim/railway-sim/banker"
)

// Export writes the resource-allocation graph and wait-for relation of s to
// w in DOT format. Trains render as circles and tracks as boxes annotated
// with their free unit count. Three edge kinds:
//
//   - track -> train, solid, labeled with held units (allocation)
//   - train -> track, dashed, labeled with remaining need (pending demand)
//   - train -> train, red (the wait-for relation from g)
//
// Render with: dot -Tpng out.dot -o out.png
func Export(w io.Writer, s *banker.State, g *banker.WaitForGraph) error {
	var err error
	printf := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	printf("digraph RailwayRAG {\n")
	printf("\trankdir=LR;\n")

	for i := 0; i < s.NumConsumers(); i++ {
		printf("\tT%d [shape=circle,label=%q];\n", i, s.ConsumerNames[i])
	}
	for j := 0; j < s.NumResources(); j++ {
		printf("\tR%d [shape=box,label=\"%s\\n(av:%d)\"];\n", j, s.ResourceNames[j], s.Available[j])
	}

	for i := 0; i < s.NumConsumers(); i++ {
		for j := 0; j < s.NumResources(); j++ {
			if s.Allocation[i][j] > 0 {
				printf("\tR%d -> T%d [label=\"%d\"];\n", j, i, s.Allocation[i][j])
			}
			if s.Need[i][j] > 0 {
				printf("\tT%d -> R%d [label=\"need:%d\", style=dashed];\n", i, j, s.Need[i][j])
			}
		}
	}

	for i := 0; i < g.N; i++ {
		for j := 0; j < g.N; j++ {
			if g.Adj[i][j] {
				printf("\tT%d -> T%d [color=red];\n", i, j)
			}
		}
	}

	printf("}\n")
	return err
}
