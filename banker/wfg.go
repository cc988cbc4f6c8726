package banker

// WaitForGraph is the derived waiting relation over consumer indices: an
// edge i -> j means consumer i is blocked on some resource wholly held (in
// part) by consumer j. Transient: rebuilt on demand from a State snapshot,
// never persisted. Multiple blocking reasons collapse to a single boolean
// edge.
type WaitForGraph struct {
	N   int
	Adj [][]bool
}

// BuildWaitForGraph derives the wait-for graph from s.
//
// Consumer i is a candidate waiter if any Need[i][r] > 0. For each such
// resource r, i is actually blocked only when Available[r] == 0 — free units
// mean i simply has not asked yet (declared future need, not present
// blocking). When i is blocked on r, an edge i -> k is added for every other
// consumer k holding units of r.
func BuildWaitForGraph(s *State) *WaitForGraph {
	n, m := s.NumConsumers(), s.NumResources()
	g := &WaitForGraph{N: n, Adj: make([][]bool, n)}
	for i := range g.Adj {
		g.Adj[i] = make([]bool, n)
	}

	for i := 0; i < n; i++ {
		for r := 0; r < m; r++ {
			if s.Need[i][r] <= 0 || s.Available[r] > 0 {
				continue
			}
			for k := 0; k < n; k++ {
				if k != i && s.Allocation[k][r] > 0 {
					g.Adj[i][k] = true
				}
			}
		}
	}
	return g
}

// HasEdge reports whether consumer i currently waits on consumer j.
func (g *WaitForGraph) HasEdge(i, j int) bool {
	return i >= 0 && i < g.N && j >= 0 && j < g.N && g.Adj[i][j]
}

// Successors returns the consumers that i waits on, in ascending index order.
func (g *WaitForGraph) Successors(i int) []int {
	var out []int
	for j := 0; j < g.N; j++ {
		if g.Adj[i][j] {
			out = append(out, j)
		}
	}
	return out
}
