package banker

// DFS node coloring. Gray marks nodes on the current exploration path; a
// wait edge into a gray node is a back edge and witnesses a cycle.
const (
	white = iota // unvisited
	gray         // on the current path
	black        // fully explored
)

// FindCycle searches g for a cycle of mutual waiting, the witness of a
// deadlock: every consumer on a returned cycle is permanently blocked under
// the current allocation.
//
// Traversal is depth-first from each unexplored node in ascending index
// order, using an explicit frame stack rather than recursion so depth is
// bounded by the consumer count regardless of stack limits. On-path marking
// is an auxiliary per-node color popped when a node's exploration unwinds.
//
// The returned sequence is in actual wait order: it starts at the back
// edge's target and each consumer waits on its successor, the last waiting
// on the first. No reversal is needed for display. Returns (nil, false)
// when every node has been explored without finding a back edge.
//
// FindCycle is deliberately independent of IsSafe: a state can be
// cycle-free yet unsafe when no resource is currently exhausted but the
// declared demand still cannot complete.
func FindCycle(g *WaitForGraph) ([]int, bool) {
	color := make([]int, g.N)

	// frame tracks the next successor index to probe for a path node.
	type frame struct {
		node int
		next int
	}

	for start := 0; start < g.N; start++ {
		if color[start] != white {
			continue
		}
		stack := []frame{{node: start}}
		path := []int{start}
		color[start] = gray

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			descended := false
			for top.next < g.N {
				v := top.next
				top.next++
				if !g.Adj[top.node][v] {
					continue
				}
				switch color[v] {
				case white:
					color[v] = gray
					path = append(path, v)
					stack = append(stack, frame{node: v})
					descended = true
				case gray:
					// Back edge into the current path: the cycle is the
					// path suffix from v, already in wait order.
					for idx, node := range path {
						if node == v {
							return append([]int(nil), path[idx:]...), true
						}
					}
				}
				if descended {
					break
				}
			}
			if !descended {
				color[top.node] = black
				stack = stack[:len(stack)-1]
				path = path[:len(path)-1]
			}
		}
	}
	return nil, false
}
