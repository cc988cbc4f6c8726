package banker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// adjacency builds a WaitForGraph directly from edge pairs, bypassing state
// derivation, to exercise the detector on arbitrary shapes.
func adjacency(n int, edges [][2]int) *WaitForGraph {
	g := &WaitForGraph{N: n, Adj: make([][]bool, n)}
	for i := range g.Adj {
		g.Adj[i] = make([]bool, n)
	}
	for _, e := range edges {
		g.Adj[e[0]][e[1]] = true
	}
	return g
}

func TestFindCycle_BidirectionalWait_ReturnsBothTrains(t *testing.T) {
	// GIVEN two trains each holding the track the other needs
	s := deadlockedState(t)
	g := BuildWaitForGraph(s)
	require.True(t, g.HasEdge(0, 1))
	require.True(t, g.HasEdge(1, 0))

	// WHEN the detector runs
	cycle, found := FindCycle(g)

	// THEN both indices form the witness, in wait order
	require.True(t, found)
	assert.Equal(t, []int{0, 1}, cycle)
}

func TestFindCycle_AcyclicGraph_NoWitness(t *testing.T) {
	g := adjacency(4, [][2]int{{0, 1}, {1, 2}, {0, 3}, {3, 2}})
	cycle, found := FindCycle(g)
	assert.False(t, found)
	assert.Nil(t, cycle)
}

func TestFindCycle_EmptyGraph_NoWitness(t *testing.T) {
	_, found := FindCycle(adjacency(3, nil))
	assert.False(t, found)
}

func TestFindCycle_SequenceIsInWaitOrder(t *testing.T) {
	// GIVEN a 3-cycle reached through a lead-in chain: 0 -> 1 -> 2 -> 3 -> 1
	g := adjacency(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 1}})

	cycle, found := FindCycle(g)

	// THEN the sequence starts at the back edge's target and every member
	// waits on its successor, the last wrapping to the first; the lead-in
	// node 0 is not part of the witness
	require.True(t, found)
	assert.Equal(t, []int{1, 2, 3}, cycle)
	for k, u := range cycle {
		v := cycle[(k+1)%len(cycle)]
		assert.True(t, g.HasEdge(u, v), "cycle member %d must wait on %d", u, v)
	}
}

func TestFindCycle_CycleInLaterComponent(t *testing.T) {
	// GIVEN an acyclic component on 0..1 and a 2-cycle on 3..4
	g := adjacency(5, [][2]int{{0, 1}, {3, 4}, {4, 3}})

	cycle, found := FindCycle(g)

	require.True(t, found)
	assert.Equal(t, []int{3, 4}, cycle)
}

func TestFindCycle_DeepChainWithBackEdge(t *testing.T) {
	// A chain covering every node with a back edge to the start; exercises
	// the explicit-stack traversal at the maximum depth the engine allows.
	n := MaxConsumers
	edges := make([][2]int, 0, n)
	for i := 0; i < n-1; i++ {
		edges = append(edges, [2]int{i, i + 1})
	}
	edges = append(edges, [2]int{n - 1, 0})
	g := adjacency(n, edges)

	cycle, found := FindCycle(g)

	require.True(t, found)
	require.Len(t, cycle, n)
	assert.Equal(t, 0, cycle[0])
}

func TestFindCycle_IndependentOfSafety(t *testing.T) {
	// The canonical scenario is cycle-free yet unsafe: the two checks are
	// complementary, not equivalent.
	s := railwayState(t)

	_, found := FindCycle(BuildWaitForGraph(s))
	safe, _ := IsSafe(s)

	assert.False(t, found)
	assert.False(t, safe)
}
