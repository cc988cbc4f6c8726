package banker

import "testing"

// railwayState builds the canonical 5-train / 5-track fixture: two tracks
// fully exhausted, one wait edge (A on C), and a demand pattern that cannot
// complete because track 4 has zero total units. Cycle-free yet unsafe.
func railwayState(t *testing.T) *State {
	t.Helper()
	s, err := NewState(5, 5)
	if err != nil {
		t.Fatalf("NewState(5, 5): %v", err)
	}
	copy(s.ConsumerNames, []string{"A", "B", "C", "D", "E"})
	copy(s.ResourceNames, []string{"T0", "T1", "T2", "T3", "T4"})
	copy(s.Available, []int{1, 1, 0, 1, 0})
	fillMatrix(s.Maximum, [][]int{
		{1, 1, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 1},
		{0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
	})
	fillMatrix(s.Allocation, [][]int{
		{0, 0, 0, 0, 0},
		{0, 1, 0, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 0, 0, 0},
		{1, 0, 0, 0, 0},
	})
	s.RecomputeNeed()
	return s
}

// safeRailwayState is railwayState with one free unit on track 4, which is
// enough for every train to finish: safe with sequence B, C, A, D, E.
func safeRailwayState(t *testing.T) *State {
	t.Helper()
	s := railwayState(t)
	s.Available[4] = 1
	return s
}

// deadlockedState builds a 2x2 bidirectional wait: each train holds the one
// unit the other needs, both tracks exhausted. The wait-for graph is the
// 2-cycle 0 <-> 1.
func deadlockedState(t *testing.T) *State {
	t.Helper()
	s, err := NewState(2, 2)
	if err != nil {
		t.Fatalf("NewState(2, 2): %v", err)
	}
	copy(s.Available, []int{0, 0})
	fillMatrix(s.Maximum, [][]int{
		{1, 1},
		{1, 1},
	})
	fillMatrix(s.Allocation, [][]int{
		{1, 0},
		{0, 1},
	})
	s.RecomputeNeed()
	return s
}

func fillMatrix(dst [][]int, src [][]int) {
	for i := range src {
		copy(dst[i], src[i])
	}
}

// assertConserved fails the test if any resource's total (available plus
// allocated) differs from want.
func assertConserved(t *testing.T, s *State, want []int) {
	t.Helper()
	for j := range want {
		if got := s.TotalUnits(j); got != want[j] {
			t.Errorf("resource %d total: got %d, want %d", j, got, want[j])
		}
	}
}

// totals snapshots every resource's total capacity.
func totals(s *State) []int {
	out := make([]int, s.NumResources())
	for j := range out {
		out[j] = s.TotalUnits(j)
	}
	return out
}
