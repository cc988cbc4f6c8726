package banker

// IsSafe runs the classical Banker's safety algorithm over s and reports
// whether the state is safe, together with the safe completion sequence.
//
// The algorithm keeps a work vector (copied from Available) and a finished
// flag per consumer, then repeatedly scans unfinished consumers in ascending
// index order. A consumer whose whole Need row fits under work is marked
// finished, its Allocation row is folded back into work, and its index is
// appended to the sequence; the scan then restarts from index 0. Ties are
// therefore broken lowest-index-first and that ordering is observable in the
// returned sequence.
//
// The fixed point halts when every consumer is finished (safe; the sequence
// covers all indices) or a full scan finds no satisfiable consumer (unsafe;
// the partial sequence is meaningless and must be discarded). s itself is
// never mutated. O(n^2 * m) worst case.
func IsSafe(s *State) (bool, []int) {
	n, m := s.NumConsumers(), s.NumResources()

	work := append([]int(nil), s.Available...)
	finished := make([]bool, n)
	sequence := make([]int, 0, n)

	for len(sequence) < n {
		found := false
		for i := 0; i < n; i++ {
			if finished[i] || !rowFits(s.Need[i], work) {
				continue
			}
			// Simulate i running to completion and releasing its holdings.
			for j := 0; j < m; j++ {
				work[j] += s.Allocation[i][j]
			}
			finished[i] = true
			sequence = append(sequence, i)
			found = true
			break
		}
		if !found {
			return false, sequence
		}
	}
	return true, sequence
}

// rowFits reports whether need[j] <= work[j] for every resource j.
func rowFits(need, work []int) bool {
	for j, nd := range need {
		if nd > work[j] {
			return false
		}
	}
	return true
}
