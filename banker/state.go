package banker

import "fmt"

// Upper bounds on a State's dimensions. Construction outside these limits
// fails with ErrBadDimensions rather than relying on memory limits.
const (
	MaxConsumers = 32
	MaxResources = 64
)

// State is the resource-allocation ledger: a fixed population of consumers
// (trains) sharing finite pools of indivisible resource units (track
// sections). It is the single mutable entity of the engine; every other
// component reads or mutates a State passed by reference.
//
// Invariants maintained by the engine:
//   - Need[i][j] == Maximum[i][j] - Allocation[i][j] >= 0 for all i, j
//   - Available[j] + sum_i Allocation[i][j] is constant for each j
//     (units move between available and allocated, never appear or vanish)
//
// A terminated consumer keeps its index; its rows are zeroed and its name
// tagged, so indices stay stable for the state's lifetime.
type State struct {
	ConsumerNames []string
	ResourceNames []string

	Available  []int   // unallocated units per resource
	Maximum    [][]int // declared upper bound per consumer/resource
	Allocation [][]int // units currently held per consumer/resource
	Need       [][]int // Maximum - Allocation, kept derived
}

// NewState creates an all-zero State with default names ("Train0".., "Track0"..).
// Counts must satisfy 1 <= consumers <= MaxConsumers and
// 1 <= resources <= MaxResources; otherwise ErrBadDimensions is returned and
// no state is produced.
func NewState(consumers, resources int) (*State, error) {
	if consumers < 1 || consumers > MaxConsumers {
		return nil, fmt.Errorf("%w: %d consumers (want 1..%d)", ErrBadDimensions, consumers, MaxConsumers)
	}
	if resources < 1 || resources > MaxResources {
		return nil, fmt.Errorf("%w: %d resources (want 1..%d)", ErrBadDimensions, resources, MaxResources)
	}
	s := &State{
		ConsumerNames: make([]string, consumers),
		ResourceNames: make([]string, resources),
		Available:     make([]int, resources),
		Maximum:       make([][]int, consumers),
		Allocation:    make([][]int, consumers),
		Need:          make([][]int, consumers),
	}
	for i := 0; i < consumers; i++ {
		s.ConsumerNames[i] = fmt.Sprintf("Train%d", i)
		s.Maximum[i] = make([]int, resources)
		s.Allocation[i] = make([]int, resources)
		s.Need[i] = make([]int, resources)
	}
	for j := 0; j < resources; j++ {
		s.ResourceNames[j] = fmt.Sprintf("Track%d", j)
	}
	return s, nil
}

// NumConsumers returns the fixed consumer count.
func (s *State) NumConsumers() int { return len(s.Maximum) }

// NumResources returns the fixed resource count.
func (s *State) NumResources() int { return len(s.Available) }

// RecomputeNeed rederives Need = Maximum - Allocation for every cell.
// Pure and total; callers that mutate Maximum or Allocation directly
// (scenario builders, Preempt) must call it before handing the state back
// to the algorithms.
func (s *State) RecomputeNeed() {
	for i := range s.Maximum {
		for j := range s.Maximum[i] {
			s.Need[i][j] = s.Maximum[i][j] - s.Allocation[i][j]
		}
	}
}

// Clone returns a deep copy sharing no memory with s.
func (s *State) Clone() *State {
	c := &State{
		ConsumerNames: append([]string(nil), s.ConsumerNames...),
		ResourceNames: append([]string(nil), s.ResourceNames...),
		Available:     append([]int(nil), s.Available...),
		Maximum:       cloneMatrix(s.Maximum),
		Allocation:    cloneMatrix(s.Allocation),
		Need:          cloneMatrix(s.Need),
	}
	return c
}

func cloneMatrix(m [][]int) [][]int {
	out := make([][]int, len(m))
	for i, row := range m {
		out[i] = append([]int(nil), row...)
	}
	return out
}

// Equal reports whether two states agree in every field, names included.
// Used by rollback and checkpoint round-trip verification.
func (s *State) Equal(o *State) bool {
	if s.NumConsumers() != o.NumConsumers() || s.NumResources() != o.NumResources() {
		return false
	}
	for i := range s.ConsumerNames {
		if s.ConsumerNames[i] != o.ConsumerNames[i] {
			return false
		}
	}
	for j := range s.ResourceNames {
		if s.ResourceNames[j] != o.ResourceNames[j] {
			return false
		}
	}
	for j := range s.Available {
		if s.Available[j] != o.Available[j] {
			return false
		}
	}
	return equalMatrix(s.Maximum, o.Maximum) &&
		equalMatrix(s.Allocation, o.Allocation) &&
		equalMatrix(s.Need, o.Need)
}

func equalMatrix(a, b [][]int) bool {
	for i := range a {
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}

// TotalUnits returns resource j's total capacity: available plus allocated.
// Constant across every engine operation (the conservation invariant).
func (s *State) TotalUnits(j int) int {
	total := s.Available[j]
	for i := range s.Allocation {
		total += s.Allocation[i][j]
	}
	return total
}

// Validate checks structural soundness of a caller-populated state: matrix
// shapes match the declared dimensions, all counts are non-negative, and no
// allocation exceeds its declared maximum (which would make Need negative).
// Scenario loaders call this before releasing a state to the engine; a
// violation is a caller bug and is rejected, never clamped.
func (s *State) Validate() error {
	n, m := s.NumConsumers(), s.NumResources()
	if n < 1 || n > MaxConsumers || m < 1 || m > MaxResources {
		return fmt.Errorf("%w: %d consumers, %d resources", ErrBadDimensions, n, m)
	}
	if len(s.ConsumerNames) != n || len(s.Allocation) != n || len(s.Need) != n {
		return fmt.Errorf("%w: ragged consumer rows", ErrBadDimensions)
	}
	if len(s.ResourceNames) != m || len(s.Available) != m {
		return fmt.Errorf("%w: ragged resource columns", ErrBadDimensions)
	}
	for j, av := range s.Available {
		if av < 0 {
			return fmt.Errorf("negative available[%d] = %d", j, av)
		}
	}
	for i := 0; i < n; i++ {
		if len(s.Maximum[i]) != m || len(s.Allocation[i]) != m || len(s.Need[i]) != m {
			return fmt.Errorf("%w: row %d has wrong width", ErrBadDimensions, i)
		}
		for j := 0; j < m; j++ {
			if s.Maximum[i][j] < 0 || s.Allocation[i][j] < 0 {
				return fmt.Errorf("negative entry at consumer %d, resource %d", i, j)
			}
			if s.Allocation[i][j] > s.Maximum[i][j] {
				return fmt.Errorf("allocation %d exceeds maximum %d at consumer %d, resource %d",
					s.Allocation[i][j], s.Maximum[i][j], i, j)
			}
		}
	}
	return nil
}

// checkConsumer validates a consumer index against the state's dimensions.
func (s *State) checkConsumer(id int) error {
	if id < 0 || id >= s.NumConsumers() {
		return fmt.Errorf("%w: consumer %d (have %d)", ErrIndexOutOfRange, id, s.NumConsumers())
	}
	return nil
}
