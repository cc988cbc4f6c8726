package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/railway-sim/railway-sim/banker"
)

// Spec is a declarative scenario file. Need is never specified: it is
// derived from maximum and allocation after construction.
//
// Example:
//
//	trains: [A, B]
//	tracks: [T0, T1]
//	available: [0, 0]
//	maximum:
//	  - [1, 1]
//	  - [1, 1]
//	allocation:
//	  - [1, 0]
//	  - [0, 1]
type Spec struct {
	Trains     []string `yaml:"trains"`
	Tracks     []string `yaml:"tracks"`
	Available  []int    `yaml:"available"`
	Maximum    [][]int  `yaml:"maximum"`
	Allocation [][]int  `yaml:"allocation"`
}

// Load reads and builds a scenario from a YAML file.
func Load(path string) (*banker.State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing scenario file: %w", err)
	}
	return spec.Build()
}

// Build validates the spec and constructs the state. Every structural
// violation the engine would reject (counts out of bounds, ragged matrices,
// allocation above maximum, negative entries) is reported here, before the
// engine ever sees the state.
func (sp *Spec) Build() (*banker.State, error) {
	n, m := len(sp.Trains), len(sp.Tracks)
	s, err := banker.NewState(n, m)
	if err != nil {
		return nil, err
	}
	if len(sp.Available) != m {
		return nil, fmt.Errorf("available has %d entries, want %d", len(sp.Available), m)
	}
	if len(sp.Maximum) != n || len(sp.Allocation) != n {
		return nil, fmt.Errorf("maximum/allocation must have one row per train (%d)", n)
	}
	for i := 0; i < n; i++ {
		if len(sp.Maximum[i]) != m {
			return nil, fmt.Errorf("maximum row %d has %d entries, want %d", i, len(sp.Maximum[i]), m)
		}
		if len(sp.Allocation[i]) != m {
			return nil, fmt.Errorf("allocation row %d has %d entries, want %d", i, len(sp.Allocation[i]), m)
		}
	}

	copy(s.ConsumerNames, sp.Trains)
	copy(s.ResourceNames, sp.Tracks)
	copy(s.Available, sp.Available)
	for i := 0; i < n; i++ {
		copy(s.Maximum[i], sp.Maximum[i])
		copy(s.Allocation[i], sp.Allocation[i])
	}
	s.RecomputeNeed()

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return s, nil
}
