// Package scenario constructs fully populated banker.State values: the
// canonical sample, seeded random layouts, and declarative YAML files. The
// engine never builds its own scenarios; everything enters through here.
package scenario

import (
	"fmt"
	"math/rand"

	"github.com/railway-sim/railway-sim/banker"
)

// Sample returns the canonical 5-train / 5-track scenario. It is safe under
// the Banker's check (a completion order covering all five trains exists)
// while two of the tracks are fully allocated.
func Sample() *banker.State {
	s, err := banker.NewState(5, 5)
	if err != nil {
		// 5x5 is statically within bounds.
		panic(err)
	}
	copy(s.ConsumerNames, []string{"A", "B", "C", "D", "E"})
	copy(s.ResourceNames, []string{"T0", "T1", "T2", "T3", "T4"})
	copy(s.Available, []int{1, 1, 0, 1, 0})

	maximum := [][]int{
		{1, 1, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 1},
		{0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
	}
	allocation := [][]int{
		{0, 0, 0, 0, 0},
		{0, 1, 0, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 0, 0, 0},
		{1, 0, 0, 0, 0},
	}
	for i := range maximum {
		copy(s.Maximum[i], maximum[i])
		copy(s.Allocation[i], allocation[i])
	}
	s.RecomputeNeed()
	return s
}

// RandomConfig groups parameters for Random scenario generation.
type RandomConfig struct {
	Consumers int   // train count (1..banker.MaxConsumers)
	Resources int   // track count (1..banker.MaxResources)
	MaxUnits  int   // max units per track in the initial free pool (>= 1)
	Seed      int64 // RNG seed; same seed + config => identical scenario
}

// Random generates a seeded random scenario with multi-unit resources.
// The result always satisfies the engine's invariants: Allocation <= Maximum
// everywhere (so Need >= 0), and conservation holds by construction since
// Available is set to whatever the random allocation left unclaimed.
// Identical configs produce identical scenarios.
func Random(cfg RandomConfig) (*banker.State, error) {
	if cfg.MaxUnits < 1 {
		return nil, fmt.Errorf("max units per track must be >= 1, got %d", cfg.MaxUnits)
	}
	s, err := banker.NewState(cfg.Consumers, cfg.Resources)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	for j := 0; j < cfg.Resources; j++ {
		free := 1 + rng.Intn(cfg.MaxUnits)

		// Hand out a random share of a generous per-track pool; whatever
		// was not handed out simply never existed. The track's capacity is
		// fixed from here on as free + handed out.
		pool := free + cfg.Consumers*cfg.MaxUnits
		remaining := rng.Intn(pool + 1)
		for i := 0; i < cfg.Consumers; i++ {
			take := 0
			if remaining > 0 {
				take = rng.Intn(remaining + 1)
			}
			s.Allocation[i][j] = take
			remaining -= take
		}
		s.Available[j] = free
	}

	// Maximum = Allocation + random headroom, keeping Need non-negative.
	for i := 0; i < cfg.Consumers; i++ {
		for j := 0; j < cfg.Resources; j++ {
			s.Maximum[i][j] = s.Allocation[i][j] + rng.Intn(cfg.MaxUnits+1)
		}
	}
	s.RecomputeNeed()
	return s, nil
}
