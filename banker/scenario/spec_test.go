package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSpec(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_WellFormedSpec(t *testing.T) {
	path := writeSpec(t, `
trains: [X, Y]
tracks: [r0, r1]
available: [0, 0]
maximum:
  - [1, 1]
  - [1, 1]
allocation:
  - [1, 0]
  - [0, 1]
`)

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"X", "Y"}, s.ConsumerNames)
	assert.Equal(t, []string{"r0", "r1"}, s.ResourceNames)
	assert.Equal(t, 1, s.Allocation[0][0])
	assert.Equal(t, []int{0, 1}, s.Need[0], "need derived, never read from the file")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeSpec(t, "trains: [A\n  broken")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestBuild_RejectsShapeMismatches(t *testing.T) {
	cases := map[string]Spec{
		"no trains": {
			Tracks: []string{"r0"}, Available: []int{0},
			Maximum: [][]int{}, Allocation: [][]int{},
		},
		"available too short": {
			Trains: []string{"A"}, Tracks: []string{"r0", "r1"},
			Available: []int{0},
			Maximum:   [][]int{{1, 1}}, Allocation: [][]int{{0, 0}},
		},
		"missing maximum row": {
			Trains: []string{"A", "B"}, Tracks: []string{"r0"},
			Available: []int{1},
			Maximum:   [][]int{{1}}, Allocation: [][]int{{0}, {0}},
		},
		"ragged allocation row": {
			Trains: []string{"A"}, Tracks: []string{"r0", "r1"},
			Available: []int{1, 1},
			Maximum:   [][]int{{1, 1}}, Allocation: [][]int{{0}},
		},
	}
	for name, spec := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := spec.Build()
			assert.Error(t, err)
		})
	}
}

func TestBuild_RejectsAllocationAboveMaximum(t *testing.T) {
	spec := Spec{
		Trains: []string{"A"}, Tracks: []string{"r0"},
		Available: []int{0},
		Maximum:   [][]int{{1}}, Allocation: [][]int{{2}},
	}
	_, err := spec.Build()
	assert.Error(t, err, "negative need must be rejected at load time")
}
