package gridfile_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/coin/gridfile"
	"github.com/katalvlaran/coin/multigrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse_FillScenario builds the 2×2×3×5 half-step grid from YAML.
func TestParse_FillScenario(t *testing.T) {
	def, err := gridfile.Parse([]byte(`
extents: [2, 2, 3, 5]
fill: {start: 0.5, step: 0.5}
`))
	require.NoError(t, err)

	g, err := def.Build()
	require.NoError(t, err)
	require.Equal(t, 60, g.Size())

	v, err := g.AtCoord(multigrid.Coord{1, 0, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 22.0, v)
}

// TestParse_UniformValues builds a hashed uniform grid from literal values.
func TestParse_UniformValues(t *testing.T) {
	def, err := gridfile.Parse([]byte(`
rank: 2
extent: 2
values: [1, 2, 3, 4]
hashed: true
lazy: true
`))
	require.NoError(t, err)
	require.Len(t, def.Options(), 2)

	g, err := def.Build()
	require.NoError(t, err)
	require.True(t, g.Hashed())
	require.Equal(t, []float64{1, 2, 3, 4}, g.Values())

	c, err := g.CoordinateOf(2)
	require.NoError(t, err)
	require.Equal(t, multigrid.Coord{1, 0}, c)
}

// TestParse_ZeroValued builds a zero grid when no values are given.
func TestParse_ZeroValued(t *testing.T) {
	def, err := gridfile.Parse([]byte("extents: [3]\n"))
	require.NoError(t, err)
	g, err := def.Build()
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 0}, g.Values())
}

// TestParse_Errors covers validation and decoding failures.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		err  error
	}{
		{"Empty", "", gridfile.ErrEmptyDefinition},
		{"NoShape", "values: [1]\n", gridfile.ErrNoShape},
		{"BothShapes", "extents: [2]\nrank: 1\nextent: 2\n", gridfile.ErrConflictingShape},
		{"BothValues", "extents: [2]\nvalues: [1, 2]\nfill: {start: 0, step: 1}\n", gridfile.ErrConflictingValues},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridfile.Parse([]byte(tc.doc))
			require.ErrorIs(t, err, tc.err)
		})
	}

	_, err := gridfile.Parse([]byte("extents: [2]\nextnets: [3]\n"))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "extnets"), "unknown field should be named: %v", err)
}

// TestBuild_ShapeErrors surfaces multigrid sentinels from Build.
func TestBuild_ShapeErrors(t *testing.T) {
	def, err := gridfile.Parse([]byte("extents: [2, 2]\nvalues: [1, 2, 3]\n"))
	require.NoError(t, err)
	_, err = def.Build()
	require.ErrorIs(t, err, multigrid.ErrShapeMismatch)

	def, err = gridfile.Parse([]byte("extents: [2, -1]\n"))
	require.NoError(t, err)
	_, err = def.Build()
	require.ErrorIs(t, err, multigrid.ErrInvalidExtent)

	def, err = gridfile.Parse([]byte("rank: 2\n"))
	require.NoError(t, err)
	_, err = def.Build()
	require.ErrorIs(t, err, multigrid.ErrInvalidExtent)
}

// TestLoadFile reads a definition from disk.
func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rank: 3\nextent: 2\n"), 0o600))

	def, err := gridfile.LoadFile(path)
	require.NoError(t, err)
	shape, err := def.Shape()
	require.NoError(t, err)
	require.Equal(t, []int{2, 2, 2}, shape.Extents())

	_, err = gridfile.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
