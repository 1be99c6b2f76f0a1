package multigrid_test

import (
	"testing"

	"github.com/katalvlaran/coin/multigrid"
	"github.com/stretchr/testify/assert"
)

func TestCoord_String(t *testing.T) {
	assert.Equal(t, "{1;0;2;3}", multigrid.Coord{1, 0, 2, 3}.String())
	assert.Equal(t, "{7}", multigrid.Coord{7}.String())
	assert.Equal(t, "{}", multigrid.Coord{}.String())
}

func TestCoord_EqualClone(t *testing.T) {
	c := multigrid.Coord{1, 2}
	d := c.Clone()
	assert.True(t, c.Equal(d))

	d[0] = 5
	assert.False(t, c.Equal(d))
	assert.Equal(t, multigrid.Coord{1, 2}, c)
	assert.False(t, c.Equal(multigrid.Coord{1, 2, 0}))
}

func TestPolyHash(t *testing.T) {
	assert.Equal(t, uint64(0), multigrid.PolyHash(nil))
	assert.Equal(t, uint64(1*31*31+2*31+3), multigrid.PolyHash(multigrid.Coord{1, 2, 3}))
	assert.NotEqual(t, multigrid.PolyHash(multigrid.Coord{0, 1}), multigrid.PolyHash(multigrid.Coord{1, 0}))
}
