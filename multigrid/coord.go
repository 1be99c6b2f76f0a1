package multigrid

import (
	"strconv"
	"strings"
)

// Coord is a per-axis position, one entry per grid axis.
type Coord []int

// Equal reports whether c and other hold the same positions.
func (c Coord) Equal(other Coord) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of c.
func (c Coord) Clone() Coord {
	out := make(Coord, len(c))
	copy(out, c)

	return out
}

// String renders the coordinate as "{1;0;2;3}".
func (c Coord) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, v := range c {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte('}')

	return sb.String()
}

// Hasher maps a coordinate to a bucket key for the hashed reverse table.
// A Hasher must be deterministic: equal coordinates must hash equally.
type Hasher func(Coord) uint64

// PolyHash is the default Hasher: h = h*31 + c[i] over all axes.
func PolyHash(c Coord) uint64 {
	var h uint64
	for _, v := range c {
		h = h*31 + uint64(v)
	}

	return h
}
