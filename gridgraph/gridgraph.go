// Package gridgraph provides utilities to treat a grid of integer cell values
// as a graph. It supports:
//
//   - Face or full connectivity in any rank (Conn4 / Conn8 in 2D)
//   - Identification of connected components of “land” cells
//   - Shortest-path expansions between components
//
// Cells with value < LandThreshold are considered “water”; cells with value ≥ LandThreshold are “land”.
package gridgraph

import (
	"github.com/katalvlaran/coin/multigrid"
)

// NewGridGraph wraps an existing grid.
// Returns ErrNilGrid if g is nil.
// Complexity: O(3^D × D) to precompute neighbor offsets.
func NewGridGraph(g *multigrid.Grid[int], opts GridOptions) (*GridGraph, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	return &GridGraph{
		grid:          g,
		Conn:          opts.Conn,
		LandThreshold: opts.LandThreshold,
		offsets:       neighborOffsets(g.Rank(), opts.Conn),
	}, nil
}

// From2D builds a rank-2 grid (extents rows × cols) from a non-empty,
// rectangular 2D slice and wraps it with default options and the given
// connectivity. The input is copied.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	flat := make([]int, 0, h*w)
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		flat = append(flat, row...)
	}
	g, err := multigrid.NewWithValues([]int{h, w}, flat)
	if err != nil {
		return nil, err
	}
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(g, opts)
}

// neighborOffsets enumerates step vectors in lexicographic order.
// ConnFace keeps only vectors with exactly one non-zero axis.
func neighborOffsets(rank int, conn Connectivity) [][]int {
	var out [][]int
	cur := make([]int, rank)
	var walk func(axis, nonZero int)
	walk = func(axis, nonZero int) {
		if axis == rank {
			if nonZero == 0 || (conn == ConnFace && nonZero != 1) {
				return
			}
			off := make([]int, rank)
			copy(off, cur)
			out = append(out, off)
			return
		}
		for _, d := range [3]int{-1, 0, 1} {
			cur[axis] = d
			nz := nonZero
			if d != 0 {
				nz++
			}
			walk(axis+1, nz)
		}
	}
	walk(0, 0)

	return out
}

// Grid returns the wrapped grid.
func (gg *GridGraph) Grid() *multigrid.Grid[int] { return gg.grid }

// NeighborOffsets returns the precomputed step vectors.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][]int {
	return gg.offsets
}

// IsLand reports whether cell idx holds a value ≥ LandThreshold.
// Out-of-range indices are not land.
func (gg *GridGraph) IsLand(idx int) bool {
	v, err := gg.grid.At(idx)
	return err == nil && v >= gg.LandThreshold
}

// Coordinate converts a flat index to its grid coordinate.
// It returns nil for an out-of-range index.
func (gg *GridGraph) Coordinate(idx int) multigrid.Coord {
	c, err := gg.grid.CoordinateOf(idx)
	if err != nil {
		return nil
	}

	return c
}

// Neighbors returns the flat indices of in-bounds neighbors of idx, in offset order.
// Complexity: O(d×D).
func (gg *GridGraph) Neighbors(idx int) []int {
	c := gg.Coordinate(idx)
	if c == nil {
		return nil
	}
	out := make([]int, 0, len(gg.offsets))
	return gg.appendNeighbors(out, c)
}

// appendNeighbors appends the neighbors of coordinate c to dst.
func (gg *GridGraph) appendNeighbors(dst []int, c multigrid.Coord) []int {
	next := make(multigrid.Coord, len(c))
	for _, off := range gg.offsets {
		for axis := range c {
			next[axis] = c[axis] + off[axis]
		}
		if idx, err := gg.grid.IndexOf(next); err == nil {
			dst = append(dst, idx)
		}
	}

	return dst
}
