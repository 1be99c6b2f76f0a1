// Package gridgraph defines core types and options
// for the gridgraph subpackage of github.com/katalvlaran/coin.
package gridgraph

import "github.com/katalvlaran/coin/multigrid"

// Connectivity selects neighbor connectivity: along axes only (ConnFace) or
// including every diagonal (ConnFull).
type Connectivity int

const (
	// ConnFace uses the 2·D neighbors that differ by one step along a single axis.
	ConnFace Connectivity = iota
	// ConnFull uses all 3^D−1 neighbors within one step on every axis.
	ConnFull
)

// 2D names: N, E, S, W and the same plus diagonals.
const (
	Conn4 = ConnFace
	Conn8 = ConnFull
)

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered "land".
	LandThreshold int
	// Conn chooses face or full connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// LandThreshold=1 (values ≥1 are land), Conn=ConnFace.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold: 1,
		Conn:          ConnFace,
	}
}

// GridGraph treats an integer grid as a graph. The wrapped grid is shared,
// not copied; cell values may change between analyses but the shape cannot.
// offsets is precomputed from Conn and the grid rank.
type GridGraph struct {
	grid          *multigrid.Grid[int]
	Conn          Connectivity
	LandThreshold int
	offsets       [][]int
}
