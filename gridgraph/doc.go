// Package gridgraph treats a multigrid.Grid[int] of any rank as a graph,
// enabling component analysis and minimal-cost “island” expansions.
//
// What:
//
//   - GridGraph wraps a grid with a tunable LandThreshold.
//   - Identifies connected components (“islands”) of cells with value ≥ LandThreshold.
//   - Computes minimal conversions (0-1 BFS) to connect two island sets.
//   - Works on 2D maps (From2D) as well as 3D voxel volumes or higher ranks.
//
// Why:
//
//   - Game maps: contiguous land detection, optimal bridging.
//   - Volumes: connected regions in voxel grids.
//   - Topology analysis: count lakes, islands, and heterogeneous regions.
//
// Complexity:
//
//   - ConnectedComponents: O(N×d), Memory: O(N)    (d = number of neighbors).
//   - ExpandIsland:        O(N×d), Memory: O(N).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered "land".
//   - GridOptions.Conn: ConnFace (2·D neighbors, Conn4 in 2D) or
//     ConnFull (3^D−1 neighbors, Conn8 in 2D).
//
// Errors:
//
//   - ErrNilGrid: nil grid passed to NewGridGraph.
//   - ErrEmptyGrid: From2D input has no rows or no columns.
//   - ErrNonRectangular: From2D rows have differing lengths.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between specified components.
package gridgraph
