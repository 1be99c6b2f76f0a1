// Package coin is a small toolbox around one data structure: a dense,
// fixed-rank, multi-dimensional grid stored in a flat slice.
//
// What is in the box?
//
//   - multigrid/  — Grid[T], Shape and Coord: O(1) index → coordinate decoding,
//     O(D) arithmetic (or hashed) coordinate → index encoding, checked and
//     unchecked accessors, iteration, debug rendering.
//   - gridgraph/  — treat a Grid[int] of any rank as a graph: islands
//     (connected components) and minimum-conversion bridges (0-1 BFS).
//   - gridmat/    — rank-2 Grid[float64] ↔ gonum mat.Dense.
//   - gridfile/   — YAML grid definitions (shape, values or arithmetic fill).
//   - cmd/multigrid — CLI to describe grids and convert indices/coordinates.
//
// Quick example:
//
//	g, _ := multigrid.New[float64]([]int{2, 2, 3, 5})
//	c, _ := g.CoordinateOf(43)   // {1;0;2;3}
//	i, _ := g.IndexOf(c)         // 43
//
// Layout is row-major: the first axis is the most significant and the last
// axis varies fastest.
package coin
