// Package gridmat bridges rank-2 multigrid grids and gonum matrices.
//
// A rank-2 Grid[float64] with extents (r, c) stores its values row-major,
// exactly like a gonum *mat.Dense with stride c, so conversion is a single
// copy in either direction:
//
//	g, _ := multigrid.New[float64]([]int{3, 4})
//	m, _ := gridmat.ToDense(g)       // *mat.Dense, 3×4
//	back, _ := gridmat.FromDense(m)  // Grid[float64], extents {3;4}
//
// Grids of any other rank are rejected with ErrRankMismatch.
package gridmat
