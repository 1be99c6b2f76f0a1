package gridmat

import (
	"fmt"

	"github.com/katalvlaran/coin/multigrid"
	"gonum.org/v1/gonum/mat"
)

// dims returns (rows, cols) of a rank-2 grid.
func dims(g *multigrid.Grid[float64]) (int, int, error) {
	if g == nil {
		return 0, 0, ErrNilGrid
	}
	if g.Rank() != 2 {
		return 0, 0, fmt.Errorf("gridmat: shape %s: %w", g.Shape(), ErrRankMismatch)
	}
	s := g.Shape()

	return s.Extent(0), s.Extent(1), nil
}

// ToDense copies a rank-2 grid into a new r×c *mat.Dense.
// Axis 0 maps to rows, axis 1 to columns.
// Complexity: O(r·c).
func ToDense(g *multigrid.Grid[float64]) (*mat.Dense, error) {
	r, c, err := dims(g)
	if err != nil {
		return nil, err
	}
	data := make([]float64, r*c)
	copy(data, g.Values())

	return mat.NewDense(r, c, data), nil
}

// FromDense copies any gonum matrix into a new rank-2 grid with extents (r, c).
// Options are passed through to multigrid.NewWithValues.
// Complexity: O(r·c).
func FromDense(m mat.Matrix, opts ...multigrid.Option) (*multigrid.Grid[float64], error) {
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return nil, ErrEmptyMatrix
	}
	data := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data = append(data, m.At(i, j))
		}
	}

	return multigrid.NewWithValues([]int{r, c}, data, opts...)
}

// Row returns a copy of row i of a rank-2 grid as a gonum vector.
// Returns multigrid.ErrIndexOutOfRange for an invalid row.
func Row(g *multigrid.Grid[float64], i int) (*mat.VecDense, error) {
	r, c, err := dims(g)
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= r {
		return nil, fmt.Errorf("gridmat: row %d of %d: %w", i, r, multigrid.ErrIndexOutOfRange)
	}
	data := make([]float64, c)
	copy(data, g.Values()[i*c:(i+1)*c])

	return mat.NewVecDense(c, data), nil
}

// Mul multiplies two rank-2 grids as matrices and returns the product grid.
// Returns ErrRankMismatch for non-matrix grids and multigrid.ErrShapeMismatch
// when the inner dimensions differ.
// Complexity: O(r·k·c).
func Mul(a, b *multigrid.Grid[float64]) (*multigrid.Grid[float64], error) {
	ma, err := ToDense(a)
	if err != nil {
		return nil, err
	}
	mb, err := ToDense(b)
	if err != nil {
		return nil, err
	}
	_, ka := ma.Dims()
	kb, _ := mb.Dims()
	if ka != kb {
		return nil, fmt.Errorf("gridmat: Mul %s by %s: %w", a.Shape(), b.Shape(), multigrid.ErrShapeMismatch)
	}
	var out mat.Dense
	out.Mul(ma, mb)

	return FromDense(&out)
}
