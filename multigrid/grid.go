// SPDX-License-Identifier: MIT

// Package multigrid - Grid: dense storage & safe accessors.
//
// Purpose:
//   - Keep values in one flat slice of length Shape.Size().
//   - Guarantee safety at the public surface: At/Set/AtCoord/SetCoord return
//     errors instead of panicking; *Unchecked variants skip validation.
//   - Precompute the index→coordinate table once; never mutate it afterwards.
//
// Complexity quicksheet:
//   - New: O(N·D); At/Set: O(1); AtCoord/SetCoord: O(D); Clone: O(N).

package multigrid

import (
	"fmt"
	"iter"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxAtCoord  = "AtCoord"
	ctxSetCoord = "SetCoord"
	ctxCoordOf  = "CoordinateOf"
	ctxIndexOf  = "IndexOf"
)

// gridIndexErrorf wraps err with the method tag and the offending flat index.
func gridIndexErrorf(method string, idx int, err error) error {
	return fmt.Errorf("Grid.%s(%d): %w", method, idx, err)
}

// gridCoordErrorf wraps err with the method tag. Errors from Shape.Ravel
// already name the coordinate.
func gridCoordErrorf(method string, err error) error {
	return fmt.Errorf("Grid.%s: %w", method, err)
}

// Grid is a dense multi-dimensional array of T.
//   - shape is fixed for the lifetime of the grid.
//   - values is the only mutable state (len == shape.Size()).
//   - coords is the index→coordinate table, rank entries per index, or nil
//     when built WithLazyCoordinates.
//   - reverse is the coordinate→index table of the hashed strategy, or nil.
type Grid[T any] struct {
	shape   Shape
	values  []T
	coords  []int
	reverse *reverseTable
}

var _ fmt.Stringer = (*Grid[int])(nil)

// New creates a zero-valued grid with the given extents.
// Errors: ErrShapeMismatch (no extents), ErrInvalidExtent.
// Complexity: O(N·D) time and space.
func New[T any](extents []int, opts ...Option) (*Grid[T], error) {
	shape, err := NewShape(extents...)
	if err != nil {
		return nil, err
	}

	return newGrid(shape, make([]T, shape.Size()), gatherOptions(opts...)), nil
}

// NewUniform creates a zero-valued grid of the given rank where every axis has
// the same extent, e.g. NewUniform[float64](3, 2) is a 2×2×2 grid.
func NewUniform[T any](rank, extent int, opts ...Option) (*Grid[T], error) {
	shape, err := UniformShape(rank, extent)
	if err != nil {
		return nil, err
	}

	return newGrid(shape, make([]T, shape.Size()), gatherOptions(opts...)), nil
}

// NewWithValues creates a grid initialised with a copy of values, laid out in
// flat (row-major) order. len(values) must equal the product of extents.
// Errors: ErrShapeMismatch, ErrInvalidExtent.
func NewWithValues[T any](extents []int, values []T, opts ...Option) (*Grid[T], error) {
	shape, err := NewShape(extents...)
	if err != nil {
		return nil, err
	}
	if len(values) != shape.Size() {
		return nil, fmt.Errorf("NewWithValues: shape %s needs %d values, got %d: %w",
			shape, shape.Size(), len(values), ErrShapeMismatch)
	}
	buf := make([]T, len(values))
	copy(buf, values)

	return newGrid(shape, buf, gatherOptions(opts...)), nil
}

// NewFromShape creates a zero-valued grid over an already validated Shape.
func NewFromShape[T any](shape Shape, opts ...Option) (*Grid[T], error) {
	if shape.Rank() == 0 {
		return nil, fmt.Errorf("NewFromShape: zero Shape: %w", ErrShapeMismatch)
	}

	return newGrid(shape, make([]T, shape.Size()), gatherOptions(opts...)), nil
}

// newGrid builds the tables in dependency order:
// shape → index→coordinate table → [hashed] coordinate→index table.
func newGrid[T any](shape Shape, values []T, o options) *Grid[T] {
	g := &Grid[T]{shape: shape, values: values}

	var table []int
	if o.precompute || o.hashed {
		table = buildCoordTable(shape)
	}
	if o.precompute {
		g.coords = table
	}
	if o.hashed {
		g.reverse = newReverseTable(table, shape.Rank(), shape.Size(), o.hasher)
	}

	return g
}

// buildCoordTable decodes every flat index once.
// Layout: table[idx*D : (idx+1)*D] is the coordinate of idx.
func buildCoordTable(shape Shape) []int {
	rank, size := shape.Rank(), shape.Size()
	table := make([]int, size*rank)
	for idx := 0; idx < size; idx++ {
		shape.unravelInto(idx, table[idx*rank:(idx+1)*rank])
	}

	return table
}

// Shape returns the grid shape.
func (g *Grid[T]) Shape() Shape { return g.shape }

// Rank returns the number of axes.
func (g *Grid[T]) Rank() int { return g.shape.Rank() }

// Extents returns a copy of the per-axis extents.
func (g *Grid[T]) Extents() []int { return g.shape.Extents() }

// Size returns the number of values.
func (g *Grid[T]) Size() int { return len(g.values) }

// Hashed reports whether coordinates resolve through the reverse table.
func (g *Grid[T]) Hashed() bool { return g.reverse != nil }

// At returns the value at flat index idx.
// Returns ErrIndexOutOfRange if idx is outside [0, Size()).
func (g *Grid[T]) At(idx int) (T, error) {
	if idx < 0 || idx >= len(g.values) {
		var zero T
		return zero, gridIndexErrorf(ctxAt, idx, ErrIndexOutOfRange)
	}

	return g.values[idx], nil
}

// Set stores v at flat index idx.
// Returns ErrIndexOutOfRange if idx is outside [0, Size()); the grid is left unchanged.
func (g *Grid[T]) Set(idx int, v T) error {
	if idx < 0 || idx >= len(g.values) {
		return gridIndexErrorf(ctxSet, idx, ErrIndexOutOfRange)
	}
	g.values[idx] = v

	return nil
}

// AtUnchecked returns the value at idx without validation.
// It panics like a slice access when idx is out of range.
func (g *Grid[T]) AtUnchecked(idx int) T { return g.values[idx] }

// SetUnchecked stores v at idx without validation.
// It panics like a slice access when idx is out of range.
func (g *Grid[T]) SetUnchecked(idx int, v T) { g.values[idx] = v }

// AtCoord returns the value at coordinate c.
// Returns ErrShapeMismatch or ErrCoordinateOutOfRange on invalid c.
func (g *Grid[T]) AtCoord(c Coord) (T, error) {
	idx, err := g.indexOf(c)
	if err != nil {
		var zero T
		return zero, gridCoordErrorf(ctxAtCoord, err)
	}

	return g.values[idx], nil
}

// SetCoord stores v at coordinate c.
// Returns ErrShapeMismatch or ErrCoordinateOutOfRange on invalid c; the grid
// is left unchanged.
func (g *Grid[T]) SetCoord(c Coord, v T) error {
	idx, err := g.indexOf(c)
	if err != nil {
		return gridCoordErrorf(ctxSetCoord, err)
	}
	g.values[idx] = v

	return nil
}

// IndexOf returns the flat index of coordinate c.
// Arithmetic grids compute it in O(D); hashed grids validate c and then look
// it up in the reverse table.
func (g *Grid[T]) IndexOf(c Coord) (int, error) {
	idx, err := g.indexOf(c)
	if err != nil {
		return 0, gridCoordErrorf(ctxIndexOf, err)
	}

	return idx, nil
}

func (g *Grid[T]) indexOf(c Coord) (int, error) {
	// Ravel doubles as the range check for the hashed path.
	idx, err := g.shape.Ravel(c)
	if err != nil {
		return 0, err
	}
	if g.reverse != nil {
		return g.reverse.mustLookup(c), nil
	}

	return idx, nil
}

// CoordinateOf returns the coordinate of flat index idx.
// The result is a fresh slice; mutating it does not affect the grid.
// Returns ErrIndexOutOfRange if idx is outside [0, Size()).
func (g *Grid[T]) CoordinateOf(idx int) (Coord, error) {
	if idx < 0 || idx >= len(g.values) {
		return nil, gridIndexErrorf(ctxCoordOf, idx, ErrIndexOutOfRange)
	}
	c := make(Coord, g.shape.Rank())
	g.coordInto(idx, c)

	return c, nil
}

// coordInto writes the coordinate of a valid idx into dst.
func (g *Grid[T]) coordInto(idx int, dst Coord) {
	if g.coords != nil {
		rank := len(dst)
		copy(dst, g.coords[idx*rank:(idx+1)*rank])
		return
	}
	g.shape.unravelInto(idx, dst)
}

// Values returns the live backing slice in flat order.
// Writes through it mutate the grid; its length must not be changed.
func (g *Grid[T]) Values() []T { return g.values }

// All yields (index, value) pairs in ascending flat order.
// The sequence is restartable and reflects writes made between iterations.
func (g *Grid[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range g.values {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Coordinates yields (index, coordinate) pairs in ascending flat order.
// Each coordinate is a fresh slice owned by the caller.
func (g *Grid[T]) Coordinates() iter.Seq2[int, Coord] {
	return func(yield func(int, Coord) bool) {
		rank := g.shape.Rank()
		for i := range g.values {
			c := make(Coord, rank)
			g.coordInto(i, c)
			if !yield(i, c) {
				return
			}
		}
	}
}

// Apply replaces every value by fn(index, value), in flat order.
func (g *Grid[T]) Apply(fn func(idx int, v T) T) {
	for i, v := range g.values {
		g.values[i] = fn(i, v)
	}
}

// Fill sets every value to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.values {
		g.values[i] = v
	}
}

// Clone returns a grid with an independent copy of the values.
// Lookup tables are immutable and therefore shared.
func (g *Grid[T]) Clone() *Grid[T] {
	buf := make([]T, len(g.values))
	copy(buf, g.values)

	return &Grid[T]{
		shape:   g.shape,
		values:  buf,
		coords:  g.coords,
		reverse: g.reverse,
	}
}
