// SPDX-License-Identifier: MIT

// Package multigrid - Shape: rank, extents and the mixed-radix codec.
//
// Purpose:
//   - Single source of truth for extents, total size and strides.
//   - Ravel (coordinate → index) and Unravel (index → coordinate) with the
//     same row-major convention: axis 0 most significant, last axis fastest.
//
// Complexity quicksheet:
//   - NewShape: O(D); Ravel/Unravel: O(D); Contains: O(D).

package multigrid

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Shape is an immutable rank + extents descriptor.
// The zero Shape has rank 0 and is only produced by mistake; every
// constructor in this package returns a Shape with rank ≥ 1.
type Shape struct {
	extents []int // per-axis extents, all > 0
	strides []int // strides[i] = Π_{j>i} extents[j]; strides[D-1] == 1
	size    int   // Π extents
}

// NewShape validates extents and precomputes strides and size.
// MAIN DESCRIPTION:
//   - Reject an empty extent list (ErrShapeMismatch).
//   - Reject any extent ≤ 0 or a product overflowing int (ErrInvalidExtent).
//
// Implementation:
//   - Stage 1: walk extents from the last axis to the first, accumulating the
//     running product as the stride of each axis.
//   - Stage 2: the final running product is the total size.
//
// Complexity:
//   - Time O(D), Space O(D).
func NewShape(extents ...int) (Shape, error) {
	if len(extents) == 0 {
		return Shape{}, fmt.Errorf("NewShape: no extents: %w", ErrShapeMismatch)
	}
	ext := make([]int, len(extents))
	copy(ext, extents)
	strides := make([]int, len(ext))

	size := 1
	for axis := len(ext) - 1; axis >= 0; axis-- {
		e := ext[axis]
		if e <= 0 {
			return Shape{}, fmt.Errorf("NewShape: axis %d extent %d: %w", axis, e, ErrInvalidExtent)
		}
		strides[axis] = size
		if size > math.MaxInt/e {
			return Shape{}, fmt.Errorf("NewShape: %v overflows int: %w", extents, ErrInvalidExtent)
		}
		size *= e
	}

	return Shape{extents: ext, strides: strides, size: size}, nil
}

// UniformShape returns a Shape of the given rank with every axis set to extent.
func UniformShape(rank, extent int) (Shape, error) {
	if rank <= 0 {
		return Shape{}, fmt.Errorf("UniformShape: rank %d: %w", rank, ErrShapeMismatch)
	}
	ext := make([]int, rank)
	for i := range ext {
		ext[i] = extent
	}

	return NewShape(ext...)
}

// Rank returns the number of axes.
func (s Shape) Rank() int { return len(s.extents) }

// Size returns the number of addressable flat slots (product of extents).
func (s Shape) Size() int { return s.size }

// Extent returns the extent of one axis. It panics if axis is not in [0, Rank()).
func (s Shape) Extent(axis int) int { return s.extents[axis] }

// Extents returns a copy of the per-axis extents.
func (s Shape) Extents() []int {
	out := make([]int, len(s.extents))
	copy(out, s.extents)

	return out
}

// Strides returns a copy of the row-major strides.
func (s Shape) Strides() []int {
	out := make([]int, len(s.strides))
	copy(out, s.strides)

	return out
}

// Contains reports whether c has the right length and every axis in range.
func (s Shape) Contains(c Coord) bool {
	if len(c) != len(s.extents) {
		return false
	}
	for axis, v := range c {
		if v < 0 || v >= s.extents[axis] {
			return false
		}
	}

	return true
}

// Ravel encodes a coordinate into its flat index.
// Returns ErrShapeMismatch on a wrong-length coordinate and
// ErrCoordinateOutOfRange when some axis is outside [0, extent).
// Complexity: O(D).
func (s Shape) Ravel(c Coord) (int, error) {
	if len(c) != len(s.extents) {
		return 0, fmt.Errorf("Ravel(%v): rank %d, got %d values: %w", c, len(s.extents), len(c), ErrShapeMismatch)
	}
	idx := 0
	for axis, v := range c {
		if v < 0 || v >= s.extents[axis] {
			return 0, fmt.Errorf("Ravel(%v): axis %d value %d not in [0,%d): %w",
				c, axis, v, s.extents[axis], ErrCoordinateOutOfRange)
		}
		idx += v * s.strides[axis]
	}

	return idx, nil
}

// Unravel decodes a flat index into its coordinate.
// Returns ErrIndexOutOfRange when idx is outside [0, Size()).
// Complexity: O(D).
func (s Shape) Unravel(idx int) (Coord, error) {
	if idx < 0 || idx >= s.size {
		return nil, fmt.Errorf("Unravel(%d): size %d: %w", idx, s.size, ErrIndexOutOfRange)
	}
	c := make(Coord, len(s.extents))
	s.unravelInto(idx, c)

	return c, nil
}

// unravelInto writes the coordinate of idx into dst (len(dst) == Rank()).
// Most significant axis first: divide by the stride, keep the remainder.
func (s Shape) unravelInto(idx int, dst []int) {
	rem := idx
	for axis, stride := range s.strides {
		dst[axis] = rem / stride
		rem %= stride
	}
}

// Equal reports whether two shapes have identical extents.
func (s Shape) Equal(other Shape) bool {
	if len(s.extents) != len(other.extents) {
		return false
	}
	for i := range s.extents {
		if s.extents[i] != other.extents[i] {
			return false
		}
	}

	return true
}

// String renders the extents as "2x2x3x5".
func (s Shape) String() string {
	parts := make([]string, len(s.extents))
	for i, e := range s.extents {
		parts[i] = strconv.Itoa(e)
	}

	return strings.Join(parts, "x")
}
