package gridmat

import "errors"

var (
	// ErrNilGrid indicates a nil grid argument.
	ErrNilGrid = errors.New("gridmat: grid is nil")
	// ErrRankMismatch indicates a grid whose rank is not 2.
	ErrRankMismatch = errors.New("gridmat: grid rank must be 2")
	// ErrEmptyMatrix indicates a matrix with zero rows or columns.
	ErrEmptyMatrix = errors.New("gridmat: matrix must have at least one row and one column")
)
