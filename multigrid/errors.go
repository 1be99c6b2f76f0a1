package multigrid

import "errors"

// Sentinel errors for multigrid operations.
// Match them with errors.Is; returned errors may carry extra context.
var (
	// ErrShapeMismatch indicates a rank, coordinate length or value count
	// that disagrees with the grid shape.
	ErrShapeMismatch = errors.New("multigrid: shape mismatch")

	// ErrInvalidExtent indicates a non-positive extent or a total size
	// that does not fit in an int.
	ErrInvalidExtent = errors.New("multigrid: extents must be > 0 and their product must fit in int")

	// ErrIndexOutOfRange indicates a flat index outside [0, Size()).
	ErrIndexOutOfRange = errors.New("multigrid: index out of range")

	// ErrCoordinateOutOfRange indicates a coordinate axis value outside [0, extent).
	ErrCoordinateOutOfRange = errors.New("multigrid: coordinate out of range")

	// ErrUnknownCoordinate indicates that a well-formed coordinate is missing
	// from the hashed reverse table. It signals a broken invariant.
	ErrUnknownCoordinate = errors.New("multigrid: coordinate missing from reverse table")
)
