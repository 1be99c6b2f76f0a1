package gridfile

import "errors"

var (
	// ErrEmptyDefinition indicates an input without a YAML document.
	ErrEmptyDefinition = errors.New("gridfile: empty definition")
	// ErrNoShape indicates neither extents nor rank/extent were given.
	ErrNoShape = errors.New("gridfile: definition needs extents or rank and extent")
	// ErrConflictingShape indicates both extents and rank/extent were given.
	ErrConflictingShape = errors.New("gridfile: extents and rank/extent are mutually exclusive")
	// ErrConflictingValues indicates both values and fill were given.
	ErrConflictingValues = errors.New("gridfile: values and fill are mutually exclusive")
)
