// SPDX-License-Identifier: MIT

// Package multigrid: functional configuration for Grid construction.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Each option changes an observable behavior and is covered by tests.
//   - Options are unexported state; public constructors consume ...Option.
package multigrid

// Defaults (single source of truth).
const (
	// DefaultPrecomputeCoordinates keeps the index→coordinate table in memory.
	// false ⇒ CoordinateOf decodes on demand in O(D).
	DefaultPrecomputeCoordinates = true

	// DefaultHashedLookup selects arithmetic coordinate encoding.
	// true ⇒ coordinates are resolved through the hashed reverse table.
	DefaultHashedLookup = false
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*options)

type options struct {
	precompute bool   // build the index→coordinate table
	hashed     bool   // build and use the coordinate→index table
	hasher     Hasher // bucket function for the reverse table
}

// WithLazyCoordinates disables the index→coordinate table.
// CoordinateOf then decodes with Shape.Unravel on every call.
// Combined with WithHashedLookup the decoded coordinates are still kept, by
// the reverse table, for its equality checks.
func WithLazyCoordinates() Option {
	return func(o *options) { o.precompute = false }
}

// WithHashedLookup resolves coordinates through a precomputed
// coordinate→index table keyed by h. A nil h selects PolyHash.
func WithHashedLookup(h Hasher) Option {
	return func(o *options) {
		o.hashed = true
		if h == nil {
			h = PolyHash
		}
		o.hasher = h
	}
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{
		precompute: DefaultPrecomputeCoordinates,
		hashed:     DefaultHashedLookup,
		hasher:     PolyHash,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
