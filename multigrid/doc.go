// Package multigrid provides a dense, fixed-rank, multi-dimensional array
// stored as a single flat slice.
//
// What:
//
//   - Grid[T] holds Size() values of type T addressable either by flat index
//     or by a Coord (one position per axis).
//   - Shape fixes the rank and the per-axis extents once, at construction.
//   - Index ↔ coordinate mapping is row-major mixed-radix: the first axis is
//     the most significant, the last axis varies fastest:
//
//     index = Σ c[i] * stride[i],   stride[i] = Π_{j>i} extent[j]
//
// Why:
//
//   - Cache-friendly contiguous storage that can be handed to numeric code
//     (see gridmat for gonum interop).
//   - O(1) decoding of flat indices through a precomputed table, O(D)
//     arithmetic encoding of coordinates with no hashing on the hot path.
//
// Lookup strategies:
//
//   - Arithmetic (default): IndexOf recomputes the index from strides.
//   - Hashed (WithHashedLookup): a coordinate→index table built from the
//     index→coordinate table, keyed by an explicit Hasher. Average O(1),
//     worst case O(N) under collisions.
//   - WithLazyCoordinates drops the index→coordinate table and decodes on
//     demand in O(D).
//
// Complexity:
//
//   - New: O(N·D) time and O(N·D) extra memory for the coordinate table.
//   - At/Set: O(1). AtCoord/SetCoord/IndexOf: O(D).
//   - CoordinateOf: O(D) (copy of the table row).
//
// Errors:
//
//   - ErrShapeMismatch: wrong number of extents, coordinate length or values.
//   - ErrInvalidExtent: non-positive extent or a size that overflows int.
//   - ErrIndexOutOfRange: flat index outside [0, Size()).
//   - ErrCoordinateOutOfRange: some axis value outside [0, extent).
//   - ErrUnknownCoordinate: reverse-table miss; raised by panic since it
//     can only come from a broken Hasher.
//
// Concurrency: a Grid holds no locks. Concurrent readers are safe; element
// writes from several goroutines need external synchronization.
package multigrid
