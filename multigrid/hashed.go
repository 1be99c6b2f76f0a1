package multigrid

import "fmt"

// reverseTable is the coordinate→index table of the hashed lookup strategy.
// Buckets are keyed by the Hasher; equality is checked against the forward
// table, so the two tables agree entry by entry.
type reverseTable struct {
	hasher  Hasher
	buckets map[uint64][]int // hash → flat indices whose coordinate hashes there
	coords  []int            // forward table, rank entries per index
	rank    int
}

// newReverseTable derives the reverse table from the forward table.
// Complexity: O(N·D) time, O(N) extra space.
func newReverseTable(coords []int, rank, size int, h Hasher) *reverseTable {
	rt := &reverseTable{
		hasher:  h,
		buckets: make(map[uint64][]int, size),
		coords:  coords,
		rank:    rank,
	}
	for idx := 0; idx < size; idx++ {
		key := h(rt.row(idx))
		rt.buckets[key] = append(rt.buckets[key], idx)
	}

	return rt
}

func (rt *reverseTable) row(idx int) Coord {
	return Coord(rt.coords[idx*rt.rank : (idx+1)*rt.rank])
}

// lookup returns the flat index of c. Average O(1), worst case O(N) when
// every coordinate lands in the same bucket.
func (rt *reverseTable) lookup(c Coord) (int, bool) {
	for _, idx := range rt.buckets[rt.hasher(c)] {
		if rt.row(idx).Equal(c) {
			return idx, true
		}
	}

	return 0, false
}

// mustLookup is lookup for coordinates already validated against the shape.
// A miss means the table was built with a non-deterministic Hasher.
func (rt *reverseTable) mustLookup(c Coord) int {
	idx, ok := rt.lookup(c)
	if !ok {
		panic(fmt.Errorf("multigrid: lookup %v: %w", c, ErrUnknownCoordinate))
	}

	return idx
}

// collisions reports how many buckets hold more than one index.
func (rt *reverseTable) collisions() int {
	n := 0
	for _, b := range rt.buckets {
		if len(b) > 1 {
			n++
		}
	}

	return n
}
