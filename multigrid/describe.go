package multigrid

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "{"
	_fmtClose = "}"
	_fmtSep   = ";"
)

// Describe renders the grid for debugging: a header, the values in flat
// order, the index→coordinate mapping and, for hashed grids, the
// coordinate→index mapping. Output is deterministic for a given state.
//
// Example (extents 2×2, ints):
//
//	MultiGrid rank=2 shape=2x2 size=4 lookup=arithmetic
//	Values : {0;0;0;0}
//	Mapping index to coord :
//	0:{0;0}	1:{0;1}	2:{1;0}	3:{1;1}
func (g *Grid[T]) Describe() string {
	var sb strings.Builder

	lookup := "arithmetic"
	if g.reverse != nil {
		lookup = fmt.Sprintf("hashed buckets=%d collisions=%d", len(g.reverse.buckets), g.reverse.collisions())
	}
	fmt.Fprintf(&sb, "MultiGrid rank=%d shape=%s size=%d lookup=%s\n",
		g.shape.Rank(), g.shape, len(g.values), lookup)

	sb.WriteString("Values : ")
	sb.WriteString(_fmtOpen)
	for i, v := range g.values {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteString(_fmtClose)
	sb.WriteString("\nMapping index to coord :\n")

	c := make(Coord, g.shape.Rank())
	for i := range g.values {
		if i > 0 {
			sb.WriteByte('\t')
		}
		g.coordInto(i, c)
		fmt.Fprintf(&sb, "%d:%s", i, c)
	}
	sb.WriteByte('\n')

	if g.reverse != nil {
		// Walk in index order rather than map order to stay deterministic.
		sb.WriteString("Mapping coord to index :\n")
		for i := range g.values {
			if i > 0 {
				sb.WriteByte('\t')
			}
			row := g.reverse.row(i)
			fmt.Fprintf(&sb, "%s->%d", row, g.reverse.mustLookup(row))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// String implements fmt.Stringer via Describe.
func (g *Grid[T]) String() string { return g.Describe() }
