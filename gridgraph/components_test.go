// File: gridgraph/components_test.go
package gridgraph_test

import (
	"reflect"
	"sort"
	"testing"

	"github.com/katalvlaran/coin/gridgraph"
	"github.com/katalvlaran/coin/multigrid"
)

// TestConnectedComponents_Simple4 tests ConnectedComponents on a simple 3×4 grid
// with orthogonal connectivity (Conn4).
//
// Grid (1 = land, 0 = water):
//
//	0 1 1 0
//	1 1 0 0
//	0 0 1 1
//
// Expected: 2 islands of sizes 4 and 2.
func TestConnectedComponents_Simple4(t *testing.T) {
	grid := [][]int{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
	}
	gg, err := gridgraph.From2D(grid, gridgraph.Conn4)
	if err != nil {
		t.Fatalf("From2D failed: %v", err)
	}

	comps := gg.ConnectedComponents()
	if len(comps) != 2 {
		t.Fatalf("got %d components; want 2", len(comps))
	}

	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	want := []int{2, 4}
	if !reflect.DeepEqual(sizes, want) {
		t.Errorf("component sizes = %v; want %v", sizes, want)
	}
}

// TestConnectedComponents_Diagonal8 tests ConnectedComponents on a 5×5 grid
// using diagonal connectivity (Conn8) to catch “touching corners” islands.
//
// Grid:
//
//	1 0 0 0 1
//	0 1 0 1 0
//	0 0 1 0 0
//	0 1 0 1 0
//	1 0 0 0 1
//
// With Conn8, all 9 ones connect through diagonal hops into a single island;
// with Conn4 every one is isolated.
func TestConnectedComponents_Diagonal8(t *testing.T) {
	grid := [][]int{
		{1, 0, 0, 0, 1},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
	}
	gg, err := gridgraph.From2D(grid, gridgraph.Conn8)
	if err != nil {
		t.Fatalf("From2D failed: %v", err)
	}
	comps := gg.ConnectedComponents()
	if len(comps) != 1 || len(comps[0]) != 9 {
		t.Fatalf("Conn8: got %v; want 1 component of size 9", comps)
	}

	gg4, _ := gridgraph.From2D(grid, gridgraph.Conn4)
	if n := len(gg4.ConnectedComponents()); n != 9 {
		t.Errorf("Conn4: got %d components; want 9", n)
	}
}

// TestConnectedComponents_Volume checks a 3×3×3 volume where two voxels touch
// only through a corner: separate under ConnFace, joined under ConnFull.
func TestConnectedComponents_Volume(t *testing.T) {
	g, err := multigrid.New[int]([]int{3, 3, 3})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	_ = g.SetCoord(multigrid.Coord{0, 0, 0}, 1)
	_ = g.SetCoord(multigrid.Coord{1, 1, 1}, 1)
	_ = g.SetCoord(multigrid.Coord{2, 2, 1}, 1)
	_ = g.SetCoord(multigrid.Coord{2, 2, 2}, 1)

	face, _ := gridgraph.NewGridGraph(g, gridgraph.GridOptions{LandThreshold: 1, Conn: gridgraph.ConnFace})
	if n := len(face.ConnectedComponents()); n != 3 {
		t.Errorf("ConnFace: %d components; want 3", n)
	}
	full, _ := gridgraph.NewGridGraph(g, gridgraph.GridOptions{LandThreshold: 1, Conn: gridgraph.ConnFull})
	comps := full.ConnectedComponents()
	if len(comps) != 1 || len(comps[0]) != 4 {
		t.Errorf("ConnFull: %v; want one component of 4 voxels", comps)
	}
}

// TestConnectedComponents_Threshold ensures LandThreshold decides land cells.
func TestConnectedComponents_Threshold(t *testing.T) {
	g, _ := multigrid.NewWithValues([]int{1, 5}, []int{5, 1, 5, 5, 1})
	gg, _ := gridgraph.NewGridGraph(g, gridgraph.GridOptions{LandThreshold: 3})

	got := gg.ConnectedComponents()
	want := [][]int{{0}, {2, 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("components = %v; want %v", got, want)
	}
}

// TestConnectedComponents_AllWater returns no components.
func TestConnectedComponents_AllWater(t *testing.T) {
	gg, _ := gridgraph.From2D([][]int{{0, 0}, {0, 0}}, gridgraph.Conn8)
	if comps := gg.ConnectedComponents(); len(comps) != 0 {
		t.Errorf("components = %v; want none", comps)
	}
}
