// File: gridgraph/expand_test.go
package gridgraph_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/coin/gridgraph"
	"github.com/katalvlaran/coin/multigrid"
)

// idx converts a coordinate to its flat index.
func idx(t *testing.T, gg *gridgraph.GridGraph, c ...int) int {
	t.Helper()
	i, err := gg.Grid().IndexOf(multigrid.Coord(c))
	if err != nil {
		t.Fatalf("IndexOf(%v): %v", c, err)
	}

	return i
}

// TestExpandIsland_BasicLine tests a simple 1×3 line with a single water cell between two land cells.
// Grid: [1,0,1], Conn4
// Expected: must convert the middle cell at cost 1, path indices [0,1,2].
func TestExpandIsland_BasicLine(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{1, 0, 1}}, gridgraph.Conn4)
	if err != nil {
		t.Fatalf("From2D error: %v", err)
	}
	if n := len(gg.ConnectedComponents()); n != 2 {
		t.Fatalf("found %d components; want 2", n)
	}

	path, cost, err := gg.ExpandIsland(0, 1)
	if err != nil {
		t.Fatalf("ExpandIsland error: %v", err)
	}
	wantPath := []int{idx(t, gg, 0, 0), idx(t, gg, 0, 1), idx(t, gg, 0, 2)}
	if cost != 1 {
		t.Errorf("cost = %d; want 1", cost)
	}
	if !reflect.DeepEqual(path, wantPath) {
		t.Errorf("path = %v; want %v", path, wantPath)
	}
}

// TestExpandIsland_MediumRow tests a 1×5 line where two land cells at ends require converting 3 water cells.
func TestExpandIsland_MediumRow(t *testing.T) {
	gg, _ := gridgraph.From2D([][]int{{1, 0, 0, 0, 1}}, gridgraph.Conn4)
	path, cost, err := gg.ExpandIsland(0, 1)
	if err != nil {
		t.Fatalf("ExpandIsland error: %v", err)
	}
	if cost != 3 {
		t.Errorf("cost = %d; want 3", cost)
	}
	if len(path) != 5 {
		t.Errorf("path length = %d; want 5", len(path))
	}
}

// TestExpandIsland_DiagonalShortcut shows Conn8 crossing a corner for free
// while Conn4 has to convert one water cell.
//
//	1 0
//	0 1
func TestExpandIsland_DiagonalShortcut(t *testing.T) {
	grid := [][]int{{1, 0}, {0, 1}}

	gg4, _ := gridgraph.From2D(grid, gridgraph.Conn4)
	_, cost, err := gg4.ExpandIsland(0, 1)
	if err != nil || cost != 1 {
		t.Errorf("Conn4: cost = %d, err = %v; want 1, nil", cost, err)
	}

	gg8, _ := gridgraph.From2D(grid, gridgraph.Conn8)
	if n := len(gg8.ConnectedComponents()); n != 1 {
		t.Fatalf("Conn8: %d components; want 1", n)
	}
	path, cost, err := gg8.ExpandIsland(0, 0)
	if err != nil || cost != 0 || len(path) != 1 {
		t.Errorf("Conn8 self: path=%v cost=%d err=%v; want single cell at cost 0", path, cost, err)
	}
}

// TestExpandIsland_Volume bridges two voxels of a 1×1×4 column through 2 water cells.
func TestExpandIsland_Volume(t *testing.T) {
	g, _ := multigrid.NewWithValues([]int{1, 1, 4}, []int{1, 0, 0, 1})
	gg, _ := gridgraph.NewGridGraph(g, gridgraph.DefaultGridOptions())

	path, cost, err := gg.ExpandIsland(0, 1)
	if err != nil {
		t.Fatalf("ExpandIsland error: %v", err)
	}
	if cost != 2 || !reflect.DeepEqual(path, []int{0, 1, 2, 3}) {
		t.Errorf("path=%v cost=%d; want [0 1 2 3] at cost 2", path, cost)
	}
}

// TestExpandIsland_BadIndex validates component index checks.
func TestExpandIsland_BadIndex(t *testing.T) {
	gg, _ := gridgraph.From2D([][]int{{1, 0, 1}}, gridgraph.Conn4)
	for _, pair := range [][2]int{{-1, 0}, {0, 2}, {5, 0}} {
		if _, _, err := gg.ExpandIsland(pair[0], pair[1]); !errors.Is(err, gridgraph.ErrComponentIndex) {
			t.Errorf("ExpandIsland(%d,%d) error = %v; want ErrComponentIndex", pair[0], pair[1], err)
		}
	}
}
