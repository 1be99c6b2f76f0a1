package gridgraph

// ConnectedComponents finds all contiguous regions (“islands”) of land cells
// (value ≥ gg.LandThreshold), according to gg.Conn connectivity.
// Returns a slice of components; each component is a slice of flat
// indices in BFS discovery order. Components are seeded in ascending flat
// order, so the result is deterministic.
//
// To convert an index back to a coordinate, use Coordinate(idx).
//
// Time:   O(N·d), where d = len(NeighborOffsets()).
// Memory: O(N) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	total := gg.grid.Size()
	seen := make([]bool, total)
	var comps [][]int
	nbuf := make([]int, 0, len(gg.offsets))

	for i0 := 0; i0 < total; i0++ {
		if seen[i0] || !gg.IsLand(i0) {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			nbuf = gg.appendNeighbors(nbuf[:0], gg.Coordinate(u))
			for _, v := range nbuf {
				if seen[v] || !gg.IsLand(v) {
					continue
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
		comps = append(comps, comp)
	}

	return comps
}
