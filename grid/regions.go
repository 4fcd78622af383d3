package grid

// OpenRegions finds all contiguous regions of EMPTY cells according to conn.
// Regions are returned in row-major order of their first cell; cells within
// a region are in BFS discovery order.
//
// Time:   O(H·W·d), where d = 4 or 8.
// Memory: O(H·W) for visited flags and output.
func (g *Grid) OpenRegions(conn Connectivity) [][]Cell {
	offsets := offsets4
	if conn == Conn8 {
		offsets = offsets8
	}
	seen := make([]bool, len(g.cells))
	var regions [][]Cell

	for i0, s := range g.cells {
		if s == Full || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		var region []Cell

		for qi := 0; qi < len(queue); qi++ {
			u := g.coordinate(queue[qi])
			region = append(region, u)
			for _, d := range offsets {
				r, c := u.Row+d[0], u.Col+d[1]
				if !g.IsEmpty(r, c) {
					continue
				}
				vi := g.index(r, c)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		regions = append(regions, region)
	}
	return regions
}
