package gridgraph

import "github.com/katalvlaran/pixelpath/pixelgraph"

// Regions finds all 4-connected areas of similar color: two adjacent cells
// belong to the same region when the edge between them weighs at most
// maxWeight (see pixelgraph.Weight). A maxWeight of 0 groups cells of
// identical color; pixelgraph.MaxWeight yields a single region. A negative
// or NaN maxWeight joins nothing: every cell is its own region.
//
// Returns a slice of regions; each region is a slice of row-major cell
// indices in BFS discovery order. Regions are ordered by their first cell.
//
// To convert an index back to (row, col), use Coordinate.
//
// Time:   O(W·H·d), where d = 4.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) Regions(maxWeight float64) [][]int {
	total := gg.Width * gg.Height
	seen := make([]bool, total)
	var regions [][]int

	for r := 0; r < gg.Height; r++ {
		for c := 0; c < gg.Width; c++ {
			i0 := gg.Index(r, c)
			if seen[i0] {
				continue
			}
			// BFS to collect region
			queue := []int{i0}
			seen[i0] = true
			var region []int

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				region = append(region, u)
				ur, uc := gg.Coordinate(u)
				for _, d := range gg.neighborOffsets {
					vr, vc := ur+d[0], uc+d[1]
					if !gg.InBounds(vr, vc) {
						continue
					}
					vi := gg.Index(vr, vc)
					if seen[vi] || !(pixelgraph.Weight(gg.Cells[ur][uc], gg.Cells[vr][vc]) <= maxWeight) {
						continue
					}
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
			regions = append(regions, region)
		}
	}

	return regions
}
