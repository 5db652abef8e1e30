// Package gridgraph turns a rectangular grid of pixel colors into a
// pixelgraph.Graph with 4-connected, color-weighted edges.
//
// What:
//
//   - GridGraph wraps a deep copy of a [][]pixelgraph.Color grid.
//   - Build inserts one node per cell and links every cell to the cells
//     above, below, left and right of it, skipping out-of-bounds neighbors.
//   - Regions groups cells into 4-connected areas of similar color.
//
// Why:
//
//   - Image tracing: the minimum-cost route between two pixels prefers
//     staying inside areas of similar color.
//   - Boundary cells naturally get fewer neighbors: 2 at corners, 3 on
//     edges, 4 in the interior.
//
// Complexity:
//
//   - NewGridGraph: O(W×H) time and memory.
//   - Build:        O(W×H×d) time, O(W×H + E) memory (d = 4).
//   - Regions:      O(W×H×d) time, O(W×H) memory.
//
// Options:
//
//   - GridOptions.Conn: only Conn4 is accepted.
//
// Errors:
//
//   - ErrEmptyGrid:      input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrConnectivity:   a connectivity other than Conn4 was requested.
//
// Input validation always happens before any node is created, so a
// malformed grid never yields a partially built graph.
package gridgraph
