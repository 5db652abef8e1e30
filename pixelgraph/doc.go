// Package pixelgraph stores the pixels of a small raster image as graph
// nodes and links 4-adjacent pixels with color-dissimilarity weights.
//
// What:
//
//   - Node holds one grid cell: its (Row, Col) key, its RGB Color and an
//     adjacency list of (neighbor, weight) pairs.
//   - Graph owns every node in a flat arena indexed by coordinate, so
//     Lookup is O(1) and a coordinate can never hold two nodes.
//   - Weight turns two colors into a non-negative edge cost: the Euclidean
//     distance between the colors once every channel is scaled to [0, 1].
//
// Why:
//
//   - Shortest paths over such a graph follow regions of similar color,
//     which is the core of "intelligent scissors" style pixel tracing.
//
// Complexity:
//
//   - Lookup, Insert, Contains: O(1) amortized.
//   - AddUndirectedEdge: O(1) amortized.
//   - IsNeighbor, WeightTo: O(deg) with deg ≤ 4 on a grid.
//
// Non-error conditions:
//
//   - Insert on an occupied coordinate returns false and leaves the graph as is.
//   - AddUndirectedEdge with a nil or foreign node returns false and leaves
//     the graph as is.
//
// Errors:
//
//   - ErrEmptyPath:   PathCost called with no nodes.
//   - ErrNotAdjacent: two consecutive path nodes are not linked by an edge.
//
// Concurrency:
//
//   - A Graph must be built by a single goroutine. Once construction is done
//     any number of goroutines may read it concurrently.
package pixelgraph
