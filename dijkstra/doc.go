// Package dijkstra finds the minimum-cost route between two pixels of a
// pixelgraph.Graph and reconstructs it.
//
// Overview:
//
//   - ShortestPath runs a single-source search from Source to Target and
//     stops as soon as Target is finalized.
//   - Tentative distances start at +∞ (0 for the source); every finalized
//     node relaxes its neighbors with candidate = dist[u] + weight, and a
//     predecessor is recorded only on strict improvement.
//   - The path is rebuilt by walking predecessors back from the target and
//     reversing. Start == goal yields the single-node path with cost 0.
//   - Result.Distance is the sum of normalized edge weights; Result.Cost is
//     that sum multiplied by 255 to express it in 8-bit intensity units.
//
// Frontier strategies:
//
//   - FrontierHeap (default): container/heap priority queue with lazy
//     decrease-key. O((V + E) log V).
//   - FrontierScan: linear scan over unvisited finite-distance nodes. O(V²),
//     fine for the 21×21 grids the tool works with.
//   - Both break ties among equal distances by the lowest node index, so
//     they always return the same path.
//
// Key features:
//
//   - WithMaxDistance: nodes farther than the cap are never finalized.
//   - WithInfEdgeThreshold: edges weighing at least the threshold are walls.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        the graph pointer is nil.
//   - ErrNoSource:        Source was not supplied.
//   - ErrNoTarget:        Target was not supplied.
//   - ErrVertexNotFound:  source or target is absent from the graph.
//   - ErrUnreachable:     the frontier ran dry before the target was reached.
//   - ErrBadMaxDistance:  (panic) WithMaxDistance got a negative or NaN value.
//   - ErrBadInfThreshold: (panic) WithInfEdgeThreshold got a value ≤ 0 or NaN.
//   - ErrUnknownFrontier: ParseFrontier got an unknown name.
//
// Thread safety:
//
//   - The search never mutates the graph. Any number of searches may run
//     concurrently on one fully built graph.
//
// API reference:
//
//	func ShortestPath(g *pixelgraph.Graph, opts ...Option) (*Result, error)
//	func Between(g *pixelgraph.Graph, start, goal *pixelgraph.Node, opts ...Option) (*Result, error)
package dijkstra
