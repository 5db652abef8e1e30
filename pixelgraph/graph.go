package pixelgraph

import "fmt"

// NewGraph returns an empty Graph ready for Insert calls.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes: make([]*Node, 0),
		index: make(map[Coord]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Lookup returns the node stored at (row, col).
// The second result is false when no node occupies that coordinate.
// Complexity: O(1).
func (g *Graph) Lookup(row, col int) (*Node, bool) {
	i, ok := g.index[Coord{Row: row, Col: col}]
	if !ok {
		return nil, false
	}

	return g.nodes[i], true
}

// Insert adds a node for (row, col) with the given color.
// It returns false, without touching the graph, if the coordinate is
// already occupied.
// Complexity: O(1) amortized.
func (g *Graph) Insert(row, col int, c Color) bool {
	key := Coord{Row: row, Col: col}
	if _, exists := g.index[key]; exists {
		return false
	}
	if g.index == nil {
		g.index = make(map[Coord]int)
	}
	n := &Node{Row: row, Col: col, Color: c, index: len(g.nodes)}
	g.index[key] = n.index
	g.nodes = append(g.nodes, n)

	return true
}

// Contains reports whether n is a node owned by g. Membership is identity:
// a node with the same coordinate taken from another graph is not a member.
func (g *Graph) Contains(n *Node) bool {
	if n == nil || n.index < 0 || n.index >= len(g.nodes) {
		return false
	}

	return g.nodes[n.index] == n
}

// AddUndirectedEdge links a and b with weight Weight(a.Color, b.Color),
// appending the reciprocal entries to both adjacency lists.
// It returns false, without touching the graph, if either node is not a
// member of g or a and b are the same node. Duplicate edges are not detected here; callers that sweep
// a grid check IsNeighbor in both directions first.
// Complexity: O(1) amortized.
func (g *Graph) AddUndirectedEdge(a, b *Node) bool {
	if a == b || !g.Contains(a) || !g.Contains(b) {
		return false
	}
	w := Weight(a.Color, b.Color)
	a.Neighbors = append(a.Neighbors, Neighbor{Node: b, Weight: w})
	b.Neighbors = append(b.Neighbors, Neighbor{Node: a, Weight: w})
	g.edges++

	return true
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// EdgeCount returns the number of undirected edges added so far.
func (g *Graph) EdgeCount() int { return g.edges }

// Nodes returns the nodes in insertion order. The slice is a copy; the
// nodes are shared.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// At returns the node in arena slot i, or nil if i is out of range.
func (g *Graph) At(i int) *Node {
	if i < 0 || i >= len(g.nodes) {
		return nil
	}

	return g.nodes[i]
}

// PathCost sums the edge weights along path, without any rescaling.
// A single-node path costs 0.
// Returns ErrEmptyPath for an empty path and ErrNotAdjacent (wrapped with
// the offending pair) when consecutive nodes are not linked.
func PathCost(path []*Node) (float64, error) {
	if len(path) == 0 {
		return 0, ErrEmptyPath
	}
	var total float64
	for i := 1; i < len(path); i++ {
		w, ok := path[i-1].WeightTo(path[i])
		if !ok {
			return 0, fmt.Errorf("%w: %v -> %v", ErrNotAdjacent, path[i-1].Coord(), path[i].Coord())
		}
		total += w
	}

	return total, nil
}
