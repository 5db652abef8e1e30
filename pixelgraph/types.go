package pixelgraph

import "fmt"

// Color is one pixel's channel intensities, each in [0, 255].
type Color struct {
	R, G, B uint8
}

// Gray returns a Color with all three channels set to v.
func Gray(v uint8) Color { return Color{R: v, G: v, B: v} }

// Coord addresses a grid cell by row and column.
type Coord struct {
	Row, Col int
}

// String renders c as "(row, col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Neighbor is one adjacency entry: a non-owning reference to another node
// of the same Graph and the weight of the edge leading to it.
type Neighbor struct {
	Node   *Node
	Weight float64
}

// Node represents a single pixel.
//
// Row and Col form the node's unique key within its Graph. Neighbors is
// appended to only by Graph.AddUndirectedEdge and must be treated as
// read-only by callers.
type Node struct {
	Row, Col  int
	Color     Color
	Neighbors []Neighbor

	index int // arena slot inside the owning Graph
}

// Coord returns the node's coordinate.
func (n *Node) Coord() Coord { return Coord{Row: n.Row, Col: n.Col} }

// Index returns the node's insertion slot inside its Graph.
// Indices are dense in [0, Graph.Len()).
func (n *Node) Index() int { return n.index }

// Degree reports how many neighbors n has.
func (n *Node) Degree() int { return len(n.Neighbors) }

// IsNeighbor reports whether other appears in n's adjacency list.
// Nodes are compared by coordinate.
func (n *Node) IsNeighbor(other *Node) bool {
	_, ok := n.WeightTo(other)
	return ok
}

// WeightTo returns the weight of the edge between n and other, if one exists.
func (n *Node) WeightTo(other *Node) (float64, bool) {
	if other == nil {
		return 0, false
	}
	for _, nb := range n.Neighbors {
		if nb.Node.Row == other.Row && nb.Node.Col == other.Col {
			return nb.Weight, true
		}
	}
	return 0, false
}

// String renders n as "Node(row, col) : {R G B}".
func (n *Node) String() string {
	return fmt.Sprintf("Node(%d, %d) : %v", n.Row, n.Col, n.Color)
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithCapacity pre-sizes the node arena for n nodes.
// Non-positive values are ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.nodes = make([]*Node, 0, n)
			g.index = make(map[Coord]int, n)
		}
	}
}

// Graph owns every pixel node of one image.
//
// nodes is the arena in insertion order; index maps a coordinate to its
// arena slot. The zero value is an empty graph ready for Insert.
// Edges are always undirected: every entry in a.Neighbors
// pointing at b has a mirror entry in b.Neighbors with the same weight.
type Graph struct {
	nodes []*Node
	index map[Coord]int
	edges int
}
