package gridgraph

import "github.com/katalvlaran/pixelpath/pixelgraph"

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs and ErrConnectivity for
// anything but Conn4.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(cells [][]pixelgraph.Color, opts GridOptions) (*GridGraph, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	if opts.Conn != Conn4 {
		return nil, ErrConnectivity
	}
	// Deep copy to prevent external mutation
	copied := make([][]pixelgraph.Color, h)
	for r := 0; r < h; r++ {
		copied[r] = make([]pixelgraph.Color, w)
		copy(copied[r], cells[r])
	}

	return &GridGraph{
		Width:  w,
		Height: h,
		Cells:  copied,
		Conn:   opts.Conn,
		// vertical first, then horizontal
		neighborOffsets: [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}},
	}, nil
}

// From2D is NewGridGraph with DefaultGridOptions.
func From2D(cells [][]pixelgraph.Color) (*GridGraph, error) {
	return NewGridGraph(cells, DefaultGridOptions())
}

// Build validates cells and returns the fully wired pixel graph.
func Build(cells [][]pixelgraph.Color) (*pixelgraph.Graph, error) {
	gg, err := From2D(cells)
	if err != nil {
		return nil, err
	}

	return gg.Build(), nil
}

// InBounds reports whether (row, col) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(row, col int) bool {
	return row >= 0 && row < gg.Height && col >= 0 && col < gg.Width
}

// NeighborOffsets returns the precomputed (dRow, dCol) neighbor offsets.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Build materializes the grid as a *pixelgraph.Graph.
//
// Steps:
//  1. Insert a node for every cell in row-major order, so a node's arena
//     index equals Index(row, col).
//  2. For every node, look up each in-bounds 4-neighbor and add the edge
//     unless either endpoint already lists the other. Every pair is seen
//     from both ends, so the guard keeps each edge single.
//
// Complexity: O(W×H×d) time, O(W×H + E) memory.
func (gg *GridGraph) Build() *pixelgraph.Graph {
	g := pixelgraph.NewGraph(pixelgraph.WithCapacity(gg.Width * gg.Height))
	for r := 0; r < gg.Height; r++ {
		for c := 0; c < gg.Width; c++ {
			g.Insert(r, c, gg.Cells[r][c])
		}
	}

	for _, u := range g.Nodes() {
		for _, d := range gg.neighborOffsets {
			nr, nc := u.Row+d[0], u.Col+d[1]
			if !gg.InBounds(nr, nc) {
				continue
			}
			v, ok := g.Lookup(nr, nc)
			if !ok {
				continue
			}
			if u.IsNeighbor(v) || v.IsNeighbor(u) {
				continue
			}
			g.AddUndirectedEdge(u, v)
		}
	}

	return g
}

// Index maps (row, col) to a row-major index: row*Width + col.
// Complexity: O(1).
func (gg *GridGraph) Index(row, col int) int {
	return row*gg.Width + col
}

// Coordinate converts a row-major index back to (row, col).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (row, col int) {
	return idx / gg.Width, idx % gg.Width
}
