// Package gridgraph defines core types and options for building pixel grid graphs.
package gridgraph

import "github.com/katalvlaran/pixelpath/pixelgraph"

// Connectivity selects neighbor connectivity.
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: up, down, left, right.
	Conn4 Connectivity = iota
)

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// Conn chooses the neighbor connectivity. Only Conn4 is valid.
	Conn Connectivity
}

// DefaultGridOptions returns GridOptions with Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// GridGraph is a rectangular grid of pixel colors. It is immutable once built.
// Width and Height define dimensions; Cells[row][col] holds the input color.
type GridGraph struct {
	Width, Height   int
	Cells           [][]pixelgraph.Color
	Conn            Connectivity
	neighborOffsets [][2]int
}
