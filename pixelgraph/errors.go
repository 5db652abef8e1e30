package pixelgraph

import "errors"

var (
	// ErrEmptyPath indicates a path with no nodes was supplied.
	ErrEmptyPath = errors.New("pixelgraph: path has no nodes")
	// ErrNotAdjacent indicates two consecutive path nodes share no edge.
	ErrNotAdjacent = errors.New("pixelgraph: consecutive path nodes are not adjacent")
)
