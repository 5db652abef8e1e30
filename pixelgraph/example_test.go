package pixelgraph_test

import (
	"fmt"

	"github.com/katalvlaran/pixelpath/pixelgraph"
)

// ExampleGraph_AddUndirectedEdge links a red pixel to a black one.
// Only the red channel differs by a full 255, so the weight is exactly 1.
func ExampleGraph_AddUndirectedEdge() {
	g := pixelgraph.NewGraph()
	g.Insert(0, 0, pixelgraph.Color{R: 255})
	g.Insert(0, 1, pixelgraph.Color{})
	fmt.Println("duplicate insert:", g.Insert(0, 0, pixelgraph.Color{}))

	a, _ := g.Lookup(0, 0)
	b, _ := g.Lookup(0, 1)
	g.AddUndirectedEdge(a, b)

	w, _ := b.WeightTo(a)
	fmt.Printf("nodes=%d edges=%d weight=%.1f\n", g.Len(), g.EdgeCount(), w)
	// Output:
	// duplicate insert: false
	// nodes=2 edges=1 weight=1.0
}
