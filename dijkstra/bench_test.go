package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/pixelpath/dijkstra"
	"github.com/katalvlaran/pixelpath/gridgraph"
)

// benchmarkCorners searches corner to corner on a random n×n grid.
func benchmarkCorners(b *testing.B, n int, f dijkstra.Frontier) {
	g, err := gridgraph.Build(randomGrid(rand.New(rand.NewSource(42)), n, n))
	if err != nil {
		b.Fatalf("setup Build failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.ShortestPath(g, dijkstra.Source(0, 0), dijkstra.Target(n-1, n-1), dijkstra.WithFrontier(f)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkHeap21(b *testing.B)  { benchmarkCorners(b, 21, dijkstra.FrontierHeap) }
func BenchmarkScan21(b *testing.B)  { benchmarkCorners(b, 21, dijkstra.FrontierScan) }
func BenchmarkHeap200(b *testing.B) { benchmarkCorners(b, 200, dijkstra.FrontierHeap) }
