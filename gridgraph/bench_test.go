package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/pixelpath/gridgraph"
	"github.com/katalvlaran/pixelpath/pixelgraph"
)

// BenchmarkBuild measures graph construction on a random 200×200 grid.
// Complexity: O(W×H×d)
func BenchmarkBuild(b *testing.B) {
	const n = 200
	r := rand.New(rand.NewSource(42))
	grid := make([][]pixelgraph.Color, n)
	for y := range grid {
		grid[y] = make([]pixelgraph.Color, n)
		for x := range grid[y] {
			grid[y][x] = pixelgraph.Color{R: uint8(r.Intn(256)), G: uint8(r.Intn(256)), B: uint8(r.Intn(256))}
		}
	}
	gg, err := gridgraph.From2D(grid)
	if err != nil {
		b.Fatalf("setup From2D failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.Build()
	}
}
