package gridgraph

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pixelpath/pixelgraph"
)

// TestRegions_Identical groups identical colors under maxWeight=0.
//
// Grid (B = black, W = white):
//
//	B W W
//	B B W
//	W B B
//
// Expected: black region of 5 cells, white region of 3 cells at top-right,
// and a single white cell at bottom-left.
func TestRegions_Identical(t *testing.T) {
	B, W := pixelgraph.Color{}, pixelgraph.Gray(255)
	gg, err := From2D([][]pixelgraph.Color{
		{B, W, W},
		{B, B, W},
		{W, B, B},
	})
	require.NoError(t, err)

	regions := gg.Regions(0)
	require.Len(t, regions, 3)

	sizes := []int{len(regions[0]), len(regions[1]), len(regions[2])}
	sort.Ints(sizes)
	assert.Equal(t, []int{1, 3, 5}, sizes)
	// Regions are ordered by their first row-major cell.
	assert.Equal(t, 0, regions[0][0])
	assert.Equal(t, gg.Index(0, 1), regions[1][0])
	assert.Equal(t, gg.Index(2, 0), regions[2][0])
}

// TestRegions_Thresholds checks the extremes of maxWeight.
func TestRegions_Thresholds(t *testing.T) {
	grid := [][]pixelgraph.Color{
		{pixelgraph.Gray(0), pixelgraph.Gray(10), pixelgraph.Gray(20)},
		{pixelgraph.Gray(200), pixelgraph.Gray(210), pixelgraph.Gray(255)},
	}
	gg, err := From2D(grid)
	require.NoError(t, err)

	assert.Len(t, gg.Regions(0), 6, "all distinct colors")
	assert.Len(t, gg.Regions(pixelgraph.MaxWeight), 1, "everything connects")
	assert.Len(t, gg.Regions(-1), 6, "negative joins nothing")
	assert.Len(t, gg.Regions(math.NaN()), 6, "NaN joins nothing")

	// Gray steps of 10 weigh sqrt(3)*10/255 ≈ 0.068; the row gap is far larger.
	near := gg.Regions(0.1)
	assert.Len(t, near, 3)
}
