package pixelgraph

import "math"

const (
	// ChannelMax is the largest channel intensity; channels are divided by
	// it before distances are taken and path costs are multiplied by it.
	ChannelMax = 255
)

// MaxWeight is the largest weight Weight can return: the distance between
// black and white in the normalized RGB cube.
var MaxWeight = math.Sqrt(3)

// Weight returns the dissimilarity between two colors: the Euclidean
// distance of the two colors after every channel is scaled into [0, 1].
// The result lies in [0, MaxWeight] and is symmetric in its arguments.
func Weight(a, b Color) float64 {
	dr := (float64(a.R) - float64(b.R)) / ChannelMax
	dg := (float64(a.G) - float64(b.G)) / ChannelMax
	db := (float64(a.B) - float64(b.B)) / ChannelMax

	return math.Sqrt(dr*dr + dg*dg + db*db)
}
