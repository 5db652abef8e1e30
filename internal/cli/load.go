package cli

import (
	"context"

	"github.com/katalvlaran/pixelpath/gridgraph"
	"github.com/katalvlaran/pixelpath/imageio"
	"github.com/katalvlaran/pixelpath/pixelgraph"
)

// loaded is an image sampled into a grid together with its graph.
type loaded struct {
	cells [][]pixelgraph.Color
	graph *pixelgraph.Graph
	grid  *gridgraph.GridGraph
}

// loadImage samples path with the configured grid size and builds the graph.
func loadImage(ctx context.Context, path string) (*loaded, error) {
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	prog := newProgress(logger)
	cells, err := imageio.Load(path, cfg.Grid.Width, cfg.Grid.Height, cfg.Resampler())
	if err != nil {
		return nil, err
	}
	prog.done("sampled image", "path", path, "width", cfg.Grid.Width, "height", cfg.Grid.Height, "resample", cfg.Resampler())

	prog = newProgress(logger)
	gg, err := gridgraph.From2D(cells)
	if err != nil {
		return nil, err
	}
	g := gg.Build()
	prog.done("built graph", "nodes", g.Len(), "edges", g.EdgeCount())

	return &loaded{cells: cells, graph: g, grid: gg}, nil
}
