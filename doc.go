// Package pixelpath turns a picture into a weighted graph and finds the
// cheapest way across it.
//
// An image is sampled into a small grid of RGB cells (21×21 by default).
// Each cell becomes a node, each node is linked to its up, down, left and
// right neighbors, and every link weighs the Euclidean distance between
// the two colors with channels scaled to [0, 1]. A shortest-path query
// between two pixels then returns the route that crosses the fewest color
// changes, reported as a cost of distance×255.
//
// Subpackages:
//
//	pixelgraph/ — Color, Node and Graph types, the color-distance weight
//	gridgraph/  — builds the 4-connected graph from a color grid, color regions
//	dijkstra/   — single-pair shortest path with heap or linear-scan frontier
//	imageio/    — decodes and resamples images into color grids
//	session/    — two-click start/goal selection state
//	config/     — TOML configuration for grid size and search limits
//
// Quick ASCII example (2×2 checkerboard, every edge weighs √3 and the
// black corners touch only diagonally):
//
//	    ■───□
//	    │   │
//	    □───■
//
//	(0, 0) -> (0, 1) -> (1, 1)   cost 883.35
//
// The pixelpath command wraps all of this:
//
//	go install github.com/katalvlaran/pixelpath/cmd/pixelpath@latest
//	pixelpath path photo.png --start 0,0 --goal 20,20
package pixelpath
