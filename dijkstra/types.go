// Package dijkstra defines the result type, frontier strategies and
// functional options for the pixel shortest-path search.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/pixelpath/pixelgraph"
)

// Sentinel errors returned by the shortest-path search.
var (
	// ErrNilGraph indicates that a nil *pixelgraph.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNoSource indicates that no Source option was supplied.
	ErrNoSource = errors.New("dijkstra: source coordinate not set")

	// ErrNoTarget indicates that no Target option was supplied.
	ErrNoTarget = errors.New("dijkstra: target coordinate not set")

	// ErrVertexNotFound indicates that the source or target is not a node of the graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrUnreachable indicates that the target cannot be reached from the source.
	ErrUnreachable = errors.New("dijkstra: target unreachable from source")

	// ErrBadMaxDistance indicates that MaxDistance was negative or NaN.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was zero, negative or NaN,
	// which would turn zero-weight edges into walls.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrUnknownFrontier indicates an unrecognized frontier strategy name.
	ErrUnknownFrontier = errors.New("dijkstra: unknown frontier strategy")
)

// Frontier selects how the next node to finalize is chosen.
type Frontier int

const (
	// FrontierHeap keeps the frontier in a binary min-heap.
	FrontierHeap Frontier = iota

	// FrontierScan scans every node for the minimum on each step.
	FrontierScan
)

// String returns "heap" or "scan".
func (f Frontier) String() string {
	switch f {
	case FrontierHeap:
		return "heap"
	case FrontierScan:
		return "scan"
	default:
		return fmt.Sprintf("Frontier(%d)", int(f))
	}
}

// ParseFrontier maps "heap" or "scan" (case-insensitive) to a Frontier.
func ParseFrontier(s string) (Frontier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "heap", "":
		return FrontierHeap, nil
	case "scan":
		return FrontierScan, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFrontier, s)
	}
}

// Options configures the search.
//
// Source           – starting pixel; required by ShortestPath.
// Target           – goal pixel; required by ShortestPath.
// Frontier         – frontier strategy, FrontierHeap by default.
// MaxDistance      – nodes whose distance would exceed it are not explored.
//
//	Must be ≥ 0. Default is +∞ (no cap).
//
// InfEdgeThreshold – edges with weight ≥ this threshold are impassable.
//
//	Must be > 0. Default is +∞ (no walls).
type Options struct {
	Source           *pixelgraph.Coord
	Target           *pixelgraph.Coord
	Frontier         Frontier
	MaxDistance      float64
	InfEdgeThreshold float64
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// Source sets the starting pixel.
func Source(row, col int) Option {
	return func(o *Options) {
		o.Source = &pixelgraph.Coord{Row: row, Col: col}
	}
}

// Target sets the goal pixel.
func Target(row, col int) Option {
	return func(o *Options) {
		o.Target = &pixelgraph.Coord{Row: row, Col: col}
	}
}

// WithFrontier selects the frontier strategy.
func WithFrontier(f Frontier) Option {
	return func(o *Options) {
		o.Frontier = f
	}
}

// WithMaxDistance caps the explored (unscaled) distance.
// Panics with ErrBadMaxDistance on negative or NaN input.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold makes every edge weighing at least threshold impassable.
// Panics with ErrBadInfThreshold on zero, negative or NaN input.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 || math.IsNaN(threshold) {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with no source or target, the heap
// frontier, and no distance cap or walls.
func DefaultOptions() Options {
	return Options{
		Frontier:         FrontierHeap,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// Result is one answered query.
//
// Path runs from start to goal inclusive; consecutive nodes are always
// neighbors. Distance is the sum of the normalized edge weights along Path;
// Cost is Distance × pixelgraph.ChannelMax. Visited counts finalized nodes.
type Result struct {
	Path     []*pixelgraph.Node
	Distance float64
	Cost     float64
	Visited  int
}

// Coords returns the path as coordinates.
func (r *Result) Coords() []pixelgraph.Coord {
	out := make([]pixelgraph.Coord, len(r.Path))
	for i, n := range r.Path {
		out[i] = n.Coord()
	}

	return out
}

// String renders the path as "(r, c) -> (r, c) -> …".
func (r *Result) String() string {
	parts := make([]string, len(r.Path))
	for i, n := range r.Path {
		parts[i] = n.Coord().String()
	}

	return strings.Join(parts, " -> ")
}
