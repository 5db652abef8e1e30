// Package session keeps the state of one interactive tracing session: the
// graph built from the current image, the selected start and goal pixels
// and the last answered query.
//
// A Session replaces process-wide UI state. Front-ends own one Session per
// loaded image, feed it pixel selections and read back the result.
//
// Flow:
//
//	AwaitingStart --Select--> AwaitingGoal --Select--> Solved
//	      ^                                               |
//	      +------------------- Reset ---------------------+
//
// Selecting while Solved starts a new query from the selected pixel.
// A Session is not safe for concurrent use.
package session

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pixelpath/dijkstra"
	"github.com/katalvlaran/pixelpath/pixelgraph"
)

var (
	// ErrNilGraph indicates New was called without a graph.
	ErrNilGraph = errors.New("session: graph is nil")
	// ErrOutOfBounds indicates a selected pixel outside the grid.
	ErrOutOfBounds = errors.New("session: pixel out of bounds")
)

// State is the position in the selection flow.
type State int

const (
	// AwaitingStart means no pixel is selected yet.
	AwaitingStart State = iota
	// AwaitingGoal means the start pixel is selected.
	AwaitingGoal
	// Solved means both pixels are selected and the search has run.
	Solved
)

// String returns a short human-readable state name.
func (s State) String() string {
	switch s {
	case AwaitingStart:
		return "select start pixel"
	case AwaitingGoal:
		return "select goal pixel"
	case Solved:
		return "solved"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Session is the explicit context passed between a front-end and the
// search engine.
type Session struct {
	graph         *pixelgraph.Graph
	width, height int
	opts          []dijkstra.Option

	state  State
	start  *pixelgraph.Coord
	goal   *pixelgraph.Coord
	result *dijkstra.Result
}

// New returns a Session over g, a width×height grid graph. opts are passed
// to every search (frontier, caps); Source and Target are set by Select.
func New(g *pixelgraph.Graph, width, height int, opts ...dijkstra.Option) (*Session, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	return &Session{graph: g, width: width, height: height, opts: opts}, nil
}

// Graph returns the session's graph.
func (s *Session) Graph() *pixelgraph.Graph { return s.graph }

// Size returns the grid width and height.
func (s *Session) Size() (width, height int) { return s.width, s.height }

// State returns the current position in the selection flow.
func (s *Session) State() State { return s.state }

// Start returns the selected start pixel, if any.
func (s *Session) Start() (pixelgraph.Coord, bool) { return deref(s.start) }

// Goal returns the selected goal pixel, if any.
func (s *Session) Goal() (pixelgraph.Coord, bool) { return deref(s.goal) }

// Result returns the last search result, or nil before the first search.
func (s *Session) Result() *dijkstra.Result { return s.result }

// Select records a clicked pixel and advances the flow. The second
// selection runs the search; its error, if any, is returned and leaves the
// session in AwaitingGoal so another goal can be picked.
func (s *Session) Select(c pixelgraph.Coord) (State, error) {
	if c.Row < 0 || c.Row >= s.height || c.Col < 0 || c.Col >= s.width {
		return s.state, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, s.height, s.width)
	}

	switch s.state {
	case AwaitingGoal:
		opts := append([]dijkstra.Option{}, s.opts...)
		opts = append(opts, dijkstra.Source(s.start.Row, s.start.Col), dijkstra.Target(c.Row, c.Col))
		res, err := dijkstra.ShortestPath(s.graph, opts...)
		if err != nil {
			return s.state, err
		}
		s.goal = &c
		s.result = res
		s.state = Solved
	default:
		s.Reset()
		s.start = &c
		s.state = AwaitingGoal
	}

	return s.state, nil
}

// Reset clears the selections and the last result.
func (s *Session) Reset() {
	s.state = AwaitingStart
	s.start = nil
	s.goal = nil
	s.result = nil
}

// OnPath reports whether c lies on the last result's path.
func (s *Session) OnPath(c pixelgraph.Coord) bool {
	if s.result == nil {
		return false
	}
	for _, n := range s.result.Path {
		if n.Row == c.Row && n.Col == c.Col {
			return true
		}
	}
	return false
}

func deref(c *pixelgraph.Coord) (pixelgraph.Coord, bool) {
	if c == nil {
		return pixelgraph.Coord{}, false
	}
	return *c, true
}
