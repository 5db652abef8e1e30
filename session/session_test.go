package session_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pixelpath/dijkstra"
	"github.com/katalvlaran/pixelpath/gridgraph"
	"github.com/katalvlaran/pixelpath/pixelgraph"
	"github.com/katalvlaran/pixelpath/session"
)

func checkerboard(t *testing.T) *session.Session {
	t.Helper()
	k, w := pixelgraph.Color{}, pixelgraph.Gray(255)
	g, err := gridgraph.Build([][]pixelgraph.Color{{k, w}, {w, k}})
	require.NoError(t, err)
	s, err := session.New(g, 2, 2, dijkstra.WithFrontier(dijkstra.FrontierScan))
	require.NoError(t, err)
	return s
}

func TestNew_NilGraph(t *testing.T) {
	_, err := session.New(nil, 1, 1)
	assert.ErrorIs(t, err, session.ErrNilGraph)
}

func TestSelect_Flow(t *testing.T) {
	s := checkerboard(t)
	assert.Equal(t, session.AwaitingStart, s.State())
	assert.Nil(t, s.Result())

	st, err := s.Select(pixelgraph.Coord{Row: 0, Col: 0})
	require.NoError(t, err)
	assert.Equal(t, session.AwaitingGoal, st)
	start, ok := s.Start()
	require.True(t, ok)
	assert.Equal(t, pixelgraph.Coord{}, start)
	_, ok = s.Goal()
	assert.False(t, ok)

	st, err = s.Select(pixelgraph.Coord{Row: 1, Col: 1})
	require.NoError(t, err)
	assert.Equal(t, session.Solved, st)
	require.NotNil(t, s.Result())
	assert.InDelta(t, 2*math.Sqrt(3)*255, s.Result().Cost, 1e-9)
	assert.True(t, s.OnPath(pixelgraph.Coord{Row: 0, Col: 1}))
	assert.False(t, s.OnPath(pixelgraph.Coord{Row: 1, Col: 0}))

	// A third selection starts a new query.
	st, err = s.Select(pixelgraph.Coord{Row: 1, Col: 0})
	require.NoError(t, err)
	assert.Equal(t, session.AwaitingGoal, st)
	assert.Nil(t, s.Result())
	start, _ = s.Start()
	assert.Equal(t, pixelgraph.Coord{Row: 1, Col: 0}, start)
}

func TestSelect_OutOfBounds(t *testing.T) {
	s := checkerboard(t)
	for _, c := range []pixelgraph.Coord{{Row: -1}, {Row: 2}, {Col: 2}, {Col: -3}} {
		st, err := s.Select(c)
		assert.ErrorIs(t, err, session.ErrOutOfBounds)
		assert.Equal(t, session.AwaitingStart, st)
	}
}

func TestReset(t *testing.T) {
	s := checkerboard(t)
	_, _ = s.Select(pixelgraph.Coord{})
	_, _ = s.Select(pixelgraph.Coord{Row: 1, Col: 1})
	s.Reset()

	assert.Equal(t, session.AwaitingStart, s.State())
	assert.Nil(t, s.Result())
	_, ok := s.Start()
	assert.False(t, ok)
	assert.False(t, s.OnPath(pixelgraph.Coord{}))
	assert.Equal(t, "select start pixel", s.State().String())
}

func TestSelect_SearchErrorKeepsStart(t *testing.T) {
	k, w := pixelgraph.Color{}, pixelgraph.Gray(255)
	g, err := gridgraph.Build([][]pixelgraph.Color{{k, w, k}})
	require.NoError(t, err)
	s, err := session.New(g, 3, 1, dijkstra.WithInfEdgeThreshold(1))
	require.NoError(t, err)

	_, err = s.Select(pixelgraph.Coord{Row: 0, Col: 0})
	require.NoError(t, err)
	st, err := s.Select(pixelgraph.Coord{Row: 0, Col: 2})
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)
	assert.Equal(t, session.AwaitingGoal, st)

	st, err = s.Select(pixelgraph.Coord{Row: 0, Col: 0})
	require.NoError(t, err)
	assert.Equal(t, session.Solved, st)
	assert.Len(t, s.Result().Path, 1)
}
