package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pixelpath/gridgraph"
	"github.com/katalvlaran/pixelpath/pixelgraph"
	"github.com/katalvlaran/pixelpath/session"
)

// writeCheckerboard writes a 2×2 black/white checkerboard PNG.
func writeCheckerboard(t *testing.T) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	black := color.NRGBA{A: 255}
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	img.SetNRGBA(0, 0, black)
	img.SetNRGBA(1, 0, white)
	img.SetNRGBA(0, 1, white)
	img.SetNRGBA(1, 1, black)

	path := filepath.Join(t.TempDir(), "board.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

// writeConfig writes a config that samples images to 2×2 without blurring.
func writeConfig(t *testing.T, extra string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pixelpath.toml")
	body := "[grid]\nwidth = 2\nheight = 2\nresample = \"nearest\"\n" + extra
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestParseCoord(t *testing.T) {
	cases := []struct {
		in   string
		want pixelgraph.Coord
		ok   bool
	}{
		{"3,4", pixelgraph.Coord{Row: 3, Col: 4}, true},
		{" (0, 20) ", pixelgraph.Coord{Row: 0, Col: 20}, true},
		{"-1,2", pixelgraph.Coord{Row: -1, Col: 2}, true},
		{"3", pixelgraph.Coord{}, false},
		{"a,b", pixelgraph.Coord{}, false},
		{"1,2,3", pixelgraph.Coord{}, false},
		{"1,", pixelgraph.Coord{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseCoord(tc.in)
			if !tc.ok {
				assert.ErrorIs(t, err, errBadCoord)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNewLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)
	logger.Debug("hidden")
	assert.Zero(t, buf.Len())
	logger.Info("shown")
	assert.Contains(t, buf.String(), "shown")

	assert.Equal(t, log.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, log.WarnLevel, parseLevel("warn"))
	assert.Equal(t, log.InfoLevel, parseLevel(""))
}

func TestContextDefaults(t *testing.T) {
	ctx := context.Background()
	assert.Same(t, log.Default(), loggerFromContext(ctx))
	assert.Equal(t, 21, configFromContext(ctx).Grid.Width)
}

func TestPathCmd_JSON(t *testing.T) {
	img := writeCheckerboard(t)
	cfg := writeConfig(t, "")

	for _, frontier := range []string{"heap", "scan"} {
		t.Run(frontier, func(t *testing.T) {
			out, _, err := run(t, "path", img, "-c", cfg, "--start", "0,0", "--goal", "1,1", "--frontier", frontier, "--json")
			require.NoError(t, err)

			var got pathJSON
			require.NoError(t, json.Unmarshal([]byte(out), &got))
			assert.Equal(t, [][2]int{{0, 0}, {0, 1}, {1, 1}}, got.Path)
			assert.InDelta(t, 2*math.Sqrt(3)*255, got.Cost, 1e-9)
			assert.InDelta(t, 2*math.Sqrt(3), got.Distance, 1e-12)
		})
	}
}

func TestPathCmd_Text(t *testing.T) {
	img := writeCheckerboard(t)
	out, logs, err := run(t, "path", img, "-v", "-c", writeConfig(t, ""), "-s", "1,0", "-g", "1,0", "--show")
	require.NoError(t, err)
	assert.Contains(t, out, "(1, 0)")
	assert.Contains(t, out, "0.0000")
	assert.Contains(t, logs, "built graph")
}

func TestPathCmd_Errors(t *testing.T) {
	img := writeCheckerboard(t)
	cfg := writeConfig(t, "")

	_, _, err := run(t, "path", img, "-c", cfg, "--start", "zero", "--goal", "1,1")
	assert.ErrorIs(t, err, errBadCoord)

	_, _, err = run(t, "path", img, "-c", cfg, "--start", "0,0", "--goal", "5,5")
	assert.Error(t, err)

	_, _, err = run(t, "path", img, "-c", cfg, "--start", "0,0", "--goal", "1,1", "--frontier", "fib")
	assert.Error(t, err)

	_, _, err = run(t, "path", img, "-c", writeConfig(t, "[search]\ninf_edge_threshold = 1.0\n"), "--start", "0,0", "--goal", "1,1")
	assert.Error(t, err, "black/white edges are walls, so the far corner is unreachable")

	_, _, err = run(t, "path", filepath.Join(t.TempDir(), "missing.png"), "--start", "0,0", "--goal", "1,1")
	assert.Error(t, err)

	_, _, err = run(t, "path", img, "-c", filepath.Join(t.TempDir(), "none.toml"), "--start", "0,0", "--goal", "1,1")
	assert.Error(t, err)
}

func TestGridCmd(t *testing.T) {
	out, _, err := run(t, "grid", writeCheckerboard(t), "-c", writeConfig(t, ""))
	require.NoError(t, err)
	assert.Contains(t, out, "2x2")
	assert.Contains(t, out, "regions")
}

func TestPickModel(t *testing.T) {
	k, w := pixelgraph.Color{}, pixelgraph.Gray(255)
	cells := [][]pixelgraph.Color{{k, w}, {w, k}}
	g, err := gridgraph.Build(cells)
	require.NoError(t, err)
	sess, err := session.New(g, 2, 2)
	require.NoError(t, err)

	var m tea.Model = newPickModel(sess, cells)
	press := func(keys ...tea.KeyMsg) {
		for _, key := range keys {
			m, _ = m.Update(key)
		}
	}
	enter := tea.KeyMsg{Type: tea.KeyEnter}
	down := tea.KeyMsg{Type: tea.KeyDown}
	right := tea.KeyMsg{Type: tea.KeyRight}
	up := tea.KeyMsg{Type: tea.KeyUp}

	press(up, enter) // cursor clamped at (0,0)
	assert.Equal(t, session.AwaitingGoal, sess.State())

	press(down, right, right, enter)
	require.Equal(t, session.Solved, sess.State())
	assert.InDelta(t, 2*math.Sqrt(3)*255, sess.Result().Cost, 1e-9)
	assert.Equal(t, pixelgraph.Coord{Row: 1, Col: 1}, m.(pickModel).cursor)
	assert.Contains(t, m.View(), "883.3459")

	press(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	assert.Equal(t, session.AwaitingStart, sess.State())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
