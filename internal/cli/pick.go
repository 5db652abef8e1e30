package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pixelpath/pixelgraph"
	"github.com/katalvlaran/pixelpath/session"
)

// pickModel is the bubbletea model for choosing start and goal pixels on
// the sampled grid. All selection state lives in the session.
type pickModel struct {
	sess   *session.Session
	cells  [][]pixelgraph.Color
	cursor pixelgraph.Coord
	err    error
}

func newPickModel(sess *session.Session, cells [][]pixelgraph.Color) pickModel {
	return pickModel{sess: sess, cells: cells}
}

func (m pickModel) Init() tea.Cmd {
	return nil
}

func (m pickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	w, h := m.sess.Size()
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor.Row > 0 {
			m.cursor.Row--
		}
	case "down", "j":
		if m.cursor.Row < h-1 {
			m.cursor.Row++
		}
	case "left", "h":
		if m.cursor.Col > 0 {
			m.cursor.Col--
		}
	case "right", "l":
		if m.cursor.Col < w-1 {
			m.cursor.Col++
		}
	case "enter", " ":
		_, m.err = m.sess.Select(m.cursor)
	case "r":
		m.sess.Reset()
		m.err = nil
	}
	return m, nil
}

func (m pickModel) View() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Pick two pixels"))
	b.WriteString("\n")
	b.WriteString(styleDim.Render("←↑↓→ move  ⏎ select  r reset  q quit"))
	b.WriteString("\n\n")

	start, hasStart := m.sess.Start()
	goal, hasGoal := m.sess.Goal()
	b.WriteString(renderGrid(m.cells, func(c pixelgraph.Coord) string {
		switch {
		case c == m.cursor:
			return markCursor
		case hasStart && c == start:
			return markStart
		case hasGoal && c == goal:
			return markGoal
		case m.sess.OnPath(c):
			return markPath
		}
		return markBlank
	}))
	b.WriteString("\n")

	b.WriteString(styleKey.Render("cursor") + " " + styleValue.Render(m.cursor.String()) + "\n")
	b.WriteString(styleKey.Render("status") + " " + styleValue.Render(m.sess.State().String()) + "\n")
	if hasStart {
		b.WriteString(styleKey.Render("start") + " " + styleValue.Render(start.String()) + "\n")
	}
	if res := m.sess.Result(); res != nil {
		b.WriteString(styleKey.Render("goal") + " " + styleValue.Render(goal.String()) + "\n")
		b.WriteString(styleKey.Render("cost") + " " + styleNumber.Render(fmt.Sprintf("%.4f", res.Cost)) + "\n")
		b.WriteString(styleKey.Render("hops") + " " + styleValue.Render(fmt.Sprintf("%d", len(res.Path)-1)) + "\n")
	}
	if m.err != nil {
		b.WriteString(styleError.Render("error: "+m.err.Error()) + "\n")
	}
	return b.String()
}

func newPickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pick IMAGE",
		Short: "Choose start and goal pixels interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := configFromContext(ctx)

			img, err := loadImage(ctx, args[0])
			if err != nil {
				return err
			}
			sess, err := session.New(img.graph, img.grid.Width, img.grid.Height, cfg.SearchOptions()...)
			if err != nil {
				return err
			}

			p := tea.NewProgram(newPickModel(sess, img.cells),
				tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if _, err := p.Run(); err != nil {
				return err
			}
			if res := sess.Result(); res != nil {
				printResult(cmd.OutOrStdout(), res)
			}
			return nil
		},
	}
}
