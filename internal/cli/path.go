package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pixelpath/dijkstra"
	"github.com/katalvlaran/pixelpath/pixelgraph"
)

// pathJSON is the --json output of the path command.
type pathJSON struct {
	Path     [][2]int `json:"path"`
	Cost     float64  `json:"cost"`
	Distance float64  `json:"distance"`
	Visited  int      `json:"visited"`
}

func newPathCmd() *cobra.Command {
	var (
		start, goal string
		frontier    string
		asJSON      bool
		showGrid    bool
	)

	cmd := &cobra.Command{
		Use:   "path IMAGE",
		Short: "Print the minimum-cost path between two pixels",
		Example: `  pixelpath path photo.png --start 0,0 --goal 20,20
  pixelpath path photo.png --start 3,4 --goal 17,9 --frontier scan --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := configFromContext(ctx)

			from, err := ParseCoord(start)
			if err != nil {
				return fmt.Errorf("--start: %w", err)
			}
			to, err := ParseCoord(goal)
			if err != nil {
				return fmt.Errorf("--goal: %w", err)
			}

			img, err := loadImage(ctx, args[0])
			if err != nil {
				return err
			}

			opts := cfg.SearchOptions()
			if cmd.Flags().Changed("frontier") {
				f, err := dijkstra.ParseFrontier(frontier)
				if err != nil {
					return err
				}
				opts = append(opts, dijkstra.WithFrontier(f))
			}
			opts = append(opts, dijkstra.Source(from.Row, from.Col), dijkstra.Target(to.Row, to.Col))

			prog := newProgress(logger)
			res, err := dijkstra.ShortestPath(img.graph, opts...)
			if err != nil {
				return err
			}
			prog.done("searched", "visited", res.Visited, "hops", len(res.Path)-1)

			out := cmd.OutOrStdout()
			if asJSON {
				return writePathJSON(out, res)
			}
			if showGrid {
				onPath := make(map[pixelgraph.Coord]bool, len(res.Path))
				for _, n := range res.Path {
					onPath[n.Coord()] = true
				}
				fmt.Fprint(out, renderGrid(img.cells, func(c pixelgraph.Coord) string {
					switch {
					case c == from:
						return markStart
					case c == to:
						return markGoal
					case onPath[c]:
						return markPath
					}
					return markBlank
				}))
				fmt.Fprintln(out)
			}
			printResult(out, res)
			return nil
		},
	}

	cmd.Flags().StringVarP(&start, "start", "s", "", "start pixel as row,col")
	cmd.Flags().StringVarP(&goal, "goal", "g", "", "goal pixel as row,col")
	cmd.Flags().StringVar(&frontier, "frontier", "heap", "frontier strategy: heap or scan")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	cmd.Flags().BoolVar(&showGrid, "show", false, "draw the grid with the path overlaid")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("goal")

	return cmd
}

// printResult prints the path as "(r, c) -> …" followed by its cost.
func printResult(w io.Writer, res *dijkstra.Result) {
	fmt.Fprintln(w, styleTitle.Render("Shortest path"))
	printKeyValue(w, "path", res.String())
	printKeyValue(w, "cost", styleNumber.Render(fmt.Sprintf("%.4f", res.Cost)))
	printKeyValue(w, "hops", fmt.Sprintf("%d", len(res.Path)-1))
}

func writePathJSON(w io.Writer, res *dijkstra.Result) error {
	out := pathJSON{
		Path:     make([][2]int, len(res.Path)),
		Cost:     res.Cost,
		Distance: res.Distance,
		Visited:  res.Visited,
	}
	for i, n := range res.Path {
		out.Path[i] = [2]int{n.Row, n.Col}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
