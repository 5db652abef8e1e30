package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGridCmd() *cobra.Command {
	var maxWeight float64

	cmd := &cobra.Command{
		Use:   "grid IMAGE",
		Short: "Show the sampled pixel grid and its color regions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := loadImage(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, renderGrid(img.cells, nil))
			fmt.Fprintln(out)
			printKeyValue(out, "size", fmt.Sprintf("%dx%d", img.grid.Height, img.grid.Width))
			printKeyValue(out, "nodes", fmt.Sprintf("%d", img.graph.Len()))
			printKeyValue(out, "edges", fmt.Sprintf("%d", img.graph.EdgeCount()))
			printKeyValue(out, "regions", fmt.Sprintf("%d", len(img.grid.Regions(maxWeight))))
			return nil
		},
	}
	cmd.Flags().Float64Var(&maxWeight, "region-weight", 0.1, "largest edge weight joining two cells into one region")

	return cmd
}
