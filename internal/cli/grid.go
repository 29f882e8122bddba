package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/graphtier/graphtier/pkg/graph"
	"github.com/graphtier/graphtier/pkg/layout"
)

// gridCommand creates the grid command for simple fallback placement.
func (c *CLI) gridCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "grid [graph.json]",
		Short: "Place nodes on a plain grid, ignoring edges",
		Long: `Place nodes on a plain grid, ignoring edges.

The grid command arranges nodes row by row in a near-square grid. It never
fails, never routes edges, and is useful as a neutral starting arrangement
or when the graph structure is too degenerate for a hierarchical layout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graph.ReadGraphFile(args[0])
			if err != nil {
				return fmt.Errorf("load graph %s: %w", args[0], err)
			}

			engine := layout.NewEngine(nil, c.Logger)
			result := engine.ComputeGridLayout(g.Nodes)

			outputPath := output
			if outputPath == "" {
				outputPath = defaultOutputPath(args[0], "grid")
			}
			if err := layout.WriteResultFile(result, outputPath); err != nil {
				return fmt.Errorf("write output %s: %w", outputPath, err)
			}

			printSuccess("Grid layout complete")
			printFile(outputPath)
			printStats(len(g.Nodes), 0, false)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.grid.json)")

	return cmd
}
