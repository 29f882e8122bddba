package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/graphtier/graphtier/pkg/graph"
	"github.com/graphtier/graphtier/pkg/layout"
)

// tieredCommand creates the tiered command for breadth-first column layouts.
func (c *CLI) tieredCommand() *cobra.Command {
	var output string
	opts := layout.TieredOptions{}

	cmd := &cobra.Command{
		Use:   "tiered [graph.json]",
		Short: "Arrange nodes into tiered columns by reachability",
		Long: `Arrange nodes into tiered columns by reachability.

The tiered command assigns each node a column and row: column 0 holds the
nodes nothing points at, and each following column holds the nodes first
reached from the previous ones. Within a column, rows are ordered by node
type (root, document, section, concept, entity, keyword) and then by ID.

Nodes trapped in cycles, and thus never reachable from a root, are placed
together in one final column.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graph.ReadGraphFile(args[0])
			if err != nil {
				return fmt.Errorf("load graph %s: %w", args[0], err)
			}

			cells := layout.TieredColumns(g.Nodes, g.Edges, opts)

			data, err := json.MarshalIndent(cells, "", "  ")
			if err != nil {
				return fmt.Errorf("serialize cells: %w", err)
			}

			outputPath := output
			if outputPath == "" {
				outputPath = defaultOutputPath(args[0], "tiered")
			}
			if err := os.WriteFile(outputPath, data, 0644); err != nil {
				return fmt.Errorf("write output %s: %w", outputPath, err)
			}

			printSuccess("Tiered layout complete")
			printFile(outputPath)
			printStats(len(g.Nodes), len(g.Edges), false)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.tiered.json)")
	cmd.Flags().Float64Var(&opts.ColumnWidth, "column-width", layout.DefaultColumnWidth, "column width")
	cmd.Flags().Float64Var(&opts.RowHeight, "row-height", layout.DefaultRowHeight, "row height")
	cmd.Flags().Float64Var(&opts.Spacing, "spacing", layout.DefaultTieredSpacing, "gap between columns and rows")
	cmd.Flags().Float64Var(&opts.StartX, "start-x", 0, "x offset of the first column")
	cmd.Flags().Float64Var(&opts.StartY, "start-y", 0, "y offset of the first row")

	return cmd
}
