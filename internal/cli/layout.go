package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/graphtier/graphtier/pkg/graph"
	"github.com/graphtier/graphtier/pkg/layout"
)

// layoutCommand creates the layout command for computing hierarchical layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output      string
		direction   string
		interactive bool
	)
	opts := layout.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "layout [graph.json]",
		Short: "Compute a hierarchical diagram layout from a graph",
		Long: `Compute a hierarchical diagram layout from a graph.

The layout command takes a graph.json file and runs the full layered pipeline:
cycle breaking, rank assignment, crossing reduction, coordinate assignment,
collision resolution, and orthogonal edge routing. The output is a
layout.json file with node positions, edge routes, and diagram bounds.

Cyclic graphs are handled by dropping back edges; graphs that still cannot
be ranked fall back to a grid placement instead of failing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Direction = layout.Direction(direction)
			if !opts.Direction.Valid() {
				return fmt.Errorf("invalid direction %q (want TB, BT, LR, or RL)", direction)
			}
			return c.runLayout(cmd.Context(), args[0], opts, output, interactive)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().StringVarP(&direction, "direction", "d", string(opts.Direction), "layout direction: TB, BT, LR, RL")
	cmd.Flags().Float64Var(&opts.NodeSeparation, "node-sep", opts.NodeSeparation, "minimum gap between sibling nodes")
	cmd.Flags().Float64Var(&opts.RankSeparation, "rank-sep", opts.RankSeparation, "minimum gap between ranks")
	cmd.Flags().Float64Var(&opts.NodeWidth, "node-width", opts.NodeWidth, "default node box width")
	cmd.Flags().Float64Var(&opts.NodeHeight, "node-height", opts.NodeHeight, "default node box height")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "inspect the computed positions in a TUI")

	return cmd
}

// runLayout loads the graph, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, input string, opts layout.Options, output string, interactive bool) error {
	g, err := graph.ReadGraphFile(input)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}

	engine := layout.NewEngine(nil, c.Logger)

	spinner := newSpinner(ctx, "Computing hierarchical layout...")
	spinner.Start()

	prog := newProgress(c.Logger)
	result := engine.ComputeLayout(g.Nodes, g.Edges, opts)
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	prog.done(fmt.Sprintf("Placed %d nodes", len(result.Positions)))

	outputPath := output
	if outputPath == "" {
		outputPath = defaultOutputPath(input, "layout")
	}

	if err := layout.WriteResultFile(result, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(len(g.Nodes), len(g.Edges), false)

	if interactive {
		printNewline()
		return runPositionInspector(result)
	}

	printNewline()
	printNextStep("Serve layouts over HTTP", appName+" serve")
	return nil
}
