// Package cli implements the graphtier command-line interface.
package cli

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/graphtier/graphtier/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display and generated files.
const appName = "graphtier"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "graphtier",
		Short:        "Graphtier computes diagram layouts for typed graphs",
		Long:         `Graphtier is a CLI tool and HTTP service for computing diagram layouts: hierarchical layouts for class and dependency diagrams, grid layouts as a robust fallback, and tiered column layouts for knowledge graphs.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.gridCommand())
	root.AddCommand(c.tieredCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Paths
// =============================================================================

// defaultOutputPath derives an output path from the input file, e.g.
// "graph.json" becomes "graph.layout.json".
func defaultOutputPath(input, suffix string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + "." + suffix + ".json"
}
