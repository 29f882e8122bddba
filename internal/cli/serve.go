package cli

import (
	"github.com/spf13/cobra"

	"github.com/graphtier/graphtier/internal/server"
)

// serveCommand creates the serve command for running the HTTP layout API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		configPath string
		addr       string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout engine over HTTP",
		Long: `Serve the layout engine over HTTP.

The server exposes the layout pipeline as a JSON API:

  POST   /api/v1/layout         compute a hierarchical layout
  POST   /api/v1/layout/grid    compute a grid layout
  POST   /api/v1/layout/tiered  compute tiered columns
  DELETE /api/v1/cache          drop all memoized layouts
  GET    /healthz               liveness probe

Configuration is read from a TOML file when --config is given; the --addr
flag overrides the configured listen address. The server shuts down
gracefully on SIGINT and SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := server.DefaultConfig()
			if configPath != "" {
				loaded, err := server.LoadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if addr != "" {
				cfg.Addr = addr
			}

			return server.New(cfg, c.Logger).Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "TOML config file")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	return cmd
}
