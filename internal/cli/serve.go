package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/stacker/internal/api"
)

// serveCommand creates the serve command, which hosts the stacking
// operations over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the stacking operations over HTTP",
		Long: `Serve drop and stack as a JSON API.

Endpoints:
  POST /v1/drop    settle objects downward
  POST /v1/stack   pile objects into a column
  GET  /healthz    liveness probe

The server drains in-flight requests and exits when interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return api.New(c.Logger).ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}
