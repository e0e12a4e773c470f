package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/scifig/pkg/journal"
	"github.com/matzehuels/scifig/pkg/observability"
	"github.com/matzehuels/scifig/pkg/server"
)

// serveCommand creates the serve command, which exposes audits over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the audit API over HTTP",
		Long: `Serve journal specifications, code and figure audits and figure rendering
over HTTP. Reports are cached in Redis when SCIFIG_REDIS_URL is set and in
the local cache directory otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			observability.SetHTTPHooks(logHTTPHooks{})

			ch := c.newCache(ctx, noCache)
			defer ch.Close()

			c.Logger.Info("listening", "addr", addr, "journals", len(journal.List()))
			return server.New(journal.Default, ch).Serve(ctx, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the report cache")
	return cmd
}
