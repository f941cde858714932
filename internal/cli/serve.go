package cli

import (
	"github.com/spf13/cobra"

	"github.com/derivative-programming/pagenav/internal/server"
)

// newServeCmd creates the serve command. It exposes the distance engine
// over a local HTTP API until interrupted.
func newServeCmd(root *rootOpts) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the navigation analysis over a local HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			eng, err := openEngine(ctx, root)
			if err != nil {
				return err
			}
			defer eng.Close()

			printInfo("Serving %s", eng.cfg.Model)
			printDetail("http://%s", addr)

			srv := server.New(server.Config{
				Runner:  eng.runner,
				Options: eng.pipelineOptions(ctx, false),
				Logger:  loggerFromContext(ctx),
				Addr:    addr,
			})
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "localhost:8321", "listen address")
	return cmd
}
