package cli

import (
	"os/signal"
	"syscall"

	"github.com/asksunna/salat/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var flagPort int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the prayer-times HTTP API",
		Long:  "Serve daily timings, the Ramadan calendar, and the method table over HTTP.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := effectiveConfig(cmd)

			port := cfg.Server.Port
			if cmd.Flags().Changed("port") {
				port = flagPort
			}

			svc, closeStore := newService(cfg)
			defer closeStore()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return server.New(svc, port).Run(ctx)
		},
	}

	cmd.Flags().IntVar(&flagPort, "port", 8046, "Listen port (overrides config)")

	return cmd
}
