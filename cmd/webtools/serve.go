package main

import (
	"os"
	"os/signal"
	"syscall"

	"webtools/internal/http/server"
	"webtools/internal/services/transformer"

	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			srv, err := server.NewServer(a.log, *a.cfg, transformer.NewService(), a.qrService())
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := srv.Run(ctx); err != nil {
				return err
			}
			a.log.Info().Msg("server stopped")
			return nil
		},
	}
}
