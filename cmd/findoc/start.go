package main

import (
	"os"
	"os/signal"

	"github.com/sandevgo/findoc/pkg/log"
	"github.com/sandevgo/findoc/pkg/srv"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the FinDocBot services",
	Long:  `Initializes the stores, the answering provider and the Telegram transport, then polls for updates.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		// logger setup
		ctx = setupLogger(ctx)

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting findoc")

		// Define services using the setup.go logic
		services := NewServices(ctx)

		// Start services
		srv.StartServices(ctx, services)

		// Wait for shutdown signal
		srv.ShutdownServices(ctx, services)
		logger.Info().Msg("findoc has been shut down gracefully")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
