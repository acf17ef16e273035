package main

import (
	"context"
	"os"

	"github.com/sandevgo/findoc/internal/config"
	"github.com/sandevgo/findoc/pkg/log"
	"github.com/spf13/cobra"
)

var (
	debug bool
)

var rootCmd = &cobra.Command{
	Use:   "findoc",
	Short: "FinDocBot — a financial document assistant for Telegram",
	Long:  `FinDocBot answers questions about uploaded PDF and Excel financial documents.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags available to all subcommands
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", config.IsDebug(), "enable debug logging")
}

func setupLogger(ctx context.Context) context.Context {
	isDebug := debug || config.IsDebug()
	return log.NewContextWithLogger(ctx, isDebug)
}
