// Package main is the glossary service binary: the HTTP API, the gRPC
// service and its REST gateway are subcommands of one executable.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	version    = "0.1.0-dev"
	configPath string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := &cobra.Command{
		Use:           "glossary",
		Short:         "Glossary of terms served over HTTP and gRPC",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file (env vars override it)")

	rootCmd.AddCommand(
		newHTTPCmd(),
		newGRPCCmd(),
		newGatewayCmd(),
		newMigrateCmd(),
	)

	return rootCmd.ExecuteContext(ctx)
}
