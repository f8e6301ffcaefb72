package main

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"

	"glossary/internal/db"
	"glossary/internal/glossary"
	"glossary/internal/rpc"
)

func newGRPCCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grpc",
		Short: "Serve GlossaryService over gRPC",
		RunE:  runGRPC,
	}
}

func runGRPC(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	d, err := loadDeps()
	if err != nil {
		return err
	}
	defer d.log.Sync()

	gdb, err := d.openDB()
	if err != nil {
		return err
	}
	defer db.Close(gdb)

	lis, err := net.Listen("tcp", d.cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", d.cfg.GRPCAddr, err)
	}

	svc := rpc.NewService(glossary.NewRepository(gdb), d.log)
	srv, health := rpc.NewServer(svc, d.log)

	errCh := make(chan error, 1)
	go func() {
		d.log.Info("listening", "addr", lis.Addr().String(), "transport", "grpc")
		errCh <- srv.Serve(lis)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	d.log.Info("shutting down", "addr", d.cfg.GRPCAddr)
	// Marks every service NOT_SERVING before draining.
	health.Shutdown()
	stopGracefully(srv, d.cfg.ShutdownTimeout)
	return nil
}

// stopGracefully waits for in-flight RPCs up to timeout, then forces a stop.
func stopGracefully(srv *grpc.Server, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		srv.Stop()
	}
}
