package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"glossary/internal/gateway"
	"glossary/internal/rpc"
	pb "glossary/internal/rpc/glossarypb"
)

func newGatewayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gateway",
		Short: "Serve a REST façade that forwards to the gRPC service",
		RunE:  runGateway,
	}
}

func runGateway(cmd *cobra.Command, _ []string) error {
	d, err := loadDeps()
	if err != nil {
		return err
	}
	defer d.log.Sync()

	conn, err := rpc.Dial(d.cfg.GRPCTarget)
	if err != nil {
		return fmt.Errorf("dialing %s: %w", d.cfg.GRPCTarget, err)
	}
	defer conn.Close()

	router := gateway.NewRouter(&gateway.Server{
		Client:  pb.NewGlossaryServiceClient(conn),
		Timeout: d.cfg.RPCTimeout,
		Log:     d.log.With("upstream", d.cfg.GRPCTarget),
	})
	httpSrv := &http.Server{Addr: d.cfg.GatewayAddr, Handler: router}
	return serveHTTP(cmd.Context(), httpSrv, d.cfg.ShutdownTimeout, d.log)
}
