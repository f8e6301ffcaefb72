// Package rpctest serves a GlossaryService over an in-process bufconn listener.
package rpctest

import (
	"context"
	"net"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"

	"glossary/internal/db/dbtest"
	"glossary/internal/glossary"
	"glossary/internal/logger"
	"glossary/internal/rpc"
	pb "glossary/internal/rpc/glossarypb"
)

const bufSize = 1 << 20

// Serve starts srv on a bufconn listener and returns a connection to it.
// Both are torn down when tb finishes.
func Serve(tb testing.TB, srv *grpc.Server) *grpc.ClientConn {
	tb.Helper()
	lis := bufconn.Listen(bufSize)
	go func() { _ = srv.Serve(lis) }()

	conn, err := rpc.Dial("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
	)
	if err != nil {
		tb.Fatalf("dial bufconn: %v", err)
	}
	tb.Cleanup(func() {
		_ = conn.Close()
		srv.Stop()
	})
	return conn
}

// NewConn wires a fresh sqlite-backed Service and returns a connection to it.
func NewConn(tb testing.TB) *grpc.ClientConn {
	tb.Helper()
	log := logger.NewNop()
	svc := rpc.NewService(glossary.NewRepository(dbtest.Open(tb)), log)
	srv, _ := rpc.NewServer(svc, log)
	return Serve(tb, srv)
}

func NewClient(tb testing.TB) pb.GlossaryServiceClient {
	tb.Helper()
	return pb.NewGlossaryServiceClient(NewConn(tb))
}
