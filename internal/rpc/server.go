package rpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"glossary/internal/logger"
	pb "glossary/internal/rpc/glossarypb"
)

// NewServer registers svc and a health service that reports it as serving.
func NewServer(svc pb.GlossaryServiceServer, log *logger.Logger) (*grpc.Server, *health.Server) {
	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			LoggingInterceptor(log),
			RecoveryInterceptor(log),
		),
	)
	pb.RegisterGlossaryServiceServer(s, svc)

	hs := health.NewServer()
	hs.SetServingStatus(pb.GlossaryService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(s, hs)
	return s, hs
}

// Dial opens a plaintext client connection. The connection is safe for
// concurrent use and should be shared.
func Dial(target string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	return grpc.NewClient(target, opts...)
}
