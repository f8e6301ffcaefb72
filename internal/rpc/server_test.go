package rpc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"

	"glossary/internal/glossary"
	"glossary/internal/logger"
	pb "glossary/internal/rpc/glossarypb"
)

func observedLogger() (*logger.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return &logger.Logger{SugaredLogger: zap.New(core).Sugar()}, logs
}

func TestLoggingInterceptorLevels(t *testing.T) {
	log, logs := observedLogger()
	intercept := LoggingInterceptor(log)
	info := &grpc.UnaryServerInfo{FullMethod: pb.GlossaryService_GetTerm_FullMethodName}

	tests := []struct {
		name  string
		err   error
		level zapcore.Level
	}{
		{name: "ok", level: zapcore.InfoLevel},
		{name: "not found", err: status.Error(codes.NotFound, "Term not found"), level: zapcore.WarnLevel},
		{name: "internal", err: status.Error(codes.Internal, "boom"), level: zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := intercept(context.Background(), nil, info, func(context.Context, any) (any, error) {
				return nil, tt.err
			})
			assert.Equal(t, tt.err, err)
			entries := logs.TakeAll()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.level, entries[0].Level)
			assert.Equal(t, pb.GlossaryService_GetTerm_FullMethodName, entries[0].ContextMap()["method"])
		})
	}
}

func TestRecoveryInterceptor(t *testing.T) {
	log, logs := observedLogger()
	intercept := RecoveryInterceptor(log)
	info := &grpc.UnaryServerInfo{FullMethod: pb.GlossaryService_DeleteTerm_FullMethodName}

	_, err := intercept(context.Background(), nil, info, func(context.Context, any) (any, error) {
		panic("kaboom")
	})
	assert.Equal(t, codes.Internal, status.Code(err))
	assert.Equal(t, 1, logs.FilterMessage("grpc handler panic").Len())
}

func TestPatchConversion(t *testing.T) {
	rel := int64(4)
	prio := int32(3)

	tests := []struct {
		name string
		req  *pb.UpdateTermRequest
		want glossary.Patch
	}{
		{name: "empty", req: &pb.UpdateTermRequest{TermId: 1}, want: glossary.Patch{}},
		{name: "set relation", req: &pb.UpdateTermRequest{TermId: 1, Relation: &rel}, want: glossary.Patch{Relation: glossary.SetID(4)}},
		{name: "clear wins", req: &pb.UpdateTermRequest{TermId: 1, Relation: &rel, ClearRelation: true}, want: glossary.Patch{Relation: glossary.ClearID()}},
		{name: "priority", req: &pb.UpdateTermRequest{TermId: 1, Priority: &prio}, want: glossary.Patch{Priority: &prio}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PatchFromProto(tt.req))
		})
	}

	back := UpdateFromPatch(9, glossary.Patch{Relation: glossary.ClearID()})
	assert.True(t, proto.Equal(&pb.UpdateTermRequest{TermId: 9, ClearRelation: true}, back), "got %v", back)
}
