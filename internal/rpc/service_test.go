package rpc_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"

	pb "glossary/internal/rpc/glossarypb"
	"glossary/internal/rpc/rpctest"
)

func int64Ptr(v int64) *int64 { return &v }
func int32Ptr(v int32) *int32 { return &v }
func strPtr(v string) *string { return &v }

func TestCreateTermDefaults(t *testing.T) {
	client := rpctest.NewClient(t)

	resp, err := client.CreateTerm(context.Background(), &pb.CreateTermRequest{Term: "foo", Definition: "bar", Priority: 1})
	require.NoError(t, err)

	want := &pb.TermResponse{Id: 1, Term: "foo", Definition: "bar", Priority: 1, Author: "Vityaooooo"}
	assert.True(t, proto.Equal(want, resp), "got %v", resp)
}

func TestZeroRelationMeansNone(t *testing.T) {
	client := rpctest.NewClient(t)
	ctx := context.Background()

	parent, err := client.CreateTerm(ctx, &pb.CreateTermRequest{Term: "a", Definition: "a", Relation: int64Ptr(0)})
	require.NoError(t, err)
	assert.Nil(t, parent.Relation)

	child, err := client.CreateTerm(ctx, &pb.CreateTermRequest{Term: "b", Definition: "b", Relation: int64Ptr(parent.GetId())})
	require.NoError(t, err)
	require.NotNil(t, child.Relation)

	updated, err := client.UpdateTerm(ctx, &pb.UpdateTermRequest{TermId: child.GetId(), Relation: int64Ptr(0)})
	require.NoError(t, err)
	assert.Nil(t, updated.Relation)
}

func TestTermLifecycle(t *testing.T) {
	client := rpctest.NewClient(t)
	ctx := context.Background()

	parent, err := client.CreateTerm(ctx, &pb.CreateTermRequest{Term: "service", Definition: "unit", Priority: 1})
	require.NoError(t, err)
	child, err := client.CreateTerm(ctx, &pb.CreateTermRequest{
		Term:       "microservice",
		Definition: "small unit",
		Priority:   2,
		Relation:   int64Ptr(parent.GetId()),
		Author:     strPtr("kate"),
	})
	require.NoError(t, err)
	assert.Equal(t, parent.GetId(), child.GetRelation())

	got, err := client.GetTerm(ctx, &pb.GetTermRequest{TermId: child.GetId()})
	require.NoError(t, err)
	assert.True(t, proto.Equal(child, got), "got %v, want %v", got, child)

	updated, err := client.UpdateTerm(ctx, &pb.UpdateTermRequest{TermId: child.GetId(), Priority: int32Ptr(7)})
	require.NoError(t, err)
	assert.Equal(t, int32(7), updated.GetPriority())
	assert.Equal(t, "small unit", updated.GetDefinition())
	assert.Equal(t, "kate", updated.GetAuthor())
	require.NotNil(t, updated.Relation)

	cleared, err := client.UpdateTerm(ctx, &pb.UpdateTermRequest{TermId: child.GetId(), ClearRelation: true})
	require.NoError(t, err)
	assert.Nil(t, cleared.Relation)

	list, err := client.GetTerms(ctx, &pb.GetTermsRequest{})
	require.NoError(t, err)
	assert.Len(t, list.GetTerms(), 2)

	del, err := client.DeleteTerm(ctx, &pb.DeleteTermRequest{TermId: parent.GetId()})
	require.NoError(t, err)
	assert.Equal(t, "Term with ID 1 deleted successfully", del.GetMessage())

	_, err = client.GetTerm(ctx, &pb.GetTermRequest{TermId: parent.GetId()})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestGetTermsEmpty(t *testing.T) {
	client := rpctest.NewClient(t)

	resp, err := client.GetTerms(context.Background(), &pb.GetTermsRequest{})
	require.NoError(t, err)
	assert.Empty(t, resp.GetTerms())
}

// emptypb.Empty has the same wire encoding as GetTermsRequest.
func TestServesProtobufWireFormat(t *testing.T) {
	conn := rpctest.NewConn(t)
	ctx := context.Background()

	_, err := pb.NewGlossaryServiceClient(conn).CreateTerm(ctx, &pb.CreateTermRequest{Term: "wire", Definition: "bytes", Priority: 4})
	require.NoError(t, err)

	out := &pb.GetTermsResponse{}
	require.NoError(t, conn.Invoke(ctx, pb.GlossaryService_GetTerms_FullMethodName, &emptypb.Empty{}, out))
	require.Len(t, out.GetTerms(), 1)
	assert.Equal(t, "wire", out.GetTerms()[0].GetTerm())

	raw, err := proto.Marshal(out.GetTerms()[0])
	require.NoError(t, err)
	decoded := &pb.TermResponse{}
	require.NoError(t, proto.Unmarshal(raw, decoded))
	assert.Equal(t, int32(4), decoded.GetPriority())
}

func TestHealthReportsServing(t *testing.T) {
	conn := rpctest.NewConn(t)

	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{
		Service: pb.GlossaryService_ServiceDesc.ServiceName,
	})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}

func TestErrorCodes(t *testing.T) {
	client := rpctest.NewClient(t)
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
		code codes.Code
		msg  string
	}{
		{
			name: "get missing",
			call: func() error { _, err := client.GetTerm(ctx, &pb.GetTermRequest{TermId: 999}); return err },
			code: codes.NotFound,
			msg:  "Term not found",
		},
		{
			name: "update missing",
			call: func() error {
				_, err := client.UpdateTerm(ctx, &pb.UpdateTermRequest{TermId: 999, Term: strPtr("x")})
				return err
			},
			code: codes.NotFound,
			msg:  "Term not found",
		},
		{
			name: "delete missing",
			call: func() error { _, err := client.DeleteTerm(ctx, &pb.DeleteTermRequest{TermId: 999}); return err },
			code: codes.NotFound,
			msg:  "Term not found",
		},
		{
			name: "empty term",
			call: func() error {
				_, err := client.CreateTerm(ctx, &pb.CreateTermRequest{Definition: "d", Priority: 1})
				return err
			},
			code: codes.InvalidArgument,
		},
		{
			name: "dangling relation",
			call: func() error {
				_, err := client.CreateTerm(ctx, &pb.CreateTermRequest{Term: "t", Definition: "d", Relation: int64Ptr(55)})
				return err
			},
			code: codes.InvalidArgument,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			st, ok := status.FromError(err)
			require.True(t, ok)
			assert.Equal(t, tt.code, st.Code())
			if tt.msg != "" {
				assert.Equal(t, tt.msg, st.Message())
			}
		})
	}
}
