package rpc

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"glossary/internal/glossary"
	"glossary/internal/logger"
	"glossary/internal/models"
	pb "glossary/internal/rpc/glossarypb"
)

type TermRepository interface {
	List(ctx context.Context) ([]models.Term, error)
	Get(ctx context.Context, id int64) (models.Term, error)
	Create(ctx context.Context, in glossary.NewTerm) (models.Term, error)
	Update(ctx context.Context, id int64, p glossary.Patch) (models.Term, error)
	Delete(ctx context.Context, id int64) error
}

// Service implements GlossaryService on top of a TermRepository. Each call
// goes through the repository's pool; nothing is shared between calls.
type Service struct {
	pb.UnimplementedGlossaryServiceServer
	terms TermRepository
	log   *logger.Logger
}

func NewService(terms TermRepository, log *logger.Logger) *Service {
	return &Service{terms: terms, log: log}
}

func (s *Service) GetTerms(ctx context.Context, _ *pb.GetTermsRequest) (*pb.GetTermsResponse, error) {
	terms, err := s.terms.List(ctx)
	if err != nil {
		return nil, s.statusError(err)
	}
	resp := &pb.GetTermsResponse{Terms: make([]*pb.TermResponse, 0, len(terms))}
	for _, term := range terms {
		resp.Terms = append(resp.Terms, ToProto(term))
	}
	return resp, nil
}

func (s *Service) GetTerm(ctx context.Context, req *pb.GetTermRequest) (*pb.TermResponse, error) {
	term, err := s.terms.Get(ctx, req.GetTermId())
	if err != nil {
		return nil, s.statusError(err)
	}
	return ToProto(term), nil
}

func (s *Service) CreateTerm(ctx context.Context, req *pb.CreateTermRequest) (*pb.TermResponse, error) {
	priority := req.GetPriority()
	term, err := s.terms.Create(ctx, glossary.NewTerm{
		Term:       req.GetTerm(),
		Definition: req.GetDefinition(),
		Priority:   &priority,
		Relation:   req.Relation,
		Author:     req.Author,
	})
	if err != nil {
		return nil, s.statusError(err)
	}
	return ToProto(term), nil
}

func (s *Service) UpdateTerm(ctx context.Context, req *pb.UpdateTermRequest) (*pb.TermResponse, error) {
	term, err := s.terms.Update(ctx, req.GetTermId(), PatchFromProto(req))
	if err != nil {
		return nil, s.statusError(err)
	}
	return ToProto(term), nil
}

func (s *Service) DeleteTerm(ctx context.Context, req *pb.DeleteTermRequest) (*pb.DeleteTermResponse, error) {
	if err := s.terms.Delete(ctx, req.GetTermId()); err != nil {
		return nil, s.statusError(err)
	}
	return &pb.DeleteTermResponse{Message: fmt.Sprintf("Term with ID %d deleted successfully", req.GetTermId())}, nil
}

func (s *Service) statusError(err error) error {
	switch {
	case errors.Is(err, glossary.ErrNotFound):
		return status.Error(codes.NotFound, "Term not found")
	case glossary.IsValidation(err):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, glossary.ErrStoreUnavailable):
		s.log.Error("store call failed", "error", err)
		return status.Error(codes.Unavailable, "store unavailable")
	default:
		s.log.Error("term call failed", "error", err)
		return status.Error(codes.Internal, "internal error")
	}
}
