// Package gateway is the REST façade over GlossaryService. It keeps no
// state of its own; every handler forwards one RPC and re-encodes the reply.
package gateway

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"glossary/internal/glossary"
	"glossary/internal/logger"
	"glossary/internal/middleware"
	"glossary/internal/models"
	"glossary/internal/rpc"
	pb "glossary/internal/rpc/glossarypb"
)

type Server struct {
	Client  pb.GlossaryServiceClient
	Timeout time.Duration
	Log     *logger.Logger
}

func NewRouter(s *Server) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(s.Log), middleware.CORS())
	s.RegisterRoutes(r)
	return r
}

func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	r.GET("/terms", s.listTerms)
	r.POST("/terms", s.createTerm)
	r.GET("/terms/:id", s.getTerm)
	r.PUT("/terms/:id", s.updateTerm)
	r.DELETE("/terms/:id", s.deleteTerm)
}

func (s *Server) callContext(c *gin.Context) (context.Context, context.CancelFunc) {
	ctx := c.Request.Context()
	if id := middleware.GetRequestID(c); id != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, rpc.RequestIDMetadataKey, id)
	}
	if s.Timeout > 0 {
		return context.WithTimeout(ctx, s.Timeout)
	}
	return context.WithCancel(ctx)
}

func (s *Server) listTerms(c *gin.Context) {
	ctx, cancel := s.callContext(c)
	defer cancel()

	resp, err := s.Client.GetTerms(ctx, &pb.GetTermsRequest{})
	if err != nil {
		s.fail(c, err)
		return
	}
	terms := make([]models.Term, 0, len(resp.Terms))
	for _, t := range resp.Terms {
		terms = append(terms, rpc.FromProto(t))
	}
	c.JSON(http.StatusOK, terms)
}

func (s *Server) getTerm(c *gin.Context) {
	id, ok := termID(c)
	if !ok {
		return
	}
	ctx, cancel := s.callContext(c)
	defer cancel()

	resp, err := s.Client.GetTerm(ctx, &pb.GetTermRequest{TermId: id})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rpc.FromProto(resp))
}

func (s *Server) createTerm(c *gin.Context) {
	var req glossary.NewTerm
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "invalid payload: " + err.Error()})
		return
	}
	ctx, cancel := s.callContext(c)
	defer cancel()

	resp, err := s.Client.CreateTerm(ctx, &pb.CreateTermRequest{
		Term:       req.Term,
		Definition: req.Definition,
		Priority:   *req.Priority,
		Relation:   req.Relation,
		Author:     req.Author,
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rpc.FromProto(resp))
}

func (s *Server) updateTerm(c *gin.Context) {
	id, ok := termID(c)
	if !ok {
		return
	}
	var patch glossary.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "invalid payload: " + err.Error()})
		return
	}
	ctx, cancel := s.callContext(c)
	defer cancel()

	resp, err := s.Client.UpdateTerm(ctx, rpc.UpdateFromPatch(id, patch))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rpc.FromProto(resp))
}

func (s *Server) deleteTerm(c *gin.Context) {
	id, ok := termID(c)
	if !ok {
		return
	}
	ctx, cancel := s.callContext(c)
	defer cancel()

	resp, err := s.Client.DeleteTerm(ctx, &pb.DeleteTermRequest{TermId: id})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": resp.Message})
}

func termID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "term id must be an integer"})
		return 0, false
	}
	return id, true
}

func (s *Server) fail(c *gin.Context, err error) {
	st := status.Convert(err)
	code := httpStatus(st.Code())
	if code >= http.StatusInternalServerError && s.Log != nil {
		s.Log.Error("rpc call failed", "path", c.FullPath(), "code", st.Code().String(), "error", st.Message())
	}
	switch code {
	case http.StatusNotFound, http.StatusUnprocessableEntity:
		c.JSON(code, gin.H{"detail": st.Message()})
	case http.StatusInternalServerError:
		c.JSON(code, gin.H{"detail": "internal server error"})
	default:
		c.JSON(code, gin.H{"detail": st.Code().String()})
	}
}

func httpStatus(code codes.Code) int {
	switch code {
	case codes.NotFound:
		return http.StatusNotFound
	case codes.InvalidArgument:
		return http.StatusUnprocessableEntity
	case codes.Unavailable:
		return http.StatusServiceUnavailable
	case codes.DeadlineExceeded:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
