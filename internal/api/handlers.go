package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"glossary/internal/glossary"
	"glossary/internal/logger"
	"glossary/internal/models"
)

type TermRepository interface {
	List(ctx context.Context) ([]models.Term, error)
	Get(ctx context.Context, id int64) (models.Term, error)
	ListRelated(ctx context.Context, id int64) ([]models.Term, error)
	Create(ctx context.Context, in glossary.NewTerm) (models.Term, error)
	Update(ctx context.Context, id int64, p glossary.Patch) (models.Term, error)
	Delete(ctx context.Context, id int64) error
}

type VisitCounter interface {
	Visit(ctx context.Context, clientInfo string) (int64, error)
	List(ctx context.Context) ([]models.HitCounterEvent, error)
}

type ObjectStore interface {
	PutBytes(ctx context.Context, objectPath string, data []byte, contentType string) error
}

type Server struct {
	Terms   TermRepository
	Counter VisitCounter
	// Store is optional; the export route is only registered when set.
	Store ObjectStore
	Log   *logger.Logger
}

func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	r.GET("/", s.hello)
	r.GET("/table_counter", s.listVisits)

	r.GET("/terms", s.listTerms)
	r.POST("/terms", s.createTerm)
	r.GET("/terms/:id", s.getTerm)
	r.PUT("/terms/:id", s.updateTerm)
	r.DELETE("/terms/:id", s.deleteTerm)
	r.GET("/terms/:id/related", s.relatedTerms)
	if s.Store != nil {
		r.POST("/terms/export", s.exportTerms)
	}
}

func (s *Server) listTerms(c *gin.Context) {
	terms, err := s.Terms.List(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, terms)
}

func (s *Server) getTerm(c *gin.Context) {
	id, ok := termID(c)
	if !ok {
		return
	}
	term, err := s.Terms.Get(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, term)
}

func (s *Server) relatedTerms(c *gin.Context) {
	id, ok := termID(c)
	if !ok {
		return
	}
	terms, err := s.Terms.ListRelated(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, terms)
}

func (s *Server) createTerm(c *gin.Context) {
	var req glossary.NewTerm
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "invalid payload: " + err.Error()})
		return
	}
	term, err := s.Terms.Create(c.Request.Context(), req)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, term)
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
	term, err := s.Terms.Update(c.Request.Context(), id, patch)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, term)
}

func (s *Server) deleteTerm(c *gin.Context) {
	id, ok := termID(c)
	if !ok {
		return
	}
	if err := s.Terms.Delete(c.Request.Context(), id); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Term with ID %d deleted successfully", id)})
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
	switch {
	case errors.Is(err, glossary.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "Term not found"})
	case glossary.IsValidation(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
	default:
		_ = c.Error(err)
		if s.Log != nil {
			s.Log.Error("request failed", "path", c.FullPath(), "error", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
	}
}
