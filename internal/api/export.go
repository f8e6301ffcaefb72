package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"glossary/internal/models"
	"glossary/internal/storage"
)

type termSnapshot struct {
	ExportedAt time.Time     `json:"exported_at"`
	Count      int           `json:"count"`
	Terms      []models.Term `json:"terms"`
}

func (s *Server) exportTerms(c *gin.Context) {
	terms, err := s.Terms.List(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	data, err := json.Marshal(termSnapshot{ExportedAt: time.Now().UTC(), Count: len(terms), Terms: terms})
	if err != nil {
		s.fail(c, err)
		return
	}
	key := storage.ExportKey(uuid.NewString())
	if err := s.Store.PutBytes(c.Request.Context(), key, data, "application/json"); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"object": key, "count": len(terms)})
}
