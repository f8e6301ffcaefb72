package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"glossary/internal/counter"
)

type visitResponse struct {
	ID         int64  `json:"id"`
	Datetime   string `json:"datetime"`
	ClientInfo string `json:"client_info"`
}

func (s *Server) hello(c *gin.Context) {
	count, err := s.Counter.Visit(c.Request.Context(), c.GetHeader("User-Agent"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.String(http.StatusOK, fmt.Sprintf("Hello World! I have been seen %d times.\n", count))
}

func (s *Server) listVisits(c *gin.Context) {
	events, err := s.Counter.List(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	resp := make([]visitResponse, 0, len(events))
	for _, ev := range events {
		resp = append(resp, visitResponse{
			ID:         ev.ID,
			Datetime:   ev.Datetime.Format(counter.TimeLayout),
			ClientInfo: ev.ClientInfo,
		})
	}
	c.JSON(http.StatusOK, resp)
}
