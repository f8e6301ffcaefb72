package api

import (
	"github.com/gin-gonic/gin"

	"glossary/internal/middleware"
)

func NewRouter(s *Server) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(s.Log), middleware.CORS())
	s.RegisterRoutes(r)
	return r
}
