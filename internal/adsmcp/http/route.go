package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Service) initRouter() {
	s.initBaseRouter()
	s.initMCPRouter()
}

func (s *Service) initBaseRouter() {
	s.router.GET("/health", s.handleHealth)
}

func (s *Service) initMCPRouter() {
	s.router.POST("/", s.handleJSONRPC)
	s.router.POST("/messages", s.handleJSONRPC)
	s.router.GET("/sse", s.handleSSE)
}

func (s *Service) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "google-ads-mcp",
	})
}
