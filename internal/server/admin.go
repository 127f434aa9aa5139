package server

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/visits"
)

func (s *Server) setupAdminRoutes(r *gin.Engine) {
	admin := r.Group("/admin")
	admin.Use(s.auth.Middleware())

	admin.GET("/tenants", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"tenants": s.tenants.List()})
	})

	admin.GET("/stats", func(c *gin.Context) {
		if s.visits == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "visitor tracking is disabled"})
			return
		}
		stats, err := s.visits.Stats(c.Request.Context())
		if err != nil {
			log.Printf("Error loading admin stats: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load statistics"})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	// Purges visitor rows past the retention period ahead of the scheduled run.
	admin.POST("/privacy/cleanup", func(c *gin.Context) {
		if s.visits == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "visitor tracking is disabled"})
			return
		}
		n, err := s.visits.Cleanup(c.Request.Context(), visits.Retention)
		if err != nil {
			log.Printf("Error cleaning up old visitor data: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Cleanup failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"removed": n})
	})
}
