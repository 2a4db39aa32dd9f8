package handler

import (
	"time"

	"github.com/gin-gonic/gin"
)

// SystemHandler serves the health endpoint
type SystemHandler struct {
	BaseHandler
	version   string
	startedAt time.Time
}

// NewSystemHandler creates the system handler
func NewSystemHandler(version string) *SystemHandler {
	return &SystemHandler{version: version, startedAt: time.Now()}
}

// RegisterRoutes registers the system routes
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
}

// Health reports liveness
func (h *SystemHandler) Health(c *gin.Context) {
	h.Success(c, gin.H{
		"status":  "ok",
		"version": h.version,
		"uptime":  time.Since(h.startedAt).Round(time.Second).String(),
	})
}
