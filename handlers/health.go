package handlers

import (
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/newsdesk/newsdesk-api/internal/document"
)

// HealthHandler reports liveness and process uptime.
type HealthHandler struct {
	started time.Time
	now     func() time.Time
}

func NewHealthHandler(started time.Time) *HealthHandler {
	return &HealthHandler{started: started, now: time.Now}
}

func (h *HealthHandler) Register(r gin.IRoutes) {
	r.GET("/health", h.Health)
}

// Health responds with {status, timestamp, uptime}; uptime is in seconds.
func (h *HealthHandler) Health(c *gin.Context) {
	now := h.now()
	uptime := now.Sub(h.started).Seconds()
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": document.Timestamp(now),
		"uptime":    math.Round(uptime*1000) / 1000,
	})
}
