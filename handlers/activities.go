package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/newsdesk/newsdesk-api/internal/models"
)

func (h *ContentHandler) registerActivities(rg *gin.RouterGroup) {
	rg.GET("/activities", h.listActivities)
}

func (h *ContentHandler) listActivities(c *gin.Context) {
	if h.log == nil {
		c.JSON(http.StatusOK, []models.Activity{})
		return
	}
	list, err := h.log.List(c.Request.Context())
	if err != nil {
		fail(c, "Activities", err)
		return
	}
	c.JSON(http.StatusOK, list)
}
