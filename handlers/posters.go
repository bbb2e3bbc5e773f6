package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/newsdesk/newsdesk-api/internal/activity"
	"github.com/newsdesk/newsdesk-api/internal/document"
	"github.com/newsdesk/newsdesk-api/internal/media"
	"github.com/newsdesk/newsdesk-api/internal/models"
)

const posterKind = "poster"

func (h *ContentHandler) registerPosters(rg *gin.RouterGroup) {
	rg.GET("/posters", h.listPosters)
	rg.POST("/posters", h.savePosters)
	rg.PUT("/posters", h.savePosters)
}

// listPosters always returns models.PosterSlots entries.
func (h *ContentHandler) listPosters(c *gin.Context) {
	doc, err := h.store.Snapshot(c.Request.Context())
	if err != nil {
		fail(c, "Posters", err)
		return
	}
	c.JSON(http.StatusOK, doc.PaddedPosters())
}

// savePosters updates the slots in place: poster{i}Title, poster{i}Link and
// the posterImage{i} file each replace their value only when provided.
func (h *ContentHandler) savePosters(c *gin.Context) {
	in, err := parseInput(c, h.maxMemory)
	if err != nil {
		fail(c, "Posters", err)
		return
	}

	fields := make([]fileField, 0, models.PosterSlots)
	for n := 1; n <= models.PosterSlots; n++ {
		fields = append(fields, fileField{field: fmt.Sprintf("posterImage%d", n), folder: "posters", policy: media.ImagePolicy})
	}
	files, err := h.upload(c.Request.Context(), in, fields...)
	if err != nil {
		fail(c, "Posters", err)
		return
	}

	var out []models.Poster
	err = h.store.Update(c.Request.Context(), func(doc *document.Document) error {
		slots := doc.PaddedPosters()
		for i := range slots {
			n := i + 1
			slots[i].ID = int64(n)
			in.set(&slots[i].Title, fmt.Sprintf("poster%dTitle", n))
			in.set(&slots[i].Link, fmt.Sprintf("poster%dLink", n))
			if r, ok := files[fmt.Sprintf("posterImage%d", n)]; ok {
				slots[i].Image = r.URL
			}
		}
		doc.Posters = slots
		h.logActivity(doc, posterKind, "Posters", activity.StatusUpdated)
		out = slots
		return nil
	})
	if err != nil {
		fail(c, "Posters", err)
		return
	}
	c.JSON(http.StatusOK, out)
}
