package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/newsdesk/newsdesk-api/internal/activity"
	"github.com/newsdesk/newsdesk-api/internal/document"
	"github.com/newsdesk/newsdesk-api/internal/media"
	"github.com/newsdesk/newsdesk-api/internal/models"
)

const (
	mediaKind = "media"
	mediaName = "Media"
)

var mediaCol collection[models.Media] = func(d *document.Document) *[]models.Media { return &d.Media }

var mediaFiles = []fileField{
	{field: "file", folder: "media", policy: media.MediaPolicy},
}

func mediaTitle(m models.Media) string { return m.Title }

func (h *ContentHandler) registerMedia(rg *gin.RouterGroup) {
	g := rg.Group("/media")
	g.GET("", func(c *gin.Context) { listAll(c, h.store, mediaName, mediaCol) })
	g.GET("/:id", func(c *gin.Context) { getOne(c, h.store, mediaName, mediaCol) })
	g.POST("", h.createMedia)
	g.PUT("/:id", h.updateMedia)
	g.DELETE("/:id", func(c *gin.Context) {
		deleteOne(c, h, mediaName, mediaKind, mediaCol, mediaTitle)
	})
}

// createMedia stores the uploaded file's URL and declared MIME type. Without
// a file the url and type may be given as plain fields.
func (h *ContentHandler) createMedia(c *gin.Context) {
	in, err := parseInput(c, h.maxMemory)
	if err != nil {
		fail(c, mediaName, err)
		return
	}
	files, err := h.upload(c.Request.Context(), in, mediaFiles...)
	if err != nil {
		fail(c, mediaName, err)
		return
	}

	item := models.Media{
		Title:       in.str("title", ""),
		Description: in.str("description", ""),
		URL:         in.str("url", ""),
		Type:        in.str("type", ""),
	}
	if r, ok := files["file"]; ok {
		item.URL = r.URL
		item.Type = r.MIME
	}
	err = h.store.Update(c.Request.Context(), func(doc *document.Document) error {
		item.ID = document.NextID()
		item.Timestamp = document.Now()
		doc.Media = append(doc.Media, item)
		h.logActivity(doc, mediaKind, item.Title, activity.StatusCreated)
		return nil
	})
	if err != nil {
		fail(c, mediaName, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ContentHandler) updateMedia(c *gin.Context) {
	id, err := paramID(c)
	if err == nil {
		err = exists(c.Request.Context(), h.store, id, mediaCol)
	}
	if err != nil {
		fail(c, mediaName, err)
		return
	}
	in, err := parseInput(c, h.maxMemory)
	if err != nil {
		fail(c, mediaName, err)
		return
	}
	files, err := h.upload(c.Request.Context(), in, mediaFiles...)
	if err != nil {
		fail(c, mediaName, err)
		return
	}

	out, err := updateOne(c.Request.Context(), h, id, mediaKind, mediaCol, func(m *models.Media) {
		in.set(&m.Title, "title")
		in.set(&m.Description, "description")
		if r, ok := files["file"]; ok {
			m.URL = r.URL
			m.Type = r.MIME
		}
	}, mediaTitle)
	if err != nil {
		fail(c, mediaName, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
