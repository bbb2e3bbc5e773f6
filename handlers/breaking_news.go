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
	breakingNewsKind = "breaking-news"
	breakingNewsName = "Breaking news"
)

var breakingNewsCol collection[models.BreakingNews] = func(d *document.Document) *[]models.BreakingNews { return &d.BreakingNews }

var breakingNewsFiles = []fileField{
	{field: "video", folder: "breaking-news-videos", policy: media.BreakingNewsPolicy},
	{field: "thumbnail", folder: "breaking-news-thumbnails", policy: media.BreakingNewsPolicy},
}

func breakingNewsTitle(b models.BreakingNews) string { return b.Headline }

func (h *ContentHandler) registerBreakingNews(rg *gin.RouterGroup) {
	g := rg.Group("/breaking-news")
	g.GET("", func(c *gin.Context) { listAll(c, h.store, breakingNewsName, breakingNewsCol) })
	g.GET("/:id", func(c *gin.Context) { getOne(c, h.store, breakingNewsName, breakingNewsCol) })
	g.GET("/category/:category", func(c *gin.Context) {
		cat := c.Param("category")
		listWhere(c, h.store, breakingNewsName, breakingNewsCol, func(b models.BreakingNews) bool { return sameCategory(b.Category, cat) })
	})
	g.GET("/state/:state", func(c *gin.Context) {
		state := c.Param("state")
		listWhere(c, h.store, breakingNewsName, breakingNewsCol, func(b models.BreakingNews) bool { return sameCategory(b.State, state) })
	})
	g.POST("", h.createBreakingNews)
	g.PUT("/:id", h.updateBreakingNews)
	g.DELETE("/:id", func(c *gin.Context) {
		deleteOne(c, h, breakingNewsName, breakingNewsKind, breakingNewsCol, breakingNewsTitle)
	})
}

// createBreakingNews prepends the new item so the list stays newest first.
func (h *ContentHandler) createBreakingNews(c *gin.Context) {
	in, err := parseInput(c, h.maxMemory)
	if err != nil {
		fail(c, breakingNewsName, err)
		return
	}
	files, err := h.upload(c.Request.Context(), in, breakingNewsFiles...)
	if err != nil {
		fail(c, breakingNewsName, err)
		return
	}

	item := models.BreakingNews{
		Headline:         in.str("headline", ""),
		ShortDescription: in.str("shortDescription", ""),
		FullDescription:  in.str("fullDescription", ""),
		Category:         in.str("category", ""),
		State:            in.str("state", ""),
		YoutubeURL:       in.str("youtubeUrl", ""),
		VideoURL:         files["video"].URL,
		Thumbnail:        files["thumbnail"].URL,
	}
	err = h.store.Update(c.Request.Context(), func(doc *document.Document) error {
		item.ID = document.NextID()
		item.Timestamp = document.Now()
		doc.BreakingNews = append([]models.BreakingNews{item}, doc.BreakingNews...)
		h.logActivity(doc, breakingNewsKind, item.Headline, activity.StatusCreated)
		return nil
	})
	if err != nil {
		fail(c, breakingNewsName, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ContentHandler) updateBreakingNews(c *gin.Context) {
	id, err := paramID(c)
	if err == nil {
		err = exists(c.Request.Context(), h.store, id, breakingNewsCol)
	}
	if err != nil {
		fail(c, breakingNewsName, err)
		return
	}
	in, err := parseInput(c, h.maxMemory)
	if err != nil {
		fail(c, breakingNewsName, err)
		return
	}
	files, err := h.upload(c.Request.Context(), in, breakingNewsFiles...)
	if err != nil {
		fail(c, breakingNewsName, err)
		return
	}

	out, err := updateOne(c.Request.Context(), h, id, breakingNewsKind, breakingNewsCol, func(b *models.BreakingNews) {
		in.set(&b.Headline, "headline")
		in.set(&b.ShortDescription, "shortDescription")
		in.set(&b.FullDescription, "fullDescription")
		in.set(&b.Category, "category")
		in.set(&b.State, "state")
		in.set(&b.YoutubeURL, "youtubeUrl")
		if r, ok := files["video"]; ok {
			b.VideoURL = r.URL
		}
		if r, ok := files["thumbnail"]; ok {
			b.Thumbnail = r.URL
		}
	}, breakingNewsTitle)
	if err != nil {
		fail(c, breakingNewsName, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
