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
	newsKind = "news"
	newsName = "News"
)

var newsCol collection[models.NewsArticle] = func(d *document.Document) *[]models.NewsArticle { return &d.News }

var newsFiles = []fileField{
	{field: "image", folder: "news", policy: media.ImagePolicy},
}

func newsTitle(n models.NewsArticle) string { return n.Title }

func (h *ContentHandler) registerNews(rg *gin.RouterGroup) {
	g := rg.Group("/news")
	g.GET("", func(c *gin.Context) { listAll(c, h.store, newsName, newsCol) })
	g.GET("/:id", func(c *gin.Context) { getOne(c, h.store, newsName, newsCol) })
	g.GET("/category/:category", func(c *gin.Context) {
		cat := c.Param("category")
		listWhere(c, h.store, newsName, newsCol, func(n models.NewsArticle) bool { return sameCategory(n.Category, cat) })
	})
	g.POST("", h.createNews)
	g.PUT("/:id", h.updateNews)
	g.DELETE("/:id", func(c *gin.Context) {
		deleteOne(c, h, newsName, newsKind, newsCol, newsTitle)
	})
}

func (h *ContentHandler) createNews(c *gin.Context) {
	in, err := parseInput(c, h.maxMemory)
	if err != nil {
		fail(c, newsName, err)
		return
	}
	files, err := h.upload(c.Request.Context(), in, newsFiles...)
	if err != nil {
		fail(c, newsName, err)
		return
	}

	item := models.NewsArticle{
		Title:    in.str("title", ""),
		Content:  in.str("content", ""),
		Category: in.str("category", ""),
		ImageURL: files["image"].URL,
	}
	err = h.store.Update(c.Request.Context(), func(doc *document.Document) error {
		item.ID = document.NextID()
		item.Timestamp = document.Now()
		doc.News = append(doc.News, item)
		h.logActivity(doc, newsKind, item.Title, activity.StatusCreated)
		return nil
	})
	if err != nil {
		fail(c, newsName, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ContentHandler) updateNews(c *gin.Context) {
	id, err := paramID(c)
	if err == nil {
		err = exists(c.Request.Context(), h.store, id, newsCol)
	}
	if err != nil {
		fail(c, newsName, err)
		return
	}
	in, err := parseInput(c, h.maxMemory)
	if err != nil {
		fail(c, newsName, err)
		return
	}
	files, err := h.upload(c.Request.Context(), in, newsFiles...)
	if err != nil {
		fail(c, newsName, err)
		return
	}

	out, err := updateOne(c.Request.Context(), h, id, newsKind, newsCol, func(n *models.NewsArticle) {
		in.set(&n.Title, "title")
		in.set(&n.Content, "content")
		in.set(&n.Category, "category")
		if r, ok := files["image"]; ok {
			n.ImageURL = r.URL
		}
	}, newsTitle)
	if err != nil {
		fail(c, newsName, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
