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
	featuredStoryKind = "featured-story"
	featuredStoryName = "Featured story"
)

var featuredStoryCol collection[models.FeaturedStory] = func(d *document.Document) *[]models.FeaturedStory { return &d.FeaturedStories }

var featuredStoryFiles = []fileField{
	{field: "image", folder: "featured-stories", policy: media.ImagePolicy},
}

func featuredStoryTitle(f models.FeaturedStory) string { return f.Title }

func (h *ContentHandler) registerFeaturedStories(rg *gin.RouterGroup) {
	g := rg.Group("/featured-stories")
	g.GET("", func(c *gin.Context) { listAll(c, h.store, featuredStoryName, featuredStoryCol) })
	g.GET("/:id", func(c *gin.Context) { getOne(c, h.store, featuredStoryName, featuredStoryCol) })
	g.GET("/category/:category", func(c *gin.Context) {
		cat := c.Param("category")
		listWhere(c, h.store, featuredStoryName, featuredStoryCol, func(f models.FeaturedStory) bool { return sameCategory(f.Category, cat) })
	})
	g.GET("/state/:state", func(c *gin.Context) {
		state := c.Param("state")
		listWhere(c, h.store, featuredStoryName, featuredStoryCol, func(f models.FeaturedStory) bool { return sameCategory(f.State, state) })
	})
	g.POST("", h.createFeaturedStory)
	g.PUT("/:id", h.updateFeaturedStory)
	g.DELETE("/:id", func(c *gin.Context) {
		deleteOne(c, h, featuredStoryName, featuredStoryKind, featuredStoryCol, featuredStoryTitle)
	})
}

func (h *ContentHandler) createFeaturedStory(c *gin.Context) {
	in, err := parseInput(c, h.maxMemory)
	if err != nil {
		fail(c, featuredStoryName, err)
		return
	}
	files, err := h.upload(c.Request.Context(), in, featuredStoryFiles...)
	if err != nil {
		fail(c, featuredStoryName, err)
		return
	}

	item := models.FeaturedStory{
		Title:       in.str("title", ""),
		Description: in.str("description", ""),
		Content:     in.str("content", ""),
		Category:    in.str("category", ""),
		State:       in.str("state", ""),
		Excerpt:     in.str("excerpt", ""),
		ImageURL:    files["image"].URL,
		Priority:    in.integer("priority", models.DefaultPriority),
		Views:       models.DefaultViews,
	}
	err = h.store.Update(c.Request.Context(), func(doc *document.Document) error {
		item.ID = document.NextID()
		item.Timestamp = document.Now()
		doc.FeaturedStories = append(doc.FeaturedStories, item)
		h.logActivity(doc, featuredStoryKind, item.Title, activity.StatusCreated)
		return nil
	})
	if err != nil {
		fail(c, featuredStoryName, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ContentHandler) updateFeaturedStory(c *gin.Context) {
	id, err := paramID(c)
	if err == nil {
		err = exists(c.Request.Context(), h.store, id, featuredStoryCol)
	}
	if err != nil {
		fail(c, featuredStoryName, err)
		return
	}
	in, err := parseInput(c, h.maxMemory)
	if err != nil {
		fail(c, featuredStoryName, err)
		return
	}
	files, err := h.upload(c.Request.Context(), in, featuredStoryFiles...)
	if err != nil {
		fail(c, featuredStoryName, err)
		return
	}

	out, err := updateOne(c.Request.Context(), h, id, featuredStoryKind, featuredStoryCol, func(f *models.FeaturedStory) {
		in.set(&f.Title, "title")
		in.set(&f.Description, "description")
		in.set(&f.Content, "content")
		in.set(&f.Category, "category")
		in.set(&f.State, "state")
		in.set(&f.Excerpt, "excerpt")
		f.Priority = in.integer("priority", f.Priority)
		if r, ok := files["image"]; ok {
			f.ImageURL = r.URL
		}
	}, featuredStoryTitle)
	if err != nil {
		fail(c, featuredStoryName, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
