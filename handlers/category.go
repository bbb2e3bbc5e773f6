package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/newsdesk/newsdesk-api/internal/models"
)

// byCategory gathers breaking news, featured stories and news of one category.
func (h *ContentHandler) byCategory(c *gin.Context) {
	doc, err := h.store.Snapshot(c.Request.Context())
	if err != nil {
		fail(c, "Category", err)
		return
	}
	cat := c.Param("category")
	c.JSON(http.StatusOK, gin.H{
		"breakingNews":    filter(doc.BreakingNews, func(b models.BreakingNews) bool { return sameCategory(b.Category, cat) }),
		"featuredStories": filter(doc.FeaturedStories, func(f models.FeaturedStory) bool { return sameCategory(f.Category, cat) }),
		"news":            filter(doc.News, func(n models.NewsArticle) bool { return sameCategory(n.Category, cat) }),
		"category":        cat,
	})
}
