package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/newsdesk/newsdesk-api/internal/activity"
	"github.com/newsdesk/newsdesk-api/internal/document"
	"github.com/newsdesk/newsdesk-api/internal/models"
)

const (
	categoryKind = "category"
	categoryName = "Category"
)

var categoryCol collection[models.Category] = func(d *document.Document) *[]models.Category { return &d.Categories }

func categoryTitle(c models.Category) string { return c.Name }

func (h *ContentHandler) registerCategories(rg *gin.RouterGroup) {
	g := rg.Group("/categories")
	g.GET("", func(c *gin.Context) { listAll(c, h.store, categoryName, categoryCol) })
	g.GET("/:id", func(c *gin.Context) { getOne(c, h.store, categoryName, categoryCol) })
	g.POST("", h.createCategory)
	g.PUT("/:id", h.updateCategory)
	g.DELETE("/:id", func(c *gin.Context) {
		deleteOne(c, h, categoryName, categoryKind, categoryCol, categoryTitle)
	})
}

func (h *ContentHandler) createCategory(c *gin.Context) {
	in, err := parseInput(c, h.maxMemory)
	if err != nil {
		fail(c, categoryName, err)
		return
	}
	item := models.Category{
		Name:        in.str("name", ""),
		Description: in.str("description", ""),
	}
	err = h.store.Update(c.Request.Context(), func(doc *document.Document) error {
		item.ID = document.NextID()
		item.Timestamp = document.Now()
		doc.Categories = append(doc.Categories, item)
		h.logActivity(doc, categoryKind, item.Name, activity.StatusCreated)
		return nil
	})
	if err != nil {
		fail(c, categoryName, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ContentHandler) updateCategory(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		fail(c, categoryName, err)
		return
	}
	in, err := parseInput(c, h.maxMemory)
	if err != nil {
		fail(c, categoryName, err)
		return
	}
	out, err := updateOne(c.Request.Context(), h, id, categoryKind, categoryCol, func(cat *models.Category) {
		in.set(&cat.Name, "name")
		in.set(&cat.Description, "description")
	}, categoryTitle)
	if err != nil {
		fail(c, categoryName, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
