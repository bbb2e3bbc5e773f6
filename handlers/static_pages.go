package handlers

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/newsdesk/newsdesk-api/internal/activity"
	"github.com/newsdesk/newsdesk-api/internal/document"
	"github.com/newsdesk/newsdesk-api/internal/errs"
	"github.com/newsdesk/newsdesk-api/internal/models"
)

const (
	staticPageKind = "static-page"
	staticPageName = "Static page"
)

var staticPageCol collection[models.StaticPage] = func(d *document.Document) *[]models.StaticPage { return &d.StaticPages }

func staticPageTitle(p models.StaticPage) string { return p.Title }

var slugRe = regexp.MustCompile("[^a-z0-9]+")

func slugify(text string) string {
	return strings.Trim(slugRe.ReplaceAllString(strings.ToLower(text), "-"), "-")
}

// uniqueSlug derives a slug from text, suffixing -1, -2, ... while another
// page (other than skipID) already uses it.
func uniqueSlug(pages []models.StaticPage, text string, skipID int64) string {
	base := slugify(text)
	if base == "" {
		base = "page"
	}
	taken := func(s string) bool {
		for _, p := range pages {
			if p.ID != skipID && p.Slug == s {
				return true
			}
		}
		return false
	}
	slug := base
	for n := 1; taken(slug); n++ {
		slug = fmt.Sprintf("%s-%d", base, n)
	}
	return slug
}

func (h *ContentHandler) registerStaticPages(rg *gin.RouterGroup) {
	g := rg.Group("/static-pages")
	g.GET("", func(c *gin.Context) { listAll(c, h.store, staticPageName, staticPageCol) })
	g.GET("/:id", func(c *gin.Context) { getOne(c, h.store, staticPageName, staticPageCol) })
	g.GET("/slug/:slug", h.staticPageBySlug)
	g.POST("", h.createStaticPage)
	g.PUT("/:id", h.updateStaticPage)
	g.DELETE("/:id", func(c *gin.Context) {
		deleteOne(c, h, staticPageName, staticPageKind, staticPageCol, staticPageTitle)
	})
}

func (h *ContentHandler) staticPageBySlug(c *gin.Context) {
	doc, err := h.store.Snapshot(c.Request.Context())
	if err != nil {
		fail(c, staticPageName, err)
		return
	}
	slug := c.Param("slug")
	for _, p := range doc.StaticPages {
		if p.Slug == slug {
			c.JSON(http.StatusOK, p)
			return
		}
	}
	fail(c, staticPageName, errs.ErrNotFound)
}

// createStaticPage keeps a provided slug as given and derives one from the
// title otherwise.
func (h *ContentHandler) createStaticPage(c *gin.Context) {
	in, err := parseInput(c, h.maxMemory)
	if err != nil {
		fail(c, staticPageName, err)
		return
	}
	item := models.StaticPage{
		Title:   in.str("title", ""),
		Content: in.str("content", ""),
		Slug:    in.str("slug", ""),
	}
	err = h.store.Update(c.Request.Context(), func(doc *document.Document) error {
		item.ID = document.NextID()
		item.Timestamp = document.Now()
		if item.Slug == "" {
			item.Slug = uniqueSlug(doc.StaticPages, item.Title, item.ID)
		}
		doc.StaticPages = append(doc.StaticPages, item)
		h.logActivity(doc, staticPageKind, item.Title, activity.StatusCreated)
		return nil
	})
	if err != nil {
		fail(c, staticPageName, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ContentHandler) updateStaticPage(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		fail(c, staticPageName, err)
		return
	}
	in, err := parseInput(c, h.maxMemory)
	if err != nil {
		fail(c, staticPageName, err)
		return
	}
	out, err := updateOne(c.Request.Context(), h, id, staticPageKind, staticPageCol, func(p *models.StaticPage) {
		in.set(&p.Title, "title")
		in.set(&p.Content, "content")
		in.set(&p.Slug, "slug")
	}, staticPageTitle)
	if err != nil {
		fail(c, staticPageName, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
