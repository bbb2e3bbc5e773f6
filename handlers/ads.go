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
	adKind = "ad"
	adName = "Ad"
)

var adCol collection[models.Ad] = func(d *document.Document) *[]models.Ad { return &d.Ads }

var adFiles = []fileField{
	{field: "image", folder: "ads", policy: media.ImagePolicy},
}

func adTitle(a models.Ad) string { return a.Title }

func (h *ContentHandler) registerAds(rg *gin.RouterGroup) {
	g := rg.Group("/ads")
	g.GET("", func(c *gin.Context) { listAll(c, h.store, adName, adCol) })
	g.GET("/active", func(c *gin.Context) {
		listWhere(c, h.store, adName, adCol, func(a models.Ad) bool { return a.Active })
	})
	g.GET("/:id", func(c *gin.Context) { getOne(c, h.store, adName, adCol) })
	g.POST("", h.createAd)
	g.PUT("/:id", h.updateAd)
	g.DELETE("/:id", func(c *gin.Context) {
		deleteOne(c, h, adName, adKind, adCol, adTitle)
	})
}

func (h *ContentHandler) createAd(c *gin.Context) {
	in, err := parseInput(c, h.maxMemory)
	if err != nil {
		fail(c, adName, err)
		return
	}
	files, err := h.upload(c.Request.Context(), in, adFiles...)
	if err != nil {
		fail(c, adName, err)
		return
	}

	item := models.Ad{
		Title:     in.str("title", ""),
		Placement: in.str("placement", ""),
		URL:       in.str("url", ""),
		StartDate: in.str("startDate", ""),
		EndDate:   in.str("endDate", ""),
		Active:    in.boolean("active", true),
		ImageURL:  files["image"].URL,
	}
	err = h.store.Update(c.Request.Context(), func(doc *document.Document) error {
		item.ID = document.NextID()
		item.Timestamp = document.Now()
		doc.Ads = append(doc.Ads, item)
		h.logActivity(doc, adKind, item.Title, activity.StatusCreated)
		return nil
	})
	if err != nil {
		fail(c, adName, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ContentHandler) updateAd(c *gin.Context) {
	id, err := paramID(c)
	if err == nil {
		err = exists(c.Request.Context(), h.store, id, adCol)
	}
	if err != nil {
		fail(c, adName, err)
		return
	}
	in, err := parseInput(c, h.maxMemory)
	if err != nil {
		fail(c, adName, err)
		return
	}
	files, err := h.upload(c.Request.Context(), in, adFiles...)
	if err != nil {
		fail(c, adName, err)
		return
	}

	out, err := updateOne(c.Request.Context(), h, id, adKind, adCol, func(a *models.Ad) {
		in.set(&a.Title, "title")
		in.set(&a.Placement, "placement")
		in.set(&a.URL, "url")
		in.set(&a.StartDate, "startDate")
		in.set(&a.EndDate, "endDate")
		a.Active = in.boolean("active", a.Active)
		if r, ok := files["image"]; ok {
			a.ImageURL = r.URL
		}
	}, adTitle)
	if err != nil {
		fail(c, adName, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
