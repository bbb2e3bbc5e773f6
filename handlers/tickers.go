package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/newsdesk/newsdesk-api/internal/activity"
	"github.com/newsdesk/newsdesk-api/internal/document"
	"github.com/newsdesk/newsdesk-api/internal/models"
)

const (
	tickerKind = "ticker"
	tickerName = "Ticker"
)

var tickerCol collection[models.Ticker] = func(d *document.Document) *[]models.Ticker { return &d.Tickers }

func tickerTitle(t models.Ticker) string { return t.Text }

func (h *ContentHandler) registerTickers(rg *gin.RouterGroup) {
	g := rg.Group("/tickers")
	g.GET("", func(c *gin.Context) { listAll(c, h.store, tickerName, tickerCol) })
	g.GET("/active", func(c *gin.Context) {
		listWhere(c, h.store, tickerName, tickerCol, func(t models.Ticker) bool { return t.Active })
	})
	g.GET("/:id", func(c *gin.Context) { getOne(c, h.store, tickerName, tickerCol) })
	g.POST("", h.createTicker)
	g.PUT("/:id", h.updateTicker)
	g.DELETE("/:id", func(c *gin.Context) {
		deleteOne(c, h, tickerName, tickerKind, tickerCol, tickerTitle)
	})
}

func (h *ContentHandler) createTicker(c *gin.Context) {
	in, err := parseInput(c, h.maxMemory)
	if err != nil {
		fail(c, tickerName, err)
		return
	}
	item := models.Ticker{
		Text:   in.str("text", ""),
		Type:   in.str("type", ""),
		Active: in.boolean("active", true),
	}
	err = h.store.Update(c.Request.Context(), func(doc *document.Document) error {
		item.ID = document.NextID()
		item.Timestamp = document.Now()
		doc.Tickers = append(doc.Tickers, item)
		h.logActivity(doc, tickerKind, item.Text, activity.StatusCreated)
		return nil
	})
	if err != nil {
		fail(c, tickerName, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ContentHandler) updateTicker(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		fail(c, tickerName, err)
		return
	}
	in, err := parseInput(c, h.maxMemory)
	if err != nil {
		fail(c, tickerName, err)
		return
	}
	out, err := updateOne(c.Request.Context(), h, id, tickerKind, tickerCol, func(t *models.Ticker) {
		in.set(&t.Text, "text")
		in.set(&t.Type, "type")
		t.Active = in.boolean("active", t.Active)
	}, tickerTitle)
	if err != nil {
		fail(c, tickerName, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
