package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/newsdesk/newsdesk-api/internal/activity"
	"github.com/newsdesk/newsdesk-api/internal/document"
	"github.com/newsdesk/newsdesk-api/internal/document/service"
	"github.com/newsdesk/newsdesk-api/internal/errs"
	"github.com/newsdesk/newsdesk-api/internal/media"
)

// ContentHandler serves the newsroom collections. Every mutation follows the
// same chain: parse input, admit and upload files, update the document
// together with its activity entry, respond.
type ContentHandler struct {
	store     *service.Service
	ingester  *media.Ingester
	log       *activity.Log
	maxMemory int64
}

func NewContentHandler(store *service.Service, ingester *media.Ingester, log *activity.Log, maxMemory int64) *ContentHandler {
	if maxMemory <= 0 {
		maxMemory = 32 << 20
	}
	return &ContentHandler{store: store, ingester: ingester, log: log, maxMemory: maxMemory}
}

// Register routes under /api
func (h *ContentHandler) Register(rg *gin.RouterGroup) {
	h.registerPosters(rg)
	h.registerBreakingNews(rg)
	h.registerFeaturedStories(rg)
	h.registerCategories(rg)
	h.registerMedia(rg)
	h.registerNews(rg)
	h.registerStaticPages(rg)
	h.registerTickers(rg)
	h.registerAds(rg)
	h.registerActivities(rg)
	rg.GET("/category/:category", h.byCategory)
}

// fileField maps a request file field onto the folder and policy it uses.
type fileField struct {
	field  string
	folder string
	policy media.Policy
}

// upload sends every provided file among fields through the ingester and
// returns the results keyed by field. Absent fields have no entry.
func (h *ContentHandler) upload(ctx context.Context, in *input, fields ...fileField) (map[string]media.Result, error) {
	var uploads []media.Upload
	for _, f := range fields {
		if fh := in.file(f.field); fh != nil {
			uploads = append(uploads, media.Upload{Field: f.field, File: fh, Policy: f.policy, Folder: f.folder})
		}
	}
	if len(uploads) == 0 {
		return map[string]media.Result{}, nil
	}
	return h.ingester.Ingest(ctx, uploads)
}

// logActivity appends an entry for kind when that kind is logged.
func (h *ContentHandler) logActivity(doc *document.Document, kind, title, status string) {
	if h.log != nil && h.log.Enabled(kind) {
		h.log.Append(doc, kind, title, "", status)
	}
}

// collection picks one collection out of the document.
type collection[T document.Record] func(*document.Document) *[]T

// exists fails with ErrNotFound when no record with id is in the collection.
// Updates call it before uploading anything.
func exists[T document.Record](ctx context.Context, store *service.Service, id int64, sel collection[T]) error {
	doc, err := store.Snapshot(ctx)
	if err != nil {
		return err
	}
	if document.IndexOf(*sel(doc), id) < 0 {
		return errs.ErrNotFound
	}
	return nil
}

// listAll responds with the whole collection as stored.
func listAll[T document.Record](c *gin.Context, store *service.Service, what string, sel collection[T]) {
	doc, err := store.Snapshot(c.Request.Context())
	if err != nil {
		fail(c, what, err)
		return
	}
	c.JSON(http.StatusOK, *sel(doc))
}

// listWhere responds with the records keep accepts, [] when none match.
func listWhere[T document.Record](c *gin.Context, store *service.Service, what string, sel collection[T], keep func(T) bool) {
	doc, err := store.Snapshot(c.Request.Context())
	if err != nil {
		fail(c, what, err)
		return
	}
	c.JSON(http.StatusOK, filter(*sel(doc), keep))
}

// getOne responds with the record addressed by :id.
func getOne[T document.Record](c *gin.Context, store *service.Service, what string, sel collection[T]) {
	id, err := paramID(c)
	if err != nil {
		fail(c, what, err)
		return
	}
	doc, err := store.Snapshot(c.Request.Context())
	if err != nil {
		fail(c, what, err)
		return
	}
	items := *sel(doc)
	i := document.IndexOf(items, id)
	if i < 0 {
		fail(c, what, errs.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, items[i])
}

// deleteOne removes the record addressed by :id. The activity entry, when
// kind is logged, carries the title of the removed record.
func deleteOne[T document.Record](c *gin.Context, h *ContentHandler, what, kind string, sel collection[T], title func(T) string) {
	id, err := paramID(c)
	if err != nil {
		fail(c, what, err)
		return
	}
	err = h.store.Update(c.Request.Context(), func(doc *document.Document) error {
		items := sel(doc)
		i := document.IndexOf(*items, id)
		if i < 0 {
			return errs.ErrNotFound
		}
		name := title((*items)[i])
		*items = document.RemoveAt(*items, i)
		h.logActivity(doc, kind, name, activity.StatusDeleted)
		return nil
	})
	if err != nil {
		fail(c, what, err)
		return
	}
	deleted(c, what, id)
}

// updateOne applies mutate to the record addressed by id inside one document
// update and returns the stored result.
func updateOne[T document.Record](ctx context.Context, h *ContentHandler, id int64, kind string, sel collection[T], mutate func(*T), title func(T) string) (T, error) {
	var out T
	err := h.store.Update(ctx, func(doc *document.Document) error {
		items := sel(doc)
		i := document.IndexOf(*items, id)
		if i < 0 {
			return errs.ErrNotFound
		}
		item := (*items)[i]
		mutate(&item)
		(*items)[i] = item
		out = item
		h.logActivity(doc, kind, title(item), activity.StatusUpdated)
		return nil
	})
	return out, err
}

// sameCategory compares category and state values case-insensitively. Stored
// values are matched as written, surrounding whitespace included.
func sameCategory(a, b string) bool {
	return strings.EqualFold(a, b)
}

// filter returns the items for which keep is true, never nil.
func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0)
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
