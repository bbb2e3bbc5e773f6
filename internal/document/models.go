package document

import (
	"sync/atomic"
	"time"

	"github.com/newsdesk/newsdesk-api/internal/models"
)

// Document is the whole newsroom state. It is loaded, mutated and saved as a
// single unit; there is no field-level update below this type.
type Document struct {
	Posters         []models.Poster        `json:"posters" bson:"posters"`
	BreakingNews    []models.BreakingNews  `json:"breakingNews" bson:"breakingNews"`
	FeaturedStories []models.FeaturedStory `json:"featuredStories" bson:"featuredStories"`
	Categories      []models.Category      `json:"categories" bson:"categories"`
	Users           []models.User          `json:"users" bson:"users"`
	Media           []models.Media         `json:"media" bson:"media"`
	News            []models.NewsArticle   `json:"news" bson:"news"`
	StaticPages     []models.StaticPage    `json:"staticPages" bson:"staticPages"`
	Tickers         []models.Ticker        `json:"tickers" bson:"tickers"`
	Ads             []models.Ad            `json:"ads" bson:"ads"`
	Activities      []models.Activity      `json:"activities" bson:"activities"`
}

// New returns a document with every collection present and empty.
func New() *Document {
	d := &Document{}
	d.Normalize()
	return d
}

// Normalize replaces nil collections with empty ones so they encode as [].
func (d *Document) Normalize() {
	if d.Posters == nil {
		d.Posters = []models.Poster{}
	}
	if d.BreakingNews == nil {
		d.BreakingNews = []models.BreakingNews{}
	}
	if d.FeaturedStories == nil {
		d.FeaturedStories = []models.FeaturedStory{}
	}
	if d.Categories == nil {
		d.Categories = []models.Category{}
	}
	if d.Users == nil {
		d.Users = []models.User{}
	}
	if d.Media == nil {
		d.Media = []models.Media{}
	}
	if d.News == nil {
		d.News = []models.NewsArticle{}
	}
	if d.StaticPages == nil {
		d.StaticPages = []models.StaticPage{}
	}
	if d.Tickers == nil {
		d.Tickers = []models.Ticker{}
	}
	if d.Ads == nil {
		d.Ads = []models.Ad{}
	}
	if d.Activities == nil {
		d.Activities = []models.Activity{}
	}
}

// Sizes reports the length of every collection, keyed by its JSON name.
func (d *Document) Sizes() map[string]int {
	return map[string]int{
		"posters":         len(d.Posters),
		"breakingNews":    len(d.BreakingNews),
		"featuredStories": len(d.FeaturedStories),
		"categories":      len(d.Categories),
		"users":           len(d.Users),
		"media":           len(d.Media),
		"news":            len(d.News),
		"staticPages":     len(d.StaticPages),
		"tickers":         len(d.Tickers),
		"ads":             len(d.Ads),
		"activities":      len(d.Activities),
	}
}

// PaddedPosters returns exactly models.PosterSlots posters. Missing slots are
// filled with empty placeholders carrying the slot id.
func (d *Document) PaddedPosters() []models.Poster {
	out := make([]models.Poster, models.PosterSlots)
	for i := range out {
		if i < len(d.Posters) {
			out[i] = d.Posters[i]
			continue
		}
		out[i] = models.Poster{ID: int64(i + 1)}
	}
	return out
}

// Record is implemented by every stored entity.
type Record interface {
	RecordID() int64
}

// IndexOf returns the position of the record with the given id, or -1.
func IndexOf[T Record](items []T, id int64) int {
	for i, it := range items {
		if it.RecordID() == id {
			return i
		}
	}
	return -1
}

// RemoveAt splices out the element at i, keeping order.
func RemoveAt[T any](items []T, i int) []T {
	return append(items[:i], items[i+1:]...)
}

var lastID atomic.Int64

// NextID returns a millisecond timestamp id, bumped past the previous one when
// two calls land in the same millisecond.
func NextID() int64 {
	for {
		now := time.Now().UnixMilli()
		prev := lastID.Load()
		if now <= prev {
			now = prev + 1
		}
		if lastID.CompareAndSwap(prev, now) {
			return now
		}
	}
}

// TimestampLayout is ISO-8601 with millisecond precision in UTC.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Timestamp formats t the way records store it.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Now is the current time as a record timestamp.
func Now() string {
	return Timestamp(time.Now())
}
