// Package activity keeps the bounded audit trail stored in the newsroom document.
package activity

import (
	"context"

	"github.com/newsdesk/newsdesk-api/internal/document"
	"github.com/newsdesk/newsdesk-api/internal/document/service"
	"github.com/newsdesk/newsdesk-api/internal/models"
	"github.com/newsdesk/newsdesk-api/pkg/metrics"
)

// MaxEntries is how many activities the document keeps.
const MaxEntries = 50

// Status values written by the collection handlers.
const (
	StatusCreated = "created"
	StatusUpdated = "updated"
	StatusDeleted = "deleted"
)

// Kinds logged when no configuration says otherwise.
var DefaultKinds = []string{"featured-story", "news"}

type Log struct {
	store *service.Service
	kinds map[string]bool
	actor string
}

// New returns a Log writing through store. kinds selects the entity kinds
// whose mutations are logged; nil means DefaultKinds and an empty slice
// turns logging off.
func New(store *service.Service, kinds []string, actor string) *Log {
	if kinds == nil {
		kinds = DefaultKinds
	}
	set := make(map[string]bool, len(kinds))
	for _, k := range kinds {
		set[k] = true
	}
	return &Log{store: store, kinds: set, actor: actor}
}

// Enabled reports whether mutations of kind are logged.
func (l *Log) Enabled(kind string) bool { return l.kinds[kind] }

// Actor is the name recorded when the caller is not known.
func (l *Log) Actor() string { return l.actor }

// Append inserts a new entry at the front of doc's activity collection and
// drops the oldest ones beyond MaxEntries. The caller persists doc.
func (l *Log) Append(doc *document.Document, kind, title, actor, status string) models.Activity {
	if actor == "" {
		actor = l.actor
	}
	rec := models.Activity{
		ID:        document.NextID(),
		Type:      kind,
		Title:     title,
		User:      actor,
		Status:    status,
		Timestamp: document.Now(),
	}
	entries := make([]models.Activity, 0, MaxEntries)
	entries = append(entries, rec)
	entries = append(entries, doc.Activities...)
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}
	doc.Activities = entries
	metrics.Activities.WithLabelValues(kind).Inc()
	return rec
}

// Record appends an entry in its own document update.
func (l *Log) Record(ctx context.Context, kind, title, actor, status string) (models.Activity, error) {
	var rec models.Activity
	err := l.store.Update(ctx, func(doc *document.Document) error {
		rec = l.Append(doc, kind, title, actor, status)
		return nil
	})
	if err != nil {
		return models.Activity{}, err
	}
	return rec, nil
}

// List returns the stored activities, newest first.
func (l *Log) List(ctx context.Context) ([]models.Activity, error) {
	doc, err := l.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Activities, nil
}
