package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/newsdesk/newsdesk-api/internal/document"
	"github.com/newsdesk/newsdesk-api/internal/document/repository"
	"github.com/newsdesk/newsdesk-api/internal/errs"
	"github.com/newsdesk/newsdesk-api/pkg/metrics"
)

// Service is the only way handlers reach the newsroom document. Reads always
// go back to the repository; writes are serialized by one process-wide mutex.
type Service struct {
	repo repository.Repository
	mu   sync.Mutex
}

func New(repo repository.Repository) *Service {
	return &Service{repo: repo}
}

// Snapshot loads the current document.
func (s *Service) Snapshot(ctx context.Context) (*document.Document, error) {
	start := time.Now()
	doc, err := s.repo.Load(ctx)
	observe("load", start, err)
	if err != nil {
		return nil, fmt.Errorf("%w: load document: %w", errs.ErrPersistence, err)
	}
	return doc, nil
}

// Update loads the document, applies fn and saves the result. When fn returns
// an error nothing is written and that error is returned unchanged.
func (s *Service) Update(ctx context.Context, fn func(doc *document.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.Snapshot(ctx)
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}

	start := time.Now()
	err = s.repo.Save(ctx, doc)
	observe("save", start, err)
	if err != nil {
		return fmt.Errorf("%w: save document: %w", errs.ErrPersistence, err)
	}
	for name, n := range doc.Sizes() {
		metrics.CollectionSize.WithLabelValues(name).Set(float64(n))
	}
	return nil
}

func observe(op string, start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	metrics.StoreOperationDuration.WithLabelValues(op, result).Observe(time.Since(start).Seconds())
}
