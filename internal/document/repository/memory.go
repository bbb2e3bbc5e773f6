package repository

import (
	"context"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/newsdesk/newsdesk-api/internal/document"
)

// MemoryRepo keeps an encoded snapshot in memory. Every Load decodes a fresh
// copy, so callers never share slices with the stored state.
type MemoryRepo struct {
	mu    sync.RWMutex
	data  []byte
	saves int
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (m *MemoryRepo) Load(_ context.Context) (*document.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.data == nil {
		return document.New(), nil
	}
	var doc document.Document
	if err := json.Unmarshal(m.data, &doc); err != nil {
		return nil, err
	}
	doc.Normalize()
	return &doc, nil
}

func (m *MemoryRepo) Save(_ context.Context, doc *document.Document) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = b
	m.saves++
	return nil
}

// Saves reports how many times Save succeeded.
func (m *MemoryRepo) Saves() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saves
}
