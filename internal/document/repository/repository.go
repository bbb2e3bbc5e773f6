package repository

import (
	"context"
	"fmt"

	"github.com/newsdesk/newsdesk-api/internal/config"
	"github.com/newsdesk/newsdesk-api/internal/database"
	"github.com/newsdesk/newsdesk-api/internal/document"
	"github.com/newsdesk/newsdesk-api/pkg/logger"
)

// Repository loads and persists the whole newsroom document.
// Implementations do no locking; callers serialize load+mutate+save.
type Repository interface {
	Load(ctx context.Context) (*document.Document, error)
	Save(ctx context.Context, doc *document.Document) error
}

// NewFromConfig picks the repository for cfg.Store.Driver. The returned
// cleanup releases connections held by the repository.
func NewFromConfig(cfg *config.Config) (Repository, func(), error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMongo:
		ctx := context.Background()
		client, err := database.ConnectMongoWithRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, 5)
		if err != nil {
			return nil, nil, fmt.Errorf("document store: %w", err)
		}
		col := client.Database(cfg.MongoDB.Database).Collection(cfg.MongoDB.Collection)
		logger.Infof("document store: mongo %s.%s", cfg.MongoDB.Database, cfg.MongoDB.Collection)
		cleanup := func() { _ = client.Disconnect(context.Background()) }
		return NewMongoRepo(col, cfg.MongoDB.Timeout), cleanup, nil
	case config.StoreDriverMemory:
		logger.Warnf("document store: memory driver, nothing survives a restart")
		return NewMemoryRepo(), func() {}, nil
	default:
		logger.Infof("document store: file %s", cfg.Store.FilePath)
		return NewFileRepo(cfg.Store.FilePath), func() {}, nil
	}
}
