package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/newsdesk/newsdesk-api/internal/config"
	"github.com/newsdesk/newsdesk-api/internal/document"
	"github.com/newsdesk/newsdesk-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestFileRepo_MissingFileYieldsEmptyDocument(t *testing.T) {
	repo := NewFileRepo(filepath.Join(t.TempDir(), "nope", "data.json"))

	doc, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, document.New(), doc)
}

func TestFileRepo_SaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "data.json")
	repo := NewFileRepo(path)
	ctx := context.Background()

	doc := document.New()
	doc.News = append(doc.News, models.NewsArticle{ID: 7, Title: "T", Category: "World"})
	require.NoError(t, repo.Save(ctx, doc))

	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file must not survive a save")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n  \"posters\": []")

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got.News, 1)
	assert.Equal(t, "T", got.News[0].Title)
	assert.NotNil(t, got.Ads)
}

func TestFileRepo_PartialDocumentIsNormalized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"categories":[{"id":1,"name":"World"}]}`), 0o644))

	doc, err := NewFileRepo(path).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, doc.Categories, 1)
	assert.NotNil(t, doc.Activities)
	assert.Empty(t, doc.Users)
}

func TestFileRepo_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFileRepo(path).Load(context.Background())
	assert.Error(t, err)
}

func TestMemoryRepo_LoadReturnsIndependentCopies(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	doc := document.New()
	doc.Tickers = append(doc.Tickers, models.Ticker{ID: 1, Text: "hello", Active: true})
	require.NoError(t, repo.Save(ctx, doc))

	a, err := repo.Load(ctx)
	require.NoError(t, err)
	a.Tickers[0].Text = "changed"

	b, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "hello", b.Tickers[0].Text)
	assert.Equal(t, 1, repo.Saves())
}

func TestMemoryRepo_EncodesLikeFile(t *testing.T) {
	repo := NewMemoryRepo()
	doc, err := repo.Load(context.Background())
	require.NoError(t, err)

	b, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"staticPages":[]`)
}

func TestNewFromConfig_Drivers(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Driver: config.StoreDriverMemory}}
	repo, cleanup, err := NewFromConfig(cfg)
	require.NoError(t, err)
	defer cleanup()
	assert.IsType(t, &MemoryRepo{}, repo)

	cfg.Store = config.StoreConfig{Driver: config.StoreDriverFile, FilePath: filepath.Join(t.TempDir(), "d.json")}
	repo, cleanup, err = NewFromConfig(cfg)
	require.NoError(t, err)
	defer cleanup()
	require.IsType(t, &FileRepo{}, repo)
	assert.Equal(t, cfg.Store.FilePath, repo.(*FileRepo).Path())
}

func TestMongoEnvelope_InlinesDocument(t *testing.T) {
	doc := document.New()
	doc.Tickers = append(doc.Tickers, models.Ticker{ID: 7, Text: "Markets open", Active: true})
	env := mongoEnvelope{ID: DocumentKey, UpdatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), Document: *doc}

	raw, err := bson.Marshal(env)
	require.NoError(t, err)

	assert.Equal(t, DocumentKey, bson.Raw(raw).Lookup("_id").StringValue())
	assert.Equal(t, "Markets open", bson.Raw(raw).Lookup("tickers", "0", "text").StringValue())
	_, err = bson.Raw(raw).LookupErr("document")
	assert.Error(t, err, "document fields are stored at the top level")

	var back mongoEnvelope
	require.NoError(t, bson.Unmarshal(raw, &back))
	assert.True(t, env.UpdatedAt.Equal(back.UpdatedAt))
	require.Len(t, back.Tickers, 1)
	assert.Equal(t, int64(7), back.Tickers[0].ID)
	assert.True(t, back.Tickers[0].Active)
}
