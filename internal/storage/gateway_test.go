package storage

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/newsdesk/newsdesk-api/internal/config"
	"github.com/newsdesk/newsdesk-api/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	calls       int
	key         string
	contentType string
	err         error
	block       bool
}

func (f *fakeBackend) Put(ctx context.Context, key, _, contentType string) (string, error) {
	f.calls++
	f.key = key
	f.contentType = contentType
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	if f.err != nil {
		return "", f.err
	}
	return "https://media.example.com/" + key, nil
}

func (f *fakeBackend) Name() string { return "fake" }

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func stage(t *testing.T, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, data, 0o644))
	return p
}

func TestGateway_SuccessRemovesStagedFile(t *testing.T) {
	backend := &fakeBackend{}
	g := NewGateway(backend, time.Second)
	path := stage(t, "1700000000000-photo.PNG", pngHeader)

	url, err := g.Upload(context.Background(), path, "news")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "https://media.example.com/news/"))
	assert.True(t, strings.HasSuffix(backend.key, ".png"))
	assert.Equal(t, "image/png", backend.contentType)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "staged file must be removed after upload")
}

func TestGateway_BackendFailureKeepsStagedFile(t *testing.T) {
	refused := errors.New("connection refused")
	g := NewGateway(&fakeBackend{err: refused}, time.Second)
	path := stage(t, "clip.mp4", []byte("not really a video"))

	_, err := g.Upload(context.Background(), path, "breaking-news-videos")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUploadFailed)
	assert.ErrorIs(t, err, refused)
	assert.Contains(t, err.Error(), "connection refused")

	_, statErr := os.Stat(path)
	assert.NoError(t, statErr, "staged file stays for inspection")
}

func TestGateway_TimeoutIsUploadFailed(t *testing.T) {
	g := NewGateway(&fakeBackend{block: true}, 50*time.Millisecond)
	path := stage(t, "big.mov", []byte("x"))

	_, err := g.Upload(context.Background(), path, "media")
	assert.ErrorIs(t, err, errs.ErrUploadFailed)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, err.Error(), "timed out")
	_, statErr := os.Stat(path)
	assert.NoError(t, statErr)
}

func TestGateway_Preconditions(t *testing.T) {
	backend := &fakeBackend{}
	g := NewGateway(backend, time.Second)

	_, err := g.Upload(context.Background(), "", "news")
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = g.Upload(context.Background(), filepath.Join(t.TempDir(), "missing.jpg"), "news")
	assert.ErrorIs(t, err, errs.ErrUploadFailed)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Equal(t, 0, backend.calls)
}

func TestLocalStorage_Put(t *testing.T) {
	dir := t.TempDir()
	g := NewGateway(NewLocalStorage(dir, "http://localhost:5000/"), time.Second)
	path := stage(t, "ad.png", pngHeader)

	url, err := g.Upload(context.Background(), path, "ads")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "http://localhost:5000/uploads/ads/"), url)

	key := strings.TrimPrefix(url, "http://localhost:5000/uploads/")
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(key)))
	require.NoError(t, err)
	assert.Equal(t, pngHeader, data)
}

func TestObjectBaseURL(t *testing.T) {
	assert.Equal(t, "http://minio:9000/media", objectBaseURL(&MinIOConfig{Endpoint: "minio:9000", Bucket: "media"}))
	assert.Equal(t, "https://s3.example.com/media", objectBaseURL(&MinIOConfig{Endpoint: "s3.example.com", Bucket: "media", UseSSL: true}))
	assert.Equal(t, "https://cdn.example.com", objectBaseURL(&MinIOConfig{Endpoint: "x", PublicURL: "https://cdn.example.com/"}))
	assert.Contains(t, publicReadPolicy("media"), "arn:aws:s3:::media/*")
}

func TestNewUploader_LocalWhenNoEndpoint(t *testing.T) {
	cfg := &config.Config{Uploads: config.UploadsConfig{Dir: t.TempDir(), PublicBaseURL: "http://x"}}
	g, err := NewUploader(cfg)
	require.NoError(t, err)
	assert.Equal(t, "local", g.backend.Name())
	assert.Equal(t, DefaultTimeout, g.timeout)
}
