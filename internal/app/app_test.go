package app

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
	"github.com/newsdesk/newsdesk-api/handlers"
	"github.com/newsdesk/newsdesk-api/internal/config"
	"github.com/newsdesk/newsdesk-api/internal/document/repository"
	"github.com/newsdesk/newsdesk-api/internal/document/service"
	"github.com/newsdesk/newsdesk-api/internal/storage"
	"github.com/newsdesk/newsdesk-api/internal/users"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Server: config.ServerConfig{
			Host: "127.0.0.1", Port: "0", Environment: "test",
			ReadTimeout: 5 * time.Second, WriteTimeout: 5 * time.Second,
		},
		Store: config.StoreConfig{Driver: config.StoreDriverMemory},
		Uploads: config.UploadsConfig{
			Dir:            t.TempDir(),
			PublicBaseURL:  "http://localhost:5000",
			Timeout:        time.Second,
			MaxMemoryBytes: 32 << 20,
		},
		Activity: config.ActivityConfig{Actor: "Admin"},
		Metrics:  config.MetricsConfig{Enabled: true},
	}
}

func newTestRouter(t *testing.T, cfg *config.Config, rdb *redis.Client) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := service.New(repository.NewMemoryRepo())
	log := ProvideActivityLog(cfg, store)
	gateway := storage.NewGateway(storage.NewLocalStorage(cfg.Uploads.Dir, cfg.Uploads.PublicBaseURL), cfg.Uploads.Timeout)
	usersSvc := users.NewService(store, log)
	return NewRouter(cfg, ProvideRegistry(), rdb,
		ProvideHealthHandler(),
		ProvideContentHandler(cfg, store, ProvideIngester(cfg, gateway), log),
		ProvideUserHandler(cfg, usersSvc),
		handlers.NewAuthHandler(usersSvc),
	)
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRouter_HealthAndPreflight(t *testing.T) {
	r := newTestRouter(t, testConfig(t), nil)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	w = serve(r, httptest.NewRequest(http.MethodOptions, "/api/news", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "DELETE")
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	r := newTestRouter(t, testConfig(t), nil)
	serve(r, httptest.NewRequest(http.MethodGet, "/health", nil))

	w := serve(r, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "newsdesk_http_requests_total")
	assert.Contains(t, w.Body.String(), `route="/health"`)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestRouter_MetricsDisabled(t *testing.T) {
	cfg := testConfig(t)
	cfg.Metrics.Enabled = false
	r := newTestRouter(t, cfg, nil)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_LocalUploadIsServed(t *testing.T) {
	cfg := testConfig(t)
	r := newTestRouter(t, cfg, nil)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("title", "With image"))
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="image"; filename="cover.png"`)
	h.Set("Content-Type", "image/png")
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(pngHeader)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/news", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := serve(r, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ImageURL string `json:"imageUrl"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.True(t, strings.HasPrefix(created.ImageURL, "http://localhost:5000/uploads/news/"), created.ImageURL)

	w = serve(r, httptest.NewRequest(http.MethodGet, strings.TrimPrefix(created.ImageURL, "http://localhost:5000"), nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, pngHeader, w.Body.Bytes())

	staged, err := filepath.Glob(filepath.Join(cfg.Uploads.Dir, "*-cover.png"))
	require.NoError(t, err)
	assert.Empty(t, staged, "staging file is removed after upload")
}

func TestRouter_MemoryRateLimitOnlyOnAPI(t *testing.T) {
	cfg := testConfig(t)
	cfg.RateLimit = config.RateLimitConfig{Enabled: true, RPS: 0.001, Burst: 1}
	r := newTestRouter(t, cfg, nil)

	assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/api/news", nil)).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(r, httptest.NewRequest(http.MethodGet, "/api/news", nil)).Code)
	assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/health", nil)).Code)
}

func TestRouter_RedisRateLimit(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	cfg := testConfig(t)
	cfg.RateLimit = config.RateLimitConfig{Enabled: true, UseRedis: true, RPS: 0.0001, Burst: 1, Window: time.Hour}
	r := newTestRouter(t, cfg, rdb)

	assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/api/tickers", nil)).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(r, httptest.NewRequest(http.MethodGet, "/api/tickers", nil)).Code)
	assert.NotEmpty(t, mr.Keys())
}

func TestApp_HandlerCompressesLargeResponses(t *testing.T) {
	cfg := testConfig(t)
	a := NewApp(cfg, newTestRouter(t, cfg, nil))

	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := serve(a.Handler(), req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))

	w = serve(a.Handler(), httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	assert.Empty(t, w.Header().Get("Content-Encoding"))
	raw, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	assert.True(t, json.Valid(raw))
}

func TestApp_ServeStopsOnCancel(t *testing.T) {
	cfg := testConfig(t)
	a := NewApp(cfg, newTestRouter(t, cfg, nil))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	assert.NoError(t, a.Serve(ctx))
}

func TestProvideRedisClient_AbsentOrUnreachable(t *testing.T) {
	cfg := testConfig(t)
	client, cleanup := ProvideRedisClient(cfg)
	assert.Nil(t, client)
	cleanup()

	cfg.Redis = config.RedisConfig{Host: "127.0.0.1", Port: "1"}
	client, cleanup = ProvideRedisClient(cfg)
	assert.Nil(t, client)
	cleanup()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()
	host, port, _ := strings.Cut(mr.Addr(), ":")
	cfg.Redis = config.RedisConfig{Host: host, Port: port}
	client, cleanup = ProvideRedisClient(cfg)
	require.NotNil(t, client)
	cleanup()
}
