package app

import (
	"context"
	"time"

	"github.com/newsdesk/newsdesk-api/handlers"
	"github.com/newsdesk/newsdesk-api/internal/activity"
	"github.com/newsdesk/newsdesk-api/internal/config"
	"github.com/newsdesk/newsdesk-api/internal/document/service"
	"github.com/newsdesk/newsdesk-api/internal/media"
	"github.com/newsdesk/newsdesk-api/internal/storage"
	"github.com/newsdesk/newsdesk-api/internal/users"
	"github.com/newsdesk/newsdesk-api/pkg/logger"
	"github.com/newsdesk/newsdesk-api/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
)

// Providers adapt config values to the constructors that need them.

func ProvideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics.RegisterCollectors(reg)
	return reg
}

// ProvideRedisClient connects to Redis when REDIS_HOST is set. An unreachable
// server is logged and treated as absent, so the limiter falls back to memory.
func ProvideRedisClient(cfg *config.Config) (*redis.Client, func()) {
	addr := cfg.Redis.Addr()
	if addr == "" {
		return nil, func() {}
	}
	client := redis.NewClient(&redis.Options{Addr: addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warnf("redis %s unreachable: %v", addr, err)
		_ = client.Close()
		return nil, func() {}
	}
	logger.Infof("connected to redis %s", addr)
	return client, func() { _ = client.Close() }
}

func ProvideActivityLog(cfg *config.Config, store *service.Service) *activity.Log {
	return activity.New(store, cfg.Activity.Kinds, cfg.Activity.Actor)
}

// ProvideIngester stages multipart files in the uploads directory before they
// are relayed to the media host.
func ProvideIngester(cfg *config.Config, uploader storage.Uploader) *media.Ingester {
	return media.NewIngester(media.NewStager(cfg.Uploads.Dir), uploader)
}

func ProvideContentHandler(cfg *config.Config, store *service.Service, ingester *media.Ingester, log *activity.Log) *handlers.ContentHandler {
	return handlers.NewContentHandler(store, ingester, log, cfg.Uploads.MaxMemoryBytes)
}

func ProvideUserHandler(cfg *config.Config, svc *users.Service) *handlers.UserHandler {
	return handlers.NewUserHandler(svc, cfg.Uploads.MaxMemoryBytes)
}

func ProvideHealthHandler() *handlers.HealthHandler {
	return handlers.NewHealthHandler(time.Now())
}
