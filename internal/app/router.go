package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/newsdesk/newsdesk-api/handlers"
	"github.com/newsdesk/newsdesk-api/internal/config"
	"github.com/newsdesk/newsdesk-api/pkg/logger"
	"github.com/newsdesk/newsdesk-api/pkg/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

// NewRouter assembles the gin engine: global middleware, infrastructure
// endpoints and the /api group. rdb may be nil.
func NewRouter(
	cfg *config.Config,
	reg *prometheus.Registry,
	rdb *redis.Client,
	health *handlers.HealthHandler,
	content *handlers.ContentHandler,
	usersHandler *handlers.UserHandler,
	auth *handlers.AuthHandler,
) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors(), gin.Recovery(), middleware.RequestLogger())
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics())
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	}

	health.Register(r)
	handlers.RegisterSwagger(r)
	r.Static("/uploads", cfg.Uploads.Dir)

	api := r.Group("/api")
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && rdb != nil {
			logger.Infof("rate limiter: redis, %d requests per %s", cfg.RateLimit.Burst, cfg.RateLimit.Window)
			api.Use(middleware.RedisRateLimitMiddleware(rdb, cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.Window))
		} else {
			logger.Infof("rate limiter: memory, %.1f rps burst %d", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
			api.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}
	content.Register(api)
	usersHandler.Register(api)
	auth.Register(api)

	return r
}

// cors allows any origin and answers preflight requests directly.
func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		h.Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}
