// Package app wires the HTTP server around the newsroom handlers and runs it.
package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzhttp"
	"github.com/newsdesk/newsdesk-api/internal/config"
	"github.com/newsdesk/newsdesk-api/pkg/logger"
)

// ShutdownTimeout bounds how long in-flight requests get after a stop signal.
const ShutdownTimeout = 5 * time.Second

type App struct {
	cfg    *config.Config
	engine *gin.Engine
	server *http.Server
}

func NewApp(cfg *config.Config, engine *gin.Engine) *App {
	a := &App{cfg: cfg, engine: engine}
	a.server = &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:      a.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}
	return a
}

// Handler is the engine with gzip response compression.
func (a *App) Handler() http.Handler {
	return gzhttp.GzipHandler(a.engine)
}

// Run serves until SIGINT or SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return a.Serve(ctx)
}

// Serve listens until ctx is done, then shuts down gracefully.
func (a *App) Serve(ctx context.Context) error {
	serverErr := make(chan error, 1)
	go func() {
		logger.Infof("listening on %s (env=%s, store=%s)", a.server.Addr, a.cfg.Server.Environment, a.cfg.Store.Driver)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Infof("shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Infof("gracefully stopped")
	return nil
}
