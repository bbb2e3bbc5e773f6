package main

import (
	"os"

	"github.com/newsdesk/newsdesk-api/internal/config"
	"github.com/newsdesk/newsdesk-api/internal/di"
	"github.com/newsdesk/newsdesk-api/pkg/logger"
)

func main() {
	// LOG_LEVEL applies before config is loaded so config errors are visible
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.SetFormat(cfg.Log.Format)
	logger.Init(cfg.Log.Level)
	logger.Infof("config loaded: store=%s mongo=%v minio=%v redis=%v", cfg.Store.Driver, cfg.IsMongo(), cfg.MinIO.Endpoint != "", cfg.Redis.Addr() != "")

	a, cleanup, err := di.InitApp(cfg)
	if err != nil {
		logger.Fatalf("failed to initialize: %v", err)
	}
	defer cleanup()

	if err := a.Run(); err != nil {
		logger.Errorf("%v", err)
		cleanup()
		os.Exit(1)
	}
}
