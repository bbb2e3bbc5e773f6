package storage

import (
	"fmt"
	"time"

	"github.com/newsdesk/newsdesk-api/internal/config"
	"github.com/newsdesk/newsdesk-api/pkg/logger"
)

// MinIOConfig holds MinIO connection configuration
type MinIOConfig struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	UseSSL     bool
	Bucket     string
	Region     string
	PublicURL  string
	PublicRead bool
}

// LoadMinIOConfig copies the MinIO section of the application config.
func LoadMinIOConfig(cfg *config.Config) *MinIOConfig {
	return &MinIOConfig{
		Endpoint:   cfg.MinIO.Endpoint,
		AccessKey:  cfg.MinIO.AccessKey,
		SecretKey:  cfg.MinIO.SecretKey,
		UseSSL:     cfg.MinIO.UseSSL,
		Bucket:     cfg.MinIO.Bucket,
		Region:     cfg.MinIO.Region,
		PublicURL:  cfg.MinIO.PublicURL,
		PublicRead: cfg.MinIO.PublicRead,
	}
}

// NewUploader builds the gateway for the configured media host: MinIO when an
// endpoint is set, otherwise the local uploads directory.
func NewUploader(cfg *config.Config) (*Gateway, error) {
	var backend Backend
	if cfg.MinIO.Endpoint != "" {
		mc, err := NewMinIOStorage(LoadMinIOConfig(cfg))
		if err != nil {
			return nil, fmt.Errorf("media host: %w", err)
		}
		logger.Infof("media host: minio %s bucket=%s", cfg.MinIO.Endpoint, cfg.MinIO.Bucket)
		backend = mc
	} else {
		logger.Warnf("media host: MINIO_ENDPOINT not set, serving uploads from %s", cfg.Uploads.Dir)
		backend = NewLocalStorage(cfg.Uploads.Dir, cfg.Uploads.PublicBaseURL)
	}
	timeout := cfg.Uploads.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return NewGateway(backend, timeout), nil
}

// DefaultTimeout bounds a single upload to the media host.
const DefaultTimeout = 60 * time.Second
