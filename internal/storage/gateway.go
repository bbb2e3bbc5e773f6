package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/newsdesk/newsdesk-api/internal/errs"
	"github.com/newsdesk/newsdesk-api/pkg/logger"
	"github.com/newsdesk/newsdesk-api/pkg/metrics"
)

// Uploader sends a staged file to the media host and returns its durable URL.
type Uploader interface {
	Upload(ctx context.Context, localPath, folder string) (string, error)
}

// Backend stores one object under key.
type Backend interface {
	Put(ctx context.Context, key, localPath, contentType string) (string, error)
	Name() string
}

// Gateway implements Uploader over a Backend with a per-upload timeout.
// The staged file is removed after a successful upload and kept otherwise.
type Gateway struct {
	backend Backend
	timeout time.Duration
}

func NewGateway(backend Backend, timeout time.Duration) *Gateway {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Gateway{backend: backend, timeout: timeout}
}

func (g *Gateway) Upload(ctx context.Context, localPath, folder string) (string, error) {
	if localPath == "" {
		return "", errs.Validation("file path is required")
	}
	if _, err := os.Stat(localPath); err != nil {
		metrics.Uploads.WithLabelValues(folder, "error").Inc()
		return "", fmt.Errorf("%w: staged file: %w", errs.ErrUploadFailed, err)
	}

	key := objectKey(folder, localPath)
	contentType := "application/octet-stream"
	if mt, err := mimetype.DetectFile(localPath); err == nil {
		contentType = mt.String()
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	url, err := g.backend.Put(ctx, key, localPath, contentType)
	metrics.UploadDuration.WithLabelValues(folder).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.Uploads.WithLabelValues(folder, "error").Inc()
		if errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("timed out after %s: %w", g.timeout, err)
		}
		logger.Errorf("upload %s to %s failed: %v", localPath, g.backend.Name(), err)
		return "", fmt.Errorf("%w: %w", errs.ErrUploadFailed, err)
	}

	metrics.Uploads.WithLabelValues(folder, "ok").Inc()
	if rmErr := os.Remove(localPath); rmErr != nil {
		logger.Warnf("upload: could not remove staged file %s: %v", localPath, rmErr)
	}
	logger.Debugf("uploaded %s -> %s", key, url)
	return url, nil
}

func objectKey(folder, localPath string) string {
	folder = strings.Trim(folder, "/")
	name := uuid.NewString() + strings.ToLower(filepath.Ext(localPath))
	if folder == "" {
		return name
	}
	return folder + "/" + name
}
