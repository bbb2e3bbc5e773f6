package config

import (
	"fmt"

	"github.com/gookit/validate"
)

// CnfValidator checks a loaded Config against the struct tag rules of each
// section plus the cross-field rules tags cannot express.
type CnfValidator struct {
	conf *Config
}

func NewCnfValidator(conf *Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (c *CnfValidator) Validate() error {
	sections := []struct {
		name string
		data interface{}
	}{
		{"server", &c.conf.Server},
		{"store", &c.conf.Store},
		{"uploads", &c.conf.Uploads},
		{"activity", &c.conf.Activity},
		{"log", &c.conf.Log},
	}
	for _, s := range sections {
		v := validate.Struct(s.data)
		if !v.Validate() {
			return fmt.Errorf("config %s: %w", s.name, v.Errors)
		}
	}

	switch c.conf.Store.Driver {
	case StoreDriverFile:
		if c.conf.Store.FilePath == "" {
			return fmt.Errorf("config store: file driver needs STORE_FILE_PATH")
		}
	case StoreDriverMongo:
		if c.conf.MongoDB.URI == "" || c.conf.MongoDB.Database == "" || c.conf.MongoDB.Collection == "" {
			return fmt.Errorf("config mongodb: uri, database and collection are required for the mongo driver")
		}
	}

	if c.conf.MinIO.Endpoint != "" && c.conf.MinIO.Bucket == "" {
		return fmt.Errorf("config minio: bucket is required when an endpoint is set")
	}
	if c.conf.RateLimit.Enabled {
		if c.conf.RateLimit.RPS <= 0 || c.conf.RateLimit.Burst <= 0 {
			return fmt.Errorf("config rate limit: rps and burst must be positive")
		}
		if c.conf.RateLimit.UseRedis && c.conf.Redis.Addr() == "" {
			return fmt.Errorf("config rate limit: redis limiter needs REDIS_HOST")
		}
	}
	return nil
}
