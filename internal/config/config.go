package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoreDriverFile   = "file"
	StoreDriverMongo  = "mongo"
	StoreDriverMemory = "memory"
)

// Config holds application configuration
type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	MongoDB   MongoDBConfig
	Uploads   UploadsConfig
	MinIO     MinIOConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Activity  ActivityConfig
	Metrics   MetricsConfig
	Log       LogConfig
}

type ServerConfig struct {
	Port         string        `validate:"required"`
	Host         string        `validate:"required"`
	Environment  string        `validate:"required|in:development,test,staging,production"`
	ReadTimeout  time.Duration `validate:"required"`
	WriteTimeout time.Duration `validate:"required"`
}

// StoreConfig selects where the newsroom document lives.
type StoreConfig struct {
	Driver   string `validate:"required|in:file,mongo,memory"`
	FilePath string
}

type MongoDBConfig struct {
	URI        string
	Database   string
	Collection string
	Timeout    time.Duration
}

// UploadsConfig covers multipart staging and the upload gateway.
type UploadsConfig struct {
	Dir            string        `validate:"required"`
	PublicBaseURL  string        `validate:"required"`
	Timeout        time.Duration `validate:"required"`
	MaxMemoryBytes int64         `validate:"required|min:1"`
}

// MinIOConfig describes the remote media host. An empty endpoint means uploads
// stay on local disk.
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

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Addr is host:port, or "" when Redis is not configured.
func (r RedisConfig) Addr() string {
	if r.Host == "" {
		return ""
	}
	port := r.Port
	if port == "" {
		port = "6379"
	}
	return r.Host + ":" + port
}

type RateLimitConfig struct {
	Enabled  bool
	UseRedis bool
	RPS      float64
	Burst    int
	Window   time.Duration
}

// ActivityConfig lists the entity kinds whose mutations land in the activity log.
type ActivityConfig struct {
	Kinds []string
	Actor string `validate:"required"`
}

type MetricsConfig struct {
	Enabled bool
}

type LogConfig struct {
	Level  string `validate:"required|in:debug,info,warn,error"`
	Format string `validate:"required|in:json,console"`
}

// IsMongo reports whether the document store runs on MongoDB.
func (c *Config) IsMongo() bool { return c.Store.Driver == StoreDriverMongo }

// LoadConfig loads configuration from environment variables and .env file
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "5000")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_ENVIRONMENT", "development")
	viper.SetDefault("SERVER_READ_TIMEOUT", 30)
	viper.SetDefault("SERVER_WRITE_TIMEOUT", 120)

	viper.SetDefault("STORE_DRIVER", StoreDriverFile)
	viper.SetDefault("STORE_FILE_PATH", "data/data.json")

	viper.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGODB_DATABASE", "newsdesk")
	viper.SetDefault("MONGODB_COLLECTION", "newsroom")
	viper.SetDefault("MONGODB_TIMEOUT", 10)

	viper.SetDefault("UPLOADS_DIR", "uploads")
	viper.SetDefault("UPLOADS_PUBLIC_BASE_URL", "http://localhost:5000")
	viper.SetDefault("UPLOADS_TIMEOUT", 60)
	viper.SetDefault("UPLOADS_MAX_MEMORY_MB", 32)

	viper.SetDefault("MINIO_BUCKET", "newsdesk-media")
	viper.SetDefault("MINIO_REGION", "us-east-1")
	viper.SetDefault("MINIO_PUBLIC_READ", true)

	viper.SetDefault("REDIS_PORT", "6379")

	viper.SetDefault("RATE_LIMIT_ENABLED", false)
	viper.SetDefault("RATE_LIMIT_RPS", 20.0)
	viper.SetDefault("RATE_LIMIT_BURST", 40)
	viper.SetDefault("RATE_LIMIT_WINDOW", 1)

	viper.SetDefault("ACTIVITY_KINDS", "featured-story,news")
	viper.SetDefault("ACTIVITY_ACTOR", "Admin")

	viper.SetDefault("METRICS_ENABLED", true)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "json")

	cfg := &Config{
		Server: ServerConfig{
			Port:         viper.GetString("SERVER_PORT"),
			Host:         viper.GetString("SERVER_HOST"),
			Environment:  viper.GetString("SERVER_ENVIRONMENT"),
			ReadTimeout:  time.Duration(viper.GetInt("SERVER_READ_TIMEOUT")) * time.Second,
			WriteTimeout: time.Duration(viper.GetInt("SERVER_WRITE_TIMEOUT")) * time.Second,
		},
		Store: StoreConfig{
			Driver:   strings.ToLower(viper.GetString("STORE_DRIVER")),
			FilePath: viper.GetString("STORE_FILE_PATH"),
		},
		MongoDB: MongoDBConfig{
			URI:        viper.GetString("MONGODB_URI"),
			Database:   viper.GetString("MONGODB_DATABASE"),
			Collection: viper.GetString("MONGODB_COLLECTION"),
			Timeout:    time.Duration(viper.GetInt("MONGODB_TIMEOUT")) * time.Second,
		},
		Uploads: UploadsConfig{
			Dir:            viper.GetString("UPLOADS_DIR"),
			PublicBaseURL:  strings.TrimRight(viper.GetString("UPLOADS_PUBLIC_BASE_URL"), "/"),
			Timeout:        time.Duration(viper.GetInt("UPLOADS_TIMEOUT")) * time.Second,
			MaxMemoryBytes: viper.GetInt64("UPLOADS_MAX_MEMORY_MB") << 20,
		},
		MinIO: MinIOConfig{
			Endpoint:   viper.GetString("MINIO_ENDPOINT"),
			AccessKey:  viper.GetString("MINIO_ACCESS_KEY"),
			SecretKey:  viper.GetString("MINIO_SECRET_KEY"),
			UseSSL:     viper.GetBool("MINIO_USE_SSL"),
			Bucket:     viper.GetString("MINIO_BUCKET"),
			Region:     viper.GetString("MINIO_REGION"),
			PublicURL:  strings.TrimRight(viper.GetString("MINIO_PUBLIC_URL"), "/"),
			PublicRead: viper.GetBool("MINIO_PUBLIC_READ"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		RateLimit: RateLimitConfig{
			Enabled:  viper.GetBool("RATE_LIMIT_ENABLED"),
			UseRedis: viper.GetBool("RATE_LIMIT_USE_REDIS"),
			RPS:      viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:    viper.GetInt("RATE_LIMIT_BURST"),
			Window:   time.Duration(viper.GetInt("RATE_LIMIT_WINDOW")) * time.Second,
		},
		Activity: ActivityConfig{
			Kinds: activityKinds(),
			Actor: viper.GetString("ACTIVITY_ACTOR"),
		},
		Metrics: MetricsConfig{
			Enabled: viper.GetBool("METRICS_ENABLED"),
		},
		Log: LogConfig{
			Level:  strings.ToLower(viper.GetString("LOG_LEVEL")),
			Format: strings.ToLower(viper.GetString("LOG_FORMAT")),
		},
	}

	if err := NewCnfValidator(cfg).Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// activityKinds reads ACTIVITY_KINDS. viper falls back to the default for an
// empty variable, but an explicitly empty list switches the activity log off.
func activityKinds() []string {
	if v, ok := os.LookupEnv("ACTIVITY_KINDS"); ok {
		return splitList(v)
	}
	return splitList(viper.GetString("ACTIVITY_KINDS"))
}

// splitList never returns nil: nil kinds mean "use the defaults" downstream.
func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
