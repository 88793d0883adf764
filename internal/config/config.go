// Package config reads process settings from the environment, after
// loading an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage backends for goals and the session user.
const (
	StoreSQLite = "sqlite"
	StoreYAML   = "yaml"
	StoreJSON   = "json"
	StoreMemory = "memory"
)

// Blob backends for attachment payloads.
const (
	BlobMemory = "memory"
	BlobS3     = "s3"
)

var (
	validStores = []string{StoreSQLite, StoreYAML, StoreJSON, StoreMemory}
	validBlobs  = []string{BlobMemory, BlobS3}
)

type Config struct {
	// Application
	Env     string
	DataDir string
	Store   string
	DBPath  string

	// Logging
	LogLevel  slog.Level
	LogFormat string // "text" or "json"
	LogFile   string
	LogSource bool
	SentryDSN string

	// Countdown view refresh interval.
	Tick time.Duration

	// Attachments
	BlobBackend string
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
	S3Endpoint  string // Optional: MinIO, R2, Spaces
	S3Prefix    string
}

// DefaultConfig keeps everything local: SQLite under ~/.journey and
// attachments held in memory for the life of the process.
func DefaultConfig() Config {
	dataDir := ".journey"
	if home, err := os.UserHomeDir(); err == nil {
		dataDir = filepath.Join(home, ".journey")
	}
	return Config{
		Env:         "development",
		DataDir:     dataDir,
		Store:       StoreSQLite,
		LogLevel:    slog.LevelWarn,
		LogFormat:   "text",
		Tick:        time.Second,
		BlobBackend: BlobMemory,
		S3Region:    "us-east-1",
		S3Prefix:    "attachments",
	}
}

// Load reads envFile when it exists, then the environment. An empty
// envFile means ".env" in the working directory.
func Load(envFile string) (Config, error) {
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
	}

	def := DefaultConfig()
	cfg := Config{
		Env:     envString("JOURNEY_ENV", def.Env),
		DataDir: envString("JOURNEY_DATA_DIR", def.DataDir),
		Store:   strings.ToLower(envString("JOURNEY_STORE", def.Store)),

		LogLevel:  envLevel("LOG_LEVEL", def.LogLevel),
		LogFormat: strings.ToLower(envString("LOG_FORMAT", def.LogFormat)),
		LogFile:   envString("LOG_FILE", ""),
		LogSource: envBool("LOG_SOURCE", false),
		SentryDSN: envString("SENTRY_DSN", ""),

		Tick: envDuration("JOURNEY_TICK", def.Tick),

		BlobBackend: strings.ToLower(envString("BLOB_BACKEND", def.BlobBackend)),
		S3Region:    envString("S3_REGION", def.S3Region),
		S3Bucket:    envString("S3_BUCKET", ""),
		S3AccessKey: envString("S3_ACCESS_KEY", ""),
		S3SecretKey: envString("S3_SECRET_KEY", ""),
		S3Endpoint:  envString("S3_ENDPOINT", ""),
		S3Prefix:    envString("S3_PREFIX", def.S3Prefix),
	}
	cfg.DBPath = envString("JOURNEY_DB", filepath.Join(cfg.DataDir, "journey.db"))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if !slices.Contains(validStores, c.Store) {
		return fmt.Errorf("JOURNEY_STORE must be one of %s, got %q", strings.Join(validStores, ", "), c.Store)
	}
	if !slices.Contains(validBlobs, c.BlobBackend) {
		return fmt.Errorf("BLOB_BACKEND must be one of %s, got %q", strings.Join(validBlobs, ", "), c.BlobBackend)
	}
	if c.BlobBackend == BlobS3 && c.S3Bucket == "" {
		return fmt.Errorf("BLOB_BACKEND=s3 requires S3_BUCKET")
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}
	if c.Tick <= 0 {
		return fmt.Errorf("JOURNEY_TICK must be positive")
	}
	return nil
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envLevel(key string, def slog.Level) slog.Level {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(v)); err != nil {
		slog.Warn("config invalid log level, using default", "key", key, "value", v, "default", def)
		return def
	}
	return l
}
