package config

import (
	"errors"
	"strings"
	"time"

	"github.com/dpbr/dpbr-client/internal/client/storage"
)

var (
	ErrBaseURLNotSet  = errors.New("PUBLIC_API_URL is not set")
	ErrInvalidPrefix  = errors.New("API prefix must contain a path segment")
	ErrInvalidTimeout = errors.New("request timeout must be positive")
)

// Config holds runtime settings for the dpbr client.
type Config struct {
	// Backend location. Requests go to APIURL + APIPrefix + endpoint.
	APIURL         string        `env:"PUBLIC_API_URL"`
	APIPrefix      string        `env:"PUBLIC_API_PREFIX"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Auth slot persistence.
	StorageBackend string `env:"STORAGE_BACKEND"`
	StorageDSN     string `env:"STORAGE_DSN"`
	RedisAddr      string `env:"REDIS_ADDR"`
	RedisPassword  string `env:"REDIS_PASSWORD"`
	RedisPrefix    string `env:"REDIS_PREFIX"`
	StorageSecret  string `env:"STORAGE_SECRET"`

	// DebugToken is trusted without a network round trip when a user is
	// cached next to it. Empty disables the bypass.
	DebugToken string `env:"DEBUG_TOKEN"`

	// TimeZone renders comment timestamps.
	TimeZone string `env:"DISPLAY_TIMEZONE"`

	LogBackend string `env:"LOG_BACKEND"`
	LogLevel   string `env:"LOG_LEVEL"`

	KakaoClientID    string `env:"KAKAO_CLIENT_ID"`
	KakaoRedirectURI string `env:"KAKAO_REDIRECT_URI"`

	// Export destinations. S3Bucket empty means exports go to ExportDir.
	ExportDir string `env:"EXPORT_DIR"`
	// ExportFont is a TTF/OTF file for card text. Hangul needs one.
	ExportFont  string `env:"EXPORT_FONT"`
	S3Endpoint  string `env:"S3_ENDPOINT"`
	S3Region    string `env:"S3_REGION"`
	S3Bucket    string `env:"S3_BUCKET"`
	S3AccessKey string `env:"S3_ACCESS_KEY"`
	S3SecretKey string `env:"S3_SECRET_KEY"`
	S3Prefix    string `env:"S3_PREFIX"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIPrefix = "/api/v1"
	c.RequestTimeout = 15 * time.Second
	c.StorageBackend = storage.BackendSQLite
	c.StorageDSN = "dpbr.db"
	c.RedisAddr = "127.0.0.1:6379"
	c.RedisPrefix = "dpbr:"
	c.TimeZone = "Asia/Seoul"
	c.LogBackend = "slog"
	c.LogLevel = "info"
	c.ExportDir = "."
	c.S3Region = "us-east-1"
	c.S3Prefix = "exports/"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones. The result is validated.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings every request depends on.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIURL) == "" {
		return ErrBaseURLNotSet
	}
	if strings.Trim(strings.TrimSpace(c.APIPrefix), "/") == "" {
		return ErrInvalidPrefix
	}
	if c.RequestTimeout <= 0 {
		return ErrInvalidTimeout
	}
	return nil
}

// BaseURL returns APIURL without trailing slashes.
func (c *Config) BaseURL() string {
	return strings.TrimRight(strings.TrimSpace(c.APIURL), "/")
}

// Prefix returns APIPrefix with exactly one leading slash and no trailing one.
func (c *Config) Prefix() string {
	return "/" + strings.Trim(strings.TrimSpace(c.APIPrefix), "/")
}

// Location resolves TimeZone, falling back to a fixed UTC+9 zone when the
// tz database is not available on the host.
func (c *Config) Location() *time.Location {
	if loc, err := time.LoadLocation(c.TimeZone); err == nil {
		return loc
	}
	return time.FixedZone("KST", 9*60*60)
}

// StorageOptions maps the storage settings onto storage.Options.
func (c *Config) StorageOptions() storage.Options {
	return storage.Options{
		Backend:       c.StorageBackend,
		DSN:           c.StorageDSN,
		RedisAddr:     c.RedisAddr,
		RedisPassword: c.RedisPassword,
		RedisPrefix:   c.RedisPrefix,
		Secret:        c.StorageSecret,
	}
}
